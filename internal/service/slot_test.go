package service

import (
	"testing"
	"time"
)

func TestBuildSlotsCountAndLabels(t *testing.T) {
	slots := buildSlots(0, 0)
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}
	if slots[0].Label != "8:00 AM - 9:00 AM" {
		t.Fatalf("unexpected first label: %s", slots[0].Label)
	}
	if slots[0].Value != "8-9" {
		t.Fatalf("unexpected first value: %s", slots[0].Value)
	}
	if slots[3].Label != "11:00 AM - 12:00 PM" {
		t.Fatalf("unexpected noon boundary label: %s", slots[3].Label)
	}
	if slots[4].Label != "12:00 PM - 1:00 PM" {
		t.Fatalf("unexpected afternoon label: %s", slots[4].Label)
	}
	last := slots[len(slots)-1]
	if last.Label != "9:00 PM - 10:00 PM" || last.Value != "21-22" {
		t.Fatalf("unexpected last slot: %+v", last)
	}
}

func TestBuildSlotsDisabledBoundary(t *testing.T) {
	// 9 点整，8-9 时段刚结束但仍可选
	slots := buildSlots(9, 0)
	if slots[0].Disabled {
		t.Fatalf("slot ending exactly now should not be disabled")
	}
	// 9 点 01 分，8-9 过期
	slots = buildSlots(9, 1)
	if !slots[0].Disabled {
		t.Fatalf("slot ended a minute ago should be disabled")
	}
	if slots[1].Disabled {
		t.Fatalf("current slot 9-10 should stay selectable")
	}
}

func TestBuildSlotsMiddayState(t *testing.T) {
	// 14:30：8-9 到 13-14 过期，14-15 当前进行中仍可选
	slots := buildSlots(14, 30)
	for i, slot := range slots {
		expired := i <= 5
		if slot.Disabled != expired {
			t.Fatalf("slot %s disabled=%v, expected %v", slot.Value, slot.Disabled, expired)
		}
	}
}

func TestFormatHour(t *testing.T) {
	cases := map[int]string{
		8:  "8:00 AM",
		11: "11:00 AM",
		12: "12:00 PM",
		13: "1:00 PM",
		22: "10:00 PM",
	}
	for hour, expected := range cases {
		if got := formatHour(hour); got != expected {
			t.Fatalf("formatHour(%d) = %s, expected %s", hour, got, expected)
		}
	}
}

func TestValidateSlot(t *testing.T) {
	s := NewSlotService()
	s.now = func() time.Time {
		return time.Date(2026, 3, 10, 9, 30, 0, 0, s.location)
	}

	if err := s.ValidateSlot(""); err != ErrSlotRequired {
		t.Fatalf("empty slot: expected ErrSlotRequired, got %v", err)
	}
	if err := s.ValidateSlot("immediate"); err != nil {
		t.Fatalf("immediate pickup should always validate: %v", err)
	}
	if err := s.ValidateSlot("10-11"); err != nil {
		t.Fatalf("future slot should validate: %v", err)
	}
	if err := s.ValidateSlot("8-9"); err != ErrSlotUnavailable {
		t.Fatalf("expired slot: expected ErrSlotUnavailable, got %v", err)
	}
	if err := s.ValidateSlot("23-24"); err != ErrSlotUnavailable {
		t.Fatalf("unknown slot: expected ErrSlotUnavailable, got %v", err)
	}
}
