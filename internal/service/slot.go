package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/packzo/ishop/internal/constants"
)

// DeliverySlot 取货时段
type DeliverySlot struct {
	Label    string `json:"label"`    // 展示文案，如 8:00 AM - 9:00 AM
	Value    string `json:"value"`    // 提交值，如 8-9
	Disabled bool   `json:"disabled"` // 当天已过期的时段不可选
}

// SlotService 取货时段计算
type SlotService struct {
	location *time.Location
	now      func() time.Time
}

// NewSlotService 创建取货时段服务（按店铺时区计算当天时间）
func NewSlotService() *SlotService {
	location, err := time.LoadLocation(constants.ShopTimezone)
	if err != nil {
		location = time.FixedZone("IST", 5*3600+1800)
	}
	return &SlotService{
		location: location,
		now:      time.Now,
	}
}

// ListSlots 生成当天全部取货时段，已过期的标记为 disabled
func (s *SlotService) ListSlots() []DeliverySlot {
	now := s.now().In(s.location)
	return buildSlots(now.Hour(), now.Minute())
}

// ValidateSlot 校验提交的时段当前仍可选
func (s *SlotService) ValidateSlot(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ErrSlotRequired
	}
	if trimmed == constants.SlotImmediate {
		return nil
	}
	for _, slot := range s.ListSlots() {
		if slot.Value == trimmed {
			if slot.Disabled {
				return ErrSlotUnavailable
			}
			return nil
		}
	}
	return ErrSlotUnavailable
}

// buildSlots 按当前时分生成整点时段列表
func buildSlots(currentHour, currentMinutes int) []DeliverySlot {
	slots := make([]DeliverySlot, 0, constants.SlotCloseHour-constants.SlotOpenHour)
	for hour := constants.SlotOpenHour; hour < constants.SlotCloseHour; hour++ {
		end := hour + 1
		disabled := currentHour > end || (currentHour == end && currentMinutes > 0)
		slots = append(slots, DeliverySlot{
			Label:    fmt.Sprintf("%s - %s", formatHour(hour), formatHour(end)),
			Value:    strconv.Itoa(hour) + "-" + strconv.Itoa(end),
			Disabled: disabled,
		})
	}
	return slots
}

// formatHour 将 24 小时制整点格式化为 12 小时制文案
func formatHour(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}
