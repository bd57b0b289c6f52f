package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money 统一金额类型（保留 2 位小数，JSON 输出数字）
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal 从 decimal 创建金额
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// NewMoneyFromInt 从整数创建金额
func NewMoneyFromInt(amount int64) Money {
	return Money{Decimal: decimal.NewFromInt(amount)}
}

// NewMoneyFromString 从字符串解析金额
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d.Round(2)}, nil
}

// Mul 金额乘以数量
func (m Money) Mul(quantity int64) Money {
	return Money{Decimal: m.Decimal.Mul(decimal.NewFromInt(quantity)).Round(2)}
}

// Add 金额相加
func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal).Round(2)}
}

// Equal 金额比较（按 2 位小数）
func (m Money) Equal(other Money) bool {
	return m.Decimal.Round(2).Equal(other.Decimal.Round(2))
}

// MarshalJSON 输出 JSON 数字（保留 2 位小数）
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.Round(2).String()), nil
}

// UnmarshalJSON 解析金额（数字或字符串）
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d.Round(2)
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return err
	}
	m.Decimal = d.Round(2)
	return nil
}

// Value 用于数据库写入
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// String 返回 2 位小数格式
func (m Money) String() string {
	return m.Decimal.Round(2).StringFixed(2)
}
