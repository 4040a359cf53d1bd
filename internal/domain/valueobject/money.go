package valueobject

import (
	"fmt"

	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
)

// CurrencyINR - единственная валюта платформы.
const CurrencyINR = "inr"

// PlatformFeePercent - наценка платформы поверх стоимости консультации.
const PlatformFeePercent = 25

// Длительности консультаций, доступные для бронирования.
const (
	Duration30 = 30
	Duration60 = 60
)

var (
	ErrInvalidDuration = apperror.New(apperror.ErrCodeValidation, "InvalidDuration: duration_minutes must be 30 or 60")
	ErrInvalidRate     = apperror.New(apperror.ErrCodeValidation, "InvalidRate: hourly_rate must be positive")
)

// Price - разбивка стоимости бронирования в рупиях.
type Price struct {
	BaseAmount  int64
	PlatformFee int64
	TotalAmount int64
	Currency    string
}

// IsValidDuration проверяет, что длительность входит в {30, 60}.
func IsValidDuration(minutes int) bool {
	return minutes == Duration30 || minutes == Duration60
}

// CalculatePrice считает стоимость консультации.
// Округление везде half-up в целых числах, чтобы оценка на клиенте и сумма списания совпадали.
func CalculatePrice(hourlyRate int64, durationMinutes int) (Price, error) {
	if !IsValidDuration(durationMinutes) {
		return Price{}, ErrInvalidDuration
	}
	if hourlyRate <= 0 {
		return Price{}, ErrInvalidRate
	}

	base := hourlyRate
	if durationMinutes == Duration30 {
		base = roundHalfUpDiv(hourlyRate, 2)
	}
	fee := roundHalfUpDiv(base*PlatformFeePercent, 100)

	return Price{
		BaseAmount:  base,
		PlatformFee: fee,
		TotalAmount: base + fee,
		Currency:    CurrencyINR,
	}, nil
}

// MinorUnits переводит итог в пайсы для платёжного провайдера.
func (p Price) MinorUnits() int64 {
	return p.TotalAmount * 100
}

func (p Price) String() string {
	return fmt.Sprintf("₹%d + ₹%d = ₹%d", p.BaseAmount, p.PlatformFee, p.TotalAmount)
}

// roundHalfUpDiv делит неотрицательное n на d с округлением половины вверх.
func roundHalfUpDiv(n, d int64) int64 {
	return (2*n + d) / (2 * d)
}
