package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePrice_HalfHour(t *testing.T) {
	price, err := CalculatePrice(1500, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(750), price.BaseAmount)
	assert.Equal(t, int64(188), price.PlatformFee)
	assert.Equal(t, int64(938), price.TotalAmount)
	assert.Equal(t, CurrencyINR, price.Currency)
	assert.Equal(t, int64(93800), price.MinorUnits())
}

func TestCalculatePrice_FullHour(t *testing.T) {
	price, err := CalculatePrice(2000, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), price.BaseAmount)
	assert.Equal(t, int64(500), price.PlatformFee)
	assert.Equal(t, int64(2500), price.TotalAmount)
}

func TestCalculatePrice_OddRateRoundsHalfUp(t *testing.T) {
	price, err := CalculatePrice(1001, 30)
	require.NoError(t, err)
	// 1001/2 = 500.5 -> 501, 501*0.25 = 125.25 -> 125
	assert.Equal(t, int64(501), price.BaseAmount)
	assert.Equal(t, int64(125), price.PlatformFee)
	assert.Equal(t, int64(626), price.TotalAmount)
}

func TestCalculatePrice_Properties(t *testing.T) {
	for rate := int64(1); rate <= 5000; rate++ {
		full, err := CalculatePrice(rate, 60)
		require.NoError(t, err)
		half, err := CalculatePrice(rate, 30)
		require.NoError(t, err)

		assert.Equal(t, rate, full.BaseAmount)
		assert.Equal(t, (rate+1)/2, half.BaseAmount)

		for _, p := range []Price{full, half} {
			assert.Equal(t, p.BaseAmount+p.PlatformFee, p.TotalAmount)
			assert.Equal(t, (p.BaseAmount*25+50)/100, p.PlatformFee)
		}
	}
}

func TestCalculatePrice_InvalidDuration(t *testing.T) {
	for _, d := range []int{0, 15, 45, 90, -30} {
		_, err := CalculatePrice(1500, d)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestCalculatePrice_InvalidRate(t *testing.T) {
	_, err := CalculatePrice(0, 60)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = CalculatePrice(-100, 30)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestBookingStatus_ForwardOnly(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusPaid))
	assert.True(t, BookingStatusPaid.CanTransitionTo(BookingStatusConfirmed))
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))

	assert.False(t, BookingStatusPaid.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusPaid))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))
}

func TestNewBookingStatus(t *testing.T) {
	s, err := NewBookingStatus("paid")
	require.NoError(t, err)
	assert.True(t, s.IsSettled())

	_, err = NewBookingStatus("refunded")
	assert.Error(t, err)
}
