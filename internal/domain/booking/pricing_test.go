//go:build unit

package booking_test

import (
	"testing"

	"unistay/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardPriceCalculator(t *testing.T) {
	calc := booking.NewStandardPriceCalculator()

	t.Run("four night stay on a 1000 euro monthly listing", func(t *testing.T) {
		quote, err := calc.Quote(booking.PriceInputs{
			MonthlyPriceCents:    100000,
			CleaningFeeCents:     5000,
			SecurityDepositCents: 50000,
		}, 4)
		require.NoError(t, err)

		assert.Equal(t, int64(3333), quote.DailyRate.Cents())
		assert.Equal(t, int64(13332), quote.Subtotal.Cents())
		assert.Equal(t, int64(1600), quote.ServiceFee.Cents())
		assert.Equal(t, int64(5000), quote.CleaningFee.Cents())
		assert.Equal(t, int64(50000), quote.SecurityDeposit.Cents())
		assert.Equal(t, int64(19932), quote.Total.Cents())
	})

	t.Run("daily rate rounds half up", func(t *testing.T) {
		// 100/30 = 3.33 rounds down, 50/30 = 1.67 rounds up
		quote, err := calc.Quote(booking.PriceInputs{MonthlyPriceCents: 100}, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), quote.DailyRate.Cents())

		quote, err = calc.Quote(booking.PriceInputs{MonthlyPriceCents: 50}, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), quote.DailyRate.Cents())
	})

	t.Run("total excludes deposit", func(t *testing.T) {
		quote, err := calc.Quote(booking.PriceInputs{
			MonthlyPriceCents:    90000,
			CleaningFeeCents:     2500,
			SecurityDepositCents: 100000,
		}, 30)
		require.NoError(t, err)

		expected := quote.Subtotal.Cents() + quote.ServiceFee.Cents() + quote.CleaningFee.Cents()
		assert.Equal(t, expected, quote.Total.Cents())
	})

	t.Run("service fee is twelve percent of subtotal", func(t *testing.T) {
		quote, err := calc.Quote(booking.PriceInputs{MonthlyPriceCents: 30000}, 10)
		require.NoError(t, err)

		// rate 1000, subtotal 10000, fee 1200
		assert.Equal(t, int64(10000), quote.Subtotal.Cents())
		assert.Equal(t, int64(1200), quote.ServiceFee.Cents())
	})

	t.Run("zero fees", func(t *testing.T) {
		quote, err := calc.Quote(booking.PriceInputs{MonthlyPriceCents: 60000}, 7)
		require.NoError(t, err)

		assert.Equal(t, int64(2000), quote.DailyRate.Cents())
		assert.Equal(t, int64(0), quote.CleaningFee.Cents())
		assert.Equal(t, quote.Subtotal.Cents()+quote.ServiceFee.Cents(), quote.Total.Cents())
	})

	t.Run("negative inputs rejected", func(t *testing.T) {
		_, err := calc.Quote(booking.PriceInputs{MonthlyPriceCents: -1}, 4)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)

		_, err = calc.Quote(booking.PriceInputs{MonthlyPriceCents: 100000, CleaningFeeCents: -1}, 4)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}
