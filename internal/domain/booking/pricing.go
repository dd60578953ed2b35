package booking

import (
	"errors"
	"math"
)

var ErrNegativePrice = errors.New("price cannot be negative")

// DefaultServiceFeeRate and DefaultDaysPerMonth are marketplace policy
// constants. Quotes must be reproducible to the cent, so both values are
// part of the pricing contract, not tuning knobs.
const (
	DefaultServiceFeeRate = 0.12
	DefaultDaysPerMonth   = 30
)

// PriceInputs is the slice of a property the calculator needs.
type PriceInputs struct {
	MonthlyPriceCents    int64
	CleaningFeeCents     int64
	SecurityDepositCents int64
}

// Quote is a fully computed price breakdown for a stay.
// Invariant: Total = Subtotal + ServiceFee + CleaningFee. The deposit is
// carried on the booking but never folded into the total.
type Quote struct {
	DailyRate       Money
	Subtotal        Money
	ServiceFee      Money
	CleaningFee     Money
	SecurityDeposit Money
	Total           Money
}

type PriceCalculator interface {
	Quote(inputs PriceInputs, nights int) (Quote, error)
}

type StandardPriceCalculator struct {
	ServiceFeeRate float64
	DaysPerMonth   int
}

func NewStandardPriceCalculator() *StandardPriceCalculator {
	return &StandardPriceCalculator{
		ServiceFeeRate: DefaultServiceFeeRate,
		DaysPerMonth:   DefaultDaysPerMonth,
	}
}

func (c *StandardPriceCalculator) Quote(inputs PriceInputs, nights int) (Quote, error) {
	if inputs.MonthlyPriceCents < 0 || inputs.CleaningFeeCents < 0 || inputs.SecurityDepositCents < 0 {
		return Quote{}, ErrNegativePrice
	}

	dailyRate := int64(math.Round(float64(inputs.MonthlyPriceCents) / float64(c.DaysPerMonth)))
	subtotal := dailyRate * int64(nights)
	serviceFee := int64(math.Round(float64(subtotal) * c.ServiceFeeRate))
	total := subtotal + serviceFee + inputs.CleaningFeeCents

	return Quote{
		DailyRate:       NewMoney(dailyRate),
		Subtotal:        NewMoney(subtotal),
		ServiceFee:      NewMoney(serviceFee),
		CleaningFee:     NewMoney(inputs.CleaningFeeCents),
		SecurityDeposit: NewMoney(inputs.SecurityDepositCents),
		Total:           NewMoney(total),
	}, nil
}
