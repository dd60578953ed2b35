//go:build unit

package property_test

import (
	"testing"
	"time"

	"unistay/internal/domain/property"
	"unistay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewPropertyBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.HostID, actual.HostID())
		assert.Equal(t, b.Title, actual.Title())
		assert.Equal(t, b.City, actual.City())
		assert.True(t, actual.IsActive())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		b := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.Title = "  Canal view loft  "
			b.City = " Utrecht "
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Canal view loft", actual.Title())
		assert.Equal(t, "Utrecht", actual.City())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.PropertyBuilder)
			errIs  error
		}{
			{
				name:   "empty title",
				mutate: func(b *builder.PropertyBuilder) { b.Title = "   " },
				errIs:  property.ErrEmptyTitle,
			},
			{
				name:   "empty city",
				mutate: func(b *builder.PropertyBuilder) { b.City = "" },
				errIs:  property.ErrEmptyCity,
			},
			{
				name:   "negative monthly price",
				mutate: func(b *builder.PropertyBuilder) { b.MonthlyPriceCents = -1 },
				errIs:  property.ErrNegativePrice,
			},
			{
				name:   "negative cleaning fee",
				mutate: func(b *builder.PropertyBuilder) { b.CleaningFeeCents = -100 },
				errIs:  property.ErrNegativePrice,
			},
			{
				name:   "zero maximum stay",
				mutate: func(b *builder.PropertyBuilder) { b.MaximumStayMonths = 0 },
				errIs:  property.ErrInvalidStayLimits,
			},
			{
				name:   "negative minimum stay",
				mutate: func(b *builder.PropertyBuilder) { b.MinimumStayWeeks = -1 },
				errIs:  property.ErrInvalidStayLimits,
			},
			{
				name:   "zero max guests",
				mutate: func(b *builder.PropertyBuilder) { b.MaxGuests = 0 },
				errIs:  property.ErrInvalidGuestLimit,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewPropertyBuilder().With(tc.mutate).BuildDomain()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestPropertyUpdateDetails(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("applies validated params", func(t *testing.T) {
		b := builder.NewPropertyBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		params := property.NewPropertyParams{
			HostID:               b.HostID,
			Title:                "Renovated studio",
			Description:          b.Description,
			City:                 b.City,
			MonthlyPriceCents:    120000,
			CleaningFeeCents:     b.CleaningFeeCents,
			SecurityDepositCents: b.SecurityDepositCents,
			MinimumStayWeeks:     b.MinimumStayWeeks,
			MaximumStayMonths:    b.MaximumStayMonths,
			Bedrooms:             b.Bedrooms,
			MaxGuests:            b.MaxGuests,
		}
		require.NoError(t, actual.UpdateDetails(params, now))

		assert.Equal(t, "Renovated studio", actual.Title())
		assert.Equal(t, int64(120000), actual.MonthlyPriceCents())
		assert.Equal(t, now, actual.UpdatedAt())
	})

	t.Run("rejects invalid params without mutating", func(t *testing.T) {
		b := builder.NewPropertyBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		params := property.NewPropertyParams{Title: "", City: b.City, MaximumStayMonths: 12, MaxGuests: 2}
		assert.ErrorIs(t, actual.UpdateDetails(params, now), property.ErrEmptyTitle)
		assert.Equal(t, b.Title, actual.Title())
	})
}

func TestPropertyActivation(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	actual, err := builder.NewPropertyBuilder().BuildDomain()
	require.NoError(t, err)

	actual.Deactivate(now)
	assert.False(t, actual.IsActive())

	actual.Activate(now.Add(time.Hour))
	assert.True(t, actual.IsActive())
}
