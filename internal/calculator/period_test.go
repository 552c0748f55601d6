package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/kirat/internal/models"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msg ...string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s %v", want, got, msg)
}

func TestAggregatePeriod(t *testing.T) {
	properties := []models.Property{
		{ID: "a10", Unit: "10", Type: models.PropertyApartment, PaymentType: models.PaymentFlexible},
		{ID: "a2", Unit: "٢", Type: models.PropertyApartment, PaymentType: models.PaymentFixed, FixedRent: d("500")},
		{ID: "s1", Unit: "Shop 1", Type: models.PropertyStore, PaymentType: models.PaymentFixed, FixedRent: d("900")},
		{ID: "empty", Unit: "3", Type: models.PropertyApartment, PaymentType: models.PaymentBlocked},
	}
	payments := []models.Payment{
		{PropertyID: "a10", Year: 2024, Month: 1, Amount: d("300")},
		{PropertyID: "a10", Year: 2024, Month: 6, Amount: d("300.50")},
		{PropertyID: "a2", Year: 2024, Month: 2, Amount: d("500")},
		{PropertyID: "s1", Year: 2024, Month: 3, Amount: d("900")},
		{PropertyID: "s1", Year: 2024, Month: 12, Amount: d("900")},
		{PropertyID: "s1", Year: 2023, Month: 3, Amount: d("1000")},
	}

	t.Run("full year", func(t *testing.T) {
		summary, err := AggregatePeriod(properties, payments, 2024, 1, 12)
		require.NoError(t, err)

		require.Len(t, summary.Apartments, 3)
		require.Len(t, summary.Stores, 1)
		assert.Equal(t, "a2", summary.Apartments[0].PropertyID)
		assert.Equal(t, "empty", summary.Apartments[1].PropertyID)
		assert.Equal(t, "a10", summary.Apartments[2].PropertyID)

		assertDecimal(t, "600.50", summary.Apartments[2].Total)
		assertDecimal(t, "300.50", summary.Apartments[2].Months[5])
		assertDecimal(t, "0", summary.Apartments[1].Total, "property without payments")
		assertDecimal(t, "1100.50", summary.ApartmentsTotal)
		assertDecimal(t, "1800", summary.StoresTotal)
		assertDecimal(t, "2900.50", summary.TotalIncome)
	})

	t.Run("month range keeps all twelve months", func(t *testing.T) {
		summary, err := AggregatePeriod(properties, payments, 2024, 2, 3)
		require.NoError(t, err)

		assertDecimal(t, "500", summary.ApartmentsTotal)
		assertDecimal(t, "900", summary.StoresTotal)
		assertDecimal(t, "900", summary.Stores[0].Months[11], "months outside the range are still reported")
	})

	t.Run("fixed rent is not imputed", func(t *testing.T) {
		summary, err := AggregatePeriod(properties, payments, 2024, 4, 4)
		require.NoError(t, err)
		assertDecimal(t, "0", summary.TotalIncome)
	})

	t.Run("invalid ranges", func(t *testing.T) {
		for _, r := range [][2]int{{0, 12}, {1, 13}, {6, 5}} {
			_, err := AggregatePeriod(properties, payments, 2024, r[0], r[1])
			assert.ErrorIs(t, err, ErrInvalidRange)
		}
	})

	t.Run("payment for unknown property", func(t *testing.T) {
		bad := append(payments, models.Payment{PropertyID: "ghost", Year: 2024, Month: 1, Amount: d("1")})
		_, err := AggregatePeriod(properties, bad, 2024, 1, 12)
		assert.ErrorIs(t, err, ErrInconsistentInput)
	})

	t.Run("payment month out of range", func(t *testing.T) {
		bad := []models.Payment{{PropertyID: "a2", Year: 2024, Month: 13, Amount: d("1")}}
		_, err := AggregatePeriod(properties, bad, 2024, 1, 12)
		assert.ErrorIs(t, err, ErrInconsistentInput)
	})

	t.Run("order of payments does not matter", func(t *testing.T) {
		reversed := make([]models.Payment, len(payments))
		for i, p := range payments {
			reversed[len(payments)-1-i] = p
		}
		a, err := AggregatePeriod(properties, payments, 2024, 1, 12)
		require.NoError(t, err)
		b, err := AggregatePeriod(properties, reversed, 2024, 1, 12)
		require.NoError(t, err)
		assert.True(t, a.TotalIncome.Equal(b.TotalIncome))
	})
}
