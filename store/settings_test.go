package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/manojvns/billdesk/models"
)

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	// Migration seeds a default row.
	s, err := GetSettings(ctx, database)
	require.NoError(t, err)
	require.Equal(t, "INV", s.PrefixFor(models.TypeInvoice))
	require.Equal(t, "DD/MM/YYYY", s.DateFormat)
	require.Equal(t, 2, s.DecimalPlaces)
	require.True(t, s.DefaultTaxRate.Equal(decimal.NewFromInt(18)))

	err = UpdateSettings(ctx, database, models.SettingsInput{
		CompanyName:    "Kaveri Industries",
		CompanyGSTIN:   "29BBBBB1111B1Z6",
		DefaultTaxRate: decimal.NewFromInt(12),
		Prefixes:       map[string]string{models.TypeInvoice: "KI"},
		DecimalPlaces:  2,
		DateFormat:     "YYYY-MM-DD",
		CurrencySymbol: "Rs.",
	})
	require.NoError(t, err)

	s, err = GetSettings(ctx, database)
	require.NoError(t, err)
	require.Equal(t, "Kaveri Industries", s.CompanyName)
	require.Equal(t, "KI", s.PrefixFor(models.TypeInvoice))
	// Unspecified prefixes fall back to their defaults.
	require.Equal(t, "QUO", s.PrefixFor(models.TypeQuotation))
	require.Equal(t, "YYYY-MM-DD", s.DateFormat)
	require.True(t, s.DefaultTaxRate.Equal(decimal.NewFromInt(12)))
}
