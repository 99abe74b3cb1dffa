package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/manojvns/billdesk/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(qty, price, rate string) models.LineItem {
	return models.LineItem{
		Description: "item",
		Quantity:    dec(qty),
		UnitPrice:   dec(price),
		TaxRate:     dec(rate),
	}
}

func TestCalculateTaxedInvoice(t *testing.T) {
	// 2 x 100 @ 18% -> taxable 200, CGST 18 (9% of 200), SGST 18, total 236
	res := Calculate([]models.LineItem{item("2", "100", "18")}, nil)

	require.True(t, res.HasTax)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	require.Equal(t, "200", row.TaxableValue.String())
	require.Equal(t, "18", row.CGST.String())
	require.Equal(t, "18", row.SGST.String())
	require.Equal(t, "236", row.Total.String())

	require.Equal(t, "200", res.Totals.TaxableValue.String())
	require.Equal(t, "18", res.Totals.CGST.String())
	require.Equal(t, "18", res.Totals.SGST.String())
	require.True(t, res.Totals.RoundOff.IsZero())
	require.Equal(t, "236", res.Totals.GrandTotal.String())
}

func TestCalculateUntaxedInvoice(t *testing.T) {
	// 1 x 99.5 @ 0% -> no tax fields at all, not zeros
	res := Calculate([]models.LineItem{item("1", "99.5", "0")}, nil)

	require.False(t, res.HasTax)
	require.Len(t, res.Rows, 1)
	require.Nil(t, res.Rows[0].CGST)
	require.Nil(t, res.Rows[0].SGST)
	require.Equal(t, "99.5", res.Rows[0].Total.String())

	require.Nil(t, res.Totals.CGST)
	require.Nil(t, res.Totals.SGST)
	require.Equal(t, "99.5", res.Totals.TaxableValue.String())
	require.Equal(t, "0.5", res.Totals.RoundOff.String())
	require.Equal(t, "100", res.Totals.GrandTotal.String())
}

func TestCalculateEmpty(t *testing.T) {
	res := Calculate(nil, nil)
	require.False(t, res.HasTax)
	require.Empty(t, res.Rows)
	require.True(t, res.Totals.TaxableValue.IsZero())
	require.True(t, res.Totals.RoundOff.IsZero())
	require.True(t, res.Totals.GrandTotal.IsZero())
	require.Nil(t, res.Totals.CGST)
}

func TestCalculateChargesTaxedLikeItems(t *testing.T) {
	// One taxed item makes the whole document taxed; the flat charge is
	// split the same way with its price as taxable value.
	res := Calculate(
		[]models.LineItem{item("1", "100", "18")},
		[]models.Charge{{Description: "freight", Price: dec("50"), TaxRate: dec("18")}},
	)

	require.True(t, res.HasTax)
	require.Len(t, res.Rows, 2)

	charge := res.Rows[1]
	require.Nil(t, charge.Quantity)
	require.Nil(t, charge.UnitPrice)
	require.Equal(t, "50", charge.TaxableValue.String())
	require.Equal(t, "4.5", charge.CGST.String())
	require.Equal(t, "4.5", charge.SGST.String())
	require.Equal(t, "59", charge.Total.String())

	require.Equal(t, "150", res.Totals.TaxableValue.String())
	require.Equal(t, "177", res.Totals.GrandTotal.String())
}

func TestCalculateOneTaxedLineTaxesDocument(t *testing.T) {
	// A single positive rate anywhere switches tax on for every row.
	res := Calculate([]models.LineItem{
		item("1", "100", "0"),
		item("1", "100", "18"),
	}, nil)

	require.True(t, res.HasTax)
	require.NotNil(t, res.Rows[0].CGST)
	require.True(t, res.Rows[0].CGST.IsZero())
	require.Equal(t, "9", res.Rows[1].CGST.String())
}

func TestCalculateComponentsSplitEvenly(t *testing.T) {
	items := []models.LineItem{
		item("3", "33.33", "18"),
		item("1", "149.99", "12"),
		item("7", "9.5", "5"),
	}
	res := Calculate(items, nil)

	require.True(t, res.HasTax)
	// CGST == SGST under the even split, and together they are the
	// entire tax on the document.
	require.True(t, res.Totals.CGST.Equal(*res.Totals.SGST))

	totalTax := res.Totals.CGST.Add(*res.Totals.SGST)
	expected := res.Totals.TaxableValue.Add(totalTax).Add(res.Totals.RoundOff)
	require.True(t, res.Totals.GrandTotal.Equal(expected),
		"grand total %s != taxable+tax+roundoff %s", res.Totals.GrandTotal, expected)
}

func TestCalculateRoundOff(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		rate     string
		roundOff string
		grand    string
	}{
		{"rounds down", "100.2", "0", "-0.2", "100"},
		{"rounds up", "100.6", "0", "0.4", "101"},
		{"half rounds up", "100.5", "0", "0.5", "101"},
		{"taxed fraction", "99.99", "18", "0.0118", "118"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate([]models.LineItem{item("1", tt.price, tt.rate)}, nil)
			require.Equal(t, tt.roundOff, res.Totals.RoundOff.String())
			require.Equal(t, tt.grand, res.Totals.GrandTotal.String())
			require.True(t, res.Totals.RoundOff.Abs().LessThan(decimal.NewFromInt(1)))

			// grandTotal - (taxable + tax) == roundOff
			sum := res.Totals.TaxableValue
			if res.HasTax {
				sum = sum.Add(*res.Totals.CGST).Add(*res.Totals.SGST)
			}
			require.True(t, res.Totals.GrandTotal.Sub(sum).Equal(res.Totals.RoundOff))
		})
	}
}

func TestCalculateNoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style inputs must come out exact.
	res := Calculate([]models.LineItem{
		item("1", "0.1", "0"),
		item("1", "0.2", "0"),
	}, nil)
	require.Equal(t, "0.3", res.Totals.TaxableValue.String())
}
