package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func TestRoundMoneyHalfUp(t *testing.T) {
	assert.True(t, d(t, "10.01").Equal(accounting.RoundMoney(d(t, "10.005"))))
	assert.True(t, d(t, "10").Equal(accounting.RoundMoney(d(t, "10.004"))))
	assert.True(t, d(t, "-3.33").Equal(accounting.RoundMoney(d(t, "-3.333"))))
}

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name       string
		total      string
		paid       string
		wantStatus domain.PaymentStatus
	}{
		{"nothing collected", "100", "0", domain.PaymentUnpaid},
		{"partially collected", "100", "40", domain.PaymentPartial},
		{"fully collected", "100", "100", domain.PaymentPaid},
		{"collected above total", "100", "120", domain.PaymentPaid},
		{"zero total", "0", "0", domain.PaymentPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.DerivePaymentStatus(d(t, tt.total), d(t, tt.paid))
			assert.Equal(t, tt.wantStatus, got)
		})
	}
}

func TestProportionalSharesSplitsByBalance(t *testing.T) {
	shares := accounting.ProportionalShares(d(t, "600"), []decimal.Decimal{
		d(t, "500"), d(t, "300"), d(t, "200"),
	})
	require.Len(t, shares, 3)
	assert.True(t, d(t, "300").Equal(shares[0]))
	assert.True(t, d(t, "180").Equal(shares[1]))
	assert.True(t, d(t, "120").Equal(shares[2]))
}

func TestProportionalSharesLastShareAbsorbsRemainder(t *testing.T) {
	shares := accounting.ProportionalShares(d(t, "100"), []decimal.Decimal{
		d(t, "100"), d(t, "100"), d(t, "100"),
	})
	require.Len(t, shares, 3)
	assert.True(t, d(t, "33.33").Equal(shares[0]))
	assert.True(t, d(t, "33.33").Equal(shares[1]))
	assert.True(t, d(t, "33.34").Equal(shares[2]))

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	assert.True(t, d(t, "100").Equal(sum))
}

func TestProportionalSharesClampsToBalance(t *testing.T) {
	// Each of the big shares rounds 2.99/3.01 down to 0.99, leaving 0.02 for
	// a balance that can only absorb 0.01. The last share is clamped and one
	// cent stays unassigned for the caller to report.
	shares := accounting.ProportionalShares(d(t, "2.99"), []decimal.Decimal{
		d(t, "1.00"), d(t, "1.00"), d(t, "1.00"), d(t, "0.01"),
	})
	require.Len(t, shares, 4)
	assert.True(t, d(t, "0.99").Equal(shares[0]))
	assert.True(t, d(t, "0.99").Equal(shares[1]))
	assert.True(t, d(t, "0.99").Equal(shares[2]))
	assert.True(t, d(t, "0.01").Equal(shares[3]))

	assigned := decimal.Zero
	for _, s := range shares {
		assigned = assigned.Add(s)
	}
	assert.True(t, d(t, "2.98").Equal(assigned))
}

func TestProportionalSharesSingleBalance(t *testing.T) {
	shares := accounting.ProportionalShares(d(t, "75"), []decimal.Decimal{d(t, "200")})
	require.Len(t, shares, 1)
	assert.True(t, d(t, "75").Equal(shares[0]))
}
