package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// moneyPlaces is the currency precision every stored money amount is rounded
// to. Rounding happens once, at the point an amount is committed; balances
// are never re-derived by re-summing a raw history.
const moneyPlaces = 2

// RoundMoney normalizes an amount to currency precision (half-up).
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(moneyPlaces)
}

// DerivePaymentStatus classifies a sale by the amount collected against its
// total: paid when fully covered, unpaid when nothing was collected,
// partial in between.
func DerivePaymentStatus(totalSale, amountPaid decimal.Decimal) domain.PaymentStatus {
	switch {
	case amountPaid.GreaterThanOrEqual(totalSale):
		return domain.PaymentPaid
	case amountPaid.IsPositive():
		return domain.PaymentPartial
	default:
		return domain.PaymentUnpaid
	}
}

// ProportionalShares splits total across balances in proportion to each
// balance's share of their sum. Shares are rounded to currency precision and
// the final balance absorbs the rounding remainder, so the shares sum to
// total exactly whenever no share needs clamping. Every share is clamped to
// its balance; clamping can leave part of total unassigned, which callers
// must surface rather than drop.
//
// Precondition: every balance is positive and their sum is positive.
func ProportionalShares(total decimal.Decimal, balances []decimal.Decimal) []decimal.Decimal {
	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b)
	}

	shares := make([]decimal.Decimal, len(balances))
	assigned := decimal.Zero
	for i, b := range balances {
		var share decimal.Decimal
		if i == len(balances)-1 {
			share = total.Sub(assigned)
		} else {
			share = RoundMoney(total.Mul(b).Div(sum))
		}
		if share.GreaterThan(b) {
			share = b
		}
		if share.IsNegative() {
			share = decimal.Zero
		}
		shares[i] = share
		assigned = assigned.Add(share)
	}
	return shares
}
