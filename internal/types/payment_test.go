//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name       string
		packageFee float64
		amountPaid float64
		want       PaymentStatus
	}{
		{"Nothing paid", 400, 0, PaymentPending},
		{"Negative paid clamps to pending", 400, -10, PaymentPending},
		{"Half paid", 1200, 600, PaymentPartial},
		{"One unit short", 2000, 1999, PaymentPartial},
		{"Fully paid", 2000, 2000, PaymentPaid},
		{"Overpaid still paid", 2000, 2500, PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePaymentStatus(tt.packageFee, tt.amountPaid))
		})
	}
}

func TestPaymentRecord_Consistent(t *testing.T) {
	paid := PaymentRecord{PackageFee: 2000, AmountPaid: 2000, Currency: "$", DeclaredStatus: PaymentPaid}
	assert.Equal(t, PaymentPaid, paid.DerivedStatus())
	assert.True(t, paid.Consistent())

	// Declared status stored independently of the amounts must be flagged.
	stale := PaymentRecord{PackageFee: 1200, AmountPaid: 1200, Currency: "$", DeclaredStatus: PaymentPartial}
	assert.Equal(t, PaymentPaid, stale.DerivedStatus())
	assert.False(t, stale.Consistent())
}
