//nolint:revive // types is a standard Go package name pattern
package types

// PaymentStatus is the tri-state payment position of a lead.
type PaymentStatus string

// Payment status values.
const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

// PaymentRecord holds the payment sub-record owned by an employer lead.
//
// DeclaredStatus is carried from the source data as-is. The source stored it
// independently of the fee arithmetic with nothing enforcing agreement, so
// the derived value from DerivedStatus is the one consumers should trust;
// Consistent reports when the two disagree.
type PaymentRecord struct {
	PackageFee     float64       `json:"packageFee"`
	AmountPaid     float64       `json:"amountPaid"`
	Currency       string        `json:"currency"`
	DeclaredStatus PaymentStatus `json:"status"`
}

// DerivePaymentStatus computes the payment status from the paid/fee ratio:
// nothing paid is Pending, anything short of the fee is Partial, the full
// fee (or more) is Paid.
func DerivePaymentStatus(packageFee, amountPaid float64) PaymentStatus {
	switch {
	case amountPaid <= 0:
		return PaymentPending
	case amountPaid < packageFee:
		return PaymentPartial
	default:
		return PaymentPaid
	}
}

// DerivedStatus returns the status computed from the record's amounts.
func (p PaymentRecord) DerivedStatus() PaymentStatus {
	return DerivePaymentStatus(p.PackageFee, p.AmountPaid)
}

// Consistent reports whether the declared status agrees with the amounts.
func (p PaymentRecord) Consistent() bool {
	return p.DeclaredStatus == p.DerivedStatus()
}
