// Package core provides the household domain model.
//
// Money is a value type: assigning it copies the amount and currency, so
// mutating one copy never affects another. Job, Person and Family are
// handled through pointers and are shared by every holder.
package core

// Money pairs an amount with the currency it is expressed in.
// The amount is not validated; negative and non-finite values are kept.
type Money struct {
	Amount   float64
	Currency Currency
}

// NewMoney returns a Money of the given amount and currency.
func NewMoney(amount float64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Convert returns the amount of m expressed in the target currency.
//
// Examples:
//   NewMoney(15, USD).Convert(EUR) -> 10
//   NewMoney(10, CAN).Convert(GBP) -> 25
func (m Money) Convert(target Currency) float64 {
	return float64(m.Currency.Factor() / target.Factor() * m.Amount)
}

// Combine converts other into m's currency and applies op to m's amount.
// Neither operand is modified. An unknown op yields 0 and ErrInvalidOperation.
func (m Money) Combine(op Operation, other Money) (float64, error) {
	converted := other.Convert(m.Currency)
	switch op {
	case Add:
		return m.Amount + converted, nil
	case Subtract:
		return m.Amount - converted, nil
	default:
		return 0, ErrInvalidOperation
	}
}

// Add adds other, converted into m's currency, to m.
func (m *Money) Add(other Money) {
	m.Amount += other.Convert(m.Currency)
}

// Subtract subtracts other, converted into m's currency, from m.
func (m *Money) Subtract(other Money) {
	m.Amount -= other.Convert(m.Currency)
}

// String renders m as the currency code followed by the amount, e.g. "USD15.0".
func (m Money) String() string {
	return m.Currency.String() + FormatAmount(m.Amount)
}
