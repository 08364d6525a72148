package types

import (
	"database/sql/driver"
	"fmt"
	"math/big"
)

// Amount represents a balance or contribution in the smallest unit of the
// pool's asset. All arithmetic is integer-only — no floating point — and the
// backing word is arbitrary precision, so 128-bit token amounts survive
// round-trips through every store backend.
//
// The zero value is a valid zero amount.
type Amount struct {
	v *big.Int
}

// NewAmount creates an Amount from an int64 value.
func NewAmount(v int64) Amount {
	return Amount{v: big.NewInt(v)}
}

// ZeroAmount returns the zero amount.
func ZeroAmount() Amount { return Amount{} }

// ParseAmount parses a base-10 integer string into an Amount.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmt.Errorf("amount: parse %q: empty string", s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("amount: parse %q: not a base-10 integer", s)
	}
	return Amount{v: v}, nil
}

// MustParseAmount is like ParseAmount but panics on error. Use for hardcoded values.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) bigInt() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Arithmetic operations. Amounts are immutable; every operation returns a
// fresh value and never aliases the operands.

// Add returns a + other.
func (a Amount) Add(other Amount) Amount {
	return Amount{v: new(big.Int).Add(a.bigInt(), other.bigInt())}
}

// Sub returns a - other.
func (a Amount) Sub(other Amount) Amount {
	return Amount{v: new(big.Int).Sub(a.bigInt(), other.bigInt())}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{v: new(big.Int).Neg(a.bigInt())}
}

// Comparison methods

// Cmp compares a and other, returning -1, 0 or +1.
func (a Amount) Cmp(other Amount) int {
	return a.bigInt().Cmp(other.bigInt())
}

// Equal reports whether both amounts are numerically equal.
func (a Amount) Equal(other Amount) bool { return a.Cmp(other) == 0 }

// LessThan reports whether a < other.
func (a Amount) LessThan(other Amount) bool { return a.Cmp(other) < 0 }

// GreaterThan reports whether a > other.
func (a Amount) GreaterThan(other Amount) bool { return a.Cmp(other) > 0 }

// Sign returns -1, 0 or +1 depending on the sign of the amount.
func (a Amount) Sign() int { return a.bigInt().Sign() }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.Sign() == 0 }

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool { return a.Sign() > 0 }

// IsNegative reports whether the amount is less than zero.
func (a Amount) IsNegative() bool { return a.Sign() < 0 }

// String returns the base-10 representation.
func (a Amount) String() string { return a.bigInt().String() }

// MarshalText implements encoding.TextMarshaler. Amounts serialize as
// base-10 strings so JSON consumers never hit float precision limits.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Amount) UnmarshalText(data []byte) error {
	parsed, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer. Amounts are stored as decimal strings.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Amount{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		return a.UnmarshalText(v)
	case int64:
		*a = NewAmount(v)
		return nil
	default:
		return fmt.Errorf("amount: cannot scan %T into Amount", src)
	}
}

// Sum adds up multiple amounts.
func Sum(values ...Amount) Amount {
	total := ZeroAmount()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
