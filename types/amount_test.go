package types

import (
	"encoding/json"
	"testing"
)

func TestAmountConstructors(t *testing.T) {
	tests := []struct {
		name  string
		a     Amount
		str   string
		sign  int
	}{
		{"Positive", NewAmount(100_000_000), "100000000", 1},
		{"Negative", NewAmount(-42), "-42", -1},
		{"Zero", ZeroAmount(), "0", 0},
		{"ZeroValue", Amount{}, "0", 0},
		{"Beyond int64", MustParseAmount("170141183460469231731687303715884105727"), "170141183460469231731687303715884105727", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.String(); got != tt.str {
				t.Errorf("String: got %s, want %s", got, tt.str)
			}
			if got := tt.a.Sign(); got != tt.sign {
				t.Errorf("Sign: got %d, want %d", got, tt.sign)
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func() Amount
		expected Amount
	}{
		{"Add", func() Amount { return NewAmount(100).Add(NewAmount(200)) }, NewAmount(300)},
		{"Sub", func() Amount { return NewAmount(500).Sub(NewAmount(200)) }, NewAmount(300)},
		{"Neg", func() Amount { return NewAmount(100).Neg() }, NewAmount(-100)},
		{"Sum", func() Amount { return Sum(NewAmount(1), NewAmount(2), NewAmount(3)) }, NewAmount(6)},
		{"AddZeroValue", func() Amount { return Amount{}.Add(NewAmount(7)) }, NewAmount(7)},
		{"WideAdd", func() Amount {
			return MustParseAmount("9223372036854775807").Add(NewAmount(1))
		}, MustParseAmount("9223372036854775808")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(); !got.Equal(tt.expected) {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestAmountImmutability(t *testing.T) {
	a := NewAmount(100)
	_ = a.Add(NewAmount(50))
	_ = a.Neg()
	if a.String() != "100" {
		t.Errorf("operand mutated: got %s, want 100", a)
	}
}

func TestAmountComparison(t *testing.T) {
	small := NewAmount(100)
	large := NewAmount(200)

	if !small.LessThan(large) {
		t.Error("expected 100 < 200")
	}
	if !large.GreaterThan(small) {
		t.Error("expected 200 > 100")
	}
	if !small.Equal(NewAmount(100)) {
		t.Error("expected 100 == 100")
	}
	if !NewAmount(-1).IsNegative() || !small.IsPositive() || !ZeroAmount().IsZero() {
		t.Error("sign predicates broken")
	}
}

func TestAmountJSONRoundTrip(t *testing.T) {
	type record struct {
		Balance Amount `json:"balance"`
	}

	original := record{Balance: MustParseAmount("340282366920938463463374607431768211455")}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"balance":"340282366920938463463374607431768211455"}` {
		t.Errorf("unexpected encoding: %s", data)
	}

	var decoded record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Balance.Equal(original.Balance) {
		t.Errorf("round-trip mismatch: %s != %s", decoded.Balance, original.Balance)
	}
}

func TestAmountScan(t *testing.T) {
	var a Amount
	if err := a.Scan("500000000"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if !a.Equal(NewAmount(500_000_000)) {
		t.Errorf("got %s, want 500000000", a)
	}

	if err := a.Scan(int64(42)); err != nil {
		t.Fatalf("scan int64: %v", err)
	}
	if !a.Equal(NewAmount(42)) {
		t.Errorf("got %s, want 42", a)
	}

	if err := a.Scan(3.14); err == nil {
		t.Error("expected error scanning float64")
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "12.5", "abc", "0x10"} {
		if _, err := ParseAmount(input); err == nil {
			t.Errorf("ParseAmount(%q): expected error", input)
		}
	}
}
