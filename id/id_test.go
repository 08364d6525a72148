package id_test

import (
	"strings"
	"testing"

	"github.com/xraph/poolbook/id"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		newFn  func() id.ID
		prefix string
	}{
		{"AccountID", id.NewAccountID, "acct_"},
		{"AssetID", id.NewAssetID, "asset_"},
		{"EventID", id.NewEventID, "evt_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.newFn().String()
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	i := id.New(id.PrefixAccount)
	if i.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if i.Prefix() != id.PrefixAccount {
		t.Errorf("expected prefix %q, got %q", id.PrefixAccount, i.Prefix())
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		newFn   func() id.ID
		parseFn func(string) (id.ID, error)
	}{
		{"AccountID", id.NewAccountID, id.ParseAccountID},
		{"AssetID", id.NewAssetID, id.ParseAssetID},
		{"EventID", id.NewEventID, id.ParseEventID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.newFn()
			parsed, err := tt.parseFn(original.String())
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if parsed.String() != original.String() {
				t.Errorf("round-trip mismatch: %q != %q", parsed.String(), original.String())
			}
		})
	}
}

func TestCrossTypeRejection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		parseFn func(string) (id.ID, error)
	}{
		{"ParseAccountID rejects asset_", id.NewAssetID().String(), id.ParseAccountID},
		{"ParseAssetID rejects evt_", id.NewEventID().String(), id.ParseAssetID},
		{"ParseEventID rejects acct_", id.NewAccountID().String(), id.ParseEventID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.parseFn(tt.input); err == nil {
				t.Errorf("expected prefix mismatch error for %q", tt.input)
			}
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "not-a-typeid", "acct_!!!"} {
		if _, err := id.Parse(input); err == nil {
			t.Errorf("Parse(%q): expected error", input)
		}
	}
}

func TestNilID(t *testing.T) {
	var nilID id.ID

	if !nilID.IsNil() {
		t.Error("zero value should be nil")
	}
	if nilID.String() != "" {
		t.Errorf("nil ID String: got %q, want empty", nilID.String())
	}

	data, err := nilID.MarshalText()
	if err != nil {
		t.Fatalf("marshal nil: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("nil ID marshals to %q, want empty", data)
	}
}

func TestScanRoundTrip(t *testing.T) {
	original := id.NewAccountID()

	var scanned id.ID
	if err := scanned.Scan(original.String()); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if scanned.String() != original.String() {
		t.Errorf("scan mismatch: %q != %q", scanned.String(), original.String())
	}

	if err := scanned.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !scanned.IsNil() {
		t.Error("scanning nil should produce the Nil ID")
	}
}
