package domain

import (
	"errors"
	"testing"
)

func TestParseAddress_Permissive(t *testing.T) {
	addr, err := ParseAddress("0xABC", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.String() != "0xABC" {
		t.Errorf("expected 0xABC, got %s", addr)
	}
	if addr.Network != NetworkTypeUnknown {
		t.Errorf("expected unknown network, got %s", addr.Network)
	}

	if _, err := ParseAddress("", false); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("expected ErrInvalidAddress for empty input, got %v", err)
	}
}

func TestParseAddress_Strict(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		network NetworkType
		wantErr error
	}{
		{"checksummed eth", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", NetworkTypeEVM, nil},
		{"lowercase eth", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", NetworkTypeEVM, nil},
		{"bad checksum", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD", "", ErrChecksumMismatch},
		{"short hex", "0xABC", "", ErrInvalidAddress},
		{"p2pkh btc", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", NetworkTypeBitcoin, nil},
		{"p2sh btc", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", NetworkTypeBitcoin, nil},
		{"garbage", "not-an-address", "", ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.input, true)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if addr.Network != tt.network {
				t.Errorf("expected network %s, got %s", tt.network, addr.Network)
			}
		})
	}
}
