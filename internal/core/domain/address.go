package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalidAddress is returned when an address matches no known format.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrChecksumMismatch is returned for mixed-case hex addresses whose
	// casing does not match the EIP-55 checksum.
	ErrChecksumMismatch = errors.New("address checksum mismatch")
)

// Address is a wallet address taken from a request.
type Address struct {
	Value   string
	Network NetworkType
}

func (a Address) String() string {
	return a.Value
}

// ParseAddress accepts any non-empty string unless strict is set. In strict
// mode the value must be an Ethereum hex address (EIP-55 checksum enforced
// for mixed case) or a Bitcoin mainnet address.
func ParseAddress(raw string, strict bool) (Address, error) {
	if raw == "" {
		return Address{}, ErrInvalidAddress
	}
	if !strict {
		return Address{Value: raw, Network: detectNetwork(raw)}, nil
	}

	if has0xPrefix(raw) {
		if !common.IsHexAddress(raw) {
			return Address{}, fmt.Errorf("%w: %q is not a 20-byte hex address", ErrInvalidAddress, raw)
		}
		hex := raw[2:]
		if hex != strings.ToLower(hex) && hex != strings.ToUpper(hex) {
			if common.HexToAddress(raw).Hex() != "0x"+hex {
				return Address{}, fmt.Errorf("%w: %s", ErrChecksumMismatch, raw)
			}
		}
		return Address{Value: raw, Network: NetworkTypeEVM}, nil
	}

	if _, err := btcutil.DecodeAddress(raw, &chaincfg.MainNetParams); err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return Address{Value: raw, Network: NetworkTypeBitcoin}, nil
}

func detectNetwork(raw string) NetworkType {
	switch {
	case common.IsHexAddress(raw):
		return NetworkTypeEVM
	case has0xPrefix(raw):
		return NetworkTypeUnknown
	}
	if _, err := btcutil.DecodeAddress(raw, &chaincfg.MainNetParams); err == nil {
		return NetworkTypeBitcoin
	}
	return NetworkTypeUnknown
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
