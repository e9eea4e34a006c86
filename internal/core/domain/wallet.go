package domain

// Wallet is the normalized projection of a wallet node. Every field is
// passed through from the graph store as-is, so each may be null.
type Wallet struct {
	AddressID any `json:"addressId"`
	Type      any `json:"type"`
	BTC       any `json:"btc"`
	ETH       any `json:"eth"`
}

// NetworkType is the address family an address parses as.
type NetworkType string

const (
	NetworkTypeUnknown NetworkType = "unknown"
	NetworkTypeEVM     NetworkType = "evm"
	NetworkTypeBitcoin NetworkType = "bitcoin"
)
