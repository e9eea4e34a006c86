package domain

// Transaction is the normalized projection of a TRANSACTION relationship.
// Integer fields are nil when the store holds no value for them.
type Transaction struct {
	Hash             any    `json:"hash"`
	Value            any    `json:"value"`
	Input            any    `json:"input"`
	TransactionIndex *int64 `json:"transaction_index"`
	Gas              *int64 `json:"gas"`
	GasUsed          *int64 `json:"gas_used"`
	GasPrice         *int64 `json:"gas_price"`
	TransactionFee   any    `json:"transaction_fee"`
	BlockNumber      *int64 `json:"block_number"`
	BlockHash        any    `json:"block_hash"`
	BlockTimestamp   *int64 `json:"block_timestamp"`
	FromAddress      any    `json:"from_address"`
	ToAddress        any    `json:"to_address"`
}
