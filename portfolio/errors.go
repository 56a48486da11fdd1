package portfolio

import "errors"

var (
	// ErrInsufficientFunds rejects a buy whose cost exceeds available cash.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares rejects a sell of more shares than are held,
	// including sells of symbols not held at all.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrInvalidQuantity rejects a non-positive trade quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
