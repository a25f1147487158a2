package repositories

import "errors"

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWalletInactive      = errors.New("wallet is not active")
)
