package model

import "errors"

// Domain errors. Handlers map each one to a distinct HTTP status so callers
// can tell validation failures apart from infrastructure failures.
var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrNotOwner               = errors.New("account is not owned by the requesting user")
	ErrWrongPassword          = errors.New("wrong account password")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrDuplicateAccountNumber = errors.New("account number already in use")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrSameAccountTransfer    = errors.New("cannot transfer money to the same account")
	ErrInvalidHistoryType     = errors.New("history type must be one of all, deposit, withdrawal")
)
