package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an attempt was made to create a resource that already exists.
var ErrConflict = errors.New("resource already exists")

// ErrAuthentication indicates that the supplied credentials could not be verified.
var ErrAuthentication = errors.New("invalid credentials")

// ErrInvalidAmount indicates a non-positive monetary amount was supplied to a ledger operation.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// ErrAccountNotActive indicates the account status gate failed for a mutating operation.
var ErrAccountNotActive = errors.New("account is not active")

// ErrInsufficientFunds indicates the balance cannot cover an amount plus its fee.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidTransaction indicates a malformed transaction construction, such as a
// missing counterparty reference or an unknown transaction type.
var ErrInvalidTransaction = errors.New("invalid transaction")
