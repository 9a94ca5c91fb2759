// Package errors defines the domain error taxonomy shared by services
// and handlers. Every user-facing failure is a *DomainError carrying
// the HTTP status it maps to; anything else surfaces as a 500.
package errors

import "net/http"

// DomainError is a user-facing failure with a stable code and an HTTP
// status mapping.
type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string { return e.Message }

// New creates a DomainError with the given code, message and status.
func New(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, Status: status}
}

// Validation failures (400).
var (
	ErrInvalidAmount = New("INVALID_AMOUNT", "invalid amount", http.StatusBadRequest)
	ErrInvalidPin    = New("INVALID_PIN_FORMAT", "PIN must be 4 to 6 digits", http.StatusBadRequest)
	ErrPhoneRequired = New("PHONE_REQUIRED", "phone number is required", http.StatusBadRequest)
)

// Authorization failures (401).
var (
	ErrPinNotSet     = New("PIN_NOT_SET", "wallet PIN has not been set", http.StatusUnauthorized)
	ErrPinMismatch   = New("PIN_MISMATCH", "invalid PIN", http.StatusUnauthorized)
	ErrNotAuthorized = New("NOT_AUTHORIZED", "not authorized", http.StatusUnauthorized)
)

// Not-found failures (404).
var (
	ErrWalletNotFound    = New("WALLET_NOT_FOUND", "wallet not found", http.StatusNotFound)
	ErrUserNotFound      = New("USER_NOT_FOUND", "user not found", http.StatusNotFound)
	ErrRecipientNotFound = New("RECIPIENT_NOT_FOUND", "recipient with this phone number not found", http.StatusNotFound)
	ErrRequestNotFound   = New("REQUEST_NOT_FOUND", "friend request not found", http.StatusNotFound)
)

// Conflict failures (400 per the API contract).
var (
	ErrInsufficientBalance = New("INSUFFICIENT_BALANCE", "insufficient balance", http.StatusBadRequest)
	ErrSelfTransfer        = New("SELF_TRANSFER", "cannot transfer to self", http.StatusBadRequest)
	ErrSelfFriend          = New("SELF_FRIEND", "cannot add yourself as a friend", http.StatusBadRequest)
	ErrPinAlreadySet       = New("PIN_ALREADY_SET", "wallet PIN is already set", http.StatusBadRequest)
	ErrAlreadyFriends      = New("ALREADY_FRIENDS", "already friends", http.StatusBadRequest)
	ErrRequestPending      = New("REQUEST_PENDING", "friend request already sent", http.StatusBadRequest)
	ErrInboundPending      = New("INBOUND_PENDING", "this user has already sent you a request", http.StatusBadRequest)
	ErrRequestProcessed    = New("REQUEST_PROCESSED", "request already processed", http.StatusBadRequest)
	ErrRequestRejected     = New("REQUEST_REJECTED", "request has been rejected", http.StatusBadRequest)
)

// Operational failures.
var (
	ErrWalletLocked       = New("WALLET_LOCKED", "wallet is locked", http.StatusForbidden)
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", "invalid credentials", http.StatusUnauthorized)
	ErrEmailTaken         = New("EMAIL_TAKEN", "email already registered", http.StatusBadRequest)
	ErrPhoneTaken         = New("PHONE_TAKEN", "phone number already registered", http.StatusBadRequest)
)
