package errorvalues

import (
	"errors"
	"fmt"
)

// Kinds. Every concrete value below wraps one of them so callers can branch
// on the kind with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = fmt.Errorf("%w: user doesn't exists", ErrNotFound)
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
)

var (
	ErrEmptyUserID           = fmt.Errorf("%w: user id is empty", ErrValidation)
	ErrNotLoggedIn           = fmt.Errorf("%w: no user logged in", ErrValidation)
	ErrUnknownStream         = fmt.Errorf("%w: unknown stream key", ErrValidation)
	ErrInvalidConfiguration  = fmt.Errorf("%w: invalid configuration", ErrValidation)
	ErrInvalidMetadata       = fmt.Errorf("%w: metadata values must be strings, numbers or booleans", ErrValidation)
	ErrInvalidProgressValue  = fmt.Errorf("%w: progress value is NaN", ErrValidation)
	ErrFreezeNotFound        = fmt.Errorf("%w: freeze doesn't exist", ErrNotFound)
	ErrProgressNotFound      = fmt.Errorf("%w: progress item doesn't exist", ErrNotFound)
	ErrEventDateNotAllowed   = fmt.Errorf("%w: event date is in the future", ErrValidation)
	ErrEventExists           = errors.New("event with such id already exists")
	ErrXPEventExists         = errors.New("experience event with such id already exists")
	ErrFreezeExists          = errors.New("freeze with such id already exists")
	ErrFreezeAlreadyConsumed = errors.New("freeze already consumed")
	ErrFreezeExpired         = errors.New("freeze expired")
	ErrInsufficientFreezes   = errors.New("not enough freezes to save streak")
	ErrNothingToBridge       = errors.New("streak has no gap that freezes could bridge")
)

// InsufficientFreezesError tells the user how many more freezes a bridge needs.
type InsufficientFreezesError struct {
	Needed    int
	Available int
}

func (e *InsufficientFreezesError) Error() string {
	missing := e.Needed - e.Available
	suffix := "s"
	if missing == 1 {
		suffix = ""
	}
	return fmt.Sprintf("%s: need %d more freeze%s", ErrInsufficientFreezes.Error(), missing, suffix)
}

func (e *InsufficientFreezesError) Unwrap() error {
	return ErrInsufficientFreezes
}

// Storage wraps a persistence failure so it can be matched with ErrStorage.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
