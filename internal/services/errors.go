package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cosmoport/shipyard/internal/constants"
)

// ErrorKind represents the category of a ship service error
type ErrorKind string

const (
	// ErrorKindValidation indicates malformed or out-of-range ship data
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindInvalidArgument indicates a malformed ship id
	ErrorKindInvalidArgument ErrorKind = "invalid_argument"
	// ErrorKindNotFound indicates no ship exists for the request
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindInternal indicates a store or other unexpected failure
	ErrorKindInternal ErrorKind = "internal"
)

// ShipError is the error type returned by ShipService
type ShipError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ShipError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ShipError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) error {
	return &ShipError{Kind: ErrorKindValidation, Message: message}
}

func NewInvalidArgumentError(message string) error {
	return &ShipError{Kind: ErrorKindInvalidArgument, Message: message}
}

func NewNotFoundError(message string) error {
	return &ShipError{Kind: ErrorKindNotFound, Message: message}
}

func wrapInternal(message string, err error) error {
	return &ShipError{Kind: ErrorKindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or ErrorKindInternal for foreign errors
func KindOf(err error) ErrorKind {
	var shipErr *ShipError
	if errors.As(err, &shipErr) {
		return shipErr.Kind
	}
	return ErrorKindInternal
}

// ParseShipID converts a raw path value into a ship id. Empty, non-integral,
// zero and negative values are rejected.
func ParseShipID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, NewInvalidArgumentError(fmt.Sprintf("%s: %q", constants.MsgInvalidShipID, raw))
	}
	return id, nil
}

func checkShipID(id int64) error {
	if id <= 0 {
		return NewInvalidArgumentError(fmt.Sprintf("%s: %d", constants.MsgInvalidShipID, id))
	}
	return nil
}
