package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFoundOnDisk marks an absent state file. Callers treat it as
// "no prior state".
var ErrNotFoundOnDisk = errors.New("state not found")

// ParseError is returned for a malformed state file or API response.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FetchError is a transport failure or a non-2xx answer from the API.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type UnknownCurrencyError struct {
	Code      string
	ExpenseID int64
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("expense %d: unknown currency %q", e.ExpenseID, e.Code)
}

// DeliveryError identifies the payload that could not be posted.
type DeliveryError struct {
	Index int
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver payload %d: %v", e.Index, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// StatusError carries an unexpected HTTP status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
