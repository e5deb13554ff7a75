package zomato

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by New when the key is empty.
	ErrMissingAPIKey = errors.New("zomato: api key is required")
	// ErrInvalidCoordinate is wrapped by every CoordinateError.
	ErrInvalidCoordinate = errors.New("zomato: invalid coordinate")
)

// CoordinateError reports a combined coordinate that does not split into
// exactly a latitude and a longitude.
type CoordinateError struct {
	Input string
	Parts int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("zomato: coordinate %q: expected 2 values (lat lon), got %d", e.Input, e.Parts)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// ParamError reports a query parameter value that cannot be rendered as a string.
type ParamError struct {
	Key   string
	Value any
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("zomato: parameter %q (%T): %v", e.Key, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Endpoint   Endpoint
	StatusCode int
	Snippet    string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("zomato: decode %s response (status %d): %v: %s", e.Endpoint, e.StatusCode, e.Err, e.Snippet)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RemoteError is the error object the API itself sends, e.g.
// {"code":403,"status":"Forbidden","message":"Invalid API Key"}.
type RemoteError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("zomato: remote error %d %s: %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("zomato: remote error %d: %s", e.Code, e.Message)
}
