package httprpc

import (
	"errors"
	"fmt"
)

var (
	// ErrSerialization indicates the request value could not be encoded to the wire format.
	ErrSerialization = errors.New("failed to serialize request")

	// ErrDeserialization indicates a successful response body could not be decoded into the
	// method's response type.
	ErrDeserialization = errors.New("failed to deserialize response")

	// ErrNetwork is the catch-all for connection, write, read, and response framing failures.
	// Every network failure matches it, whatever its finer cause.
	ErrNetwork = errors.New("network error")

	// ErrConnect means the connection to the peer could not be established.
	ErrConnect = errors.New("connection failed")

	// ErrWrite means the framed request could not be written in full.
	ErrWrite = errors.New("write failed")

	// ErrRead means the response could not be read to end-of-stream.
	ErrRead = errors.New("read failed")

	// ErrMalformedResponse means the peer's response framing could not be parsed.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidURL marks a base URL and path that could not be decomposed into a target.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrTransportNil is returned by New when no transport is configured.
	ErrTransportNil = errors.New("transport cannot be nil")
)

// HTTPError reports an exchange that completed with a status other than 200.
type HTTPError struct {
	// StatusCode is the numeric status the peer returned.
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// CustomError carries a caller- or transport-defined failure message.
type CustomError struct {
	// Message is returned verbatim by Error.
	Message string

	// Err optionally marks the failure with a sentinel for errors.Is.
	Err error
}

func (e *CustomError) Error() string { return e.Message }

func (e *CustomError) Unwrap() error { return e.Err }

// Custom returns a CustomError with the given message.
func Custom(msg string) error {
	return &CustomError{Message: msg}
}

// Kind names one member of the closed error taxonomy.
type Kind int

const (
	KindUnknown Kind = iota
	KindSerialization
	KindDeserialization
	KindHTTP
	KindNetwork
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindSerialization:
		return "serialization"
	case KindDeserialization:
		return "deserialization"
	case KindHTTP:
		return "http"
	case KindNetwork:
		return "network"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// KindOf classifies err. A nil error and errors from outside the taxonomy are KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var httpErr *HTTPError
	var customErr *CustomError
	switch {
	case errors.Is(err, ErrSerialization):
		return KindSerialization
	case errors.Is(err, ErrDeserialization):
		return KindDeserialization
	case errors.As(err, &httpErr):
		return KindHTTP
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.As(err, &customErr):
		return KindCustom
	default:
		return KindUnknown
	}
}

// StatusCode returns the status carried by an HTTPError in err's chain.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}

// NetworkError joins ErrNetwork with a finer cause and the underlying error, if any.
func NetworkError(cause error, err error) error {
	if err == nil {
		return errors.Join(ErrNetwork, cause)
	}
	return errors.Join(ErrNetwork, cause, err)
}

// URLError returns a custom-kind error for a target that could not be decomposed.
func URLError(msg string) error {
	return &CustomError{Message: msg, Err: ErrInvalidURL}
}
