package hostcall

import (
	"errors"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "tarmac"

var (
	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host returned an invalid or unexpected payload.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrHostError means the host completed the call but reported a failure status.
	ErrHostError = errors.New("host returned an error status")
)

// Func is the waPC host call signature: namespace, capability, function, payload.
type Func func(namespace, capability, function string, payload []byte) ([]byte, error)

// Resolve returns f, or the waPC host call when f is nil.
func Resolve(f Func) Func {
	if f == nil {
		return wapc.HostCall
	}
	return f
}

// Namespace returns ns, or DefaultNamespace when ns is empty.
func Namespace(ns string) string {
	if ns == "" {
		return DefaultNamespace
	}
	return ns
}
