package hostmock

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace is enforced when non-empty.
	ExpectedNamespace string

	// ExpectedCapability is enforced when non-empty.
	ExpectedCapability string

	// ExpectedFunction is enforced when non-empty.
	ExpectedFunction string

	// Error is returned when Fail is set.
	Error error

	// Fail makes every call return Error, or ErrOperationFailed when Error is nil.
	Fail bool

	// PayloadValidator inspects the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response builds the bytes returned to the guest from the request payload.
	Response func(payload []byte) []byte
}

// Call records one host invocation seen by the mock.
type Call struct {
	Namespace  string
	Capability string
	Function   string
	Payload    []byte
}

// Mock simulates the waPC host with routing checks and scripted responses.
type Mock struct {
	cfg Config

	mu    sync.Mutex
	calls []Call
}

// New creates a Mock from the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{cfg: config}, nil
}

// HostCall records the call, validates routing and payload, and returns the scripted response.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.record(namespace, capability, function, payload)

	if m.cfg.Fail {
		if m.cfg.Error != nil {
			return nil, m.cfg.Error
		}
		return nil, ErrOperationFailed
	}

	if m.cfg.ExpectedNamespace != "" && m.cfg.ExpectedNamespace != namespace {
		return nil, fmt.Errorf("%w: expected namespace %s, got %s", ErrUnexpectedNamespace, m.cfg.ExpectedNamespace, namespace)
	}

	if m.cfg.ExpectedCapability != "" && m.cfg.ExpectedCapability != capability {
		return nil, fmt.Errorf("%w: expected capability %s, got %s", ErrUnexpectedCapability, m.cfg.ExpectedCapability, capability)
	}

	if m.cfg.ExpectedFunction != "" && m.cfg.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.cfg.ExpectedFunction, function)
	}

	if m.cfg.PayloadValidator != nil {
		if err := m.cfg.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	if m.cfg.Response != nil {
		return m.cfg.Response(payload), nil
	}
	return nil, nil
}

// Calls returns a copy of every call observed so far, in order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *Mock) record(namespace, capability, function string, payload []byte) {
	p := make([]byte, len(payload))
	copy(p, payload)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    p,
	})
}
