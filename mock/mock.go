package mock

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	httprpc "github.com/jamillambert/http-rpc"
)

// Response describes a synthetic reply used by the mock.
type Response struct {
	// StatusCode is the HTTP status code to return. Zero means 200.
	StatusCode int
	// Body is the raw JSON payload decoded into the caller's response.
	Body []byte
	// Error, when set, is returned instead of a response.
	Error error
}

// Call captures a single request issued through the mock.
type Call struct {
	// Verb is the HTTP method of the descriptor.
	Verb string
	// Path is the descriptor path.
	Path string
	// Body is the JSON-encoded request.
	Body []byte
}

// Config controls construction of a Transport.
type Config struct {
	// DefaultResponse is used when no verb/path-specific response has been configured.
	DefaultResponse *Response
}

// Transport implements httprpc.Transport with configurable responses and call
// recording. It is safe for concurrent use.
type Transport struct {
	mu        sync.Mutex
	responses map[string]*Response
	def       *Response
	calls     []Call
}

// Compile-time check: ensure Transport implements httprpc.Transport.
var _ httprpc.Transport = (*Transport)(nil)

// New creates a mock Transport. Without a DefaultResponse, unconfigured calls
// succeed with an empty JSON object.
func New(config Config) *Transport {
	def := config.DefaultResponse
	if def == nil {
		def = &Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}
	}

	return &Transport{
		responses: make(map[string]*Response),
		def:       def,
	}
}

// On starts configuration of a response for a given verb and path.
func (m *Transport) On(verb, path string) *ResponseBuilder {
	return &ResponseBuilder{transport: m, key: verb + " " + path}
}

// Calls returns a copy of every call recorded so far, in order.
func (m *Transport) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Request records the call and replies with the configured response.
func (m *Transport) Request(d httprpc.Descriptor, req, resp any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Join(httprpc.ErrSerialization, err)
	}

	r := m.record(d.HTTPMethod(), d.Path(), body)
	if r.Error != nil {
		return r.Error
	}

	if code := r.StatusCode; code != 0 && code != http.StatusOK {
		return &httprpc.HTTPError{StatusCode: code}
	}

	if err := json.Unmarshal(r.Body, resp); err != nil {
		return errors.Join(httprpc.ErrDeserialization, err)
	}
	return nil
}

// record appends the call and returns the response to reply with.
func (m *Transport) record(verb, path string, body []byte) *Response {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{Verb: verb, Path: path, Body: body})
	if r, ok := m.responses[verb+" "+path]; ok {
		return r
	}
	return m.def
}

// ResponseBuilder configures the response for one verb and path.
type ResponseBuilder struct {
	transport *Transport
	key       string
}

// Return sets the response for the configured verb and path.
func (r *ResponseBuilder) Return(response *Response) *Transport {
	r.transport.mu.Lock()
	defer r.transport.mu.Unlock()
	r.transport.responses[r.key] = response
	return r.transport
}

// ReturnError configures an error for the configured verb and path.
func (r *ResponseBuilder) ReturnError(err error) *Transport {
	return r.Return(&Response{Error: err})
}
