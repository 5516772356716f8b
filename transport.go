package httprpc

// Transport performs one request/response exchange for a method.
//
// Request encodes req, sends it to the transport's base URL joined with m.Path(),
// and decodes a successful response body into resp, which must be a pointer.
// Implementations return errors from the taxonomy in this package.
type Transport interface {
	Request(m Descriptor, req, resp any) error
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(m Descriptor, req, resp any) error

// Request calls f(m, req, resp).
func (f TransportFunc) Request(m Descriptor, req, resp any) error {
	return f(m, req, resp)
}

// Factory builds a transport bound to a base URL.
type Factory interface {
	NewTransport(baseURL string) Transport
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(baseURL string) Transport

// NewTransport calls f(baseURL).
func (f FactoryFunc) NewTransport(baseURL string) Transport {
	return f(baseURL)
}
