package httprpc

// Config configures a Client.
type Config struct {
	// Transport performs every call made through the client.
	Transport Transport
}

// Client dispatches typed calls to a single transport held for its whole lifetime.
//
// A Client adds no locking of its own; it is as safe for concurrent use as its transport.
type Client struct {
	transport Transport
}

// New creates a Client around the configured transport.
func New(config Config) (*Client, error) {
	if config.Transport == nil {
		return nil, ErrTransportNil
	}
	return &Client{transport: config.Transport}, nil
}

// NewWithFactory creates a Client whose transport is built by f for baseURL.
func NewWithFactory(f Factory, baseURL string) (*Client, error) {
	if f == nil {
		return nil, ErrTransportNil
	}
	return New(Config{Transport: f.NewTransport(baseURL)})
}

// Transport returns the transport the client dispatches to.
func (c *Client) Transport() Transport { return c.transport }

// Call sends req using method m and returns the decoded response.
//
// The transport's error is returned unchanged, alongside the zero Resp.
func Call[Req, Resp any](c *Client, m Method[Req, Resp], req Req) (Resp, error) {
	var resp Resp
	if err := c.transport.Request(m, req, &resp); err != nil {
		var zero Resp
		return zero, err
	}
	return resp, nil
}
