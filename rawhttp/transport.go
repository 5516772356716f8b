package rawhttp

import (
	"errors"
	"io"
	"net"

	httprpc "github.com/jamillambert/http-rpc"
	"go.uber.org/zap"
)

// DialFunc opens a byte-stream connection to address.
type DialFunc func(network, address string) (net.Conn, error)

// Config configures a raw Transport.
type Config struct {
	// BaseURL is joined with each method's path. It is stored verbatim and
	// decomposed on every call.
	BaseURL string

	// Dial overrides connection establishment; nil means net.Dial.
	Dial DialFunc

	// Codec overrides body encoding; nil means httprpc.JSON.
	Codec httprpc.Codec

	// Logger receives debug-level traces of each exchange; nil discards them.
	Logger *zap.Logger
}

// Transport speaks HTTP/1.1 over one fresh connection per call.
//
// A Transport holds only immutable configuration, so concurrent calls are safe
// whenever the configured Dial is.
type Transport struct {
	baseURL string
	dial    DialFunc
	codec   httprpc.Codec
	log     *zap.Logger
}

// Ensure Transport always satisfies the httprpc.Transport interface at compile time.
var _ httprpc.Transport = (*Transport)(nil)

// New creates a Transport from cfg. The base URL is not validated here.
func New(cfg Config) *Transport {
	t := &Transport{
		baseURL: cfg.BaseURL,
		dial:    cfg.Dial,
		codec:   httprpc.CodecOrDefault(cfg.Codec),
		log:     cfg.Logger,
	}
	if t.dial == nil {
		t.dial = net.Dial
	}
	if t.log == nil {
		t.log = zap.NewNop()
	}
	return t
}

// BaseURL returns the base URL the transport was built with.
func (t *Transport) BaseURL() string { return t.baseURL }

// Request encodes req, performs one exchange for m, and decodes a 200 body into resp.
func (t *Transport) Request(m httprpc.Descriptor, req, resp any) error {
	body, err := t.codec.EncodeRequest(m, req)
	if err != nil {
		return errors.Join(httprpc.ErrSerialization, err)
	}

	tgt, err := splitURL(t.baseURL + m.Path())
	if err != nil {
		return err
	}

	raw, err := t.exchange(tgt, frameRequest(m.HTTPMethod(), tgt.path, tgt.host, body))
	if err != nil {
		return err
	}

	r, err := parseResponse(raw)
	if err != nil {
		return err
	}

	t.log.Debug("rpc exchange complete",
		zap.String("verb", m.HTTPMethod()),
		zap.String("host", tgt.host),
		zap.Int("port", tgt.port),
		zap.String("path", tgt.path),
		zap.Int("status", r.status),
		zap.Int("request_bytes", len(body)),
		zap.Int("response_bytes", len(raw)),
	)

	if r.status != statusOK {
		return &httprpc.HTTPError{StatusCode: r.status}
	}

	if err := t.codec.DecodeResponse(m, r.body, resp); err != nil {
		return errors.Join(httprpc.ErrDeserialization, err)
	}
	return nil
}

// exchange dials tgt, writes the framed request, and reads until the peer closes.
func (t *Transport) exchange(tgt target, request []byte) ([]byte, error) {
	conn, err := t.dial("tcp", tgt.addr())
	if err != nil {
		return nil, httprpc.NetworkError(httprpc.ErrConnect, err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.Write(request); err != nil {
		return nil, httprpc.NetworkError(httprpc.ErrWrite, err)
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, httprpc.NetworkError(httprpc.ErrRead, err)
	}
	return raw, nil
}

// Factory builds raw transports sharing everything in Config except BaseURL.
type Factory struct {
	Config Config
}

// NewTransport returns a Transport for baseURL.
func (f Factory) NewTransport(baseURL string) httprpc.Transport {
	cfg := f.Config
	cfg.BaseURL = baseURL
	return New(cfg)
}
