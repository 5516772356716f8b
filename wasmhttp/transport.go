package wasmhttp

import (
	"errors"
	"fmt"
	"net/url"

	httprpc "github.com/jamillambert/http-rpc"
	"github.com/jamillambert/http-rpc/hostcall"
	"github.com/jamillambert/http-rpc/logging"
	proto "github.com/tarmac-project/protobuf-go/sdk/http"
)

const (
	capabilityName = "httpclient"
	fnCall         = "call"

	hostStatusOK       = int32(200)
	hostStatusPartial  = int32(206)
	hostStatusBadInput = int32(400)
	hostStatusMissing  = int32(404)
	hostStatusError    = int32(500)

	httpStatusOK = 200
)

// Config configures the sandboxed transport and its host integration.
//
// Namespace defaults to hostcall.DefaultNamespace. InsecureSkipVerify asks the
// host to skip TLS verification when it supports that. HostCall lets tests inject
// a host; when nil the transport uses the waPC host call.
type Config struct {
	// BaseURL is joined with each method's path.
	BaseURL string

	// Namespace scopes host calls.
	Namespace string

	// InsecureSkipVerify disables TLS verification on the host side when supported.
	InsecureSkipVerify bool

	// HostCall overrides the waPC host function used for requests.
	HostCall hostcall.Func

	// Codec overrides body encoding; nil means httprpc.JSON.
	Codec httprpc.Codec

	// Logger receives debug entries; nil means logging.Nop().
	Logger logging.Logger
}

// Transport performs each exchange through the host's httpclient capability.
//
// The host call blocks the guest until the host has the response, so Request
// keeps the synchronous shape of every other transport.
type Transport struct {
	baseURL  string
	cfg      Config
	hostCall hostcall.Func
	codec    httprpc.Codec
	log      logging.Logger
}

// Ensure Transport always satisfies the httprpc.Transport interface at compile time.
var _ httprpc.Transport = (*Transport)(nil)

// New creates a sandboxed Transport from cfg.
func New(cfg Config) *Transport {
	cfg.Namespace = hostcall.Namespace(cfg.Namespace)

	t := &Transport{
		baseURL:  cfg.BaseURL,
		cfg:      cfg,
		hostCall: hostcall.Resolve(cfg.HostCall),
		codec:    httprpc.CodecOrDefault(cfg.Codec),
		log:      cfg.Logger,
	}
	if t.log == nil {
		t.log = logging.Nop()
	}
	return t
}

// BaseURL returns the base URL the transport was built with.
func (t *Transport) BaseURL() string { return t.baseURL }

// Request encodes req, hands the exchange to the host, and decodes a 200 body into resp.
func (t *Transport) Request(m httprpc.Descriptor, req, resp any) error {
	body, err := t.codec.EncodeRequest(m, req)
	if err != nil {
		return errors.Join(httprpc.ErrSerialization, err)
	}

	target, err := validateURL(t.baseURL + m.Path())
	if err != nil {
		return err
	}

	pbReq := &proto.HTTPClient{
		Method:   m.HTTPMethod(),
		Url:      target,
		Insecure: t.cfg.InsecureSkipVerify,
		Body:     body,
		Headers: map[string]*proto.Header{
			"Content-Type": {Values: []string{httprpc.ContentType}},
		},
	}

	code, respBody, err := t.doHostCall(pbReq)
	if err != nil {
		return err
	}

	t.log.Debug("rpc exchange complete", "verb", m.HTTPMethod(), "url", target, "status", code)

	if code != httpStatusOK {
		return &httprpc.HTTPError{StatusCode: code}
	}

	if err := t.codec.DecodeResponse(m, respBody, resp); err != nil {
		return errors.Join(httprpc.ErrDeserialization, err)
	}
	return nil
}

// doHostCall marshals the protobuf request, performs the host call, and returns
// the HTTP status and body reported by the host.
func (t *Transport) doHostCall(req *proto.HTTPClient) (int, []byte, error) {
	b, err := req.MarshalVT()
	if err != nil {
		return 0, nil, errors.Join(httprpc.ErrSerialization, err)
	}

	out, err := t.hostCall(t.cfg.Namespace, capabilityName, fnCall, b)
	if err != nil {
		return 0, nil, httprpc.NetworkError(hostcall.ErrHostCall, err)
	}

	var r proto.HTTPClientResponse
	if err := r.UnmarshalVT(out); err != nil {
		return 0, nil, httprpc.NetworkError(httprpc.ErrMalformedResponse, errors.Join(hostcall.ErrHostResponseInvalid, err))
	}

	status := r.GetStatus()
	if status == nil {
		return 0, nil, httprpc.NetworkError(httprpc.ErrMalformedResponse, hostcall.ErrHostResponseInvalid)
	}

	switch statusCode := status.GetCode(); statusCode {
	case hostStatusOK, hostStatusPartial:
		// success path continues
	case hostStatusBadInput, hostStatusMissing, hostStatusError:
		detail := fmt.Sprintf("host status %d", statusCode)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		return 0, nil, httprpc.NetworkError(hostcall.ErrHostError, errors.New(detail))
	default:
		return 0, nil, httprpc.NetworkError(
			hostcall.ErrHostResponseInvalid,
			fmt.Errorf("unexpected host status code %d", statusCode),
		)
	}

	return int(r.GetCode()), r.GetBody(), nil
}

// validateURL checks that rawURL names an http or https host.
func validateURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u == nil || u.Host == "" {
		return "", httprpc.URLError("Invalid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", httprpc.URLError("Only HTTP and HTTPS are supported")
	}
	return rawURL, nil
}

// Factory builds sandboxed transports sharing everything in Config except BaseURL.
type Factory struct {
	Config Config
}

// NewTransport returns a Transport for baseURL.
func (f Factory) NewTransport(baseURL string) httprpc.Transport {
	cfg := f.Config
	cfg.BaseURL = baseURL
	return New(cfg)
}
