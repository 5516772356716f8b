package wasmhttp

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	httprpc "github.com/jamillambert/http-rpc"
	"github.com/jamillambert/http-rpc/hostcall"
	"github.com/jamillambert/http-rpc/hostmock"
	"github.com/jamillambert/http-rpc/logging"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/http"
	pb "google.golang.org/protobuf/proto"
)

type getUserRequest struct {
	ID uint64 `json:"id"`
}

type getUserResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var (
	getUser    = httprpc.NewMethod[getUserRequest, getUserResponse]("/api/users")
	deleteUser = httprpc.NewMethod[getUserRequest, getUserResponse]("/api/users/1", httprpc.WithVerb("DELETE"))
)

// hostResponse returns a canned host response with the given HTTP code and body.
func hostResponse(hostCode int32, httpCode int32, body string) func([]byte) []byte {
	return func([]byte) []byte {
		resp := &proto.HTTPClientResponse{
			Status: &sdkproto.Status{Status: "OK", Code: hostCode},
			Code:   httpCode,
			Headers: map[string]*proto.Header{
				"Content-Type": {Values: []string{"application/json"}},
			},
			Body: []byte(body),
		}
		b, _ := pb.Marshal(resp)
		return b
	}
}

// requestValidator checks the protobuf payload the transport sends to the host.
func requestValidator(method, url, body string) func([]byte) error {
	return func(payload []byte) error {
		var req proto.HTTPClient
		if err := pb.Unmarshal(payload, &req); err != nil {
			return fmt.Errorf("could not unmarshal payload: %w", err)
		}
		if req.GetMethod() != method {
			return fmt.Errorf("method mismatch: expected %s, got %s", method, req.GetMethod())
		}
		if req.GetUrl() != url {
			return fmt.Errorf("url mismatch: expected %s, got %s", url, req.GetUrl())
		}
		if string(req.GetBody()) != body {
			return fmt.Errorf("body mismatch: expected %q, got %q", body, req.GetBody())
		}
		ct := req.GetHeaders()["Content-Type"]
		if ct == nil || len(ct.GetValues()) != 1 || ct.GetValues()[0] != "application/json" {
			return fmt.Errorf("content type header missing or wrong: %v", ct)
		}
		return nil
	}
}

func newTransportWith(t *testing.T, baseURL string, host hostmock.Config) (*Transport, *hostmock.Mock) {
	t.Helper()

	m, err := hostmock.New(host)
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}
	return New(Config{BaseURL: baseURL, Namespace: host.ExpectedNamespace, HostCall: m.HostCall}), m
}

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		namespace   string
		hostCall    hostcall.Func
		wantNS      string
		wantHostPtr uintptr
	}{
		{
			name:      "custom namespace",
			namespace: "custom",
			wantNS:    "custom",
		},
		{
			name:        "default namespace with override",
			hostCall:    customHostCall,
			wantNS:      hostcall.DefaultNamespace,
			wantHostPtr: reflect.ValueOf(customHostCall).Pointer(),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr := New(Config{BaseURL: "http://example.com", Namespace: tc.namespace, HostCall: tc.hostCall})
			if tr.cfg.Namespace != tc.wantNS {
				t.Fatalf("namespace mismatch: want %q, got %q", tc.wantNS, tr.cfg.Namespace)
			}
			if tr.codec == nil || tr.log == nil {
				t.Fatalf("expected codec and logger defaults")
			}
			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(tr.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestTransportHostMock_HappyPaths(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		method   httprpc.Method[getUserRequest, getUserResponse]
		baseURL  string
		wantVerb string
		wantURL  string
	}{
		{"default POST", getUser, "http://example.com", "POST", "http://example.com/api/users"},
		{"overridden DELETE over https", deleteUser, "https://example.com", "DELETE", "https://example.com/api/users/1"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr, m := newTransportWith(t, tc.baseURL, hostmock.Config{
				ExpectedNamespace:  hostcall.DefaultNamespace,
				ExpectedCapability: "httpclient",
				ExpectedFunction:   "call",
				PayloadValidator:   requestValidator(tc.wantVerb, tc.wantURL, `{"id":1}`),
				Response:           hostResponse(200, 200, `{"id":1,"name":"Ada","email":"ada@example.com"}`),
			})

			client, err := httprpc.New(httprpc.Config{Transport: tr})
			if err != nil {
				t.Fatalf("client: %v", err)
			}

			got, err := httprpc.Call(client, tc.method, getUserRequest{ID: 1})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := getUserResponse{ID: 1, Name: "Ada", Email: "ada@example.com"}
			if got != want {
				t.Fatalf("response mismatch: want %+v, got %+v", want, got)
			}
			if calls := m.Calls(); len(calls) != 1 {
				t.Fatalf("expected exactly one host call, got %d", len(calls))
			}
		})
	}
}

func TestTransportHostMock_InsecureFlag(t *testing.T) {
	t.Parallel()

	var seen proto.HTTPClient
	m, err := hostmock.New(hostmock.Config{
		PayloadValidator: func(p []byte) error { return seen.UnmarshalVT(p) },
		Response:         hostResponse(200, 200, `{}`),
	})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	tr := New(Config{BaseURL: "https://self-signed.local", InsecureSkipVerify: true, HostCall: m.HostCall})
	var resp getUserResponse
	if err := tr.Request(getUser, getUserRequest{}, &resp); err != nil {
		t.Fatalf("Request: %v", err)
	}

	want := &proto.HTTPClient{
		Method:   "POST",
		Url:      "https://self-signed.local/api/users",
		Insecure: true,
		Body:     []byte(`{"id":0}`),
		Headers:  map[string]*proto.Header{"Content-Type": {Values: []string{"application/json"}}},
	}
	if !pb.Equal(&seen, want) {
		t.Fatalf("payload mismatch:\nwant %v\ngot  %v", want, &seen)
	}
}

func TestTransportHostMock_Failures(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		host     hostmock.Config
		wantErrs []error
		wantKind httprpc.Kind
	}{
		{
			name:     "host call fails",
			host:     hostmock.Config{Fail: true, Error: errors.New("host call failed")},
			wantErrs: []error{httprpc.ErrNetwork, hostcall.ErrHostCall},
			wantKind: httprpc.KindNetwork,
		},
		{
			name:     "bad protobuf",
			host:     hostmock.Config{Response: func([]byte) []byte { return []byte("not-a-protobuf") }},
			wantErrs: []error{httprpc.ErrNetwork, httprpc.ErrMalformedResponse, hostcall.ErrHostResponseInvalid},
			wantKind: httprpc.KindNetwork,
		},
		{
			name:     "missing host status",
			host:     hostmock.Config{Response: func([]byte) []byte { return nil }},
			wantErrs: []error{httprpc.ErrNetwork, hostcall.ErrHostResponseInvalid},
			wantKind: httprpc.KindNetwork,
		},
		{
			name:     "host error status",
			host:     hostmock.Config{Response: hostResponse(500, 0, "")},
			wantErrs: []error{httprpc.ErrNetwork, hostcall.ErrHostError},
			wantKind: httprpc.KindNetwork,
		},
		{
			name:     "host bad input",
			host:     hostmock.Config{Response: hostResponse(400, 200, `{}`)},
			wantErrs: []error{httprpc.ErrNetwork, hostcall.ErrHostError},
			wantKind: httprpc.KindNetwork,
		},
		{
			name:     "unexpected host status",
			host:     hostmock.Config{Response: hostResponse(302, 200, `{}`)},
			wantErrs: []error{httprpc.ErrNetwork, hostcall.ErrHostResponseInvalid},
			wantKind: httprpc.KindNetwork,
		},
		{
			name:     "invalid json body",
			host:     hostmock.Config{Response: hostResponse(200, 200, `{not json`)},
			wantErrs: []error{httprpc.ErrDeserialization},
			wantKind: httprpc.KindDeserialization,
		},
		{
			name:     "partial host status still decodes http code",
			host:     hostmock.Config{Response: hostResponse(206, 404, ``)},
			wantErrs: []error{},
			wantKind: httprpc.KindHTTP,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr, _ := newTransportWith(t, "http://example.com", tc.host)

			var resp getUserResponse
			err := tr.Request(getUser, getUserRequest{ID: 1}, &resp)
			if err == nil {
				t.Fatalf("expected error")
			}
			for _, want := range tc.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("expected %v in %v", want, err)
				}
			}
			if kind := httprpc.KindOf(err); kind != tc.wantKind {
				t.Errorf("kind: want %v, got %v", tc.wantKind, kind)
			}
		})
	}
}

func TestTransportHostMock_StatusCodes(t *testing.T) {
	t.Parallel()

	for _, code := range []int32{201, 400, 404, 500, 503} {
		t.Run(fmt.Sprint(code), func(t *testing.T) {
			t.Parallel()

			tr, _ := newTransportWith(t, "http://example.com", hostmock.Config{
				Response: hostResponse(200, code, `{"error":"nope"}`),
			})

			var resp getUserResponse
			err := tr.Request(getUser, getUserRequest{ID: 1}, &resp)
			got, ok := httprpc.StatusCode(err)
			if !ok || got != int(code) {
				t.Fatalf("expected HTTP error %d, got %v", code, err)
			}
		})
	}
}

func TestTransportFailsBeforeHostCall(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		baseURL string
		req     any
		method  httprpc.Descriptor
		wantErr error
		wantMsg string
	}{
		{"unencodable request", "http://example.com", make(chan int), getUser, httprpc.ErrSerialization, ""},
		{"missing host", "/relative", getUserRequest{}, getUser, httprpc.ErrInvalidURL, "Invalid URL"},
		{"unsupported scheme", "ftp://example.com", getUserRequest{}, getUser, httprpc.ErrInvalidURL, "Only HTTP and HTTPS are supported"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr, m := newTransportWith(t, tc.baseURL, hostmock.Config{})

			var resp getUserResponse
			err := tr.Request(tc.method, tc.req, &resp)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantMsg != "" && err.Error() != tc.wantMsg {
				t.Fatalf("message mismatch: want %q, got %q", tc.wantMsg, err.Error())
			}
			if calls := m.Calls(); len(calls) != 0 {
				t.Fatalf("expected no host calls, got %d", len(calls))
			}
		})
	}
}

func TestTransportLogsThroughHost(t *testing.T) {
	t.Parallel()

	logs, err := hostmock.New(hostmock.Config{ExpectedCapability: "logging", ExpectedFunction: "Debug"})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}
	httpHost, err := hostmock.New(hostmock.Config{Response: hostResponse(200, 200, `{"id":2}`)})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	tr := New(Config{
		BaseURL:  "http://example.com",
		HostCall: httpHost.HostCall,
		Logger:   logging.New(logging.Config{HostCall: logs.HostCall}),
	})

	var resp getUserResponse
	if err := tr.Request(getUser, getUserRequest{ID: 2}, &resp); err != nil {
		t.Fatalf("Request: %v", err)
	}

	calls := logs.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(calls))
	}
	want := "rpc exchange complete verb=POST url=http://example.com/api/users status=200"
	if got := string(calls[0].Payload); got != want {
		t.Fatalf("log mismatch: want %q, got %q", want, got)
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()

	m, err := hostmock.New(hostmock.Config{
		ExpectedNamespace: "guest",
		PayloadValidator:  requestValidator("POST", "http://factory.example.com/api/users", `{"id":4}`),
		Response:          hostResponse(200, 200, `{"id":4}`),
	})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	f := Factory{Config: Config{Namespace: "guest", HostCall: m.HostCall}}
	client, err := httprpc.NewWithFactory(f, "http://factory.example.com")
	if err != nil {
		t.Fatalf("NewWithFactory: %v", err)
	}

	resp, err := httprpc.Call(client, getUser, getUserRequest{ID: 4})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if resp.ID != 4 {
		t.Errorf("id: want 4, got %d", resp.ID)
	}
	if tr := client.Transport().(*Transport); tr.BaseURL() != "http://factory.example.com" {
		t.Errorf("base URL: got %s", tr.BaseURL())
	}
}
