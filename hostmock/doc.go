/*
Package hostmock provides a pretend waPC host for tests.

It lets tests check exactly what a guest-side component sends to the Tarmac
host (namespace, capability, function, and payload) without a real host.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "httpclient",
	  ExpectedFunction:   "call",
	  PayloadValidator: func(p []byte) error {
	    // Unmarshal and assert fields here
	    return nil
	  },
	  Response: func(p []byte) []byte { return okResponse() },
	})

	tr := wasmhttp.New(wasmhttp.Config{BaseURL: "http://example.com", HostCall: m.HostCall})

Behavior

  - Every call is recorded first; Calls returns the log.
  - If Fail is true, HostCall returns Error, or ErrOperationFailed when Error is nil.
  - Expected namespace, capability, and function are enforced only when set.
  - PayloadValidator runs next; Response, when set, builds the return bytes from
    the request payload. Otherwise HostCall returns nil.
*/
package hostmock
