/*
Package wasmhttp implements httprpc.Transport for guests running inside a
waPC-compatible WebAssembly host such as Tarmac.

The guest has no sockets. Each call is encoded as a protobuf HTTPClient
message and handed to the host's "httpclient" capability, which performs the
request and returns an HTTPClientResponse. The host call blocks, so Request
behaves the same as any other transport.

Host-side failures surface as network errors: hostcall.ErrHostCall when the
call itself fails, hostcall.ErrHostError when the host reports a 400, 404 or
500 status, and httprpc.ErrMalformedResponse when the reply cannot be decoded.

	client, err := httprpc.New(httprpc.Config{
		Transport: wasmhttp.New(wasmhttp.Config{BaseURL: "https://api.example.com"}),
	})

Tests inject a host with Config.HostCall, typically hostmock.Mock.HostCall.
*/
package wasmhttp
