/*
Package httprpc is a small client for calling remote procedures over HTTP with
statically typed request and response pairs.

A Method binds a request type, a response type, a URL path, and a verb (POST
unless overridden). A Client holds one Transport and dispatches typed calls to
it with Call:

	var GetUser = httprpc.NewMethod[GetUserRequest, GetUserResponse]("/api/users")

	client, err := httprpc.NewWithFactory(rawhttp.Factory{}, "http://api.example.com")
	if err != nil {
		return err
	}
	user, err := httprpc.Call(client, GetUser, GetUserRequest{ID: 123})

Two transports are provided. Package rawhttp speaks HTTP/1.1 directly over a
byte-stream connection and suits ordinary hosts. Package wasmhttp runs inside a
Tarmac WebAssembly guest and hands each exchange to the host's httpclient
capability.

Every failure is one of a closed set of kinds (see Kind and KindOf):
serialization, deserialization, HTTP status, network, or custom. Errors are
returned as-is; nothing is retried.
*/
package httprpc
