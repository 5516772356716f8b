/*
Package rawhttp implements httprpc.Transport by writing HTTP/1.1 directly to a
byte-stream connection, without net/http.

Each call joins the base URL with the method path and decomposes the result
into host, default port (80 for http, 443 for https), and path. It then opens a
connection, writes a request carrying the JSON body and Connection: close, and
reads until the peer closes the stream. The status line decides the outcome:
200 decodes the body into the response, anything else becomes an
*httprpc.HTTPError carrying the code.

Limitations are deliberate. There is no TLS even for https, no keep-alive,
no chunked decoding, no redirects, and no timeout: a peer that never closes the
connection blocks the call. Supply Config.Dial to control how connections are
made, for example to add deadlines or route to a test server.
*/
package rawhttp
