package rawhttp

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	httprpc "github.com/jamillambert/http-rpc"
)

const (
	crlf          = "\r\n"
	headerBodySep = "\r\n\r\n"
	statusOK      = 200
)

// frameRequest lays out an HTTP/1.1 request with a JSON body.
//
//	<VERB> <PATH> HTTP/1.1
//	Host: <host>
//	Content-Type: application/json
//	Content-Length: <len(body)>
//	Connection: close
//
//	<body>
//
// Connection: close asks the peer to end the stream after responding, which is
// what lets the response be read until EOF.
func frameRequest(verb, path, host string, body []byte) []byte {
	var b bytes.Buffer
	b.Grow(128 + len(path) + len(host) + len(body))

	b.WriteString(verb)
	b.WriteByte(' ')
	b.WriteString(path)
	b.WriteString(" HTTP/1.1" + crlf)
	b.WriteString("Host: " + host + crlf)
	b.WriteString("Content-Type: " + httprpc.ContentType + crlf)
	b.WriteString("Content-Length: " + strconv.Itoa(len(body)) + crlf)
	b.WriteString("Connection: close" + crlf)
	b.WriteString(crlf)
	b.Write(body)

	return b.Bytes()
}

// response is a parsed wire response.
type response struct {
	status int
	body   []byte
}

// parseResponse splits raw into status line, headers, and body.
//
// Invalid UTF-8 is replaced rather than rejected. Only the status code is taken
// from the header block; the body is everything after the first blank line.
func parseResponse(raw []byte) (response, error) {
	text := strings.ToValidUTF8(string(raw), "\uFFFD")

	headers, body, ok := strings.Cut(text, headerBodySep)
	if !ok {
		return response{}, malformed("no header/body boundary")
	}

	if headers == "" {
		return response{}, malformed("missing status line")
	}
	statusLine, _, _ := strings.Cut(headers, "\n")
	statusLine = strings.TrimSuffix(statusLine, "\r")

	fields := strings.Split(statusLine, " ")
	if len(fields) < 3 {
		return response{}, malformed("status line has fewer than three fields")
	}

	code, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return response{}, httprpc.NetworkError(httprpc.ErrMalformedResponse, err)
	}

	return response{status: int(code), body: []byte(body)}, nil
}

func malformed(detail string) error {
	return httprpc.NetworkError(httprpc.ErrMalformedResponse, errors.New(detail))
}
