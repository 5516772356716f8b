package httprpc

import (
	"bytes"
	"encoding/json"

	"github.com/gorilla/rpc/v2/json2"
)

// ContentType is declared on every request body.
const ContentType = "application/json"

// Codec converts between Go values and request/response bodies.
//
// Transports wrap codec failures in ErrSerialization or ErrDeserialization, so
// implementations return plain errors.
type Codec interface {
	EncodeRequest(m Descriptor, v any) ([]byte, error)
	DecodeResponse(m Descriptor, body []byte, v any) error
}

// JSON encodes the request value as the whole body and decodes the body as the response.
var JSON Codec = jsonCodec{}

// JSONRPC2 wraps request values in a JSON-RPC 2.0 envelope named by m.Name() and
// unwraps the result member of the response. An error member in the response is
// returned as a *json2.Error.
var JSONRPC2 Codec = jsonRPC2Codec{}

type jsonCodec struct{}

func (jsonCodec) EncodeRequest(_ Descriptor, v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) DecodeResponse(_ Descriptor, body []byte, v any) error {
	return json.Unmarshal(body, v)
}

type jsonRPC2Codec struct{}

func (jsonRPC2Codec) EncodeRequest(m Descriptor, v any) ([]byte, error) {
	return json2.EncodeClientRequest(m.Name(), v)
}

func (jsonRPC2Codec) DecodeResponse(_ Descriptor, body []byte, v any) error {
	return json2.DecodeClientResponse(bytes.NewReader(body), v)
}

// CodecOrDefault returns c, or JSON when c is nil.
func CodecOrDefault(c Codec) Codec {
	if c == nil {
		return JSON
	}
	return c
}
