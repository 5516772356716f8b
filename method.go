package httprpc

// DefaultVerb is the HTTP method used when a Method does not override it.
const DefaultVerb = "POST"

// Descriptor is the runtime view of a method that transports consume.
type Descriptor interface {
	// Path is appended to the transport's base URL to address the method.
	Path() string

	// HTTPMethod is the verb placed on the request line.
	HTTPMethod() string

	// Name identifies the method to envelope codecs such as JSONRPC2.
	Name() string
}

// Method binds a request type, a response type, a path, and a verb.
//
// Methods are values declared once, usually at package level:
//
//	var GetUser = httprpc.NewMethod[GetUserRequest, GetUserResponse]("/api/users")
//
// The type parameters let Call check at compile time that a request and response
// belong to the same method. A Method has no mutable state once built.
type Method[Req, Resp any] struct {
	spec methodSpec
}

type methodSpec struct {
	path string
	verb string
	name string
}

// MethodOption customizes a Method at declaration time.
type MethodOption func(*methodSpec)

// WithVerb overrides the default POST verb.
func WithVerb(verb string) MethodOption {
	return func(s *methodSpec) { s.verb = verb }
}

// WithName sets the method name reported to envelope codecs. It defaults to the path.
func WithName(name string) MethodOption {
	return func(s *methodSpec) { s.name = name }
}

// NewMethod declares a method served at path.
func NewMethod[Req, Resp any](path string, opts ...MethodOption) Method[Req, Resp] {
	spec := methodSpec{path: path, verb: DefaultVerb}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.verb == "" {
		spec.verb = DefaultVerb
	}
	if spec.name == "" {
		spec.name = path
	}
	return Method[Req, Resp]{spec: spec}
}

// Path returns the URL path of the method.
func (m Method[Req, Resp]) Path() string { return m.spec.path }

// HTTPMethod returns the verb, POST unless overridden.
func (m Method[Req, Resp]) HTTPMethod() string {
	if m.spec.verb == "" {
		return DefaultVerb
	}
	return m.spec.verb
}

// Name returns the method name, which is the path unless overridden.
func (m Method[Req, Resp]) Name() string {
	if m.spec.name == "" {
		return m.spec.path
	}
	return m.spec.name
}

var _ Descriptor = Method[struct{}, struct{}]{}
