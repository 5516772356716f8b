package rawhttp

import (
	"strconv"
	"strings"

	httprpc "github.com/jamillambert/http-rpc"
)

// Default ports selected by scheme. The https port is a connection parameter only;
// no TLS is negotiated.
const (
	portHTTP  = 80
	portHTTPS = 443
)

// target is the decomposed form of a base URL joined with a method path.
type target struct {
	scheme string
	host   string
	port   int
	path   string
}

// addr returns the host:port dial address.
func (t target) addr() string {
	return t.host + ":" + strconv.Itoa(t.port)
}

// splitURL decomposes rawURL into scheme, host, default port, and path.
//
// The parser is deliberately naive: the host is not validated, an explicit port
// in the authority is rejected, and query strings ride along in the path.
func splitURL(rawURL string) (target, error) {
	scheme, rest, ok := strings.Cut(rawURL, ":")
	if !ok || scheme == "" {
		return target{}, httprpc.URLError("Invalid URL")
	}

	var port int
	switch scheme {
	case "http":
		port = portHTTP
	case "https":
		port = portHTTPS
	default:
		return target{}, httprpc.URLError("Only HTTP and HTTPS are supported")
	}

	rest = strings.TrimPrefix(rest, "//")
	host, path, hasPath := strings.Cut(rest, "/")
	if host == "" {
		return target{}, httprpc.URLError("Invalid URL")
	}
	if strings.Contains(host, ":") {
		return target{}, httprpc.URLError("Explicit ports are not supported")
	}

	if hasPath {
		path = "/" + path
	} else {
		path = "/"
	}

	return target{scheme: scheme, host: host, port: port, path: path}, nil
}
