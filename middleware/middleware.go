package middleware

import httprpc "github.com/jamillambert/http-rpc"

// Middleware decorates a Transport.
type Middleware func(next httprpc.Transport) httprpc.Transport

// Chain combines middlewares into one. The first middleware sees each call first.
func Chain(middlewares ...Middleware) Middleware {
	return func(next httprpc.Transport) httprpc.Transport {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
