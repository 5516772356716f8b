package middleware

import (
	"context"
	"errors"

	httprpc "github.com/jamillambert/http-rpc"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned by RateLimit when no token is available.
var ErrRateLimited = httprpc.Custom("rate limit exceeded")

// RateLimit rejects calls beyond r per second, allowing bursts of burst,
// using a token bucket. Rejected calls never reach the wrapped transport.
func RateLimit(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next httprpc.Transport) httprpc.Transport {
		return httprpc.TransportFunc(func(m httprpc.Descriptor, req, resp any) error {
			if !limiter.Allow() {
				return ErrRateLimited
			}
			return next.Request(m, req, resp)
		})
	}
}

// Throttle delays calls so that at most r per second, with bursts of burst,
// reach the wrapped transport.
func Throttle(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next httprpc.Transport) httprpc.Transport {
		return httprpc.TransportFunc(func(m httprpc.Descriptor, req, resp any) error {
			if err := limiter.Wait(context.Background()); err != nil {
				// Wait only fails when burst cannot ever admit a single call.
				return errors.Join(ErrRateLimited, err)
			}
			return next.Request(m, req, resp)
		})
	}
}
