/*
Package middleware wraps an httprpc.Transport with cross-cutting behavior.

A Middleware takes a Transport and returns one that does something before or
after delegating. Chain composes several, with the first argument outermost:

	t := middleware.Chain(
		middleware.Logging(logger),
		middleware.RateLimit(10, 5),
	)(rawhttp.New(rawhttp.Config{BaseURL: "http://api.example.com"}))

Nothing here retries. A failed call is reported once, unchanged.
*/
package middleware
