/*
Package mock provides an in-memory httprpc.Transport for tests.

Responses are configured per verb and path, with a default for everything else,
and every call is recorded so tests can assert on what the client sent. No
network I/O is performed.
*/
package mock
