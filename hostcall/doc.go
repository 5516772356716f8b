/*
Package hostcall holds the waPC plumbing shared by packages that run inside a
Tarmac WebAssembly guest.

Guests have no sockets of their own; they reach the network, the log sink, and
other capabilities through host calls addressed by namespace, capability, and
function. Func is that call's signature, Resolve picks the real waPC entry point
when no override is supplied, and DefaultNamespace is used when a namespace is
left empty.
*/
package hostcall
