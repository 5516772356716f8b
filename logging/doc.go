/*
Package logging sends log entries from a Tarmac WebAssembly guest to the host
runtime.

A guest has no stdout of its own, so entries travel through the host's logging
capability, one host call per entry, with the level as the function name. New
builds such a Logger; Nop discards everything and is what guest transports use
unless told otherwise.
*/
package logging
