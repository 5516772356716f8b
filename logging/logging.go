package logging

import (
	"fmt"
	"strings"

	"github.com/jamillambert/http-rpc/hostcall"
)

const capabilityName = "logging"

// Logger writes leveled messages with trailing key/value pairs.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)

	// With returns a Logger that appends kv to every message.
	With(kv ...any) Logger
}

// Config controls how a host-backed Logger reaches the runtime.
type Config struct {
	// Namespace scopes host calls; empty means hostcall.DefaultNamespace.
	Namespace string

	// HostCall overrides the waPC host function used for logging.
	HostCall hostcall.Func
}

// hostLogger sends each entry to the host logging capability.
type hostLogger struct {
	namespace string
	hostCall  hostcall.Func
	fields    []any
}

// New creates a Logger that emits entries through the host logging capability.
// Delivery is best effort: host errors are dropped.
func New(cfg Config) Logger {
	return &hostLogger{
		namespace: hostcall.Namespace(cfg.Namespace),
		hostCall:  hostcall.Resolve(cfg.HostCall),
	}
}

func (l *hostLogger) Debug(msg string, kv ...any) { l.log("Debug", msg, kv) }
func (l *hostLogger) Info(msg string, kv ...any)  { l.log("Info", msg, kv) }
func (l *hostLogger) Warn(msg string, kv ...any)  { l.log("Warn", msg, kv) }
func (l *hostLogger) Error(msg string, kv ...any) { l.log("Error", msg, kv) }

func (l *hostLogger) With(kv ...any) Logger {
	fields := make([]any, 0, len(l.fields)+len(kv))
	fields = append(fields, l.fields...)
	fields = append(fields, kv...)
	return &hostLogger{namespace: l.namespace, hostCall: l.hostCall, fields: fields}
}

func (l *hostLogger) log(fn, msg string, kv []any) {
	line := Format(msg, append(append([]any{}, l.fields...), kv...)...)
	_, _ = l.hostCall(l.namespace, capabilityName, fn, []byte(line))
}

// Format renders msg followed by key=value pairs. A trailing key without a value
// is rendered as key=(MISSING).
func Format(msg string, kv ...any) string {
	if len(kv) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		b.WriteByte(' ')
		fmt.Fprint(&b, kv[i])
		b.WriteByte('=')
		if i+1 < len(kv) {
			fmt.Fprint(&b, kv[i+1])
		} else {
			b.WriteString("(MISSING)")
		}
	}
	return b.String()
}

type nop struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (nop) With(...any) Logger   { return nop{} }
