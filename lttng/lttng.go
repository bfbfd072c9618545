// Package lttng drives a remote LTTng recording daemon through the lttng
// control executable. Every operation is one synchronous subprocess
// invocation; a non-zero exit status is a control-plane failure.
package lttng

import "fmt"

// Domain is the tracing domain a session records in.
type Domain uint8

const (
	// DomainKernel records kernel tracepoints.
	DomainKernel Domain = iota
	// DomainUserspace records userspace (UST) tracepoints.
	DomainUserspace
)

// String returns the lttng CLI token for the domain.
func (d Domain) String() string {
	switch d {
	case DomainKernel:
		return "kernel"
	case DomainUserspace:
		return "userspace"
	default:
		return fmt.Sprintf("Domain(%d)", d)
	}
}

// ParseDomain converts a domain name to a Domain.
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "kernel":
		return DomainKernel, nil
	case "userspace":
		return DomainUserspace, nil
	default:
		return 0, fmt.Errorf("invalid domain: %q (expected: kernel|userspace)", s)
	}
}

// Context is extra information the tracer appends to every recorded event in
// a channel, e.g. the pid or the hostname.
type Context uint8

const (
	// ContextPID appends the process id.
	ContextPID Context = iota
	// ContextProcName appends the process name.
	ContextProcName
	// ContextPrio appends the scheduling priority.
	ContextPrio
	// ContextNice appends the nice value.
	ContextNice
	// ContextVPID appends the virtual process id.
	ContextVPID
	// ContextTID appends the thread id.
	ContextTID
	// ContextVTID appends the virtual thread id.
	ContextVTID
	// ContextPPID appends the parent process id.
	ContextPPID
	// ContextVPPID appends the virtual parent process id.
	ContextVPPID
	// ContextPthreadID appends the pthread id.
	ContextPthreadID
	// ContextHostname appends the host name.
	ContextHostname
	// ContextIP appends the instruction pointer.
	ContextIP
)

// String returns the lttng CLI token for the context kind.
func (c Context) String() string {
	switch c {
	case ContextPID:
		return "pid"
	case ContextProcName:
		return "procname"
	case ContextPrio:
		return "prio"
	case ContextNice:
		return "nice"
	case ContextVPID:
		return "vpid"
	case ContextTID:
		return "tid"
	case ContextVTID:
		return "vtid"
	case ContextPPID:
		return "ppid"
	case ContextVPPID:
		return "vppid"
	case ContextPthreadID:
		return "pthread_id"
	case ContextHostname:
		return "hostname"
	case ContextIP:
		return "ip"
	default:
		return fmt.Sprintf("Context(%d)", c)
	}
}

// ParseContext converts a context name to a Context.
func ParseContext(s string) (Context, error) {
	for c := ContextPID; c <= ContextIP; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid context: %q", s)
}

// ControlError reports that a control-plane invocation did not exit cleanly.
type ControlError struct {
	Op  string // the lttng subcommand that failed
	Err error
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("lttng %s: %v", e.Op, e.Err)
}

func (e *ControlError) Unwrap() error { return e.Err }
