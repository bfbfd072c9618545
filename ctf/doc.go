// Package ctf decodes recorded traces in the Common Trace Format into
// strongly typed, traversable in-memory events.
//
// The binary format itself is parsed by an external trace-reading engine;
// this package maps the engine's per-field handle model into owned value
// trees and drives the enumeration loop.
//
// # Usage
//
// Open a trace over an engine and enumerate its events:
//
//	trace, err := ctf.Open(root, engine)
//	if err != nil { ... }
//	defer trace.Close()
//
//	err = trace.ForEachEvent(func(ev *ctf.Event) ctf.Verdict {
//		fmt.Println(ev)
//		return ctf.VerdictOK
//	})
//
// Typed queries against assembled events go through FieldSpec:
//
//	size := ctf.IntegerSpec(ctf.ScopeEventFields, "size")
//	if n, ok := size.Interpret(ev); ok {
//		...
//	}
//
// # Concurrency
//
// Enumeration is single-threaded, synchronous and blocking. A Trace and the
// events produced from it during a pass must stay on one goroutine;
// independent traces may run concurrently.
package ctf
