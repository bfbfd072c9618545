package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"ctfkit/ctf"
)

func sampleEvents() []Event {
	return []Event{
		{
			Name:        "mem:malloc",
			Cycles:      100,
			TimestampNS: 1000,
			Scopes: map[ctf.Scope][]Field{
				ctf.ScopeStreamEventHeader: {Uint("id", 1, 16, 10)},
				ctf.ScopeEventFields: {
					Uint("size", 64, 64, 10),
					String("caller", "main"),
				},
			},
		},
		{
			Name:        "mem:free",
			Cycles:      200,
			TimestampNS: 2000,
			Scopes: map[ctf.Scope][]Field{
				ctf.ScopeEventFields: {
					Structure("hdr",
						Int("code", -1, 32, 10),
						Variant("detail", Float("ratio", 0.5)),
					),
					Sequence("pcs", Uint("", 1, 64, 16), Uint("", 2, 64, 16)),
					Enum("state", "IDLE", Uint("", 0, 8, 10)),
				},
			},
		},
	}
}

func TestWriteReadTraceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := WriteTrace(dir, sampleEvents()); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}

	// The locator must recognize the layout.
	found, err := ctf.FindTraceDir(dir)
	if err != nil {
		t.Fatalf("FindTraceDir: %v", err)
	}
	if found != dir {
		t.Fatalf("locator resolved %q, want %q", found, dir)
	}

	events, err := ReadTrace(dir)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Name != "mem:malloc" || events[1].Cycles != 200 {
		t.Fatalf("event data not preserved: %+v", events)
	}
	fields := events[1].Scopes[ctf.ScopeEventFields]
	if len(fields) != 3 || fields[0].Kind != ctf.KindStructure {
		t.Fatalf("field tree not preserved: %+v", fields)
	}
}

func TestFileBackedEngineDecodesThroughCore(t *testing.T) {
	dir := t.TempDir()
	if err := WriteTrace(dir, sampleEvents()); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}

	trace, err := ctf.Open(dir, New())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer trace.Close()

	size := ctf.IntegerSpec(ctf.ScopeEventFields, "size")
	var names []string
	var sizes []uint64
	err = trace.ForEachEvent(func(ev *ctf.Event) ctf.Verdict {
		names = append(names, ev.Name)
		if n, ok := size.Interpret(ev); ok {
			u, err := n.Uint64()
			if err != nil {
				t.Errorf("Uint64: %v", err)
			}
			sizes = append(sizes, u)
		}
		return ctf.VerdictOK
	})
	if err != nil {
		t.Fatalf("ForEachEvent: %v", err)
	}
	if strings.Join(names, ",") != "mem:malloc,mem:free" {
		t.Fatalf("names = %v", names)
	}
	if len(sizes) != 1 || sizes[0] != 64 {
		t.Fatalf("sizes = %v, want [64]", sizes)
	}
}

func TestInMemoryEngineServesFixedEvents(t *testing.T) {
	eng := FromEvents(sampleEvents()...)
	session, err := eng.OpenSession("ignored")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	it, err := session.Iterate()
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	count := 0
	it.OnEvent(func(ctf.RawEvent) ctf.CallbackStatus {
		count++
		return ctf.StatusOK
	})
	for {
		if _, ok := it.ReadCurrent(); !ok {
			break
		}
		if err := it.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if count != 2 {
		t.Fatalf("delivered %d events, want 2", count)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := session.Iterate(); err == nil {
		t.Fatalf("Iterate on a closed session must fail")
	}
}

func TestInjectedFieldFailureAbortsDecoding(t *testing.T) {
	broken := Event{
		Name: "broken",
		Scopes: map[ctf.Scope][]Field{
			ctf.ScopeEventFields: {{Name: "bad", Kind: ctf.KindString, Fail: "str"}},
		},
	}
	eng := FromEvents(sampleEvents()[0], broken)

	dir := t.TempDir()
	if err := WriteTrace(dir, nil); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}
	trace, err := ctf.Open(dir, eng)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer trace.Close()

	delivered := 0
	err = trace.ForEachEvent(func(*ctf.Event) ctf.Verdict {
		delivered++
		return ctf.VerdictOK
	})
	var derr *ctf.DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if delivered != 1 {
		t.Fatalf("delivered %d events before the failure, want 1", delivered)
	}
}

func TestFailAdvanceKnob(t *testing.T) {
	eng := FromEvents(sampleEvents()...)
	eng.FailAdvanceAfter = 1

	dir := t.TempDir()
	if err := WriteTrace(dir, nil); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}
	trace, err := ctf.Open(dir, eng)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer trace.Close()

	delivered := 0
	err = trace.ForEachEvent(func(*ctf.Event) ctf.Verdict {
		delivered++
		return ctf.VerdictOK
	})
	if err == nil {
		t.Fatalf("advance failure must surface from ForEachEvent")
	}
	if delivered != 1 {
		t.Fatalf("delivered %d events, want 1", delivered)
	}
}

func TestReadTraceRejectsWrongSchema(t *testing.T) {
	if _, err := ReadTrace(t.TempDir()); err == nil {
		t.Fatalf("ReadTrace on an empty dir must fail")
	}

	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, eventsFile))
	if err != nil {
		t.Fatalf("create events file: %v", err)
	}
	wrong := snapshot{Schema: SchemaVersion + 1, Events: sampleEvents()}
	if err := msgpack.NewEncoder(f).Encode(wrong); err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close events file: %v", err)
	}
	if _, err := ReadTrace(dir); err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("expected a schema rejection, got %v", err)
	}
}
