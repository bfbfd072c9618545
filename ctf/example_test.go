package ctf_test

import (
	"fmt"
	"log"
	"os"

	"ctfkit/ctf"
	"ctfkit/ctf/replay"
)

func Example() {
	dir, err := os.MkdirTemp("", "trace")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	events := []replay.Event{
		{Name: "ust_libc:malloc", TimestampNS: 1, Scopes: map[ctf.Scope][]replay.Field{
			ctf.ScopeEventFields: {replay.Uint("size", 128, 64, 10)},
		}},
		{Name: "ust_libc:malloc", TimestampNS: 2, Scopes: map[ctf.Scope][]replay.Field{
			ctf.ScopeEventFields: {replay.Uint("size", 256, 64, 10)},
		}},
		{Name: "ust_libc:free", TimestampNS: 3},
	}
	if err := replay.WriteTrace(dir, events); err != nil {
		log.Fatal(err)
	}

	trace, err := ctf.Open(dir, replay.New())
	if err != nil {
		log.Fatal(err)
	}
	defer trace.Close()

	size := ctf.IntegerSpec(ctf.ScopeEventFields, "size")
	var total uint64
	err = trace.ForEachEvent(func(ev *ctf.Event) ctf.Verdict {
		if n, ok := size.Interpret(ev); ok {
			u, _ := n.Uint64()
			total += u
		}
		return ctf.VerdictOK
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("allocated:", total)
	// Output:
	// allocated: 384
}
