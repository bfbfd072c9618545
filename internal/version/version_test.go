package version

import (
	"strings"
	"testing"
)

func TestDefaultVersionShape(t *testing.T) {
	// The default is assembled from colored segments; regardless of whether
	// the escapes are active, the dotted triple and the -dev marker must
	// survive.
	if got := strings.Count(Version, "."); got != 2 {
		t.Fatalf("Version %q has %d dots, want a semver triple", Version, got)
	}
	if !strings.HasSuffix(Version, "-dev") {
		t.Fatalf("default Version %q must carry the -dev suffix", Version)
	}
}

func TestOptionalMetadataDefaultsEmpty(t *testing.T) {
	// Commit, message and date only exist when baked in via -ldflags.
	for name, value := range map[string]string{
		"GitCommit":  GitCommit,
		"GitMessage": GitMessage,
		"BuildDate":  BuildDate,
	} {
		if value != "" {
			t.Fatalf("%s = %q, want empty without ldflags", name, value)
		}
	}
}

func TestBuildMetadataOverridable(t *testing.T) {
	cases := []struct {
		name   string
		target *string
		value  string
	}{
		{"Version", &Version, "1.2.3"},
		{"GitCommit", &GitCommit, "4f1c2aa"},
		{"GitMessage", &GitMessage, "cut the 1.2.3 release"},
		{"BuildDate", &BuildDate, "2026-08-27T12:00:00Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orig := *tc.target
			defer func() { *tc.target = orig }()
			*tc.target = tc.value
			if *tc.target != tc.value {
				t.Fatalf("%s = %q, want %q", tc.name, *tc.target, tc.value)
			}
		})
	}
}
