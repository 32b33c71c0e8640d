package hashroute

import "testing"

func TestParseKnownViews(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fragment string
		want     View
	}{
		{fragment: "dashboard", want: Dashboard},
		{fragment: "promocodes", want: Promocodes},
		{fragment: "settings", want: Settings},
		{fragment: "users", want: Users},
		{fragment: "#promocodes", want: Promocodes},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.fragment, func(t *testing.T) {
			t.Parallel()
			if got := Parse(tc.fragment); got != tc.want {
				t.Fatalf("Parse(%q) = %v, want %v", tc.fragment, got, tc.want)
			}
		})
	}
}

func TestParseFallsBackToDashboard(t *testing.T) {
	t.Parallel()

	for _, fragment := range []string{"", "#", "unknown", "Dashboard", "USERS", " users", "users/1", "promocodes?x=1"} {
		view, ok := Lookup(fragment)
		if ok {
			t.Fatalf("Lookup(%q) reported a known view", fragment)
		}
		if view != Dashboard {
			t.Fatalf("Lookup(%q) = %v, want dashboard", fragment, view)
		}
		if got := Parse(fragment); got != Dashboard {
			t.Fatalf("Parse(%q) = %v, want dashboard", fragment, got)
		}
	}
}

func TestViewStringRoundTrips(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, view := range All() {
		name := view.String()
		if name == "" {
			t.Fatalf("view %d has no name", view)
		}
		if seen[name] {
			t.Fatalf("duplicate view name %q", name)
		}
		seen[name] = true
		if got := Parse(name); got != view {
			t.Fatalf("Parse(%q) = %v, want %v", name, got, view)
		}
	}
	if len(seen) != int(viewCount) {
		t.Fatalf("All() returned %d views, want %d", len(seen), viewCount)
	}
}

func TestInvalidViewStringsAsDefault(t *testing.T) {
	t.Parallel()

	invalid := View(42)
	if invalid.Valid() {
		t.Fatal("expected View(42) to be invalid")
	}
	if got := invalid.String(); got != "dashboard" {
		t.Fatalf("String() = %q, want %q", got, "dashboard")
	}
}
