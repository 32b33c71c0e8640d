package admin

import (
	"net/http"
	"testing"

	"github.com/buryatvpn/adminpanel/internal/services/admin/hashroute"
)

func TestParseTrigger(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"init":      triggerInit,
		" Navigate": triggerNavigate,
		"external":  triggerExternal,
		"":          triggerExternal,
		"reload":    triggerExternal,
	}
	for raw, want := range tests {
		if got := parseTrigger(raw); got != want {
			t.Fatalf("parseTrigger(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRequestLocationRecordsPush(t *testing.T) {
	t.Parallel()

	loc := newRequestLocation("dashboard")
	router := hashroute.New(loc)
	router.Navigate(hashroute.Users)

	header := http.Header{}
	loc.apply(header)
	if got := header.Get(routePushHeader); got != "users" {
		t.Fatalf("push = %q, want users", got)
	}
	if got := header.Get(routeReplaceHeader); got != "" {
		t.Fatalf("replace = %q, want empty", got)
	}
}

func TestRequestLocationRecordsReplace(t *testing.T) {
	t.Parallel()

	loc := newRequestLocation("#nope")
	hashroute.New(loc)

	if got := loc.Fragment(); got != "dashboard" {
		t.Fatalf("fragment = %q, want dashboard", got)
	}
	header := http.Header{}
	loc.apply(header)
	if got := header.Get(routeReplaceHeader); got != "dashboard" {
		t.Fatalf("replace = %q, want dashboard", got)
	}
}

func TestRequestLocationForgetAndObserve(t *testing.T) {
	t.Parallel()

	loc := newRequestLocation("")
	router := hashroute.New(loc)
	loc.forget()

	loc.observe("#settings")
	router.OnExternalChange()

	if router.Current() != hashroute.Settings {
		t.Fatalf("current = %v, want settings", router.Current())
	}
	header := http.Header{}
	loc.apply(header)
	if len(header) != 0 {
		t.Fatalf("expected no location writes, got %v", header)
	}
}

func TestRequestLocationPushWinsOverReplace(t *testing.T) {
	t.Parallel()

	loc := newRequestLocation("users")
	loc.SetFragment("promocodes")
	loc.ReplaceFragment("promocodes")

	header := http.Header{}
	loc.apply(header)
	if got := header.Get(routePushHeader); got != "promocodes" {
		t.Fatalf("push = %q, want promocodes", got)
	}
	if got := header.Get(routeReplaceHeader); got != "" {
		t.Fatalf("replace = %q, want empty", got)
	}
}
