package admin

import (
	"net/http"
	"strings"
)

const (
	routeTriggerHeader = "X-Route-Trigger"
	routeCurrentHeader = "X-Route-Current"
	routePushHeader    = "X-Route-Push"
	routeReplaceHeader = "X-Route-Replace"
	routeViewHeader    = "X-Route-View"
)

const (
	triggerInit     = "init"
	triggerNavigate = "navigate"
	triggerExternal = "external"
)

// parseTrigger maps the trigger header to a router operation name.
// Anything unrecognized is treated as an external change.
func parseTrigger(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case triggerInit:
		return triggerInit
	case triggerNavigate:
		return triggerNavigate
	default:
		return triggerExternal
	}
}

// requestLocation is the browser location as reported by one request.
// Router writes are recorded and later applied to the response as headers
// the client script replays against window.location.
type requestLocation struct {
	fragment string
	pushed   bool
	replaced bool
}

func newRequestLocation(fragment string) *requestLocation {
	return &requestLocation{fragment: strings.TrimPrefix(fragment, "#")}
}

func (l *requestLocation) Fragment() string {
	return l.fragment
}

func (l *requestLocation) SetFragment(fragment string) {
	l.fragment = strings.TrimPrefix(fragment, "#")
	l.pushed = true
	l.replaced = false
}

func (l *requestLocation) ReplaceFragment(fragment string) {
	l.fragment = strings.TrimPrefix(fragment, "#")
	if !l.pushed {
		l.replaced = true
	}
}

// observe records a fragment change made by the browser itself.
func (l *requestLocation) observe(fragment string) {
	l.fragment = strings.TrimPrefix(fragment, "#")
}

// forget drops recorded writes.
func (l *requestLocation) forget() {
	l.pushed = false
	l.replaced = false
}

func (l *requestLocation) apply(header http.Header) {
	switch {
	case l.pushed:
		header.Set(routePushHeader, l.fragment)
	case l.replaced:
		header.Set(routeReplaceHeader, l.fragment)
	}
}
