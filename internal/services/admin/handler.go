package admin

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/buryatvpn/adminpanel/internal/services/admin/hashroute"
	viewsmodule "github.com/buryatvpn/adminpanel/internal/services/admin/module/views"
	"github.com/buryatvpn/adminpanel/internal/services/admin/routepath"
	"github.com/buryatvpn/adminpanel/internal/services/admin/static"
	"github.com/buryatvpn/adminpanel/internal/services/admin/transport/httpmux"
	"github.com/buryatvpn/adminpanel/internal/services/shared/htmx"
	"github.com/buryatvpn/adminpanel/internal/services/shared/route"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// staticCacheControl applies to embedded assets.
const staticCacheControl = "public, max-age=3600"

// HandlerConfig tunes the console HTTP handler.
type HandlerConfig struct {
	// RateLimit is the sustained request rate per second. Zero disables
	// limiting.
	RateLimit float64
	// RateBurst is the token bucket size.
	RateBurst int
	// StaticFS overrides the embedded assets.
	StaticFS fs.FS
	// Tracer overrides the global tracer.
	Tracer trace.Tracer
}

// Handler serves the console shell and its views.
type Handler struct {
	config HandlerConfig
}

// NewHandler builds the HTTP handler for the admin console.
func NewHandler(config HandlerConfig) http.Handler {
	if config.StaticFS == nil {
		config.StaticFS = static.FS
	}
	handler := &Handler{config: config}
	return handler.routes()
}

// routes wires the HTTP routes and middleware for the console.
func (h *Handler) routes() http.Handler {
	adminMux := http.NewServeMux()
	viewsmodule.RegisterRoutes(adminMux, h)

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, h.config.StaticFS, withStaticHeaders)
	httpmux.MountHealth(rootMux)
	httpmux.MountAdminRoutes(rootMux, adminMux)

	var next http.Handler = rootMux
	next = withRateLimit(newLimiter(h.config.RateLimit, h.config.RateBurst), next)
	next = withSecurityHeaders(next)
	next = withAccessLog(next)
	next = withTracing(h.config.Tracer, next)
	return withRequestID(next)
}

// HandleShell serves the full console document. The main area holds the
// default view until the browser reports its fragment.
func (h *Handler) HandleShell(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	if !allowRead(w, r) {
		return
	}
	router := hashroute.New(newRequestLocation(""))
	view := router.Current()
	w.Header().Set(routeViewHeader, view.String())
	htmx.RenderPage(w, r, nil, shellPage(view), pageTitle(view))
}

// HandleView resolves a reported fragment through a request-scoped router
// and renders the resulting view into the main area.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	fragment, ok := routepath.ViewName(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !htmx.IsHTMXRequest(r) {
		if fragment != "" && route.RedirectTrailingSlash(w, r) {
			return
		}
		http.Redirect(w, r, routepath.Shell(hashroute.Parse(fragment).String()), http.StatusFound)
		return
	}

	trigger := parseTrigger(r.Header.Get(routeTriggerHeader))
	changed := false
	location := newRequestLocation(strings.TrimSpace(r.Header.Get(routeCurrentHeader)))
	router := hashroute.New(location, hashroute.WithObserver(func(hashroute.View) {
		changed = true
	}))
	// Construction only restores what the page already shows.
	location.forget()
	changed = false

	switch trigger {
	case triggerInit:
		location.observe(fragment)
		router.Initialize()
	case triggerNavigate:
		router.Navigate(hashroute.Parse(fragment))
	default:
		location.observe(fragment)
		router.OnExternalChange()
	}

	view := router.Current()
	location.apply(w.Header())
	w.Header().Set(routeViewHeader, view.String())
	w.Header().Set("Vary", routeTriggerHeader+", "+routeCurrentHeader+", "+htmx.RequestHeaderKey)

	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.String("route.fragment", fragment),
		attribute.String("route.trigger", trigger),
		attribute.String("route.view", view.String()),
		attribute.Bool("route.changed", changed),
	)

	htmx.RenderPage(w, r, viewContent(view), nil, pageTitle(view))
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

// withStaticHeaders sets content type and caching for embedded assets.
func withStaticHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		}
		w.Header().Set("Cache-Control", staticCacheControl)
		next.ServeHTTP(w, r)
	})
}
