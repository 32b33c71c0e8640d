package htmx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type testComponent struct {
	body string
	err  error
}

func (c testComponent) Render(_ context.Context, w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	_, err := w.Write([]byte(c.body))
	return err
}

func htmxRequest(path string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	r.Header.Set(RequestHeaderKey, "true")
	return r
}

func TestIsHTMXRequest(t *testing.T) {
	t.Run("missing_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(nil); got {
			t.Fatalf("IsHTMXRequest(nil) = true, want false")
		}
	})

	t.Run("plain_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)
		if got := IsHTMXRequest(r); got {
			t.Fatalf("IsHTMXRequest(request) = true, want false")
		}
	})

	t.Run("true_request_is_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(htmxRequest("/test")); !got {
			t.Fatalf("IsHTMXRequest(request) = false, want true")
		}
	})
}

func TestTitleTag(t *testing.T) {
	t.Parallel()
	got := TitleTag(`Промокоды <Admin>`)
	want := "<title>Промокоды &lt;Admin&gt;</title>"
	if got != want {
		t.Fatalf("TitleTag(...) = %q, want %q", got, want)
	}
	if got := TitleTag("   "); got != "" {
		t.Fatalf("TitleTag(blank) = %q, want empty", got)
	}
}

func TestRenderPageForNonHTMXUsesFullRender(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	fragment := testComponent{body: "<div>fragment</div>"}
	full := testComponent{body: "<html><body>full</body></html>"}

	RenderPage(w, r, fragment, full, "Provided")
	if got := w.Body.String(); got != "<html><body>full</body></html>" {
		t.Fatalf("rendered body = %q, want full page body", got)
	}
}

func TestRenderPageForNonHTMXFallsBackToFragment(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RenderPage(w, r, testComponent{body: "<div>fragment</div>"}, nil, "")
	if got := w.Body.String(); got != "<div>fragment</div>" {
		t.Fatalf("rendered body = %q, want fragment", got)
	}
}

func TestRenderPageForHTMXInjectsMissingTitle(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()

	RenderPage(w, htmxRequest("/test"), testComponent{body: "<section>fragment</section>"}, nil, "Fragment Page")

	got := w.Body.String()
	if !strings.HasPrefix(got, "<title>Fragment Page</title>") {
		t.Fatalf("expected injected title prefix in HTMX response, got %q", got)
	}
	if !strings.HasSuffix(got, "<section>fragment</section>") {
		t.Fatalf("expected original fragment to remain, got %q", got)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", ct)
	}
}

func TestRenderPageForHTMXPreservesExistingTitle(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()

	RenderPage(w, htmxRequest("/test"), testComponent{body: "<title>Already Set</title><section>fragment</section>"}, nil, "Injected Title")

	got := w.Body.String()
	if strings.Contains(got, "Injected Title") {
		t.Fatalf("expected no injected title, got %q", got)
	}
	if !strings.Contains(got, "<title>Already Set</title>") {
		t.Fatalf("expected existing title preserved, got %q", got)
	}
}

func TestRenderPageForHTMXExtractsMainFromFull(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()

	full := testComponent{body: `<html><body><nav>menu</nav><main id="main" class="p-6"><div>content</div></main></body></html>`}
	RenderPage(w, htmxRequest("/"), nil, full, "")

	if got := w.Body.String(); got != "<div>content</div>" {
		t.Fatalf("rendered body = %q, want main content", got)
	}
}

func TestRenderPageForHTMXRenderErrorReturns500(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()

	RenderPage(w, htmxRequest("/test"), testComponent{err: errors.New("boom")}, nil, "Title")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "<title>") {
		t.Fatalf("expected no title on error body, got %q", w.Body.String())
	}
}

func TestRenderPageForNonHTMXRenderErrorReturns500(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()

	RenderPage(w, httptest.NewRequest(http.MethodGet, "/test", nil), nil, testComponent{err: errors.New("boom")}, "Title")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestRenderPageNilComponentsWriteNothing(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	RenderPage(w, htmxRequest("/test"), nil, nil, "Title")
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
}

func TestExtractMainContentMissingMain(t *testing.T) {
	t.Parallel()
	if _, ok := extractMainContent([]byte("<div>no main</div>")); ok {
		t.Fatal("expected no main content")
	}
}
