// Package htmx renders templ components for both full page loads and HTMX
// partial swaps.
package htmx

import (
	"bytes"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

const contentTypeHTML = "text/html; charset=utf-8"

// responseBuffer captures component rendering for HTMX responses.
type responseBuffer struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	headerWrote bool
}

func (w *responseBuffer) Header() http.Header {
	return w.header
}

func (w *responseBuffer) WriteHeader(status int) {
	if w.headerWrote {
		return
	}
	w.headerWrote = true
	w.statusCode = status
}

func (w *responseBuffer) Write(body []byte) (int, error) {
	return w.body.Write(body)
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage renders a page for normal or HTMX requests.
//
// HTMX requests get fragment, or the <main> content of full when fragment is
// nil, prefixed with a <title> built from title so HTMX can update the
// document title. Other requests get full, or fragment when full is nil.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, title string) {
	if IsHTMXRequest(r) {
		target := fragment
		fromFull := target == nil
		if fromFull {
			target = full
		}
		if target == nil {
			return
		}
		capture := newResponseBuffer()
		componentHandler(target).ServeHTTP(capture, r)

		body := capture.body.Bytes()
		if fromFull {
			if mainContent, ok := extractMainContent(body); ok {
				body = mainContent
			}
		}
		if capture.statusCode == http.StatusOK {
			body = addTitleIfMissing(body, TitleTag(title))
		}

		for key, values := range capture.Header() {
			for _, value := range values {
				w.Header().Set(key, value)
			}
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", contentTypeHTML)
		}
		if capture.statusCode != http.StatusOK {
			w.WriteHeader(capture.statusCode)
		}
		_, _ = w.Write(body)
		return
	}

	if full == nil {
		full = fragment
	}
	if full == nil {
		return
	}
	componentHandler(full).ServeHTTP(w, r)
}

// componentHandler serves c, logging render failures before answering 500.
func componentHandler(c templ.Component) http.Handler {
	return templ.Handler(c, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			log.Printf("render %s: %v", r.URL.Path, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	}))
}

func addTitleIfMissing(body []byte, titleTag string) []byte {
	if titleTag == "" {
		return body
	}
	if bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		return body
	}
	return append([]byte(titleTag), body...)
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.Index(body[start:], []byte(">"))
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.LastIndex(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
