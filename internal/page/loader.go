// Package page loads a playlist page over HTTP and decodes its body to
// text using the charset declared by the server.
package page

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"

	"ytlist/internal/httputil"
)

// fallbackCharset names the single-byte encoding assumed when the server
// declares none.
const fallbackCharset = "latin1"

// maxBodySize caps how much of a page is read.
const maxBodySize = 32 * 1024 * 1024

// LoadError reports a failed page retrieval: network, HTTP status, or
// body decoding.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading page %s: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader fetches pages with a shared client and user agent.
type Loader struct {
	client    *http.Client
	userAgent string
}

// NewLoader creates a page loader.
func NewLoader(client *http.Client, userAgent string) *Loader {
	return &Loader{client: client, userAgent: userAgent}
}

// Load fetches url and returns the decoded page text along with the
// resolved charset name. All failures are a *LoadError.
func (l *Loader) Load(url string) (string, string, error) {
	resp, err := httputil.Get(l.client, url, l.userAgent)
	if err != nil {
		return "", "", &LoadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", &LoadError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", "", &LoadError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}

	text, name, err := decode(body, contentCharset(resp.Header.Get("Content-Type")))
	if err != nil {
		return "", "", &LoadError{URL: url, Err: err}
	}
	return text, name, nil
}

// contentCharset extracts the charset parameter from a Content-Type
// header value, or "" when none is declared.
func contentCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

// decode converts raw body bytes to text. An unknown or missing charset
// label falls back to latin-1, which maps every byte and cannot fail.
func decode(body []byte, label string) (string, string, error) {
	enc, name := charset.Lookup(label)
	if enc == nil {
		enc, name = charmap.ISO8859_1, fallbackCharset
	}
	text, err := enc.NewDecoder().String(string(body))
	if err != nil {
		return "", "", fmt.Errorf("decoding body as %s: %w", name, err)
	}
	return text, name, nil
}
