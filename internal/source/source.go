package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/five82/hiremap/internal/hiring"
)

// Fetcher retrieves the hiring document. It is implemented by *File and
// *HTTP and can be faked in tests.
type Fetcher interface {
	Fetch(ctx context.Context) (hiring.Document, error)
}

// Ensure both sources implement Fetcher at compile time.
var (
	_ Fetcher = (*File)(nil)
	_ Fetcher = (*HTTP)(nil)
)

// ErrUnsupportedFormat is returned for file extensions that are neither JSON
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported document format")

const (
	defaultUserAgent = "hiremap/0.1"
	defaultTimeout   = 5 * time.Second
	maxDocumentBytes = 32 << 20
)

// New returns a Fetcher for location: an http(s) URL or a file path.
func New(location string, timeout time.Duration) (Fetcher, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, fmt.Errorf("source location is empty")
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTP(trimmed, timeout)
	}
	return NewFile(trimmed)
}

// File reads the document from disk. The format follows the file extension.
type File struct {
	path   string
	format Format
}

// NewFile builds a File source for path.
func NewFile(path string) (*File, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	return &File{path: path, format: format}, nil
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// Fetch reads and decodes the file.
func (f *File) Fetch(ctx context.Context) (hiring.Document, error) {
	if f == nil {
		return hiring.Document{}, fmt.Errorf("source is nil")
	}
	if err := ctx.Err(); err != nil {
		return hiring.Document{}, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return hiring.Document{}, fmt.Errorf("read document: %w", err)
	}
	return Decode(data, f.format)
}

func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// HTTP fetches the document from a URL.
type HTTP struct {
	url       *url.URL
	http      *http.Client
	userAgent string
}

// NewHTTP builds an HTTP source. A non-positive timeout uses the default.
func NewHTTP(rawURL string, timeout time.Duration) (*HTTP, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse source url %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse source url %q: missing host", rawURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTP{
		url:       u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// URL returns the document location.
func (h *HTTP) URL() string { return h.url.String() }

// Fetch downloads and decodes the document. YAML is chosen when the response
// content type or URL path says so; JSON otherwise.
func (h *HTTP) Fetch(ctx context.Context) (hiring.Document, error) {
	if h == nil {
		return hiring.Document{}, fmt.Errorf("source is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url.String(), nil)
	if err != nil {
		return hiring.Document{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.http.Do(req)
	if err != nil {
		return hiring.Document{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return hiring.Document{}, fmt.Errorf("fetch document: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return hiring.Document{}, fmt.Errorf("read response: %w", err)
	}
	return Decode(data, h.formatFor(resp))
}

func (h *HTTP) formatFor(resp *http.Response) Format {
	if strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "yaml") {
		return FormatYAML
	}
	if f, err := formatForPath(h.url.Path); err == nil {
		return f
	}
	return FormatJSON
}
