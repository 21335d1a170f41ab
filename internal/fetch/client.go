// Package fetch retrieves the country list from a URL or local file and
// decodes it to text.
package fetch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hightemp/countrygen/internal/config"
	"github.com/schollz/progressbar/v3"
)

// Doer is the subset of *http.Client used by Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads source documents.
type Client struct {
	httpClient Doer
	timeout    time.Duration
	userAgent  string
	progress   io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP request timeout. It is ignored when
// WithHTTPClient supplies the client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithProgress renders a download progress bar to w.
func WithProgress(w io.Writer) Option {
	return func(c *Client) {
		c.progress = w
	}
}

// NewClient creates a new fetch client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		timeout:   config.DefaultTimeout,
		userAgent: config.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Document is a fetched and decoded source.
type Document struct {
	Location    string
	ContentType string
	Encoding    string
	Raw         []byte
	Text        string
	Hash        string
}

// Lines returns the document text split into lines without terminators.
func (d *Document) Lines() []string {
	if d.Text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Fetch reads location and decodes it. The charset declared by the
// response wins over defaultEncoding.
func (c *Client) Fetch(ctx context.Context, location, defaultEncoding string) (*Document, error) {
	raw, contentType, err := c.read(ctx, location)
	if err != nil {
		return nil, &FetchError{Location: location, Err: err}
	}

	enc := ResolveEncoding(contentType, defaultEncoding)
	text, err := Decode(raw, enc)
	if err != nil {
		return nil, &DecodeError{Location: location, Encoding: enc, Err: err}
	}

	return &Document{
		Location:    location,
		ContentType: contentType,
		Encoding:    enc,
		Raw:         raw,
		Text:        text,
		Hash:        HashContent(raw),
	}, nil
}

func (c *Client) read(ctx context.Context, location string) ([]byte, string, error) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || isDriveLetter(u.Scheme) {
		return readFile(location)
	}

	switch u.Scheme {
	case "http", "https":
		return c.get(ctx, location)
	case "file":
		path := u.Path
		if u.Host != "" && u.Host != "localhost" {
			path = "//" + u.Host + path
		}
		return readFile(filepath.FromSlash(path))
	default:
		return nil, "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

func (c *Client) get(ctx context.Context, location string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "text/plain, */*")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var buf bytes.Buffer
	var w io.Writer = &buf
	var bar *progressbar.ProgressBar
	if c.progress != nil {
		bar = progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(c.progress),
			progressbar.OptionSetDescription("downloading"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		w = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return buf.Bytes(), resp.Header.Get("Content-Type"), nil
}

func readFile(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, "", nil
}

func isDriveLetter(scheme string) bool {
	return len(scheme) == 1
}

// HashContent returns a SHA256 hash of the content.
func HashContent(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
