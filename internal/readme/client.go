// Package readme is a minimal client for the ReadMe.com v1 API,
// covering the version, category and doc operations the sync needs.
package readme

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://dash.readme.com/api/v1"

const defaultTimeout = 30 * time.Second

// Client talks to the hosted docs API. All requests carry the project
// API key as basic-auth username and, where the endpoint is
// version-scoped, an x-readme-version header.
type Client struct {
	baseURL string
	apiKey  string
	version string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// NewClient creates a client for the given API key and docs version.
func NewClient(apiKey, version string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		version: version,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Version returns the docs version this client is scoped to.
func (c *Client) Version() string { return c.version }

// Category is a remote category.
type Category struct {
	ID    string `json:"_id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// Doc is a remote document summary.
type Doc struct {
	ID      string `json:"_id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
	Hidden  bool   `json:"hidden"`
	Body    string `json:"body"`
	Excerpt string `json:"excerpt"`
}

// DocPayload is the create/update request body for a document.
type DocPayload struct {
	Title     string `json:"title"`
	Type      string `json:"type"`
	Body      string `json:"body"`
	Category  string `json:"category"`
	Hidden    bool   `json:"hidden"`
	Order     int    `json:"order"`
	ParentDoc string `json:"parentDoc,omitempty"`
	Excerpt   string `json:"excerpt,omitempty"`
}

type version struct {
	Version      string `json:"version"`
	VersionClean string `json:"version_clean"`
	IsStable     bool   `json:"is_stable"`
}

// GetCategories lists the version's categories sorted by order.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.get(ctx, "/categories", true, &cats); err != nil {
		return nil, err
	}
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Order < cats[j].Order })
	return cats, nil
}

// GetCategoryDocs lists a category's docs sorted by order.
func (c *Client) GetCategoryDocs(ctx context.Context, categorySlug string) ([]Doc, error) {
	var docs []Doc
	if err := c.get(ctx, "/categories/"+categorySlug+"/docs", true, &docs); err != nil {
		return nil, err
	}
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Order < docs[j].Order })
	return docs, nil
}

// GetDocBySlug fetches a document and returns it as Markdown with a
// reconstructed front-matter block (title, hidden, description).
func (c *Client) GetDocBySlug(ctx context.Context, slug string) (string, error) {
	var doc Doc
	if err := c.get(ctx, "/docs/"+slug, true, &doc); err != nil {
		return "", fmt.Errorf("%w: %q", ErrDocNotFound, slug)
	}

	var fm strings.Builder
	fm.WriteString("---\n")
	fmt.Fprintf(&fm, "title: %s\n", doc.Title)
	if doc.Hidden {
		fm.WriteString("hidden: true\n")
	}
	if doc.Excerpt != "" {
		fmt.Fprintf(&fm, "description: %s\n", doc.Excerpt)
	}
	fm.WriteString("---\n")
	return fm.String() + doc.Body, nil
}

// GetDocID returns the remote id for a slug, or "" when the document
// does not exist yet.
func (c *Client) GetDocID(ctx context.Context, slug string) (string, error) {
	var doc Doc
	if err := c.get(ctx, "/docs/"+slug, true, &doc); err != nil {
		return "", nil
	}
	return doc.ID, nil
}

// CreateCategoryIfNotExists ensures a category exists and returns its
// id plus whether it was created by this call.
func (c *Client) CreateCategoryIfNotExists(ctx context.Context, slug, title string) (string, bool, error) {
	var cat Category
	if err := c.get(ctx, "/categories/"+slug, true, &cat); err == nil {
		return cat.ID, false, nil
	}

	payload := map[string]string{"title": title, "type": "guide"}
	if err := c.post(ctx, "/categories", true, payload, &cat); err != nil {
		return "", false, fmt.Errorf("%w: %q: %v", ErrCategoryCreate, title, err)
	}
	return cat.ID, true, nil
}

// CreateOrUpdateDoc pushes a document, creating it when the slug is
// unknown and updating it otherwise. Returns the remote id and whether
// the document was created.
func (c *Client) CreateOrUpdateDoc(ctx context.Context, slug string, payload DocPayload) (string, bool, error) {
	id, err := c.GetDocID(ctx, slug)
	if err != nil {
		return "", false, err
	}

	if id != "" {
		if err := c.put(ctx, "/docs/"+slug, true, payload, nil); err != nil {
			return "", false, fmt.Errorf("%w: %q: %v", ErrDocUpdate, payload.Title, err)
		}
		return id, false, nil
	}

	var doc Doc
	if err := c.post(ctx, "/docs", true, payload, &doc); err != nil {
		return "", false, fmt.Errorf("%w: %q: %v", ErrDocCreate, payload.Title, err)
	}
	return doc.ID, true, nil
}

// DeleteDoc removes a document by slug.
func (c *Client) DeleteDoc(ctx context.Context, slug string) error {
	return c.delete(ctx, "/docs/"+slug, true)
}

// DeleteCategory removes a category by slug.
func (c *Client) DeleteCategory(ctx context.Context, slug string) error {
	return c.delete(ctx, "/categories/"+slug, true)
}

// DeleteCategories removes every category in the version.
func (c *Client) DeleteCategories(ctx context.Context) error {
	cats, err := c.GetCategories(ctx)
	if err != nil {
		return err
	}
	for _, cat := range cats {
		if err := c.DeleteCategory(ctx, cat.Slug); err != nil {
			return err
		}
	}
	return nil
}

// GetStableVersion returns the clean version string of the stable
// version.
func (c *Client) GetStableVersion(ctx context.Context) (string, error) {
	var versions []version
	if err := c.get(ctx, "/version", false, &versions); err != nil {
		return "", err
	}
	for _, v := range versions {
		if v.IsStable {
			return v.VersionClean, nil
		}
	}
	return "", ErrNoStableVersion
}

// CreateVersionIfNotExists forks the client's version from the stable
// one when it does not exist yet. Returns whether it was created.
func (c *Client) CreateVersionIfNotExists(ctx context.Context) (bool, error) {
	if err := c.get(ctx, "/version/"+c.version, false, nil); err == nil {
		return false, nil
	}

	stable, err := c.GetStableVersion(ctx)
	if err != nil {
		return false, err
	}
	payload := map[string]any{
		"version":   c.version,
		"from":      stable,
		"is_stable": false,
		"is_hidden": true,
	}
	if err := c.post(ctx, "/version", false, payload, nil); err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrVersionCreate, c.version, err)
	}
	return true, nil
}

// MakeVersionStable promotes the client's version. Versions with a
// suffix like "1.2.3-rc1" are pre-releases and are left hidden.
func (c *Client) MakeVersionStable(ctx context.Context) error {
	if c.VersionHasSuffix() {
		return nil
	}
	payload := map[string]bool{"is_stable": true, "is_hidden": false}
	if err := c.put(ctx, "/version/"+c.version, false, payload, nil); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrVersionStable, c.version, err)
	}
	return nil
}

// VersionHasSuffix reports whether the version carries a pre-release
// suffix.
func (c *Client) VersionHasSuffix() bool {
	return strings.Contains(c.version, "-")
}

// DeleteVersion removes the client's version.
func (c *Client) DeleteVersion(ctx context.Context) error {
	return c.delete(ctx, "/version/v"+c.version, false)
}

func (c *Client) get(ctx context.Context, path string, versioned bool, out any) error {
	return c.do(ctx, http.MethodGet, path, versioned, nil, out)
}

func (c *Client) post(ctx context.Context, path string, versioned bool, body, out any) error {
	return c.do(ctx, http.MethodPost, path, versioned, body, out)
}

func (c *Client) put(ctx context.Context, path string, versioned bool, body, out any) error {
	return c.do(ctx, http.MethodPut, path, versioned, body, out)
}

func (c *Client) delete(ctx context.Context, path string, versioned bool) error {
	return c.do(ctx, http.MethodDelete, path, versioned, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, versioned bool, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRequestFailed, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if versioned {
		req.Header.Set("x-readme-version", c.version)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s: status %d", ErrRequestFailed, method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecodeResponse, method, path, err)
	}
	return nil
}
