// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package osf is the client of the upstream JSON:API data store.

It is the only package that speaks HTTP to the API. Repositories in
internal/core translate its [Resource] documents into domain entities.

# Identity

When the request context carries a viewer session, the viewer's upstream access
token is forwarded as a bearer token, so that permission fields such as
current_user_permissions are computed for that viewer.
*/
package osf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
	"github.com/eliezyer/ember-osf-preprints/pkg/pagination"
)

const (
	mediaType       = "application/vnd.api+json"
	maxResponseSize = 8 << 20
)

// Client performs authenticated GET requests against the upstream API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient parses the API root URL and returns a ready-to-use client.
//
// # Parameters
//   - baseURL: API root, e.g. "https://api.osf.io/v2/".
//   - timeout: per-request deadline.
//   - logger: structured logger for upstream events.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("osf: invalid base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("osf: base URL %q must be absolute", baseURL)
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Get fetches a document at path (relative to the API root) with query params.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Document, error) {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimLeft(path, "/")})
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("osf: build request: %w", err))
	}
	request.Header.Set("Accept", mediaType)
	if token := ctxutil.GetAccessToken(ctx); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	startTime := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperr.Upstream(fmt.Errorf("osf: GET %s: %w", endpoint.Path, err))
	}
	defer response.Body.Close()

	c.logger.DebugContext(ctx, "upstream_request_finished",
		slog.String("path", endpoint.Path),
		slog.Int("status", response.StatusCode),
		slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
	)

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, apperr.Upstream(fmt.Errorf("osf: read %s: %w", endpoint.Path, err))
	}

	if err := statusError(response.StatusCode, endpoint.Path); err != nil {
		return nil, err
	}

	var document Document
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, apperr.Upstream(fmt.Errorf("osf: decode %s: %w", endpoint.Path, err))
	}

	return &document, nil
}

// GetResource fetches a single resource.
func (c *Client) GetResource(ctx context.Context, path string, params url.Values) (*Resource, error) {
	document, err := c.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	resource, err := document.One()
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	return resource, nil
}

// GetPage fetches one page (1-indexed) of a collection.
func (c *Client) GetPage(ctx context.Context, path string, params url.Values, page int) ([]Resource, pagination.Meta, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	query.Set("page", strconv.Itoa(page))

	document, err := c.Get(ctx, path, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	resources, err := document.Many()
	if err != nil {
		return nil, pagination.Meta{}, apperr.Upstream(err)
	}

	return resources, pageMeta(page, len(resources), document), nil
}

// Ping checks that the API root answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Get(ctx, "", nil)
	return err
}

// Path converts an absolute related link into a path relative to the API root.
//
// Links outside the API root are returned unchanged so that Get fails loudly.
func (c *Client) Path(href string) string {
	root := c.baseURL.String()
	if strings.HasPrefix(href, root) {
		trimmed := strings.TrimPrefix(href, root)
		if index := strings.IndexByte(trimmed, '?'); index >= 0 {
			trimmed = trimmed[:index]
		}
		return trimmed
	}
	return href
}

// pageMeta derives pagination metadata, tolerating documents without meta.per_page.
func pageMeta(page, count int, document *Document) pagination.Meta {
	if document.Meta.PerPage > 0 {
		return pagination.NewMeta(page, document.Meta.PerPage, document.Meta.Total)
	}

	totalPages := page
	if document.Links.Next != "" {
		totalPages = page + 1
	}
	return pagination.Meta{Page: page, Limit: count, Total: document.Meta.Total, TotalPages: totalPages}
}

// statusError maps upstream HTTP statuses to application errors.
func statusError(status int, path string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound, status == http.StatusGone:
		return apperr.NotFound("Resource").Wrap(fmt.Errorf("osf: GET %s: status %d", path, status))
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return apperr.Forbidden("Access to this resource is restricted").Wrap(fmt.Errorf("osf: GET %s: status %d", path, status))
	default:
		return apperr.Upstream(fmt.Errorf("osf: GET %s: status %d", path, status))
	}
}
