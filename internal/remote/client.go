// Package remote is the store adapter for the hosted record service. Every
// operation is a single JSON request; ids are the service's own positive ids.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"catering_backend/internal/datastore"
	"catering_backend/internal/metrics"
	"catering_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

var _ datastore.DataService = (*Client)(nil)

// Client talks to the remote record service.
type Client struct {
	// baseURL is the scheme and host of the service, without a trailing slash
	baseURL string
	// apiKey is sent in the apikey header when set
	apiKey string
	// HTTPClient is used to make requests; its Timeout bounds every call
	HTTPClient *http.Client

	metrics *metrics.Metrics
	log     zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New validates baseURL and returns a client. A zero timeout means 10s.
func New(baseURL, apiKey string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid remote base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid remote base URL %q: need http(s)://host", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		apiKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
		log:        utils.Component("remote"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// endpoint identifies a resource path plus the fixed query parameters that
// select a sub-resource (the scheduling action).
type endpoint struct {
	path   string
	action string
}

func (e endpoint) String() string {
	if e.action == "" {
		return e.path
	}
	return e.path + "?action=" + e.action
}

func (e endpoint) query(extra url.Values) url.Values {
	q := url.Values{}
	if e.action != "" {
		q.Set("action", e.action)
	}
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return q
}

// do sends one request and returns the body of a 2xx answer. Failures are
// *datastore.RemoteError.
func (c *Client) do(ctx context.Context, method string, ep endpoint, extra url.Values, body io.Reader, contentType string) ([]byte, error) {
	target := c.baseURL + ep.path
	if q := ep.query(extra); len(q) > 0 {
		target += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &datastore.RemoteError{Method: method, Endpoint: ep.String(), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	requestID := utils.RequestIDFrom(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(utils.RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.metrics.RemoteCall(method, ep.String(), 0, time.Since(start))
		c.log.Warn().Err(err).Str("method", method).Str("endpoint", ep.String()).
			Str("request_id", requestID).Msg("remote request failed")
		return nil, &datastore.RemoteError{Method: method, Endpoint: ep.String(), Err: err}
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Debug().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	c.metrics.RemoteCall(method, ep.String(), resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, &datastore.RemoteError{Method: method, Endpoint: ep.String(), StatusCode: resp.StatusCode,
			Message: "reading response body", Err: err}
	}

	c.log.Debug().Str("method", method).Str("endpoint", ep.String()).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Str("request_id", requestID).Msg("remote request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &datastore.RemoteError{
			Method:     method,
			Endpoint:   ep.String(),
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, respBody),
		}
	}
	return respBody, nil
}

// errorMessage extracts error, message or reason from a JSON error body,
// falling back to the status text.
func errorMessage(status int, body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"error", "message", "reason"} {
			if s, ok := payload[key].(string); ok && s != "" {
				return s
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && len(text) < maxErrorBody && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		return text
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "status " + strconv.Itoa(status)
}

func (c *Client) sendJSON(ctx context.Context, method string, ep endpoint, extra url.Values, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, method, ep, extra, bytes.NewReader(raw), "application/json")
}

func decodeErr(method string, ep endpoint, err error) error {
	return &datastore.RemoteError{Method: method, Endpoint: ep.String(), StatusCode: http.StatusOK,
		Message: "invalid response body", Err: err}
}

func idQuery(key string, id int64) url.Values {
	return url.Values{key: {utils.Int64ToStr(id)}}
}

func listOf[T any](ctx context.Context, c *Client, entity string, ep endpoint, filter url.Values) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, ep, filter, nil, "")
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, "list", err)
	}
	out := make([]T, 0)
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, "list", decodeErr(http.MethodGet, ep, err))
	}
	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}

// getOne fetches a single record. Filter endpoints may answer with an array;
// its first element is used and an empty array is a 404.
func getOne[T any](ctx context.Context, c *Client, entity, op string, ep endpoint, filter url.Values) (*T, error) {
	body, err := c.do(ctx, http.MethodGet, ep, filter, nil, "")
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, err)
	}
	trimmed := bytes.TrimSpace(body)
	notFound := &datastore.RemoteError{Method: http.MethodGet, Endpoint: ep.String(),
		StatusCode: http.StatusNotFound, Message: "no matching record"}
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, notFound)
	case trimmed[0] == '[':
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return nil, datastore.Wrap(datastore.StoreRemote, entity, op, decodeErr(http.MethodGet, ep, err))
		}
		if len(many) == 0 {
			return nil, datastore.Wrap(datastore.StoreRemote, entity, op, notFound)
		}
		return &many[0], nil
	}
	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, decodeErr(http.MethodGet, ep, err))
	}
	return &one, nil
}

func getByID[T any](ctx context.Context, c *Client, entity string, ep endpoint, id int64) (*T, error) {
	return getOne[T](ctx, c, entity, "get", ep, idQuery("id", id))
}

// create posts payload and decodes the answer over a copy of it, so an
// acknowledgement carrying only the new id still yields a full record.
func create[T any](ctx context.Context, c *Client, entity string, ep endpoint, payload T) (*T, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, "create", fmt.Errorf("failed to marshal request: %w", err))
	}
	body, err := c.do(ctx, http.MethodPost, ep, nil, bytes.NewReader(raw), "application/json")
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, "create", err)
	}
	// Fresh copy: the caller's pointers are never decoded into.
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, "create", err)
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, datastore.Wrap(datastore.StoreRemote, entity, "create", decodeErr(http.MethodPost, ep, err))
		}
	}
	return &out, nil
}

// update sends the patch with the id in the body. When the answer carries no
// record the row is read back.
func update[T any](ctx context.Context, c *Client, entity string, ep endpoint, id int64, patch interface{}) (*T, error) {
	fields, err := patchFields(patch)
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, "update", err)
	}
	fields["id"] = id
	body, err := c.sendJSON(ctx, http.MethodPut, ep, nil, fields)
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, "update", err)
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		var out T
		if err := json.Unmarshal(trimmed, &out); err == nil && recordID(&out) != 0 {
			return &out, nil
		}
	}
	return getByID[T](ctx, c, entity, ep, id)
}

func (c *Client) remove(ctx context.Context, entity string, ep endpoint, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, ep, idQuery("id", id), nil, "")
	return datastore.Wrap(datastore.StoreRemote, entity, "delete", err)
}

// patchFields flattens a patch into its JSON object form; nil fields are
// dropped by their omitempty tags.
func patchFields(patch interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patch: %w", err)
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("patch is not an object: %w", err)
	}
	return fields, nil
}

func recordID(v interface{}) int64 {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return 0
	}
	f := rv.FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.Int64 {
		return 0
	}
	return f.Int()
}

func unsupported(entity, op string) error {
	return datastore.Wrap(datastore.StoreRemote, entity, op, datastore.ErrUnsupportedOperation)
}
