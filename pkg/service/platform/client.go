package platform

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/tidwall/gjson"
)

// DefaultTimeout is applied to every platform request unless overridden
const DefaultTimeout = 60 * time.Second

const (
	searchUsersPath     = "/private/user/v1/search"
	migrateUserPath     = "/private/user/v1/migrate"
	patchProfilePath    = "/private/user/v1/extended/patch"
	assignRolesPath     = "/private/user/v1/role/assign"
	responseCodeSuccess = "OK"
)

// Client talks to the learning platform's user services
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.Platform = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithAPIKey sets the bearer key sent with every request
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient replaces the HTTP client, e.g. to change transport or timeout
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a platform client for the service at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiBuilder returns a new requests.Builder configured for the platform API
func (c *Client) apiBuilder(path string) *requests.Builder {
	b := requests.
		URL(c.baseURL).
		Path(path).
		Client(c.httpClient).
		Accept("application/json")
	if c.apiKey != "" {
		b = b.Bearer(c.apiKey)
	}
	return b
}

// response is a platform reply captured regardless of its HTTP status
type response struct {
	status int
	body   string
}

// fetch executes b and captures the status and body. Only transport failures
// are returned as errors; status handling is up to the caller.
func (c *Client) fetch(ctx context.Context, operation string, b *requests.Builder) (*response, error) {
	var resp response
	err := b.
		AddValidator(func(res *http.Response) error {
			resp.status = res.StatusCode
			return nil
		}).
		ToString(&resp.body).
		Fetch(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "platform request failed",
			goerr.V("operation", operation))
	}

	ctxlog.From(ctx).Debug("platform response",
		"operation", operation,
		"status", resp.status,
	)
	return &resp, nil
}

func (r *response) isHTTPSuccess() bool {
	return r.status >= 200 && r.status < 300
}

// expectOK checks both the HTTP status and the responseCode field of the body
func (r *response) expectOK(operation string) error {
	if !r.isHTTPSuccess() {
		return newUpstreamError(operation, r)
	}
	if !gjson.Valid(r.body) {
		return goerr.Wrap(&model.UpstreamError{
			Operation:  operation,
			StatusCode: r.status,
		}, "invalid json response")
	}
	code := gjson.Get(r.body, "responseCode").String()
	if !strings.EqualFold(code, responseCodeSuccess) {
		return newUpstreamError(operation, r)
	}
	return nil
}

// errorMessagePaths lists where platform services put a human readable error
var errorMessagePaths = []string{
	"params.errorMessage",
	"params.errmsg",
	"errorMessage",
	"result.errorMessage",
}

// errorCodePaths lists where platform services put a machine readable error code
var errorCodePaths = []string{
	"params.err",
	"params.errorCode",
	"errorCode",
}

func newUpstreamError(operation string, r *response) error {
	upstream := &model.UpstreamError{
		Operation:  operation,
		StatusCode: r.status,
	}
	if gjson.Valid(r.body) {
		upstream.Message = firstString(r.body, errorMessagePaths)
		upstream.Code = firstString(r.body, errorCodePaths)
		if upstream.Code == "" {
			if code := gjson.Get(r.body, "responseCode").String(); !strings.EqualFold(code, responseCodeSuccess) {
				upstream.Code = code
			}
		}
	}
	return goerr.Wrap(upstream, "platform rejected request",
		goerr.V("operation", operation),
		goerr.V("status", r.status),
		goerr.V("code", upstream.Code),
	)
}

func firstString(body string, paths []string) string {
	for _, p := range paths {
		if v := gjson.Get(body, p); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
