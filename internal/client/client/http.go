package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/common"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
	"github.com/dmitrijs2005/stockdesk/internal/netx"
	"github.com/google/uuid"
)

// TokenProvider returns the bearer token to attach, or "" for none.
type TokenProvider func() string

type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenProvider
	log     logging.Logger
	newID   func() string
}

type Option func(*HTTPClient)

func WithTokenProvider(p TokenProvider) Option {
	return func(c *HTTPClient) { c.token = p }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logging.Discard(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Client = (*HTTPClient)(nil)

// request describes one call. auth attaches the bearer token.
type request struct {
	method string
	path   string
	query  url.Values
	auth   bool
	body   any
	out    any
}

func (c *HTTPClient) do(ctx context.Context, r request) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	id := c.newID()
	ctx = logging.WithRequestID(ctx, id)

	req, err := netx.NewJSONRequest(ctx, r.method, u, r.body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", r.method, r.path, err)
	}
	req.Header.Set(common.RequestIDHeaderName, id)
	if r.auth && c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api request failed", "method", r.method, "path", r.path, "error", err)
		return &APIError{StatusCode: 0, Err: err}
	}

	body, err := netx.ReadBody(resp)
	c.log.Debug(ctx, "api request", "method", r.method, "path", r.path,
		"status", resp.StatusCode, "duration", time.Since(start))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: netx.ErrorMessage(body)}
	}

	return netx.DecodeJSON(body, r.out)
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (*models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/forgot-password", body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/reset-password", body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: http.MethodPatch, path: "/users/change-password", auth: true, body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	var out models.DashboardSummary
	err := c.do(ctx, request{method: http.MethodGet, path: "/dashboard/summary", auth: true, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Inventory(ctx context.Context, q models.ListQuery) (*models.Page[models.Product], error) {
	return ListPage[models.Product](ctx, c, models.ResourceInventory, q)
}

func (c *HTTPClient) ProductByCode(ctx context.Context, code string) (*models.Product, error) {
	var out models.Product
	path := "/inventory/code/" + url.PathEscape(code)
	if err := c.do(ctx, request{method: http.MethodGet, path: path, auth: true, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.ProductResponse, error) {
	var out models.ProductResponse
	err := c.do(ctx, request{method: http.MethodPost, path: "/products", auth: true, body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.ProductResponse, error) {
	var out models.ProductResponse
	path := "/products/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, auth: true, body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, request{method: http.MethodGet, path: "/categories", auth: true, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MeasurementTypes(ctx context.Context) ([]models.MeasurementType, error) {
	var out []models.MeasurementType
	if err := c.do(ctx, request{method: http.MethodGet, path: "/measurement-types", auth: true, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateStock(ctx context.Context, req models.StockUpdateRequest) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/inventory/stock", auth: true, body: req})
}

func (c *HTTPClient) List(ctx context.Context, resource models.Resource, q models.ListQuery, out any) error {
	return c.do(ctx, request{
		method: http.MethodGet,
		path:   "/" + string(resource),
		query:  q.Values(),
		auth:   true,
		out:    out,
	})
}
