// Package upstream is the client of the remote REST API that owns customers,
// notifications, coupons and packages.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairyhunter13/subscription-admin/internal/metrics"
	"github.com/fairyhunter13/subscription-admin/internal/model"
)

const tracerName = "github.com/fairyhunter13/subscription-admin/internal/upstream"

// Options configures a Client.
type Options struct {
	BaseURL     string
	Timeout     time.Duration
	Credentials CredentialSource
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Client calls the remote REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	creds   CredentialSource
	http    *fasthttp.Client
	tracer  trace.Tracer
}

// NewClient creates a new Client with the given options.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	creds := opts.Credentials
	if creds == nil {
		creds = NewTokenStore("")
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: timeout,
		creds:   creds,
		http: &fasthttp.Client{
			Name:                     "subscription-admin",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxIdleConnDuration:      90 * time.Second,
			NoDefaultUserAgentHeader: true,
			DisablePathNormalizing:   true,
		},
		tracer: tp.Tracer(tracerName),
	}
}

// ListCustomers fetches every customer with the tier counts summary.
func (c *Client) ListCustomers(ctx context.Context) (*model.CustomerList, error) {
	var out model.CustomerList
	if err := c.do(ctx, "list_customers", fasthttp.MethodGet, "/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListNotificationHistory fetches the per-customer notification history.
func (c *Client) ListNotificationHistory(ctx context.Context) ([]model.NotificationHistory, error) {
	var out []model.NotificationHistory
	if err := c.do(ctx, "list_notification_history", fasthttp.MethodGet, "/admin/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCoupons fetches every coupon.
func (c *Client) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	var out []model.Coupon
	if err := c.do(ctx, "list_coupons", fasthttp.MethodGet, "/coupons", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCoupon creates a coupon.
func (c *Client) CreateCoupon(ctx context.Context, req *model.CreateCouponRequest) error {
	return c.do(ctx, "create_coupon", fasthttp.MethodPost, "/coupons", req, nil)
}

// ListPackages fetches every subscription package.
func (c *Client) ListPackages(ctx context.Context) ([]model.Package, error) {
	var out []model.Package
	if err := c.do(ctx, "list_packages", fasthttp.MethodGet, "/package", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePackage replaces the editable fields of a package.
func (c *Client) UpdatePackage(ctx context.Context, id string, req *model.UpdatePackageRequest) error {
	return c.do(ctx, "update_package", fasthttp.MethodPut, "/package/"+url.PathEscape(id), req, nil)
}

// SendEmail sends a notification to the listed users.
func (c *Client) SendEmail(ctx context.Context, req *model.SendNotificationRequest) error {
	return c.do(ctx, "send_email", fasthttp.MethodPost, "/notification/send-email", req, nil)
}

// SendEmailBySubscription sends a notification to every user of a subscription tier.
func (c *Client) SendEmailBySubscription(ctx context.Context, req *model.SendBySubscriptionRequest) error {
	return c.do(ctx, "send_email_by_subscription", fasthttp.MethodPost, "/notification/send-email-by-subscription", req, nil)
}

// Login exchanges administrator credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	var out model.LoginResponse
	if err := c.do(ctx, "login", fasthttp.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends one JSON request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, span := c.tracer.Start(ctx, "upstream."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.target", path),
		),
	)
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		metrics.UpstreamRequestsTotal.WithLabelValues(op, outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	// ids are path-escaped by the caller; normalizing would decode %2F back to "/"
	req.URI().DisablePathNormalizing = true
	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if token := c.creds.Token(); token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		req.SetBodyRaw(payload)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status < 200 || status >= 300 {
		return &StatusError{StatusCode: status, Message: errorMessage(status, resp.Body())}
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// errorMessage extracts {"message": "..."} from an error body, falling back to the status text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if text := fasthttp.StatusMessage(status); text != "" {
		return text
	}
	return "status " + strconv.Itoa(status)
}
