package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/utils"
	"github.com/MKhiriev/go-payment-system/internal/validators"
	"github.com/MKhiriev/go-payment-system/models"
	"github.com/go-resty/resty/v2"
)

// Config holds the settings of the HTTP adapter.
type Config struct {
	// HTTPAddress is the server address, with or without scheme
	// (e.g. "localhost:8080" or "https://payments.example.com").
	HTTPAddress string

	// RequestTimeout bounds every request. Zero means no limit.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.UserResponse, error) {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)

	return execute[models.UserResponse](h, r, resty.MethodPost, "/api/users/signup")
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.UserResponse], error) {
	r := h.client.R().
		SetContext(ctx).
		SetQueryParams(pageQuery(page))

	return execute[models.Page[models.UserResponse]](h, r, resty.MethodGet, "/api/users")
}

func (h *httpServerAdapter) Pay(ctx context.Context, req models.PayRequest) (models.PaymentResponse, error) {
	r := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			validators.FieldFullName:    req.FullName,
			validators.FieldPhoneNumber: req.PhoneNumber,
			validators.FieldTariff:      req.Tariff,
		})

	if req.CheckFile != nil {
		r.SetMultipartField(validators.FieldCheckFile, req.CheckFile.FileName, req.CheckFile.ContentType, req.CheckFile.Content)
	}

	return execute[models.PaymentResponse](h, r, resty.MethodPost, "/api/payments/pay")
}

func (h *httpServerAdapter) ListPayments(ctx context.Context, page models.PageRequest) (models.Page[models.PaymentResponse], error) {
	r := h.client.R().
		SetContext(ctx).
		SetQueryParams(pageQuery(page))

	return execute[models.Page[models.PaymentResponse]](h, r, resty.MethodGet, "/api/payments")
}

func (h *httpServerAdapter) ListPaymentsByPhone(ctx context.Context, phoneNumber string) ([]models.PaymentResponse, error) {
	r := h.client.R().
		SetContext(ctx).
		SetPathParam(validators.FieldPhoneNumber, phoneNumber)

	return execute[[]models.PaymentResponse](h, r, resty.MethodGet, "/api/payments/phone/{phoneNumber}")
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	r := h.client.R().SetContext(ctx)

	return execute[models.VersionResponse](h, r, resty.MethodGet, "/api/version")
}

// execute sends r and unwraps the data of the success envelope.
func execute[T any](h *httpServerAdapter, r *resty.Request, method, path string) (T, error) {
	var (
		zero     T
		envelope models.APIResponse[T]
	)

	resp, err := r.SetResult(&envelope).Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("api call")

	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	return envelope.Data, nil
}

func pageQuery(page models.PageRequest) map[string]string {
	query := make(map[string]string, 2)
	if page.PageNumber > 0 {
		query[validators.FieldPageNumber] = strconv.Itoa(page.PageNumber)
	}
	if page.PageSize > 0 {
		query[validators.FieldPageSize] = strconv.Itoa(page.PageSize)
	}

	return query
}
