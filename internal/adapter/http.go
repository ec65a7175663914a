package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type httpTodoAdapter struct {
	client   *utils.HTTPClient
	basePath string

	logger *logger.Logger
}

// NewHTTPTodoAdapter constructs an HTTP/REST implementation of [TodoAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. Requests go to adapterCfg.BasePath relative to that URL.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTodoAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (TodoAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	basePath := strings.Trim(strings.TrimSpace(adapterCfg.BasePath), "/")
	if basePath == "" {
		basePath = config.DefaultBasePath
	}

	return &httpTodoAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		basePath: basePath,
		logger:   logger.WithComponent("adapter"),
	}, nil
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

// List implements [TodoAdapter]. It sends GET {basePath} and decodes the
// envelope data as an ordered list of todos. A successful envelope without
// data is an empty list.
func (h *httpTodoAdapter) List(ctx context.Context) ([]models.Todo, error) {
	req, log := h.newRequest(ctx, "list")

	resp, err := req.Get(h.basePath)
	if err != nil {
		log.Error().Err(err).Msg("list request failed")
		return nil, fmt.Errorf("list request: %w: %w", ErrTransport, err)
	}
	log.Debug().Int("status", resp.StatusCode()).Msg("list response received")

	envelope, err := decodeEnvelope(resp, listDataSchema)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	todos := make([]models.Todo, 0)
	if !envelope.HasData() {
		return todos, nil
	}
	if err = json.Unmarshal(envelope.Data, &todos); err != nil {
		return nil, fmt.Errorf("list: %w: %v", ErrMalformedResponse, err)
	}

	return todos, nil
}

// Create implements [TodoAdapter]. It POSTs data as JSON to {basePath} and
// returns the id carried by the envelope data. A successful envelope without
// an id is a malformed response.
func (h *httpTodoAdapter) Create(ctx context.Context, data models.TodoData) (models.TodoID, error) {
	req, log := h.newRequest(ctx, "create")

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post(h.basePath)
	if err != nil {
		log.Error().Err(err).Msg("create request failed")
		return models.TodoID{}, fmt.Errorf("create request: %w: %w", ErrTransport, err)
	}
	log.Debug().Int("status", resp.StatusCode()).Msg("create response received")

	envelope, err := decodeEnvelope(resp, createDataSchema)
	if err != nil {
		return models.TodoID{}, fmt.Errorf("create: %w", err)
	}
	if !envelope.HasData() {
		return models.TodoID{}, fmt.Errorf("create: %w: missing id", ErrMalformedResponse)
	}

	var id models.TodoID
	if err = json.Unmarshal(envelope.Data, &id); err != nil {
		return models.TodoID{}, fmt.Errorf("create: %w: %v", ErrMalformedResponse, err)
	}

	return id, nil
}

// Delete implements [TodoAdapter]. It sends DELETE {basePath}/{id}; the id
// is path-escaped verbatim.
func (h *httpTodoAdapter) Delete(ctx context.Context, id models.TodoID) error {
	if id.IsZero() {
		return fmt.Errorf("delete: %w", models.ErrInvalidTodoID)
	}

	req, log := h.newRequest(ctx, "delete")

	resp, err := req.
		SetPathParam("id", id.String()).
		Delete(h.basePath + "/{id}")
	if err != nil {
		log.Error().Err(err).Str("todo_id", id.String()).Msg("delete request failed")
		return fmt.Errorf("delete request: %w: %w", ErrTransport, err)
	}
	log.Debug().Int("status", resp.StatusCode()).Str("todo_id", id.String()).Msg("delete response received")

	if _, err = decodeEnvelope(resp, nil); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// newRequest prepares a request tagged with the request id from ctx, or a
// fresh one, and a logger carrying the same id. The logger attached to ctx is
// preferred over the adapter's own.
func (h *httpTodoAdapter) newRequest(ctx context.Context, op string) (*resty.Request, *zerolog.Logger) {
	requestID := utils.RequestIDFromContext(ctx)

	base := h.logger
	if ctxLogger := logger.FromContext(ctx); ctxLogger.GetLevel() != zerolog.Disabled {
		base = ctxLogger.WithComponent("adapter")
	}

	log := base.With().
		Str("op", op).
		Str("request_id", requestID).
		Logger()

	req := h.client.R().
		SetContext(ctx).
		SetHeader(utils.RequestIDHeader, requestID)

	return req, &log
}
