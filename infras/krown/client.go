package krown

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"krown/config"
	"krown/infras/otel"
	"krown/shared/constant"
	"krown/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrPath   = "krown.path"
	otelAttrMethod = "krown.method"
	otelAttrStatus = "krown.status"
)

// Client is the gateway to the remote Krown API. Every call carries the
// operator's bearer credential taken from the request context; responses
// use the upstream envelope {data, message, error}.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) (message string, err error)
	Post(ctx context.Context, path string, body any, out any) (message string, err error)
	Put(ctx context.Context, path string, body any, out any) (message string, err error)
	Patch(ctx context.Context, path string, body any, out any) (message string, err error)
	Delete(ctx context.Context, path string, out any) (message string, err error)
}

type clientImpl struct {
	http    *http.Client
	baseURL string
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		http: &http.Client{
			Timeout: time.Duration(cfg.External.Krown.TimeoutSeconds) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.External.Krown.BaseURL, "/"),
		otel:    ot,
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *clientImpl) Get(ctx context.Context, path string, query url.Values, out any) (string, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *clientImpl) Post(ctx context.Context, path string, body any, out any) (string, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *clientImpl) Put(ctx context.Context, path string, body any, out any) (string, error) {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *clientImpl) Patch(ctx context.Context, path string, body any, out any) (string, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *clientImpl) Delete(ctx context.Context, path string, out any) (string, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *clientImpl) do(ctx context.Context, method, path string, query url.Values, body, out any) (message string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".krown")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrPath:   path,
		otelAttrMethod: method,
	})

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return constant.Empty, fmt.Errorf("failed to marshal request body: %w", marshalErr)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to build upstream request: %w", err)
	}

	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if token, ok := ctx.Value(constant.ContextKeyCredential).(string); ok && token != constant.Empty {
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	resp, err := c.http.Do(request)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("upstream request failed")

		return constant.Empty, failure.BadGateway("upstream unreachable") // nolint:wrapcheck
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	scope.SetAttribute(otelAttrStatus, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return constant.Empty, failure.BadGateway("failed to read upstream response") // nolint:wrapcheck
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body (proxy error page) is only fatal for 2xx responses.
		if unmarshalErr := json.Unmarshal(raw, &env); unmarshalErr != nil && resp.StatusCode < http.StatusMultipleChoices {
			return constant.Empty, failure.BadGateway("malformed upstream response") // nolint:wrapcheck
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return constant.Empty, mapFailure(resp.StatusCode, env)
	}

	if out != nil && len(env.Data) > 0 {
		if unmarshalErr := json.Unmarshal(env.Data, out); unmarshalErr != nil {
			return constant.Empty, failure.BadGateway("unexpected upstream payload") // nolint:wrapcheck
		}
	}

	return env.Message, nil
}

// mapFailure translates upstream status codes into the console's failure
// taxonomy. Server-provided messages are preserved so business-rule
// rejections (code mismatch, already notified) surface verbatim.
func mapFailure(status int, env envelope) error {
	msg := env.Error
	if msg == constant.Empty {
		msg = env.Message
	}

	switch {
	case status == http.StatusUnauthorized:
		if msg == constant.Empty {
			msg = "credential rejected"
		}

		return failure.Unauthorized(msg) // nolint:wrapcheck
	case status == http.StatusForbidden:
		if msg == constant.Empty {
			msg = "forbidden"
		}

		return failure.Forbidden(msg) // nolint:wrapcheck
	case status == http.StatusNotFound:
		if msg == constant.Empty {
			msg = "not found"
		}

		return failure.NotFound(msg) // nolint:wrapcheck
	case status == http.StatusConflict:
		if msg == constant.Empty {
			msg = "conflict"
		}

		return failure.Conflict(msg) // nolint:wrapcheck
	case status == http.StatusUnprocessableEntity:
		if msg == constant.Empty {
			msg = "unprocessable request"
		}

		return failure.UnprocessableEntity(msg) // nolint:wrapcheck
	case status < http.StatusInternalServerError:
		if msg == constant.Empty {
			msg = "bad request"
		}

		return failure.BadRequestFromString(msg) // nolint:wrapcheck
	default:
		if msg == constant.Empty {
			msg = "upstream error"
		}

		return failure.BadGateway(msg) // nolint:wrapcheck
	}
}
