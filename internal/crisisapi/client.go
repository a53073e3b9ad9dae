package crisisapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL - адрес внешнего API кризисов по умолчанию
const DefaultBaseURL = "http://localhost:8080/api"

// ErrMalformedResponse - тело ответа не является корректным JSON
var ErrMalformedResponse = errors.New("malformed response body")

// StatusError - ответ внешнего API со статусом вне диапазона 2xx.
// Тело такого ответа не анализируется.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// Client обращается к внешнему REST API кризисов. Создается один раз при
// старте и передается всем компонентам явно.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиента для указанного базового адреса
func NewClient(baseURL string, httpClient *http.Client, logger *logrus.Logger) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid crisis API base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("crisis API base URL must be http or https, got %q", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL возвращает нормализованный базовый адрес
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint собирает адрес из экранированных сегментов пути
func (c *Client) endpoint(segments ...string) (string, string) {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	path := "/" + strings.Join(escaped, "/")
	return c.baseURL.String() + path, path
}

// do выполняет запрос и декодирует тело ответа в out (если out != nil)
func (c *Client) do(ctx context.Context, method string, out any, body any, segments ...string) error {
	raw, err := c.send(ctx, method, body, segments...)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		_, path := c.endpoint(segments...)
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedResponse, err)
	}
	return nil
}

// send выполняет запрос и возвращает тело успешного ответа
func (c *Client) send(ctx context.Context, method string, body any, segments ...string) ([]byte, error) {
	target, path := c.endpoint(segments...)
	log := c.logger.WithFields(logrus.Fields{
		"component": "crisisapi",
		"method":    method,
		"path":      path,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("Crisis API request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Тело читаем только для того, чтобы соединение вернулось в пул
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Debug("Crisis API responded with non-success status")
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	log.Debug("Crisis API request completed")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read body: %w", method, path, err)
	}
	return raw, nil
}

// record выполняет POST или PUT. Успех определяется только статусом ответа:
// если тело пустое или не является объектом записи, возвращается nil без ошибки.
func record[T any](ctx context.Context, c *Client, method string, body any, segments ...string) (*T, error) {
	raw, err := c.send(ctx, method, body, segments...)
	if err != nil {
		return nil, err
	}
	log := c.logger.WithFields(logrus.Fields{
		"component": "crisisapi",
		"method":    method,
		"path":      "/" + strings.Join(segments, "/"),
	})
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		log.Debug("Success response carries no record")
		return nil, nil
	}
	out := new(T)
	if err := json.Unmarshal(trimmed, out); err != nil {
		log.WithError(err).Debug("Success response record is not decodable, ignoring body")
		return nil, nil
	}
	return out, nil
}

// listOf декодирует коллекцию. Корректный JSON, который не является массивом
// (`{}`, `null`, строка), превращается в пустой список без ошибки.
func listOf[T any](ctx context.Context, c *Client, segments ...string) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, &raw, nil, segments...); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		c.logger.WithFields(logrus.Fields{
			"component": "crisisapi",
			"path":      "/" + strings.Join(segments, "/"),
		}).Debug("Collection response is not an array, treating as empty")
		return []T{}, nil
	}
	items := make([]T, 0)
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("GET /%s: %w: %v", strings.Join(segments, "/"), ErrMalformedResponse, err)
	}
	return items, nil
}
