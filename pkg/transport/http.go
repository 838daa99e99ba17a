package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"binding-generator/pkg/wire"
)

// Encoding selects how call arguments are put on the request.
type Encoding int

const (
	// JSONBody sends the argument map as one JSON object.
	JSONBody Encoding = iota
	// FormBody sends a urlencoded form. Maps and lists are JSON-encoded into
	// their form value, scalars are written as text.
	FormBody
	// MultipartBody sends multipart/form-data: files as file parts, every
	// other argument as a form field written like FormBody does.
	MultipartBody
)

// HTTP executes API calls by POSTing to <BaseURL>/<method>.
type HTTP struct {
	BaseURL  string
	Encoding Encoding
	// Envelope unwraps {"ok": ..., "result": ...} responses. With Envelope off
	// the whole decoded body is the result.
	Envelope  bool
	UserAgent string
	Headers   map[string]string

	client *http.Client
	logger zerolog.Logger
}

// Option configures an HTTP executor.
type Option func(*HTTP)

// WithHTTPClient replaces the retrying client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) {
		h.client = c
	}
}

// WithEncoding selects the request body encoding.
func WithEncoding(e Encoding) Option {
	return func(h *HTTP) {
		h.Encoding = e
	}
}

// WithoutEnvelope returns decoded bodies as they are.
func WithoutEnvelope() Option {
	return func(h *HTTP) {
		h.Envelope = false
	}
}

// WithLogger sets the logger used for retries.
func WithLogger(l zerolog.Logger) Option {
	return func(h *HTTP) {
		h.logger = l
	}
}

// New returns an executor for baseURL. Unless WithHTTPClient is given it
// uses a client that retries connection errors, 5xx and 429 responses.
func New(baseURL string, opts ...Option) *HTTP {
	h := &HTTP{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		Envelope:  true,
		UserAgent: "binding-generator",
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.client == nil {
		h.client = RetryingClient(h.logger)
	}

	return h
}

var _ wire.Executor = (*HTTP)(nil)

// RetryingClient returns a standard client backed by go-retryablehttp.
func RetryingClient(logger zerolog.Logger) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = retryablehttp.LeveledLogger(leveledZerolog{logger})

	client := retryClient.StandardClient()
	client.Timeout = 30 * time.Second

	return client
}

// Execute implements wire.Executor.
func (h *HTTP) Execute(ctx context.Context, method string, args map[string]any) (any, error) {
	body, contentType, err := h.encode(args)
	if err != nil {
		return nil, fmt.Errorf("%s: encoding arguments: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/"+method, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}

	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", method, err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: reading response body: %w", method, err)
	}

	var decoded any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{Method: method, StatusCode: resp.StatusCode, Description: strings.TrimSpace(string(data))}
		}

		return nil, fmt.Errorf("%s: decoding response: %w", method, err)
	}

	if !h.Envelope {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{Method: method, StatusCode: resp.StatusCode, Description: wire.Describe(decoded)}
		}

		return decoded, nil
	}

	return unwrap(method, resp.StatusCode, decoded)
}

// encode writes the request body. Arguments holding a file are always sent
// as multipart, whatever the configured encoding.
func (h *HTTP) encode(args map[string]any) (io.Reader, string, error) {
	if h.Encoding == MultipartBody || hasFiles(args) {
		return encodeMultipart(args)
	}

	if h.Encoding == FormBody {
		form := url.Values{}

		for k, v := range args {
			if v == nil {
				continue
			}

			s, err := formValue(v)
			if err != nil {
				return nil, "", fmt.Errorf("%s: %w", k, err)
			}

			form.Set(k, s)
		}

		return strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", nil
	}

	if args == nil {
		args = map[string]any{}
	}

	b, err := json.Marshal(args)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewReader(b), "application/json", nil
}

func hasFiles(args map[string]any) bool {
	for _, v := range args {
		if _, ok := v.(*wire.InputFile); ok {
			return true
		}
	}

	return false
}

func encodeMultipart(args map[string]any) (io.Reader, string, error) {
	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	for _, k := range slices.Sorted(maps.Keys(args)) {
		switch v := args[k].(type) {
		case nil:
			continue
		case *wire.InputFile:
			part, err := mw.CreateFormFile(k, v.Name)
			if err != nil {
				return nil, "", err
			}

			if _, err := io.Copy(part, v.Reader); err != nil {
				return nil, "", fmt.Errorf("%s: reading %s: %w", k, v.Name, err)
			}
		default:
			s, err := formValue(v)
			if err != nil {
				return nil, "", fmt.Errorf("%s: %w", k, err)
			}

			if err := mw.WriteField(k, s); err != nil {
				return nil, "", err
			}
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return &buf, mw.FormDataContentType(), nil
}

func formValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return "", err
		}

		return string(b), nil
	default:
		return fmt.Sprint(x), nil
	}
}

func unwrap(method string, status int, decoded any) (any, error) {
	env, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: response is %s, not an envelope", method, wire.Shape(decoded))
	}

	if okVal, _ := env["ok"].(bool); okVal {
		return env["result"], nil
	}

	apiErr := &APIError{Method: method, StatusCode: status}
	apiErr.Description, _ = env["description"].(string)

	if code, ok := env["error_code"].(json.Number); ok {
		if n, err := code.Int64(); err == nil {
			apiErr.Code = n
		}
	}

	if params, ok := env["parameters"].(map[string]any); ok {
		apiErr.Parameters = params
	}

	return nil, apiErr
}
