package tornapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ajcraig99/tornticker/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// ErrRetriesExhausted is returned when the attempt ceiling is reached
// without a successful response. Distinct from a fatal *APIError so the
// two abort conditions stay distinguishable in the logs.
var ErrRetriesExhausted = errors.New("torn api: retries exhausted")

// retryableCodes are the upstream error codes that signal a transient
// condition (key temporarily invalid, rate limited, API down/busy).
// Everything else means a misconfigured key or request and retrying it
// only burns quota.
var retryableCodes = map[int]struct{}{
	0:  {}, // unknown error
	5:  {}, // too many requests
	8:  {}, // IP block
	15: {}, // API disabled
	17: {}, // backend error
	24: {}, // API temporarily disabled
}

// APIError is an error object embedded in an otherwise valid response.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("torn api error %d: %s", e.Code, e.Message)
}

// Retryable reports whether the upstream code is in the transient set.
func (e *APIError) Retryable() bool {
	_, ok := retryableCodes[e.Code]
	return ok
}

// Client fetches one selection of the Torn API per call, retrying
// transient failures with linear backoff.
type Client struct {
	http        *resty.Client
	baseURL     string
	apiKey      string
	comment     string
	maxAttempts int
	baseWait    time.Duration
	sleep       func(time.Duration)
	log         *logrus.Logger
}

func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	client := resty.New()
	client.SetTimeout(cfg.RequestTimeout)

	return &Client{
		http:        client,
		baseURL:     cfg.APIBaseURL,
		apiKey:      cfg.APIKey,
		comment:     cfg.APIComment,
		maxAttempts: cfg.MaxAttempts,
		baseWait:    cfg.BaseWait,
		sleep:       time.Sleep,
		log:         log,
	}
}

type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"error"`
	} `json:"error"`
}

// fetch requests one selection and returns the raw response body once it
// parses cleanly and carries no embedded error object.
//
// Transport failures, malformed bodies and retryable upstream codes are
// retried up to the attempt ceiling, waiting baseWait*attempt between
// tries. Any other upstream code fails immediately.
func (c *Client) fetch(selection string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/torn/?key=%s&comment=%s&selections=%s",
		c.baseURL, c.apiKey, c.comment, selection)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		body, err := c.attempt(url)
		if err == nil {
			return body, nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Retryable() {
			return nil, apiErr
		}
		lastErr = err

		if attempt < c.maxAttempts {
			wait := c.baseWait * time.Duration(attempt)
			c.log.WithFields(logrus.Fields{
				"selection": selection,
				"attempt":   attempt,
				"wait":      wait.String(),
			}).Warnf("fetch failed, retrying: %v", err)
			c.sleep(wait)
		}
	}

	return nil, fmt.Errorf("%w for %s after %d attempts: %v",
		ErrRetriesExhausted, selection, c.maxAttempts, lastErr)
}

func (c *Client) attempt(url string) (json.RawMessage, error) {
	resp, err := c.http.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	var env errorEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}
	if env.Error != nil {
		return nil, &APIError{Code: env.Error.Code, Message: env.Error.Message}
	}
	return resp.Body(), nil
}
