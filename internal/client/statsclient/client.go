// Package statsclient talks to the stats endpoint of the server.
package statsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"trading_game/internal/api/dto/stats"
	"trading_game/internal/converter"
	"trading_game/internal/model"
	"trading_game/pkg/req"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("stats api: status %d", e.Code)
	}
	return fmt.Sprintf("stats api: status %d: %s", e.Code, e.Message)
}

type Client struct {
	url  string
	http *http.Client
}

// New Клиент с таймаутом на каждый запрос
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch reads the aggregate row.
func (c *Client) Fetch(ctx context.Context) (model.GameStats, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return model.GameStats{}, err
	}
	return c.do(r)
}

// Save writes the aggregate row and returns what the server stored.
func (c *Client) Save(ctx context.Context, s model.GameStats) (model.GameStats, error) {
	body, err := json.Marshal(converter.ToStatsRequest(s))
	if err != nil {
		return model.GameStats{}, err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return model.GameStats{}, err
	}
	r.Header.Set("Content-Type", "application/json")
	return c.do(r)
}

func (c *Client) do(r *http.Request) (model.GameStats, error) {
	resp, err := c.http.Do(r)
	if err != nil {
		return model.GameStats{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.GameStats{}, statusError(resp)
	}

	out, err := req.Decode[stats.StatsResponse](resp.Body)
	if err != nil {
		return model.GameStats{}, fmt.Errorf("stats api: %w", err)
	}
	return converter.FromStatsResponse(out), nil
}

func statusError(resp *http.Response) error {
	e := &StatusError{Code: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && json.Unmarshal(data, &body) == nil {
		e.Message = body.Error
	}
	return e
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
