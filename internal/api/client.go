package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"cofau/internal/domain"
)

// Client talks to the Cofau backend.
//
// Token supplies the current bearer token; it is consulted on every request
// so the client always sends whatever the session holds right now. A nil
// Token (or an empty result) sends no Authorization header.
type Client struct {
	Base  string
	HTTP  *http.Client
	Token func() string
}

func NewClient(base string, httpClient *http.Client, token func() string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient, Token: token}
}

func (c *Client) bearer() string {
	if c.Token == nil {
		return ""
	}
	return c.Token()
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return c.HTTP.Do(req)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("cofau get %s: %s", c.Base+path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("cofau post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func decodeJSON(r io.Reader, out any) error {
	return json.NewDecoder(r).Decode(out)
}

// Compile-time assertion that Client implements domain.APIClient.
var _ domain.APIClient = (*Client)(nil)
