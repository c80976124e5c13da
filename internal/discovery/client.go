package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/registry"
)

// ErrNotFound reports that the discovery endpoint does not know the service.
// Callers treat this as a normal outcome: the service may simply not have
// finished its own startup yet.
var ErrNotFound = fmt.Errorf("service not found in discovery")

// Client talks to the discovery endpoint. It is used by domain services to
// announce themselves and by the resolver to locate them.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client for the discovery endpoint at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 2 * time.Second},
	}
}

// Register announces a service to discovery. Callers treat failure as
// non-fatal: the service is still reachable, just not yet discoverable.
func (c *Client) Register(ctx context.Context, serviceName, host string, port int) error {
	body, err := json.Marshal(map[string]any{
		"serviceName": serviceName,
		"host":        host,
		"port":        port,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("discovery registration: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discovery registration returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

// Lookup fetches the current record for serviceName. Transport errors and a
// 404 both come back as ErrNotFound: from the caller's perspective the
// service is not locatable on this attempt either way.
func (c *Client) Lookup(ctx context.Context, serviceName string) (registry.ServiceRecord, error) {
	var rec registry.ServiceRecord

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/services/"+serviceName, nil)
	if err != nil {
		return rec, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return rec, ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return rec, ErrNotFound
	}

	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return rec, fmt.Errorf("decode service record: %w", err)
	}
	return rec, nil
}
