package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"venograph/annotate"
)

// Client forwards saved annotations to the relay backend. The credential is
// read from local configuration and sent as the api_key header; a non-200
// response is a local failure and is never retried.
type Client struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient builds a relay client for the given endpoint and credential.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether forwarding is configured at all.
func (c *Client) Enabled() bool {
	return c != nil && c.Endpoint != "" && c.APIKey != ""
}

// SendAnnotation posts one annotation to the relay's save endpoint.
func (c *Client) SendAnnotation(a annotate.Annotation) error {
	body, err := json.Marshal(a)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.Endpoint+"/save_annotation", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api_key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}
