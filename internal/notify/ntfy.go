package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultNtfyBaseURL = "https://ntfy.sh"

// NtfySender publishes to an ntfy.sh topic. The protocol is one HTTP POST:
// message as body, title and tags as headers.
type NtfySender struct {
	Topic   string
	BaseURL string
	Client  *http.Client
}

func NewNtfySender(topic string) *NtfySender {
	return &NtfySender{
		Topic:   topic,
		BaseURL: defaultNtfyBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *NtfySender) Name() string { return "ntfy" }

func (s *NtfySender) Send(ctx context.Context, c Content) error {
	url := strings.TrimRight(s.BaseURL, "/") + "/" + s.Topic
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(c.Message))
	if err != nil {
		return fmt.Errorf("ntfy request: %w", err)
	}
	req.Header.Set("Title", c.Title)
	if c.Tags != "" {
		req.Header.Set("Tags", c.Tags)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("ntfy post: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ntfy post: unexpected status %s", resp.Status)
	}
	return nil
}
