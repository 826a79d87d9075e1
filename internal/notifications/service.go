// Package notifications delivers publication events to the subscription
// service. When no endpoint is configured, a noop implementation is
// returned so callers never need to branch.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"listpub/internal/artefact"
	"listpub/internal/config"
)

const userAgent = "listpub/0.1.0"

// Service defines the notification surface exposed to the publication
// facade.
type Service interface {
	// NotifyPublicationReady announces that an artefact's rendered files
	// are stored and ready to fan out to subscribers.
	NotifyPublicationReady(ctx context.Context, meta artefact.Metadata, summaryText string, files []string) error
}

// NewService builds a notification service backed by the configured
// subscription endpoint, or a noop when none is configured.
func NewService(cfg *config.Config) Service {
	endpoint := strings.TrimSpace(cfg.Notifications.Endpoint)
	if endpoint == "" {
		return noopService{}
	}
	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type httpService struct {
	endpoint string
	client   *http.Client
}

type publicationEvent struct {
	ArtefactID  string   `json:"artefactId"`
	ListType    string   `json:"listType"`
	LocationID  string   `json:"locationId"`
	ContentDate string   `json:"contentDate,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Files       []string `json:"files"`
}

func (s *httpService) NotifyPublicationReady(ctx context.Context, meta artefact.Metadata, summaryText string, files []string) error {
	event := publicationEvent{
		ArtefactID: meta.ID.String(),
		ListType:   string(meta.ListType),
		LocationID: meta.LocationID,
		Summary:    summaryText,
		Files:      files,
	}
	if !meta.ContentDate.IsZero() {
		event.ContentDate = meta.ContentDate.Format("2006-01-02")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode publication event: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send publication notification: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("publication notification rejected: status %d", resp.StatusCode)
	}
	return nil
}

type noopService struct{}

func (noopService) NotifyPublicationReady(context.Context, artefact.Metadata, string, []string) error {
	return nil
}
