package notifications_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"listpub/internal/config"
	"listpub/internal/listtype"
	"listpub/internal/notifications"
	"listpub/internal/testsupport"
)

func TestNotifyPublicationReadyPostsEvent(t *testing.T) {
	type event struct {
		ArtefactID  string   `json:"artefactId"`
		ListType    string   `json:"listType"`
		LocationID  string   `json:"locationId"`
		ContentDate string   `json:"contentDate"`
		Summary     string   `json:"summary"`
		Files       []string `json:"files"`
	}

	var received event
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode event: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithNotificationsEndpoint(server.URL))
	service := notifications.NewService(cfg)

	meta := testsupport.NewMetadata(listtype.CrownDailyList)
	meta.LocationID = "407"
	files := []string{meta.ID.String() + ".pdf", meta.ID.String() + ".xlsx"}

	if err := service.NotifyPublicationReady(context.Background(), meta, "summary text", files); err != nil {
		t.Fatalf("NotifyPublicationReady: %v", err)
	}
	if calls != 1 {
		t.Fatalf("endpoint called %d times, want 1", calls)
	}
	if received.ArtefactID != meta.ID.String() {
		t.Errorf("artefactId = %q, want %q", received.ArtefactID, meta.ID)
	}
	if received.ListType != "CROWN_DAILY_LIST" {
		t.Errorf("listType = %q", received.ListType)
	}
	if received.LocationID != "407" {
		t.Errorf("locationId = %q", received.LocationID)
	}
	if received.ContentDate != "2026-02-14" {
		t.Errorf("contentDate = %q, want 2026-02-14", received.ContentDate)
	}
	if received.Summary != "summary text" {
		t.Errorf("summary = %q", received.Summary)
	}
	if len(received.Files) != 2 || received.Files[0] != files[0] || received.Files[1] != files[1] {
		t.Errorf("files = %v, want %v", received.Files, files)
	}
}

func TestNotifyPublicationReadyRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithNotificationsEndpoint(server.URL))
	service := notifications.NewService(cfg)

	meta := testsupport.NewMetadata(listtype.SJPPublicList)
	err := service.NotifyPublicationReady(context.Background(), meta, "", nil)
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestNewServiceWithoutEndpointIsNoop(t *testing.T) {
	cfg := &config.Config{}
	service := notifications.NewService(cfg)

	meta := testsupport.NewMetadata(listtype.CivilDailyCauseList)
	if err := service.NotifyPublicationReady(context.Background(), meta, "text", []string{"a.pdf"}); err != nil {
		t.Fatalf("noop service returned error: %v", err)
	}
}
