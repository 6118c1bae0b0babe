package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNtfySend(t *testing.T) {
	var gotPath, gotTitle, gotTags, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTitle = r.Header.Get("Title")
		gotTags = r.Header.Get("Tags")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewNtfySender("quests")
	s.BaseURL = srv.URL

	err := s.Send(context.Background(), Content{Title: "T", Message: "hello", Tags: "tada"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotPath != "/quests" {
		t.Fatalf("path %q, want /quests", gotPath)
	}
	if gotTitle != "T" || gotTags != "tada" || gotBody != "hello" {
		t.Fatalf("request title=%q tags=%q body=%q", gotTitle, gotTags, gotBody)
	}
}

func TestNtfySendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewNtfySender("quests")
	s.BaseURL = srv.URL

	if err := s.Send(context.Background(), Content{Title: "T", Message: "m"}); err == nil {
		t.Fatalf("expected error on 403")
	}
}
