package opensearch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/loykin/svcman/internal/history"
	"github.com/loykin/svcman/internal/registry"
)

func TestSendPostsDocument(t *testing.T) {
	var gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sink := New(srv.URL, "service-history")
	e := history.Event{
		Type:       history.EventStart,
		OccurredAt: time.Now().UTC(),
		Record:     registry.Record{BinaryPath: "/bin/app", PID: 321},
	}
	if err := sink.Send(context.Background(), e); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotPath != "/service-history/_doc" {
		t.Fatalf("unexpected path %q", gotPath)
	}

	var decoded history.Event
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.Record.BinaryPath != "/bin/app" || decoded.Record.PID != 321 {
		t.Fatalf("unexpected document: %+v", decoded)
	}
}

func TestSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sink := New(srv.URL, "idx")
	e := history.Event{Type: history.EventStop, OccurredAt: time.Now().UTC()}
	if err := sink.Send(context.Background(), e); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}
