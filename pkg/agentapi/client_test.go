package agentapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sentellent-console/pkg/agentapi"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req agentapi.SendTurnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Message == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"agent exploded"}`))
			return
		}

		reply := "echo: " + req.Message
		if req.File != nil {
			reply = "received " + req.File.Name
		}
		json.NewEncoder(w).Encode(agentapi.SendTurnResponse{Response: reply, UserID: req.UserID})
	})

	mux.HandleFunc("/memory", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("user_id") {
		case "legacy":
			// Older backend shape: bare strings.
			w.Write([]byte(`{"memories": ["PREFERENCE: concise summaries", "SCHEDULE: no meetings before 9"]}`))
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"memories": [{"id":"m1","content":"Prefers bullet points","time":"2026-08-30T10:00:00Z"}]}`))
		}
	})

	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(agentapi.Profile{Name: "Alex Sterling", Email: "alex@example.com"})
	})

	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/auth/google", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"url": "https://accounts.google.com/o/oauth2/auth?client_id=test"}`))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"message": "Sentellent Agent API Running"}`))
	})

	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	ts := newTestBackend(t)
	defer ts.Close()

	client := agentapi.NewClient(ts.URL)
	ctx := context.Background()

	t.Run("SendTurn", func(t *testing.T) {
		resp, err := client.SendTurn(ctx, agentapi.SendTurnRequest{Message: "Hello", UserID: "demo_user"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Response != "echo: Hello" {
			t.Errorf("unexpected reply: %q", resp.Response)
		}
		if resp.UserID != "demo_user" {
			t.Errorf("unexpected user id: %q", resp.UserID)
		}
	})

	t.Run("SendTurn With File", func(t *testing.T) {
		resp, err := client.SendTurn(ctx, agentapi.SendTurnRequest{
			Message: "",
			File:    &agentapi.InlineFile{Name: "doc.pdf", Type: "application/pdf", Data: "JVBERg=="},
			UserID:  "demo_user",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Response != "received doc.pdf" {
			t.Errorf("unexpected reply: %q", resp.Response)
		}
	})

	t.Run("SendTurn Server Error", func(t *testing.T) {
		_, err := client.SendTurn(ctx, agentapi.SendTurnRequest{Message: "cause_500", UserID: "demo_user"})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
		var te *agentapi.TransportError
		if !errors.As(err, &te) {
			t.Fatalf("expected TransportError, got %T: %v", err, err)
		}
		if te.Status != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", te.Status)
		}
	})

	t.Run("SendTurn Network Error", func(t *testing.T) {
		dead := agentapi.NewClient("http://127.0.0.1:1")
		_, err := dead.SendTurn(ctx, agentapi.SendTurnRequest{Message: "hi", UserID: "demo_user"})
		if !agentapi.IsTransport(err) {
			t.Errorf("expected transport error, got %v", err)
		}
	})

	t.Run("GetMemory", func(t *testing.T) {
		resp, err := client.GetMemory(ctx, "demo_user")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Memories) != 1 || resp.Memories[0].ID != "m1" {
			t.Errorf("unexpected memories: %+v", resp.Memories)
		}
	})

	t.Run("GetMemory Legacy String Shape", func(t *testing.T) {
		resp, err := client.GetMemory(ctx, "legacy")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Memories) != 2 {
			t.Fatalf("expected 2 memories, got %d", len(resp.Memories))
		}
		if resp.Memories[0].Content != "PREFERENCE: concise summaries" {
			t.Errorf("unexpected legacy content: %q", resp.Memories[0].Content)
		}
	})

	t.Run("GetMemory Server Error", func(t *testing.T) {
		_, err := client.GetMemory(ctx, "boom")
		if !agentapi.IsTransport(err) {
			t.Errorf("expected transport error, got %v", err)
		}
	})

	t.Run("GetProfile", func(t *testing.T) {
		p, err := client.GetProfile(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Alex Sterling" || p.Email != "alex@example.com" {
			t.Errorf("unexpected profile: %+v", p)
		}
	})

	t.Run("Logout", func(t *testing.T) {
		if err := client.Logout(ctx); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("AuthURL", func(t *testing.T) {
		u, err := client.AuthURL(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u != "https://accounts.google.com/o/oauth2/auth?client_id=test" {
			t.Errorf("unexpected auth url: %q", u)
		}
	})

	t.Run("Health", func(t *testing.T) {
		h, err := client.Health(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.Message != "Sentellent Agent API Running" {
			t.Errorf("unexpected health message: %q", h.Message)
		}
	})
}
