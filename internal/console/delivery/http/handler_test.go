package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sentellent-console/internal/console"
	consoleHTTP "sentellent-console/internal/console/delivery/http"
	"sentellent-console/internal/model"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockConsoleUC struct {
	startOutput  console.StartOutput
	startErr     error
	submitOutput console.SubmitOutput
	submitErr    error
	submitScope  model.Scope
	attachOutput model.Attachment
	attachErr    error
	attachInput  console.AttachInput
	history      []model.Message
	memoryView   console.MemoryView
	refreshCalls int
	resetOutput  console.ResetOutput
	profile      model.UserProfile
	authURL      string
	authErr      error
	logoutCalls  int
}

func (m *mockConsoleUC) Start(ctx context.Context, sc model.Scope) (console.StartOutput, error) {
	return m.startOutput, m.startErr
}
func (m *mockConsoleUC) Submit(ctx context.Context, sc model.Scope, input console.SubmitInput) (console.SubmitOutput, error) {
	m.submitScope = sc
	return m.submitOutput, m.submitErr
}
func (m *mockConsoleUC) Attach(ctx context.Context, input console.AttachInput) (model.Attachment, error) {
	m.attachInput = input
	return m.attachOutput, m.attachErr
}
func (m *mockConsoleUC) ClearAttachment(ctx context.Context) {}
func (m *mockConsoleUC) PendingAttachment(ctx context.Context) *model.Attachment {
	return nil
}
func (m *mockConsoleUC) Reset(ctx context.Context) console.ResetOutput {
	return m.resetOutput
}
func (m *mockConsoleUC) History(ctx context.Context) []model.Message {
	return m.history
}
func (m *mockConsoleUC) Memory(ctx context.Context, sc model.Scope) console.MemoryView {
	return m.memoryView
}
func (m *mockConsoleUC) RefreshMemory(ctx context.Context, sc model.Scope) console.MemoryView {
	m.refreshCalls++
	return m.memoryView
}
func (m *mockConsoleUC) Profile(ctx context.Context) model.UserProfile {
	return m.profile
}
func (m *mockConsoleUC) AuthURL(ctx context.Context) (string, error) {
	return m.authURL, m.authErr
}
func (m *mockConsoleUC) Logout(ctx context.Context, sc model.Scope) console.ResetOutput {
	m.logoutCalls++
	return m.resetOutput
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func newTestEngine(t *testing.T, uc *mockConsoleUC) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	h := consoleHTTP.New(&mockLogger{}, uc, "demo_user")
	consoleHTTP.RegisterRoutes(engine.Group("/api/v1/console"), h)
	return engine
}

func doJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		ErrorCode int                    `json:"error_code"`
		Message   string                 `json:"message"`
		Data      map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return envelope.Data
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestSendMessage(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		uc := &mockConsoleUC{
			submitOutput: console.SubmitOutput{
				UserMessage:  model.Message{ID: "u1", Role: model.RoleUser, Content: "Hello", Timestamp: "08:15 AM"},
				AgentMessage: model.Message{ID: "a1", Role: model.RoleAgent, Content: "Hi there.", Timestamp: "08:15 AM"},
				Memory:       console.MemoryView{LoadPercent: 10},
			},
		}
		engine := newTestEngine(t, uc)

		w := doJSON(engine, http.MethodPost, "/api/v1/console/messages", map[string]string{"message": "Hello"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		data := decodeData(t, w)
		agent, _ := data["agent_message"].(map[string]interface{})
		if agent["content"] != "Hi there." {
			t.Errorf("unexpected agent message: %v", agent)
		}
		if data["failed"] != false {
			t.Errorf("expected failed=false, got %v", data["failed"])
		}
	})

	t.Run("Busy Returns Conflict", func(t *testing.T) {
		uc := &mockConsoleUC{submitErr: console.ErrSendInFlight}
		engine := newTestEngine(t, uc)

		w := doJSON(engine, http.MethodPost, "/api/v1/console/messages", map[string]string{"message": "second"})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("Empty Returns Bad Request", func(t *testing.T) {
		uc := &mockConsoleUC{submitErr: console.ErrEmptySubmission}
		engine := newTestEngine(t, uc)

		w := doJSON(engine, http.MethodPost, "/api/v1/console/messages", map[string]string{"message": ""})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Scope From Header", func(t *testing.T) {
		uc := &mockConsoleUC{}
		engine := newTestEngine(t, uc)

		body, _ := json.Marshal(map[string]string{"message": "hi"})
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/console/messages", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "alice")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if uc.submitScope.UserID != "alice" {
			t.Errorf("expected header scope, got %q", uc.submitScope.UserID)
		}
	})

	t.Run("Scope Defaults", func(t *testing.T) {
		uc := &mockConsoleUC{}
		engine := newTestEngine(t, uc)

		doJSON(engine, http.MethodPost, "/api/v1/console/messages", map[string]string{"message": "hi"})
		if uc.submitScope.UserID != "demo_user" {
			t.Errorf("expected default scope, got %q", uc.submitScope.UserID)
		}
	})
}

func TestAttach(t *testing.T) {
	t.Run("Multipart Upload", func(t *testing.T) {
		uc := &mockConsoleUC{
			attachOutput: model.Attachment{Name: "notes.txt", MimeType: "text/plain", Size: 5},
		}
		engine := newTestEngine(t, uc)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, _ := mw.CreateFormFile("file", "notes.txt")
		fw.Write([]byte("hello"))
		mw.Close()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/console/attachment", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.attachInput.Name != "notes.txt" {
			t.Errorf("unexpected input name: %q", uc.attachInput.Name)
		}

		data := decodeData(t, w)
		if data["name"] != "notes.txt" {
			t.Errorf("unexpected response: %v", data)
		}
		if _, leaked := data["inline_data"]; leaked {
			t.Errorf("encoded payload must not be echoed to the client")
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		uc := &mockConsoleUC{}
		engine := newTestEngine(t, uc)

		w := doJSON(engine, http.MethodPost, "/api/v1/console/attachment", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		uc := &mockConsoleUC{}
		engine := newTestEngine(t, uc)

		w := doJSON(engine, http.MethodDelete, "/api/v1/console/attachment", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestSession(t *testing.T) {
	uc := &mockConsoleUC{
		startOutput: console.StartOutput{
			Profile: model.UserProfile{Name: "Alex Sterling", Email: "alex@example.com"},
			Messages: []model.Message{
				{ID: "g1", Role: model.RoleAgent, Content: "Good morning.", Timestamp: "08:00 AM"},
			},
			Memory: console.MemoryView{
				Items:       []model.MemoryItem{{ID: "m1", Content: "PREFERENCE: bullets"}},
				LoadPercent: 2,
			},
		},
	}
	engine := newTestEngine(t, uc)

	w := doJSON(engine, http.MethodGet, "/api/v1/console/session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	data := decodeData(t, w)
	profile, _ := data["profile"].(map[string]interface{})
	if profile["name"] != "Alex Sterling" {
		t.Errorf("unexpected profile: %v", profile)
	}
	memory, _ := data["memory"].(map[string]interface{})
	if memory["load_percent"] != float64(2) {
		t.Errorf("unexpected memory view: %v", memory)
	}
}

func TestMemoryRoutes(t *testing.T) {
	uc := &mockConsoleUC{
		memoryView: console.MemoryView{
			Items:       []model.MemoryItem{{ID: "m1", Content: "fact"}},
			LoadPercent: 2,
		},
	}
	engine := newTestEngine(t, uc)

	w := doJSON(engine, http.MethodGet, "/api/v1/console/memory", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.refreshCalls != 0 {
		t.Errorf("GET memory must not trigger a fetch")
	}

	w = doJSON(engine, http.MethodPost, "/api/v1/console/memory/refresh", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.refreshCalls != 1 {
		t.Errorf("expected one refresh, got %d", uc.refreshCalls)
	}
}

func TestLogout(t *testing.T) {
	uc := &mockConsoleUC{
		resetOutput: console.ResetOutput{
			Greeting: model.Message{ID: "g2", Role: model.RoleAgent, Content: "Good morning.", Timestamp: "08:20 AM"},
		},
	}
	engine := newTestEngine(t, uc)

	w := doJSON(engine, http.MethodPost, "/api/v1/console/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.logoutCalls != 1 {
		t.Errorf("expected one logout call, got %d", uc.logoutCalls)
	}

	data := decodeData(t, w)
	greeting, _ := data["greeting"].(map[string]interface{})
	if greeting["content"] != "Good morning." {
		t.Errorf("unexpected greeting: %v", greeting)
	}
}

func TestAuthURL(t *testing.T) {
	uc := &mockConsoleUC{authURL: "https://accounts.google.com/o/oauth2/auth?state=abc"}
	engine := newTestEngine(t, uc)

	w := doJSON(engine, http.MethodGet, "/api/v1/console/auth/url", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	data := decodeData(t, w)
	if data["url"] != uc.authURL {
		t.Errorf("unexpected url: %v", data["url"])
	}
}
