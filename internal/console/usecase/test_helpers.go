package usecase

import (
	"context"
	"sync"

	"sentellent-console/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeAgentRepo is a hand-rolled AgentRepository double with per-method
// hooks and call counters.
type fakeAgentRepo struct {
	mu sync.Mutex

	sendFunc    func(sc model.Scope, text string, att *model.Attachment) (string, error)
	memoryFunc  func(sc model.Scope) (model.MemorySnapshot, error)
	profileFunc func() *model.UserProfile
	authURL     string
	authErr     error

	sendCalls   int
	memoryCalls int
	endCalls    int
}

func (f *fakeAgentRepo) SendTurn(ctx context.Context, sc model.Scope, text string, att *model.Attachment) (string, error) {
	f.mu.Lock()
	f.sendCalls++
	fn := f.sendFunc
	f.mu.Unlock()

	if fn == nil {
		return "ok", nil
	}
	return fn(sc, text, att)
}

func (f *fakeAgentRepo) FetchMemory(ctx context.Context, sc model.Scope) (model.MemorySnapshot, error) {
	f.mu.Lock()
	f.memoryCalls++
	fn := f.memoryFunc
	f.mu.Unlock()

	if fn == nil {
		return model.MemorySnapshot{}, nil
	}
	return fn(sc)
}

func (f *fakeAgentRepo) FetchProfile(ctx context.Context) *model.UserProfile {
	if f.profileFunc == nil {
		return nil
	}
	return f.profileFunc()
}

func (f *fakeAgentRepo) EndSession(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endCalls++
}

func (f *fakeAgentRepo) AuthURL(ctx context.Context) (string, error) {
	return f.authURL, f.authErr
}

func (f *fakeAgentRepo) counts() (send, memory, end int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sendCalls, f.memoryCalls, f.endCalls
}
