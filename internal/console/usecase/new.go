package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"sentellent-console/internal/attachment"
	"sentellent-console/internal/console"
	"sentellent-console/internal/console/repository"
	"sentellent-console/internal/model"
	pkgLog "sentellent-console/pkg/log"
)

// Options tunes session copy and the derived memory-load indicator.
type Options struct {
	Greeting           string
	FailureMessage     string
	MemoryLoadCapacity int
}

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.AgentRepository
	encoder *attachment.Encoder
	auth    console.AuthProvider

	greeting     string
	failureText  string
	loadCapacity int

	clock func() time.Time

	// mu guards all session state below. The message list and the
	// pending-attachment slot are owned exclusively by this controller.
	mu                sync.Mutex
	messages          []model.Message
	sendInFlight      bool
	pendingAttachment *model.Attachment
	attachSeq         uint64
	generation        uint64
	refreshSeq        uint64
	appliedSeq        uint64
	profile           model.UserProfile
	snapshots         *expirable.LRU[string, model.MemorySnapshot]
}

// New creates the conversation session controller. auth may be nil, in
// which case the auth hand-off URL is resolved through the backend.
func New(
	l pkgLog.Logger,
	repo repository.AgentRepository,
	encoder *attachment.Encoder,
	auth console.AuthProvider,
	opts Options,
) *implUseCase {
	if opts.Greeting == "" {
		opts.Greeting = DefaultGreeting
	}
	if opts.FailureMessage == "" {
		opts.FailureMessage = ConnectivityFailureMessage
	}
	if opts.MemoryLoadCapacity <= 0 {
		opts.MemoryLoadCapacity = defaultMemoryLoadCapacity
	}

	uc := &implUseCase{
		l:            l,
		repo:         repo,
		encoder:      encoder,
		auth:         auth,
		greeting:     opts.Greeting,
		failureText:  opts.FailureMessage,
		loadCapacity: opts.MemoryLoadCapacity,
		clock:        time.Now,
		profile:      model.UserProfile{Name: GuestUserName},
		snapshots:    expirable.NewLRU[string, model.MemorySnapshot](snapshotCacheSize, nil, snapshotCacheTTL),
	}
	uc.messages = []model.Message{uc.newMessage(model.RoleAgent, uc.greeting, nil)}

	return uc
}

// SetClock overrides the message timestamp source.
func (uc *implUseCase) SetClock(fn func() time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.clock = fn
}
