package usecase

import (
	"context"

	"github.com/google/uuid"

	"sentellent-console/internal/console"
	"sentellent-console/internal/model"
)

// Start initializes the session: profile and memory are independent reads
// and neither failure blocks the first render.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope) (console.StartOutput, error) {
	profile := uc.repo.FetchProfile(ctx)
	if profile == nil {
		uc.l.Infof(ctx, "console: profile unavailable, rendering as %q", GuestUserName)
		profile = &model.UserProfile{Name: GuestUserName}
	}

	uc.mu.Lock()
	uc.profile = *profile
	uc.mu.Unlock()

	view := uc.RefreshMemory(ctx, sc)

	return console.StartOutput{
		Profile:  *profile,
		Messages: uc.History(ctx),
		Memory:   view,
	}, nil
}

// Profile returns the session profile, placeholder if the fetch failed.
func (uc *implUseCase) Profile(ctx context.Context) model.UserProfile {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.profile
}

// AuthURL resolves the Google auth hand-off target: built locally when an
// AuthProvider is configured, otherwise fetched from the backend.
func (uc *implUseCase) AuthURL(ctx context.Context) (string, error) {
	if uc.auth != nil {
		return uc.auth.AuthCodeURL(uuid.NewString()), nil
	}
	return uc.repo.AuthURL(ctx)
}

// Logout ends the backend session best-effort, then resets local state so
// logout always visually succeeds.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) console.ResetOutput {
	uc.repo.EndSession(ctx)

	uc.mu.Lock()
	uc.profile = model.UserProfile{Name: GuestUserName}
	uc.snapshots.Remove(sc.UserID)
	uc.mu.Unlock()

	return uc.Reset(ctx)
}
