package usecase

import (
	"context"

	"sentellent-console/internal/console"
	"sentellent-console/internal/model"
)

// RefreshMemory fetches a fresh snapshot and replaces the view wholesale.
// Results are sequence-numbered so a slow fetch can never overwrite a view
// applied by a strictly later refresh; a failed fetch keeps the prior
// snapshot (stale-but-valid).
func (uc *implUseCase) RefreshMemory(ctx context.Context, sc model.Scope) console.MemoryView {
	uc.mu.Lock()
	uc.refreshSeq++
	seq := uc.refreshSeq
	uc.mu.Unlock()

	snapshot, err := uc.repo.FetchMemory(ctx, sc)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq < uc.appliedSeq {
		uc.l.Debugf(ctx, "console: memory refresh %d superseded by %d, discarding", seq, uc.appliedSeq)
		return uc.viewLocked(sc)
	}
	uc.appliedSeq = seq

	if err != nil {
		uc.l.Warnf(ctx, "console: memory refresh failed, keeping last snapshot: %v", err)
		return uc.viewLocked(sc)
	}

	uc.snapshots.Add(sc.UserID, snapshot)
	return uc.viewLocked(sc)
}

// Memory returns the last successfully applied view without fetching.
func (uc *implUseCase) Memory(ctx context.Context, sc model.Scope) console.MemoryView {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.viewLocked(sc)
}

func (uc *implUseCase) viewLocked(sc model.Scope) console.MemoryView {
	snapshot, _ := uc.snapshots.Get(sc.UserID)

	items := make([]model.MemoryItem, len(snapshot))
	copy(items, snapshot)

	return console.MemoryView{
		Items:       items,
		LoadPercent: memoryLoad(len(items), uc.loadCapacity),
	}
}

// memoryLoad derives the side-panel load bar from snapshot size alone.
func memoryLoad(count, capacity int) int {
	if capacity <= 0 {
		capacity = defaultMemoryLoadCapacity
	}
	pct := count * 100 / capacity
	if pct > 100 {
		return 100
	}
	return pct
}
