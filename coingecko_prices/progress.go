package coingecko_prices

import (
	"sync"
	"time"

	"github.com/alkautsarf/price-proxy/interfaces"
)

// ProgressTracker holds the live BatchProgress record per platform.
//
// A new batch for a platform overwrites the previous record while earlier
// workers keep running; those workers then update the newest record
// (latest-wins, matching the polling clients that only care about the most
// recently requested batch).
type ProgressTracker struct {
	mu         sync.Mutex
	byPlatform map[string]*interfaces.BatchProgress
}

// NewProgressTracker creates an empty progress tracker
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		byPlatform: make(map[string]*interfaces.BatchProgress),
	}
}

// StartBatch records the start of a new batch, replacing any previous
// record for the platform
func (t *ProgressTracker) StartBatch(platform string, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.byPlatform[platform] = &interfaces.BatchProgress{
		Platform: platform,
		Total:    total,
		StartAt:  time.Now().UnixMilli(),
		Running:  true,
	}
}

// RecordOutcome registers one terminal per-address outcome. Processed
// increments for every outcome; success only for a populated result.
func (t *ProgressTracker) RecordOutcome(platform string, success bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	progress, found := t.byPlatform[platform]
	if !found {
		return
	}
	progress.Processed++
	if success {
		progress.Success++
	}
}

// FinishBatch marks the platform's current record as not running
func (t *ProgressTracker) FinishBatch(platform string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if progress, found := t.byPlatform[platform]; found {
		progress.Running = false
	}
}

// Get returns a copy of the current progress for a platform, or a
// zero-valued, not-running record when no batch was recorded
func (t *ProgressTracker) Get(platform string) interfaces.BatchProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	if progress, found := t.byPlatform[platform]; found {
		return *progress
	}
	return interfaces.BatchProgress{}
}
