package editor

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sitewise/themekit/internal/theme"
)

// SaveFunc persists a state snapshot. It runs on the autosave goroutine;
// any error is logged and the checkpoint is left untouched so the changes
// still read as unsaved.
type SaveFunc func(state theme.EditorState) error

// Autosaver is the save-on-idle side channel: every edit hands over a state
// snapshot and reschedules a single pending timer, so a burst of edits
// produces one save once the operator goes idle. The snapshot is captured on
// the editing goroutine; the timer goroutine only ever sees its own copy, so
// an in-flight save never blocks further edits. Overlapping saves are
// serialized, and each acknowledgement checkpoints the snapshot it actually
// persisted.
type Autosaver struct {
	session *Session
	delay   time.Duration
	save    SaveFunc

	mu         sync.Mutex
	timer      *time.Timer
	pending    theme.EditorState
	hasPending bool
	closed     bool
	wg         sync.WaitGroup

	// runMu serializes runSave so two fired timers cannot interleave their
	// acknowledgement writes.
	runMu sync.Mutex
}

// NewAutosaver wires an idle-save timer to the session. delay is how long
// the session must stay untouched before a save fires.
func NewAutosaver(session *Session, delay time.Duration, save SaveFunc) *Autosaver {
	return &Autosaver{
		session: session,
		delay:   delay,
		save:    save,
	}
}

// Schedule records the snapshot to persist and restarts the idle timer.
// Call after every edit, from the editing goroutine, with the session's
// current state; at most one timer is pending at a time.
func (a *Autosaver) Schedule(state theme.EditorState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = state
	a.hasPending = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

// Flush cancels any pending timer and saves the pending snapshot
// immediately. A no-op when nothing is pending.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if !a.hasPending {
		a.mu.Unlock()
		return
	}
	snapshot := a.pending
	a.hasPending = false
	a.wg.Add(1)
	a.mu.Unlock()
	a.runSave(snapshot)
}

// Close cancels any pending timer and waits for an in-flight save to
// finish. The autosaver must not be scheduled again afterwards.
func (a *Autosaver) Close() {
	a.mu.Lock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	a.wg.Wait()
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.closed || !a.hasPending {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	snapshot := a.pending
	a.hasPending = false
	a.wg.Add(1)
	a.mu.Unlock()
	a.runSave(snapshot)
}

// runSave expects the caller to have incremented wg and claimed the
// snapshot under the lock.
func (a *Autosaver) runSave(snapshot theme.EditorState) {
	defer a.wg.Done()
	a.runMu.Lock()
	defer a.runMu.Unlock()

	a.session.SetSaving(true)
	defer a.session.SetSaving(false)

	if err := a.save(snapshot); err != nil {
		log.Warn().Err(err).Msg("Theme autosave failed; changes remain unsaved")
		return
	}

	// Save acknowledged: the persisted snapshot is the new checkpoint.
	a.session.confirmSaved(snapshot)
}
