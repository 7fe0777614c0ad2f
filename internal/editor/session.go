// Package editor holds the stateful core of the theme customization engine:
// an editing session with debounce-coalesced undo/redo history, a persisted
// checkpoint for change detection, and an idle-save timer.
package editor

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sitewise/themekit/internal/color"
	"github.com/sitewise/themekit/internal/theme"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds session tunables.
type Config struct {
	// HistoryDebounce coalesces rapid edits (typing, slider drags) into a
	// single undoable step (default: 500ms).
	HistoryDebounce time.Duration
	// HistoryCapacity bounds the undo and redo stacks; the oldest entry is
	// evicted first (default: 30).
	HistoryCapacity int
	// Clock for testing (nil uses real time).
	Clock Clock
}

// DefaultConfig returns the editor defaults.
func DefaultConfig() *Config {
	return &Config{
		HistoryDebounce: 500 * time.Millisecond,
		HistoryCapacity: 30,
	}
}

// historyEntry is one undoable step: a full state snapshot plus the time it
// was captured, used for debounce decisions.
type historyEntry struct {
	state theme.EditorState
	at    time.Time
}

// Session is the per-editing-session token store. State and history are
// owned by the goroutine performing edits; the mutex guards only the flags
// and checkpoint shared with the autosave goroutine.
type Session struct {
	config *Config
	clock  Clock

	state   theme.EditorState
	history []historyEntry
	future  []historyEntry
	// lastPushAt is the capture time of the most recently pushed history
	// entry; zero forces the next edit to push.
	lastPushAt time.Time

	// mu guards checkpoint, dirty, loading, and saving: the autosave
	// goroutine writes acknowledgements through them.
	mu         sync.Mutex
	checkpoint *theme.EditorState
	dirty      bool
	loading    bool
	saving     bool
}

// NewSession creates a session holding the built-in default state.
func NewSession(cfg *Config) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.HistoryDebounce <= 0 {
		cfg.HistoryDebounce = DefaultConfig().HistoryDebounce
	}
	if cfg.HistoryCapacity <= 0 {
		cfg.HistoryCapacity = DefaultConfig().HistoryCapacity
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	return &Session{
		config: cfg,
		clock:  clock,
		state:  theme.DefaultEditorState(),
	}
}

// State returns a snapshot of the current editor state.
func (s *Session) State() theme.EditorState {
	return s.state.Clone()
}

// Mode returns the active view mode.
func (s *Session) Mode() theme.Mode {
	return s.state.Mode
}

// SetMode switches the active view mode. Mode is a view concern: it is not
// an undoable step and does not dirty the session.
func (s *Session) SetMode(mode theme.Mode) {
	s.state.Mode = mode
}

// SetStyleProperty merges a single token edit into the named mode's map.
// A manual edit invalidates preset attribution. The edit is folded into the
// in-progress history entry unless the debounce window since the last pushed
// entry has elapsed.
func (s *Session) SetStyleProperty(mode theme.Mode, key, value string) bool {
	if !theme.IsKey(key) {
		log.Warn().Str("key", key).Msg("Ignoring edit to unknown style property")
		return false
	}

	// Edits spaced by at least the full window each open a new step; only
	// strictly faster bursts coalesce.
	now := s.clock.Now()
	if s.lastPushAt.IsZero() || now.Sub(s.lastPushAt) >= s.config.HistoryDebounce {
		s.pushHistory(now)
	}

	s.state.Styles.Props(mode).Set(key, value)
	// Common keys are semantically shared between modes; keep the duplicate
	// value in the other map in sync.
	if theme.IsCommonKey(key) {
		other := theme.ModeDark
		if mode == theme.ModeDark {
			other = theme.ModeLight
		}
		s.state.Styles.Props(other).Set(key, value)
	}

	s.state.PresetID = ""
	s.future = s.future[:0]
	s.setDirty()
	return true
}

// ApplyPreset replaces both mode maps wholesale, resets adjustments to the
// identity, and records preset attribution. Always one new history entry.
func (s *Session) ApplyPreset(id string, styles theme.Styles) {
	s.pushHistory(s.clock.Now())

	s.state.Styles = styles
	s.state.Adjustments = color.IdentityAdjustments()
	s.state.PresetID = id
	s.future = s.future[:0]
	s.setDirty()
}

// AdjustmentsPatch is a partial update to the global HSL adjustments; nil
// fields are left unchanged.
type AdjustmentsPatch struct {
	HueShift        *float64
	SaturationScale *float64
	LightnessScale  *float64
}

// SetAdjustments merges the patch into the session's adjustments, clamping
// each component. Adjustment edits are not individually undoable: no history
// entry is pushed, matching the behavior theme authors rely on (undoing past
// a preset or style edit also reverts adjustments).
func (s *Session) SetAdjustments(patch AdjustmentsPatch) {
	adjustments := s.state.Adjustments
	if patch.HueShift != nil {
		adjustments.HueShift = *patch.HueShift
	}
	if patch.SaturationScale != nil {
		adjustments.SaturationScale = *patch.SaturationScale
	}
	if patch.LightnessScale != nil {
		adjustments.LightnessScale = *patch.LightnessScale
	}
	s.state.Adjustments = adjustments.Clamped()
	s.state.PresetID = ""
	s.setDirty()
}

// Adjustments returns the current global HSL adjustments.
func (s *Session) Adjustments() color.Adjustments {
	return s.state.Adjustments
}

// Undo restores the most recent history entry, preserving the current view
// mode. A no-op when history is empty. Undo always marks the session dirty,
// even when the restored state matches the checkpoint.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}

	top := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.future = appendBounded(s.future, historyEntry{state: s.state.Clone(), at: s.clock.Now()}, s.config.HistoryCapacity)
	s.restore(top.state)
	return true
}

// Redo is the symmetric inverse of Undo.
func (s *Session) Redo() bool {
	if len(s.future) == 0 {
		return false
	}

	top := s.future[len(s.future)-1]
	s.future = s.future[:len(s.future)-1]

	s.history = appendBounded(s.history, historyEntry{state: s.state.Clone(), at: s.clock.Now()}, s.config.HistoryCapacity)
	s.restore(top.state)
	return true
}

// CanUndo reports whether the undo stack is non-empty.
func (s *Session) CanUndo() bool { return len(s.history) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (s *Session) CanRedo() bool { return len(s.future) > 0 }

// HistoryLen returns the undo stack depth.
func (s *Session) HistoryLen() int { return len(s.history) }

// SaveCheckpoint records the current state as the last-known-persisted
// snapshot. Called on load and on synchronous save acknowledgement.
func (s *Session) SaveCheckpoint() {
	checkpoint := s.state.Clone()
	s.mu.Lock()
	s.checkpoint = &checkpoint
	s.mu.Unlock()
}

// confirmSaved records snapshot as the persisted checkpoint and clears the
// dirty flag. The autosave goroutine acknowledges through here so it never
// touches the session's live state.
func (s *Session) confirmSaved(snapshot theme.EditorState) {
	checkpoint := snapshot.Clone()
	s.mu.Lock()
	s.checkpoint = &checkpoint
	s.dirty = false
	s.mu.Unlock()
}

// HasUnsavedChanges compares the current styles structurally against the
// checkpoint; without a checkpoint it falls back to the dirty flag.
func (s *Session) HasUnsavedChanges() bool {
	s.mu.Lock()
	checkpoint := s.checkpoint
	dirty := s.dirty
	s.mu.Unlock()
	if checkpoint != nil {
		return !s.state.SameStyles(*checkpoint)
	}
	return dirty
}

// MarkClean clears the dirty flag. Called on successful external save.
func (s *Session) MarkClean() {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
}

// IsDirty reports whether any mutation occurred since the last MarkClean.
func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SetLoading toggles the orthogonal loading flag.
func (s *Session) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// IsLoading reports whether an external load is in flight.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetSaving toggles the orthogonal saving flag.
func (s *Session) SetSaving(saving bool) {
	s.mu.Lock()
	s.saving = saving
	s.mu.Unlock()
}

// IsSaving reports whether an external save is in flight.
func (s *Session) IsSaving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Load replaces the session state from a persisted record: view mode resets
// to light, the checkpoint is set to the loaded state, both stacks clear,
// and the session is clean.
func (s *Session) Load(styles theme.Styles, adjustments color.Adjustments, presetID string) {
	s.state = theme.EditorState{
		Styles:      styles,
		Adjustments: adjustments.Clamped(),
		Mode:        theme.ModeLight,
		PresetID:    presetID,
	}
	s.history = nil
	s.future = nil
	s.lastPushAt = time.Time{}
	s.SaveCheckpoint()
	s.MarkClean()
}

// Reset restores the built-in defaults and clears stacks and checkpoint.
func (s *Session) Reset() {
	s.state = theme.DefaultEditorState()
	s.history = nil
	s.future = nil
	s.lastPushAt = time.Time{}
	s.mu.Lock()
	s.checkpoint = nil
	s.dirty = false
	s.mu.Unlock()
}

// pushHistory snapshots the pre-edit state as a new undoable step and
// starts a fresh debounce window.
func (s *Session) pushHistory(now time.Time) {
	s.history = appendBounded(s.history, historyEntry{state: s.state.Clone(), at: now}, s.config.HistoryCapacity)
	s.lastPushAt = now
}

// restore swaps in a captured state while preserving the current view mode,
// and ends the in-progress debounce window so the next edit is a new step.
func (s *Session) restore(state theme.EditorState) {
	mode := s.state.Mode
	s.state = state.Clone()
	s.state.Mode = mode
	s.lastPushAt = time.Time{}
	s.setDirty()
}

func (s *Session) setDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

func appendBounded(stack []historyEntry, entry historyEntry, capacity int) []historyEntry {
	if len(stack) >= capacity {
		overflow := len(stack) - capacity + 1
		stack = append(stack[:0], stack[overflow:]...)
	}
	return append(stack, entry)
}
