package theme

import "github.com/sitewise/themekit/internal/color"

// EditorState is the unit of undo/redo and checkpointing: the full token
// set, the global color adjustments, the active view mode, and the preset
// the styles were last applied from ("" when hand-edited or never set).
type EditorState struct {
	Styles      Styles            `json:"styles"`
	Adjustments color.Adjustments `json:"hslAdjustments"`
	Mode        Mode              `json:"currentMode"`
	PresetID    string            `json:"presetId,omitempty"`
}

// DefaultEditorState is the state a fresh editing session starts from.
func DefaultEditorState() EditorState {
	return EditorState{
		Styles:      DefaultStyles(),
		Adjustments: color.IdentityAdjustments(),
		Mode:        ModeLight,
	}
}

// Clone returns an independent copy. All fields are value types, so a plain
// copy is a deep copy.
func (s EditorState) Clone() EditorState {
	return s
}

// SameStyles compares token sets structurally. Persisted data is always a
// fresh copy, so identity comparisons would never match.
func (s EditorState) SameStyles(other EditorState) bool {
	return s.Styles == other.Styles
}
