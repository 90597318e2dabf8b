// Package ui is the Bubble Tea front end of paymaker.
//
// The window is split in two panes:
//   - EditorView: focusable rows for every field of the customization
//     snapshot; text rows are edited in place with a textinput
//   - PreviewView: the simulated checkout card rendered from the latest
//     snapshot and the animated points value
//
// AppModel owns the customize.Store and counter.Animator, routes keys
// through the SPC leader KeybindRegistry, keeps confirmation modals on an
// OverlayStack and drives counter frames with a FrameScheduler.
package ui
