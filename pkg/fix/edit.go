// Package fix holds the text edit model shared by the formatter and its
// front ends: validating and ordering edits, applying them to a buffer and
// rendering the change as a unified diff.
package fix

// TextEdit replaces the bytes [StartOffset, EndOffset) of a source with
// NewText.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Len returns the number of source bytes the edit replaces.
func (e TextEdit) Len() int {
	return e.EndOffset - e.StartOffset
}

// Delta returns the change in length caused by the edit.
func (e TextEdit) Delta() int {
	return len(e.NewText) - e.Len()
}

// NoOp reports whether applying the edit to content leaves it unchanged.
func (e TextEdit) NoOp(content []byte) bool {
	return string(content[e.StartOffset:e.EndOffset]) == e.NewText
}
