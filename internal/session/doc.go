// Package session holds the editing state for one open image.
//
// A Session moves between three states:
//
//	Idle --StartDrawing--> Drawing --Complete/Cancel--> Idle
//	Idle --BeginEdit-----> Editing --FinishEdit/Cancel--> Idle
//
// Operations that are not allowed in the current state fail with
// ErrInvalidTransition and leave the session unchanged. Observers learn about
// changes through Subscribe.
package session
