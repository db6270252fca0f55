// Package polygon implements an editable polygon whose vertices live in a single
// history buffer.
//
// The buffer holds every vertex that was added; a cursor marks the last active
// one. Vertices up to and including the cursor form the polygon, vertices after it
// can be brought back with RedoVertex. Removing the last vertex only moves the
// cursor, so undo and redo are O(1) and never copy. Any new insertion truncates
// the buffer at the cursor, which discards the redo history.
package polygon
