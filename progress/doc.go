// Package progress is a thin facade over a live-updating terminal progress
// display. Tasks are rows in the display; logs emitted through the facade
// scroll above it. The heavy lifting is delegated to the underlying widget;
// this package only adds task-handle bookkeeping, persistence flags, and a
// scope helper that guarantees the display stops on every exit path.
//
// Exactly one tracker should be active per process at a time; nesting two
// live displays is unsupported.
package progress
