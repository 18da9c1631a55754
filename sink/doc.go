// Package sink owns the destinations rendered log lines are written to.
//
// A sink serializes its own writes; formatting happens before a sink is
// involved, so callers may share one sink between many loggers. File sinks
// support truncate and append open modes plus optional size-based rotation
// with numbered backups.
package sink
