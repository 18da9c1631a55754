// Package advlog coordinates named loggers that share console and file
// destinations.
//
// A Manager is an explicitly constructed registry: it maps logical names to
// handles, decides which handles share the console or a merged log file, and
// wires each handle's slog.Logger to the formatters in advlog/format and the
// sinks in advlog/sink. Construct a Manager per context (tests build their
// own); the package-level Initialize/GetLogger surface maintains one default
// Manager for programs that want session-style setup in a single call.
package advlog
