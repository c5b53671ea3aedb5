package dirlog

import "go.uber.org/zap"

// Logger wraps a zap.SugaredLogger with helper methods named after the
// Directory Agent operations that call them, so call sites read as
// "log.Lookup(...)" rather than repeating a message string at every
// call site.
type Logger struct {
	base *zap.SugaredLogger
}

// New builds a production-configured Logger.
func New() (*Logger, error) {
	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{base: zl.Sugar()}, nil
}

// NewNop returns a Logger that discards everything, for tests and
// callers that construct an Agent without a logging adapter.
func NewNop() *Logger {
	return &Logger{base: zap.NewNop().Sugar()}
}

// WithFields returns a new Logger with the given structured fields
// attached to every subsequent entry.
func (l *Logger) WithFields(keysAndValues ...any) *Logger {
	return &Logger{base: l.base.With(keysAndValues...)}
}

// Lookup logs the outcome of a find_object call (get_account and the
// mutators reach it through find_object).
func (l *Logger) Lookup(identifier string, found bool) {
	l.base.Infow("object lookup", "identifier", identifier, "found", found)
}

// Commit logs a commit_attribute_update outcome.
func (l *Logger) Commit(dnt int32, usn int64, skipMeta bool) {
	l.base.Infow("attribute commit", "dnt", dnt, "usn", usn, "skip_meta", skipMeta)
}

// NoOp logs a commit_attribute_update call that detected no change and
// aborted instead of committing.
func (l *Logger) NoOp(dnt int32) {
	l.base.Debugw("attribute commit was a no-op, aborting", "dnt", dnt)
}

// BootKey logs a change_boot_key rotation.
func (l *Logger) BootKey(variant string) {
	l.base.Infow("boot key rotated", "variant", variant)
}

// Warn logs a recoverable condition, e.g. a primary-group-id value
// outside the informative RID range.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.base.Warnw(msg, keysAndValues...)
}

// Error logs an operation failure.
func (l *Logger) Error(msg string, err error, keysAndValues ...any) {
	l.base.Errorw(msg, append([]any{"error", err}, keysAndValues...)...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
