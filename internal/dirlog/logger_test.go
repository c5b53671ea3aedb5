package dirlog

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{base: zap.New(core).Sugar()}, logs
}

func TestLookupLogsIdentifierAndFound(t *testing.T) {
	log, logs := newObservedLogger()

	log.Lookup("alice", true)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["identifier"] != "alice" {
		t.Errorf("identifier field = %v, want alice", fields["identifier"])
	}
	if fields["found"] != true {
		t.Errorf("found field = %v, want true", fields["found"])
	}
}

func TestCommitLogsUSNAndSkipMeta(t *testing.T) {
	log, logs := newObservedLogger()

	log.Commit(42, 100, true)

	fields := logs.All()[0].ContextMap()
	if fields["dnt"] != int32(42) {
		t.Errorf("dnt field = %v, want 42", fields["dnt"])
	}
	if fields["usn"] != int64(100) {
		t.Errorf("usn field = %v, want 100", fields["usn"])
	}
	if fields["skip_meta"] != true {
		t.Errorf("skip_meta field = %v, want true", fields["skip_meta"])
	}
}

func TestNoOpLogsAtDebugLevel(t *testing.T) {
	log, logs := newObservedLogger()

	log.NoOp(7)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("level = %v, want debug", entries[0].Level)
	}
}

func TestWithFieldsAttachesToSubsequentEntries(t *testing.T) {
	log, logs := newObservedLogger()

	scoped := log.WithFields("variant", "ADLDS")
	scoped.BootKey("ADLDS")

	fields := logs.All()[0].ContextMap()
	if fields["variant"] != "ADLDS" {
		t.Errorf("variant field = %v, want ADLDS", fields["variant"])
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	log := NewNop()
	log.Lookup("x", false)
	log.Commit(1, 1, false)
	log.NoOp(1)
	log.BootKey("ADDS")
	log.Warn("warning")
	log.Error("boom", nil)
	if err := log.Sync(); err != nil {
		t.Logf("Sync() returned %v (expected on some platforms for stdout/stderr)", err)
	}
}
