package obs

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewRunAssignsUniqueIDs(t *testing.T) {
	run1, sync1, err := NewRun("info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer sync1()

	run2, sync2, err := NewRun("info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer sync2()

	if run1.ID == "" || run2.ID == "" {
		t.Fatal("expected non-empty run ids")
	}
	if run1.ID == run2.ID {
		t.Error("expected distinct runs to receive distinct ids")
	}
}

func TestNewRunRejectsUnknownLevel(t *testing.T) {
	if _, _, err := NewRun("verbose"); err == nil {
		t.Fatal("expected an unknown log level to be rejected")
	}
}

func TestParseLevelDefaultsEmptyToInfo(t *testing.T) {
	level, err := parseLevel("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != zapcore.InfoLevel {
		t.Errorf("expected empty level name to default to info, got %v", level)
	}
}
