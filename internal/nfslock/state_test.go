package nfslock

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestLoadStateMissingFile(t *testing.T) {
	dir := t.TempDir()
	states, dirty, err := loadState(filepath.Join(dir, "state"), time.Minute, time.Now())
	if err != nil {
		t.Fatalf("loadState() error = %v", err)
	}
	if dirty {
		t.Error("missing file should not be reported dirty")
	}
	if len(states) != 0 {
		t.Errorf("len(states) = %d, want 0", len(states))
	}
}

func TestLoadStateEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state")
	if err := os.WriteFile(path, nil, 0o666); err != nil {
		t.Fatal(err)
	}

	states, dirty, err := loadState(path, time.Minute, time.Now())
	if err != nil {
		t.Fatalf("loadState() error = %v", err)
	}
	if dirty {
		t.Error("empty file should not be reported dirty")
	}
	if len(states) != 0 {
		t.Errorf("len(states) = %d, want 0", len(states))
	}
}

func TestDumpThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state")
	now := time.Now()

	want := []ClientState{
		{Host: "h1", PID: "1", Mode: ModeRead, Status: StatusGranted, Time: now.Unix()},
		{Host: "h2", PID: "2", Mode: ModeWrite, Status: StatusPending, Time: now.Unix()},
	}

	if err := dumpState(path, want); err != nil {
		t.Fatalf("dumpState() error = %v", err)
	}

	got, dirty, err := loadState(path, time.Hour, now)
	if err != nil {
		t.Fatalf("loadState() error = %v", err)
	}
	if dirty {
		t.Error("fresh round-trip should not be dirty")
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadStateDropsStaleEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state")
	now := time.Now()
	stale := now.Add(-time.Hour)

	entries := []ClientState{
		{Host: "stale", PID: "1", Mode: ModeWrite, Status: StatusGranted, Time: stale.Unix()},
		{Host: "fresh", PID: "2", Mode: ModeRead, Status: StatusGranted, Time: now.Unix()},
	}
	if err := dumpState(path, entries); err != nil {
		t.Fatal(err)
	}

	got, dirty, err := loadState(path, time.Minute, now)
	if err != nil {
		t.Fatalf("loadState() error = %v", err)
	}
	if !dirty {
		t.Error("dropping a stale entry should mark state dirty")
	}
	if len(got) != 1 || got[0].Host != "fresh" {
		t.Errorf("got = %+v, want only the fresh entry", got)
	}
}

func TestLoadStateMalformedTokenCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state")
	if err := os.WriteFile(path, []byte("h1 1 R G\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	_, _, err := loadState(path, time.Minute, time.Now())
	if err == nil {
		t.Fatal("expected error for malformed state file")
	}
}

func TestLoadStateLineAndSpaceSeparatorsEquivalent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state")
	now := strconv.FormatInt(time.Now().Unix(), 10)
	content := "h1 1 R\nG " + now + "\nh2 2 W G " + now + "\n"
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		t.Fatal(err)
	}

	states, _, err := loadState(path, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("loadState() error = %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("len(states) = %d, want 2", len(states))
	}
}

func TestModeStatusCodes(t *testing.T) {
	if ModeRead.code() != "R" || ModeWrite.code() != "W" {
		t.Error("mode codes do not match grammar")
	}
	if StatusGranted.code() != "G" || StatusPending.code() != "P" {
		t.Error("status codes do not match grammar")
	}
}
