package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quaverlabs/spotify-mcp/memory"
)

func TestThread_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "conv.json")

	in := &memory.Thread{ID: "spotify-conversation-1"}
	in.Append("user", "search for abba")
	in.Append("assistant", "Found 10 tracks")
	if err := memory.SaveThread(p, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := memory.LoadThread(p, "spotify-conversation-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.ID != in.ID {
		t.Fatalf("id mismatch: got %q want %q", out.ID, in.ID)
	}
	if len(out.Messages) != len(in.Messages) {
		t.Fatalf("length mismatch: got %d want %d", len(out.Messages), len(in.Messages))
	}
	for i := range in.Messages {
		if in.Messages[i] != out.Messages[i] {
			t.Fatalf("mismatch at %d: got %+v want %+v", i, out.Messages[i], in.Messages[i])
		}
	}
}

func TestThread_LoadMissing_ReturnsEmptyWithID(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "does-not-exist.json")

	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("expected missing file in tempdir")
	}

	th, err := memory.LoadThread(p, "fresh-thread")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if th.ID != "fresh-thread" {
		t.Fatalf("id = %q, want fresh-thread", th.ID)
	}
	if len(th.Messages) != 0 {
		t.Fatalf("expected empty transcript, got %#v", th.Messages)
	}
}

func TestThread_LoadInvalidJSON_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(p, []byte("{oops"), 0o664); err != nil {
		t.Fatalf("prep: %v", err)
	}
	if _, err := memory.LoadThread(p, "x"); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestThread_LoadBackfillsMissingID(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "conv.json")
	if err := os.WriteFile(p, []byte(`{"messages":[{"role":"user","text":"hi"}]}`), 0o664); err != nil {
		t.Fatalf("prep: %v", err)
	}
	th, err := memory.LoadThread(p, "backfilled")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if th.ID != "backfilled" {
		t.Fatalf("id = %q, want backfilled", th.ID)
	}
}
