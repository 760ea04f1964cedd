package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScoreBookCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	book := NewScoreBook(path)

	if err := book.Save("alice", 40); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("score file was not created: %v", err)
	}
	if string(data) != "alice 40\n" {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestScoreBookAppendsLowerScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	book := NewScoreBook(path)

	for _, save := range []struct {
		name  string
		score int
	}{{"alice", 40}, {"bob", 33}, {"carol", 40}} {
		if err := book.Save(save.name, save.score); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	want := []ScoreEntry{{"alice", 40}, {"bob", 33}, {"carol", 40}}
	got, err := book.All()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("score order mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreBookPromotesHighScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	book := NewScoreBook(path)

	book.Save("alice", 40)
	book.Save("bob", 33)
	if err := book.Save("carol", 50); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	want := []ScoreEntry{{"carol", 50}, {"alice", 40}, {"bob", 33}}
	got, err := book.All()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("high score placement mismatch (-want +got):\n%s", diff)
	}

	top, ok, err := book.Top()
	if err != nil || !ok {
		t.Fatalf("expected a top entry, got ok=%v err=%v", ok, err)
	}
	if top.Name != "carol" || top.Score != 50 {
		t.Fatalf("unexpected top entry %+v", top)
	}
}

func TestScoreBookSkipsEmptyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	book := NewScoreBook(path)

	if err := book.Save("", 64); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("an empty name must not create the file")
	}
}

func TestScoreBookNameWithSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	book := NewScoreBook(path)

	book.Save("jean claude", 38)
	got, err := book.All()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "jean claude" || got[0].Score != 38 {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestScoreBookMissingFile(t *testing.T) {
	book := NewScoreBook(filepath.Join(t.TempDir(), "absent.txt"))

	entries, err := book.All()
	if err != nil || entries != nil {
		t.Fatalf("expected no entries for a missing file, got %v err=%v", entries, err)
	}
	if _, ok, err := book.Top(); ok || err != nil {
		t.Fatalf("expected no top entry for a missing file")
	}
}
