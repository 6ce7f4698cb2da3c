package filestore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/briefpanel/brief-service/internal/core/domain"
)

func TestBriefStore_List_EmptyDir(t *testing.T) {
	store := NewBriefStore(t.TempDir())

	briefs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(briefs) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(briefs))
	}
}

func TestBriefStore_List_MissingDir(t *testing.T) {
	store := NewBriefStore(filepath.Join(t.TempDir(), "does-not-exist"))

	briefs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(briefs) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(briefs))
	}
}

func TestBriefStore_List_SortedNewestFirst(t *testing.T) {
	dir := t.TempDir()
	store := NewBriefStore(dir)

	write := func(name, title string, age time.Duration) {
		t.Helper()
		path := filepath.Join(dir, name)
		content := []byte("<html><head><title>" + title + "</title></head><body></body></html>")
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		mtime := time.Now().Add(-age)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
	}

	write("oldest.html", "Oldest", 3*time.Hour)
	write("middle.html", "Middle", 2*time.Hour)
	write("newest.html", "Newest", time.Hour)
	// Non-brief entries are skipped.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatalf("write notes.txt: %v", err)
	}

	briefs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(briefs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(briefs))
	}

	wantTitles := []string{"Newest", "Middle", "Oldest"}
	for i, want := range wantTitles {
		if briefs[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, briefs[i].Title)
		}
	}
	if briefs[0].Filename != "newest.html" {
		t.Fatalf("expected newest.html first, got %q", briefs[0].Filename)
	}
}

func TestBriefStore_List_TitleFallback(t *testing.T) {
	dir := t.TempDir()
	store := NewBriefStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "untitled.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	briefs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(briefs) != 1 || briefs[0].Title != "untitled" {
		t.Fatalf("expected filename-derived title, got %+v", briefs)
	}
}

func TestBriefStore_Read_ExactBytes(t *testing.T) {
	dir := t.TempDir()
	store := NewBriefStore(dir)

	want := []byte("<html><head><title>X</title></head><body>payload</body></html>")
	if err := os.WriteFile(filepath.Join(dir, "x.html"), want, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.Read("x.html")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected exact bytes back, got %q", got)
	}
}

func TestBriefStore_Read_NotFound(t *testing.T) {
	store := NewBriefStore(t.TempDir())

	if _, err := store.Read("missing.html"); err != domain.ErrBriefNotFound {
		t.Fatalf("expected ErrBriefNotFound, got %v", err)
	}
}

func TestBriefStore_Read_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewBriefStore(filepath.Join(dir, "briefs"))

	// A real file outside the store directory must stay unreachable.
	if err := os.WriteFile(filepath.Join(dir, "secret.html"), []byte("secret"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []string{
		"../secret.html",
		"..\\secret.html",
		"/etc/passwd",
		"sub/dir.html",
		"",
		"plain.txt",
	}
	for _, filename := range cases {
		if _, err := store.Read(filename); err != domain.ErrBriefNotFound {
			t.Fatalf("filename %q: expected ErrBriefNotFound, got %v", filename, err)
		}
	}
}

func TestBriefStore_Write_DerivesFilename(t *testing.T) {
	store := NewBriefStore(t.TempDir())
	store.now = func() time.Time {
		return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	}

	filename, err := store.Write("Linear Algebra (intro)!", []byte("<html></html>"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if filename != "Linear_Algebra_intro_20260314150926.html" {
		t.Fatalf("unexpected filename: %q", filename)
	}

	got, err := store.Read(filename)
	if err != nil {
		t.Fatalf("Read back failed: %v", err)
	}
	if string(got) != "<html></html>" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestBriefStore_Write_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "briefs")
	store := NewBriefStore(dir)

	if _, err := store.Write("First", []byte("x")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected store dir to exist: %v", err)
	}
}

func TestSanitizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Calculus", "Calculus"},
		{"Linear Algebra", "Linear_Algebra"},
		{"a/b\\c:d", "abcd"},
		{"../../etc", "etc"},
		{"!@#$%", "brief"},
	}
	for _, tc := range cases {
		if got := sanitizeTitle(tc.in); got != tc.want {
			t.Fatalf("sanitizeTitle(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
