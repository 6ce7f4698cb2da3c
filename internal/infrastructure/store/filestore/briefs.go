// Package filestore persists generated briefs as static HTML files, one
// file per brief, named {sanitized-title}_{YYYYMMDDHHMMSS}.html.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/briefpanel/brief-service/internal/core/domain"
)

const (
	briefExt      = ".html"
	timestampFmt  = "20060102150405"
	titleOpenTag  = "<title>"
	titleCloseTag = "</title>"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// BriefStore stores briefs in a single directory on the local filesystem.
// There is no locking: concurrent writes are assumed non-colliding
// (distinct title+timestamp) and a listing racing a write may or may not
// observe it.
type BriefStore struct {
	dir string
	now func() time.Time
}

func NewBriefStore(dir string) *BriefStore {
	return &BriefStore{dir: dir, now: time.Now}
}

// List scans the store directory for .html entries, pulls each title out of
// its <title> tag and sorts by file modification time, newest first. A
// missing or empty directory yields an empty slice. Entries share the
// underlying directory order on equal timestamps, so one listing call is
// deterministic.
func (s *BriefStore) List() ([]domain.BriefInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.BriefInfo{}, nil
		}
		return nil, fmt.Errorf("list briefs: %w", err)
	}

	briefs := make([]domain.BriefInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), briefExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}

		briefs = append(briefs, domain.BriefInfo{
			Title:     extractTitle(string(content), entry.Name()),
			Filename:  entry.Name(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.SliceStable(briefs, func(i, j int) bool {
		return briefs[i].CreatedAt.After(briefs[j].CreatedAt)
	})
	return briefs, nil
}

// Read returns the raw bytes of one stored brief. Anything that is not a
// plain .html filename inside the store directory is reported as not found,
// which also closes off path traversal.
func (s *BriefStore) Read(filename string) ([]byte, error) {
	if !validFilename(filename) {
		return nil, domain.ErrBriefNotFound
	}

	content, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrBriefNotFound
		}
		return nil, fmt.Errorf("read brief %q: %w", filename, err)
	}
	return content, nil
}

// Write persists content under a filename derived from the title and the
// current timestamp at second granularity. The store directory is created
// on first use. Same-second same-title collisions overwrite; accepted.
func (s *BriefStore) Write(title string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create briefs dir: %w", err)
	}

	filename := sanitizeTitle(title) + "_" + s.now().Format(timestampFmt) + briefExt
	if err := os.WriteFile(filepath.Join(s.dir, filename), content, 0o644); err != nil {
		return "", fmt.Errorf("write brief %q: %w", filename, err)
	}
	return filename, nil
}

// sanitizeTitle replaces spaces with underscores and strips everything that
// is not alphanumeric, underscore or hyphen.
func sanitizeTitle(title string) string {
	clean := unsafeChars.ReplaceAllString(strings.ReplaceAll(title, " ", "_"), "")
	if clean == "" {
		clean = "brief"
	}
	return clean
}

// validFilename accepts only bare .html filenames, no separators and no
// parent references.
func validFilename(filename string) bool {
	if filename == "" || !strings.HasSuffix(filename, briefExt) {
		return false
	}
	if strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return false
	}
	return filepath.Base(filename) == filename
}

// extractTitle pulls the text between the first <title> pair, falling back
// to the filename when the marker is absent.
func extractTitle(content, filename string) string {
	start := strings.Index(content, titleOpenTag)
	if start == -1 {
		return strings.TrimSuffix(filename, briefExt)
	}
	start += len(titleOpenTag)
	end := strings.Index(content[start:], titleCloseTag)
	if end == -1 {
		return strings.TrimSuffix(filename, briefExt)
	}
	return content[start : start+end]
}
