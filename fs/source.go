// Package fs provides file-based access to archived thread pages.
package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/fwojciec/forumstats"
)

var pageNumPattern = regexp.MustCompile(`\d+`)

// Ensure Source implements forumstats.PageSource.
var _ forumstats.PageSource = (*Source)(nil)

// Source reads archived pages from a directory. Page files carry their page
// number as the first digit run in the file name (e.g. page_0001.html);
// files without digits and subdirectories are ignored.
type Source struct {
	dir string
}

// NewSource creates a new Source reading from the given directory.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// List implements forumstats.PageSource. Pages are returned in ascending
// page-number order regardless of file name padding.
func (s *Source) List() ([]forumstats.PageRef, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, forumstats.Errorf(forumstats.ENOTFOUND, "cannot read page directory %q: %v", s.dir, err)
	}

	var refs []forumstats.PageRef
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		digits := pageNumPattern.FindString(entry.Name())
		if digits == "" {
			continue
		}
		num, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		refs = append(refs, forumstats.PageRef{PageNum: num, Name: entry.Name()})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].PageNum < refs[j].PageNum })
	return refs, nil
}

// Read implements forumstats.PageSource.
func (s *Source) Read(ref forumstats.PageRef) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, ref.Name))
	if err != nil {
		return "", forumstats.Errorf(forumstats.ENOTFOUND, "cannot read page file %q: %v", ref.Name, err)
	}
	return string(data), nil
}
