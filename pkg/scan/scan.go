// Package scan walks a directory tree looking for unresolved Git
// merge-conflict markers, for use in CI jobs and local hooks after a merge
// or rebase.
package scan

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cjl525/presetpull/pkg/errors"
)

// markers are matched at the start of a line after stripping leading
// whitespace, so indented conflict blocks are still caught.
var markers = []string{"<<<<<<<", "=======", ">>>>>>>"}

var skipDirs = map[string]bool{
	".git":        true,
	"__pycache__": true,
}

var skipSuffixes = map[string]bool{
	".pyc": true,
	".pyo": true,
	".swp": true,
	".swo": true,
}

// Match is one conflict-marker occurrence.
type Match struct {
	Path string // relative to the scanned root
	Line int    // 1-based
	Text string // the matched line, trailing whitespace trimmed
}

// Scanner walks a tree for conflict markers.
type Scanner struct {
	root string
	exts map[string]bool // lowercased extension whitelist; empty means all
	log  *log.Logger
}

// New creates a Scanner for root. Extensions, when given, whitelist which
// file suffixes are scanned (lowercased, leading dot expected). Pass nil as
// logger to use the package default.
func New(root string, extensions []string, logger *log.Logger) (*Scanner, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidRoot, "scan root %q does not exist", root)
	}
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{root: root, exts: exts, log: logger}, nil
}

// Run walks the tree and returns every marker occurrence in walk order.
// Unreadable files are logged and skipped rather than failing the scan.
func (s *Scanner) Run() ([]Match, error) {
	var matches []Match
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warn("skipped during scan", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !s.wantFile(path) {
			return nil
		}

		found, err := scanFile(path)
		if err != nil {
			s.log.Warn("skipped unreadable file", "path", path, "error", err)
			return nil
		}
		for _, m := range found {
			if rel, err := filepath.Rel(s.root, path); err == nil {
				m.Path = rel
			} else {
				m.Path = path
			}
			matches = append(matches, m)
		}
		return nil
	})
	return matches, err
}

func (s *Scanner) wantFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if skipSuffixes[ext] {
		return false
	}
	return len(s.exts) == 0 || s.exts[ext]
}

func scanFile(path string) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matches []Match
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		trimmed := strings.TrimLeft(line, " \t")
		for _, marker := range markers {
			if strings.HasPrefix(trimmed, marker) {
				matches = append(matches, Match{
					Line: lineno,
					Text: strings.TrimRight(line, " \t\r"),
				})
				break
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
