// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrIO classifies output-side filesystem failures. Test with errors.Is.
var ErrIO = errors.New("writing sample output failed")

// tsvFile couples a gzip stream over a file with a tab-delimited writer.
type tsvFile struct {
	path string
	f    *os.File
	gz   *gzip.Writer
	w    *csv.Writer
}

func createTSV(path string) (*tsvFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrIO, path, err)
	}
	gz := gzip.NewWriter(f)
	w := csv.NewWriter(gz)
	w.Comma = '\t'
	return &tsvFile{path: path, f: f, gz: gz, w: w}, nil
}

func (t *tsvFile) write(record ...string) error {
	if err := t.w.Write(record); err != nil {
		return fmt.Errorf("%w: writing row to %s: %v", ErrIO, t.path, err)
	}
	return nil
}

// Close flushes the TSV buffer and finalizes the gzip stream. A file closed
// without error is complete and well-formed, even if it holds zero rows.
func (t *tsvFile) Close() error {
	t.w.Flush()
	if err := t.w.Error(); err != nil {
		t.f.Close()
		return fmt.Errorf("%w: flushing %s: %v", ErrIO, t.path, err)
	}
	if err := t.gz.Close(); err != nil {
		t.f.Close()
		return fmt.Errorf("%w: finalizing %s: %v", ErrIO, t.path, err)
	}
	if err := t.f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrIO, t.path, err)
	}
	return nil
}

// ntFile writes gzip-compressed N-Triples lines.
type ntFile struct {
	path string
	f    *os.File
	gz   *gzip.Writer
}

func createNT(path string) (*ntFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrIO, path, err)
	}
	return &ntFile{path: path, f: f, gz: gzip.NewWriter(f)}, nil
}

func (n *ntFile) writeTriple(subj, pred, obj string) error {
	line := fmt.Sprintf("<%s> <%s> <%s> .\n", subj, pred, obj)
	if _, err := n.gz.Write([]byte(line)); err != nil {
		return fmt.Errorf("%w: writing triple to %s: %v", ErrIO, n.path, err)
	}
	return nil
}

func (n *ntFile) Close() error {
	if err := n.gz.Close(); err != nil {
		n.f.Close()
		return fmt.Errorf("%w: finalizing %s: %v", ErrIO, n.path, err)
	}
	if err := n.f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrIO, n.path, err)
	}
	return nil
}

// sanitizeText flattens tabs and line breaks in label/description text so
// every output row stays a single line with exactly its column count.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}

// absoluteIRI reports whether s can stand as an N-Triples term. A bare
// relationship type like "knows" has no scheme and is excluded from the
// N-Triples file (it stays in the TSV).
func absoluteIRI(s string) bool {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return false
	}
	for _, r := range s {
		if r == ' ' || r == '<' || r == '>' || r == '"' {
			return false
		}
	}
	return true
}
