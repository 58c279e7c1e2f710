// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample serializes an extracted subgraph into the compressed
// tabular exchange files consumed by downstream graph-data-science tooling.
// The index mapping is built in full before any file is written so that all
// artifacts reference the same integers for the same URI.
package sample

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pdiddy/dbpedia-sampler/pkg/types"
)

// Output filenames within the dataset directory.
const (
	indexFile      = "index.tsv.gz"
	labelsFile     = "index_labels.tsv.gz"
	relevantFile   = "relevant_entities.tsv.gz"
	statementsFile = "statements.tsv.gz"
	triplesFile    = "statements.nt.gz"
	manifestFile   = "manifest.yaml"
)

// Summary holds the counts from one serialization run.
type Summary struct {
	Dataset    string
	Entities   int
	Labeled    int
	Relevant   int
	Statements int
}

// EnsureDir creates the output directory. The pipeline calls this before
// any query work so an unwritable destination fails the run without
// touching the database.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating output directory %s: %v", ErrIO, dir, err)
	}
	return nil
}

// Run indexes the extracted subgraph and writes all output artifacts into
// dir. Tagged entities are indexed first in input order; statement endpoints
// missing from the entity set are appended after. Empty inputs produce
// valid, empty-bodied files.
func Run(dataset string, entities []types.Entity, statements []types.Statement,
	dir string, progress io.Writer) (Summary, error) {
	if progress == nil {
		progress = io.Discard
	}
	if err := EnsureDir(dir); err != nil {
		return Summary{}, err
	}

	ix := NewIndex()
	for _, ent := range entities {
		ix.Add(ent.URI)
	}

	// Two explicitly separate derived sets: the full index over every URI
	// referenced anywhere, and the relevant subset of statement endpoints.
	relevant := make(map[int]struct{})
	for _, stmt := range statements {
		relevant[ix.Add(stmt.Subject)] = struct{}{}
		relevant[ix.Add(stmt.Object)] = struct{}{}
	}

	summary := Summary{
		Dataset:    dataset,
		Entities:   ix.Len(),
		Relevant:   len(relevant),
		Statements: len(statements),
	}

	if err := writeIndex(filepath.Join(dir, indexFile), ix); err != nil {
		return Summary{}, err
	}

	labeled, err := writeLabels(filepath.Join(dir, labelsFile), ix, entities)
	if err != nil {
		return Summary{}, err
	}
	summary.Labeled = labeled

	if err := writeRelevant(filepath.Join(dir, relevantFile), relevant); err != nil {
		return Summary{}, err
	}

	if err := writeStatements(filepath.Join(dir, statementsFile),
		filepath.Join(dir, triplesFile), ix, statements); err != nil {
		return Summary{}, err
	}

	if err := writeManifest(filepath.Join(dir, manifestFile), summary); err != nil {
		return Summary{}, err
	}

	fmt.Fprintf(progress, "Wrote %d entities (%d labeled, %d relevant) and %d statements to %s\n",
		summary.Entities, summary.Labeled, summary.Relevant, summary.Statements, dir)
	return summary, nil
}

func writeIndex(path string, ix *Index) error {
	t, err := createTSV(path)
	if err != nil {
		return err
	}
	for i, uri := range ix.URIs() {
		if err := t.write(strconv.Itoa(i), uri); err != nil {
			t.Close()
			return err
		}
	}
	return t.Close()
}

// writeLabels emits one row per entity that carried a label or description
// record, resolving integers through the shared index. A missing field is an
// empty string. Duplicate URIs in the input keep their first record.
func writeLabels(path string, ix *Index, entities []types.Entity) (int, error) {
	t, err := createTSV(path)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{})
	labeled := 0
	for _, ent := range entities {
		if _, dup := seen[ent.URI]; dup {
			continue
		}
		seen[ent.URI] = struct{}{}
		if !ent.Described {
			continue
		}
		i, _ := ix.Lookup(ent.URI)
		if err := t.write(strconv.Itoa(i),
			sanitizeText(ent.Label), sanitizeText(ent.Description)); err != nil {
			t.Close()
			return 0, err
		}
		labeled++
	}
	return labeled, t.Close()
}

func writeRelevant(path string, relevant map[int]struct{}) error {
	indices := make([]int, 0, len(relevant))
	for i := range relevant {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	t, err := createTSV(path)
	if err != nil {
		return err
	}
	for _, i := range indices {
		if err := t.write(strconv.Itoa(i)); err != nil {
			t.Close()
			return err
		}
	}
	return t.Close()
}

// writeStatements emits the index-based TSV and the N-Triples rendition in
// one pass. Statements whose predicate is not an absolute IRI are kept in
// the TSV but skipped in the N-Triples file.
func writeStatements(tsvPath, ntPath string, ix *Index, statements []types.Statement) error {
	t, err := createTSV(tsvPath)
	if err != nil {
		return err
	}
	nt, err := createNT(ntPath)
	if err != nil {
		t.Close()
		return err
	}

	for _, stmt := range statements {
		s, _ := ix.Lookup(stmt.Subject)
		o, _ := ix.Lookup(stmt.Object)
		if err := t.write(strconv.Itoa(s), stmt.Predicate, strconv.Itoa(o)); err != nil {
			t.Close()
			nt.Close()
			return err
		}
		if absoluteIRI(stmt.Predicate) {
			if err := nt.writeTriple(stmt.Subject, stmt.Predicate, stmt.Object); err != nil {
				t.Close()
				nt.Close()
				return err
			}
		}
	}

	if err := t.Close(); err != nil {
		nt.Close()
		return err
	}
	return nt.Close()
}
