// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads the tagged subgraph out of Neo4j: one query for the
// tagged entities, one batched query for the tagged statements. The whole
// result set is materialized in memory; pagination exists only to keep
// individual round-trips bounded.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/pdiddy/dbpedia-sampler/pkg/types"
)

// ErrQuery classifies database-side query failures, as distinct from a
// merely empty result set. Test with errors.Is.
var ErrQuery = errors.New("graph query failed")

// DefaultBatchSize is the SKIP/LIMIT page size for the statement query.
const DefaultBatchSize = 1000000

// Extractor pulls one tagged subgraph out of a Neo4j session.
type Extractor struct {
	session   neo4j.SessionWithContext
	batchSize int
	progress  io.Writer
}

// New creates an extractor over the given session. Progress lines are
// written to progress after each statement batch; batchSize falls back to
// DefaultBatchSize when non-positive.
func New(session neo4j.SessionWithContext, batchSize int, progress io.Writer) *Extractor {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Extractor{session: session, batchSize: batchSize, progress: progress}
}

// Entities returns every node carrying the dataset tag, with its URI and
// optional label/description. An unknown tag returns an empty slice.
func (e *Extractor) Entities(ctx context.Context, tag string) ([]types.Entity, error) {
	if !ValidTag(tag) {
		return nil, fmt.Errorf("%w: invalid dataset tag %q", ErrQuery, tag)
	}

	query := fmt.Sprintf(
		"MATCH (e:`%s`) RETURN e.uri AS uri, e.label AS label, e.description AS description",
		tag)

	result, err := e.session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching entities for %q: %v", ErrQuery, tag, err)
	}

	var entities []types.Entity
	for result.Next(ctx) {
		ent, err := entityFromRecord(result.Record())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}
		entities = append(entities, ent)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading entity results for %q: %v", ErrQuery, tag, err)
	}
	return entities, nil
}

// Statements returns every edge whose endpoints both carry the dataset tag,
// as (subject URI, predicate, object URI) triples. Results are fetched in
// SKIP/LIMIT batches until a short page signals the end.
func (e *Extractor) Statements(ctx context.Context, tag string) ([]types.Statement, error) {
	if !ValidTag(tag) {
		return nil, fmt.Errorf("%w: invalid dataset tag %q", ErrQuery, tag)
	}

	query := fmt.Sprintf(
		"MATCH (s:`%s`)-[r]->(o:`%s`) RETURN s.uri AS subj, type(r) AS pred, o.uri AS obj "+
			"SKIP $skip LIMIT $limit",
		tag, tag)

	return collectStatements(ctx, e.batchSize, e.progress,
		func(ctx context.Context, skip, limit int) ([]types.Statement, error) {
			return e.statementPage(ctx, query, skip, limit)
		})
}

// collectStatements drives the pagination loop over a page fetcher. Split
// out from Statements so the loop is testable without a live session.
func collectStatements(ctx context.Context, batchSize int, progress io.Writer,
	fetch func(ctx context.Context, skip, limit int) ([]types.Statement, error),
) ([]types.Statement, error) {
	if progress == nil {
		progress = io.Discard
	}
	var all []types.Statement
	for skip := 0; ; skip += batchSize {
		page, err := fetch(ctx, skip, batchSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < batchSize {
			break
		}
		fmt.Fprintf(progress, "Loaded %d statements.\n", len(all))
	}
	fmt.Fprintf(progress, "Successfully loaded %d statements.\n", len(all))
	return all, nil
}

func (e *Extractor) statementPage(ctx context.Context, query string, skip, limit int) ([]types.Statement, error) {
	result, err := e.session.Run(ctx, query, map[string]any{"skip": skip, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("%w: fetching statements: %v", ErrQuery, err)
	}

	var page []types.Statement
	for result.Next(ctx) {
		stmt, err := statementFromRecord(result.Record())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}
		page = append(page, stmt)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading statement results: %v", ErrQuery, err)
	}
	return page, nil
}

// entityFromRecord maps one entity row. The URI is mandatory; label and
// description are optional node properties mapped to empty strings when
// absent.
func entityFromRecord(rec *db.Record) (types.Entity, error) {
	uri, err := requiredString(rec, "uri")
	if err != nil {
		return types.Entity{}, err
	}

	label, hasLabel := optionalString(rec, "label")
	description, hasDescription := optionalString(rec, "description")

	return types.Entity{
		URI:         uri,
		Label:       label,
		Description: description,
		Described:   hasLabel || hasDescription,
	}, nil
}

// statementFromRecord maps one statement row; all three terms are mandatory.
func statementFromRecord(rec *db.Record) (types.Statement, error) {
	subj, err := requiredString(rec, "subj")
	if err != nil {
		return types.Statement{}, err
	}
	pred, err := requiredString(rec, "pred")
	if err != nil {
		return types.Statement{}, err
	}
	obj, err := requiredString(rec, "obj")
	if err != nil {
		return types.Statement{}, err
	}
	return types.Statement{Subject: subj, Predicate: pred, Object: obj}, nil
}

func requiredString(rec *db.Record, key string) (string, error) {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return "", fmt.Errorf("record is missing %q", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("record field %q is not a non-empty string (got %T)", key, v)
	}
	return s, nil
}

func optionalString(rec *db.Record, key string) (string, bool) {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}
