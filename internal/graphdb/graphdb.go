// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graphdb manages the connection to the Neo4j instance that holds
// the source knowledge graph.
package graphdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/pdiddy/dbpedia-sampler/pkg/types"
)

// ErrConnect classifies failures to reach or authenticate against the
// database. Test with errors.Is.
var ErrConnect = errors.New("graph database connection failed")

// Conn is a live handle to the Neo4j instance. It owns the driver and
// must be released with Close on every exit path.
type Conn struct {
	driver   neo4j.DriverWithContext
	database string
}

// Connect builds the driver for the configured endpoint and verifies
// connectivity with a single attempt. There is no retry: an unreachable
// host or rejected credentials fail the run immediately.
func Connect(ctx context.Context, cfg types.Neo4jConfig) (*Conn, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI(),
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: creating driver for %s: %v", ErrConnect, cfg.URI(), err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("%w: %s unreachable or credentials rejected: %v",
			ErrConnect, cfg.URI(), err)
	}

	return &Conn{driver: driver, database: cfg.Database}, nil
}

// Session opens a session against the configured database. The caller owns
// the session and must Close it.
func (c *Conn) Session(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database})
}

// Close releases the underlying driver.
func (c *Conn) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}
