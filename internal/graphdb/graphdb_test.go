// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dbpedia-sampler/pkg/types"
)

func TestConnectRefused(t *testing.T) {
	// Port 1 is essentially never listening; a single attempt must fail
	// fast and classify as a connection error.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := types.Neo4jConfig{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "neo4j",
		Password: "neo4j",
		Database: "neo4j",
	}

	conn, err := Connect(ctx, cfg)
	require.Error(t, err)
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrConnect)
	assert.Contains(t, err.Error(), "neo4j://127.0.0.1:1")
}
