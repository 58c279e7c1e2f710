package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeo4jConfigURI(t *testing.T) {
	cfg := Neo4jConfig{Host: "graph.internal", Port: 7687}
	assert.Equal(t, "neo4j://graph.internal:7687", cfg.URI())
}
