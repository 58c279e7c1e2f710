// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared configuration and graph data types used
// across the sampling pipeline stages.
package types

import "fmt"

// Neo4jConfig holds connection parameters for the Neo4j instance that
// maintains the knowledge graph.
type Neo4jConfig struct {
	// Host is the hostname of the Neo4j instance.
	Host string `json:"host" yaml:"host"`

	// Port is the bolt port of the Neo4j instance.
	Port int `json:"port" yaml:"port"`

	// Username authenticates against the Neo4j instance.
	Username string `json:"username" yaml:"username"`

	// Password authenticates against the Neo4j instance.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Database is the Neo4j database to open sessions against (default "neo4j").
	Database string `json:"database" yaml:"database"`
}

// URI returns the bolt connection URI for the configured host and port.
func (c Neo4jConfig) URI() string {
	return fmt.Sprintf("neo4j://%s:%d", c.Host, c.Port)
}

// SampleConfig holds the settings for one sampling run.
type SampleConfig struct {
	Neo4j Neo4jConfig `json:"neo4j" yaml:"neo4j"`

	// Dataset is the subgraph tag selecting which partition of the source
	// graph to extract (e.g. "dbpedia1m").
	Dataset string `json:"dataset" yaml:"dataset"`

	// DataDir is the output root; files are written to DataDir/Dataset/.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// BatchSize is the SKIP/LIMIT page size for the statement query.
	BatchSize int `json:"batch_size" yaml:"batch_size"`
}
