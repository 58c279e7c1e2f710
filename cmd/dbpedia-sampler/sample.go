// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dbpedia-sampler/internal/extract"
	"github.com/pdiddy/dbpedia-sampler/internal/graphdb"
	"github.com/pdiddy/dbpedia-sampler/internal/sample"
	"github.com/pdiddy/dbpedia-sampler/pkg/types"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <dataset>",
	Short: "Extract one tagged subgraph and write its exchange files",
	Long: `Sample connects to the Neo4j instance, extracts every entity and statement
tagged with the given dataset label, and writes the result as compressed
tabular files to <data-dir>/<dataset>/:

  index.tsv.gz              index -> entity URI (full bijective mapping)
  index_labels.tsv.gz       index, label, description (labeled entities only)
  relevant_entities.tsv.gz  indices of statement endpoints
  statements.tsv.gz         subject index, predicate, object index
  statements.nt.gz          N-Triples rendition of the statements
  manifest.yaml             run manifest with counts

Known dataset tags: ` + strings.Join(extract.KnownDatasets(), ", ") + `.
Other tags select that node label; an unknown tag yields empty files.`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg := sampleConfig(cmd, args[0])

	if !extract.ValidTag(cfg.Dataset) {
		return fmt.Errorf("invalid dataset tag %q: must be an identifier (letters, digits, underscore)", cfg.Dataset)
	}

	// Validate the destination before any query work so a bad output
	// directory never leaves a half-finished run behind.
	outDir := filepath.Join(cfg.DataDir, cfg.Dataset)
	if err := sample.EnsureDir(outDir); err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	ctx := context.Background()

	conn, err := graphdb.Connect(ctx, cfg.Neo4j)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	session := conn.Session(ctx)
	defer session.Close(ctx)

	ext := extract.New(session, cfg.BatchSize, os.Stderr)

	entities, err := ext.Entities(ctx, cfg.Dataset)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	statements, err := ext.Statements(ctx, cfg.Dataset)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	if _, err := sample.Run(cfg.Dataset, entities, statements, outDir, os.Stderr); err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	return nil
}

// sampleConfig assembles the run configuration: flag values, with the
// config file supplying defaults for flags the user did not set.
func sampleConfig(cmd *cobra.Command, dataset string) types.SampleConfig {
	return types.SampleConfig{
		Dataset:   dataset,
		DataDir:   stringSetting(cmd, "data-dir", "data_dir"),
		BatchSize: intSetting(cmd, "batch-size", "batch_size"),
		Neo4j: types.Neo4jConfig{
			Host:     stringSetting(cmd, "host", "neo4j.host"),
			Port:     intSetting(cmd, "port", "neo4j.port"),
			Username: stringSetting(cmd, "username", "neo4j.username"),
			Password: stringSetting(cmd, "password", "neo4j.password"),
			Database: stringSetting(cmd, "database", "neo4j.database"),
		},
	}
}

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func init() {
	sampleCmd.Flags().String("data-dir", "./data", "output root directory")
	sampleCmd.Flags().String("host", "localhost", "hostname of the Neo4j instance")
	sampleCmd.Flags().Int("port", 7687, "bolt port of the Neo4j instance")
	sampleCmd.Flags().String("username", "neo4j", "username for the Neo4j instance")
	sampleCmd.Flags().String("password", "neo4j", "password for the Neo4j instance")
	sampleCmd.Flags().String("database", "neo4j", "Neo4j database name")
	sampleCmd.Flags().Int("batch-size", extract.DefaultBatchSize, "page size for the statement query")

	rootCmd.AddCommand(sampleCmd)
}
