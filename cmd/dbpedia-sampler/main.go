// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dbpedia-sampler CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dbpedia-sampler CLI.
var rootCmd = &cobra.Command{
	Use:   "dbpedia-sampler",
	Short: "Extract labeled DBpedia subgraphs into tabular exchange files",
	Long: `dbpedia-sampler extracts one named subgraph from a Neo4j instance holding
a DBpedia knowledge graph and serializes it into gzip-compressed tabular
files (entity index, labels, relevant entities, statements) for downstream
graph-data-science consumption.

Each run is independent: connect, extract, serialize, exit.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dbpedia-sampler.yaml or ~/.config/dbpedia-sampler/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dbpedia-sampler")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dbpedia-sampler"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
