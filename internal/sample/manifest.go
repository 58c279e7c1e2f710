// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Manifest records what one sampling run produced, written as
// manifest.yaml next to the data files.
type Manifest struct {
	Dataset          string    `yaml:"dataset"`
	GeneratedAt      time.Time `yaml:"generated_at"`
	Entities         int       `yaml:"entities"`
	LabeledEntities  int       `yaml:"labeled_entities"`
	RelevantEntities int       `yaml:"relevant_entities"`
	Statements       int       `yaml:"statements"`
}

func writeManifest(path string, s Summary) error {
	m := Manifest{
		Dataset:          s.Dataset,
		GeneratedAt:      time.Now().UTC(),
		Entities:         s.Entities,
		LabeledEntities:  s.Labeled,
		RelevantEntities: s.Relevant,
		Statements:       s.Statements,
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("%w: encoding manifest: %v", ErrIO, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, path, err)
	}
	return nil
}
