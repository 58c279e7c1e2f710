// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownDatasetsAreValidTags(t *testing.T) {
	for _, tag := range KnownDatasets() {
		assert.True(t, ValidTag(tag), tag)
	}
}

func TestValidTag(t *testing.T) {
	valid := []string{"dbpedia1m", "dbpediaA240", "my_dataset", "X"}
	for _, tag := range valid {
		assert.True(t, ValidTag(tag), tag)
	}

	invalid := []string{
		"",
		"1starts-with-digit",
		"has space",
		"has-dash",
		"Thing`) DETACH DELETE (n",
		"a.b",
	}
	for _, tag := range invalid {
		assert.False(t, ValidTag(tag), tag)
	}
}
