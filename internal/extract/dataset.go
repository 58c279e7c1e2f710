// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "unicode"

// Known dataset tags for the DBpedia deployments this tool targets. Each tag
// is the node label under which one sampled partition is stored.
const (
	DatasetDBpedia35M  = "dbpedia35m"
	DatasetDBpedia1M   = "dbpedia1m"
	DatasetDBpedia500K = "dbpedia500k"
	DatasetDBpedia250K = "dbpedia250k"
	DatasetDBpediaA240 = "dbpediaA240"
)

// KnownDatasets returns the dataset tags with prepared deployments. Other
// syntactically valid tags are accepted too and select that node label; an
// unknown tag yields an empty extraction, not an error.
func KnownDatasets() []string {
	return []string{
		DatasetDBpedia35M,
		DatasetDBpedia1M,
		DatasetDBpedia500K,
		DatasetDBpedia250K,
		DatasetDBpediaA240,
	}
}

// ValidTag reports whether tag is safe to interpolate into a Cypher query
// as a node label. Node labels cannot be query parameters, so the tag is
// restricted to identifier characters before interpolation.
func ValidTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
