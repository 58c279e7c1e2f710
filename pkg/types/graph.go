// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entity is a graph node identified by a globally unique URI. Label and
// Description are human-readable annotations; they are empty when the node
// record does not carry them.
type Entity struct {
	URI         string `json:"uri" yaml:"uri"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Described reports whether the node record carried a label or a
	// description. Entities that appear only as statement endpoints are
	// indexed but get no row in the label file.
	Described bool `json:"described" yaml:"described"`
}

// Statement is a directed, predicate-labeled edge between two entities.
// Subject and Object are entity URIs; Predicate stays in its original
// string form and is never re-indexed.
type Statement struct {
	Subject   string `json:"subject" yaml:"subject"`
	Predicate string `json:"predicate" yaml:"predicate"`
	Object    string `json:"object" yaml:"object"`
}
