// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

// Index assigns each entity URI a dense zero-based integer. Assignment is
// first-come: an already-indexed URI keeps its integer. The mapping is a
// bijection by construction.
type Index struct {
	uris  []string
	byURI map[string]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byURI: make(map[string]int)}
}

// Add indexes the URI if it is new and returns its integer either way.
func (ix *Index) Add(uri string) int {
	if i, ok := ix.byURI[uri]; ok {
		return i
	}
	i := len(ix.uris)
	ix.byURI[uri] = i
	ix.uris = append(ix.uris, uri)
	return i
}

// Lookup returns the integer for a URI, if it has been indexed.
func (ix *Index) Lookup(uri string) (int, bool) {
	i, ok := ix.byURI[uri]
	return i, ok
}

// Len returns the number of indexed URIs.
func (ix *Index) Len() int {
	return len(ix.uris)
}

// URIs returns the indexed URIs in assignment order, so URIs()[i] is the
// URI with integer i. The returned slice is shared; callers must not
// mutate it.
func (ix *Index) URIs() []string {
	return ix.uris
}
