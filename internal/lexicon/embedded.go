package lexicon

import "embed"

//go:embed data/sample.json
var sampleFS embed.FS

// NewEmbeddedRepository returns a repository over the built-in sample lexicon.
func NewEmbeddedRepository() *FileRepository {
	return NewFSRepository(sampleFS, "data/sample.json")
}
