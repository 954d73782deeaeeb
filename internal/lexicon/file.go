package lexicon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Document is the on-disk JSON form of a lexicon snapshot.
type Document struct {
	Words     []Word     `json:"words"`
	Sentences []Sentence `json:"sentences"`
}

// FileRepository reads a lexicon Document from a file. The file is re-read on
// every call so edits are visible without a restart.
type FileRepository struct {
	name string
	read func() ([]byte, error)
}

// NewFileRepository returns a repository over the JSON file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		name: path,
		read: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// NewFSRepository returns a repository over name inside fsys.
func NewFSRepository(fsys fs.FS, name string) *FileRepository {
	return &FileRepository{
		name: name,
		read: func() ([]byte, error) { return fs.ReadFile(fsys, name) },
	}
}

// FetchWords returns every word in the document.
func (r *FileRepository) FetchWords(ctx context.Context) ([]Word, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Words, nil
}

// FetchSentences returns every sentence in the document. File-backed corpora
// are shared, so userID is not used for filtering.
func (r *FileRepository) FetchSentences(ctx context.Context, _ string) ([]Sentence, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Sentences, nil
}

func (r *FileRepository) load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := r.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read lexicon %s: %w", r.name, ErrNotFound)
		}
		return nil, fmt.Errorf("read lexicon %s: %w", r.name, err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes and validates a lexicon document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	seen := make(map[string]bool, len(doc.Words))
	for _, w := range doc.Words {
		if w.ID == "" {
			return nil, errors.New("decode lexicon: word with empty id")
		}
		if seen[w.ID] {
			return nil, fmt.Errorf("decode lexicon: duplicate word id %q", w.ID)
		}
		seen[w.ID] = true
		if len(w.WordForms) == 0 {
			return nil, fmt.Errorf("decode lexicon: word %q has no forms", w.ID)
		}
	}
	return &doc, nil
}
