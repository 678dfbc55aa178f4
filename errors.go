package nb2md

import "errors"

// Sentinel errors for library operations.
var (
	ErrNotebookParse = errors.New("notebook is not valid JSON")
	ErrEmptyNotebook = errors.New("notebook content cannot be empty")
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Front matter validation errors.
	ErrEmptyTitle  = errors.New("post title cannot be empty")
	ErrEmptyLayout = errors.New("post layout cannot be empty")
)
