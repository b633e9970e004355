package usecase

import (
	"time"

	"scanner-srv/internal/model"
)

// fetchedItem is a unit of content pulled from any source, normalized
// for filtering and enrichment. Exactly one of Post and Page is set.
type fetchedItem struct {
	// Source is the campaign source entry the item came from.
	Source string

	Post *model.FacebookPost
	Page *websitePage

	// Filled in by the filtering and enriching stages.
	Matched    []string
	Evaluation string
	Sentiment  *string
}

type websitePage struct {
	URL     string
	Title   string
	Excerpt string
}

// Text returns the content used for keyword matching and enrichment.
func (it fetchedItem) Text() string {
	if it.Post != nil {
		return it.Post.Content
	}
	if it.Page != nil {
		return it.Page.Title + "\n" + it.Page.Excerpt
	}
	return ""
}

// sourceError records a source that could not be fetched. A scan with
// some failed sources still proceeds on what it got.
type sourceError struct {
	Source string
	Err    error
}

// scanStats is carried through the stage pipeline.
type scanStats struct {
	StartedAt    time.Time
	Fetched      int
	Matched      int
	Persisted    int
	SourceErrors []sourceError
}
