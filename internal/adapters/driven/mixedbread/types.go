package mixedbread

import "github.com/custodia-labs/profscout/internal/core/ports/driven"

// store is the Mixedbread store wire shape (subset).
type store struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Counts struct {
		Total int `json:"total"`
	} `json:"file_counts"`
}

func (s store) toInfo() *driven.StoreInfo {
	return &driven.StoreInfo{
		Name:       s.Name,
		ExternalID: s.ID,
		FileCount:  s.Counts.Total,
	}
}

// createStoreRequest is the body for store creation.
type createStoreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// searchRequest is the body for both search and question-answering calls.
type searchRequest struct {
	Query            string        `json:"query"`
	StoreIdentifiers []string      `json:"store_identifiers"`
	TopK             int           `json:"top_k"`
	SearchOptions    searchOptions `json:"search_options"`
}

type searchOptions struct {
	Rerank bool `json:"rerank"`
}

// searchResponse is the envelope for search and question-answering results.
type searchResponse struct {
	Answer string     `json:"answer"`
	Data   []chunkHit `json:"data"`
}

// chunkHit is one scored chunk. Chunk text may arrive under "text" or
// "content" depending on the chunk type.
type chunkHit struct {
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
	Text     string  `json:"text"`
	Content  string  `json:"content"`
}

func (r searchResponse) toResult() *driven.RetrievalResult {
	out := &driven.RetrievalResult{
		Answer: r.Answer,
		Hits:   make([]driven.RetrievalHit, len(r.Data)),
	}
	for i, h := range r.Data {
		content := h.Text
		if content == "" {
			content = h.Content
		}
		out.Hits[i] = driven.RetrievalHit{
			Filename: h.Filename,
			Score:    h.Score,
			Content:  content,
		}
	}
	return out
}
