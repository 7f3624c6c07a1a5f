package domain

// DocumentKind distinguishes the two kinds of corpus documents.
type DocumentKind string

const (
	// KindExample is a literal "question => SQL" pairing flattened to one string.
	KindExample DocumentKind = "example"
	// KindSchemaFact is a single sentence describing a table or column.
	KindSchemaFact DocumentKind = "schema_fact"
)

// Document is one unit of retrievable domain knowledge. Documents are
// immutable once indexed; identity is positional within the corpus.
type Document struct {
	Text string       `json:"text"`
	Kind DocumentKind `json:"kind"`
}

// ScoredDocument is returned by semantic search, including similarity score.
type ScoredDocument struct {
	Document
	Similarity float64 `json:"similarity"`
}
