package domain

// QAEntry is one stored question/answer pair. Entries are immutable and
// identified by their positional index within the dataset.
type QAEntry struct {
	Question string
	Answer   string
}

// MatchResult is the outcome of resolving a query against the dataset.
type MatchResult struct {
	Index    int
	Question string
	Answer   string
	Score    float64
}

// Scored pairs a dataset index with a cosine similarity score.
type Scored struct {
	Index int
	Score float64
}

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// Index stores question vectors and answers nearest-vector lookups.
// Vectors are added once after Init; lookups are read-only thereafter.
type Index interface {
	Init(dimension int) error
	Add(vectors [][]float64) error
	Best(vector []float64) (Scored, error)
	Rank(vector []float64, topK int) ([]Scored, error)
}

// Matcher maps an arbitrary query string to the best-matching stored answer.
type Matcher interface {
	Match(query string) (MatchResult, error)
	Rank(query string, topK int) ([]MatchResult, error)
}
