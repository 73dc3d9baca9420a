package matcher

import (
	"errors"
	"fmt"

	"kabaddibot/internal/dataset"
	"kabaddibot/internal/domain"
)

// ErrNoMatch is returned by Match when a minimum score is configured and no
// stored question reaches it.
var ErrNoMatch = errors.New("no stored question scored above the minimum")

// Option configures a Service.
type Option func(*Service)

// WithMinScore sets the similarity cutoff below which Match reports
// ErrNoMatch instead of a low-confidence answer. Zero (the default)
// disables the cutoff, so Match always answers.
func WithMinScore(score float64) Option {
	return func(s *Service) { s.minScore = score }
}

// Service maps free-text queries to stored answers. The vector space over
// the dataset questions is built once in New; every Match call afterward is
// stateless and safe to run concurrently.
type Service struct {
	ds       *dataset.Dataset
	embedder domain.Embedder
	index    domain.Index
	minScore float64
}

// New prepares the embedder over the dataset questions, loads the question
// vectors into the index, and returns a ready Service.
func New(ds *dataset.Dataset, embedder domain.Embedder, index domain.Index, opts ...Option) (*Service, error) {
	s := &Service{ds: ds, embedder: embedder, index: index}
	for _, opt := range opts {
		opt(s)
	}
	questions := ds.Questions()
	if err := embedder.Prepare(questions); err != nil {
		return nil, fmt.Errorf("prepare embedder: %w", err)
	}
	if err := index.Init(embedder.Dimension()); err != nil {
		return nil, fmt.Errorf("init index: %w", err)
	}
	vectors := make([][]float64, len(questions))
	for i, q := range questions {
		vec, err := embedder.Embed(q)
		if err != nil {
			return nil, fmt.Errorf("embed question %d: %w", i, err)
		}
		vectors[i] = vec
	}
	if err := index.Add(vectors); err != nil {
		return nil, fmt.Errorf("index questions: %w", err)
	}
	return s, nil
}

// Match returns the answer of the stored question most similar to the
// query. Queries with no known terms score 0 everywhere and fall back to
// the first entry; ties resolve to the lowest index.
func (s *Service) Match(query string) (domain.MatchResult, error) {
	vec, err := s.embedder.Embed(query)
	if err != nil {
		return domain.MatchResult{}, err
	}
	best, err := s.index.Best(vec)
	if err != nil {
		return domain.MatchResult{}, err
	}
	if s.minScore > 0 && best.Score < s.minScore {
		return domain.MatchResult{}, ErrNoMatch
	}
	entry, err := s.ds.Entry(best.Index)
	if err != nil {
		return domain.MatchResult{}, err
	}
	return domain.MatchResult{
		Index:    best.Index,
		Question: entry.Question,
		Answer:   entry.Answer,
		Score:    best.Score,
	}, nil
}

// Rank returns up to topK candidate answers ordered by similarity. It does
// not apply the minimum-score cutoff; callers display scores as-is.
func (s *Service) Rank(query string, topK int) ([]domain.MatchResult, error) {
	vec, err := s.embedder.Embed(query)
	if err != nil {
		return nil, err
	}
	scored, err := s.index.Rank(vec, topK)
	if err != nil {
		return nil, err
	}
	results := make([]domain.MatchResult, len(scored))
	for i, sc := range scored {
		entry, err := s.ds.Entry(sc.Index)
		if err != nil {
			return nil, err
		}
		results[i] = domain.MatchResult{
			Index:    sc.Index,
			Question: entry.Question,
			Answer:   entry.Answer,
			Score:    sc.Score,
		}
	}
	return results, nil
}
