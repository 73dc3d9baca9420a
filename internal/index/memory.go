package index

import (
	"errors"
	"sort"
	"sync"

	"kabaddibot/internal/domain"
)

// Memory is an in-memory brute-force cosine similarity index. Stored
// vectors are expected to be L2-normalized, so scoring is a dot product.
// All lookups are read-locked; once the vectors are added the index is
// effectively immutable and reentrant.
type Memory struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float64
}

// NewMemory creates an empty index; call Init before adding vectors.
func NewMemory() *Memory { return &Memory{} }

// Init sets the vector dimensionality and discards any stored vectors.
func (m *Memory) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dimension = dimension
	m.vectors = nil
	return nil
}

// Add appends vectors in order; their position is their index identity.
func (m *Memory) Add(vectors [][]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dimension == 0 {
		return errors.New("index not initialized")
	}
	for _, v := range vectors {
		if len(v) != m.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	m.vectors = append(m.vectors, vectors...)
	return nil
}

// Best returns the index with the maximum similarity to the query vector.
// Equal scores resolve to the lowest index: the scan goes in ascending
// index order and only a strictly greater score displaces the current best.
// A zero-magnitude query scores 0 everywhere and resolves to index 0.
func (m *Memory) Best(vector []float64) (domain.Scored, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.vectors) == 0 {
		return domain.Scored{}, errors.New("index is empty")
	}
	best := domain.Scored{Index: 0, Score: dot(m.vectors[0], vector)}
	for i := 1; i < len(m.vectors); i++ {
		if s := dot(m.vectors[i], vector); s > best.Score {
			best = domain.Scored{Index: i, Score: s}
		}
	}
	return best, nil
}

// Rank returns up to topK results ordered by score descending; equal
// scores keep ascending index order.
func (m *Memory) Rank(vector []float64, topK int) ([]domain.Scored, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.vectors) == 0 {
		return nil, errors.New("index is empty")
	}
	if topK <= 0 {
		topK = 5
	}
	scored := make([]domain.Scored, len(m.vectors))
	for i, v := range m.vectors {
		scored[i] = domain.Scored{Index: i, Score: dot(v, vector)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if topK > len(scored) {
		topK = len(scored)
	}
	return scored[:topK], nil
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
