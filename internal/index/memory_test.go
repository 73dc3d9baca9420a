package index

import (
	"testing"
)

func prepared(t *testing.T, vectors [][]float64) *Memory {
	t.Helper()
	m := NewMemory()
	if err := m.Init(len(vectors[0])); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := m.Add(vectors); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	return m
}

func TestInit_InvalidDimension(t *testing.T) {
	m := NewMemory()
	if err := m.Init(0); err == nil {
		t.Fatal("expected error for zero dimension")
	}
}

func TestAdd_BeforeInit(t *testing.T) {
	m := NewMemory()
	if err := m.Add([][]float64{{1, 0}}); err == nil {
		t.Fatal("expected error when adding before init")
	}
}

func TestAdd_DimensionMismatch(t *testing.T) {
	m := NewMemory()
	if err := m.Init(3); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := m.Add([][]float64{{1, 0}}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestBest_PicksHighestScore(t *testing.T) {
	m := prepared(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	best, err := m.Best([]float64{0, 1, 0})
	if err != nil {
		t.Fatalf("best failed: %v", err)
	}
	if best.Index != 1 {
		t.Errorf("expected index 1, got %d", best.Index)
	}
	if best.Score != 1 {
		t.Errorf("expected score 1, got %v", best.Score)
	}
}

func TestBest_TieResolvesToLowestIndex(t *testing.T) {
	m := prepared(t, [][]float64{
		{0, 1},
		{1, 0},
		{1, 0},
	})
	best, err := m.Best([]float64{1, 0})
	if err != nil {
		t.Fatalf("best failed: %v", err)
	}
	if best.Index != 1 {
		t.Errorf("expected lowest tied index 1, got %d", best.Index)
	}
}

func TestBest_ZeroVectorFallsBackToFirst(t *testing.T) {
	m := prepared(t, [][]float64{
		{1, 0},
		{0, 1},
	})
	best, err := m.Best([]float64{0, 0})
	if err != nil {
		t.Fatalf("best failed: %v", err)
	}
	if best.Index != 0 || best.Score != 0 {
		t.Errorf("expected index 0 score 0, got index %d score %v", best.Index, best.Score)
	}
}

func TestBest_EmptyIndex(t *testing.T) {
	m := NewMemory()
	if err := m.Init(2); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := m.Best([]float64{1, 0}); err == nil {
		t.Fatal("expected error for empty index")
	}
}

func TestRank_OrderAndClamp(t *testing.T) {
	m := prepared(t, [][]float64{
		{1, 0},
		{0.6, 0.8},
		{0, 1},
	})
	out, err := m.Rank([]float64{1, 0}, 10)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	want := []int{0, 1, 2}
	for i, sc := range out {
		if sc.Index != want[i] {
			t.Errorf("position %d: expected index %d, got %d", i, want[i], sc.Index)
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Errorf("scores not descending at %d: %v > %v", i, out[i].Score, out[i-1].Score)
		}
	}
}

func TestRank_TiesKeepAscendingIndexOrder(t *testing.T) {
	m := prepared(t, [][]float64{
		{0, 1},
		{1, 0},
		{1, 0},
	})
	out, err := m.Rank([]float64{1, 0}, 2)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if out[0].Index != 1 || out[1].Index != 2 {
		t.Errorf("expected tied results in index order [1 2], got [%d %d]", out[0].Index, out[1].Index)
	}
}
