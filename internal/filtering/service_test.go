package filtering

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
)

// memStore keeps the candidate pool and the filtered set in memory.
type memStore struct {
	mu       sync.Mutex
	pool     []Candidate
	filtered map[string]Candidate
	seq      int
}

func newMemStore(pool ...Candidate) *memStore {
	return &memStore{pool: pool, filtered: make(map[string]Candidate)}
}

func (s *memStore) ClearFiltered(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtered = make(map[string]Candidate)
	return nil
}

func (s *memStore) ListCandidates(_ context.Context, minExp, maxExp int32, position string) ([]Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Candidate, 0)
	for _, c := range s.pool {
		if matches(c, minExp, maxExp, position) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memStore) InsertFiltered(_ context.Context, c Candidate) (Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	c.ID = fmt.Sprintf("f-%d", s.seq)
	s.filtered[c.ID] = c
	return c, nil
}

func (s *memStore) DeleteFiltered(_ context.Context, id string) (Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.filtered[id]
	if !ok {
		return Candidate{}, faults.ErrNotFound
	}
	delete(s.filtered, id)
	return c, nil
}

func (s *memStore) filteredNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.filtered))
	for _, c := range s.filtered {
		out = append(out, c.Name)
	}
	sort.Strings(out)
	return out
}

// stubReader returns canned CV text keyed by path.
type stubReader struct {
	texts map[string]string
}

func (r stubReader) ReadCV(_ context.Context, pathCV string) (string, error) {
	text, ok := r.texts[pathCV]
	if !ok {
		return "", errors.New("cv not found")
	}
	return text, nil
}

// stubClassifier judges a CV relevant when its text contains "go".
type stubClassifier struct {
	err error
}

func (c stubClassifier) Classify(_ context.Context, cvText, _ string) (bool, string, error) {
	if c.err != nil {
		return false, "", c.err
	}
	return strings.Contains(cvText, "go"), "keyword match", nil
}

func newTestService(store Store, reader stubReader, cls stubClassifier) *Service {
	return NewService(store, reader, cls, nil, 2, logger.NewNop())
}

func collect(emitted *[]Candidate) func(Candidate) error {
	return func(c Candidate) error {
		*emitted = append(*emitted, c)
		return nil
	}
}

func TestFilterRebuildsSetFromScratch(t *testing.T) {
	store := newMemStore(
		Candidate{ID: "1", Name: "Ada", Position: "Backend Developer", Experience: 5, PathCV: "ada.txt"},
		Candidate{ID: "2", Name: "Brice", Position: "Backend Developer", Experience: 3, PathCV: "brice.txt"},
	)
	// Leftover from a previous pass; the rebuild must wipe it.
	store.filtered["stale"] = Candidate{ID: "stale", Name: "Ghost"}

	svc := newTestService(store,
		stubReader{texts: map[string]string{"ada.txt": "writes go services", "brice.txt": "writes go services"}},
		stubClassifier{})

	var emitted []Candidate
	count, err := svc.Filter(context.Background(), 0, 0, "Backend Developer", collect(&emitted))
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Len(t, emitted, 2)
	assert.Equal(t, []string{"Ada", "Brice"}, store.filteredNames())
	assert.NotContains(t, store.filteredNames(), "Ghost")
}

func TestFilterMatchingNobodyStillClears(t *testing.T) {
	store := newMemStore(
		Candidate{ID: "1", Name: "Ada", Position: "Backend Developer", Experience: 2, PathCV: "ada.txt"},
	)
	store.filtered["stale"] = Candidate{ID: "stale", Name: "Ghost"}

	svc := newTestService(store, stubReader{}, stubClassifier{})

	var emitted []Candidate
	count, err := svc.Filter(context.Background(), 10, 0, "", collect(&emitted))
	require.NoError(t, err)

	assert.Zero(t, count)
	assert.Empty(t, emitted)
	assert.Empty(t, store.filteredNames())
}

func TestFilterSkipsCandidatesWithoutCV(t *testing.T) {
	store := newMemStore(
		Candidate{ID: "1", Name: "Ada", Position: "Backend Developer", Experience: 5, PathCV: "ada.txt"},
		Candidate{ID: "2", Name: "NoCV", Position: "Backend Developer", Experience: 5, PathCV: ""},
	)

	svc := newTestService(store,
		stubReader{texts: map[string]string{"ada.txt": "writes go services"}},
		stubClassifier{})

	var emitted []Candidate
	count, err := svc.Filter(context.Background(), 0, 0, "", collect(&emitted))
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"Ada"}, store.filteredNames())
}

func TestFilterClassifierErrorIsNotFatal(t *testing.T) {
	store := newMemStore(
		Candidate{ID: "1", Name: "Ada", Position: "Backend Developer", Experience: 5, PathCV: "ada.txt"},
	)

	svc := newTestService(store,
		stubReader{texts: map[string]string{"ada.txt": "writes go services"}},
		stubClassifier{err: errors.New("model unavailable")})

	var emitted []Candidate
	count, err := svc.Filter(context.Background(), 0, 0, "", collect(&emitted))
	require.NoError(t, err)

	assert.Zero(t, count)
	assert.Empty(t, store.filteredNames())
}

func TestFilterExcludesIrrelevantCV(t *testing.T) {
	store := newMemStore(
		Candidate{ID: "1", Name: "Ada", Position: "Backend Developer", Experience: 5, PathCV: "ada.txt"},
		Candidate{ID: "2", Name: "Brice", Position: "Backend Developer", Experience: 5, PathCV: "brice.txt"},
	)

	svc := newTestService(store,
		stubReader{texts: map[string]string{"ada.txt": "writes go services", "brice.txt": "paints murals"}},
		stubClassifier{})

	var emitted []Candidate
	count, err := svc.Filter(context.Background(), 0, 0, "", collect(&emitted))
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"Ada"}, store.filteredNames())
}

func TestMatchesPredicate(t *testing.T) {
	base := Candidate{Position: "Backend Developer", Experience: 5}

	cases := []struct {
		name     string
		minExp   int32
		maxExp   int32
		position string
		want     bool
	}{
		{name: "in range exact position", minExp: 3, maxExp: 7, position: "Backend Developer", want: true},
		{name: "below minimum", minExp: 6, maxExp: 0, position: "", want: false},
		{name: "above maximum", minExp: 0, maxExp: 4, position: "", want: false},
		{name: "zero max is unbounded", minExp: 0, maxExp: 0, position: "", want: true},
		{name: "position case-insensitive", minExp: 0, maxExp: 0, position: "backend developer", want: true},
		{name: "position mismatch", minExp: 0, maxExp: 0, position: "Frontend Developer", want: false},
		{name: "blank position matches any", minExp: 0, maxExp: 0, position: "   ", want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matches(base, tc.minExp, tc.maxExp, tc.position))
		})
	}
}

func TestDeleteFilteredIsIdempotent(t *testing.T) {
	store := newMemStore()
	store.filtered["f-1"] = Candidate{ID: "f-1", Name: "Ada"}

	svc := newTestService(store, stubReader{}, stubClassifier{})

	deleted, found, err := svc.Delete(context.Background(), "f-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Ada", deleted.Name)

	_, found, err = svc.Delete(context.Background(), "f-1")
	require.NoError(t, err)
	assert.False(t, found)
}
