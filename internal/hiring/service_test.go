package hiring

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/ai"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	mu    sync.Mutex
	seq   int
	items []Candidate
}

func (m *memStore) Insert(_ context.Context, c Candidate) (Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	c.ID = strconv.Itoa(m.seq)
	m.items = append(m.items, c)
	return c, nil
}

func (m *memStore) List(_ context.Context) ([]Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Candidate(nil), m.items...), nil
}

func (m *memStore) Update(_ context.Context, c Candidate) (Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == c.ID {
			if c.PathCV == "" {
				c.PathCV = m.items[i].PathCV
			}
			m.items[i] = c
			return c, nil
		}
	}
	return Candidate{}, faults.ErrNotFound
}

func (m *memStore) Delete(_ context.Context, id string) (Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			out := m.items[i]
			m.items = append(m.items[:i], m.items[i+1:]...)
			return out, nil
		}
	}
	return Candidate{}, faults.ErrNotFound
}

type stubReader struct{ text string }

func (r stubReader) ReadCV(_ context.Context, pathCV string) (string, error) {
	if r.text == "" {
		return "", fmt.Errorf("no CV at %s", pathCV)
	}
	return r.text, nil
}

type stubExtractor struct {
	out *ai.ExtractedCandidate
	err error
}

func (e stubExtractor) ExtractCandidate(context.Context, string) (*ai.ExtractedCandidate, error) {
	return e.out, e.err
}

func newTestService(store *memStore, reader ai.TextReader, extractor ai.Extractor) *Service {
	return NewService(store, reader, extractor, nil, logger.NewNop())
}

func valid() Candidate {
	return Candidate{
		Name:       "Anna",
		Email:      "anna@example.com",
		Position:   "Backend Developer",
		Experience: 3,
		PathCV:     "uploads/anna.txt",
	}
}

func TestAddAssignsIdentity(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store, stubReader{}, stubExtractor{})

	stored, err := svc.Add(context.Background(), valid())
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Anna", stored.Name)
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Candidate)
		field  string
	}{
		{"missing name", func(c *Candidate) { c.Name = "" }, "name"},
		{"missing email", func(c *Candidate) { c.Email = "" }, "email"},
		{"email without domain", func(c *Candidate) { c.Email = "anna@" }, "email"},
		{"email without tld", func(c *Candidate) { c.Email = "anna@host" }, "email"},
		{"email with spaces", func(c *Candidate) { c.Email = "an na@host.com" }, "email"},
		{"missing position", func(c *Candidate) { c.Position = "" }, "position"},
		{"negative experience", func(c *Candidate) { c.Experience = -1 }, "experience"},
		{"missing CV reference", func(c *Candidate) { c.PathCV = "" }, "pathCV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{}
			svc := newTestService(store, stubReader{}, stubExtractor{})

			c := valid()
			tt.mutate(&c)

			_, err := svc.Add(context.Background(), c)
			var ve *faults.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Empty(t, store.items, "validation failure must not insert")
		})
	}
}

func TestUpdatePreservesCVWhenEmpty(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store, stubReader{}, stubExtractor{})

	stored, err := svc.Add(context.Background(), valid())
	require.NoError(t, err)

	stored.Position = "Team Lead"
	stored.PathCV = ""
	updated, err := svc.Update(context.Background(), stored)
	require.NoError(t, err)

	assert.Equal(t, "Team Lead", updated.Position)
	assert.Equal(t, "uploads/anna.txt", updated.PathCV, "empty CV reference must keep the stored one")
}

func TestUpdateAbsentIDIsNotFound(t *testing.T) {
	svc := newTestService(&memStore{}, stubReader{}, stubExtractor{})

	c := valid()
	c.ID = "42"
	_, err := svc.Update(context.Background(), c)
	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store, stubReader{}, stubExtractor{})

	stored, err := svc.Add(context.Background(), valid())
	require.NoError(t, err)

	deleted, found, err := svc.Delete(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored.ID, deleted.ID)

	// Second delete of the same id: informational, not an error.
	_, found, err = svc.Delete(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAddFromCV(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store,
		stubReader{text: "resume text"},
		stubExtractor{out: &ai.ExtractedCandidate{
			Name:       "Bob",
			Email:      "bob@example.com",
			Position:   "QA Engineer",
			Experience: 2,
		}},
	)

	stored, err := svc.AddFromCV(context.Background(), "uploads/bob.txt")
	require.NoError(t, err)
	assert.Equal(t, "Bob", stored.Name)
	assert.Equal(t, "uploads/bob.txt", stored.PathCV)
}

func TestAddFromCVExtractionFailure(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store,
		stubReader{text: "resume text"},
		stubExtractor{err: fmt.Errorf("model unavailable")},
	)

	_, err := svc.AddFromCV(context.Background(), "uploads/bob.txt")
	assert.Error(t, err)
	assert.Empty(t, store.items)
}
