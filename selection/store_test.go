package selection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s, err := NewStore(newFakeSource(), ttl, 2015, func() int { return 2025 })
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestStoreNewGet(t *testing.T) {
	s := newTestStore(t, time.Minute)

	p, err := s.New()
	require.NoError(t, err)
	_, err = uuid.Parse(p.ID)
	require.NoError(t, err)
	assert.Len(t, p.Years, 11)

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func TestStoreGet_StatePersistsAcrossRequests(t *testing.T) {
	s := newTestStore(t, time.Minute)
	p, err := s.New()
	require.NoError(t, err)
	p.Mount(context.Background())

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	got.SelectMake(context.Background(), "Toyota")

	again, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", again.Snapshot().MakeName)
}

func TestStoreGet_NotFound(t *testing.T) {
	s := newTestStore(t, time.Minute)

	tests := []struct {
		name string
		id   string
	}{
		{name: "unknown uuid", id: uuid.NewString()},
		{name: "not a uuid", id: "../../etc"},
		{name: "empty", id: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Get(tt.id)
			assert.ErrorIs(t, err, ErrPageNotFound)
		})
	}
}

func TestStoreGet_Expired(t *testing.T) {
	s := newTestStore(t, 50*time.Millisecond)
	p, err := s.New()
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := s.Get(p.ID)
		return err == ErrPageNotFound
	}, 3*time.Second, 20*time.Millisecond)
}

func TestStoreStats(t *testing.T) {
	s := newTestStore(t, time.Minute)
	_, err := s.New()
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, "Selection Page Store", stats["cache_type"])
	assert.Equal(t, uint64(1), stats["sets"])
}
