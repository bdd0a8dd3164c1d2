package selection

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/parts-pile/vehicle-filter/cache"
)

// ErrPageNotFound means the page expired, was evicted, or never existed.
var ErrPageNotFound = errors.New("selection page not found")

// Store keeps live selection pages in memory until their TTL runs out.
type Store struct {
	pages       *cache.Cache[*Page]
	src         Source
	startYear   int
	currentYear func() int
}

// NewStore creates a Store whose pages read from src and offer years from
// startYear through the year returned by currentYear.
func NewStore(src Source, ttl time.Duration, startYear int, currentYear func() int) (*Store, error) {
	pages, err := cache.New[*Page](func(p *Page) int64 {
		return 1
	}, "Selection Page Store", ttl)
	if err != nil {
		return nil, err
	}
	log.Printf("[page-store] initialized with ttl %v", ttl)
	return &Store{
		pages:       pages,
		src:         src,
		startYear:   startYear,
		currentYear: currentYear,
	}, nil
}

// New creates and stores an unmounted page with a fresh ID.
func (s *Store) New() (*Page, error) {
	p := NewPage(uuid.NewString(), s.src, s.startYear, s.currentYear())
	if !s.pages.Set(p.ID, p, 0) {
		return nil, errors.New("page store rejected new page")
	}
	return p, nil
}

// Get returns the page with id and restarts its TTL.
func (s *Store) Get(id string) (*Page, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPageNotFound
	}
	p, found := s.pages.Get(id)
	if !found || p == nil {
		return nil, ErrPageNotFound
	}
	s.pages.Touch(id, p)
	return p, nil
}

// Stats reports store counters for the health endpoint.
func (s *Store) Stats() map[string]interface{} {
	return s.pages.Stats()
}

// Close stops the underlying cache.
func (s *Store) Close() {
	s.pages.Close()
}
