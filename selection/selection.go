// Package selection holds the state of one vehicle selection page: the make
// list, the chosen make and year, and the models matching that pair.
package selection

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/parts-pile/vehicle-filter/query"
	"github.com/parts-pile/vehicle-filter/vehicle"
)

// Source fetches reference data from the vehicle API.
type Source interface {
	GetMakes(ctx context.Context) ([]vehicle.Make, error)
	GetModels(ctx context.Context, makeID, year string) ([]vehicle.Model, error)
}

// Key identifies a model list.
type Key struct {
	MakeID int
	Year   string
}

// Page is the view state of one selection page. All methods are safe for
// concurrent use.
type Page struct {
	ID    string
	Years []string

	src    Source
	models *query.Query[Key, []vehicle.Model]

	mu       sync.Mutex
	makes    []vehicle.Make
	mountErr error
	makeName string
	makeID   *int
	year     string
	mounted  bool
}

// NewPage creates an unmounted page whose year options run from startYear
// through currentYear.
func NewPage(id string, src Source, startYear, currentYear int) *Page {
	p := &Page{
		ID:    id,
		Years: vehicle.Years(startYear, currentYear),
		src:   src,
	}
	p.models = query.New(func(ctx context.Context, k Key) ([]vehicle.Model, error) {
		return src.GetModels(ctx, strconv.Itoa(k.MakeID), k.Year)
	})
	return p
}

// Mount fetches the make list. It runs once per page; later calls are no-ops.
// A failure is logged and leaves the list empty.
func (p *Page) Mount(ctx context.Context) {
	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		return
	}
	p.mounted = true
	p.mu.Unlock()

	makes, err := p.src.GetMakes(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		log.Printf("[selection] error fetching vehicle makes: %v", err)
		p.mountErr = err
		p.makes = []vehicle.Make{}
		return
	}
	p.makes = makes
}

// Select applies both dropdown values at once and refreshes the models for
// the resulting pair. The form posts both fields on every change, so this
// keeps the page in step with what the browser shows even after a reload.
func (p *Page) Select(ctx context.Context, makeName, year string) {
	p.mu.Lock()
	p.makeName = makeName
	p.makeID = vehicle.FindMakeID(p.makes, makeName)
	p.year = year
	call := p.issueLocked(ctx)
	p.mu.Unlock()

	p.run(call)
}

// SelectMake stores the chosen make name and its ID, nil when the name is not
// in the make list, then refreshes the models.
func (p *Page) SelectMake(ctx context.Context, name string) {
	p.mu.Lock()
	p.makeName = name
	p.makeID = vehicle.FindMakeID(p.makes, name)
	call := p.issueLocked(ctx)
	p.mu.Unlock()

	p.run(call)
}

// SelectYear stores the chosen year and refreshes the models.
func (p *Page) SelectYear(ctx context.Context, year string) {
	p.mu.Lock()
	p.year = year
	call := p.issueLocked(ctx)
	p.mu.Unlock()

	p.run(call)
}

// issueLocked starts a model fetch when the pair is complete and changed,
// and clears the models when the pair is incomplete. It must be called with
// p.mu held so the pair and the query generation move together.
func (p *Page) issueLocked(ctx context.Context) *query.Call[Key, []vehicle.Model] {
	if p.makeID == nil || p.year == "" {
		p.models.Reset()
		return nil
	}
	key := Key{MakeID: *p.makeID, Year: p.year}
	if last, ok := p.models.Key(); ok && last == key {
		return nil
	}
	return p.models.Issue(ctx, key)
}

func (p *Page) run(call *query.Call[Key, []vehicle.Model]) {
	if call == nil {
		return
	}
	_, err := call.Do()
	switch {
	case err == nil:
	case errors.Is(err, query.ErrSuperseded):
		log.Printf("[selection] discarded models for make %d year %s: superseded", call.Key().MakeID, call.Key().Year)
	default:
		log.Printf("[selection] error fetching vehicle models: %v", err)
	}
}

// Snapshot is a consistent copy of the page state for rendering.
type Snapshot struct {
	ID       string
	Makes    []vehicle.Make
	Years    []string
	MakeName string
	MakeID   *int
	Year     string
	Models   []vehicle.Model
	Pending  bool
	MountErr error
}

// CanNavigate reports whether both a make and a year are selected.
func (s Snapshot) CanNavigate() bool {
	return s.MakeID != nil && s.Year != ""
}

// ResultPath is the results page for the current pair, or "" when incomplete.
func (s Snapshot) ResultPath() string {
	if !s.CanNavigate() {
		return ""
	}
	return ResultPath(*s.MakeID, s.Year)
}

// ResultPath is the results page for makeID and year.
func ResultPath(makeID int, year string) string {
	return fmt.Sprintf("/result/%d/%s", makeID, year)
}

// Snapshot copies the page state under the lock.
func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Snapshot{
		ID:       p.ID,
		Makes:    p.makes,
		Years:    p.Years,
		MakeName: p.makeName,
		Year:     p.year,
		MountErr: p.mountErr,
	}
	if p.makeID != nil {
		id := *p.makeID
		s.MakeID = &id
	}

	// A pending or failed fetch shows an empty list, never another pair's models.
	s.Pending = p.models.Pending()
	models, err := p.models.Value()
	if s.Pending || err != nil || models == nil {
		models = []vehicle.Model{}
	}
	s.Models = models
	return s
}
