// Package results runs the results page lifecycle: resolve the make ID and
// year from the navigation path, then fetch the models for that pair.
package results

import (
	"context"
	"log"
	"strings"

	"github.com/parts-pile/vehicle-filter/vehicle"
)

// UnknownError is shown when a failure carries no message of its own.
const UnknownError = "An unknown error occurred"

type Phase int

const (
	Idle Phase = iota
	ParamsPending
	ParamsReady
	Fetching
	Success
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case ParamsPending:
		return "params-pending"
	case ParamsReady:
		return "params-ready"
	case Fetching:
		return "fetching"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Params are the navigation path parameters.
type Params struct {
	MakeID string
	Year   string
}

// ParamsResolver produces the navigation parameters, possibly asynchronously.
type ParamsResolver func(ctx context.Context) (Params, error)

// Static resolves immediately to p.
func Static(p Params) ParamsResolver {
	return func(context.Context) (Params, error) {
		return p, nil
	}
}

// Await resolves to the first value sent on ch, or fails with the context.
func Await(ch <-chan Params) ParamsResolver {
	return func(ctx context.Context) (Params, error) {
		select {
		case p := <-ch:
			return p, nil
		case <-ctx.Done():
			return Params{}, ctx.Err()
		}
	}
}

// ModelFetcher loads the models for a make ID and year.
type ModelFetcher interface {
	GetModels(ctx context.Context, makeID, year string) ([]vehicle.Model, error)
}

// Page is the state of one results page. It is driven by a single goroutine.
type Page struct {
	Phase   Phase
	Params  *Params
	Models  []vehicle.Model
	Loading bool
	Error   string
}

// New returns a page that is loading and has no parameters yet.
func New() *Page {
	return &Page{
		Phase:   Idle,
		Models:  []vehicle.Model{},
		Loading: true,
	}
}

// Resolve waits for the navigation parameters. A resolver failure ends the
// page in Failed.
func (p *Page) Resolve(ctx context.Context, resolve ParamsResolver) {
	p.Phase = ParamsPending
	params, err := resolve(ctx)
	if err != nil {
		p.fail(err)
		return
	}
	p.Params = &params
	p.Phase = ParamsReady
}

// Load fetches the models for the resolved parameters. It does nothing unless
// the parameters are ready. Failures are kept as a display message.
func (p *Page) Load(ctx context.Context, fetcher ModelFetcher) {
	if p.Phase != ParamsReady || p.Params == nil {
		return
	}
	p.Phase = Fetching
	p.Loading = true

	models, err := fetcher.GetModels(ctx, p.Params.MakeID, p.Params.Year)
	if err != nil {
		p.fail(err)
		return
	}
	if models == nil {
		models = []vehicle.Model{}
	}
	p.Models = models
	p.Phase = Success
	p.Loading = false
}

func (p *Page) fail(err error) {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = UnknownError
	}
	log.Printf("[results] %s: %v", p.Phase, err)
	p.Error = msg
	p.Phase = Failed
	p.Loading = false
}

// Run resolves the parameters and loads the models.
func Run(ctx context.Context, resolve ParamsResolver, fetcher ModelFetcher) *Page {
	p := New()
	p.Resolve(ctx, resolve)
	p.Load(ctx, fetcher)
	return p
}
