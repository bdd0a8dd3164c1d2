package handlers

import (
	"context"

	"github.com/parts-pile/vehicle-filter/selection"
	"github.com/parts-pile/vehicle-filter/vehicle"
)

// VehicleAPI is the vehicle data source both pages query.
type VehicleAPI interface {
	GetMakes(ctx context.Context) ([]vehicle.Make, error)
	GetModels(ctx context.Context, makeID, year string) ([]vehicle.Model, error)
}

// Handlers serves the selection and results pages.
type Handlers struct {
	api   VehicleAPI
	pages *selection.Store
}

// New returns Handlers backed by api and pages.
func New(api VehicleAPI, pages *selection.Store) *Handlers {
	return &Handlers{api: api, pages: pages}
}
