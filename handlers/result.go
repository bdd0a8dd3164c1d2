package handlers

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/parts-pile/vehicle-filter/results"
	"github.com/parts-pile/vehicle-filter/ui"
	"github.com/parts-pile/vehicle-filter/vehicle"
)

// HandleResultPage serves the results shell. The browser loads the body from
// HandleResultModels while the Loader shows.
func (h *Handlers) HandleResultPage(c *fiber.Ctx) error {
	bodyURL := fmt.Sprintf("/result/%s/%s/models",
		url.PathEscape(c.Params("makeId")), url.PathEscape(c.Params("year")))
	return render(c, ui.ResultsPage(bodyURL))
}

// HandleResultModels resolves the path parameters, fetches the models and
// renders the results body.
func (h *Handlers) HandleResultModels(c *fiber.Ctx) error {
	p := results.Run(c.UserContext(), pathParams(c), h.api)
	if p.Phase == results.Success {
		log.Printf("[results] make %s year %s: %d models %v",
			p.Params.MakeID, p.Params.Year, len(p.Models), vehicle.ModelNames(p.Models))
	}
	return render(c, ui.ResultsBody(p))
}

// pathParams resolves the make ID and year from the route.
func pathParams(c *fiber.Ctx) results.ParamsResolver {
	return func(context.Context) (results.Params, error) {
		return results.Params{
			MakeID: utils.CopyString(c.Params("makeId")),
			Year:   utils.CopyString(c.Params("year")),
		}, nil
	}
}
