package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/parts-pile/vehicle-filter/results"
	"github.com/parts-pile/vehicle-filter/vehicle"
)

// ResultsPage is the shell served for /result/:makeId/:year. It shows the
// Loader until htmx has swapped in the fetched body.
func ResultsPage(bodyURL string) g.Node {
	return Page(
		"Vehicle Models",
		Div(
			ID("results"),
			hx.Get(bodyURL),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
			Loader(),
		),
	)
}

// ResultsBody renders a results page. While it is loading only the Loader
// shows.
func ResultsBody(p *results.Page) g.Node {
	if p.Loading {
		return Div(ID("results"), Loader())
	}

	nodes := []g.Node{ID("results"), Class("p-4")}
	if p.Error != "" {
		nodes = append(nodes, errorMessage(p.Error))
	}
	if p.Params != nil {
		nodes = append(nodes,
			H1(
				Class("text-2xl font-bold mb-4"),
				g.Text(resultsHeading(p.Params)),
			),
			modelList(p.Models),
		)
	}
	nodes = append(nodes, A(Href("/"), Class("inline-block mt-6 text-blue-500 hover:underline"), g.Text("Back")))
	return Div(nodes...)
}

func resultsHeading(params *results.Params) string {
	return fmt.Sprintf("Vehicle Models for Make ID: %s in %s", params.MakeID, params.Year)
}

func modelList(models []vehicle.Model) g.Node {
	if len(models) == 0 {
		return NoModelsMessage()
	}
	return Ul(
		Class("list-disc pl-5"),
		g.Map(vehicle.ModelNames(models), func(name string) g.Node {
			return Li(Class("mb-2"), g.Text(name))
		}),
	)
}
