package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/parts-pile/vehicle-filter/selection"
	"github.com/parts-pile/vehicle-filter/vehicle"
)

const selectionResultsID = "selection-results"

func SelectionPage(s selection.Snapshot) g.Node {
	makeNames := make([]string, len(s.Makes))
	for i, m := range s.Makes {
		makeNames[i] = m.Name
	}

	return Page(
		"Vehicle Filter Page",
		contentContainer(
			pageHeader("Vehicle Filter Page"),
			g.If(s.MountErr != nil, noticeMessage("Vehicle makes could not be loaded. Reload the page to try again.")),
			Form(
				ID("selection-form"),
				AutoComplete("off"),
				g.Attr("onsubmit", "return false"),
				formGroup("Select Vehicle Make", "make", "mb-4",
					selectInput("make", "-- Select Make --", makeNames, s.MakeName,
						selectionTrigger(s.ID, "make")...),
				),
				formGroup("Select Model Year", "year", "mb-8",
					selectInput("year", "-- Select Year --", s.Years, s.Year,
						selectionTrigger(s.ID, "year")...),
				),
			),
			indicator("selection-indicator"),
			SelectionResults(s),
		),
	)
}

// selectionTrigger posts the form on change and replaces the results region.
// hx-sync aborts an in-flight request when a newer change is made.
func selectionTrigger(pageID, field string) []g.Node {
	return []g.Node{
		hx.Post(fmt.Sprintf("/selection/%s/%s", pageID, field)),
		hx.Trigger("change"),
		hx.Target("#" + selectionResultsID),
		hx.Swap("outerHTML"),
		hx.Indicator("#selection-indicator"),
		g.Attr("hx-sync", "#selection-form:replace"),
	}
}

// SelectionResults is the region swapped after every selection change: the
// model cards and the navigation control.
func SelectionResults(s selection.Snapshot) g.Node {
	return Div(
		ID(selectionResultsID),
		modelCards(s.Models),
		NavControl(s),
	)
}

func modelCards(models []vehicle.Model) g.Node {
	if len(models) == 0 {
		return Div(Class("mb-8"), NoModelsMessage())
	}
	return Div(
		Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6 mb-8"),
		g.Map(models, modelCard),
	)
}

func modelCard(m vehicle.Model) g.Node {
	return Div(
		Class("p-4 bg-white shadow rounded-lg"),
		H2(Class("text-2xl font-bold mb-2"), g.Text(m.Name)),
		P(Class("text-gray-500"), g.Text("Make: "+m.MakeName)),
	)
}

// NavControl links to the results page, disabled until both a make and a
// year are selected.
func NavControl(s selection.Snapshot) g.Node {
	return Div(
		Class("flex justify-center"),
		buttonStyled("Next",
			withID("next"),
			withHref(s.ResultPath()),
			withDisabled(!s.CanNavigate()),
		),
	)
}
