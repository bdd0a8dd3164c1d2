package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("min-h-screen p-8"),
		g.Group(content),
	)
}

// ---- Message Components ----

func errorMessage(message string) g.Node {
	return P(
		Class("text-red-500 mb-4"),
		Role("alert"),
		g.Text(message),
	)
}

func noticeMessage(message string) g.Node {
	return P(
		Class("text-sm text-gray-500 mb-4"),
		g.Text(message),
	)
}

func NoModelsMessage() g.Node {
	return P(g.Text("No models found."))
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		contentContainer(
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(Class("text-center"), g.Text(message)),
			Div(
				Class("flex justify-center mt-8"),
				buttonStyled("Start over", withHref("/")),
			),
		),
	)
}
