package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Loader is the full-viewport spinner shown while a page waits on a fetch.
func Loader() g.Node {
	return Div(
		Class("flex items-center justify-center min-h-screen"),
		Role("status"),
		Div(
			Class("loader w-12 h-12 border-4 border-blue-500 border-t-transparent rounded-full animate-spin"),
		),
		Span(Class("sr-only"), g.Text("Loading...")),
	)
}

// indicator is the inline htmx spinner shown while a selection request runs.
func indicator(id string) g.Node {
	return Div(
		ID(id),
		Class("htmx-indicator flex items-center gap-2 text-blue-600"),
		Div(
			Class("w-4 h-4 border-2 border-blue-600 border-t-transparent rounded-full animate-spin"),
		),
		g.Text("Loading..."),
	)
}
