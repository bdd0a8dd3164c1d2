package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

func formGroup(labelText string, fieldID string, class string, input g.Node) g.Node {
	return Div(
		Class(class),
		Label(For(fieldID), Class("block font-semibold mb-2"), g.Text(labelText)),
		input,
	)
}

// selectInput renders a dropdown with a blank placeholder option followed by
// options, marking selected when it matches.
func selectInput(id, placeholder string, options []string, selected string, attrs ...g.Node) g.Node {
	nodes := []g.Node{
		ID(id),
		Name(id),
		Class("w-full p-2 border rounded-lg bg-white shadow"),
		g.Group(attrs),
		Option(Value(""), g.Text(placeholder)),
	}
	for _, option := range options {
		nodes = append(nodes, Option(
			Value(option),
			g.If(option == selected, Selected()),
			g.Text(option),
		))
	}
	return Select(nodes...)
}
