package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href     string
	disabled bool
	id       string
}

// withHref makes the button a link to href
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

// withDisabled renders a disabled button; any href is dropped
func withDisabled(disabled bool) buttonOption {
	return func(c *buttonConfig) {
		c.disabled = disabled
	}
}

func withID(id string) buttonOption {
	return func(c *buttonConfig) {
		c.id = id
	}
}

const (
	buttonBaseClass     = "px-6 py-3 font-semibold rounded-lg transition-colors duration-200"
	buttonEnabledClass  = "bg-blue-500 text-white hover:bg-blue-600"
	buttonDisabledClass = "bg-gray-300 text-gray-500 cursor-not-allowed"
)

// buttonStyled renders a link when it has an href and is enabled, and a
// button otherwise.
func buttonStyled(text string, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	class := buttonBaseClass + " " + buttonEnabledClass
	if config.disabled {
		class = buttonBaseClass + " " + buttonDisabledClass
	}

	attrs := []g.Node{Class(class)}
	if config.id != "" {
		attrs = append(attrs, ID(config.id))
	}
	attrs = append(attrs, g.Text(text))

	if config.href != "" && !config.disabled {
		return A(append([]g.Node{Href(config.href)}, attrs...)...)
	}
	if config.disabled {
		attrs = append([]g.Node{Type("button"), Disabled()}, attrs...)
	}
	return Button(attrs...)
}
