// Package vehicle holds the make, model and model-year shapes served by the
// vPIC API and the small lookups the pages run over them.
package vehicle

import "strconv"

type Make struct {
	ID   int    `json:"MakeId"`
	Name string `json:"MakeName"`
}

type Model struct {
	Name     string `json:"Model_Name"`
	MakeName string `json:"Make_Name"`
}

// FindMakeID returns the ID of the make named name, or nil when the list has
// no such make.
func FindMakeID(makes []Make, name string) *int {
	for _, m := range makes {
		if m.Name == name {
			id := m.ID
			return &id
		}
	}
	return nil
}

// Years returns the model years from start through current, inclusive, in
// ascending order.
func Years(start, current int) []string {
	if current < start {
		return []string{}
	}
	years := make([]string, 0, current-start+1)
	for y := start; y <= current; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

// ModelNames returns just the model names, preserving order.
func ModelNames(models []Model) []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	return names
}
