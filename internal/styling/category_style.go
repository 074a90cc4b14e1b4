package styling

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/model"
)

// CategoryStyling maps category names to the styling their cards are drawn
// in.
type CategoryStyling struct {
	styles map[model.CategoryName]DrawStyling
	order  []model.CategoryName
}

// EmptyCategoryStyling returns an empty category styling.
func EmptyCategoryStyling() *CategoryStyling {
	return &CategoryStyling{styles: make(map[model.CategoryName]DrawStyling)}
}

// NewCategoryStylingFromConfig builds the styling for all configured
// categories.
func NewCategoryStylingFromConfig(categories []config.Category, darkBG bool) (*CategoryStyling, error) {
	cs := EmptyCategoryStyling()
	for _, c := range categories {
		style, err := StyleFromHexSingle(c.Color, darkBG)
		if err != nil {
			return nil, fmt.Errorf("category '%s' (%w)", c.Name, err)
		}
		cs.Add(c.Name, style)
	}
	return cs, nil
}

// Add adds the given styling for the given category to this CategoryStyling,
// replacing a previous styling for the same name.
func (cs *CategoryStyling) Add(name model.CategoryName, style DrawStyling) {
	if _, ok := cs.styles[name]; !ok {
		cs.order = append(cs.order, name)
	}
	cs.styles[name] = style
}

// Names returns the known category names in the order they were added.
func (cs *CategoryStyling) Names() []model.CategoryName {
	return cs.order
}

// GetStyle returns the styling for the requested category from this styling.
//
// If no styling is present for the category, it returns nil and an error.
func (cs *CategoryStyling) GetStyle(c model.CategoryName) (DrawStyling, error) {
	if style, ok := cs.styles[c]; ok {
		return style, nil
	}
	return nil, fmt.Errorf("style for category '%s' not found", c)
}
