package render

import (
	"fmt"

	"github.com/five82/recipebox/internal/favorites"
	"github.com/five82/recipebox/internal/recipe"
)

// Card is the display form of one recipe. Ingredient and step regions start
// hidden.
type Card struct {
	ID                 int
	Name               string
	Difficulty         recipe.Difficulty
	Time               int
	Favorite           bool
	Ingredients        []string
	Steps              List
	IngredientsVisible bool
	StepsVisible       bool
}

// Summary returns the count line shown above the card list.
func Summary(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d recipes", shown, total)
}

// Render builds the summary and one card per recipe in view order. Cards are
// rebuilt from scratch on every call.
func Render(view []recipe.Recipe, favs favorites.Set, total int) (string, []Card) {
	cards := make([]Card, 0, len(view))
	for _, r := range view {
		ingredients := make([]string, len(r.Ingredients))
		copy(ingredients, r.Ingredients)
		cards = append(cards, Card{
			ID:          r.ID,
			Name:        r.Name,
			Difficulty:  r.Difficulty,
			Time:        r.Time,
			Favorite:    favs.Has(r.ID),
			Ingredients: ingredients,
			Steps:       RenderSteps(r.Steps),
		})
	}
	return Summary(len(view), total), cards
}

// Lines returns a plain-text rendering of the card. Hidden regions are
// omitted.
func (c Card) Lines(indent string) []string {
	heart := "♡"
	if c.Favorite {
		heart = "♥"
	}
	out := []string{
		fmt.Sprintf("%s #%d %s", heart, c.ID, c.Name),
		fmt.Sprintf("%sDifficulty: %s", indent, c.Difficulty),
		fmt.Sprintf("%sTime: %d mins", indent, c.Time),
	}
	if c.IngredientsVisible {
		out = append(out, indent+"Ingredients:")
		for _, ing := range c.Ingredients {
			out = append(out, indent+indent+"• "+ing)
		}
	}
	if c.StepsVisible {
		out = append(out, indent+"Steps:")
		for _, line := range c.Steps.Lines(indent) {
			out = append(out, indent+indent+line)
		}
	}
	return out
}
