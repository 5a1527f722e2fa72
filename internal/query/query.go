// Package query derives the visible recipe list from the catalog and the
// current browsing state: filter, then search, then sort.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/recipebox/internal/favorites"
	"github.com/five82/recipebox/internal/recipe"
)

// Filter selects a subset of recipes. Unknown values select everything.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterFavorites Filter = "favorites"
	FilterEasy      Filter = "easy"
	FilterMedium    Filter = "medium"
	FilterHard      Filter = "hard"
	FilterQuick     Filter = "quick"
)

// Sort orders the derived list. Unknown values keep catalog order.
type Sort string

const (
	SortNone Sort = "none"
	SortName Sort = "name"
	SortTime Sort = "time"
)

// QuickLimit is the exclusive upper bound, in minutes, for FilterQuick.
const QuickLimit = 30

// State is the browsing state the pipeline reads. The zero value shows
// every recipe in catalog order.
type State struct {
	Filter    Filter
	Sort      Sort
	Search    string // already case-folded
	Favorites favorites.Set
}

// Derive applies filter, search and sort to recipes. It never modifies its
// input and always returns a fresh slice.
func Derive(recipes []recipe.Recipe, st State) []recipe.Recipe {
	out := applyFilter(recipes, st)
	out = applySearch(out, st.Search)
	return applySort(out, st.Sort)
}

func applyFilter(recipes []recipe.Recipe, st State) []recipe.Recipe {
	var keep func(recipe.Recipe) bool
	switch st.Filter {
	case FilterFavorites:
		keep = func(r recipe.Recipe) bool { return st.Favorites.Has(r.ID) }
	case FilterEasy:
		keep = func(r recipe.Recipe) bool { return r.Difficulty == recipe.Easy }
	case FilterMedium:
		keep = func(r recipe.Recipe) bool { return r.Difficulty == recipe.Medium }
	case FilterHard:
		keep = func(r recipe.Recipe) bool { return r.Difficulty == recipe.Hard }
	case FilterQuick:
		keep = func(r recipe.Recipe) bool { return r.Time < QuickLimit }
	default:
		keep = func(recipe.Recipe) bool { return true }
	}

	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func applySearch(recipes []recipe.Recipe, q string) []recipe.Recipe {
	if q == "" {
		return recipes
	}
	out := recipes[:0:0]
	for _, r := range recipes {
		if Matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether the case-folded query occurs in the recipe's name
// or in any of its ingredients.
func Matches(r recipe.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

func applySort(recipes []recipe.Recipe, by Sort) []recipe.Recipe {
	out := make([]recipe.Recipe, len(recipes))
	copy(out, recipes)

	switch by {
	case SortName:
		// Collators carry internal buffers; one per call keeps Derive safe
		// for concurrent use.
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortTime:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Time < out[j].Time
		})
	}
	return out
}
