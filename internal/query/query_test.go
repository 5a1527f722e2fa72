package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/recipebox/internal/favorites"
	"github.com/five82/recipebox/internal/recipe"
)

func names(rs []recipe.Recipe) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}

func sample() []recipe.Recipe {
	return recipe.SampleCatalog().All()
}

func TestDerive_ZeroStateIsCatalogOrder(t *testing.T) {
	got := Derive(sample(), State{})
	assert.Equal(t, []string{"Pasta Alfredo", "Chicken Biryani", "Omelette"}, names(got))
}

func TestDerive_Filters(t *testing.T) {
	cases := []struct {
		filter Filter
		favs   favorites.Set
		want   []string
	}{
		{FilterAll, favorites.Set{}, []string{"Pasta Alfredo", "Chicken Biryani", "Omelette"}},
		{FilterQuick, favorites.Set{}, []string{"Pasta Alfredo", "Omelette"}},
		{FilterFavorites, favorites.NewSet(2), []string{"Chicken Biryani"}},
		{FilterFavorites, favorites.Set{}, []string{}},
		{FilterEasy, favorites.Set{}, []string{"Pasta Alfredo", "Omelette"}},
		{FilterMedium, favorites.Set{}, []string{}},
		{FilterHard, favorites.Set{}, []string{"Chicken Biryani"}},
		{Filter("spicy"), favorites.Set{}, []string{"Pasta Alfredo", "Chicken Biryani", "Omelette"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.filter), func(t *testing.T) {
			got := Derive(sample(), State{Filter: tc.filter, Favorites: tc.favs})
			assert.Equal(t, tc.want, names(got))
		})
	}
}

func TestDerive_SearchMatchesNameOrIngredient(t *testing.T) {
	assert.Equal(t, []string{"Omelette"}, names(Derive(sample(), State{Search: "egg"})))
	assert.Equal(t, []string{"Chicken Biryani"}, names(Derive(sample(), State{Search: "biry"})))
	assert.Equal(t, []string{"Pasta Alfredo", "Chicken Biryani"}, names(Derive(sample(), State{Search: "c"})))
	assert.Empty(t, Derive(sample(), State{Search: "tofu"}))
}

func TestDerive_Sorts(t *testing.T) {
	byName := Derive(sample(), State{Sort: SortName})
	assert.Equal(t, []string{"Chicken Biryani", "Omelette", "Pasta Alfredo"}, names(byName))

	byTime := Derive(sample(), State{Sort: SortTime})
	assert.Equal(t, []string{"Omelette", "Pasta Alfredo", "Chicken Biryani"}, names(byTime))

	unknown := Derive(sample(), State{Sort: Sort("rating")})
	assert.Equal(t, []string{"Pasta Alfredo", "Chicken Biryani", "Omelette"}, names(unknown))
}

func TestDerive_SortIsStable(t *testing.T) {
	rs := []recipe.Recipe{
		{ID: 1, Name: "b", Time: 10},
		{ID: 2, Name: "a", Time: 10},
		{ID: 3, Name: "c", Time: 5},
		{ID: 4, Name: "a", Time: 10},
	}
	byTime := Derive(rs, State{Sort: SortTime})
	assert.Equal(t, []int{3, 1, 2, 4}, ids(byTime))

	byName := Derive(rs, State{Sort: SortName})
	assert.Equal(t, []int{2, 4, 1, 3}, ids(byName))
}

func TestDerive_SortNameIsCaseInsensitiveCollation(t *testing.T) {
	rs := []recipe.Recipe{
		{ID: 1, Name: "banana bread"},
		{ID: 2, Name: "Apple pie"},
		{ID: 3, Name: "éclair"},
		{ID: 4, Name: "Zucchini"},
	}
	got := Derive(rs, State{Sort: SortName})
	assert.Equal(t, []string{"Apple pie", "banana bread", "éclair", "Zucchini"}, names(got))
}

func TestDerive_StageOrderFilterSearchSort(t *testing.T) {
	st := State{Filter: FilterEasy, Search: "e", Sort: SortTime}
	got := Derive(sample(), st)
	// Easy: Pasta Alfredo, Omelette; both match "e"; sorted by time.
	assert.Equal(t, []string{"Omelette", "Pasta Alfredo"}, names(got))

	st = State{Filter: FilterQuick, Search: "chicken", Sort: SortName}
	assert.Empty(t, Derive(sample(), st))
}

func TestDerive_IsPureAndDoesNotMutateInput(t *testing.T) {
	input := sample()
	before := names(input)
	st := State{Filter: FilterAll, Sort: SortName, Search: "a", Favorites: favorites.NewSet(1)}

	first := Derive(input, st)
	second := Derive(input, st)
	assert.Equal(t, first, second)
	assert.Equal(t, before, names(input))

	require.NotEmpty(t, first)
	first[0].Name = "changed"
	assert.Equal(t, before, names(input))
}

func TestDerive_EmptyInput(t *testing.T) {
	got := Derive(nil, State{Sort: SortName})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseAndCycle(t *testing.T) {
	assert.Equal(t, FilterAll, ParseFilter("  "))
	assert.Equal(t, FilterQuick, ParseFilter(" Quick "))
	assert.Equal(t, Filter("weird"), ParseFilter("weird"))
	assert.Equal(t, SortNone, ParseSort(""))
	assert.Equal(t, SortTime, ParseSort("TIME"))

	assert.Equal(t, FilterFavorites, NextFilter(FilterAll))
	assert.Equal(t, FilterAll, NextFilter(FilterQuick))
	assert.Equal(t, FilterAll, NextFilter(Filter("weird")))
	assert.Equal(t, SortName, NextSort(SortNone))
	assert.Equal(t, SortNone, NextSort(SortTime))

	assert.Len(t, Filters(), 6)
	assert.Len(t, Sorts(), 3)
	assert.Equal(t, "egg", FoldQuery("EgG"))
	assert.Equal(t, "All", Filter("").Label())
	assert.Equal(t, "Time", SortTime.Label())
}

func ids(rs []recipe.Recipe) []int {
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}
