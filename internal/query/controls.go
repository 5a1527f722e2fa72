package query

import "strings"

var (
	filterOrder = []Filter{FilterAll, FilterFavorites, FilterEasy, FilterMedium, FilterHard, FilterQuick}
	sortOrder   = []Sort{SortNone, SortName, SortTime}
)

// Filters returns the known filters in cycle order.
func Filters() []Filter {
	out := make([]Filter, len(filterOrder))
	copy(out, filterOrder)
	return out
}

// Sorts returns the known sort orders in cycle order.
func Sorts() []Sort {
	out := make([]Sort, len(sortOrder))
	copy(out, sortOrder)
	return out
}

// ParseFilter normalises a control value. Unknown values are returned as-is
// and behave as FilterAll in Derive; an empty value is FilterAll.
func ParseFilter(v string) Filter {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return FilterAll
	}
	return Filter(v)
}

// ParseSort normalises a control value. Unknown values are returned as-is
// and behave as SortNone in Derive; an empty value is SortNone.
func ParseSort(v string) Sort {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return SortNone
	}
	return Sort(v)
}

// NextFilter returns the filter after f in cycle order. Unknown values
// restart the cycle.
func NextFilter(f Filter) Filter {
	for i, v := range filterOrder {
		if v == f {
			return filterOrder[(i+1)%len(filterOrder)]
		}
	}
	return filterOrder[0]
}

// NextSort returns the sort order after s in cycle order.
func NextSort(s Sort) Sort {
	for i, v := range sortOrder {
		if v == s {
			return sortOrder[(i+1)%len(sortOrder)]
		}
	}
	return sortOrder[0]
}

// FoldQuery case-folds raw search input the way Derive expects it.
func FoldQuery(raw string) string {
	return strings.ToLower(raw)
}

// Label returns a display label for f.
func (f Filter) Label() string {
	switch f {
	case "", FilterAll:
		return "All"
	case FilterFavorites:
		return "Favorites"
	case FilterEasy:
		return "Easy"
	case FilterMedium:
		return "Medium"
	case FilterHard:
		return "Hard"
	case FilterQuick:
		return "Quick"
	default:
		return string(f)
	}
}

// Label returns a display label for s.
func (s Sort) Label() string {
	switch s {
	case "", SortNone:
		return "None"
	case SortName:
		return "Name"
	case SortTime:
		return "Time"
	default:
		return string(s)
	}
}
