// Package recipe defines the recipe catalog: immutable recipe records and
// their nested step trees.
package recipe

import "errors"

// ErrNotFound is returned when a recipe id is not in the catalog.
var ErrNotFound = errors.New("recipe not found")

// Difficulty is a recipe's difficulty level. Values are case-sensitive.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Recipe is a single catalog entry.
type Recipe struct {
	ID          int
	Name        string
	Difficulty  Difficulty
	Time        int // minutes
	Ingredients []string
	Steps       []Step
}

// StepKind tags a Step as a leaf instruction or a titled group.
type StepKind int

const (
	StepLeaf StepKind = iota
	StepGroup
)

// Step is either a leaf instruction or a titled group of substeps.
// Build values with Leaf and Group; the zero value is an empty leaf.
type Step struct {
	kind     StepKind
	text     string
	substeps []Step
}

// Leaf returns a single instruction step.
func Leaf(text string) Step {
	return Step{kind: StepLeaf, text: text}
}

// Group returns a titled step containing substeps. An empty group is allowed.
func Group(title string, substeps ...Step) Step {
	return Step{kind: StepGroup, text: title, substeps: substeps}
}

// Kind reports whether the step is a leaf or a group.
func (s Step) Kind() StepKind { return s.kind }

// Text returns the leaf instruction or the group title.
func (s Step) Text() string { return s.text }

// Substeps returns a copy of a group's children; nil for leaves.
func (s Step) Substeps() []Step {
	if s.kind != StepGroup || len(s.substeps) == 0 {
		return nil
	}
	out := make([]Step, len(s.substeps))
	copy(out, s.substeps)
	return out
}

// Depth returns the number of list levels a group's substeps occupy when
// rendered; 0 for a leaf.
func (s Step) Depth() int {
	if s.kind != StepGroup {
		return 0
	}
	return StepsDepth(s.substeps)
}

// StepsDepth returns the number of nested list levels needed to render
// steps. A flat (or empty) list is one level; each group level adds one.
func StepsDepth(steps []Step) int {
	deepest := 0
	for _, s := range steps {
		if d := s.Depth(); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// LeafTexts returns every leaf instruction in depth-first order.
func LeafTexts(steps []Step) []string {
	var out []string
	for _, s := range steps {
		if s.kind == StepGroup {
			out = append(out, LeafTexts(s.substeps)...)
			continue
		}
		out = append(out, s.text)
	}
	return out
}
