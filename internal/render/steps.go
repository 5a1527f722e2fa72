// Package render turns derived recipe views into display structures: nested
// step lists and recipe cards with a count summary.
package render

import (
	"strings"

	"github.com/five82/recipebox/internal/recipe"
)

// List is a rendered (possibly nested) list.
type List struct {
	Items []Item
}

// Item is one list entry. Group steps carry their substeps in Children, in
// the same item as the title.
type Item struct {
	Text     string
	Children *List
}

// RenderSteps converts a step tree into a nested list. Step trees are
// authored data, so plain recursion is fine.
func RenderSteps(steps []recipe.Step) List {
	items := make([]Item, 0, len(steps))
	for _, s := range steps {
		switch s.Kind() {
		case recipe.StepGroup:
			children := RenderSteps(s.Substeps())
			items = append(items, Item{Text: s.Text(), Children: &children})
		default:
			items = append(items, Item{Text: s.Text()})
		}
	}
	return List{Items: items}
}

// Depth returns the number of nested list levels, counting l itself.
func (l List) Depth() int {
	deepest := 0
	for _, it := range l.Items {
		if it.Children == nil {
			continue
		}
		if d := it.Children.Depth(); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// Texts returns every item text in depth-first order.
func (l List) Texts() []string {
	var out []string
	for _, it := range l.Items {
		out = append(out, it.Text)
		if it.Children != nil {
			out = append(out, it.Children.Texts()...)
		}
	}
	return out
}

// Lines renders the list as bulleted lines, indenting each nesting level
// by indent.
func (l List) Lines(indent string) []string {
	var out []string
	l.appendLines(&out, indent, 0)
	return out
}

func (l List) appendLines(out *[]string, indent string, level int) {
	prefix := strings.Repeat(indent, level)
	for _, it := range l.Items {
		bullet := "• "
		if it.Children != nil {
			bullet = "▸ "
		}
		*out = append(*out, prefix+bullet+it.Text)
		if it.Children != nil {
			it.Children.appendLines(out, indent, level+1)
		}
	}
}

// Markup renders the list as nested <ul>/<li> markup.
func (l List) Markup() string {
	var b strings.Builder
	l.writeMarkup(&b)
	return b.String()
}

func (l List) writeMarkup(b *strings.Builder) {
	b.WriteString("<ul>")
	for _, it := range l.Items {
		b.WriteString("<li>")
		b.WriteString(escape(it.Text))
		if it.Children != nil {
			it.Children.writeMarkup(b)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return markupEscaper.Replace(s)
}
