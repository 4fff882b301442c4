package devserver

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lunziqwq/cdxml-tools/parser"
)

// renderPage builds an *html.Node tree summarizing out's reactions,
// compounds and conditions and writes it to w, the same html.Render path
// a component's rendered *html.Node output takes.
func renderPage(w io.Writer, out *parser.Output) error {
	doc := el("html", nil, el("body", nil, summaryNodes(out)...)...)
	return html.Render(w, doc)
}

func summaryNodes(out *parser.Output) []*html.Node {
	if out == nil {
		return []*html.Node{el("p", nil, text("no parse result yet"))}
	}

	nodes := []*html.Node{
		el("h1", nil, text("reaction scheme")),
		el("p", nil, text(fmt.Sprintf("%d reaction(s), %d compound(s), %d condition(s)",
			len(out.Reaction), len(out.Compound), len(out.Condition)))),
	}

	compoundByTag := make(map[string]parser.CompoundEntry, len(out.Compound))
	for _, c := range out.Compound {
		compoundByTag[c.Tag] = c
	}
	conditionByTag := make(map[string]parser.ConditionEntry, len(out.Condition))
	for _, c := range out.Condition {
		conditionByTag[c.Tag] = c
	}

	var items []*html.Node
	for _, r := range out.Reaction {
		items = append(items, el("li", nil,
			el("strong", nil, text(r.Tag)),
			text(": "+roleSummary("reactant", r.Reactant, compoundByTag)+
				" -> "+roleSummary("product", r.Product, compoundByTag)),
			conditionList(r.Condition, conditionByTag),
		))
	}
	nodes = append(nodes, el("ul", nil, items...))

	return nodes
}

func roleSummary(label string, tags []string, compounds map[string]parser.CompoundEntry) string {
	s := label + "="
	for i, tag := range tags {
		if i > 0 {
			s += ","
		}
		s += compoundLabel(tag, compounds)
	}
	return s
}

func compoundLabel(tag string, compounds map[string]parser.CompoundEntry) string {
	c, ok := compounds[tag]
	if !ok {
		return tag
	}
	if c.Text != nil && *c.Text != "" {
		return *c.Text
	}
	return tag
}

func conditionList(tags []string, conditions map[string]parser.ConditionEntry) *html.Node {
	if len(tags) == 0 {
		return text("")
	}
	var items []*html.Node
	for _, tag := range tags {
		c, ok := conditions[tag]
		if !ok {
			continue
		}
		items = append(items, el("li", nil, text(conditionSummary(c))))
	}
	return el("ul", nil, items...)
}

func conditionSummary(c parser.ConditionEntry) string {
	s := c.Tag
	for _, kv := range []struct {
		name  string
		value *string
	}{
		{"temperature", c.Temperature},
		{"reaction_time", c.ReactionTime},
		{"stir_speed", c.StirSpeed},
		{"pressure", c.Pressure},
		{"gas", c.Gas},
	} {
		if kv.value != nil {
			s += fmt.Sprintf(" %s=%s", kv.name, *kv.value)
		}
	}
	return s
}

func el(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
