// Package tips serves the bundled password-hardening recommendations.
// The content lives in an embedded markdown document and is parsed
// into sections at load time, so editing the advice never touches code.
package tips

import (
	_ "embed"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed tips.md
var tipsSource []byte

// Section is one recommendation topic with its bullet items.
type Section struct {
	Title string
	Items []string
}

// Load parses the embedded recommendations document.
func Load() ([]Section, error) {
	return parse(tipsSource)
}

func parse(source []byte) ([]Section, error) {
	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	var sections []Section
	var current *Section

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			// Level-1 heading is the document title; level-2
			// headings open sections.
			if node.Level != 2 {
				return ast.WalkContinue, nil
			}
			sections = append(sections, Section{Title: string(node.Text(source))})
			current = &sections[len(sections)-1]

		case *ast.ListItem:
			if current == nil {
				return ast.WalkContinue, nil
			}
			current.Items = append(current.Items, itemText(node, source))
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing recommendations: %w", err)
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("recommendations document has no sections")
	}
	return sections, nil
}

// itemText flattens a list item's inline text.
func itemText(item ast.Node, source []byte) string {
	var out []byte
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, child.Text(source)...)
	}
	return string(out)
}
