package html

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// Parser summarizes HTML documents with tree-sitter
type Parser struct {
	parser  *sitter.Parser
	idQuery *sitter.Query
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// elementKinds are the node kinds counted as elements
var elementKinds = map[string]bool{
	"element":        true,
	"style_element":  true,
	"script_element": true,
}

// parserPool is a pool of reusable HTML parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
		}

		idQuery, qerr := sitter.NewQuery(htmlLang, `
			(attribute
				(attribute_name) @attr_name
				(#eq? @attr_name "id"))
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile id query: %v", qerr))
		}

		return &Parser{
			parser:  parser,
			idQuery: idQuery,
		}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Summarize counts the elements and id attributes of source
func (p *Parser) Summarize(source string) (Summary, error) {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return Summary{}, fmt.Errorf("failed to parse HTML")
	}
	defer tree.Close()

	root := tree.RootNode()
	var summary Summary
	countElements(root, &summary)

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.idQuery, root, sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		summary.IDs++
	}

	return summary, nil
}

func countElements(node *sitter.Node, summary *Summary) {
	if node == nil {
		return
	}
	if elementKinds[node.Kind()] {
		summary.Elements++
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		countElements(node.Child(i), summary)
	}
}
