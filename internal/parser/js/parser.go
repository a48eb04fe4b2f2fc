package js

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Parser handles parsing JavaScript with tree-sitter
type Parser struct {
	parser        *sitter.Parser
	listenerQuery *sitter.Query
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// functionKinds are the node kinds counted as functions
var functionKinds = map[string]bool{
	"function_declaration":           true,
	"generator_function_declaration": true,
	"function_expression":            true,
	"arrow_function":                 true,
	"method_definition":              true,
}

// parserPool is a pool of reusable JS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(jsLang); err != nil {
			panic(fmt.Sprintf("failed to set JS language: %v", err))
		}

		listenerQuery, qerr := sitter.NewQuery(jsLang, `
			(call_expression
				function: (member_expression
					property: (property_identifier) @method)
				(#eq? @method "addEventListener"))
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile listener query: %v", qerr))
		}

		return &Parser{
			parser:        parser,
			listenerQuery: listenerQuery,
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

// Summarize counts functions and event listener registrations in source
func (p *Parser) Summarize(source string) (Summary, error) {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return Summary{}, fmt.Errorf("failed to parse JavaScript")
	}
	defer tree.Close()

	root := tree.RootNode()
	var summary Summary
	countFunctions(root, &summary)

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.listenerQuery, root, sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		summary.Listeners++
	}

	return summary, nil
}

func countFunctions(node *sitter.Node, summary *Summary) {
	if node == nil {
		return
	}
	if functionKinds[node.Kind()] {
		summary.Functions++
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		countFunctions(node.Child(i), summary)
	}
}
