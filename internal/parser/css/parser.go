package css

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mazznoer/csscolorparser"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing CSS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool is a pool of reusable CSS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
		}
		return &Parser{parser: parser}
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

// Summarize counts the rule sets and custom property declarations in source
func (p *Parser) Summarize(source string) (Summary, error) {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return Summary{}, fmt.Errorf("failed to parse CSS")
	}
	defer tree.Close()

	var summary Summary
	colors := map[string]struct{}{}
	walkTree(tree.RootNode(), sourceBytes, &summary, colors)
	summary.Colors = len(colors)
	return summary, nil
}

// walkTree recursively walks the tree counting rule sets and custom
// properties, and collecting the hex form of every color value
func walkTree(node *sitter.Node, source []byte, summary *Summary, colors map[string]struct{}) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "rule_set":
		summary.Rules++
	case "declaration":
		if isCustomProperty(node, source) {
			summary.CustomProperties++
		}
		collectColors(node, source, colors)
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), source, summary, colors)
	}
}

// collectColors parses each value of a declaration as a CSS color. Keywords
// that are not colors, lengths and var() calls fail to parse and are skipped.
func collectColors(node *sitter.Node, source []byte, colors map[string]struct{}) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "color_value", "plain_value", "call_expression":
			value := strings.TrimSpace(string(source[child.StartByte():child.EndByte()]))
			parsed, err := csscolorparser.Parse(value)
			if err != nil {
				continue
			}
			colors[parsed.HexString()] = struct{}{}
		}
	}
}

func isCustomProperty(node *sitter.Node, source []byte) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == "property_name" {
			name := string(source[child.StartByte():child.EndByte()])
			return strings.HasPrefix(name, "--")
		}
	}
	return false
}
