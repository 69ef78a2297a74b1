package jsrewrite

import (
	sitter "github.com/smacker/go-tree-sitter"

	"extension-resolver/internal/host"
)

// Tree-sitter node types.
const (
	nodeImportStatement     = "import_statement"
	nodeImportRequireClause = "import_require_clause"
	nodeExportStatement     = "export_statement"
	nodeCallExpression      = "call_expression"
	nodeIdentifier          = "identifier"
	nodeImport              = "import"
	nodeString              = "string"
	nodeEscapeSequence      = "escape_sequence"
	nodeComment             = "comment"
)

const requireFunc = "require"

// site is a host.Site backed by a tree-sitter string node.
type site struct {
	kind    host.Kind
	line    int
	literal bool
	value   string
	// start and end delimit the specifier text between the quotes.
	start, end  uint32
	quote       byte
	replacement *string
}

var _ host.Site = (*site)(nil)

func (s *site) Kind() host.Kind { return s.kind }

func (s *site) Specifier() (string, bool) {
	if !s.literal {
		return "", false
	}

	return s.value, true
}

func (s *site) Replace(specifier string) {
	s.replacement = &specifier
}

func (s *site) Line() int { return s.line }

// changed reports whether the site holds a replacement different from the source.
func (s *site) changed() bool {
	return s.replacement != nil && *s.replacement != s.value
}

// collectSites walks the tree and returns every reference site in source order.
func collectSites(root *sitter.Node, src []byte) []*site {
	var sites []*site

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node == nil {
			continue
		}

		if s := siteFor(node, src); s != nil {
			sites = append(sites, s)
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, node.Child(i))
		}
	}

	return sites
}

// siteFor classifies node, returning nil when it is not a reference site.
func siteFor(node *sitter.Node, src []byte) *site {
	switch node.Type() {
	case nodeImportStatement:
		if source := node.ChildByFieldName("source"); source != nil {
			return newSite(host.KindStaticImport, node, source, src)
		}

		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == nodeImportRequireClause {
				return newSite(host.KindRequireCall, node, sourceOf(child), src)
			}
		}

	case nodeExportStatement:
		if source := node.ChildByFieldName("source"); source != nil {
			return newSite(host.KindReExport, node, source, src)
		}

	case nodeCallExpression:
		return callSite(node, src)
	}

	return nil
}

// callSite handles require(...) and import(...) with exactly one argument.
func callSite(node *sitter.Node, src []byte) *site {
	fn := node.ChildByFieldName("function")
	args := node.ChildByFieldName("arguments")

	if fn == nil || args == nil {
		return nil
	}

	var kind host.Kind

	switch {
	case fn.Type() == nodeImport:
		kind = host.KindDynamicImport
	case fn.Type() == nodeIdentifier && fn.Content(src) == requireFunc:
		kind = host.KindRequireCall
	default:
		return nil
	}

	var arg *sitter.Node

	count := 0

	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child.Type() == nodeComment {
			continue
		}

		arg = child
		count++
	}

	if count != 1 {
		return nil
	}

	return newSite(kind, node, arg, src)
}

// sourceOf finds the string operand of an import require clause.
func sourceOf(clause *sitter.Node) *sitter.Node {
	if source := clause.ChildByFieldName("source"); source != nil {
		return source
	}

	for i := 0; i < int(clause.NamedChildCount()); i++ {
		if child := clause.NamedChild(i); child.Type() == nodeString {
			return child
		}
	}

	return nil
}

// newSite builds a site for the specifier operand of stmt.
// Anything other than a plain string literal yields a non-literal site.
func newSite(kind host.Kind, stmt, operand *sitter.Node, src []byte) *site {
	s := &site{
		kind: kind,
		line: int(stmt.StartPoint().Row) + 1,
	}

	if operand == nil || operand.Type() != nodeString || hasEscapes(operand) {
		return s
	}

	start, end := operand.StartByte(), operand.EndByte()
	if end-start < 2 {
		return s
	}

	s.literal = true
	s.quote = src[start]
	s.start = start + 1
	s.end = end - 1
	s.value = string(src[s.start:s.end])

	return s
}

func hasEscapes(str *sitter.Node) bool {
	for i := 0; i < int(str.NamedChildCount()); i++ {
		if str.NamedChild(i).Type() == nodeEscapeSequence {
			return true
		}
	}

	return false
}
