package newick

import (
	"strings"

	"github.com/katalvlaran/urec/rtree"
)

// trimSemicolon strips surrounding whitespace and the mandatory
// terminating ';', returning the tree body to tokenize. Requiring the
// terminator is stricter than the bare-tree examples in spec.md §8 (which
// omit it); this follows soniakeys-bio/newick.go's grammar, which also
// requires it, rather than the original C++ reader.
func trimSemicolon(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ParseError{Pos: 0, Msg: "empty input"}
	}
	if s[len(s)-1] != ';' {
		return "", &ParseError{Pos: len(s), Msg: "missing terminating ';'"}
	}
	body := strings.TrimSpace(s[:len(s)-1])
	if body == "" {
		return "", &ParseError{Pos: len(s) - 1, Msg: "empty tree"}
	}
	return body, nil
}

// ParseRooted parses a rooted, binary Newick string into an *rtree.Tree.
func ParseRooted(s string) (*rtree.Tree, error) {
	body, err := trimSemicolon(s)
	if err != nil {
		return nil, err
	}
	lex := newLexer(body)
	b := rtree.NewBuilder()
	root, err := parseRootedNode(lex, b)
	if err != nil {
		return nil, err
	}
	if lex.tok != "" {
		return nil, &ParseError{Pos: lex.tokPos, Msg: "unparsed text after complete tree"}
	}
	return b.Finish(root)
}

// ParseSpeciesTree parses s as a rooted tree and builds its leaf-label
// index, failing with rtree.ErrDuplicateLabel if any two leaves share a
// label.
func ParseSpeciesTree(s string) (*rtree.SpeciesTree, error) {
	t, err := ParseRooted(s)
	if err != nil {
		return nil, err
	}
	return rtree.NewSpeciesTree(t)
}

func parseRootedNode(lex *lexer, b *rtree.Builder) (rtree.NodeID, error) {
	switch lex.tok {
	case "(":
		lex.next()
		left, err := parseRootedNode(lex, b)
		if err != nil {
			return rtree.NoNode, err
		}
		if lex.tok != "," {
			return rtree.NoNode, &ParseError{Pos: lex.tokPos, Msg: "expected ','"}
		}
		lex.next()
		right, err := parseRootedNode(lex, b)
		if err != nil {
			return rtree.NoNode, err
		}
		if lex.tok != ")" {
			return rtree.NoNode, &ParseError{Pos: lex.tokPos, Msg: "expected ')'"}
		}
		lex.next()
		label := ""
		if strings.HasPrefix(lex.tok, ":") {
			label = strings.TrimPrefix(lex.tok, ":")
			lex.next()
		}
		return b.Internal(left, right, label), nil
	case "", ")", ",":
		return rtree.NoNode, &ParseError{Pos: lex.tokPos, Msg: "expected a leaf or '('"}
	default:
		raw := lex.tok
		_, species := splitLeafLabel(raw)
		lex.next()
		return b.Leaf(species, raw), nil
	}
}
