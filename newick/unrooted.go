package newick

import (
	"strings"

	"github.com/katalvlaran/urec/utree"
)

// ParseUnrooted parses an unrooted Newick string into a *utree.Tree.
// The outermost production may be binary ("(A,B);", root edge erased) or
// ternary ("(A,B,C);", root becomes a degree-3 vertex); a bare leaf
// ("x;") is accepted as the |L(G)|=1 degenerate whole tree.
func ParseUnrooted(s string) (*utree.Tree, error) {
	body, err := trimSemicolon(s)
	if err != nil {
		return nil, err
	}
	lex := newLexer(body)
	b := utree.NewBuilder()

	if lex.tok != "(" {
		raw := lex.tok
		if raw == "" || raw == ")" || raw == "," {
			return nil, &ParseError{Pos: lex.tokPos, Msg: "expected a leaf or '('"}
		}
		_, species := splitLeafLabel(raw)
		lex.next()
		if lex.tok != "" {
			return nil, &ParseError{Pos: lex.tokPos, Msg: "unparsed text after complete tree"}
		}
		return b.Single(species, raw)
	}
	lex.next()

	a, err := parseUnrootedNode(lex, b)
	if err != nil {
		return nil, err
	}
	if lex.tok != "," {
		return nil, &ParseError{Pos: lex.tokPos, Msg: "expected ','"}
	}
	lex.next()

	bCorner, err := parseUnrootedNode(lex, b)
	if err != nil {
		return nil, err
	}

	var tree *utree.Tree
	switch lex.tok {
	case ",":
		lex.next()
		c, err := parseUnrootedNode(lex, b)
		if err != nil {
			return nil, err
		}
		if lex.tok != ")" {
			return nil, &ParseError{Pos: lex.tokPos, Msg: "expected ')'"}
		}
		lex.next()
		tree = b.Root3(a, bCorner, c)
	case ")":
		lex.next()
		tree = b.Root2(a, bCorner)
	default:
		return nil, &ParseError{Pos: lex.tokPos, Msg: "expected ',' or ')'"}
	}

	if lex.tok != "" {
		return nil, &ParseError{Pos: lex.tokPos, Msg: "unparsed text after complete tree"}
	}
	return tree, nil
}

func parseUnrootedNode(lex *lexer, b *utree.Builder) (utree.CornerID, error) {
	switch lex.tok {
	case "(":
		lex.next()
		a, err := parseUnrootedNode(lex, b)
		if err != nil {
			return utree.NoCorner, err
		}
		if lex.tok != "," {
			return utree.NoCorner, &ParseError{Pos: lex.tokPos, Msg: "expected ','"}
		}
		lex.next()
		bCorner, err := parseUnrootedNode(lex, b)
		if err != nil {
			return utree.NoCorner, err
		}
		if lex.tok != ")" {
			return utree.NoCorner, &ParseError{Pos: lex.tokPos, Msg: "expected ')'"}
		}
		lex.next()
		label := ""
		if strings.HasPrefix(lex.tok, ":") {
			label = strings.TrimPrefix(lex.tok, ":")
			lex.next()
		}
		return b.Join(a, bCorner, label), nil
	case "", ")", ",":
		return utree.NoCorner, &ParseError{Pos: lex.tokPos, Msg: "expected a leaf or '('"}
	default:
		raw := lex.tok
		_, species := splitLeafLabel(raw)
		lex.next()
		return b.Leaf(species, raw), nil
	}
}
