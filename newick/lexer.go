package newick

import "strings"

// lexer tokenizes a Newick body (with the terminating ';' already
// stripped) into '(', ')', ',' and identifier tokens, skipping whitespace.
// Grounded on the token-at-a-time scan shape used by comparable Newick
// readers in the retrieved corpus, adapted to track byte position for
// ParseError reporting.
type lexer struct {
	s      string
	pos    int
	tok    string
	tokPos int
}

func newLexer(s string) *lexer {
	l := &lexer{s: s}
	l.next()
	return l
}

func isNewickSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isNewickPunct(b byte) bool {
	return b == '(' || b == ')' || b == ','
}

// next advances to the following token, leaving it in l.tok (empty string
// at end of input) and its start offset in l.tokPos.
func (l *lexer) next() {
	for l.pos < len(l.s) && isNewickSpace(l.s[l.pos]) {
		l.pos++
	}
	l.tokPos = l.pos
	if l.pos >= len(l.s) {
		l.tok = ""
		return
	}
	if isNewickPunct(l.s[l.pos]) {
		l.tok = string(l.s[l.pos])
		l.pos++
		return
	}
	start := l.pos
	for l.pos < len(l.s) && !isNewickSpace(l.s[l.pos]) && !isNewickPunct(l.s[l.pos]) {
		l.pos++
	}
	l.tok = strings.TrimSpace(l.s[start:l.pos])
}
