package token

// Bracket identifies a delimiter family. ListOpen/ListClose tokens carry
// it so the parser can detect a list opened with one family and closed
// with another. The value is a fixed per-family id, independent of nesting.
type Bracket uint8

const (
	Paren Bracket = iota // ( )
	Brace                // { }
	Square               // [ ]
)

func (b Bracket) Open() byte {
	switch b {
	case Brace:
		return '{'
	case Square:
		return '['
	}
	return '('
}

func (b Bracket) Close() byte {
	switch b {
	case Brace:
		return '}'
	case Square:
		return ']'
	}
	return ')'
}

func (b Bracket) String() string {
	switch b {
	case Paren:
		return "parenthesis"
	case Brace:
		return "brace"
	case Square:
		return "square bracket"
	}
	return "bracket"
}

// BracketOf classifies a delimiter byte. ok is false for non-delimiters.
func BracketOf(c byte) (bracket Bracket, opening bool, ok bool) {
	switch c {
	case '(':
		return Paren, true, true
	case ')':
		return Paren, false, true
	case '{':
		return Brace, true, true
	case '}':
		return Brace, false, true
	case '[':
		return Square, true, true
	case ']':
		return Square, false, true
	}
	return 0, false, false
}
