package token

// Kind classifies a token.
type Kind uint8

const (
	// Invalid marks text the lexer could not form a token from; a lexical
	// diagnostic has already been reported for it.
	Invalid Kind = iota
	// EOF is returned forever once the input is exhausted.
	EOF
	// Atom is a maximal run of characters that are not whitespace, a
	// delimiter, a reader prefix, or a quote. Classification beyond that
	// (number, symbol, keyword) is left to the caller.
	Atom
	// String is a quoted atom, produced only when quoted atoms are enabled.
	String
	// ListOpen and ListClose carry the Bracket family of the delimiter.
	ListOpen
	ListClose
	// Prefix is a reader-prefix character configured on the lexer; it
	// applies to the following expression.
	Prefix
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Atom:
		return "Atom"
	case String:
		return "String"
	case ListOpen:
		return "ListOpen"
	case ListClose:
		return "ListClose"
	case Prefix:
		return "Prefix"
	}
	return "Unknown"
}
