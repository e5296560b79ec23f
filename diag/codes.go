package diag

import (
	"fmt"
)

// Code identifies a diagnostic class. Ranges follow the pipeline stage:
// 1xxx lexical, 2xxx structural, 4xxx I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexInvalidUTF8        Code = 1001
	LexUnterminatedString Code = 1002

	// Structural
	SynInfo            Code = 2000
	SynUnclosedList    Code = 2001
	SynExtraClosing    Code = 2002
	SynWrongClosing    Code = 2003
	SynPrefixNoOperand Code = 2004

	// I/O
	IOLoadFile Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexInvalidUTF8:        "Invalid UTF-8 sequence",
	LexUnterminatedString: "Unterminated string",
	SynInfo:               "Syntax information",
	SynUnclosedList:       "Unclosed list",
	SynExtraClosing:       "Extra list closing",
	SynWrongClosing:       "Mismatched list closing",
	SynPrefixNoOperand:    "Reader prefix without operand",
	IOLoadFile:            "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
