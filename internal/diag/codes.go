package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexUnterminatedTextBlock    Code = 1006
	LexTokenTooLong             Code = 1007

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynUnmatchedCloser    Code = 2003
	SynExpectSemicolon    Code = 2004
	SynExpectIdentifier   Code = 2005
	SynExpectTypeBody     Code = 2006
	SynExpectMemberBody   Code = 2007
	SynUnexpectedTopLevel Code = 2008
	SynPackageNotFirst    Code = 2009
	SynImportAfterType    Code = 2010
	SynBadAnnotation      Code = 2011

	// I/O
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002
)

var codeTitles = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexUnterminatedTextBlock:    "Unterminated text block",
	LexTokenTooLong:             "Token too long",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUnmatchedCloser:          "Unmatched closing delimiter",
	SynExpectSemicolon:          "Missing semicolon",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectTypeBody:           "Expected type body",
	SynExpectMemberBody:         "Expected member body or semicolon",
	SynUnexpectedTopLevel:       "Unexpected top-level declaration",
	SynPackageNotFirst:          "Package declaration must come first",
	SynImportAfterType:          "Import after type declaration",
	SynBadAnnotation:            "Malformed annotation",
	IOLoadFileError:             "I/O load file error",
	IOWriteError:                "I/O write error",
}

// ID returns the stable textual identifier of the code (LEX1002, SYN2001, ...).
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
	if title, ok := codeTitles[c]; ok {
		return title
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
