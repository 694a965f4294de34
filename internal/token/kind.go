package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	kwBegin
	KwAbstract     // abstract
	KwAssert       // assert
	KwBoolean      // boolean
	KwBreak        // break
	KwByte         // byte
	KwCase         // case
	KwCatch        // catch
	KwChar         // char
	KwClass        // class
	KwConst        // const
	KwContinue     // continue
	KwDefault      // default
	KwDo           // do
	KwDouble       // double
	KwElse         // else
	KwEnum         // enum
	KwExtends      // extends
	KwFinal        // final
	KwFinally      // finally
	KwFloat        // float
	KwFor          // for
	KwGoto         // goto
	KwIf           // if
	KwImplements   // implements
	KwImport       // import
	KwInstanceof   // instanceof
	KwInt          // int
	KwInterface    // interface
	KwLong         // long
	KwNative       // native
	KwNew          // new
	KwPackage      // package
	KwPrivate      // private
	KwProtected    // protected
	KwPublic       // public
	KwReturn       // return
	KwShort        // short
	KwStatic       // static
	KwStrictfp     // strictfp
	KwSuper        // super
	KwSwitch       // switch
	KwSynchronized // synchronized
	KwThis         // this
	KwThrow        // throw
	KwThrows       // throws
	KwTransient    // transient
	KwTry          // try
	KwVoid         // void
	KwVolatile     // volatile
	KwWhile        // while
	kwEnd

	// TrueLit, FalseLit and NullLit are the reserved literal words.
	TrueLit  // true
	FalseLit // false
	NullLit  // null

	// IntLit represents an integer literal (decimal, hex, octal, binary, with optional L suffix).
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// CharLit represents a character literal.
	CharLit
	// StringLit represents a string literal.
	StringLit
	// TextBlock represents a """ text block literal.
	TextBlock

	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]
	Semicolon     // ;
	Comma         // ,
	Dot           // .
	Ellipsis      // ...
	At            // @
	ColonColon    // ::
	Assign        // =
	Gt            // >
	Lt            // <
	Bang          // !
	Tilde         // ~
	Question      // ?
	Colon         // :
	Arrow         // ->
	EqEq          // ==
	GtEq          // >=
	LtEq          // <=
	BangEq        // !=
	AndAnd        // &&
	OrOr          // ||
	PlusPlus      // ++
	MinusMinus    // --
	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Amp           // &
	Pipe          // |
	Caret         // ^
	Percent       // %
	Shl           // <<
	Shr           // >>
	UShr          // >>>
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=
	PercentAssign // %=
	ShlAssign     // <<=
	ShrAssign     // >>=
	UShrAssign    // >>>=

	kindCount
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	TrueLit:   "TrueLit",
	FalseLit:  "FalseLit",
	NullLit:   "NullLit",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	CharLit:   "CharLit",
	StringLit: "StringLit",
	TextBlock: "TextBlock",
	kindCount: "",
}

// String returns the kind name; keywords and operators render as their lexeme.
func (k Kind) String() string {
	if k >= kindCount {
		return "Kind(?)"
	}
	if name := kindNames[k]; name != "" {
		return name
	}
	if lex, ok := lexemes[k]; ok {
		return lex
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved Java keyword.
func (k Kind) IsKeyword() bool {
	return k > kwBegin && k < kwEnd
}

// IsLiteral reports whether k is a literal token kind.
func (k Kind) IsLiteral() bool {
	switch k {
	case TrueLit, FalseLit, NullLit, IntLit, FloatLit, CharLit, StringLit, TextBlock:
		return true
	default:
		return false
	}
}

// IsModifier reports whether k can appear in a declaration's modifier list.
// non-sealed and sealed are contextual and handled by the parser.
func (k Kind) IsModifier() bool {
	switch k {
	case KwPublic, KwProtected, KwPrivate, KwStatic, KwAbstract, KwFinal, KwNative,
		KwSynchronized, KwTransient, KwVolatile, KwStrictfp, KwDefault:
		return true
	default:
		return false
	}
}
