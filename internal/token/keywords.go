package token

var keywords = map[string]Kind{
	"abstract":     KwAbstract,
	"assert":       KwAssert,
	"boolean":      KwBoolean,
	"break":        KwBreak,
	"byte":         KwByte,
	"case":         KwCase,
	"catch":        KwCatch,
	"char":         KwChar,
	"class":        KwClass,
	"const":        KwConst,
	"continue":     KwContinue,
	"default":      KwDefault,
	"do":           KwDo,
	"double":       KwDouble,
	"else":         KwElse,
	"enum":         KwEnum,
	"extends":      KwExtends,
	"final":        KwFinal,
	"finally":      KwFinally,
	"float":        KwFloat,
	"for":          KwFor,
	"goto":         KwGoto,
	"if":           KwIf,
	"implements":   KwImplements,
	"import":       KwImport,
	"instanceof":   KwInstanceof,
	"int":          KwInt,
	"interface":    KwInterface,
	"long":         KwLong,
	"native":       KwNative,
	"new":          KwNew,
	"package":      KwPackage,
	"private":      KwPrivate,
	"protected":    KwProtected,
	"public":       KwPublic,
	"return":       KwReturn,
	"short":        KwShort,
	"static":       KwStatic,
	"strictfp":     KwStrictfp,
	"super":        KwSuper,
	"switch":       KwSwitch,
	"synchronized": KwSynchronized,
	"this":         KwThis,
	"throw":        KwThrow,
	"throws":       KwThrows,
	"transient":    KwTransient,
	"try":          KwTry,
	"void":         KwVoid,
	"volatile":     KwVolatile,
	"while":        KwWhile,
	"true":         TrueLit,
	"false":        FalseLit,
	"null":         NullLit,
}

// lexemes maps keyword and operator kinds back to their source text.
var lexemes = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords)+len(operators))
	for lex, k := range keywords {
		m[k] = lex
	}
	for lex, k := range operators {
		m[k] = lex
	}
	return m
}()

var operators = map[string]Kind{
	"(": LParen, ")": RParen, "{": LBrace, "}": RBrace, "[": LBracket, "]": RBracket,
	";": Semicolon, ",": Comma, ".": Dot, "...": Ellipsis, "@": At, "::": ColonColon,
	"=": Assign, ">": Gt, "<": Lt, "!": Bang, "~": Tilde, "?": Question, ":": Colon,
	"->": Arrow, "==": EqEq, ">=": GtEq, "<=": LtEq, "!=": BangEq, "&&": AndAnd,
	"||": OrOr, "++": PlusPlus, "--": MinusMinus, "+": Plus, "-": Minus, "*": Star,
	"/": Slash, "&": Amp, "|": Pipe, "^": Caret, "%": Percent, "<<": Shl, ">>": Shr,
	">>>": UShr, "+=": PlusAssign, "-=": MinusAssign, "*=": StarAssign, "/=": SlashAssign,
	"&=": AmpAssign, "|=": PipeAssign, "^=": CaretAssign, "%=": PercentAssign,
	"<<=": ShlAssign, ">>=": ShrAssign, ">>>=": UShrAssign,
}

// LookupKeyword возвращает тип и bool если это ключевое слово или литерал true/false/null.
// Ключевые слова Java регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupOperator returns the kind of an operator or punctuation lexeme.
func LookupOperator(lex string) (Kind, bool) {
	k, ok := operators[lex]
	return k, ok
}
