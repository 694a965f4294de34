package token

import "jstrip/internal/source"

type TriviaKind uint8

const (
	TriviaSpace        TriviaKind = iota // ' ', '\t', '\f'
	TriviaNewline                        // подряд идущие \n (и \r)
	TriviaLineComment                    // // ...
	TriviaBlockComment                   // /* ... */
	TriviaDocComment                     // /** ... */
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocComment:
		return "DocComment"
	default:
		return "Trivia(?)"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is any comment variant.
func (tv Trivia) IsComment() bool {
	return tv.Kind == TriviaLineComment || tv.Kind == TriviaBlockComment || tv.Kind == TriviaDocComment
}

// IsSpace reports whether the trivia is horizontal whitespace.
func (tv Trivia) IsSpace() bool { return tv.Kind == TriviaSpace }

// IsNewline reports whether the trivia is a line break run.
func (tv Trivia) IsNewline() bool { return tv.Kind == TriviaNewline }
