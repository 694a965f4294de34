// Package token defines lexical token kinds and trivia for Java sources.
// Invariants:
//   - Token.Text is the exact source text of the token.
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments never appear in the main token stream; they are
//     carried as Leading trivia of the next significant token. Trivia after the
//     last token is attached to EOF.
//   - Annotations are lexed as '@' (Kind: At) + Ident; `@interface` is At + KwInterface.
//   - Contextual keywords (record, sealed, permits, var, yield, module, ...) are
//     identifiers. The parser recognises them by text.
package token
