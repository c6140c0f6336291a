package compiler

import "fmt"

// Kind identifies the lexical category of a Token.
//
// Single-character operators and punctuation share integer identity with
// their ASCII code (Kind('+') == '+'), so the parser can test
// p.check(Kind('+')) directly instead of looking anything up. Keywords,
// multi-character operators, and the structured token classes (IDENT, NUM,
// STRING, CHARACTER) live in the dense range starting at 256, comfortably
// above any byte value a single-character operator could take.
type Kind int

const (
	firstKeyword Kind = 256 + iota

	IDENT     // identifier
	NUM       // integer literal
	STRING    // string literal "..."
	CHARACTER // character literal 'c'

	KwInt
	KwChar
	KwLong
	KwVoid
	KwIf
	KwElse
	KwWhile
	KwFor
	KwReturn
	KwSizeof

	opEq  // ==
	opNe  // !=
	opLe  // <=
	opGe  // >=
	opAnd // &&
	opOr  // ||

	DONE // terminal sentinel: end of token stream
)

var kindNames = map[Kind]string{
	IDENT:     "an identifier",
	NUM:       "a number",
	STRING:    "a string literal",
	CHARACTER: "a character literal",
	KwInt:     "int",
	KwChar:    "char",
	KwLong:    "long",
	KwVoid:    "void",
	KwIf:      "if",
	KwElse:    "else",
	KwWhile:   "while",
	KwFor:     "for",
	KwReturn:  "return",
	KwSizeof:  "sizeof",
	opEq:      "==",
	opNe:      "!=",
	opLe:      "<=",
	opGe:      ">=",
	opAnd:     "&&",
	opOr:      "||",
	DONE:      "end of file",
}

// keywords maps source spelling to its reserved Kind. Anything not in this
// table that starts with a letter or '_' lexes as IDENT.
var keywords = map[string]Kind{
	"int":    KwInt,
	"char":   KwChar,
	"long":   KwLong,
	"void":   KwVoid,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"for":    KwFor,
	"return": KwReturn,
	"sizeof": KwSizeof,
}

// String renders a Kind the way diagnostics want to see it: the literal
// rune for single-character operators, the keyword/operator spelling
// otherwise.
func (k Kind) String() string {
	if k >= 0 && k < 256 {
		return fmt.Sprintf("'%c'", rune(k))
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// spelling returns the bare source spelling of an operator Kind, without
// the surrounding quotes String adds to single-character operators. The
// diagnostic catalogue interpolates operator spellings unquoted
// ("invalid operands to binary +", not "... binary '+'").
func (k Kind) spelling() string {
	if k >= 0 && k < 256 {
		return string(rune(k))
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is the (kind, lexeme) pair the lexer hands to the parser, plus the
// source line for diagnostics. Per the system's scope, the lexer proper is
// an external collaborator (see lexer.go); Token is the contract between it
// and everything downstream.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("%-16s %-10q line %d", t.Kind, t.Lexeme, t.Line)
}
