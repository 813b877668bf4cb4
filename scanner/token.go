package scanner

import "fmt"

//go:generate stringer -type=Kind -linecomment
type Kind int

const (
	Ident Kind = iota // identifier
	Int               // integer

	Fn     // fn
	For    // for
	While  // while
	If     // if
	Else   // else
	Print  // print
	Return // return

	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	Comma     // ,
	Semicolon // ;
	Question  // ?
	Colon     // :

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %

	Inc         // ++
	Dec         // --
	PlusAssign  // +=
	MinusAssign // -=
	Assign      // <-

	Eq  // =
	Ne  // !=
	Lt  // <
	Gt  // >
	Lte // <=
	Gte // >=

	EOF // end of input
)

// HasPayload reports whether tokens of kind k carry their lexeme.
func (k Kind) HasPayload() bool {
	return k == Ident || k == Int
}

// IsArithmetic reports whether k is one of + - * / %.
func (k Kind) IsArithmetic() bool {
	return Plus <= k && k <= Percent
}

// IsComparison reports whether k is one of = != < > <= >=.
func (k Kind) IsComparison() bool {
	return Eq <= k && k <= Gte
}

// Token is a classified lexeme. Lexeme is empty unless the kind has a
// payload. Row and Col are 1-based and locate the first byte of the lexeme.
type Token struct {
	Kind   Kind
	Lexeme string
	Row    int
	Col    int
}

func (t Token) String() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}
	if t.Kind.HasPayload() {
		return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%q", t.Kind.String())
}

// fixed lists every lexeme that maps to exactly one valueless kind.
var fixed = map[string]Kind{
	"fn":     Fn,
	"for":    For,
	"while":  While,
	"if":     If,
	"else":   Else,
	"print":  Print,
	"return": Return,

	"{": LBrace,
	"}": RBrace,
	"(": LParen,
	")": RParen,
	",": Comma,
	";": Semicolon,
	"?": Question,
	":": Colon,

	"+": Plus,
	"-": Minus,
	"*": Star,
	"/": Slash,
	"%": Percent,

	"++": Inc,
	"--": Dec,
	"+=": PlusAssign,
	"-=": MinusAssign,
	"<-": Assign,

	"=":  Eq,
	"!=": Ne,
	"<":  Lt,
	">":  Gt,
	"<=": Lte,
	">=": Gte,
}
