package parser

import (
	"fmt"
	"strings"

	"minty/scanner"
)

// SyntaxError reports the token at which parsing stopped and the kinds that
// would have been accepted there. Reason, when set, explains a failure that
// is not a simple token mismatch.
type SyntaxError struct {
	Found    scanner.Token
	Expected []scanner.Kind
	Reason   string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	if e.Found.Kind != scanner.EOF {
		fmt.Fprintf(&b, "%d:%d: ", e.Found.Row, e.Found.Col)
	}
	b.WriteString("syntax error: ")
	if e.Reason != "" {
		fmt.Fprintf(&b, "%s, found %s", e.Reason, e.Found)
		return b.String()
	}
	fmt.Fprintf(&b, "%s found, %s expected", e.Found, expectedList(e.Expected))
	return b.String()
}

func expectedList(kinds []scanner.Kind) string {
	quoted := make([]string, len(kinds))
	for i, k := range kinds {
		if k.HasPayload() || k == scanner.EOF {
			quoted[i] = k.String()
		} else {
			quoted[i] = fmt.Sprintf("%q", k.String())
		}
	}
	switch len(quoted) {
	case 0:
		return "nothing"
	case 1:
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
