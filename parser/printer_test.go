package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var roundTripSources = map[string]string{
	"fibonacci": `
		fn main(x) { return fibonacci(x); }

		fn fibonacci(x) {
			if x = 0 {
				return 0;
			}
			else {} if x = 1 {
				return 1;
			}
			else {
				return fibonacci(x - 1) + fibonacci(x - 2);
			}
		}`,
	"loops": `
		fn main(num) {
			x <- 10;
			for i <- 20, i < 30, i++ { x -= 1; }
			while(num < 10) { num += 3; print num; }
			return x + num;
		}`,
	"grouping": `
		fn main(a, b) {
			c <- (a + b) * (a - b) - 1;
			d <- ((c % 7) / 2) + f(a, (b));
			e <- (a < b ? a : b) + 1;
			g <- 1 + a < b ? 10 : 20;
			h <- (a < b) ? a : b < a + 1 ? 1 : 2;
			if ((a + 1) * 2) >= (a > b ? a : b) { print a < b ? c = d ? 1 : 2 : 3; } else { print 0; }
			return a > b ? a - b - 1 : (b - a) - 1;
		}
		fn f(x, y) { return x; }`,
}

func TestFormatRoundTrip(t *testing.T) {
	for name, src := range roundTripSources {
		t.Run(name, func(t *testing.T) {
			prog := parse(t, src)
			formatted := Format(prog)
			reparsed := parse(t, formatted)
			assertTree(t, prog, reparsed)
			assert.Equal(t, formatted, Format(reparsed))
		})
	}
}

func TestFormatLayout(t *testing.T) {
	prog := parse(t, `fn main(n) { if n < 1 { return 0; } else { while n > 0 { n--; } } return (1 + 2) + 3; }
		fn g() {}`)
	want := "fn main(n) {\n" +
		"\tif n < 1 {\n" +
		"\t\treturn 0;\n" +
		"\t} else {\n" +
		"\t\twhile n > 0 {\n" +
		"\t\t\tn <- n - 1;\n" +
		"\t\t}\n" +
		"\t}\n" +
		"\treturn (1 + 2) + 3;\n" +
		"}\n" +
		"\n" +
		"fn g() {}\n"
	assert.Equal(t, want, Format(prog))
}

func TestFormatExpr(t *testing.T) {
	assert.Equal(t, "1 + 2 + 3", FormatExpr(expr(t, "1 + (2 + 3)")))
	assert.Equal(t, "(1 + 2) + 3", FormatExpr(expr(t, "(1 + 2) + 3")))
	assert.Equal(t, "(a = 1 ? 2 : 3) * 4", FormatExpr(expr(t, "(a = 1 ? 2 : 3) * 4")))
	assert.Equal(t, "4 * a = 1 ? 2 : 3", FormatExpr(expr(t, "4 * (a = 1 ? 2 : 3)")))
	assert.Equal(t, "(a + 1) < b ? 1 : 2", FormatExpr(expr(t, "(a + 1) < b ? 1 : 2")))
	assert.Equal(t, "a < (b < c ? 1 : 2) ? 3 : 4", FormatExpr(expr(t, "a < (b < c ? 1 : 2) ? 3 : 4")))
	assert.Equal(t, "f()", FormatExpr(expr(t, "f()")))
}
