package tc

import (
	"fmt"
	"strings"
)

// String returns a in the form ((a+bi)+(c+di)ϵ).
func (a Jet) String() string { return fmt.Sprintf("%v", a) }

// Format implements fmt.Formatter. The float verbs and their width and
// precision apply to each part. %#v prints Go syntax.
func (a Jet) Format(fs fmt.State, c rune) {
	switch c {
	case 'v', 'e', 'E', 'f', 'F', 'g', 'G':
		if c == 'v' && fs.Flag('#') {
			fmt.Fprintf(fs, "%T{Val:%#v, Der:%#v}", a, a.Val, a.Der)
			return
		}
		if c == 'v' {
			c = 'g'
		}
		f := verb(fs, c)
		fmt.Fprintf(fs, "("+f+"+"+f+"ϵ)", a.Val, a.Der)
	default:
		fmt.Fprintf(fs, "%%!%c(tc.Jet=%v)", c, a)
	}
}

// verb rebuilds the directive in fs so it can be applied to each part.
func verb(fs fmt.State, c rune) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, flag := range "+-# 0" {
		if fs.Flag(int(flag)) {
			b.WriteRune(flag)
		}
	}
	if w, ok := fs.Width(); ok {
		fmt.Fprint(&b, w)
	}
	if p, ok := fs.Precision(); ok {
		fmt.Fprintf(&b, ".%d", p)
	}
	b.WriteRune(c)
	return b.String()
}
