package jsonlineage

// A Colorizer adds ANSI color codes to JSON Lines output.  A nil *Colorizer
// prints everything uncolored, so it is always safe to call its methods.
type Colorizer struct {
	KeyColorCode    []byte
	StringColorCode []byte
	ResetCode       []byte
}

// PrintElement prints one element, coloring its string literals.  A string
// is colored as a key when the first significant character after it is a
// colon.  String boundaries follow the same quote and escape rules as
// ByteSplitter, so brackets, colons and quotes inside string content do not
// confuse the scan.
func (c *Colorizer) PrintElement(p Printer, el Element) {
	if c == nil {
		p.PrintBytes(el)
		return
	}
	i := 0
	for i < len(el) {
		if el[i] != '"' {
			j := i + 1
			for j < len(el) && el[j] != '"' {
				j++
			}
			p.PrintBytes(el[i:j])
			i = j
			continue
		}
		j := stringEnd(el, i)
		code := c.StringColorCode
		if colonFollows(el, j) {
			code = c.KeyColorCode
		}
		p.PrintBytes(code)
		p.PrintBytes(el[i:j])
		p.PrintBytes(c.ResetCode)
		i = j
	}
}

// stringEnd returns the index just past the string literal whose opening
// quote is at index i.
func stringEnd(el Element, i int) int {
	escape := false
	for j := i + 1; j < len(el); j++ {
		switch {
		case escape:
			escape = false
		case el[j] == '\\':
			escape = true
		case el[j] == '"':
			return j + 1
		}
	}
	return len(el)
}

// colonFollows reports whether the first significant character at or after
// index i is a colon.
func colonFollows(el Element, i int) bool {
	for ; i < len(el); i++ {
		switch el[i] {
		case ' ', '\t':
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}
