package graph

import "strings"

// Parse reads a graph in the textual grammar and returns its canonical form.
// The outermost node must be a Sheet "( ... )"; nested nodes must be Cuts
// "[ ... ]". Any violation fails with an error wrapping ErrMalformedInput and
// no partial graph is returned.
func Parse(text string) (*Graph, error) {
	p := &parser{src: text}
	start, end := p.trim(0, len(text))
	if start == end {
		return nil, &SyntaxError{Offset: 0, Reason: "empty input"}
	}
	if text[start] != '(' || text[end-1] != ')' {
		return nil, &SyntaxError{Offset: start, Reason: "a graph must be enclosed in '(' and ')'"}
	}
	return p.level(start+1, end-1, true)
}

// MustParse is like Parse but panics on error. Intended for literals and tests.
func MustParse(text string) *Graph {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

type parser struct {
	src string
}

// trim narrows [start, end) past surrounding whitespace.
func (p *parser) trim(start, end int) (int, int) {
	for start < end && isSpace(p.src[start]) {
		start++
	}
	for end > start && isSpace(p.src[end-1]) {
		end--
	}
	return start, end
}

// level builds the node whose content is src[start:end].
func (p *parser) level(start, end int, sheet bool) (*Graph, error) {
	spans, err := p.split(start, end)
	if err != nil {
		return nil, err
	}

	var atoms []string
	var children []*Graph
	for _, sp := range spans {
		s, e := sp[0], sp[1]
		switch p.src[s] {
		case '[':
			child, err := p.cut(s, e)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		case '(':
			return nil, &SyntaxError{Offset: s, Reason: "a sheet cannot be nested inside another graph"}
		default:
			tok := p.src[s:e]
			if reason := invalidAtom(tok); reason != "" {
				return nil, &SyntaxError{Offset: s, Reason: reason}
			}
			atoms = append(atoms, tok)
		}
	}
	return build(sheet, atoms, children), nil
}

// cut parses src[start:end], which begins with '[' and must close at end-1.
func (p *parser) cut(start, end int) (*Graph, error) {
	depth := 0
	for i := start; i < end; i++ {
		switch p.src[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 && i != end-1 {
				return nil, &SyntaxError{Offset: i + 1, Reason: "unexpected content after ']'"}
			}
		}
	}
	if depth != 0 || p.src[end-1] != ']' {
		return nil, &SyntaxError{Offset: start, Reason: "unbalanced '['"}
	}
	return p.level(start+1, end-1, false)
}

// split cuts src[start:end] at the commas that sit at bracket depth zero and
// returns the trimmed span of every element. Blank content has no elements.
func (p *parser) split(start, end int) ([][2]int, error) {
	if s, e := p.trim(start, end); s == e {
		return nil, nil
	}

	var spans [][2]int
	add := func(from, to int) error {
		s, e := p.trim(from, to)
		if s == e {
			return &SyntaxError{Offset: from, Reason: "empty element"}
		}
		spans = append(spans, [2]int{s, e})
		return nil
	}

	depth, from := 0, start
	for i := start; i < end; i++ {
		switch p.src[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, &SyntaxError{Offset: i, Reason: "unbalanced ']'"}
			}
		case ',':
			if depth == 0 {
				if err := add(from, i); err != nil {
					return nil, err
				}
				from = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, &SyntaxError{Offset: end, Reason: "unbalanced '['"}
	}
	if err := add(from, end); err != nil {
		return nil, err
	}
	return spans, nil
}

// invalidAtom returns why tok is not a legal atom, or "" when it is.
// Parentheses are allowed inside atoms ("f(x)"); a leading '(' is not, since
// that element would read back as a nested sheet.
func invalidAtom(tok string) string {
	if strings.TrimSpace(tok) == "" {
		return "empty atom"
	}
	if strings.ContainsAny(tok, "[],") {
		return "atom " + quote(tok) + " contains a reserved character"
	}
	if tok[0] == '(' {
		return "atom " + quote(tok) + " starts with '('"
	}
	return ""
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func quote(s string) string {
	return "'" + s + "'"
}
