package generator

import "strings"

// Style holds every whitespace and marker convention of the generated Ruby.
type Style struct {
	CommentIndent string // before each doc comment line
	CommentMarker string
	DefIndent     string // before "def" and "end"
	BodyIndent    string // before the placeholder line
	Placeholder   string
}

// DefaultStyle is the layout expected by the Ruby binding layer.
var DefaultStyle = Style{
	CommentIndent: "  ",
	CommentMarker: "#",
	DefIndent:     "    ",
	BodyIndent:    "      ",
	Placeholder:   "Rust implementation placeholder",
}

// FormatDocComment turns raw docs into comment lines. Every input line,
// blank ones included, becomes exactly one trimmed, prefixed output line.
func (s Style) FormatDocComment(docs string) string {
	prefix := s.CommentIndent + s.CommentMarker + " "
	lines := strings.Split(docs, "\n")
	for i, line := range lines {
		lines[i] = prefix + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// FormatStub renders the doc comment of name followed by a variadic no-op method.
func (s Style) FormatStub(name, docs string) string {
	var b strings.Builder
	b.WriteString(s.FormatDocComment(docs))
	b.WriteString("\n")
	b.WriteString(s.DefIndent + "def " + name + "(*args)\n")
	b.WriteString(s.BodyIndent + s.CommentMarker + " " + s.Placeholder + "\n")
	b.WriteString(s.DefIndent + "end")
	return b.String()
}
