package editor

import "strings"

// syntaxFlags controls which optional highlight passes a rule set enables.
type syntaxFlags int

const (
	highlightNumbers syntaxFlags = 1 << iota
	highlightStrings
)

// keyword is one entry of a rule set's keyword table. Secondary keywords
// (type names: int/char/...) render as Keyword1; primary keywords
// (structural words: if/for/return/...) render as Keyword2 (see the
// keyword step in updateSyntax). The original kilo table marks secondary
// entries with a trailing '|' in a flat string table; here the marker is
// an explicit bool field instead of a string suffix so the table reads
// cleanly as data.
type keyword struct {
	word      string
	secondary bool
}

// Syntax is an immutable, static language rule set (spec §3).
type Syntax struct {
	Filetype               string
	filematch              []string
	keywords                []keyword
	singlelineCommentStart string
	multilineCommentStart  string
	multilineCommentEnd    string
	flags                  syntaxFlags
}

func kws(primary []string, secondary []string) []keyword {
	out := make([]keyword, 0, len(primary)+len(secondary))
	for _, w := range primary {
		out = append(out, keyword{word: w, secondary: false})
	}
	for _, w := range secondary {
		out = append(out, keyword{word: w, secondary: true})
	}
	return out
}

// builtinSyntaxes is the fixed set of language rule sets this editor ships
// with (spec: "a single built-in rule set for C-like source", extended per
// SPEC_FULL.md DOMAIN STACK to three hand-authored tables).
var builtinSyntaxes = []Syntax{
	{
		Filetype:  "c",
		filematch: []string{".c", ".h", ".cpp", ".cc"},
		keywords: kws(
			[]string{"switch", "if", "while", "for", "break", "continue", "return",
				"else", "struct", "union", "typedef", "static", "enum", "class", "case"},
			[]string{"int", "long", "double", "float", "char", "unsigned", "signed", "void"},
		),
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  highlightNumbers | highlightStrings,
	},
	{
		Filetype:  "go",
		filematch: []string{".go"},
		keywords: kws(
			[]string{"break", "case", "chan", "const", "continue", "default", "defer",
				"else", "fallthrough", "for", "go", "goto", "if", "import", "map",
				"package", "range", "return", "select", "struct", "switch", "type", "var"},
			[]string{"interface", "func", "int", "int32", "int64", "uint", "byte",
				"rune", "string", "bool", "float32", "float64", "error"},
		),
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  highlightNumbers | highlightStrings,
	},
	{
		Filetype:  "sh",
		filematch: []string{".sh", ".bash", "Makefile", ".mk"},
		keywords: kws(
			[]string{"if", "then", "else", "elif", "fi", "for", "while", "do", "done",
				"case", "esac", "function", "return", "in"},
			[]string{"export", "local", "readonly"},
		),
		singlelineCommentStart: "#",
		flags:                  highlightStrings,
	},
}

// isSeparator implements spec §4.3's is_separator predicate.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// updateSyntax runs the linear scan of spec §4.3 over r.render, then
// cascades to the next row if the terminal in-comment state changed. The
// cascade is an explicit loop rather than a recursive self-call, per
// SPEC_FULL.md's resolution of the Design Notes' "bound the recursion"
// concern: a file of thousands of alternating comment delimiters cannot
// blow the call stack.
func (r *Row) updateSyntax(e *Editor) {
	row := r
	for {
		row.hl = make([]Highlight, len(row.render))

		syn := e.syntax
		if syn == nil {
			row.hlOpenComment = false
			return
		}

		prevSep := true
		var inString byte
		inComment := row.idx > 0 && row.idx-1 < len(e.rows) && e.rows[row.idx-1].hlOpenComment

		render := row.render
		scs := syn.singlelineCommentStart
		mcs := syn.multilineCommentStart
		mce := syn.multilineCommentEnd

		i := 0
	scan:
		for i < len(render) {
			c := render[i]
			var prevHl Highlight
			if i > 0 {
				prevHl = row.hl[i-1]
			}

			if inString == 0 && !inComment && scs != "" && hasPrefixAt(render, i, scs) {
				for j := i; j < len(render); j++ {
					row.hl[j] = HLComment
				}
				break scan
			}

			if inString == 0 && mcs != "" && mce != "" {
				if inComment {
					row.hl[i] = HLMultiLineComment
					if hasPrefixAt(render, i, mce) {
						for j := 0; j < len(mce) && i+j < len(render); j++ {
							row.hl[i+j] = HLMultiLineComment
						}
						inComment = false
						i += len(mce)
						prevSep = true
						continue
					}
					i++
					continue
				} else if hasPrefixAt(render, i, mcs) {
					inComment = true
					for j := 0; j < len(mcs) && i+j < len(render); j++ {
						row.hl[i+j] = HLMultiLineComment
					}
					i += len(mcs)
					continue
				}
			}

			if syn.flags&highlightStrings != 0 {
				if inString != 0 {
					row.hl[i] = HLString
					if c == '\\' && i+1 < len(render) {
						row.hl[i+1] = HLString
						i += 2
						continue
					}
					if c == inString {
						inString = 0
					}
					prevSep = true
					i++
					continue
				}
				if c == '"' || c == '\'' {
					inString = c
					row.hl[i] = HLString
					i++
					continue
				}
			}

			if syn.flags&highlightNumbers != 0 {
				if (isDigit(c) && (prevSep || prevHl == HLNumber)) || (c == '.' && prevHl == HLNumber) {
					row.hl[i] = HLNumber
					prevSep = false
					i++
					continue
				}
			}

			if prevSep {
				// Per spec §4.3 rule 5, a keyword carrying the trailing
				// "|" marker (kept here as the secondary bool rather than
				// a literal suffix) paints as Keyword1; an unmarked
				// keyword paints as Keyword2. Scenario 4 in spec §8
				// ("int" -> Keyword1) fixes this mapping.
				if kw, ok := matchKeyword(render, i, syn.keywords); ok {
					attr := HLKeyword2
					if kw.secondary {
						attr = HLKeyword1
					}
					for k := 0; k < len(kw.word); k++ {
						row.hl[i+k] = attr
					}
					i += len(kw.word)
					prevSep = false
					continue
				}
			}

			prevSep = isSeparator(c)
			i++
		}

		changed := row.hlOpenComment != inComment
		row.hlOpenComment = inComment

		if !changed || row.idx+1 >= len(e.rows) {
			return
		}
		row = &e.rows[row.idx+1]
	}
}

func hasPrefixAt(s []byte, i int, prefix string) bool {
	if i+len(prefix) > len(s) {
		return false
	}
	return string(s[i:i+len(prefix)]) == prefix
}

// matchKeyword implements spec §4.3 rule 5: the keyword must match at i
// and be followed by a separator (or end of render).
func matchKeyword(render []byte, i int, keywords []keyword) (keyword, bool) {
	for _, kw := range keywords {
		n := len(kw.word)
		if !hasPrefixAt(render, i, kw.word) {
			continue
		}
		if i+n < len(render) && !isSeparator(render[i+n]) {
			continue
		}
		return kw, true
	}
	return keyword{}, false
}

// syntaxColor implements the color mapping of spec §4.8.
func syntaxColor(h Highlight, palette Palette) int {
	switch h {
	case HLComment, HLMultiLineComment:
		return palette.Comment
	case HLKeyword1:
		return palette.Keyword1
	case HLKeyword2:
		return palette.Keyword2
	case HLString:
		return palette.String
	case HLNumber:
		return palette.Number
	case HLMatch:
		return palette.Match
	default:
		return ansiColorDefault
	}
}

// selectSyntax binds e.syntax by filename per spec §4.3 ("Syntax binding
// selection"): a leading-dot pattern matches the file extension, any
// other pattern substring-matches the whole filename. First match wins. A
// change rescans all rows.
func (e *Editor) selectSyntax() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	ext := ""
	if dot := strings.LastIndex(e.filename, "."); dot != -1 {
		ext = e.filename[dot:]
	}

	for i := range builtinSyntaxes {
		syn := &builtinSyntaxes[i]
		for _, pattern := range syn.filematch {
			isExt := strings.HasPrefix(pattern, ".")
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(e.filename, pattern)) {
				e.syntax = syn
				for j := range e.rows {
					e.rows[j].updateSyntax(e)
				}
				return
			}
		}
	}
}
