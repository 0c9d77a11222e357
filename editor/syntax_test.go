package editor

import "testing"

func TestKeywordVsIdentifierHighlight(t *testing.T) {
	e, _ := newTestEditor(t)
	e.filename = "test.c"
	e.selectSyntax()
	e.insertRow(0, []byte("int x; integer y;"))

	row := &e.rows[0]

	// "int" is a secondary/type keyword: per spec §4.3 rule 5 (and scenario
	// 4 of spec §8) it paints as Keyword1, not Keyword2.
	for i := 0; i < 3; i++ {
		if row.hl[i] != HLKeyword1 {
			t.Fatalf("hl[%d] = %v, want HLKeyword1 (int)", i, row.hl[i])
		}
	}

	// "integer" is not a keyword at all (it's a longer identifier that
	// merely starts with "int"); matchKeyword requires a separator right
	// after the match, so it must NOT be colored as a keyword.
	identStart := len("int x; ")
	for i := identStart; i < identStart+len("integer"); i++ {
		if row.hl[i] == HLKeyword1 || row.hl[i] == HLKeyword2 {
			t.Fatalf("hl[%d] = %v, want plain (identifier \"integer\")", i, row.hl[i])
		}
	}
}

func TestMultiLineCommentCascade(t *testing.T) {
	e, _ := newTestEditor(t)
	e.filename = "test.c"
	e.selectSyntax()

	e.insertRow(0, []byte("/* a"))
	e.insertRow(1, []byte("b"))
	e.insertRow(2, []byte("*/ c"))

	if !e.rows[0].hlOpenComment {
		t.Fatalf("row 0 should leave a comment open")
	}
	if !e.rows[1].hlOpenComment {
		t.Fatalf("row 1 should still be inside the comment")
	}
	if e.rows[2].hlOpenComment {
		t.Fatalf("row 2 should close the comment")
	}
	for i, h := range e.rows[1].hl {
		if h != HLMultiLineComment {
			t.Fatalf("row 1 hl[%d] = %v, want HLMultiLineComment", i, h)
		}
	}

	// Deleting the opening row must rescan row "b", which now has no row
	// above it, and cascade correctly: with no opening "/*" left, nothing
	// should still read as inside a multi-line comment.
	e.deleteRow(0)

	if e.rows[0].hlOpenComment {
		t.Fatalf("row 0 (\"b\") should no longer be inside a comment")
	}
	for i := range e.rows {
		if len(e.rows[i].hl) != len(e.rows[i].render) {
			t.Fatalf("row %d: len(hl)=%d len(render)=%d (R1 violated)", i, len(e.rows[i].hl), len(e.rows[i].render))
		}
	}
}

func TestSelectSyntaxByExtension(t *testing.T) {
	e, _ := newTestEditor(t)
	e.filename = "main.go"
	e.selectSyntax()
	if e.syntax == nil || e.syntax.Filetype != "go" {
		t.Fatalf("selectSyntax() did not bind the go rule set")
	}
}

func TestSelectSyntaxNoMatch(t *testing.T) {
	e, _ := newTestEditor(t)
	e.filename = "README.txt"
	e.selectSyntax()
	if e.syntax != nil {
		t.Fatalf("selectSyntax() bound %v for an unmatched filename", e.syntax.Filetype)
	}
}
