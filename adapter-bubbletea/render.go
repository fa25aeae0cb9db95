package bubble_adapter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	editor "github.com/nrjais/icedit/core"
)

// renderContent draws every buffer line with its gutter, selection,
// search match, and cursor styling. The bubbles viewport handles vertical
// slicing, so this renders the full document.
func (m *Model) renderContent() string {
	buf := m.editor.Buffer()
	lineCount := buf.LineCount()
	cursor := m.editor.CursorPosition()

	lines := make([]string, 0, lineCount)
	for i := range lineCount {
		lines = append(lines, buf.LineText(i))
	}

	var out strings.Builder
	for i, line := range lines {
		out.WriteString(m.lineNumber(i, cursor.Line))
		out.WriteString(m.renderLine(i, line, lines, cursor))
		if i < lineCount-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// renderLine styles one line cluster by cluster. Columns are counted in
// characters to line up with editor positions; widths come from
// go-runewidth so wide characters stay aligned.
func (m *Model) renderLine(lineIdx int, line string, lines []string, cursor editor.Position) string {
	var out strings.Builder
	col := 0    // character column, matching editor positions
	visual := 0 // rendered cell column, for tab stops

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		cluster := gr.Str()
		width := len(gr.Runes())

		cell := cluster
		if cluster == "\t" {
			stop := (visual/editor.TabWidth + 1) * editor.TabWidth
			cell = strings.Repeat(" ", stop-visual)
		}

		out.WriteString(m.styleCell(lineIdx, col, width, lines, cursor).Render(cell))
		col += width
		visual += runewidth.StringWidth(cell)
	}

	// Cursor past the last character renders as a block on the implied
	// trailing cell.
	if lineIdx == cursor.Line && col == cursor.Column {
		out.WriteString(m.theme.CursorStyle.Render(" "))
	}
	return out.String()
}

// styleCell picks the style for the characters [col, col+width) of a
// line. Cursor wins over selection, selection over search matches, and
// matches over syntax highlighting.
func (m *Model) styleCell(lineIdx, col, width int, lines []string, cursor editor.Position) lipgloss.Style {
	pos := editor.Position{Line: lineIdx, Column: col}

	if lineIdx == cursor.Line && col == cursor.Column {
		return m.theme.CursorStyle
	}
	// Contains includes the selection end, but the end position names the
	// first unselected character; don't paint it.
	if sel := m.editor.Selection(); sel != nil && sel.Contains(pos) && pos != sel.End {
		return m.theme.SelectionStyle
	}
	if m.isMatchCell(pos) {
		return m.theme.MatchStyle
	}
	if m.highlighter != nil {
		return m.highlighter.StyleForRange(lineIdx, lines, col, col+width)
	}
	return lipgloss.NewStyle()
}

// isMatchCell reports whether a position falls inside a remembered search
// match.
func (m *Model) isMatchCell(pos editor.Position) bool {
	if m.searchPattern == "" {
		return false
	}
	patLen := len([]rune(m.searchPattern))
	for _, match := range m.matches {
		if match.Line != pos.Line {
			continue
		}
		if pos.Column >= match.Column && pos.Column < match.Column+patLen {
			return true
		}
	}
	return false
}
