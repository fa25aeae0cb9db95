package bubble_adapter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/nrjais/icedit/core"
)

type Theme struct {
	StatusLineStyle        lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	SelectionStyle         lipgloss.Style
	CursorStyle            lipgloss.Style
	MatchStyle             lipgloss.Style
}

var DefaultTheme = Theme{
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(4).Align(lipgloss.Right),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
	CursorStyle:            lipgloss.NewStyle().Reverse(true),
	MatchStyle:             lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
}

// Model is a Bubble Tea component wrapping an editor. Key presses go
// through a shortcut table and come out as editor commands; editor events
// surface as status and error messages.
type Model struct {
	editor    *editor.Editor
	shortcuts *editor.ShortcutTable
	viewport  viewport.Model

	width  int
	height int

	showLineNumbers bool
	showStatusLine  bool
	theme           Theme

	// StatusLineFunc overrides the default status line when set.
	StatusLineFunc func() string

	highlighter Highlighter

	err     error
	message string

	searchPattern string
	matches       []editor.Position

	isFocused bool
}

// Highlighter colors one line of text. The adapter treats it as optional;
// without one, lines render in the terminal's default style.
type Highlighter interface {
	StyleForRange(line int, lines []string, start, end int) lipgloss.Style
	Invalidate()
}

type messageMsg string

type errMsg error

type clearMsg struct{}

// QuitMsg asks the host program to exit.
type QuitMsg struct{}

func (m *Model) dispatchClearMsg() tea.Cmd {
	return tea.Tick(time.Second*3, func(time.Time) tea.Msg {
		return clearMsg{}
	})
}

type atottoClipboard struct{}

func (c *atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *atottoClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

func New(width, height int) Model {
	ed := editor.New()
	ed.SetClipboard(&atottoClipboard{})

	m := Model{
		editor:          ed,
		shortcuts:       editor.DefaultShortcuts(),
		viewport:        viewport.New(width, height-1),
		showLineNumbers: true,
		showStatusLine:  true,
		theme:           DefaultTheme,
	}
	m.SetSize(width, height)
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	if m.showStatusLine {
		m.viewport.Height = height - 1
	}
}

// SetContent replaces the document.
func (m *Model) SetContent(content string) {
	m.editor = editor.WithText(content)
	m.editor.SetClipboard(&atottoClipboard{})
	if m.highlighter != nil {
		m.highlighter.Invalidate()
	}
}

// WithTheme sets a custom theme.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// WithShortcuts replaces the key bindings.
func (m *Model) WithShortcuts(table *editor.ShortcutTable) {
	m.shortcuts = table
}

// WithHighlighter installs a syntax highlighter.
func (m *Model) WithHighlighter(h Highlighter) {
	m.highlighter = h
}

// HideLineNumbers controls the line number gutter.
func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
}

// HideStatusLine controls the status line at the bottom.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
	m.SetSize(m.width, m.height)
}

// Content returns the current document text.
func (m *Model) Content() string {
	return m.editor.Buffer().Text()
}

// HasChanges reports whether the document changed since it was loaded.
func (m *Model) HasChanges() bool {
	return m.editor.Buffer().IsModified()
}

// Editor returns the underlying editor.
func (m *Model) Editor() *editor.Editor {
	return m.editor
}

// Search runs a find and remembers the matches for highlighting.
func (m *Model) Search(pattern string) int {
	m.searchPattern = pattern
	resp := m.editor.Dispatch(editor.Find{Pattern: pattern})
	if sr, ok := resp.(editor.SearchResults); ok {
		m.matches = sr.Matches
	} else {
		m.matches = nil
	}
	return len(m.matches)
}

// ClearSearch drops the match highlighting.
func (m *Model) ClearSearch() {
	m.searchPattern = ""
	m.matches = nil
}

// Focus routes key events to the editor.
func (m *Model) Focus() {
	m.isFocused = true
}

// Blur stops routing key events to the editor.
func (m *Model) Blur() {
	m.isFocused = false
}

func (m *Model) IsFocused() bool {
	return m.isFocused
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorEvents()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}

		keyEvent, ok := convertBubbleKey(msg)
		if !ok {
			break
		}
		cmd, ok := m.shortcuts.Translate(keyEvent)
		if !ok {
			break
		}

		switch resp := m.editor.Dispatch(cmd).(type) {
		case editor.Error:
			cmds = append(cmds, func() tea.Msg {
				return errMsg(fmt.Errorf("%s", resp.Message))
			})
		case editor.TextChanged:
			if m.highlighter != nil {
				m.highlighter.Invalidate()
			}
			if m.searchPattern != "" {
				m.matches = m.editor.Buffer().Find(m.searchPattern)
			}
		}

		m.scrollCursorIntoView()

	case messageMsg:
		m.message = string(msg)
		m.err = nil
		cmds = append(cmds, m.dispatchClearMsg())

	case errMsg:
		m.message = ""
		m.err = msg
		cmds = append(cmds, m.dispatchClearMsg())

	case clearMsg:
		m.message = ""
		m.err = nil

	case QuitMsg:
		return m, tea.Quit
	}

	cmds = append(cmds, m.listenForEditorEvents())

	var viewportCmd tea.Cmd
	m.viewport, viewportCmd = m.viewport.Update(msg)
	cmds = append(cmds, viewportCmd)

	m.viewport.SetContent(m.renderContent())
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	content := m.viewport.View()
	if !m.showStatusLine {
		return content
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, m.getStatusLine())
}

// scrollCursorIntoView keeps the cursor's line inside the viewport.
func (m *Model) scrollCursorIntoView() {
	line := m.editor.CursorPosition().Line
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *Model) getStatusLine() string {
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	var left string
	switch {
	case m.err != nil:
		left = m.theme.ErrorStyle.Render(m.err.Error())
	case m.message != "":
		left = m.theme.MessageStyle.Render(m.message)
	case m.HasChanges():
		left = m.theme.StatusLineStyle.Render(" [+] ")
	}

	pos := m.editor.CursorPosition()
	right := fmt.Sprintf("%d:%d  %d lines ",
		pos.Line+1, pos.Column+1, m.editor.Buffer().LineCount())
	if len(m.matches) > 0 {
		right = fmt.Sprintf("%d matches  %s", len(m.matches), right)
	}

	gap := m.width - (lipgloss.Width(left) + lipgloss.Width(right))
	return left + m.theme.StatusLineStyle.Render(strings.Repeat(" ", max(0, gap))+right)
}

func (m *Model) listenForEditorEvents() tea.Cmd {
	return func() tea.Msg {
		switch ev := (<-m.editor.Events()).(type) {
		case editor.StatusEvent:
			return messageMsg(ev.Message)
		case editor.ErrorEvent:
			return errMsg(fmt.Errorf("%s", ev.Message))
		}
		return nil
	}
}

func (m *Model) lineNumber(line, current int) string {
	if !m.showLineNumbers {
		return ""
	}
	label := strconv.Itoa(line + 1)
	if line == current {
		return m.theme.CurrentLineNumberStyle.Render(label) + " "
	}
	return m.theme.LineNumberStyle.Render(label) + " "
}
