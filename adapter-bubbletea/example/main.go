package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	adapter "github.com/nrjais/icedit/adapter-bubbletea"
	"github.com/nrjais/icedit/adapter-bubbletea/highlighter"
)

type Model struct {
	editor adapter.Model
	file   string
}

func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetSize(msg.Width-4, msg.Height-2)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			if err := os.WriteFile(m.file, []byte(m.editor.Content()), 0644); err != nil {
				log.Printf("save failed: %v", err)
			}
			return m, nil
		}

	case adapter.QuitMsg:
		return m, tea.Quit
	}

	editorModel, cmd := m.editor.Update(msg)
	m.editor = editorModel.(adapter.Model)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.editor.View())
}

func main() {
	file := "example.go"
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	textEditor := adapter.New(80, 24)
	textEditor.Focus()
	textEditor.WithHighlighter(highlighter.New("go", "catppuccin-mocha"))

	if content, err := os.ReadFile(file); err == nil {
		textEditor.SetContent(string(content))
	}

	m := Model{
		editor: textEditor,
		file:   file,
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("error running program: %v", err)
	}
}
