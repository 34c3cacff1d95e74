// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const outputLines = 6

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	commandInput textinput.Model
	treeList     list.Model
	treeViewport viewport.Model

	interp   *Interpreter
	renderer *treeRenderer

	// State
	focusIndex int // 0: input, 1: tree list
	showHelp   bool
	output     []string
	status     string
	statusErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles for a terminal in the given mode
func NewStyles(mode TerminalMode) *Styles {
	p := paletteFor(mode)
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.guide),
		Title: lipgloss.NewStyle().
			Foreground(p.title).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.muted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(p.ok).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(p.bad).
			Bold(true),
	}
}

// treeItem is one session in the tree list
type treeItem struct {
	name string
	size int
}

func (i treeItem) FilterValue() string { return i.name }
func (i treeItem) Title() string       { return i.name }
func (i treeItem) Description() string { return fmt.Sprintf("%d keys", i.size) }

// InitialModel creates the initial model
func InitialModel(interp *Interpreter, renderer *treeRenderer) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30, delete 20, help..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	treeList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	treeList.SetShowTitle(false)
	treeList.SetShowHelp(false)
	treeList.SetFilteringEnabled(false)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		commandInput:    ti,
		treeList:        treeList,
		treeViewport:    viewport.New(0, 0),
		interp:          interp,
		renderer:        renderer,
		styles:          NewStyles(renderer.mode),
		glamourRenderer: glamourRenderer,
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshViewport()
			return m, nil
		case "ctrl+y":
			m.copyTree()
			return m, nil
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.commandInput.Focus()
			} else {
				m.commandInput.Blur()
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		}

		if m.focusIndex == 0 {
			return m.updateInput(msg)
		}
		return m.updateTreeList(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		line := strings.TrimSpace(m.commandInput.Value())
		m.commandInput.SetValue("")
		if line != "" {
			m.run(line)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) updateTreeList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if item, ok := m.treeList.SelectedItem().(treeItem); ok {
			m.run("use " + item.name)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.treeList, cmd = m.treeList.Update(msg)
	return m, cmd
}

// run executes a shell line and records its output
func (m *Model) run(line string) {
	out, err := m.interp.Exec(line)
	m.output = append(m.output, "avl> "+line)
	if err != nil {
		m.status, m.statusErr = err.Error(), true
		m.output = append(m.output, "error: "+err.Error())
	} else {
		m.status, m.statusErr = "", false
		if out != "" && !strings.HasPrefix(line, "show") {
			m.output = append(m.output, strings.Split(out, "\n")...)
		}
	}
	if len(m.output) > outputLines {
		m.output = m.output[len(m.output)-outputLines:]
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.interp.Current()
	names := m.interp.ws.Names()
	items := make([]list.Item, 0, len(names))
	selected := 0
	for i, name := range names {
		size := 0
		if s, ok := m.interp.ws.Lookup(name); ok {
			size = s.Tree.Len()
		}
		if name == m.interp.current {
			selected = i
		}
		items = append(items, treeItem{name: name, size: size})
	}
	m.treeList.SetItems(items)
	m.treeList.Select(selected)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if m.showHelp {
		helpTxt := shellHelpMarkdown()
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
				helpTxt = rendered
			}
		}
		m.treeViewport.SetContent(helpTxt)
		return
	}

	s := m.interp.Current()
	if s.Tree.Len() == 0 {
		m.treeViewport.SetContent("(empty tree)")
		return
	}
	m.treeViewport.SetContent(m.renderer.Render(s.Tree.Root()))
}

func (m *Model) copyTree() {
	s := m.interp.Current()
	if err := clipboard.WriteAll(s.Tree.String()); err != nil {
		m.status, m.statusErr = "clipboard: "+err.Error(), true
		return
	}
	m.status, m.statusErr = fmt.Sprintf("📋 Copied tree %q to clipboard", s.Name), false
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	leftWidth := (m.width * 3 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - outputLines - 8

	m.commandInput.Width = m.width - 10
	m.treeList.SetSize(leftWidth-2, bodyHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = bodyHeight - 2
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 20 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width * 3 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - outputLines - 8

	listStyle, listTitle := m.styles.BorderBlurred, " 🌲 Trees "
	if m.focusIndex == 1 {
		listStyle, listTitle = m.styles.BorderFocused, " 🌲 Trees (Active) "
	}
	listBox := listStyle.
		Width(leftWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(listTitle),
			m.treeList.View(),
		))

	treeTitle := fmt.Sprintf(" 🌳 %s (height %d) ", m.interp.current, m.interp.Current().Tree.Height())
	if m.showHelp {
		treeTitle = " 📖 Help "
	}
	treeBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeViewport.View(),
		))

	inputStyle := m.styles.BorderBlurred
	if m.focusIndex == 0 {
		inputStyle = m.styles.BorderFocused
	}
	inputBox := inputStyle.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			strings.Join(m.output, "\n"),
			m.commandInput.View(),
		))

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, listBox, treeBox),
		inputBox,
		status,
		m.renderShellHelp(),
	)
}

// renderShellHelp renders the key help footer
func (m Model) renderShellHelp() string {
	keys := []string{"enter", "tab", "ctrl+y", "f1", "esc"}
	descs := []string{"run / use tree", "switch focus", "copy tree", "show help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(interp *Interpreter, renderer *treeRenderer) error {
	program := tea.NewProgram(
		InitialModel(interp, renderer),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
