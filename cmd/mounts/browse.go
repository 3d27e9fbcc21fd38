package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/naurium/icarus-mount-editor/editor"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F7F3F")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F7F3F"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseState int

const (
	stateMountList browseState = iota
	stateMountDetail
	stateEditField
)

// fieldKind selects how an edited detail row is written back.
type fieldKind int

const (
	fieldName fieldKind = iota
	fieldLevel
	fieldBlobPath
)

type detailField struct {
	label    string
	kind     fieldKind
	path     string // blob property path for fieldBlobPath
	editable bool
}

var detailFields = []detailField{
	{label: "Name", kind: fieldName, editable: true},
	{label: "Level", kind: fieldLevel, editable: true},
	{label: "Experience", kind: fieldBlobPath, path: "Experience", editable: true},
	{label: "Health", kind: fieldBlobPath, path: "CharacterRecord.CurrentHealth", editable: true},
	{label: "Stamina", kind: fieldBlobPath, path: "Stamina", editable: true},
	{label: "AI Setup", kind: fieldBlobPath, path: "AISetupRowName"},
	{label: "Actor Class", kind: fieldBlobPath, path: "ActorClassName"},
	{label: "Object FName", kind: fieldBlobPath, path: "ObjectFName"},
}

type browseModel struct {
	editor   *editor.Editor
	err      error
	status   string
	input    textinput.Model
	selected int
	field    int
	state    browseState
}

type loadedMsg struct {
	err    error
	editor *editor.Editor
}

type savedMsg struct {
	err    error
	backup string
}

func newBrowseModel() *browseModel {
	return &browseModel{state: stateMountList}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *browseModel) loadFile() tea.Msg {
	e, err := openEditor()
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{editor: e}
}

func (m *browseModel) saveFile() tea.Msg {
	backup, err := m.editor.Save("", !flagNoBackup)
	return savedMsg{err: err, backup: backup}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateEditField {
			return m.updateEdit(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateMountList && m.selected > 0 {
				m.selected--
			}
			if m.state == stateMountDetail && m.field > 0 {
				m.field--
			}

		case "down", "j":
			if m.state == stateMountList && m.editor != nil && m.selected < len(m.editor.Mounts())-1 {
				m.selected++
			}
			if m.state == stateMountDetail && m.field < len(detailFields)-1 {
				m.field++
			}

		case "enter":
			switch m.state {
			case stateMountList:
				if m.editor != nil && len(m.editor.Mounts()) > 0 {
					m.state = stateMountDetail
					m.field = 0
					m.status = ""
				}
			case stateMountDetail:
				f := detailFields[m.field]
				if f.editable {
					m.prepareInput(f)
					m.state = stateEditField
				}
			}

		case "esc":
			if m.state == stateMountDetail {
				m.state = stateMountList
				m.status = ""
			}

		case "s":
			if m.editor != nil && m.editor.Modified() {
				return m, m.saveFile
			}
			m.status = "nothing to save"
		}

	case loadedMsg:
		m.err = msg.err
		m.editor = msg.editor

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			break
		}
		m.status = "saved"
		if msg.backup != "" {
			m.status = "saved (backup " + msg.backup + ")"
		}
	}
	return m, nil
}

func (m *browseModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMountDetail
		return m, nil
	case "enter":
		m.applyEdit()
		m.state = stateMountDetail
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *browseModel) prepareInput(f detailField) {
	ti := textinput.New()
	ti.Prompt = f.label + ": "
	ti.SetValue(m.fieldValue(f))
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *browseModel) applyEdit() {
	f := detailFields[m.field]
	mount := m.editor.Mounts()[m.selected]
	value := strings.TrimSpace(m.input.Value())

	var err error
	switch f.kind {
	case fieldName:
		err = m.editor.Rename(mount.Index, value)
	case fieldLevel:
		var level int
		if level, err = strconv.Atoi(value); err == nil {
			err = m.editor.SetLevel(mount.Index, level)
		}
	case fieldBlobPath:
		err = m.editor.SetValue(mount.Index, f.path, parseValue(value))
	}
	if err != nil {
		m.status = errStyle.Render(err.Error())
		return
	}
	m.status = fmt.Sprintf("%s updated (unsaved)", f.label)
}

func (m *browseModel) fieldValue(f detailField) string {
	mount := m.editor.Mounts()[m.selected]
	switch f.kind {
	case fieldName:
		return mount.Name()
	case fieldLevel:
		return strconv.Itoa(mount.Level())
	default:
		if p := mount.Properties.Find(f.path); p != nil {
			return p.ValueString()
		}
		return ""
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.editor == nil {
		return "Loading save file..."
	}

	var b strings.Builder
	title := "Icarus Mounts"
	if m.editor.Modified() {
		title += " *"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render(m.editor.Path()))
	b.WriteString("\n\n")

	switch m.state {
	case stateMountList:
		if len(m.editor.Mounts()) == 0 {
			b.WriteString("No mounts in save file.\n")
			break
		}
		for i, mount := range m.editor.Mounts() {
			info := mount.Info()
			line := fmt.Sprintf("%s (%s, level %d)", info.Name, info.Type, info.Level)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • s save • q quit"))

	case stateMountDetail:
		mount := m.editor.Mounts()[m.selected]
		b.WriteString(labelStyle.Render(mount.Name()))
		b.WriteString(helpStyle.Render(fmt.Sprintf("  (%s)", mount.TypeName())))
		b.WriteString("\n\n")
		for i, f := range detailFields {
			line := fmt.Sprintf("%-14s %s", f.label, valueStyle.Render(m.fieldValue(f)))
			if !f.editable {
				line = fmt.Sprintf("%-14s %s", f.label, helpStyle.Render(m.fieldValue(f)))
			}
			if i == m.field {
				b.WriteString(selectedStyle.Render("> "))
				b.WriteString(line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • s save • esc back"))

	case stateEditField:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and edit mounts interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
