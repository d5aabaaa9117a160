package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cjl525/presetpull/pkg/install"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// destEntry is one candidate install destination in the picker.
type destEntry struct {
	dataDir string // the BakkesMod data folder
	dest    string // data folder plus the plugin subfolder
	exists  bool   // whether the data folder is present
}

// DestListModel is the bubbletea model for interactive install-destination
// selection. Only candidates whose data folder exists can be selected.
type DestListModel struct {
	Entries  []destEntry
	Cursor   int
	Selected string
}

// NewDestListModel builds the picker from candidate data directories.
func NewDestListModel(dataDirs []string) DestListModel {
	entries := make([]destEntry, 0, len(dataDirs))
	for _, dir := range dataDirs {
		info, err := os.Stat(dir)
		entries = append(entries, destEntry{
			dataDir: dir,
			dest:    filepath.Join(dir, install.Subfolder),
			exists:  err == nil && info.IsDir(),
		})
	}
	return DestListModel{Entries: entries}
}

func (m DestListModel) Init() tea.Cmd {
	return nil
}

func (m DestListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			if !entry.exists {
				return m, nil
			}
			m.Selected = entry.dest
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DestListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Install Destination"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, entry := range m.Entries {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		var status string
		if entry.exists {
			status = StyleSuccess.Render("*")
		} else {
			status = StyleWarning.Render("!")
		}

		line := fmt.Sprintf("%s%s %s", cursor, status, entry.dest)

		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case !entry.exists:
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s found   %s data folder missing\n",
		StyleSuccess.Render("*"), StyleWarning.Render("!")))

	return b.String()
}
