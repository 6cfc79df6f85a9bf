// Package statsui provides the Bubble Tea viewer for one analysis.
package statsui

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordstat/internal/analyzer"
	"github.com/verte-zerg/wordstat/internal/stats"
)

const (
	tabOverview = iota
	tabTopWords
	tabLongest
	tabDensity
	tabText
)

const (
	cardsPerRow    = 4
	minTableHeight = 3
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats viewer.
type Model struct {
	stats  analyzer.Stats
	source string
	text   []styledRune

	tabs      []string
	activeTab int
	viewports map[int]viewport.Model
	tables    map[int]table.Model

	width  int
	height int
}

// NewModel constructs a viewer for st, labelled with source. text is shown on
// the Text tab with top words highlighted.
func NewModel(st analyzer.Stats, source, text string) *Model {
	m := &Model{
		stats:     st,
		source:    source,
		text:      buildStyledRunes(text, topWordSet(st)),
		tabs:      []string{"Overview", "Top Words", "Longest Words", "Density", "Text"},
		viewports: map[int]viewport.Model{},
		tables:    map[int]table.Model{},
	}
	m.viewports[tabOverview] = viewport.New(0, 0)
	m.viewports[tabLongest] = viewport.New(0, 0)
	m.viewports[tabText] = viewport.New(0, 0)
	m.tables[tabTopWords] = newTable(topWordsData(st))
	m.tables[tabDensity] = newTable(densityData(st))
	m.renderTabContents()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		}
		if tbl, ok := m.tables[m.activeTab]; ok {
			var cmd tea.Cmd
			tbl, cmd = tbl.Update(msg)
			m.tables[m.activeTab] = tbl
			return m, cmd
		}
		vp := m.viewports[m.activeTab]
		var cmd tea.Cmd
		vp, cmd = vp.Update(msg)
		m.viewports[m.activeTab] = vp
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), m.renderHeader())
	var body string
	if tbl, ok := m.tables[m.activeTab]; ok {
		body = tbl.View()
	} else {
		vp := m.viewports[m.activeTab]
		body = vp.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())
}

func (m *Model) moveTab(delta int) {
	n := len(m.tabs)
	m.activeTab = (m.activeTab + delta + n) % n
	for idx, tbl := range m.tables {
		if idx == m.activeTab {
			tbl.Focus()
		} else {
			tbl.Blur()
		}
		m.tables[idx] = tbl
	}
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight int) {
	headerHeight = lipgloss.Height(m.renderTabs()) + lipgloss.Height(m.renderHeader())
	footerHeight := lipgloss.Height(m.renderFooter())
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < minTableHeight {
		bodyHeight = minTableHeight
	}
	return headerHeight, bodyHeight
}

func (m *Model) updateLayout() {
	_, bodyHeight := m.layoutHeights()
	for idx, vp := range m.viewports {
		vp.Width = m.width
		vp.Height = bodyHeight
		m.viewports[idx] = vp
	}
	for idx, tbl := range m.tables {
		tbl.SetWidth(m.width)
		tbl.SetHeight(bodyHeight)
		m.tables[idx] = tbl
	}
}

func (m *Model) renderTabContents() {
	overview := m.viewports[tabOverview]
	overview.SetContent(renderOverview(m.stats, m.width))
	m.viewports[tabOverview] = overview

	longest := m.viewports[tabLongest]
	longest.SetContent(renderLongest(m.stats))
	m.viewports[tabLongest] = longest

	text := m.viewports[tabText]
	text.SetContent(wrapStyledRunes(m.text, m.width))
	m.viewports[tabText] = text
}

func (m *Model) renderTabs() string {
	rendered := make([]string, len(m.tabs))
	for i, name := range m.tabs {
		if i == m.activeTab {
			rendered[i] = activeNavStyle.Render(name)
		} else {
			rendered[i] = inactiveNavStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderHeader() string {
	source := m.source
	if source == "" {
		source = "<stdin>"
	}
	return headerStyle.Render(fmt.Sprintf("Source: %s", source))
}

func (m *Model) renderFooter() string {
	return headerStyle.Render("←/→ switch tabs • ↑/↓ scroll • q quit")
}

func renderOverview(st analyzer.Stats, width int) string {
	cards := []string{
		metricCard("Words", fmt.Sprintf("%d", st.Words)),
		metricCard("Unique", fmt.Sprintf("%d", st.UniqueWords)),
		metricCard("Sentences", fmt.Sprintf("%d", st.Sentences)),
		metricCard("Paragraphs", fmt.Sprintf("%d", st.Paragraphs)),
		metricCard("Characters", fmt.Sprintf("%d", st.Characters)),
		metricCard("No spaces", fmt.Sprintf("%d", st.CharactersNoSpaces)),
		metricCard("Avg length", fmt.Sprintf("%.2f", st.AvgWordLength)),
		metricCard("Reading", stats.FormatDuration(st.ReadingTimeSeconds)),
	}
	perRow := cardsPerRow
	if width > 0 {
		cardWidth := lipgloss.Width(cards[0])
		if cardWidth > 0 && width/cardWidth < perRow {
			perRow = maxInt(1, width/cardWidth)
		}
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := minInt(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func metricCard(label, value string) string {
	content := lipgloss.JoinVertical(lipgloss.Left, cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Width(16).Render(content)
}

func renderLongest(st analyzer.Stats) string {
	if len(st.LongestWords) == 0 {
		return tableMutedStyle.Render("No words found.")
	}
	var b strings.Builder
	for i, word := range st.LongestWords {
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1, word, tableMutedStyle.Render(fmt.Sprintf("(%d)", utf8.RuneCountInString(word))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func newTable(cols []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(minTableHeight),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#5A4A2A")).
		Bold(false)
	return styles
}

func topWordsData(st analyzer.Stats) ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Word", Width: wordColumnWidth(topWordNames(st))},
		{Title: "Count", Width: 7},
		{Title: "Density", Width: 9},
	}
	rows := make([]table.Row, 0, len(st.TopWords))
	for i, wc := range st.TopWords {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			wc.Word,
			fmt.Sprintf("%d", wc.Count),
			fmt.Sprintf("%.2f%%", st.Density[wc.Word]*100),
		})
	}
	return cols, rows
}

func densityData(st analyzer.Stats) ([]table.Column, []table.Row) {
	words := make([]string, 0, len(st.Density))
	for w := range st.Density {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		di, dj := st.Density[words[i]], st.Density[words[j]]
		if di == dj {
			return words[i] < words[j]
		}
		return di > dj
	})
	cols := []table.Column{
		{Title: "Word", Width: wordColumnWidth(words)},
		{Title: "Density", Width: 9},
		{Title: "Count", Width: 7},
	}
	rows := make([]table.Row, 0, len(words))
	for _, w := range words {
		d := st.Density[w]
		rows = append(rows, table.Row{
			w,
			fmt.Sprintf("%.2f%%", d*100),
			fmt.Sprintf("%d", int(d*float64(st.Words)+0.5)),
		})
	}
	return cols, rows
}

func topWordNames(st analyzer.Stats) []string {
	names := make([]string, len(st.TopWords))
	for i, wc := range st.TopWords {
		names[i] = wc.Word
	}
	return names
}

func wordColumnWidth(words []string) int {
	width := 12
	for _, w := range words {
		if n := lipgloss.Width(w); n > width {
			width = n
		}
	}
	return minInt(width, 40)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
