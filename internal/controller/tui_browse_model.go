package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const (
	defaultMarker = "★"
	nameWidth     = 24
	// title, summary, footer, border and headers around the list
	browseChrome = 9
)

// Single-line delegate for target list items.
type targetDelegate struct {
	offset int
}

func (d targetDelegate) Height() int  { return 1 }
func (d targetDelegate) Spacing() int { return 0 }
func (d targetDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d targetDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	target, ok := item.(targetItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var markerStyle, nameStyle, outputStyle lipgloss.Style

	var displayOutput string

	width := m.Width() - nameWidth - 4 // marker (2) + spacing (2)

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		markerStyle = selected.Width(2)
		nameStyle = selected.Width(nameWidth)
		outputStyle = selected

		displayOutput = animateScroll(target.output, width, d.offset)
	} else {
		markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(2)
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(nameWidth)
		outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

		if target.output == "-" {
			outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
		}

		displayOutput = truncateToWidth(target.output, width)
	}

	marker := ""
	if target.isDefault {
		marker = defaultMarker
	}

	line := fmt.Sprintf("%s%s  %s",
		markerStyle.Render(marker),
		nameStyle.Render(truncateToWidth(target.name, nameWidth)),
		outputStyle.Render(displayOutput),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browseModel lists the targets of one Makefile.
type browseModel struct {
	width        int
	height       int
	source       string
	targetList   list.Model
	delegate     targetDelegate
	total        int
	withOutput   int
	defaultName  string
	rendered     bool
	animOffset   int
	lastSelected int
}

func newBrowseModel() browseModel {
	delegate := targetDelegate{}
	targetList := list.New([]list.Item{}, delegate, 80, 20)
	targetList.SetShowPagination(false)
	targetList.SetShowFilter(true)
	targetList.SetShowHelp(false)
	targetList.SetShowTitle(false)
	targetList.SetShowStatusBar(false)
	targetList.FilterInput.Placeholder = "Filter by target…"

	return browseModel{
		targetList:   targetList,
		delegate:     delegate,
		defaultName:  "-",
		lastSelected: -1,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.targetList.SetWidth(m.width)

	case tickMsg:
		if m.targetList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.targetList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.targetList.FilterState() == list.Filtering && msg.String() == "q" {
				break
			}

			return m, tea.Quit
		}

		m.targetList, cmd = m.targetList.Update(msg)

		// Restart the scroll animation when the selection moves.
		if m.targetList.Index() != m.lastSelected {
			m.lastSelected = m.targetList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.targetList.SetDelegate(m.delegate)
		}

		return m, cmd

	case targetsMsg:
		m = m.handleTargetsMsg(msg)
	}

	return m, cmd
}

func (m browseModel) handleTargetsMsg(msg targetsMsg) browseModel {
	m.source = string(msg.source)
	m.total = len(msg.targets)
	m.withOutput = 0
	m.defaultName = defaultName(msg.targets)

	items := make([]list.Item, 0, len(msg.targets))
	for _, target := range msg.targets {
		if target.HasOutput() {
			m.withOutput++
		}

		items = append(items, newTargetItem(target))
	}

	m.targetList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

// needsPagination reports whether the list is too tall to print in one go.
// An unknown height never paginates.
func (m browseModel) needsPagination() bool {
	return m.height > 0 && m.total+browseChrome > m.height
}

func (m browseModel) View() string {
	if !m.rendered {
		return "Loading targets…\n"
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTable(),
		footer,
	)
}

// staticView renders every target without the interactive footer.
func (m browseModel) staticView() string {
	if !m.rendered {
		return ""
	}

	m.height = m.total + browseChrome
	m.targetList.SetShowFilter(false)

	if m.width <= 0 {
		m.width = 80
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTable(),
	) + "\n"
}

func (m browseModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Makefile Targets · " + m.source)

	summary := summaryStyle.Render(fmt.Sprintf(
		"Targets: %s   Default: %s   With output: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(m.defaultName),
		accentStyle.Render(fmt.Sprintf("%d", m.withOutput)),
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, summary)
}

func (m browseModel) renderTable() string {
	listHeight := m.height - browseChrome
	if listHeight < 5 {
		listHeight = 5
	}

	// margin, border and padding on both sides
	listWidth := m.width - 6
	if listWidth < nameWidth+10 {
		listWidth = nameWidth + 10
	}

	m.targetList.SetHeight(listHeight)
	m.targetList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("  %-*s  %s", nameWidth, "Target", "Output"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.targetList.View(),
		),
	)
}
