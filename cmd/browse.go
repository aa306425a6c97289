package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/adapters/client"
	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/services"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Launch a full-screen browser for the asset catalog.

Keyboard Shortcuts:
  ↑/k ↓/j     Move
  g / G       Jump to top / bottom
  /           Search by name
  tab         Cycle category filter
  s           Cycle sort key (name, size, date)
  r           Flip sort order
  y           Copy asset URL
  R           Reload catalog
  ?           Toggle help
  q           Quit`,
	RunE: runBrowse,
}

func init() {
	addFilterFlags(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	spec, err := filterSpecFromFlags(cmd)
	if err != nil {
		return err
	}

	loader := client.NewLoader(catalogSource())
	m := newBrowseModel(getContext(), loader, spec)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

type browseMode int

const (
	browseModeList browseMode = iota
	browseModeSearch
	browseModeHelp
)

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Search   key.Binding
	Category key.Binding
	Sort     key.Binding
	Order    key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Category, k.Sort, k.Order, k.Copy, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Search, k.Category, k.Sort, k.Order},
		{k.Copy, k.Reload, k.Help, k.Escape, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Category: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
	Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort key")),
	Order:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "flip order")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy url")),
	Reload:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// catalogLoadedMsg carries the outcome of one fetch
type catalogLoadedMsg struct {
	snapshot client.Snapshot
}

type browseModel struct {
	ctx     context.Context
	loader  *client.Loader
	state   client.State
	err     error
	catalog []domain.Asset
	view    []domain.Asset
	spec    domain.FilterSpec

	cursor  int
	offset  int
	mode    browseMode
	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    browseKeyMap
	width   int
	height  int
	message string
}

func newBrowseModel(ctx context.Context, loader *client.Loader, spec domain.FilterSpec) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search assets..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.SetValue(spec.Search)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return browseModel{
		ctx:     ctx,
		loader:  loader,
		state:   client.StatePending,
		spec:    spec,
		mode:    browseModeList,
		search:  ti,
		spinner: sp,
		help:    help.New(),
		keys:    browseKeys,
		width:   80,
		height:  24,
	}
}

func (m browseModel) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{snapshot: m.loader.Load(m.ctx)}
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

// applyFilter recomputes the visible list from the catalog and spec
func (m *browseModel) applyFilter() {
	m.view = services.Apply(m.catalog, m.spec)
	if m.cursor >= len(m.view) {
		m.cursor = max(len(m.view)-1, 0)
	}
	m.adjustViewport()
}

func (m browseModel) listHeight() int {
	// header, search bar, blank, footer, help
	return max(m.height-7, 3)
}

func (m *browseModel) adjustViewport() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.adjustViewport()
		return m, nil

	case catalogLoadedMsg:
		m.state = msg.snapshot.State
		m.err = msg.snapshot.Err
		m.catalog = msg.snapshot.Assets
		m.applyFilter()
		return m, nil

	case spinner.TickMsg:
		if m.state != client.StatePending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case browseModeSearch:
			return m.updateSearch(msg)
		case browseModeHelp:
			if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.mode = browseModeList
			return m, nil
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view)-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.view)-1, 0)
		m.adjustViewport()

	case key.Matches(msg, m.keys.Search):
		m.mode = browseModeSearch
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Category):
		m.spec.Category = nextCategoryFilter(m.spec.Category)
		m.cursor, m.offset = 0, 0
		m.applyFilter()

	case key.Matches(msg, m.keys.Sort):
		m.spec.SortBy = m.spec.SortBy.Next()
		m.applyFilter()

	case key.Matches(msg, m.keys.Order):
		m.spec.SortOrder = m.spec.SortOrder.Flip()
		m.applyFilter()

	case key.Matches(msg, m.keys.Copy):
		if a, ok := m.selected(); ok {
			if err := clipboard.WriteAll(a.URL); err != nil {
				m.message = ui.FormatMuted("(Clipboard access failed)")
			} else {
				m.message = ui.FormatSuccess("Copied " + a.URL)
			}
		}

	case key.Matches(msg, m.keys.Reload):
		m.state = client.StatePending
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.loadCatalog())

	case key.Matches(msg, m.keys.Help):
		m.mode = browseModeHelp
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = browseModeList
		m.search.Blur()
		m.search.SetValue("")
		m.spec.Search = ""
		m.cursor, m.offset = 0, 0
		m.applyFilter()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = browseModeList
		m.search.Blur()
		return m, nil

	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}
		return m, nil

	case msg.Type == tea.KeyDown:
		if m.cursor < len(m.view)-1 {
			m.cursor++
			m.adjustViewport()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.spec.Search {
		m.spec.Search = m.search.Value()
		m.cursor, m.offset = 0, 0
		m.applyFilter()
	}
	return m, cmd
}

func (m browseModel) selected() (domain.Asset, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view) {
		return domain.Asset{}, false
	}
	return m.view[m.cursor], true
}

// nextCategoryFilter cycles all -> items -> ... -> vehicles -> all
func nextCategoryFilter(current domain.CategoryFilter) domain.CategoryFilter {
	if current.IsAll() {
		return domain.FilterFor(domain.AllCategories()[0])
	}
	categories := domain.AllCategories()
	for i, c := range categories {
		if domain.FilterFor(c) == current && i+1 < len(categories) {
			return domain.FilterFor(categories[i+1])
		}
	}
	return domain.CategoryAll
}

func (m browseModel) View() string {
	if m.mode == browseModeHelp {
		return m.viewHelp()
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderSearchBar())
	s.WriteString("\n\n")

	switch m.state {
	case client.StatePending:
		s.WriteString("  " + m.spinner.View() + " Loading catalog...\n")
	case client.StateFailure:
		s.WriteString("  " + ui.FormatError("Could not load the catalog") + "\n")
		if m.err != nil {
			s.WriteString("  " + ui.FormatMuted(m.err.Error()) + "\n")
		}
		s.WriteString("  " + ui.FormatInfo("Press R to try again") + "\n")
	default:
		s.WriteString(m.renderList())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m browseModel) renderHeader() string {
	title := ui.StyleTitle.Render("Gallery")
	stats := ui.FormatMuted(fmt.Sprintf("%d of %d assets", len(m.view), len(m.catalog)))
	return title + "  " + stats
}

func (m browseModel) renderSearchBar() string {
	category := "all"
	if !m.spec.Category.IsAll() {
		category = string(m.spec.Category)
	}
	status := ui.FormatMuted(fmt.Sprintf("[category: %s] [sort: %s %s]", category, m.spec.SortBy, m.spec.SortOrder))

	if m.mode == browseModeSearch {
		return ui.StyleAccent.Render("/ ") + m.search.View() + "  " + status
	}
	if m.spec.Search != "" {
		return ui.StyleAccent.Render("/ ") + m.spec.Search + "  " + status
	}
	return status
}

func (m browseModel) renderList() string {
	if len(m.view) == 0 {
		return "  " + ui.FormatWarning("No assets match the current filter") + "\n"
	}

	nameWidth := max(m.width-40, 20)
	var s strings.Builder
	end := min(m.offset+m.listHeight(), len(m.view))
	for i := m.offset; i < end; i++ {
		a := m.view[i]
		line := fmt.Sprintf("%-*s %-14s %10s  %s",
			nameWidth, ui.Truncate(a.Name, nameWidth),
			a.Category,
			ui.FormatSize(a.Size),
			a.LastModified.Format("2006-01-02"),
		)
		if i == m.cursor {
			s.WriteString(ui.StylePrimary.Render("▸ " + line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}
	return s.String()
}

func (m browseModel) renderFooter() string {
	var s strings.Builder
	if a, ok := m.selected(); ok && m.state == client.StateSuccess {
		s.WriteString(ui.RenderKeyValue("URL", a.URL))
		s.WriteString("  ")
	}
	if m.message != "" {
		s.WriteString(m.message)
	}
	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys))
	return s.String()
}

func (m browseModel) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	h := m.help
	h.ShowAll = true
	return titleStyle.Render("Keyboard Shortcuts") + "\n" +
		lipgloss.NewStyle().Padding(0, 2).Render(h.View(m.keys)) + "\n\n" +
		ui.FormatMuted("  Press any key to return")
}
