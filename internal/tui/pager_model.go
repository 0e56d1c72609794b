package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stockroom/pagenav/internal/inventory"
	"github.com/stockroom/pagenav/internal/logging"
	"github.com/stockroom/pagenav/internal/pagerange"
)

// Layout constants.
const (
	defaultWidth  = 100
	defaultHeight = 24
	chromeHeight  = 7 // title, blank, bar, blank, status, help, table header
	maxJumpDigits = 6
)

// PageFetcher returns one page of the listing.
type PageFetcher func(page int) inventory.Page

// PagerModel is the Bubble Tea model of the inventory pager. It owns a
// pagerange.Navigator; every key that changes the page goes through it and the
// navigator's refine callback loads the requested page.
type PagerModel struct {
	ctx   context.Context
	title string
	fetch PageFetcher
	nav   *pagerange.Navigator
	page  inventory.Page

	table table.Model
	help  help.Model
	keys  KeyMap

	jump   string
	status string
	width  int
	height int
}

// NewPagerModel creates a pager positioned on startPage.
func NewPagerModel(ctx context.Context, title string, fetch PageFetcher, startPage, delta int) *PagerModel {
	m := &PagerModel{
		ctx:    ctx,
		title:  title,
		fetch:  fetch,
		help:   help.New(),
		keys:   DefaultKeyMap(),
		width:  defaultWidth,
		height: defaultHeight,
	}

	m.page = fetch(startPage)
	m.nav = pagerange.NavigatorFor(m.page.Listing(), delta,
		pagerange.WithOnNext(m.logMove("next")),
		pagerange.WithOnPrevious(m.logMove("previous")),
		pagerange.WithRefine(m.load),
	)
	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rowsFor(m.page.Items)),
		table.WithHeight(m.tableHeight()),
		table.WithFocused(true),
	)
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *PagerModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(m.columns())
		m.table.SetHeight(m.tableHeight())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

//nolint:gocognit // Key dispatch is a flat list of bindings.
func (m *PagerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Previous):
		m.move(m.nav.Previous())
	case key.Matches(msg, m.keys.Next):
		m.move(m.nav.Next())
	case key.Matches(msg, m.keys.First):
		m.move(m.nav.First())
	case key.Matches(msg, m.keys.Last):
		m.move(m.nav.Last())
	case key.Matches(msg, m.keys.Jump):
		m.submitJump()
	case key.Matches(msg, m.keys.Clear):
		m.jump = ""
		m.status = ""
	case msg.Type == tea.KeyRunes && isDigits(msg.Runes):
		if len(m.jump)+len(msg.Runes) <= maxJumpDigits {
			m.jump += string(msg.Runes)
		}
	default:
		// Row navigation inside the page.
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *PagerModel) submitJump() {
	if m.jump == "" {
		return
	}
	target, err := strconv.Atoi(m.jump)
	m.jump = ""
	if err != nil {
		return
	}
	if !m.nav.GoTo(target) {
		// Same page or out of range: ignored, with a hint for out-of-range requests.
		if target != m.nav.Current() {
			m.status = fmt.Sprintf("no page %d (1-%d)", target, m.nav.State().TotalPages)
		}
		return
	}
	m.afterMove()
}

func (m *PagerModel) move(accepted bool) {
	if accepted {
		m.afterMove()
	}
}

// afterMove reconciles the navigator with the freshly loaded page. The listing may
// have shrunk or grown between fetches.
func (m *PagerModel) afterMove() {
	m.status = ""
	if m.page.TotalPages != m.nav.State().TotalPages {
		m.nav.SetTotalPages(m.page.TotalPages)
	}
}

// load is the navigator's refine callback.
func (m *PagerModel) load(page int) {
	m.page = m.fetch(page)
	m.table.SetRows(rowsFor(m.page.Items))
	m.table.GotoTop()
}

func (m *PagerModel) logMove(direction string) pagerange.ChangeFunc {
	return func(current, requested int) {
		logging.FromContext(m.ctx).Debug().
			Str("component", "tui").
			Str("direction", direction).
			Int("from", current).
			Int("to", requested).
			Msg("page change")
	}
}

// View renders the header, the page table, the pagination bar and the help line.
func (m *PagerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(RenderPaginationBar(m.nav.Layout()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(m.summary()))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *PagerModel) summary() string {
	s := fmt.Sprintf("page %d of %d · %d items", m.nav.Current(), m.nav.State().TotalPages, m.page.TotalItems)
	if m.jump != "" {
		s += " · go to " + m.jump
	}
	return s
}

// CurrentPage returns the page shown.
func (m *PagerModel) CurrentPage() int {
	return m.nav.Current()
}

// Page returns the loaded listing page.
func (m *PagerModel) Page() inventory.Page {
	return m.page
}

// Status returns the transient status message, if any.
func (m *PagerModel) Status() string {
	return m.status
}

func (m *PagerModel) tableHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m *PagerModel) columns() []table.Column {
	const (
		skuWidth    = 14
		qtyWidth    = 12
		statusWidth = 12
		minText     = 30
	)
	text := max(m.width-skuWidth-qtyWidth-statusWidth, minText)
	return []table.Column{
		{Title: "SKU", Width: skuWidth},
		{Title: "Name", Width: text * 3 / 5},          //nolint:mnd // name gets the larger share
		{Title: "Warehouse", Width: text - text*3/5}, //nolint:mnd // remainder of the text width
		{Title: "Qty", Width: qtyWidth},
		{Title: "Status", Width: statusWidth},
	}
}

func rowsFor(items []inventory.Item) []table.Row {
	rows := make([]table.Row, len(items))
	for i, item := range items {
		qty := strconv.Itoa(item.Quantity)
		if item.Unit != "" {
			qty += " " + item.Unit
		}
		rows[i] = table.Row{item.SKU, item.Name, item.Warehouse, qty, strings.ReplaceAll(string(item.Status), "_", " ")}
	}
	return rows
}

func isDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
