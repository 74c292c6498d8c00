package main

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
)

const boardColumnWidth = 30

var (
	columnStyle   = lipgloss.NewStyle().Width(boardColumnWidth).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeStyle   = columnStyle.BorderForeground(lipgloss.Color("63"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("255"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type boardCmd struct{}

func (cmd *boardCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	model := newBoardModel(ctx, boardSource{
		load: s.app.Service.LiveBoard,
		advance: func(ctx context.Context, id string) error {
			return s.app.Handlers.AdvanceOrder.Execute(ctx, commands.AdvanceOrderInput{OrderID: id})
		},
	})
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("fastfoodctl: board: %w", err)
	}
	return s.persist(ctx)
}

type boardSource struct {
	load    func(ctx context.Context) (restaurant.Board, error)
	advance func(ctx context.Context, id string) error
}

// boardMsg carries a reloaded board and the outcome of the action that
// triggered it.
type boardMsg struct {
	board  restaurant.Board
	status string
	err    error
}

// boardModel is the kitchen display: one column per stage, one selected order.
type boardModel struct {
	ctx    context.Context
	source boardSource
	board  restaurant.Board
	col    int
	row    int
	status string
	err    error
}

func newBoardModel(ctx context.Context, source boardSource) boardModel {
	return boardModel{ctx: ctx, source: source}
}

func (m boardModel) Init() tea.Cmd {
	return m.reload("")
}

func (m boardModel) reload(status string) tea.Cmd {
	return func() tea.Msg {
		board, err := m.source.load(m.ctx)
		return boardMsg{board: board, status: status, err: err}
	}
}

func (m boardModel) advanceSelected() tea.Cmd {
	order, ok := m.selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		if err := m.source.advance(m.ctx, order.ID); err != nil {
			board, _ := m.source.load(m.ctx)
			return boardMsg{board: board, err: err}
		}
		board, err := m.source.load(m.ctx)
		next, _ := restaurant.NextStage(order.Status)
		return boardMsg{board: board, status: fmt.Sprintf("%s moved to %s", order.ID, next), err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardMsg:
		if len(msg.board.Columns) > 0 {
			m.board = msg.board
		}
		m.status, m.err = msg.status, msg.err
		m.clamp()
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.col > 0 {
				m.col--
			}
		case "right", "l":
			if m.col < len(m.board.Columns)-1 {
				m.col++
			}
		case "up", "k":
			if m.row > 0 {
				m.row--
			}
		case "down", "j":
			m.row++
		case "a", "enter":
			return m, m.advanceSelected()
		case "r":
			return m, m.reload("")
		}
		m.clamp()
	}
	return m, nil
}

func (m *boardModel) clamp() {
	if len(m.board.Columns) == 0 {
		m.col, m.row = 0, 0
		return
	}
	m.col = min(max(m.col, 0), len(m.board.Columns)-1)
	m.row = min(m.row, len(m.board.Columns[m.col].Orders)-1)
	m.row = max(m.row, 0)
}

func (m boardModel) selected() (restaurant.LiveOrder, bool) {
	if m.col >= len(m.board.Columns) {
		return restaurant.LiveOrder{}, false
	}
	orders := m.board.Columns[m.col].Orders
	if m.row >= len(orders) {
		return restaurant.LiveOrder{}, false
	}
	return orders[m.row], true
}

func (m boardModel) View() tea.View {
	view := tea.NewView(m.render())
	view.AltScreen = true
	return view
}

func (m boardModel) render() string {
	if len(m.board.Columns) == 0 {
		return "Loading board..."
	}
	columns := make([]string, len(m.board.Columns))
	for i, col := range m.board.Columns {
		lines := []string{titleStyle.Render(fmt.Sprintf("%s (%d)", col.Stage.Label, len(col.Orders)))}
		for j, order := range col.Orders {
			line := fmt.Sprintf("%s %s\n  %s", order.ID, order.TimePlaced, truncate(strings.Join(order.Items, ", "), boardColumnWidth-4))
			if i == m.col && j == m.row {
				line = selectedStyle.Render(line)
			}
			lines = append(lines, line)
		}
		style := columnStyle
		if i == m.col {
			style = activeStyle
		}
		columns[i] = style.Render(strings.Join(lines, "\n"))
	}
	footer := mutedStyle.Render("←/→ stage  ↑/↓ order  a advance  r reload  q quit")
	switch {
	case m.err != nil:
		footer = errorStyle.Render(m.err.Error())
	case m.status != "":
		footer = m.status
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, columns...), footer)
}

func truncate(in string, width int) string {
	runes := []rune(in)
	if len(runes) <= width {
		return in
	}
	return string(runes[:width-1]) + "…"
}
