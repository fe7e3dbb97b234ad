package cli

import (
	"fmt"
	"iter"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/trellisgraph/trellis/pkg/graph"
)

// Color palette
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - visited nodes
	colorYellow = lipgloss.Color("220") // Amber - completion notice
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// Explorer styles
var (
	exploreTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreVisitedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	exploreCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	exploreDoneStyle    = lipgloss.NewStyle().Foreground(colorYellow)
)

// newExploreCmd creates the explore command.
func newExploreCmd() *cobra.Command {
	var (
		order string
		start uint16
	)

	cmd := &cobra.Command{
		Use:   "explore [graph file]",
		Short: "Step through a traversal interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, doc, err := loadCompiled(args[0])
			if err != nil {
				return err
			}
			if order != orderDFS && order != orderBFS {
				return fmt.Errorf("unknown traversal order %q (want %s or %s)", order, orderDFS, orderBFS)
			}

			model := newExploreModel(compiled, doc.Name, order, graph.NodeID(start))
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("explorer: %w", err)
			}
			if m, ok := final.(exploreModel); ok {
				m.stop()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", orderDFS, "traversal order (dfs or bfs)")
	cmd.Flags().Uint16Var(&start, "start", 0, "start node")

	return cmd
}

// exploreModel is the bubbletea model for interactive traversal stepping.
type exploreModel struct {
	graph graph.Directed
	name  string
	order string
	start graph.NodeID

	next    func() (graph.NodeID, bool)
	stop    func()
	visited []graph.NodeID
	done    bool
}

func newExploreModel(g graph.Directed, name, order string, start graph.NodeID) exploreModel {
	m := exploreModel{graph: g, name: name, order: order, start: start}
	m.restart()
	return m
}

// restart discards traversal progress and pulls a fresh sequence.
func (m *exploreModel) restart() {
	if m.stop != nil {
		m.stop()
	}
	var seq iter.Seq[graph.NodeID]
	if m.order == orderBFS {
		seq = graph.BFS(m.graph, m.start)
	} else {
		seq = graph.DFS(m.graph, m.start)
	}
	m.next, m.stop = iter.Pull(seq)
	m.visited = nil
	m.done = false
}

func (m *exploreModel) advance() {
	if m.done {
		return
	}
	node, ok := m.next()
	if !ok {
		m.done = true
		return
	}
	m.visited = append(m.visited, node)
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "n", "enter":
			m.advance()
		case "o":
			if m.order == orderDFS {
				m.order = orderBFS
			} else {
				m.order = orderDFS
			}
			m.restart()
		case "r":
			m.restart()
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	title := m.name
	if title == "" {
		title = "graph"
	}
	b.WriteString(exploreTitleStyle.Render(fmt.Sprintf("Exploring %s (%s from %d)", title, strings.ToUpper(m.order), m.start)))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("space/n step  o toggle order  r restart  q quit"))
	b.WriteString("\n\n")

	if len(m.visited) == 0 {
		b.WriteString(exploreDimStyle.Render("  (press space to visit the first node)"))
	} else {
		for i, node := range m.visited {
			style := exploreVisitedStyle
			if i == len(m.visited)-1 && !m.done {
				style = exploreCurrentStyle
			}
			if i > 0 {
				b.WriteString(exploreDimStyle.Render(" → "))
			}
			b.WriteString(style.Render(fmt.Sprintf("%d", node)))
		}
	}
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(exploreDoneStyle.Render(fmt.Sprintf("  traversal complete: %d nodes visited", len(m.visited))))
	} else {
		b.WriteString(exploreDimStyle.Render(fmt.Sprintf("  [%d visited]", len(m.visited))))
	}
	b.WriteString("\n")

	return b.String()
}
