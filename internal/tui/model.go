// Package tui is the interactive terminal editor: a canvas that accepts
// mouse drags and clicks, a control form and a live adjacency matrix.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msalah0e/graphpad/internal/graph"
	"github.com/msalah0e/graphpad/internal/interact"
)

type focus int

const (
	focusName focus = iota
	focusNodes
	focusSource
	focusTarget
	focusDirected
	focusCanvas
	focusCount
)

// input slots, indexed like the first four focus values
const (
	inName = iota
	inNodes
	inSource
	inTarget
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusErr
)

// Screen layout. The canvas sits below the header inside a one-cell border;
// form, status and help lines follow it.
const (
	headerRows = 1
	footerRows = 3
	canvasLeft = 1
	canvasTop  = headerRows + 1
	minCols    = 10
	minRows    = 4
)

// Options configures the editor.
type Options struct {
	Name         string
	ShowMatrix   bool
	CanvasWidth  float64
	CanvasHeight float64
	NodeRadius   float64
	// Save receives the payload of the save action.
	Save   func(graph.SavePayload) error
	Logger *slog.Logger
}

// Model is the bubbletea model of the editor.
type Model struct {
	g    *graph.Model
	ctrl *interact.Controller
	log  *slog.Logger
	save func(graph.SavePayload) error

	canvasW, canvasH float64
	nodeRadius       float64

	snap        graph.Snapshot
	unsubscribe func()

	inputs     []textinput.Model
	focus      focus
	directed   bool
	showMatrix bool
	applied    int

	help          help.Model
	width, height int

	status     string
	statusKind statusKind
}

// New wires an editor to g. The node list is left as is; the node-count
// field starts at the current count.
func New(g *graph.Model, opts Options) *Model {
	if opts.CanvasWidth <= 0 {
		opts.CanvasWidth = 800
	}
	if opts.CanvasHeight <= 0 {
		opts.CanvasHeight = 600
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 10
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Model{
		g:          g,
		ctrl:       interact.New(g, opts.Logger),
		log:        opts.Logger,
		save:       opts.Save,
		canvasW:    opts.CanvasWidth,
		canvasH:    opts.CanvasHeight,
		nodeRadius: opts.NodeRadius,
		showMatrix: opts.ShowMatrix,
		applied:    len(g.Nodes()),
		help:       help.New(),
		width:      100,
		height:     30,
	}
	m.snap = g.Snapshot()
	m.unsubscribe = g.Subscribe(func(s graph.Snapshot) { m.snap = s })

	newInput := func(placeholder string, width, limit int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.Width = width
		ti.CharLimit = limit
		return ti
	}
	m.inputs = []textinput.Model{
		newInput("graph name", 16, 64),
		newInput("0", 4, 3),
		newInput("v1", 5, 8),
		newInput("v2", 5, 8),
	}
	m.inputs[inName].SetValue(opts.Name)
	m.inputs[inNodes].SetValue(strconv.Itoa(m.applied))
	m.inputs[inName].CursorEnd()
	m.inputs[inNodes].CursorEnd()
	m.setFocus(focusNodes)
	return m
}

// Run starts the editor full-screen with mouse support and blocks until
// the user quits.
func Run(g *graph.Model, opts Options) error {
	m := New(g, opts)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Close detaches the editor from the graph model.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Snapshot returns the state the editor last rendered from.
func (m *Model) Snapshot() graph.Snapshot {
	return m.snap
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.focus < focusDirected {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+s":
		m.saveGraph()
		return nil
	case "ctrl+t":
		m.showMatrix = !m.showMatrix
		return nil
	}

	switch {
	case key.Matches(msg, keys.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, keys.Blur):
		return m.setFocus(focusCanvas)
	}

	switch m.focus {
	case focusCanvas:
		return m.canvasKey(msg)
	case focusDirected:
		if key.Matches(msg, keys.Directed) || key.Matches(msg, keys.Add) {
			m.toggleDirected()
		}
		return nil
	case focusSource, focusTarget:
		if key.Matches(msg, keys.Add) {
			m.addEdge()
			return nil
		}
	}

	i := int(m.focus)
	before := m.inputs[i].Value()
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	if m.inputs[i].Value() != before {
		m.inputChanged(i)
	}
	return cmd
}

func (m *Model) canvasKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Directed):
		m.toggleDirected()
	case key.Matches(msg, keys.Matrix):
		m.showMatrix = !m.showMatrix
	case key.Matches(msg, keys.Save):
		m.saveGraph()
	case key.Matches(msg, keys.Reshuffle):
		m.setNodeCount(m.applied)
	}
	return nil
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if focus(i) == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) inputChanged(i int) {
	switch i {
	case inNodes:
		s := strings.TrimSpace(m.inputs[inNodes].Value())
		n := 0
		if s != "" {
			var err error
			if n, err = strconv.Atoi(s); err != nil || n < 0 {
				m.setStatus(fmt.Sprintf("node count must be a non-negative integer, got %q", s), statusErr)
				return
			}
		}
		if n != m.applied {
			m.setNodeCount(n)
		}
	case inSource, inTarget:
		m.tryReactiveAdd()
	}
}

func (m *Model) setNodeCount(n int) {
	m.ctrl.Cancel()
	if err := m.g.SetNodeCount(n); err != nil {
		m.setStatus(err.Error(), statusErr)
		return
	}
	m.applied = n
	m.setStatus(fmt.Sprintf("placed %d nodes, edges cleared", n), statusInfo)
}

func (m *Model) endpoints() (string, string) {
	return strings.TrimSpace(m.inputs[inSource].Value()), strings.TrimSpace(m.inputs[inTarget].Value())
}

// tryReactiveAdd adds the edge described by the form whenever it becomes
// valid. Unknown ids and duplicates are silently ignored.
func (m *Model) tryReactiveAdd() {
	src, tgt := m.endpoints()
	if src == "" || tgt == "" {
		return
	}
	if err := m.g.TryAddEdge(src, tgt, m.directed); err == nil {
		m.reportAdded()
	}
}

// addEdge is the explicit add action: try once more, then clear the ids.
func (m *Model) addEdge() {
	src, tgt := m.endpoints()
	if src == "" || tgt == "" {
		m.setStatus("enter a source and a target id", statusInfo)
		return
	}
	switch err := m.g.TryAddEdge(src, tgt, m.directed); {
	case err == nil:
		m.reportAdded()
	case graph.IsNoop(err):
		m.setStatus(err.Error(), statusInfo)
	default:
		m.setStatus(err.Error(), statusErr)
	}
	m.inputs[inSource].SetValue("")
	m.inputs[inTarget].SetValue("")
}

func (m *Model) reportAdded() {
	i := len(m.snap.Edges) - 1
	e := m.snap.Edges[i]
	arrow := "—"
	if e.Directed {
		arrow = "→"
	}
	m.setStatus(fmt.Sprintf("added %s: %s %s %s", graph.EdgeLabel(i), e.Source, arrow, e.Target), statusOK)
}

func (m *Model) toggleDirected() {
	m.directed = !m.directed
	m.tryReactiveAdd()
}

func (m *Model) saveGraph() {
	p := m.g.SavePayload(m.inputs[inName].Value())
	m.log.Info("graph saved", "payload", p.JSON())
	if m.save != nil {
		if err := m.save(p); err != nil {
			m.setStatus("save failed: "+err.Error(), statusErr)
			return
		}
	}
	m.setStatus(fmt.Sprintf("saved %q (%d nodes, %d edges)", p.GraphName, p.NumNodes, len(p.Edges)), statusOK)
}

func (m *Model) setStatus(s string, kind statusKind) {
	m.status, m.statusKind = s, kind
}

func (m *Model) picker(v viewport) interact.Picker {
	cw, ch := v.cellSize()
	return interact.Picker{
		NodeRadius: m.nodeRadius,
		CellWidth:  cw,
		CellHeight: ch,
		LoopRadius: m.g.LoopRadius(),
	}
}

// handleMouse converts screen cells to canvas coordinates and feeds the
// controller. Releases end a drag wherever they happen.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	v := m.viewport()
	col, row := msg.X-canvasLeft, msg.Y-canvasTop
	p := v.toPoint(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if col < 0 || row < 0 || col >= v.cols || row >= v.rows {
			return
		}
		m.setFocus(focusCanvas)
		t := m.picker(v).Pick(m.snap, p)
		if err := m.ctrl.PointerDown(t, p); err != nil {
			kind := statusErr
			if graph.IsNoop(err) {
				kind = statusInfo
			}
			m.setStatus(err.Error(), kind)
			return
		}
		if t.Kind == interact.LabelHit {
			state := "undirected"
			if m.snap.Edges[t.Edge].Directed {
				state = "directed"
			}
			m.setStatus(fmt.Sprintf("%s is now %s", graph.EdgeLabel(t.Edge), state), statusInfo)
		}
	case tea.MouseActionMotion:
		m.ctrl.PointerMove(p)
	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
}

func (m *Model) viewport() viewport {
	paneW := 0
	if pane := m.matrixPane(); pane != "" {
		paneW = lipgloss.Width(pane)
	}
	cols := m.width - 2 - paneW
	rows := m.height - headerRows - 2 - footerRows
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	return viewport{cols: cols, rows: rows, width: m.canvasW, height: m.canvasH}
}

// View implements tea.Model.
func (m *Model) View() string {
	header := headerStyle.Render("◉ graphpad") + " " + subtleStyle.Render("— "+m.inputs[inName].Value())
	if id, ok := m.ctrl.Dragging(); ok {
		header += " " + focusStyle.Render("dragging "+id)
	}

	v := m.viewport()
	id, _ := m.ctrl.Dragging()
	canvas := canvasStyle.Render(draw(v, scene{snap: m.snap, loopRadius: m.g.LoopRadius(), dragging: id}).render(cellStyles))
	body := canvas
	if pane := m.matrixPane(); pane != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, pane)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.formView(),
		m.statusView(),
		m.help.View(keys),
	)
}

func (m *Model) formView() string {
	field := func(f focus, label string) string {
		l := labelStyle.Render(label)
		if m.focus == f {
			l = focusStyle.Render(label)
		}
		return l + " " + m.inputs[f].View()
	}
	check := "[ ]"
	if m.directed {
		check = "[x]"
	}
	dl := labelStyle.Render("directed")
	if m.focus == focusDirected {
		dl = focusStyle.Render("directed")
	}
	return strings.Join([]string{
		field(focusName, "name"),
		field(focusNodes, "nodes"),
		field(focusSource, "from"),
		field(focusTarget, "to"),
		dl + " " + check,
	}, "  ")
}

func (m *Model) statusView() string {
	summary := subtleStyle.Render(fmt.Sprintf("%d nodes · %d edges", len(m.snap.Nodes), len(m.snap.Edges)))
	if m.status == "" {
		return summary
	}
	st := subtleStyle
	switch m.statusKind {
	case statusOK:
		st = okStyle
	case statusErr:
		st = errorStyle
	}
	return summary + "  " + st.Render(m.status)
}

// matrixPane renders the adjacency matrix with a degree column, or "" when
// the matrix is hidden.
func (m *Model) matrixPane() string {
	if !m.showMatrix {
		return ""
	}
	st := m.snap.Stats
	var b strings.Builder
	b.WriteString(matrixHeader.Render(st.Title()))
	b.WriteString("\n\n")

	if len(m.snap.Nodes) == 0 {
		b.WriteString(subtleStyle.Render("no nodes"))
		return paneStyle.Render(b.String())
	}

	w := 1
	for _, n := range m.snap.Nodes {
		if len(n.ID) > w {
			w = len(n.ID)
		}
	}
	b.WriteString(strings.Repeat(" ", w))
	for _, n := range m.snap.Nodes {
		b.WriteString(" " + subtleStyle.Render(fmt.Sprintf("%*s", w, n.ID)))
	}
	b.WriteString("  " + subtleStyle.Render("d"))

	for i, row := range st.Matrix {
		b.WriteString("\n" + subtleStyle.Render(fmt.Sprintf("%-*s", w, m.snap.Nodes[i].ID)))
		for _, val := range row {
			c := fmt.Sprintf("%*d", w, val)
			if val != 0 {
				c = oneStyle.Render(c)
			} else {
				c = zeroStyle.Render(c)
			}
			b.WriteString(" " + c)
		}
		b.WriteString("  " + strconv.Itoa(st.Degrees[i]))
	}
	return paneStyle.Render(b.String())
}
