package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"gotransect/internal/geom"
)

// Params are the live generation settings shown in the footer and
// adjustable from the keyboard.
type Params struct {
	Spacing    float64 // centerline resampling interval
	Length     float64 // total transect length
	Resolution float64 // sample spacing along each transect
}

type Model struct {
	width  int
	height int

	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	params Params

	// Data
	center    geom.Line // input centerline
	sampled   geom.Sampled
	transects []geom.Transect
	bbox      geom.BBox // extent of everything drawn

	// layer visibility
	showCenter    bool
	showSamples   bool
	showTransects bool

	// last rendered canvas size (for mouse mapping)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// transect summary table
	showTable bool
	tbl       table.Model

	// hover state
	hovering bool
	hoverX   float64
	hoverY   float64
}

// New builds a model around the given centerline and regenerates the
// derived geometry immediately.
func New(p Params, center geom.Line) Model {
	m := Model{
		helpVisible:   true,
		zoom:          1.0,
		status:        "gotransect ready",
		params:        p,
		center:        center,
		showCenter:    true,
		showSamples:   true,
		showTransects: true,
	}
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste centerline as x y pairs, one per line. Enter renders; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(8)
	// transect table setup (rows are filled on regenerate)
	m.tbl = table.New(
		table.WithFocused(true),
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "center x", Width: 10},
			{Title: "center y", Width: 10},
			{Title: "start", Width: 18},
			{Title: "end", Width: 18},
			{Title: "pts", Width: 5},
		}),
	)
	m.tbl.SetHeight(12)
	m.regenerate()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// regenerate recomputes the resampled centerline and transects from the
// current parameters. On error the previous geometry is kept and the
// message goes to the status line.
func (m *Model) regenerate() {
	s, err := geom.Resample(m.center, m.params.Spacing)
	if err != nil {
		m.status = err.Error()
		return
	}
	ts, err := geom.Transects(s.X, s.Y, m.params.Length, m.params.Resolution)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.sampled = s
	m.transects = ts
	m.bbox = m.center.BBox()
	for _, tr := range ts {
		for i := range tr.X {
			m.bbox.Extend(tr.X[i], tr.Y[i])
		}
	}
	m.refreshTable()
	m.status = fmt.Sprintf("%d samples, %d transects  dl=%.3g L=%.3g res=%.3g",
		s.Len(), len(ts), m.params.Spacing, m.params.Length, m.params.Resolution)
}

func (m *Model) refreshTable() {
	rows := make([]table.Row, 0, len(m.transects))
	for i, tr := range m.transects {
		last := len(tr.X) - 1
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.2f", m.sampled.X[i+1]),
			fmt.Sprintf("%.2f", m.sampled.Y[i+1]),
			fmt.Sprintf("%.1f, %.1f", tr.X[0], tr.Y[0]),
			fmt.Sprintf("%.1f, %.1f", tr.X[last], tr.Y[last]),
			fmt.Sprintf("%d", len(tr.X)),
		})
	}
	m.tbl.SetRows(rows)
}
