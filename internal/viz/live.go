// Package viz renders dispersion curves in the terminal, either as
// one-shot asciigraph plots or through an interactive bubbletea viewer.
package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/magnon-tools/spinwave/internal/dispersion"
	"github.com/magnon-tools/spinwave/internal/magnon"
)

const (
	graphWidth  = 80
	graphHeight = 14
)

// parameter indices for the selection cursor
const (
	paramModel = iota
	paramHeff
	paramThickness
	paramModeNo
	paramGeometry
	paramPinned
	paramCount
)

var paramNames = [paramCount]string{"model", "heff", "thickness", "mode_no", "geometry", "pinned"}

var geometries = []dispersion.Mode{dispersion.MSSW, dispersion.BVSW, dispersion.FVSW}

// Model is the interactive viewer state: a film, wave parameters, and a
// selection cursor. Every keypress that changes a parameter rebuilds the
// dispersion model and replots.
type Model struct {
	film     magnon.Film
	modelIdx int
	modeNo   int
	heff     float64
	geomIdx  int
	pinned   bool
	ksw      magnon.Grid
	selected int

	initial struct {
		film   magnon.Film
		heff   float64
		modeNo int
	}
}

// NewModel initializes the viewer from a starting configuration.
func NewModel(modelName string, film magnon.Film, p dispersion.Params) Model {
	m := Model{
		film:   film,
		modeNo: p.ModeNo,
		heff:   p.Heff,
		pinned: p.Pinned,
		ksw:    p.Ksw.Clone(),
	}
	for i, name := range dispersion.ModelNames() {
		if name == modelName {
			m.modelIdx = i
		}
	}
	for i, g := range geometries {
		if g == p.Config {
			m.geomIdx = i
		}
	}
	m.initial.film = film
	m.initial.heff = p.Heff
	m.initial.modeNo = p.ModeNo
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.selected = (m.selected + paramCount - 1) % paramCount
	case "down", "j":
		m.selected = (m.selected + 1) % paramCount
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "r":
		m.film = m.initial.film
		m.heff = m.initial.heff
		m.modeNo = m.initial.modeNo
	}
	return m, nil
}

func (m *Model) adjust(dir int) {
	switch m.selected {
	case paramModel:
		n := len(dispersion.ModelNames())
		m.modelIdx = (m.modelIdx + dir + n) % n
	case paramHeff:
		if dir > 0 {
			m.heff *= 1.1
		} else {
			m.heff /= 1.1
		}
	case paramThickness:
		if dir > 0 {
			m.film.Thickness *= 1.1
		} else {
			m.film.Thickness /= 1.1
		}
	case paramModeNo:
		if m.modeNo+dir >= 0 {
			m.modeNo += dir
		}
	case paramGeometry:
		n := len(geometries)
		m.geomIdx = (m.geomIdx + dir + n) % n
	case paramPinned:
		m.pinned = !m.pinned
	}
}

func (m Model) params() dispersion.Params {
	return dispersion.Params{
		ModeNo: m.modeNo,
		Ksw:    m.ksw,
		Heff:   m.heff,
		Config: geometries[m.geomIdx],
		Pinned: m.pinned,
	}
}

func (m Model) View() string {
	name := dispersion.ModelNames()[m.modelIdx]

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("spinwave — dispersion viewer"))
	sb.WriteString("\n")

	curve, err := m.compute(name)
	if err != nil {
		sb.WriteString(ErrorStyle.Render(fmt.Sprintf("error: %v", err)))
		sb.WriteString("\n")
	} else {
		graph := asciigraph.Plot(curve,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(fmt.Sprintf("%s: f (GHz) vs ksw [%.2g .. %.2g rad/m]",
				name, m.ksw[0], m.ksw[len(m.ksw)-1])),
		)
		sb.WriteString(GraphStyle.Render(graph))
		sb.WriteString("\n")
	}

	sb.WriteString(m.paramPanel(name))
	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render("↑/↓ select · ←/→ adjust · r reset · q quit"))
	return sb.String()
}

func (m Model) compute(name string) ([]float64, error) {
	model, err := dispersion.Build(name, m.film, m.params())
	if err != nil {
		return nil, err
	}
	freqs, err := model.Frequencies()
	if err != nil {
		return nil, err
	}
	if !freqs.IsValid() {
		return nil, fmt.Errorf("curve left the model's validity range (NaN)")
	}
	ghz := make([]float64, len(freqs))
	for i, f := range freqs {
		ghz[i] = f / 1e9
	}
	return ghz, nil
}

func (m Model) paramPanel(name string) string {
	values := [paramCount]string{
		name,
		fmt.Sprintf("%.4g A/m", m.heff),
		fmt.Sprintf("%.4g m", m.film.Thickness),
		fmt.Sprintf("%d", m.modeNo),
		geometries[m.geomIdx].String(),
		fmt.Sprintf("%v", m.pinned),
	}

	var rows []string
	for i := 0; i < paramCount; i++ {
		label := LabelStyle.Render(paramNames[i])
		value := ValueStyle.Render(values[i])
		if i == m.selected {
			value = ActiveParamStyle.Render("◀ " + values[i] + " ▶")
		}
		rows = append(rows, label+value)
	}
	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// Run starts the interactive viewer and blocks until the user quits.
func Run(modelName string, film magnon.Film, p dispersion.Params) error {
	prog := tea.NewProgram(NewModel(modelName, film, p))
	_, err := prog.Run()
	return err
}

// PlotRaw renders a one-shot asciigraph of unscaled values.
func PlotRaw(caption string, values magnon.Grid) string {
	return asciigraph.Plot(values,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(caption),
	)
}

// PlotCurve renders a one-shot asciigraph of a dispersion curve in GHz.
func PlotCurve(caption string, freqs magnon.Grid) string {
	ghz := make([]float64, len(freqs))
	for i, f := range freqs {
		ghz[i] = f / 1e9
	}
	return asciigraph.Plot(ghz,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(caption),
	)
}
