package stats

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pbrl/climate-rl/ays"
)

// EndStateMatrix records the basin reached from a square grid of
// initial states scanned over the normalized A and Y coordinates.
type EndStateMatrix struct {
	Size   int
	Lo, Hi float64
	basins []ays.Basin // row-major, Size x Size
}

var _ plotter.GridXYZ = &EndStateMatrix{}

// NewEndStateMatrix creates a Size x Size matrix over the coordinate
// range [lo, hi].
func NewEndStateMatrix(size int, lo, hi float64) *EndStateMatrix {
	return &EndStateMatrix{
		Size:   size,
		Lo:     lo,
		Hi:     hi,
		basins: make([]ays.Basin, size*size),
	}
}

// Coord maps a grid index to its normalized coordinate.
func (m *EndStateMatrix) Coord(i int) float64 {
	if m.Size == 1 {
		return m.Lo
	}
	return m.Lo + (m.Hi-m.Lo)*float64(i)/float64(m.Size-1)
}

// Set records the basin for grid cell (i, j) = (Y row, A column).
func (m *EndStateMatrix) Set(i, j int, basin ays.Basin) {
	m.basins[i*m.Size+j] = basin
}

// Get returns the basin recorded at (i, j).
func (m *EndStateMatrix) Get(i, j int) ays.Basin {
	return m.basins[i*m.Size+j]
}

func (m *EndStateMatrix) Dims() (int, int) {
	return m.Size, m.Size
}

func (m *EndStateMatrix) Z(c, r int) float64 {
	return float64(m.Get(r, c))
}

func (m *EndStateMatrix) X(c int) float64 {
	return m.Coord(c)
}

func (m *EndStateMatrix) Y(r int) float64 {
	return m.Coord(r)
}

func (m *EndStateMatrix) Min() float64 {
	return float64(ays.BlackFP)
}

func (m *EndStateMatrix) Max() float64 {
	return float64(ays.OutOfTime)
}

// Counts tallies the basins over the whole grid.
func (m *EndStateMatrix) Counts() map[ays.Basin]int {
	counts := make(map[ays.Basin]int)
	for _, b := range m.basins {
		counts[b]++
	}
	return counts
}

// PlotEndStates renders the matrix as a heatmap with A on the x axis
// and Y on the y axis.
func PlotEndStates(m *EndStateMatrix, figPath string) error {
	p := plot.New()
	p.Title.Text = "End states"
	p.X.Label.Text = "A"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewHeatMap(m, palette.Heat(16, 1)))

	for basin, count := range m.Counts() {
		fmt.Printf("Basin %s reached from %d initial states\n", basin, count)
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, figPath)
}
