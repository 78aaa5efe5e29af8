// Package charts renders sweep results as charts. It is a pure consumer of
// the sweep output contract; the numerical core never renders anything.
package charts

import (
	"fmt"
	"image/color"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/qubitlab/gatecal/internal/modules/sweep"
	"github.com/qubitlab/gatecal/internal/modules/tolerance"
)

// Service renders sweep and tolerance results to image files.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new charts service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "charts").Logger(),
	}
}

// RenderSweep writes the calibration sensitivity chart to path: angle
// deviation on X, average gate fidelity on Y, one curve per noise level,
// and a dashed vertical reference at zero deviation. The output format
// follows the file extension (.png, .svg, .pdf).
func (s *Service) RenderSweep(table *sweep.ResultTable, path string) error {
	if table.Len() == 0 {
		return fmt.Errorf("render sweep: empty result table")
	}

	p := plot.New()
	p.Title.Text = "RX Gate Calibration Sensitivity"
	p.X.Label.Text = "Angle deviation Δθ (radians)"
	p.Y.Label.Text = "Average gate fidelity"
	p.Add(plotter.NewGrid())

	yMin, yMax := table.Cells[0].Fidelity, table.Cells[0].Fidelity
	for _, c := range table.Cells {
		if c.Fidelity < yMin {
			yMin = c.Fidelity
		}
		if c.Fidelity > yMax {
			yMax = c.Fidelity
		}
	}

	for i, ser := range table.Series() {
		xys := make(plotter.XYs, len(ser.Cells))
		for j, c := range ser.Cells {
			xys[j].X = c.AngleDeviation
			xys[j].Y = c.Fidelity
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("render sweep: %w", err)
		}
		line.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(fmt.Sprintf("p = %g", ser.NoiseStrength), line)
	}

	// Zero-deviation reference marker
	ref, err := plotter.NewLine(plotter.XYs{{X: 0, Y: yMin}, {X: 0, Y: yMax}})
	if err != nil {
		return fmt.Errorf("render sweep: %w", err)
	}
	ref.Color = color.Gray{Y: 128}
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(ref)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("render sweep: %w", err)
	}

	s.log.Info().Str("path", path).Int("cells", table.Len()).Msg("Rendered sweep chart")
	return nil
}

// RenderNoiseCurve writes the fidelity-vs-noise chart for a table swept at
// a single angle deviation: noise strength on X, fidelity on Y, one point
// per noise level.
func (s *Service) RenderNoiseCurve(table *sweep.ResultTable, path string) error {
	series := table.Series()
	if len(series) == 0 {
		return fmt.Errorf("render noise curve: empty result table")
	}

	p := plot.New()
	p.Title.Text = "Gate Fidelity vs Noise (Perfect Calibration)"
	p.X.Label.Text = "Depolarizing noise strength (p)"
	p.Y.Label.Text = "Average gate fidelity"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, 0, len(series))
	for _, ser := range series {
		for _, c := range ser.Cells {
			xys = append(xys, plotter.XY{X: ser.NoiseStrength, Y: c.Fidelity})
		}
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("render noise curve: %w", err)
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p.Add(line, points)

	if err := p.Save(7*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render noise curve: %w", err)
	}

	s.log.Info().Str("path", path).Msg("Rendered noise curve chart")
	return nil
}

// RenderWindows writes the tolerance-window chart to path: noise strength
// on X, allowed deviation range on Y.
func (s *Service) RenderWindows(windows []tolerance.Window, path string) error {
	if len(windows) == 0 {
		return fmt.Errorf("render windows: no windows to plot")
	}

	p := plot.New()
	p.Title.Text = "Calibration Tolerance Window vs Noise"
	p.X.Label.Text = "Depolarizing noise strength (p)"
	p.Y.Label.Text = "Allowed deviation range (radians)"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(windows))
	for i, w := range windows {
		xys[i].X = w.NoiseStrength
		xys[i].Y = w.Width
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("render windows: %w", err)
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p.Add(line, points)

	if err := p.Save(7*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render windows: %w", err)
	}

	s.log.Info().Str("path", path).Int("windows", len(windows)).Msg("Rendered tolerance chart")
	return nil
}
