// seehuhn.de/go/figure - declarative 2D and 3D plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command figplot plots columns of a CSV or XLSX file.
//
// Usage:
//
//	figplot [flags] data.csv
//
// The y columns are plotted against the x column, or against 1, 2, ...
// if no x column is given.  With a z column, a single 3D series is drawn.
// Columns are selected by header name or by 1-based number.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/figure"
)

// options holds the command line settings.
type options struct {
	output   string
	sheet    string
	xCol     string
	yCols    []string
	zCol     string
	style    string
	title    string
	xLabel   string
	yLabel   string
	logX     bool
	logY     bool
	logZ     bool
	ranges   string
	fplots   []string
	legend   string
	width    int
	height   int
	fontSize float64
	noGrid   bool
	verbose  bool
}

var opts options

func main() {
	rootCmd := &cobra.Command{
		Use:   "figplot [data.csv|data.xlsx]",
		Short: "Plot columns of a data file",
		Long: `figplot reads numeric columns from a CSV or XLSX file and plots
them as a PNG, EPS or PDF figure.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	fl := rootCmd.Flags()
	fl.StringVarP(&opts.output, "output", "o", "", "output file, .png, .eps or .pdf (default: input name with .png)")
	fl.StringVar(&opts.sheet, "sheet", "", "worksheet of an XLSX file (default: the first sheet)")
	fl.StringVar(&opts.xCol, "x", "", "x column (default: 1, 2, ...)")
	fl.StringSliceVar(&opts.yCols, "y", nil, "y columns (default: all other columns)")
	fl.StringVar(&opts.zCol, "z", "", "z column, for a 3D plot")
	fl.StringVar(&opts.style, "style", "", "style string applied to every series")
	fl.StringVar(&opts.title, "title", "", "figure title")
	fl.StringVar(&opts.xLabel, "xlabel", "", "x-axis label (default: the x column name)")
	fl.StringVar(&opts.yLabel, "ylabel", "", "y-axis label")
	fl.BoolVar(&opts.logX, "logx", false, "logarithmic x-axis")
	fl.BoolVar(&opts.logY, "logy", false, "logarithmic y-axis")
	fl.BoolVar(&opts.logZ, "logz", false, "logarithmic z-axis")
	fl.StringVar(&opts.ranges, "ranges", "", "fixed viewport xmin,xmax,ymin,ymax")
	fl.StringArrayVar(&opts.fplots, "fplot", nil, "additional function of x to plot (repeatable)")
	fl.StringVar(&opts.legend, "legend", "", "legend position x,y (e.g. 1,1 for top right)")
	fl.IntVar(&opts.width, "width", figure.DefaultWidth, "canvas width in pixels")
	fl.IntVar(&opts.height, "height", figure.DefaultHeight, "canvas height in pixels")
	fl.Float64Var(&opts.fontSize, "fontsize", figure.DefaultFontSize, "font size")
	fl.BoolVar(&opts.noGrid, "no-grid", false, "do not draw the grid")
	fl.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	t, err := readTable(inputPath, opts.sheet)
	if err != nil {
		return err
	}
	logger.Debug("data loaded", "file", inputPath, "rows", len(t.rows), "columns", t.numColumns())

	fig, err := buildFigure(t, &opts, logger)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".png"
	}
	if strings.EqualFold(filepath.Ext(out), ".pdf") {
		err = fig.SavePDF(out)
	} else {
		err = fig.Save(out)
	}
	if err != nil {
		return err
	}
	logger.Info("figure written", "file", out)
	return nil
}

// buildFigure turns the table into a figure, following the options.
func buildFigure(t *table, o *options, logger *slog.Logger) (*figure.Figure, error) {
	fig := figure.New(figure.WithLogger(logger))
	fig.SetWidth(o.width)
	fig.SetHeight(o.height)
	fig.SetFontSize(o.fontSize)
	if o.noGrid {
		fig.GridDefault(false)
	}

	xIdx := -1
	if o.xCol != "" {
		i, err := t.index(o.xCol)
		if err != nil {
			return nil, fmt.Errorf("x column: %w", err)
		}
		xIdx = i
	}

	var yIdx []int
	for _, spec := range o.yCols {
		i, err := t.index(spec)
		if err != nil {
			return nil, fmt.Errorf("y column: %w", err)
		}
		yIdx = append(yIdx, i)
	}

	if o.zCol != "" {
		zIdx, err := t.index(o.zCol)
		if err != nil {
			return nil, fmt.Errorf("z column: %w", err)
		}
		if xIdx < 0 || len(yIdx) != 1 {
			return nil, fmt.Errorf("a 3D plot needs one x, one y and one z column")
		}
		err = fig.Plot3(t.column(xIdx), t.column(yIdx[0]), t.column(zIdx), o.style, "")
		if err != nil {
			return nil, err
		}
	} else {
		if len(yIdx) == 0 {
			for i := range t.numColumns() {
				if i != xIdx {
					yIdx = append(yIdx, i)
				}
			}
		}
		if len(yIdx) == 0 {
			return nil, fmt.Errorf("no columns to plot")
		}
		for _, i := range yIdx {
			legend := ""
			if len(yIdx) > 1 {
				legend = t.name(i)
			}
			var err error
			if xIdx >= 0 {
				err = fig.Plot(t.column(xIdx), t.column(i), o.style, legend)
			} else {
				err = fig.PlotY(t.column(i), o.style, legend)
			}
			if err != nil {
				return nil, err
			}
		}
		if len(yIdx) > 1 && o.legend == "" {
			fig.Legend(1, 1)
		}
	}

	for _, expr := range o.fplots {
		fig.FPlot(expr, "", expr)
	}

	if o.ranges != "" {
		r, err := parseFloats(o.ranges, 4)
		if err != nil {
			return nil, fmt.Errorf("--ranges: %w", err)
		}
		if err := fig.Ranges(r[0], r[1], r[2], r[3]); err != nil {
			return nil, err
		}
	}
	if o.legend != "" {
		pos, err := parseFloats(o.legend, 2)
		if err != nil {
			return nil, fmt.Errorf("--legend: %w", err)
		}
		fig.Legend(pos[0], pos[1])
	}
	fig.SetLog(o.logX, o.logY, o.logZ)

	xLabel := o.xLabel
	if xLabel == "" && xIdx >= 0 {
		xLabel = t.name(xIdx)
	}
	if xLabel != "" {
		fig.XLabel(xLabel, 0)
	}
	yLabel := o.yLabel
	if yLabel == "" && len(yIdx) == 1 {
		yLabel = t.name(yIdx[0])
	}
	if yLabel != "" {
		fig.YLabel(yLabel, 0)
	}
	if o.title != "" {
		fig.Title(o.title)
	}
	return fig, nil
}
