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

// Command gallery renders every figure in the testcases catalogue.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/figure"
	"seehuhn.de/go/figure/testcases"
)

var (
	outDir  string
	format  string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render the example figures",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	rootCmd.Flags().StringVarP(&outDir, "output", "o", "gallery", "output directory")
	rootCmd.Flags().StringVar(&format, "format", "png", "output format: png, eps or pdf")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every rendering phase")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	switch format {
	case "png", "eps", "pdf":
	default:
		return fmt.Errorf("invalid format: %s (must be png, eps or pdf)", format)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(outDir, name+"."+format)
			if err := render(tc, fname, logger); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Info("written", "file", fname)
			n++
		}
	}
	logger.Info("done", "figures", n)
	return nil
}

func render(tc testcases.TestCase, fname string, logger *slog.Logger) error {
	f, err := testcases.Build(tc, figure.WithLogger(logger))
	if err != nil {
		return err
	}
	if format == "pdf" {
		return f.SavePDF(fname)
	}
	return f.Save(fname)
}
