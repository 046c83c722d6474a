package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"doomfire/internal/core"
	"doomfire/internal/record"
	"doomfire/internal/sims/fire"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		ticks     int
		chartPath string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "step the fire without a display and summarise it",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			if ticks <= 0 {
				return fmt.Errorf("--ticks must be positive, got %d", ticks)
			}
			f, err := newFire(s.Fire)
			if err != nil {
				return err
			}

			hist := record.NewHistory()
			start := time.Now()
			for i := 0; i < ticks; i++ {
				f.Step()
				hist.Add(f.Stats())
			}
			elapsed := time.Since(start)

			out := cmd.OutOrStdout()
			writeSummary(out, f, f.Stats(), len(f.Cells()), elapsed)
			if hist.Len() >= 2 {
				graph := asciigraph.Plot(hist.Mean,
					asciigraph.Height(8),
					asciigraph.Width(70),
					asciigraph.Caption("mean heat per tick"))
				fmt.Fprintf(out, "\n%s\n", graph)
			}

			if chartPath != "" {
				if err := writeChart(chartPath, hist); err != nil {
					return err
				}
				log.Printf("wrote %s", chartPath)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 300, "number of ticks to run")
	cmd.Flags().StringVar(&chartPath, "chart", "", "write a PNG chart of mean and peak heat")
	return cmd
}

func writeSummary(out io.Writer, p core.ParameterProvider, st fire.Stats, cells int, elapsed time.Duration) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, g := range p.Parameters().Groups {
		fmt.Fprintf(w, "%s\t\t\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %s\t%s\t\n", p.Label, p.Value)
		}
	}
	fmt.Fprintln(w, "Result\t\t")
	fmt.Fprintf(w, "  Ticks\t%d\t\n", st.Tick)
	fmt.Fprintf(w, "  Mean heat\t%.2f\t\n", st.Mean)
	fmt.Fprintf(w, "  Peak heat\t%d\t\n", st.Max)
	fmt.Fprintf(w, "  Lit cells\t%d / %d\t\n", st.Lit, cells)
	if st.Tick > 0 && elapsed > 0 {
		fmt.Fprintf(w, "  Ticks/sec\t%.0f\t\n", float64(st.Tick)/elapsed.Seconds())
	}
	w.Flush()
}

func writeChart(path string, hist *record.History) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := hist.WriteChart(out, 900, 400); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func newRecordCmd() *cobra.Command {
	var (
		outPath string
		opts    = record.DefaultOptions()
	)
	cmd := &cobra.Command{
		Use:   "record",
		Short: "render frames to an animated GIF or MJPEG AVI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return fmt.Errorf("--out is required")
			}
			if opts.Frames <= 0 {
				return fmt.Errorf("--frames must be positive, got %d", opts.Frames)
			}
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			f, err := newFire(s.Fire)
			if err != nil {
				return err
			}
			enc, err := record.Create(outPath, f, opts)
			if err != nil {
				return err
			}
			if _, err := record.Capture(f, enc, opts); err != nil {
				enc.Close()
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			w, h := f.SurfaceSize()
			log.Printf("wrote %d frames (%dx%d) to %s", opts.Frames, w, h, outPath)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&outPath, "out", "o", "", "output file (.gif or .avi)")
	fs.IntVar(&opts.Frames, "frames", opts.Frames, "frames to record")
	fs.IntVar(&opts.Skip, "skip", opts.Skip, "ticks to run before the first frame")
	fs.IntVar(&opts.Delay, "delay", opts.Delay, "gif frame delay in 1/100 s")
	fs.IntVar(&opts.FPS, "fps", opts.FPS, "avi frame rate")
	fs.IntVar(&opts.Quality, "quality", opts.Quality, "avi jpeg quality (1-100)")
	return cmd
}
