package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/bitleak/internal/config"
	"github.com/san-kum/bitleak/internal/export"
	"github.com/san-kum/bitleak/internal/script"
	"github.com/san-kum/bitleak/internal/storage"
	"github.com/san-kum/bitleak/internal/trail"
)

const svgFill = "#33cc33"

func replayScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	sc, id, err := resolveScript(st, args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed = seed
	}
	if replayRuns > 1 {
		return replayEnsemble(cmd, sc, cfg.Tuning())
	}

	var opts []script.PlayOption
	var snapshot string
	if svgPath != "" {
		viewport := sc.Viewport
		if viewport.X <= 0 || viewport.Y <= 0 {
			viewport = trail.Point{X: float64(cfg.Display.WindowWidth), Y: float64(cfg.Display.WindowHeight)}
		}
		surf := export.NewSurface(viewport, cfg.Display.FontSize, svgFill)
		best := -1
		opts = append(opts,
			script.WithSurface(surf),
			script.OnFrame(func(frame int, now float64, live int) {
				if live > best {
					best, snapshot = live, surf.Snapshot()
				}
			}),
		)
	}

	start := time.Now()
	rep, err := script.Play(cmd.Context(), sc, cfg.Tuning(), opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printReport(sc, rep, elapsed)
	if showPlot && len(rep.Live) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(rep.Live,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("live particles per frame"),
		))
	}

	if csvPath != "" {
		if err := writeLiveCSV(csvPath, rep); err != nil {
			return err
		}
		fmt.Printf("\nexported %d frames to %s\n", len(rep.Live), csvPath)
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(snapshot), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote peak frame (%d glyphs) to %s\n", rep.Peak, svgPath)
	}

	if saveRun {
		if err := st.Init(); err != nil {
			return err
		}
		if id == "" {
			if id, err = st.Save(sc); err != nil {
				return err
			}
		}
		if err := st.SaveReport(id, rep); err != nil {
			return err
		}
		fmt.Printf("recording id: %s\n", id)
	}

	if rep.Leaked != 0 {
		return fmt.Errorf("%d glyph handles leaked", rep.Leaked)
	}
	return nil
}

// resolveScript treats arg as a file path when one exists and as a store
// ID otherwise. The returned ID is empty for files.
func resolveScript(st *storage.Store, arg string) (*script.Script, string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		sc, err := script.Load(arg)
		return sc, "", err
	}
	sc, err := st.LoadScript(arg)
	if err != nil {
		return nil, "", fmt.Errorf("%s is neither a script file nor a recording: %w", arg, err)
	}
	return sc, arg, nil
}

func printReport(sc *script.Script, rep *script.Report, elapsed time.Duration) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "script:\t%s\n", sc.Name)
	fmt.Fprintf(w, "events:\t%d\n", len(sc.Events))
	fmt.Fprintf(w, "frames:\t%d (%.2fms apart)\n", rep.Frames, rep.Step)
	fmt.Fprintf(w, "spawned:\t%d\n", rep.Spawned)
	fmt.Fprintf(w, "reaped:\t%d\n", rep.Reaped)
	fmt.Fprintf(w, "cleared:\t%d\n", rep.Cleared)
	fmt.Fprintf(w, "dropped:\t%d\n", rep.Dropped)
	fmt.Fprintf(w, "toggles:\t%d\n", rep.Toggles)
	fmt.Fprintf(w, "peak:\t%d\n", rep.Peak)
	fmt.Fprintf(w, "final:\t%d\n", rep.Final)
	fmt.Fprintf(w, "leaked:\t%d\n", rep.Leaked)
	fmt.Fprintf(w, "elapsed:\t%v\n", elapsed)
	fmt.Fprintln(w, "\nmetrics:")
	for _, name := range slices.Sorted(maps.Keys(rep.Metrics)) {
		fmt.Fprintf(w, "  %s:\t%.4f\n", name, rep.Metrics[name])
	}
	w.Flush()
}

type summaryRow struct {
	name  string
	field func(*script.Report) float64
}

// replayEnsemble replays sc under --runs consecutive seeds and prints the
// spread of each summary value.
func replayEnsemble(cmd *cobra.Command, sc *script.Script, tuning trail.Tuning) error {
	start := time.Now()
	reps, err := script.NewEnsemble(sc, replayRuns, sc.Seed).Run(cmd.Context(), tuning)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	first := sc.Seed
	if first == 0 {
		first = 1
	}
	fmt.Printf("script %s, %d runs from seed %d in %v\n\n", sc.Name, len(reps), first, elapsed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tMIN\tMEAN\tMAX")
	rows := []summaryRow{
		{"spawned", func(r *script.Report) float64 { return float64(r.Spawned) }},
		{"peak", func(r *script.Report) float64 { return float64(r.Peak) }},
		{"frames", func(r *script.Report) float64 { return float64(r.Frames) }},
	}
	for _, name := range slices.Sorted(maps.Keys(reps[0].Metrics)) {
		rows = append(rows, summaryRow{name, func(r *script.Report) float64 { return r.Metrics[name] }})
	}
	leaked := 0
	for _, r := range reps {
		leaked += r.Leaked
	}
	for _, row := range rows {
		sp := script.SpreadOf(reps, row.field)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", row.name, sp.Min, sp.Mean, sp.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if leaked != 0 {
		return fmt.Errorf("%d glyph handles leaked across runs", leaked)
	}
	return nil
}

func writeLiveCSV(path string, rep *script.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"frame", "time_ms", "live"}); err != nil {
		return err
	}
	for i, live := range rep.Live {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(float64(i)*rep.Step, 'f', 3, 64),
			strconv.FormatFloat(live, 'f', 0, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func listRecordings(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tEVENTS\tDURATION\tSEED\tPEAK")
	for _, r := range recs {
		peak := "-"
		if r.Summary != nil {
			peak = strconv.Itoa(r.Summary.Peak)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2fs\t%d\t%s\n",
			r.ID,
			r.Name,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Events,
			r.Duration/1000,
			r.Seed,
			peak,
		)
	}
	return w.Flush()
}

func plotRecording(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	live, err := st.LoadLive(args[0])
	if err != nil {
		return fmt.Errorf("no replay saved for %s (run replay --save first): %w", args[0], err)
	}
	if len(live) < 2 {
		return fmt.Errorf("not enough frames to plot")
	}

	fmt.Printf("recording: %s\n", meta.ID)
	fmt.Printf("name: %s\n", meta.Name)
	fmt.Printf("frames: %d\n\n", len(live))
	fmt.Println(asciigraph.Plot(live,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live particles per frame"),
	))

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.LiveToSVG(live, 800, 240, svgFill)), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote chart to %s\n", svgPath)
	}
	return nil
}

func exportRecording(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchEngine(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if benchEvents < 1 {
		return fmt.Errorf("--events must be positive")
	}
	if benchInterval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	sizes := benchSizes(benchEvents)
	center := trail.Point{X: float64(cfg.Display.WindowWidth) / 2, Y: float64(cfg.Display.WindowHeight) / 2}

	fmt.Printf("benchmarking orbit scripts, %.1fms between events\n\n", benchInterval)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EVENTS\tFRAMES\tSPAWNED\tPEAK\tTIME\tFRAMES/SEC")

	for _, n := range sizes {
		sc := script.Orbit(n, center, center.Y/2, benchInterval)
		start := time.Now()
		rep, err := script.Play(cmd.Context(), sc, cfg.Tuning())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%v\t%.0f\n",
			n, rep.Frames, rep.Spawned, rep.Peak, elapsed, float64(rep.Frames)/elapsed.Seconds())
	}

	return w.Flush()
}

// benchSizes halves limit down to at most four distinct sizes, smallest first.
func benchSizes(limit int) []int {
	var sizes []int
	for n := limit; n >= 1 && len(sizes) < 4; n /= 2 {
		sizes = append([]int{n}, sizes...)
	}
	return sizes
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGLYPHS\tLIFESPAN\tDRIFT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%.0f-%.0fms\t%.4f\n",
			name,
			strings.Join(p.Glyphs, " "),
			p.MinLifespan,
			p.MinLifespan+p.LifespanJitter,
			p.VerticalDrift,
		)
	}
	return w.Flush()
}
