package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/san-kum/bitleak/internal/config"
	"github.com/san-kum/bitleak/internal/gui"
	"github.com/san-kum/bitleak/internal/script"
	"github.com/san-kum/bitleak/internal/storage"
	"github.com/san-kum/bitleak/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	logFile    string
	verbose    bool
	// host flags
	record    bool
	frameRate int
	theme     string
	// replay flags
	csvPath    string
	saveRun    bool
	showPlot   bool
	svgPath    string
	replayRuns int
	// bench flags
	benchEvents   int
	benchInterval float64
	// config init
	force bool
)

// closeLog is set by setupLogging and run after every command.
var closeLog = func() {}

const interactive = "interactive"

func main() {
	rootCmd := &cobra.Command{
		Use:           "bitleak",
		Short:         "leak bits from your cursor",
		Annotations:   map[string]string{interactive: "true"},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.Annotations[interactive] == "true")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLog()
		},
		RunE: runTerminal,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".bitleak", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "effect preset ("+fmt.Sprint(config.ListPresets())+")")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&logFile, "log", "", "write logs to this file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	addHostFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:         "gui",
		Short:       "run the effect in a native window",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactive: "true"},
		RunE:        runWindow,
	}
	addHostFlags(guiCmd)

	replayCmd := &cobra.Command{
		Use:   "replay [id|file]",
		Short: "replay a recorded or hand written input script headlessly",
		Args:  cobra.ExactArgs(1),
		RunE:  replayScript,
	}
	replayCmd.Flags().StringVar(&csvPath, "csv", "", "write per-frame live counts to this CSV file")
	replayCmd.Flags().BoolVar(&saveRun, "save", false, "store the script and its report")
	replayCmd.Flags().BoolVar(&showPlot, "plot", true, "plot live particles over time")
	replayCmd.Flags().StringVar(&svgPath, "svg", "", "write the busiest frame to this SVG file")
	replayCmd.Flags().IntVar(&replayRuns, "runs", 1, "replay under this many consecutive seeds in parallel")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		Args:  cobra.NoArgs,
		RunE:  listRecordings,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [id]",
		Short: "plot the saved live counts of a replayed recording",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRecording,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the chart to this SVG file")

	exportCmd := &cobra.Command{
		Use:   "export [id]",
		Short: "print recording metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRecording,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the engine on synthetic orbit scripts",
		Args:  cobra.NoArgs,
		RunE:  benchEngine,
	}
	benchCmd.Flags().IntVar(&benchEvents, "events", 2000, "largest script size")
	benchCmd.Flags().Float64Var(&benchInterval, "interval", 8, "ms between input events")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list effect presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with the current settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, replayCmd, listCmd, plotCmd, exportCmd, benchCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addHostFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&record, "record", false, "record input and save it on exit")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+fmt.Sprint(viz.ThemeNames())+")")
}

// loadConfig resolves settings: defaults, then the preset, then the config
// file, then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.Display.FPS = frameRate
	}
	if cmd.Flags().Changed("theme") {
		cfg.Display.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	slog.Info("starting terminal host", "preset", preset, "seed", cfg.Seed, "fps", cfg.Display.FPS)
	rec, err := viz.Run(cfg, record)
	if err != nil {
		return err
	}
	return saveRecording(rec)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	slog.Info("starting window host",
		"width", cfg.Display.WindowWidth, "height", cfg.Display.WindowHeight, "seed", cfg.Seed)
	rec, err := gui.Run(cfg, record)
	if err != nil {
		return err
	}
	return saveRecording(rec)
}

func saveRecording(rec *script.Script) error {
	if rec == nil {
		return nil
	}
	if len(rec.Events) == 0 {
		fmt.Println("nothing recorded")
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(rec)
	if err != nil {
		return err
	}
	slog.Info("recording saved", "id", id, "events", len(rec.Events))
	fmt.Printf("recording id: %s\n", id)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "bitleak.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
