package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/renmarsh/pagefx/internal/config"
	"github.com/renmarsh/pagefx/internal/tui"
	"github.com/renmarsh/pagefx/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	numCards   int
	frameRate  int
	// Timeline parameters
	batchSpec string
	staggerMs int
	stepMs    int
	height    int
	csvOut    bool
)

// main registers commands for the pagefx CLI. With no subcommand it launches
// the interactive demo.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pagefx",
		Short: "scroll reveal and foam timing playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "interactive scrolling demo",
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	demoCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	demoCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for foam timing (0 = time-based)")
	demoCmd.Flags().IntVar(&numCards, "cards", 8, "number of page cards")
	demoCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	rootCmd.Flags().AddFlagSet(demoCmd.Flags())

	timelineCmd := &cobra.Command{
		Use:   "timeline",
		Short: "chart a reveal schedule",
		RunE:  plotTimeline,
	}
	timelineCmd.Flags().StringVar(&batchSpec, "batches", "3,2,4", "comma-separated batch sizes")
	timelineCmd.Flags().IntVar(&staggerMs, "stagger", 100, "stagger between batch members (ms)")
	timelineCmd.Flags().IntVar(&stepMs, "step", 800, "scroll interval between batches (ms)")
	timelineCmd.Flags().IntVar(&height, "height", 10, "chart height")
	timelineCmd.Flags().BoolVar(&csvOut, "csv", false, "emit events as CSV instead of a chart")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "validate a config file",
		RunE:  checkConfig,
	}
	checkCmd.Flags().StringVar(&configFile, "config", "pagefx.yaml", "config file path (yaml)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "write a default config file",
		RunE:  writeConfig,
	}
	initCmd.Flags().StringVar(&configFile, "config", "pagefx.yaml", "config file path (yaml)")
	initCmd.Flags().StringVar(&preset, "preset", "default", "preset to write")

	rootCmd.AddCommand(demoCmd, timelineCmd, presetsCmd, checkCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// A config file overrides the preset.
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return tui.Run(cfg, numCards, frameRate)
}

func plotTimeline(cmd *cobra.Command, args []string) error {
	var batches []int
	for _, part := range strings.Split(batchSpec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return fmt.Errorf("bad batch size: %q", part)
		}
		batches = append(batches, n)
	}
	if len(batches) == 0 {
		return fmt.Errorf("no batches given")
	}

	stagger := time.Duration(staggerMs) * time.Millisecond
	step := time.Duration(stepMs) * time.Millisecond

	if csvOut {
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"index", "batch", "at_ms"}); err != nil {
			return err
		}
		for _, e := range viz.Events(batches, stagger, step) {
			row := []string{
				strconv.Itoa(e.Index),
				strconv.Itoa(e.Batch),
				strconv.FormatInt(e.At.Milliseconds(), 10),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	chart := viz.Timeline(batches, stagger, step, height)
	if chart == "" {
		return fmt.Errorf("nothing to chart")
	}
	fmt.Println(chart)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTAGGER\tDURATION\tEASING\tOFFSET\tFOAM CYCLE")

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dms\t%.2fs\t%s\t%.0fpx\t%.0fs\n",
			name,
			cfg.Reveal.StaggerMs,
			cfg.Reveal.Duration,
			cfg.Reveal.Easing,
			cfg.Reveal.OffsetPx,
			cfg.Foam.PrimaryDuration,
		)
	}

	return w.Flush()
}

func checkConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", configFile, err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "threshold\t%g\n", cfg.Reveal.Threshold)
	fmt.Fprintf(w, "bottom margin\t%gpx\n", cfg.Reveal.BottomMargin)
	fmt.Fprintf(w, "stagger\t%dms\n", cfg.Reveal.StaggerMs)
	fmt.Fprintf(w, "transition\t%gs %s\n", cfg.Reveal.Duration, cfg.Reveal.Easing)
	fmt.Fprintf(w, "offset\t%gpx\n", cfg.Reveal.OffsetPx)
	fmt.Fprintf(w, "selectors\t%s\n", strings.Join(cfg.Selectors, ", "))
	fmt.Fprintf(w, "foam primary\t%gs cycle, %+gs/cell\n", cfg.Foam.PrimaryDuration, cfg.Foam.PrimaryStep)
	fmt.Fprintf(w, "foam interstitial\t%gs cycle, %+gs/cell\n", cfg.Foam.InterstitialDuration, cfg.Foam.InterstitialStep)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("%s: ok\n", configFile)
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	if err := config.Save(configFile, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", configFile)
	return nil
}
