package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/cardash/internal/config"
	"github.com/san-kum/cardash/internal/hw"
	"github.com/san-kum/cardash/internal/storage"
	"github.com/san-kum/cardash/internal/tasks"
	"github.com/san-kum/cardash/internal/tui"
)

// sampleInterval is the telemetry recording rate for headless runs.
const sampleInterval = 100 * time.Millisecond

var (
	dataDir    string
	debug      bool
	configFile string
	duration   float64
	record     bool
	runName    string
)

func main() {
	log.SetLevel(log.InfoLevel)

	rootCmd := &cobra.Command{
		Use:   "cardash",
		Short: "vehicle dashboard simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cardash", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scripted simulation",
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds (overrides config)")
	runCmd.Flags().BoolVar(&record, "record", false, "record the telemetry trace")
	runCmd.Flags().StringVar(&runName, "name", "drive", "recorded run name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDash() error {
	port := hw.NewSimPort()
	display := hw.NewTextDisplay()

	dash, err := tasks.NewDashboard(port, port, display, tasks.DefaultRates())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := dash.Run(ctx); err != nil {
			log.WithError(err).Error("dashboard stopped")
		}
	}()

	p := tea.NewProgram(tui.NewModel(dash, port, display, cancel))
	_, err = p.Run()
	return err
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}
	if duration > 0 {
		cfg.Duration = duration
	}

	events, err := cfg.SwitchEvents()
	if err != nil {
		return err
	}

	port := hw.NewSimPort()
	display := hw.NewTextDisplay()
	dash, err := tasks.NewDashboard(port, port, display, cfg.TaskRates())
	if err != nil {
		return err
	}
	script := hw.NewScript(port, events)

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Duration*float64(time.Second)))
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- dash.Run(ctx) }()

	log.WithFields(log.Fields{"duration": cfg.Duration, "events": len(events)}).
		Info("starting scripted run")

	var trace []storage.Sample
	start := time.Now()
	ticker := time.NewTicker(sampleInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			elapsed := time.Since(start)
			script.Advance(elapsed)
			trace = append(trace, storage.Sample{
				Time:     elapsed.Seconds(),
				Snapshot: dash.Snapshot(),
			})
		}
	}
	if err := <-done; err != nil {
		return err
	}

	fmt.Println("summary:")
	for name, val := range storage.Summarize(trace) {
		fmt.Printf("  %s: %.3f\n", name, val)
	}
	fmt.Println("\ndisplay:")
	for _, row := range display.Rows() {
		fmt.Printf("  |%s|\n", row)
	}

	if record {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(runName, cfg.Duration, trace)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tDURATION\tDISTANCE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%.2f\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Summary["distance"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(trace))

	speed := make([]float64, len(trace))
	average := make([]float64, len(trace))
	for i, sm := range trace {
		speed[i] = sm.Speed
		average[i] = sm.AverageSpeed
	}

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{speed, "speed (km/h)"},
		{average, "average speed (km/h)"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}
