package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/export"
	"github.com/san-kum/physlab/internal/logging"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/scenario"
	"github.com/san-kum/physlab/internal/viz"
)

var (
	logLevel   string
	configFile string
	preset     string
	sets       []string
	dt         float64
	maxTime    float64
	maxSteps   int
	rate       float64
	width      int
	height     int
	theme      string
	graphs     bool
	svgFile    string
	csvFile    string
	jsonOut    bool
	perFrame   int
	sweepParam string
	sweepVals  []float64
)

// main registers the commands and runs the root command. With no
// subcommand it opens the interactive scenario picker.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "physlab",
		Short:         "physics teaching lab: motion maps, axes, timers and graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(os.Stderr, logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunApp(viz.NewApp(scenario.NewRegistry(), viz.LiveOptions{
				Width:  config.DefaultWidth,
				Height: config.DefaultHeight,
				Theme:  config.DefaultTheme,
			}))
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error, off)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list scenarios",
		RunE:  listScenarios,
	}

	paramsCmd := &cobra.Command{
		Use:   "params [scenario]",
		Short: "list the parameters of a scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  listParams,
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario to completion and print its summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addRunFlags(runCmd)
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many steps (0 = no limit)")
	runCmd.Flags().BoolVar(&graphs, "graphs", false, "print the graphs after the run")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the run and its graphs as JSON")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "write the final scene to an SVG file")
	runCmd.Flags().StringVar(&csvFile, "csv", "", "write the first graph to a CSV file")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	liveCmd.Flags().BoolVar(&graphs, "graphs", true, "show graphs under the scene")
	liveCmd.Flags().IntVar(&perFrame, "steps-per-frame", 0, "steps per redraw (0 = about 1/30 s of simulated time)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "run a scenario once per value of one parameter, concurrently",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "parameter to vary")
	sweepCmd.Flags().Float64SliceVar(&sweepVals, "values", nil, "comma-separated parameter values")
	sweepCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop each run after this many steps (0 = no limit)")
	_ = sweepCmd.MarkFlagRequired("param")
	_ = sweepCmd.MarkFlagRequired("values")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, paramsCmd, runCmd, liveCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Logger.Error().Err(err).Msg("physlab failed")
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a parameter, name=value (repeatable)")
	cmd.Flags().Float64Var(&dt, "dt", 0, "time step (0 = scenario default)")
	cmd.Flags().Float64Var(&maxTime, "max-time", 0, "stop at this simulated time (0 = scenario decides)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "steps per second (0 = unthrottled)")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "view width in cells")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "view height in cells")
}

func listScenarios(cmd *cobra.Command, args []string) error {
	reg := scenario.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDT\tDESCRIPTION")
	for _, name := range reg.List() {
		s, err := reg.Get(name, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%g\t%s\n", name, s.DefaultDt(), s.Description())
	}
	return w.Flush()
}

func listParams(cmd *cobra.Command, args []string) error {
	s, err := scenario.NewRegistry().Get(args[0], nil)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tDEFAULT\tUSAGE")
	for _, p := range s.ParamList() {
		fmt.Fprintf(w, "%s\t%g\t%s\n", p.Name, p.Value, p.Usage)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	s, err := scenario.NewRegistry().Get(cfg.Scenario, cfg.Params)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scene := render.NewScene(s.Name())
	res, err := scenario.Run(ctx, s, scene, scenario.RunConfig{
		Dt:       cfg.Dt,
		MaxTime:  cfg.MaxTime,
		Rate:     cfg.Rate,
		MaxSteps: maxSteps,
	})
	if err != nil {
		return err
	}
	stepDt := cfg.Dt
	if stepDt == 0 {
		stepDt = s.DefaultDt()
	}

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.SceneToSVG(scene, 800, 600)), 0644); err != nil {
			return err
		}
	}
	if csvFile != "" {
		if err := writeFirstGraph(csvFile, scene); err != nil {
			return err
		}
	}
	if jsonOut {
		return export.WriteJSON(os.Stdout, export.NewRunData(s, stepDt, res, scene))
	}

	fmt.Printf("%s: %s after %d steps (%v)\n", s.Name(), res.Reason, res.Steps, res.Elapsed.Round(time.Millisecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, st := range res.Summary {
		fmt.Fprintf(w, "  %s\t%s\n", st.Name, st.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.View.Graphs {
		for _, g := range viz.RenderGraphs(scene, cfg.View.Width-10, cfg.View.Height/2) {
			fmt.Println()
			fmt.Println(g)
		}
	}
	return nil
}

func writeFirstGraph(path string, scene *render.Scene) error {
	displays := scene.Displays()
	if len(displays) == 0 {
		return fmt.Errorf("scenario draws no graphs")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteCSV(f, displays[0])
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	reg := scenario.NewRegistry()
	factory := func() (scenario.Scenario, error) {
		return reg.Get(cfg.Scenario, cfg.Params)
	}

	m, err := viz.NewLive(factory, cfg.Dt, viz.LiveOptions{
		Width:         cfg.View.Width,
		Height:        cfg.View.Height,
		Theme:         cfg.View.Theme,
		Graphs:        cfg.View.Graphs,
		MaxTime:       cfg.MaxTime,
		StepsPerFrame: perFrame,
	})
	if err != nil {
		return err
	}
	return viz.RunLive(m)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runs, err := scenario.Sweep(ctx, scenario.NewRegistry(), cfg.Scenario, cfg.Params, sweepParam, sweepVals, scenario.RunConfig{
		Dt:       cfg.Dt,
		MaxTime:  cfg.MaxTime,
		Rate:     cfg.Rate,
		MaxSteps: maxSteps,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := []string{strings.ToUpper(sweepParam), "STEPS", "STOP"}
	if len(runs) > 0 {
		for _, st := range runs[0].Result.Summary {
			header = append(header, strings.ToUpper(st.Name))
		}
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, run := range runs {
		row := []string{fmt.Sprintf("%g", run.Value), fmt.Sprintf("%d", run.Result.Steps), string(run.Result.Reason)}
		for _, st := range run.Result.Summary {
			row = append(row, st.Value)
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
