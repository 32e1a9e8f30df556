package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/decaylab/internal/config"
	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/experiment"
	"github.com/san-kum/decaylab/internal/export"
	"github.com/san-kum/decaylab/internal/solver"
	"github.com/san-kum/decaylab/internal/storage"
	"github.com/san-kum/decaylab/internal/tui"
	"github.com/san-kum/decaylab/internal/viz"
)

var (
	dataDir  string
	initial  float64
	decayA   float64
	duration float64
	dt       float64
	theta    float64
	thetas   []float64
	levels   int
	workers  int
	showPlot bool
	saveRun  bool
	svgPath  string
	format   string
	// Config file and preset
	configFile string
	preset     string
)

// main registers the decaylab commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "decaylab",
		Short: "theta-method laboratory for the linear decay equation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".decaylab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "run one theta-method solve",
		RunE:  runSolve,
	}
	addProblemFlags(solveCmd)
	solveCmd.Flags().Float64Var(&theta, "theta", 0.5, "scheme weight in [0,1]")
	solveCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the trajectory")
	solveCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "sweep theta values and compare against the exact solution",
		RunE:  runCompare,
	}
	addProblemFlags(compareCmd)
	compareCmd.Flags().Float64SliceVar(&thetas, "thetas", []float64{0, 0.5, 1}, "theta values to sweep")
	compareCmd.Flags().IntVar(&workers, "workers", 0, "parallel solver workers (0 = sequential)")
	compareCmd.Flags().BoolVar(&showPlot, "plot", false, "plot all trajectories")
	compareCmd.Flags().BoolVar(&saveRun, "save", false, "persist the sweep")
	compareCmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG comparison plot to this path")

	convergenceCmd := &cobra.Command{
		Use:   "convergence",
		Short: "halve dt repeatedly and report observed convergence rates",
		RunE:  runConvergence,
	}
	addProblemFlags(convergenceCmd)
	convergenceCmd.Flags().Float64Var(&theta, "theta", 0.5, "scheme weight in [0,1]")
	convergenceCmd.Flags().IntVar(&levels, "levels", config.DefaultLevels, "number of dt halvings")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json|csv)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "replay a solve step by step in the terminal",
		RunE:  runLive,
	}
	addProblemFlags(liveCmd)
	liveCmd.Flags().Float64Var(&theta, "theta", 0.5, "scheme weight in [0,1]")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(solveCmd, compareCmd, convergenceCmd, listCmd, plotCmd, exportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&initial, "initial", config.DefaultInitial, "initial value u(0)")
	cmd.Flags().Float64Var(&decayA, "decay", config.DefaultDecay, "decay rate a")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "requested horizon T")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "requested timestep")
}

// resolveConfig layers defaults, preset, config file and explicit flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("initial") {
		cfg.Initial = initial
	}
	if f.Changed("decay") {
		cfg.Decay = decayA
	}
	if f.Changed("time") {
		cfg.Duration = duration
	}
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("theta") {
		cfg.Theta = theta
	}
	if f.Changed("thetas") {
		cfg.Thetas = thetas
	}
	if f.Changed("levels") {
		cfg.Levels = levels
	}

	return cfg, nil
}

func reportHorizon(res *decay.Result) {
	if res.Adjusted() {
		fmt.Println(viz.WarnStyle.Render(
			fmt.Sprintf("note: horizon adjusted from T=%g to T=%g (Nt=%d)",
				res.TRequested, res.TActual, res.Nt)))
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := cfg.Params()
	res, err := solver.Solve(p)
	if err != nil {
		return err
	}

	errL2, err := decay.L2Norm(res.U, res.T, p.I, p.A, res.Dt)
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(decay.SchemeName(p.Theta)))
	reportHorizon(res)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "dt\t%.6g\n", res.Dt)
	fmt.Fprintf(w, "steps\t%d\n", res.Nt)
	fmt.Fprintf(w, "horizon\t%.6g\n", res.TActual)
	fmt.Fprintf(w, "amplification\t%.6g\n", solver.Amplification(p.Theta, p.A, p.Dt))
	fmt.Fprintf(w, "stability\t%s\n", viz.StabilityMark(solver.Stable(p.Theta, p.A, p.Dt)))
	fmt.Fprintf(w, "L2 error\t%.6e\n", errL2)
	if err := w.Flush(); err != nil {
		return err
	}

	if showPlot {
		exact := decay.Sample(res.T, p.I, p.A)
		fmt.Println()
		fmt.Println(viz.SolvePlot(res, exact, 80, 15))
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(p, res, errL2)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := cfg.Params()
	var ds *experiment.Dataset
	if workers > 0 {
		ds, err = experiment.Sweep(context.Background(), p, cfg.Thetas, workers)
	} else {
		ds, err = experiment.Compare(p, cfg.Thetas)
	}
	if err != nil {
		return err
	}

	first := ds.Runs[ds.Thetas[0]].Result
	fmt.Println(viz.Title.Render("theta comparison"))
	reportHorizon(first)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "THETA\tSCHEME\tAMPLIFICATION\tSTABILITY\tL2 ERROR")
	for _, th := range ds.Thetas {
		run := ds.Runs[th]
		fmt.Fprintf(w, "%g\t%s\t%.6g\t%s\t%.6e\n",
			th,
			decay.SchemeName(th),
			solver.Amplification(th, p.A, p.Dt),
			viz.StabilityMark(solver.Stable(th, p.A, p.Dt)),
			run.L2,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showPlot {
		fmt.Println()
		fmt.Println(viz.ComparePlot(ds, 80, 15))
	}

	if svgPath != "" {
		svg := export.DatasetSVG(ds, 800, 500)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgPath)
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveDataset(ds)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := cfg.Params()
	lvls, err := experiment.Convergence(p, cfg.Levels)
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("convergence: %s", decay.SchemeName(p.Theta))))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tL2 ERROR\tRATE")
	for k, lvl := range lvls {
		rate := "-"
		if k > 0 {
			rate = fmt.Sprintf("%.3f", lvl.Rate)
		}
		fmt.Fprintf(w, "%.6g\t%d\t%.6e\t%s\n", lvl.Dt, lvl.Nt, lvl.L2, rate)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tKIND\tTIME\tSCHEME\tDT\tHORIZON\tL2 ERROR")
	for _, run := range runs {
		scheme := run.Scheme
		if run.Kind == "compare" {
			scheme = fmt.Sprintf("%d thetas", len(run.Thetas))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4g\t%.4g\t%.4e\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			scheme,
			run.Dt,
			run.TActual,
			run.ErrorL2,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	labels, _, values, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(meta.ID))
	fmt.Println(viz.MultiPlot(values, labels, 80, 15,
		fmt.Sprintf("dt=%g, t in [0, %g]", meta.Dt, meta.TActual)))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	case "csv":
		file, err := os.Open(filepath.Join(dataDir, args[0], "series.csv"))
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.Copy(os.Stdout, file)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := cfg.Params()
	res, err := solver.Solve(p)
	if err != nil {
		return err
	}

	return tui.Run(p, res)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tI\tA\tDT\tT\tTHETAS")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%v\n",
			name, cfg.Initial, cfg.Decay, cfg.Dt, cfg.Duration, cfg.Thetas)
	}
	return w.Flush()
}
