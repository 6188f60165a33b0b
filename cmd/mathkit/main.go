package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mathkit/internal/catalog"
	"github.com/san-kum/mathkit/internal/config"
	"github.com/san-kum/mathkit/internal/numeric"
	"github.com/san-kum/mathkit/internal/solver"
	"github.com/san-kum/mathkit/internal/special"
	"github.com/san-kum/mathkit/internal/storage"
	"github.com/san-kum/mathkit/internal/tui"
)

var (
	dataDir string
	from    float64
	to      float64
	samples int
	guess   float64
	tol     float64
	maxIter int
	// Config file
	configFile string
	// Preset name
	preset string
)

// main registers the mathkit commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mathkit",
		Short: "special functions and root finding lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mathkit", "data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [function]",
		Short: "sample a function over a range and plot it",
		Args:  cobra.ExactArgs(1),
		RunE:  evalFunction,
	}
	evalCmd.Flags().Float64Var(&from, "from", config.DefaultFrom, "range start")
	evalCmd.Flags().Float64Var(&to, "to", config.DefaultTo, "range end")
	evalCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	evalCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	tableCmd := &cobra.Command{
		Use:   "table [function]",
		Short: "tabulate a function over a range",
		Args:  cobra.ExactArgs(1),
		RunE:  tableFunction,
	}
	tableCmd.Flags().Float64Var(&from, "from", config.DefaultFrom, "range start")
	tableCmd.Flags().Float64Var(&to, "to", config.DefaultTo, "range end")
	tableCmd.Flags().IntVar(&samples, "samples", 20, "number of rows")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "find a root with newton-raphson",
		Args:  cobra.ExactArgs(1),
		RunE:  solveProblem,
	}
	solveCmd.Flags().Float64Var(&guess, "guess", 0, "initial guess (defaults to the problem's)")
	solveCmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "convergence tolerance")
	solveCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration cap")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "watch a newton-raphson solve iterate",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&guess, "guess", 0, "initial guess (defaults to the problem's)")
	liveCmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "convergence tolerance")
	liveCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration cap")

	perfectCmd := &cobra.Command{
		Use:   "perfect [limit]",
		Short: "list perfect numbers up to a limit",
		Args:  cobra.ExactArgs(1),
		RunE:  listPerfect,
	}

	sigmaCmd := &cobra.Command{
		Use:   "sigma [n]",
		Short: "sum of divisors of n",
		Args:  cobra.ExactArgs(1),
		RunE:  showSigma,
	}

	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "show named constants",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pi      = %.15f\n", numeric.Pi)
			fmt.Printf("e       = %.15f\n", numeric.Euler)
			fmt.Printf("phi     = %.15f\n", numeric.Phi)
			fmt.Printf("epsilon = %.2e\n", float64(numeric.Epsilon))
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved eval run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [function]",
		Short: "list available presets for a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for function: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(evalCmd, tableCmd, solveCmd, liveCmd, perfectCmd, sigmaCmd,
		constantsCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// sweep evaluates fn at evenly spaced points across [from, to]. It fails
// fast on the first domain error rather than collecting poisoned values.
func sweep(fn catalog.Function, from, to float64, samples int) (numeric.Series, error) {
	var series numeric.Series

	if samples < 2 {
		samples = 2
	}
	step := (to - from) / float64(samples-1)

	for i := 0; i < samples; i++ {
		x := from + float64(i)*step
		y, err := fn.Eval(x)
		if err != nil {
			return numeric.Series{}, fmt.Errorf("eval %s at x=%g: %w", fn.Name, x, err)
		}
		series.Append(x, y)
	}

	return series, nil
}

func evalFunction(cmd *cobra.Command, args []string) error {
	name := args[0]

	if preset != "" {
		cfg := config.GetPreset(name, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		from = cfg.From
		to = cfg.To
		samples = cfg.Samples
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("from") {
			from = cfg.From
		}
		if !cmd.Flags().Changed("to") {
			to = cfg.To
		}
		if !cmd.Flags().Changed("samples") {
			samples = cfg.Samples
		}
	}

	registry := catalog.NewRegistry()
	fn, err := registry.GetFunction(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.ListFunctions())
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("evaluating %s over [%g, %g] (%d samples)...\n", name, from, to, samples)
	start := time.Now()

	series, err := sweep(fn, from, to, samples)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	summary := series.Summary()
	runID, err := st.SaveEval(name, from, to, series, summary)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)

	graph := asciigraph.Plot(series.Ys,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s(x), x in [%g, %g]", name, from, to)),
	)
	fmt.Println(graph)

	fmt.Println("\nsummary:")
	for _, key := range []string{"min", "max", "mean"} {
		fmt.Printf("  %s: %.10g\n", key, summary[key])
	}

	return nil
}

func tableFunction(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := catalog.NewRegistry()
	fn, err := registry.GetFunction(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.ListFunctions())
	}

	series, err := sweep(fn, from, to, samples)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "X\t%s(X)\n", name)
	for i := range series.Xs {
		fmt.Fprintf(w, "%.8g\t%.12g\n", series.Xs[i], series.Ys[i])
	}

	return w.Flush()
}

func solveProblem(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := catalog.NewRegistry()
	problem, err := registry.GetProblem(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.ListProblems())
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("guess") && cfg.Solver.Guess != 0 {
			guess = cfg.Solver.Guess
		}
		if !cmd.Flags().Changed("tol") {
			tol = cfg.Solver.Tol
		}
		if !cmd.Flags().Changed("max-iter") {
			maxIter = cfg.Solver.MaxIter
		}
	}

	x0 := problem.Guess
	if cmd.Flags().Changed("guess") || guess != 0 {
		x0 = guess
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("solving %s (%s) from x0=%g...\n", name, problem.Desc, x0)
	start := time.Now()

	root, trace, err := solver.NewtonTrace(x0, problem.F, problem.DF, tol, maxIter)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.SaveSolve(name, tol, maxIter, root, trace)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ITER\tX\tF(X)\tF'(X)\t|DX|")
	for _, step := range trace {
		fmt.Fprintf(w, "%d\t%.15g\t%.3e\t%.3e\t%.3e\n",
			step.Iter, step.X, step.Y, step.Deriv, step.Delta)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nroot: %.15g\n", root)
	fmt.Printf("f(root): %.3e\n", problem.F(root))
	if !math.IsNaN(problem.Root) {
		fmt.Printf("known root: %.15g (error %.3e)\n", problem.Root, math.Abs(root-problem.Root))
	}
	if len(trace) == maxIter && maxIter > 0 && trace[len(trace)-1].Delta >= tol {
		fmt.Println("note: iteration cap reached, result is best effort")
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := catalog.NewRegistry()
	problem, err := registry.GetProblem(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.ListProblems())
	}

	x0 := problem.Guess
	if cmd.Flags().Changed("guess") {
		x0 = guess
	}

	m := tui.NewModel(problem, x0, tol, maxIter)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listPerfect(cmd *cobra.Command, args []string) error {
	limit, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid limit: %s", args[0])
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tSIGMA(N)")

	found := 0
	for n := uint64(2); n <= limit; n++ {
		if !special.IsPerfect(n) {
			continue
		}
		sum, err := special.Sigma(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\n", n, sum)
		found++
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d perfect numbers up to %d\n", found, limit)
	return nil
}

func showSigma(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid argument: %s", args[0])
	}

	sum, err := special.Sigma(n)
	if err != nil {
		return err
	}

	fmt.Printf("sigma(%d) = %d\n", n, sum)
	if special.IsPerfect(n) {
		fmt.Printf("%d is perfect\n", n)
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
	fmt.Fprintln(w, "ID\tKIND\tNAME\tTIME\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Kind,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
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
	if meta.Kind != "eval" {
		return fmt.Errorf("run %s is not an eval run", runID)
	}

	series, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if series.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("function: %s\n", meta.Name)
	fmt.Printf("samples: %d\n\n", series.Len())

	graph := asciigraph.Plot(series.Ys,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s(x), x in [%g, %g]", meta.Name, meta.From, meta.To)),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, numeric.Series{})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if series.Len() == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range series.Xs {
		row := []string{
			strconv.FormatFloat(series.Xs[i], 'f', 6, 64),
			strconv.FormatFloat(series.Ys[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, series)
}
