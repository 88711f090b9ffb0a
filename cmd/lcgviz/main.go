package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mpetriv/lcgviz/internal/analysis"
	"github.com/mpetriv/lcgviz/internal/config"
	"github.com/mpetriv/lcgviz/internal/export"
	"github.com/mpetriv/lcgviz/internal/layout"
	"github.com/mpetriv/lcgviz/internal/lcg"
	"github.com/mpetriv/lcgviz/internal/orbit"
	"github.com/mpetriv/lcgviz/internal/storage"
	"github.com/mpetriv/lcgviz/internal/viz"
)

var (
	dataDir    string
	modulus    int64
	multiplier int64
	increment  int64
	seed       int64
	delayMs    int
	theme      string
	bins       int
	configFile string
	preset     string
	outFile    string
	svgSize    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lcgviz",
		Short: "visualize the orbit structure of linear congruential generators",
		RunE:  runOrbit,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lcgviz", "data directory")

	addParamFlags := func(cmd *cobra.Command) {
		cmd.Flags().Int64VarP(&modulus, "modulus", "m", config.DefaultModulus, "modulus (m > 0)")
		cmd.Flags().Int64VarP(&multiplier, "multiplier", "a", config.DefaultMultiplier, "multiplier")
		cmd.Flags().Int64VarP(&increment, "increment", "c", config.DefaultIncrement, "increment")
		cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "seed")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	}

	addParamFlags(rootCmd)
	rootCmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "inter-step delay in milliseconds")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate a trajectory and save the run",
		RunE:  runGenerate,
	}
	addParamFlags(runCmd)

	orbitCmd := &cobra.Command{
		Use:   "orbit",
		Short: "animate the orbit in the terminal",
		RunE:  runOrbit,
	}
	addParamFlags(orbitCmd)
	orbitCmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "inter-step delay in milliseconds")
	orbitCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "orbit statistics and residue histogram",
		RunE:  analyzeParams,
	}
	addParamFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")

	compareCmd := &cobra.Command{
		Use:   "compare [modulus] [multiplier...]",
		Short: "compare multipliers over the same modulus",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareMultipliers,
	}
	compareCmd.Flags().Int64VarP(&increment, "increment", "c", config.DefaultIncrement, "increment")
	compareCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "seed")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render the orbit to SVG",
		RunE:  exportSVG,
	}
	addParamFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 640, "image size in pixels")
	exportSVGCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMODULUS\tA\tC\tSEED")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", name, p.Modulus, p.Multiplier, p.Increment, p.Seed)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, orbitCmd, listCmd, plotCmd, analyzeCmd, compareCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and explicit flags, later
// sources winning field by field.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("modulus") {
		cfg.Modulus = modulus
	}
	if cmd.Flags().Changed("multiplier") {
		cfg.Multiplier = multiplier
	}
	if cmd.Flags().Changed("increment") {
		cfg.Increment = increment
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("delay") {
		cfg.DelayMs = delayMs
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("bins") {
		cfg.Bins = bins
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	traj, err := lcg.Generate(cfg.Params())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(traj)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "modulus\t%d\n", traj.Params.Modulus)
	fmt.Fprintf(w, "multiplier\t%d\n", traj.Params.Multiplier)
	fmt.Fprintf(w, "increment\t%d\n", traj.Params.Increment)
	fmt.Fprintf(w, "seed\t%d\n", traj.Params.Seed)
	fmt.Fprintf(w, "steps\t%d\n", len(traj.Steps))
	fmt.Fprintf(w, "tail length\t%d\n", traj.Cycle.TailLength)
	fmt.Fprintf(w, "cycle length\t%d\n", traj.Cycle.Length)
	fmt.Fprintf(w, "cycle entry\t%d\n", traj.Cycle.Start)
	fmt.Fprintf(w, "full period\t%t\n", lcg.FullPeriod(traj.Params))
	return w.Flush()
}

func runOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg.Params(), cfg.Theme, time.Duration(cfg.DelayMs)*time.Millisecond)
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
	fmt.Fprintln(w, "ID\tTIME\tM\tA\tC\tSEED\tTAIL\tCYCLE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Modulus,
			run.Multiplier,
			run.Increment,
			run.Seed,
			run.TailLength,
			run.CycleLen,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(traj.Steps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", args[0])
	fmt.Printf("m=%d a=%d c=%d seed=%d\n", traj.Params.Modulus, traj.Params.Multiplier, traj.Params.Increment, traj.Params.Seed)
	fmt.Printf("tail %d, cycle %d\n\n", traj.Cycle.TailLength, traj.Cycle.Length)

	data := make([]float64, len(traj.Steps))
	for i, s := range traj.Steps {
		data[i] = float64(s.Value)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("residue value vs step"),
	)
	fmt.Println(graph)

	return nil
}

func analyzeParams(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	stats, err := analysis.Compute(cfg.Params(), cfg.Bins)
	if err != nil {
		return err
	}

	fmt.Printf("orbit analysis: m=%d a=%d c=%d seed=%d\n\n", cfg.Modulus, cfg.Multiplier, cfg.Increment, cfg.Seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "tail_length\t%d\n", stats.Cycle.TailLength)
	fmt.Fprintf(w, "cycle_length\t%d\n", stats.Cycle.Length)
	fmt.Fprintf(w, "period_fraction\t%.6f\n", stats.PeriodFraction)
	fmt.Fprintf(w, "coverage\t%.6f\n", stats.Coverage)
	fmt.Fprintf(w, "serial_correlation\t%+.6f\n", stats.SerialCorrelation)
	fmt.Fprintf(w, "uniformity_chi2\t%.6f\n", stats.UniformityChi2)
	fmt.Fprintf(w, "full_period\t%t\n", lcg.FullPeriod(cfg.Params()))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	graph := asciigraph.Plot(stats.Histogram,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("cycle residues over %d bins", cfg.Bins)),
	)
	fmt.Println(graph)

	return nil
}

func compareMultipliers(cmd *cobra.Command, args []string) error {
	m, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid modulus: %s", args[0])
	}

	fmt.Printf("comparing multipliers for m=%d (c=%d, seed=%d)\n\n", m, increment, seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "A\tTAIL\tCYCLE\tPERIOD\tFULL\tSERIAL")

	for _, arg := range args[1:] {
		a, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: not an integer\n", arg)
			continue
		}

		p := lcg.Params{Modulus: m, Multiplier: a, Increment: increment, Seed: seed}
		stats, err := analysis.Compute(p, 0)
		if err != nil {
			fmt.Fprintf(w, "%d\terror: %v\n", a, err)
			continue
		}

		fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\t%t\t%+.4f\n",
			a,
			stats.Cycle.TailLength,
			stats.Cycle.Length,
			stats.PeriodFraction,
			lcg.FullPeriod(p),
			stats.SerialCorrelation,
		)
	}

	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	out := struct {
		storage.RunMetadata
		Values []int64 `json:"values"`
	}{
		RunMetadata: *meta,
		Values:      traj.Values(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "value"}); err != nil {
		return err
	}
	for _, s := range traj.Steps {
		if err := w.Write([]string{strconv.Itoa(s.Index), strconv.FormatInt(s.Value, 10)}); err != nil {
			return err
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Modulus > orbit.MaxDrawableModulus {
		return fmt.Errorf("modulus %d exceeds drawable maximum %d", cfg.Modulus, orbit.MaxDrawableModulus)
	}

	traj, err := lcg.Generate(cfg.Params())
	if err != nil {
		return err
	}

	size := float64(svgSize)
	lcfg := layout.Config{
		CenterX:      size / 2,
		CenterY:      size / 2,
		Radius:       size/2 - size/12,
		MarkerRadius: size / 80,
	}
	scene := orbit.Build(traj, lcfg, viz.GetTheme(cfg.Theme).EdgeBase)
	svg := export.OrbitSVG(scene, svgSize, svgSize)

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
