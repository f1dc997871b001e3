package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/springlab/internal/chain"
	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/matrix"
	"github.com/san-kum/springlab/internal/solve"
	"github.com/san-kum/springlab/internal/store"
	"github.com/san-kum/springlab/internal/tui"
	"github.com/san-kum/springlab/internal/viz"
)

var (
	dataDir string

	springConstants string
	masses          string
	numMasses       int
	numSprings      int
	fixTop          bool
	fixBottom       bool
	gravity         float64
	configFile      string
	preset          string
	noSave          bool

	// matrix command
	rows           int
	cols           int
	diagonalOffset bool
	legacyShape    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springlab",
		Short: "static analysis of spring-mass chains",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springlab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the chain force balance",
		RunE:  runSolve,
	}
	addChainFlags(solveCmd)
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	matrixCmd := &cobra.Command{
		Use:   "matrix",
		Short: "print the difference matrix",
		RunE:  runMatrix,
	}
	matrixCmd.Flags().IntVar(&rows, "rows", 4, "matrix rows")
	matrixCmd.Flags().IntVar(&cols, "cols", 4, "matrix columns")
	matrixCmd.Flags().BoolVar(&diagonalOffset, "diagonal_offset", false, "shift the +1 band one extra column right")
	matrixCmd.Flags().BoolVar(&legacyShape, "legacy_shape", false, "write only the historical 4x4 block")
	matrixCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	matrixCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	systemCmd := &cobra.Command{
		Use:   "system",
		Short: "render the chain diagram",
		RunE:  runSystem,
	}
	addChainFlags(systemCmd)
	systemCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	systemCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run results to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run results to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive chain editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addChainFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	tuiCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(solveCmd, matrixCmd, systemCmd, listCmd, showCmd,
		plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addChainFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&springConstants, "spring_constants", config.DefaultSpringConstants, "comma-separated spring constants")
	cmd.Flags().StringVar(&masses, "masses", config.DefaultMasses, "comma-separated masses")
	cmd.Flags().IntVar(&numMasses, "num_masses", config.DefaultNumMasses, "declared number of masses")
	cmd.Flags().IntVar(&numSprings, "num_springs", config.DefaultNumSprings, "declared number of springs")
	cmd.Flags().BoolVar(&fixTop, "fix_top", true, "top spring is anchored to a fixed end")
	cmd.Flags().BoolVar(&fixBottom, "fix_bottom", false, "bottom spring is anchored to a fixed end")
	cmd.Flags().Float64Var(&gravity, "gravity", matrix.Gravity, "gravitational acceleration")
}

// resolveConfig merges preset, config file and explicit flags, flags
// winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("spring_constants") {
		cfg.SpringConstants = springConstants
	}
	if cmd.Flags().Changed("masses") {
		cfg.Masses = masses
	}
	if cmd.Flags().Changed("fix_top") {
		cfg.FixTop = fixTop
	}
	if cmd.Flags().Changed("fix_bottom") {
		cfg.FixBottom = fixBottom
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = gravity
	}

	return cfg, nil
}

func buildChain(cmd *cobra.Command, cfg *config.Config) (chain.Chain, error) {
	ch, err := cfg.BuildChain()
	if err != nil {
		return chain.Chain{}, err
	}

	// Declared counts are only cross-checked when given explicitly.
	declSprings, declMasses := -1, -1
	if cmd.Flags().Changed("num_springs") {
		declSprings = numSprings
	}
	if cmd.Flags().Changed("num_masses") {
		declMasses = numMasses
	}
	if err := ch.ValidateCounts(declSprings, declMasses); err != nil {
		return chain.Chain{}, err
	}

	return ch, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ch, err := buildChain(cmd, cfg)
	if err != nil {
		return err
	}

	fmt.Println("Your system:")
	fmt.Println(ch.RenderStyled())

	sol, err := solve.Solve(ch, solve.Options{Gravity: cfg.Gravity})
	if err != nil {
		return err
	}

	fmt.Printf("l2-condition of A: %s\n", viz.Value.Render(fmt.Sprintf("%.4f", sol.CondA)))
	fmt.Printf("l2-condition of C: %s\n", viz.Value.Render(fmt.Sprintf("%.4f", sol.CondC)))
	fmt.Printf("l2-condition of A transpose: %s\n\n", viz.Value.Render(fmt.Sprintf("%.4f", sol.CondAT)))

	if math.IsInf(sol.CondA, 1) || math.IsInf(sol.CondC, 1) || math.IsInf(sol.CondAT, 1) {
		fmt.Println(viz.Warn.Render("warning: singular system, solved quantities are minimum-norm"))
		fmt.Println()
	}

	fmt.Println(viz.Header.Render("displacements"))
	fmt.Print(viz.FormatVec("u", sol.Displacements))
	fmt.Println()
	fmt.Println(viz.Header.Render("spring tensions"))
	fmt.Print(viz.FormatVec("w", sol.Tensions))

	if noSave {
		return nil
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(ch, cfg.Gravity, sol)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", viz.Dim.Render("run id: "+runID))
	return nil
}

func runMatrix(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Flags win over the config file; a configured shape fills in
	// unset dimensions, rows from the spring count and columns from
	// the mass count.
	if cmd.Flags().Changed("legacy_shape") {
		cfg.LegacyShape = legacyShape
	}
	if configFile != "" || preset != "" {
		if !cmd.Flags().Changed("rows") && cfg.NumSprings > 0 {
			rows = cfg.NumSprings
		}
		if !cmd.Flags().Changed("cols") && cfg.NumMasses > 0 {
			cols = cfg.NumMasses
		}
	}

	m, err := matrix.Difference(rows, cols, diagonalOffset, cfg.MatrixOptions()...)
	if err != nil {
		return err
	}

	fmt.Print(viz.FormatMatrix(m))
	return nil
}

func runSystem(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ch, err := buildChain(cmd, cfg)
	if err != nil {
		return err
	}

	fmt.Println("Your system:")
	fmt.Println(ch.RenderStyled())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSPRINGS\tMASSES\tTOP\tBOTTOM\tCOND(A)")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%v\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NumSprings,
			run.NumMasses,
			run.FixTop,
			run.FixBottom,
			run.CondA,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("springs: %d, masses: %d\n\n", meta.NumSprings, meta.NumMasses)

	fmt.Println(viz.PlotSeries("displacement per mass", res.Displacements))
	fmt.Println()
	fmt.Println(viz.PlotSeries("tension per spring", res.Tensions))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	res, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"kind", "index", "value"}); err != nil {
		return err
	}
	series := []struct {
		kind string
		vals []float64
	}{
		{"displacement", res.Displacements},
		{"tension", res.Tensions},
		{"elongation", res.Elongations},
	}
	for _, s := range series {
		for i, v := range s.vals {
			row := []string{s.kind, strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSONStdout(meta, res)
}
