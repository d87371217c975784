package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/magnon-tools/spinwave/internal/analysis"
	"github.com/magnon-tools/spinwave/internal/config"
	"github.com/magnon-tools/spinwave/internal/dispersion"
	"github.com/magnon-tools/spinwave/internal/magnon"
	"github.com/magnon-tools/spinwave/internal/store"
	"github.com/magnon-tools/spinwave/internal/sweep"
	"github.com/magnon-tools/spinwave/internal/viz"
)

var (
	dataDir  string
	material string
	ms       float64
	d        float64
	aex      float64
	heff     float64
	modeNo   int
	geometry string
	pinned   bool
	kmin     float64
	kmax     float64
	points   int
	// Sweep range
	heffMin float64
	heffMax float64
	curves  int
	// Config file and preset
	configFile string
	preset     string
	// Export target
	outPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spinwave",
		Short: "spin-wave dispersion lab for ferromagnetic thin films",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".spinwave", "data directory")

	curveCmd := &cobra.Command{
		Use:   "curve [model]",
		Short: "compute and save a dispersion curve",
		Args:  cobra.ExactArgs(1),
		RunE:  runCurve,
	}
	addWaveFlags(curveCmd)
	curveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	curveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved dispersion curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "group velocity analysis of a saved curve",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare all three models on the same grid",
		RunE:  compareModels,
	}
	addWaveFlags(compareCmd)

	resoCmd := &cobra.Command{
		Use:   "reso",
		Short: "spin-wave resonance frequencies (Prabhakar-Stancil)",
		RunE:  runResonance,
	}
	addWaveFlags(resoCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "dispersion curves across an effective field range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addWaveFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&heffMin, "hmin", 4e4, "sweep start field (A/m)")
	sweepCmd.Flags().Float64Var(&heffMax, "hmax", 1.6e5, "sweep end field (A/m)")
	sweepCmd.Flags().IntVar(&curves, "curves", 4, "number of curves")
	sweepCmd.Flags().StringVar(&outPath, "out", "", "write all curves to a JSON file")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list built-in film materials",
		RunE:  listMaterials,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved curve to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved curve to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "interactive dispersion viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addWaveFlags(liveCmd)

	rootCmd.AddCommand(curveCmd, listCmd, plotCmd, analyzeCmd, compareCmd, resoCmd,
		sweepCmd, presetsCmd, materialsCmd, exportJSONCmd, exportCSVCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addWaveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&material, "material", "yig", "film material preset")
	cmd.Flags().Float64Var(&ms, "ms", 0, "saturation magnetization (A/m)")
	cmd.Flags().Float64Var(&d, "d", 0, "film thickness (m)")
	cmd.Flags().Float64Var(&aex, "aex", 0, "exchange stiffness (J/m)")
	cmd.Flags().Float64Var(&heff, "heff", config.DefaultHeff, "effective field (A/m)")
	cmd.Flags().IntVar(&modeNo, "n", 0, "thickness mode number")
	cmd.Flags().StringVar(&geometry, "geometry", config.DefaultGeometry, "propagation geometry")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "totally pinned surface spins (kalinikos-slavin)")
	cmd.Flags().Float64Var(&kmin, "kmin", config.DefaultKMin, "smallest in-plane wavenumber (rad/m)")
	cmd.Flags().Float64Var(&kmax, "kmax", config.DefaultKMax, "largest in-plane wavenumber (rad/m)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "wavenumber grid points")
}

// resolveConfig merges preset, config file, and command-line flags in
// ascending precedence, the same order the flags are applied in dynsim.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
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

	if model != "" {
		cfg.Model = model
	}

	if cmd.Flags().Changed("material") || cfg.Material.Ms == 0 {
		m, ok := config.Materials[material]
		if !ok {
			return nil, fmt.Errorf("unknown material: %s", material)
		}
		cfg.Material = m
	}
	if cmd.Flags().Changed("ms") {
		cfg.Material.Ms = ms
	}
	if cmd.Flags().Changed("d") {
		cfg.Material.Thickness = d
	}
	if cmd.Flags().Changed("aex") {
		cfg.Material.Aex = aex
	}
	if cmd.Flags().Changed("heff") {
		cfg.Wave.Heff = heff
	}
	if cmd.Flags().Changed("n") {
		cfg.Wave.ModeNo = modeNo
	}
	if cmd.Flags().Changed("geometry") {
		cfg.Wave.Config = geometry
	}
	if cmd.Flags().Changed("pinned") {
		cfg.Wave.Pinned = pinned
	}
	if cmd.Flags().Changed("kmin") {
		cfg.Wave.KMin = kmin
	}
	if cmd.Flags().Changed("kmax") {
		cfg.Wave.KMax = kmax
	}
	if cmd.Flags().Changed("points") {
		cfg.Wave.Points = points
	}

	return cfg, nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	model, err := dispersion.Build(cfg.Model, cfg.Film(), params)
	if err != nil {
		return err
	}

	fmt.Printf("computing %s dispersion...\n", cfg.Model)
	start := time.Now()

	freqs, err := model.Frequencies()
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(store.RunMetadata{
		Model:     cfg.Model,
		Ms:        cfg.Material.Ms,
		Thickness: cfg.Material.Thickness,
		Aex:       cfg.Material.Aex,
		ModeNo:    cfg.Wave.ModeNo,
		Heff:      cfg.Wave.Heff,
		Config:    cfg.Wave.Config,
		Pinned:    cfg.Wave.Pinned,
	}, params.Ksw, freqs)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d\n", len(freqs))
	fmt.Printf("fm: %.4g Hz\n", model.FrequencyScale())
	lo, hi := curveRange(freqs)
	fmt.Printf("f range: %.4g .. %.4g Hz\n", lo, hi)
	if !freqs.IsValid() {
		fmt.Println("warning: curve contains NaN/Inf (outside model validity range)")
	}

	return nil
}

func curveRange(freqs magnon.Grid) (lo, hi float64) {
	if len(freqs) == 0 {
		return 0, 0
	}
	lo, hi = freqs[0], freqs[0]
	for _, f := range freqs[1:] {
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	return lo, hi
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
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tGEOMETRY\tHEFF\tN\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.3g\t%d\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Config,
			run.Heff,
			run.ModeNo,
			run.Points,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	ksw, freqs, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	if len(freqs) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s  geometry: %s  Heff: %.3g A/m\n\n", meta.Model, meta.Config, meta.Heff)

	caption := fmt.Sprintf("f (GHz) vs ksw [%.2g .. %.2g rad/m]", ksw[0], ksw[len(ksw)-1])
	fmt.Println(viz.PlotCurve(caption, freqs))

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	ksw, freqs, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	vg, err := analysis.GroupVelocity(ksw, freqs)
	if err != nil {
		return err
	}

	fmt.Printf("group velocity: %s (%s)\n\n", meta.ID, meta.Model)

	kms := make(magnon.Grid, len(vg))
	for i, v := range vg {
		kms[i] = v / 1e3
	}
	// PlotCurve scales by 1e9; feed raw km/s values through a local plot instead.
	fmt.Println(viz.PlotRaw("v_g (km/s) vs ksw", kms))

	maxV, maxK := vg[0], ksw[0]
	for i, v := range vg {
		if v > maxV {
			maxV, maxK = v, ksw[i]
		}
	}
	fmt.Printf("\nmax v_g: %.4g m/s at ksw = %.4g rad/m\n", maxV, maxK)

	return nil
}

func compareModels(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	film := cfg.Film()

	for _, name := range dispersion.ModelNames() {
		model, err := dispersion.Build(name, film, params)
		if err != nil {
			return err
		}
		freqs, err := model.Frequencies()
		if err != nil {
			return err
		}

		caption := fmt.Sprintf("%s: f (GHz) vs ksw", name)
		fmt.Println(viz.PlotCurve(caption, freqs))
		fmt.Println()
	}

	return nil
}

func runResonance(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "prabhakar-stancil")
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	model, err := dispersion.NewPrabhakarStancil(cfg.Film(), params)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GEOMETRY\tFREQ (GHz)")
	for _, g := range []dispersion.Mode{dispersion.Normal, dispersion.Tangential} {
		f, err := model.ResonanceFrequency(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.4f\n", g, f/1e9)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	s := &sweep.FieldSweep{
		Model:   cfg.Model,
		Film:    cfg.Film(),
		Base:    params,
		HeffMin: heffMin,
		HeffMax: heffMax,
		Curves:  curves,
	}

	start := time.Now()
	results, err := s.Run(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%d curves in %v\n\n", len(results), time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HEFF (A/m)\tF MIN (GHz)\tF MAX (GHz)")
	for _, r := range results {
		lo, hi := curveRange(r.Freqs)
		fmt.Fprintf(w, "%.4g\t%.4f\t%.4f\n", r.Heff, lo/1e9, hi/1e9)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if outPath != "" {
		out := struct {
			Model  string         `json:"model"`
			Ksw    magnon.Grid    `json:"ksw_rad_per_m"`
			Curves []sweep.Result `json:"curves"`
		}{cfg.Model, params.Ksw, results}

		file, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", outPath)
	}

	return nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(config.Materials))
	for name := range config.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMS (A/m)\tTHICKNESS (m)\tAEX (J/m)")
	for _, name := range names {
		m := config.Materials[name]
		fmt.Fprintf(w, "%s\t%.3g\t%.3g\t%.3g\n", name, m.Ms, m.Thickness, m.Aex)
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	ksw, freqs, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	if outPath != "" {
		return store.ExportJSON(outPath, *meta, ksw, freqs)
	}
	return store.ExportJSONStdout(*meta, ksw, freqs)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	ksw, freqs, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	if outPath != "" {
		return store.ExportCSV(outPath, ksw, freqs)
	}
	return store.WriteCSV(os.Stdout, ksw, freqs)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	// Validate model name and starting parameters before taking over the terminal.
	if _, err := dispersion.Build(cfg.Model, cfg.Film(), params); err != nil {
		return err
	}
	return viz.Run(cfg.Model, cfg.Film(), params)
}
