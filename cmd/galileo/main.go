package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/galileo/internal/config"
	"github.com/san-kum/galileo/internal/export"
	"github.com/san-kum/galileo/internal/gui"
	"github.com/san-kum/galileo/internal/integrators"
	"github.com/san-kum/galileo/internal/motion"
	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/storage"
	"github.com/san-kum/galileo/internal/vector"
	"github.com/san-kum/galileo/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	// window
	spinWindow bool
	// spin
	integrator string
	dt         float64
	duration   float64
	rate       float64
	spinVector string
	jsonOut    string
	// plot
	samples int
	// export
	svgWidth  int
	svgHeight int
	// term
	themeName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "galileo",
		Short:        "vector algebra playground",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".galileo", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset scene")
	rootCmd.Flags().BoolVar(&spinWindow, "spin", false, "rotate the spin vector")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the scene in a raylib window",
		RunE:  runWindow,
	}
	windowCmd.Flags().BoolVar(&spinWindow, "spin", false, "rotate the spin vector")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print every scene vector and their products",
		RunE:  showScene,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [from] [to]",
		Short: "plot the magnitude along the interpolation from one vector to another",
		Args:  cobra.ExactArgs(2),
		RunE:  plotLerp,
	}
	plotCmd.Flags().IntVar(&samples, "samples", 81, "number of samples")

	spinCmd := &cobra.Command{
		Use:   "spin",
		Short: "integrate a rotating vector and plot its magnitude",
		RunE:  runSpin,
	}
	spinCmd.Flags().StringVar(&integrator, "integrator", "", fmt.Sprintf("integrator %v", integrators.Names()))
	spinCmd.Flags().Float64Var(&dt, "dt", 0, "timestep")
	spinCmd.Flags().Float64Var(&duration, "time", 0, "duration")
	spinCmd.Flags().Float64Var(&rate, "rate", 0, "angular rate")
	spinCmd.Flags().StringVar(&spinVector, "vector", "", "vector to rotate")
	spinCmd.Flags().StringVar(&jsonOut, "json", "", "write the trajectory as JSON")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare magnitude drift of integrators (all when none given)",
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", 0, "duration")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "interactive terminal view",
		RunE:  runTerm,
	}
	termCmd.Flags().StringVar(&themeName, "theme", "chalk", fmt.Sprintf("theme %v", viz.ThemeNames()))

	initCmd := &cobra.Command{
		Use:   "init [file.yaml]",
		Short: "write the selected preset as a config file",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}

	exportCmd := &cobra.Command{
		Use:   "export [file.svg]",
		Short: "export the scene as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "save a snapshot of the scene",
		RunE:  saveScene,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}

	loadCmd := &cobra.Command{
		Use:   "load [id]",
		Short: "print a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  loadSnapshot,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(initCmd, windowCmd, showCmd, plotCmd, spinCmd, compareCmd, termCmd, exportCmd, saveCmd, listCmd, loadCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves --preset and --config. A config file wins over a preset.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, preset, config.ListPresets())
		}
		return cfg, nil
	}
	cfg := config.DefaultConfig()
	cfg.Preset = "galileo"
	return cfg, nil
}

func sceneName(cfg *config.Config) string {
	if cfg.Preset != "" {
		return cfg.Preset
	}
	return "scene"
}

func loadScene() (*config.Config, *scene.Scene, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := cfg.BuildScene(sceneName(cfg))
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadScene()
	if err != nil {
		return err
	}
	return gui.Run(cfg, s, spinWindow)
}

func showScene(cmd *cobra.Command, args []string) error {
	_, s, err := loadScene()
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderReport(s))
	return nil
}

func plotLerp(cmd *cobra.Command, args []string) error {
	_, s, err := loadScene()
	if err != nil {
		return err
	}
	from, err := s.Lookup(args[0])
	if err != nil {
		return err
	}
	to, err := s.Lookup(args[1])
	if err != nil {
		return err
	}
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", samples)
	}

	data := make([]float64, samples)
	for i := range data {
		t := float64(i) / float64(samples-1)
		data[i] = from.Lerp(to, t).Magnitude()
	}

	fmt.Printf("from: %s %s\n", args[0], viz.FormatVec(from))
	fmt.Printf("to:   %s %s\n\n", args[1], viz.FormatVec(to))
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("|lerp(%s, %s, t)| for t in [0, 1]", args[0], args[1])),
	)
	fmt.Println(graph)
	return nil
}

// spinOverrides applies command-line overrides to the configured spin.
func spinOverrides(cmd *cobra.Command, cfg *config.Config) {
	sc := &cfg.Spin
	if cmd.Flags().Changed("dt") {
		sc.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		sc.Duration = duration
	}
	if cmd.Flags().Changed("rate") {
		sc.Rate = rate
	}
	if cmd.Flags().Changed("integrator") {
		sc.Integrator = integrator
	}
	if cmd.Flags().Changed("vector") {
		sc.Vector = spinVector
	}
}

// spinSetup resolves the spin motion and the vector it starts from.
func spinSetup(cmd *cobra.Command, cfg *config.Config, s *scene.Scene) (motion.Spin, motion.Config, vector.Vec3d, error) {
	spinOverrides(cmd, cfg)
	sys, mcfg, err := cfg.Spin.Motion()
	if err != nil {
		return motion.Spin{}, motion.Config{}, vector.Vec3d{}, err
	}
	x0, err := cfg.Spin.Target(s)
	if err != nil {
		return motion.Spin{}, motion.Config{}, vector.Vec3d{}, err
	}
	return sys, mcfg, x0, nil
}

func runSpin(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadScene()
	if err != nil {
		return err
	}
	sys, mcfg, x0, err := spinSetup(cmd, cfg, s)
	if err != nil {
		return err
	}
	integ, err := integrators.New(cfg.Spin.Integrator)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := motion.Run(context.Background(), sys, integ, x0, mcfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	last := result.States[len(result.States)-1]
	exact := sys.Exact(x0, result.Times[len(result.Times)-1])

	fmt.Printf("spinning %s with %s\n", cfg.Spin.Vector, cfg.Spin.Integrator)
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", len(result.States)-1)
	fmt.Printf("final: %s\n", viz.FormatVec(last))
	fmt.Printf("exact: %s\n", viz.FormatVec(exact))
	fmt.Printf("error: %.3e\n", last.Sub(exact).Magnitude())
	fmt.Printf("drift: %.3e\n\n", result.Drift)

	graph := asciigraph.Plot(result.Magnitudes(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("|%s| vs time", cfg.Spin.Vector)),
	)
	fmt.Println(graph)

	if jsonOut != "" {
		if err := storage.ExportTrajectory(jsonOut, cfg.Spin.Vector, cfg.Spin.Integrator, mcfg, result); err != nil {
			return err
		}
		fmt.Printf("\ntrajectory written to %s\n", jsonOut)
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadScene()
	if err != nil {
		return err
	}
	sys, mcfg, x0, err := spinSetup(cmd, cfg, s)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = integrators.Names()
	}

	fmt.Printf("comparing integrators on %s (dt=%.4f, duration=%.2f)\n\n", cfg.Spin.Vector, mcfg.Dt, mcfg.Duration)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tDRIFT\tFINAL ERROR\tTIME")

	for _, name := range args {
		integ, err := integrators.New(name)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := motion.Run(context.Background(), sys, integ, x0, mcfg)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		elapsed := time.Since(start)

		last := result.States[len(result.States)-1]
		exact := sys.Exact(x0, result.Times[len(result.Times)-1])
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%v\n", name, result.Drift, last.Sub(exact).Magnitude(), elapsed)
	}

	return w.Flush()
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadScene()
	if err != nil {
		return err
	}
	// The terminal view spins whichever vector is selected.
	spinOverrides(cmd, cfg)
	sys, mcfg, err := cfg.Spin.Motion()
	if err != nil {
		return err
	}
	integ, err := integrators.New(cfg.Spin.Integrator)
	if err != nil {
		return err
	}
	return viz.RunTerm(viz.NewTerm(s, sys, integ, mcfg.Dt).WithTheme(themeName))
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("config written to %s\n", args[0])
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, s, err := loadScene()
	if err != nil {
		return err
	}
	cam := viz.NewCamera()
	cam.Reset(s.Extent())

	if err := os.WriteFile(args[0], []byte(export.SceneToSVG(s, cam, svgWidth, svgHeight)), 0644); err != nil {
		return err
	}
	fmt.Printf("exported %d arrows to %s\n", len(s.Arrows), args[0])
	return nil
}

func saveScene(cmd *cobra.Command, args []string) error {
	_, s, err := loadScene()
	if err != nil {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(s)
	if err != nil {
		return err
	}
	fmt.Printf("snapshot id: %s\n", id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tVECTORS\tARROWS")

	for _, snap := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			snap.ID,
			snap.Scene,
			snap.Timestamp.Format("2006-01-02 15:04:05"),
			snap.Vectors,
			len(snap.Arrows),
		)
	}

	return w.Flush()
}

func loadSnapshot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	s, err := st.LoadScene(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderReport(s))
	return nil
}
