package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/ncscatter/internal/config"
	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/plugin"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	inelas     string
	incohElas  bool
	cohElas    bool
	// sampling
	energy  float64
	events  int
	workers int
	seed    uint64
	batch   int
	// cross-section grid
	emin    float64
	emax    float64
	points  int
	plot    bool
	svgPath string
	// export
	withEvents bool
	outPath    string
	// histograms and live view
	bins      int
	maxEvents int
	watch     bool
)

func main() {
	envCfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "ncscatter",
		Short:         "cutoff scattering model plugin for the neutron scattering host",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", envCfg.DataDir, "data directory [NCSCATTER_DATA]")
	pf.StringVar(&configFile, "config", envCfg.ConfigFile, "material config file, yaml or toml [NCSCATTER_CONFIG]")
	pf.StringVar(&logLevel, "log-level", envCfg.LogLevel, "log level: debug, info, warn, error [NCSCATTER_LOG_LEVEL]")
	pf.StringVar(&inelas, "inelas", envCfg.Inelas, "inelastic mode [NCSCATTER_INELAS]")
	pf.BoolVar(&incohElas, "incoh-elas", true, "enable incoherent elastic scattering")
	pf.BoolVar(&cohElas, "coh-elas", true, "enable coherent elastic scattering")

	factoriesCmd := &cobra.Command{
		Use:   "factories",
		Short: "list registered factories",
		RunE:  listFactories,
	}

	queryCmd := &cobra.Command{
		Use:   "query [material]",
		Short: "show factory priorities for a material",
		Args:  cobra.ExactArgs(1),
		RunE:  queryMaterial,
	}

	xsectCmd := &cobra.Command{
		Use:   "xsect [material]",
		Short: "tabulate the cross-section of the selected process",
		Args:  cobra.ExactArgs(1),
		RunE:  tabulateCrossSection,
	}
	xsectCmd.Flags().Float64Var(&emin, "emin", config.DefaultEmin, "lowest energy (eV)")
	xsectCmd.Flags().Float64Var(&emax, "emax", config.DefaultEmax, "highest energy (eV)")
	xsectCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of grid points")
	xsectCmd.Flags().BoolVar(&plot, "plot", false, "plot instead of printing a table")
	xsectCmd.Flags().StringVar(&svgPath, "svg", "", "write the curve to an svg file")

	sampleCmd := &cobra.Command{
		Use:   "sample [material]",
		Short: "sample scattering events and store the run",
		Args:  cobra.ExactArgs(1),
		RunE:  sampleMaterial,
	}
	addSamplingFlags(sampleCmd, envCfg)

	liveCmd := &cobra.Command{
		Use:   "live [material]",
		Short: "fill a scattering cosine histogram live",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSamplingFlags(liveCmd, envCfg)
	liveCmd.Flags().IntVar(&bins, "bins", 20, "histogram bins")
	liveCmd.Flags().IntVar(&maxEvents, "max-events", 0, "stop after this many events (0 = unlimited)")
	liveCmd.Flags().BoolVar(&watch, "watch", false, "reload the material when the config file changes")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().BoolVar(&withEvents, "events", false, "include sampled events")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	histCmd := &cobra.Command{
		Use:   "hist [run_id]",
		Short: "histogram of scattering cosines of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  histRun,
	}
	histCmd.Flags().IntVar(&bins, "bins", 20, "histogram bins")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(factoriesCmd, queryCmd, xsectCmd, sampleCmd, liveCmd, listCmd, exportCmd, histCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addSamplingFlags(cmd *cobra.Command, envCfg config.Env) {
	cmd.Flags().Float64Var(&energy, "energy", config.DefaultEnergy, "incident energy (eV)")
	cmd.Flags().IntVar(&events, "events", config.DefaultEvents, "number of events")
	cmd.Flags().IntVar(&workers, "workers", envCfg.Workers, "sampling workers [NCSCATTER_WORKERS]")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&batch, "batch", config.DefaultBatchSize, "events per batch")
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

// env is what every command needs: the effective config and a registry with
// the standard and plugin factories installed.
type env struct {
	cfg      *config.Config
	registry *host.Registry
	logger   *slog.Logger
}

func setup(cmd *cobra.Command) (*env, error) {
	logger, err := newLogger(logLevel)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	cfg := config.DefaultConfig()
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debug("config loaded", "path", configFile, "materials", len(cfg.Materials))
	}
	applyFlags(cmd, cfg)

	registry := host.NewRegistry(logger)
	if err := registry.Register(host.NewStdFactory()); err != nil {
		return nil, err
	}
	if err := plugin.Register(registry); err != nil {
		return nil, err
	}

	return &env{cfg: cfg, registry: registry, logger: logger}, nil
}

// applyFlags lets explicitly set CLI flags, and the environment variables
// backing their defaults, override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name, envKey string) bool {
		_, fromEnv := os.LookupEnv(envKey)
		return flags.Changed(name) || fromEnv
	}
	if set("inelas", "NCSCATTER_INELAS") {
		cfg.Request.Inelas = inelas
	}
	if flags.Changed("incoh-elas") {
		cfg.Request.IncohElas = incohElas
	}
	if flags.Changed("coh-elas") {
		cfg.Request.CohElas = cohElas
	}
	if flags.Changed("energy") {
		cfg.Sampling.Energy = energy
	}
	if flags.Changed("events") {
		cfg.Sampling.Events = events
	}
	if set("workers", "NCSCATTER_WORKERS") {
		cfg.Sampling.Workers = workers
	}
	if flags.Changed("seed") {
		cfg.Sampling.Seed = seed
	}
	if flags.Changed("batch") {
		cfg.Sampling.BatchSize = batch
	}
	if flags.Changed("emin") {
		cfg.Grid.Emin = emin
	}
	if flags.Changed("emax") {
		cfg.Grid.Emax = emax
	}
	if flags.Changed("points") {
		cfg.Grid.Points = points
	}
}
