package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/ncscatter/internal/config"
	"github.com/san-kum/ncscatter/internal/export"
	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/physics"
	"github.com/san-kum/ncscatter/internal/sampling"
	"github.com/san-kum/ncscatter/internal/storage"
	"github.com/san-kum/ncscatter/internal/viz"
)

func listFactories(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	for _, f := range e.registry.Factories() {
		fmt.Printf("  %s\n", f.Name())
	}
	return nil
}

func queryMaterial(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	req, err := e.cfg.Request(args[0])
	if err != nil {
		return err
	}

	cands, err := e.registry.QueryAll(req)
	if err != nil {
		return err
	}
	fmt.Println(viz.Subtle.Render(req.String()))
	fmt.Print(viz.RenderCandidates(cands))
	if len(cands) == 0 || !cands[0].Priority.CanServe() {
		return host.ErrNoFactory
	}
	return nil
}

// resolve parses the material argument and lets the registry pick a process.
func (e *env) resolve(arg string) (*host.ScatterRequest, host.Process, error) {
	req, err := e.cfg.Request(arg)
	if err != nil {
		return nil, nil, err
	}
	proc, err := e.registry.CreateScatter(req)
	if err != nil {
		return nil, nil, err
	}
	e.logger.Info("process created", "request", req.String(), "process", proc.Name())
	return req, proc, nil
}

func tabulateCrossSection(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	req, proc, err := e.resolve(args[0])
	if err != nil {
		return err
	}

	grid, err := sampling.LogGrid(e.cfg.Grid.Emin, e.cfg.Grid.Emax, e.cfg.Grid.Points)
	if err != nil {
		return err
	}
	cache := host.NewCache()
	xs := make([]float64, len(grid))
	for i, ekin := range grid {
		xs[i] = float64(proc.CrossSectionIsotropic(cache, host.NeutronEnergy(ekin)))
	}

	if svgPath != "" {
		pts := make([]export.Point, len(grid))
		for i := range grid {
			pts[i] = export.Point{X: grid[i], Y: xs[i]}
		}
		svg, err := export.CurveToSVG(pts, export.DefaultCurveOptions())
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	if plot {
		caption := fmt.Sprintf("%s: %s, cross-section (barn) vs energy index", req.MaterialName(), proc.Name())
		fmt.Println(viz.PlotCrossSection(grid, xs, caption))
		return nil
	}

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s  %s", req.MaterialName(), proc.Name())))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENERGY (eV)\tWAVELENGTH (Aa)\tXS (barn)")
	for i, ekin := range grid {
		fmt.Fprintf(w, "%.6g\t%.6g\t%.6g\n", ekin, physics.EkinToWavelength(ekin), xs[i])
	}
	return w.Flush()
}

func sampleMaterial(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	req, proc, err := e.resolve(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ens := sampling.NewEnsemble(proc)
	for _, m := range sampling.DefaultMetrics() {
		ens.AddMetric(m)
	}
	cfg := e.cfg.SamplingConfig()

	fmt.Printf("sampling %d events of %s at %g eV with %d workers...\n",
		cfg.Events, req.MaterialName(), cfg.Energy, cfg.Workers)
	result, err := ens.Run(ctx, cfg)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunInfo{
		Material: req.MaterialName(),
		Request:  req.String(),
		Process:  proc.Name(),
		Seed:     cfg.Seed,
		Workers:  cfg.Workers,
	}, result)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	e.logger.Debug("run saved", "id", runID, "dir", dataDir)

	fmt.Printf("\nrun: %s\n", runID)
	fmt.Printf("process: %s\n", proc.Name())
	fmt.Printf("cross-section: %.6g barn\n\n", result.CrossSection)
	fmt.Print(viz.RenderMetrics(result.Metrics, metricNames(result.Metrics)))
	return nil
}

func metricNames(metrics map[string]float64) []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runLive(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	req, proc, err := e.resolve(args[0])
	if err != nil {
		return err
	}
	s := e.cfg.Sampling
	m := viz.NewModel(proc, req.MaterialName(), s.Energy, s.Seed, bins, s.BatchSize, maxEvents)
	if !watch {
		return viz.Run(m)
	}
	if configFile == "" {
		return fmt.Errorf("--watch needs a config file")
	}

	w, err := config.NewWatcher(configFile, 200*time.Millisecond)
	if err != nil {
		return err
	}
	defer w.Stop()
	changes, err := w.Start()
	if err != nil {
		return err
	}

	// the terminal belongs to the live view from here on
	e.logger = slog.New(slog.DiscardHandler)
	p := viz.NewProgram(m)
	go func() {
		for {
			select {
			case <-changes:
				p.Send(e.reload(cmd, args[0]))
			case err := <-w.Errors():
				p.Send(viz.ReloadErrMsg{Err: err})
			}
		}
	}()
	_, err = p.Run()
	return err
}

// reload re-reads the config file and resolves the material again.
func (e *env) reload(cmd *cobra.Command, arg string) tea.Msg {
	cfg, err := config.Load(configFile)
	if err != nil {
		e.logger.Warn("config reload failed", "path", configFile, "err", err)
		return viz.ReloadErrMsg{Err: err}
	}
	applyFlags(cmd, cfg)
	e.cfg = cfg

	_, proc, err := e.resolve(arg)
	if err != nil {
		e.logger.Warn("material reload failed", "material", arg, "err", err)
		return viz.ReloadErrMsg{Err: err}
	}
	return viz.ProcessMsg{Proc: proc}
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATERIAL\tPROCESS\tENERGY (eV)\tEVENTS\tXS (barn)\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%d\t%.6g\t%s\n",
			r.ID, r.Material, r.Process, r.Energy, r.Events, r.CrossSection,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	data, err := store.Export(args[0], withEvents)
	if err != nil {
		return err
	}
	if outPath == "" {
		return storage.WriteJSON(os.Stdout, data)
	}
	if err := storage.ExportJSON(outPath, data); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], outPath)
	return nil
}

func histRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	events, err := store.LoadEvents(args[0])
	if err != nil {
		return err
	}

	h := sampling.NewHistogram(bins)
	h.FillAll(events)
	mean, stddev := sampling.MuStats(events)

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s  %s  %g eV", meta.Material, meta.Process, meta.Energy)))
	fmt.Print(viz.RenderHistogram(h, 40, lipgloss.NewStyle().Foreground(viz.Themes[0].Bar)))
	fmt.Printf("\nmu: mean %.4f  stddev %.4f  (%d events)\n", mean, stddev, h.Total)
	return nil
}
