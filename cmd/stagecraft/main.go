package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stagecraft/internal/config"
	"github.com/san-kum/stagecraft/internal/scene"
	"github.com/san-kum/stagecraft/internal/take"
	"github.com/san-kum/stagecraft/internal/tui"
)

var (
	dataDir    string
	configFile string
	tickMs     int
	idleMs     int
	theme      string
	noRecord   bool
)

// main registers the stagecraft commands. Running without a subcommand
// plays the default scene.
func main() {
	rootCmd := &cobra.Command{
		Use:   "stagecraft",
		Short: "scripted ai-response demos for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, []string{config.DefaultScene})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stagecraft", "take data directory")

	demoCmd := &cobra.Command{
		Use:   "demo [scene]",
		Short: "play a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	demoCmd.Flags().IntVar(&tickMs, "tick", 0, "reveal cadence in ms (overrides scene)")
	demoCmd.Flags().IntVar(&idleMs, "idle", 0, "chrome idle threshold in ms")
	demoCmd.Flags().StringVar(&theme, "theme", "", "color theme")
	demoCmd.Flags().BoolVar(&noRecord, "no-record", false, "do not save a take")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list scenes",
		RunE:  listScenes,
	}

	takesCmd := &cobra.Command{
		Use:   "takes",
		Short: "list recorded takes",
		RunE:  listTakes,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [take_id]",
		Short: "plot a take's reveal timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTake,
	}

	exportCmd := &cobra.Command{
		Use:   "export [take_id]",
		Short: "export a take as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportTake,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(demoCmd, scenesCmd, takesCmd, plotCmd, exportCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("tick") {
		cfg.TickIntervalMs = tickMs
	}
	if cmd.Flags().Changed("idle") {
		cfg.IdleThresholdMs = idleMs
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	registry := scene.NewRegistry()
	sc, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.Names())
	}

	// flag cadence overrides the scene's own
	if cmd.Flags().Changed("tick") {
		sc.TickIntervalMs = cfg.TickIntervalMs
	}
	if cmd.Flags().Changed("theme") {
		sc.Theme = cfg.Theme
	}

	var store *take.Store
	if !noRecord {
		store = take.New(cfg.DataDir)
		if err := store.Init(); err != nil {
			return err
		}
	}

	return tui.Run(sc, cfg, store)
}

func listScenes(cmd *cobra.Command, args []string) error {
	registry := scene.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tCADENCE\tTHEME\tSOURCES")
	for _, name := range registry.Names() {
		sc, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%dms\t%s\t%d\n",
			sc.Name, sc.Title, sc.TickIntervalMs, sc.Theme, len(sc.Disclosures))
	}
	return w.Flush()
}

func listTakes(cmd *cobra.Command, args []string) error {
	st := take.New(dataDir)
	takes, err := st.List()
	if err != nil {
		return err
	}

	if len(takes) == 0 {
		fmt.Println("no takes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tCADENCE\tGRAPHEMES\tELAPSED")
	for _, t := range takes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dms\t%d\t%.2fs\n",
			t.ID,
			t.Scene,
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.TickIntervalMs,
			t.Graphemes,
			t.FinalElapsed,
		)
	}
	return w.Flush()
}

func plotTake(cmd *cobra.Command, args []string) error {
	takeID := args[0]

	st := take.New(dataDir)
	meta, err := st.Load(takeID)
	if err != nil {
		return err
	}
	points, err := st.LoadTimeline(takeID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("take: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(points))

	revealed := make([]float64, len(points))
	elapsed := make([]float64, len(points))
	for i, p := range points {
		revealed[i] = float64(p.Revealed)
		elapsed[i] = p.Elapsed
	}

	fmt.Println(asciigraph.Plot(revealed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("revealed graphemes vs tick"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(elapsed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("elapsed seconds vs tick"),
	))
	return nil
}

func exportTake(cmd *cobra.Command, args []string) error {
	takeID := args[0]

	st := take.New(dataDir)
	meta, err := st.Load(takeID)
	if err != nil {
		return err
	}
	points, err := st.LoadTimeline(takeID)
	if err != nil {
		return err
	}
	return take.ExportJSON(os.Stdout, meta, points)
}

func writeConfig(cmd *cobra.Command, args []string) error {
	path := "stagecraft.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
