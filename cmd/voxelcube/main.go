package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/coreman2200/voxelcube/internal/app"
	"github.com/coreman2200/voxelcube/internal/clock"
	"github.com/coreman2200/voxelcube/internal/config"
	"github.com/coreman2200/voxelcube/internal/effects"
	"github.com/coreman2200/voxelcube/internal/geometry"
	"github.com/coreman2200/voxelcube/internal/layout"
	"github.com/coreman2200/voxelcube/internal/preview"
)

var (
	configPath  string
	logLevel    string
	tickMs      int
	seed        int64
	previewMode string
	brightness  uint8
	writePath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "voxelcube",
		Short:         "LED cube effects simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Play the configured program",
		RunE:  runProgram,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&previewMode, "preview", config.PreviewASCII, "preview: none | screen | ascii")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Play the program in an interactive terminal view",
		RunE:  runTUI,
	}
	addRunFlags(tuiCmd)

	effectsCmd := &cobra.Command{
		Use:   "effects",
		Short: "List the available effects",
		RunE:  listEffects,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "save the effective configuration to this path")

	rootCmd.AddCommand(runCmd, tuiCmd, effectsCmd, configCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("voxelcube")
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&tickMs, "tick-ms", 10, "tick period in milliseconds")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	cmd.Flags().Uint8Var(&brightness, "brightness", effects.MaxBrightness, "brightness limit 0..10")
}

func setupLogging(cmd *cobra.Command) error {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if logLevel != "" {
		lvl, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		zerolog.SetGlobalLevel(lvl)
	}
	return nil
}

// loadConfig reads --config when given and applies flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("tick-ms") {
		cfg.TickMs = tickMs
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("brightness") {
		cfg.Brightness = brightness
	}
	if flags.Changed("preview") {
		cfg.Preview.Mode = previewMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logLevel == "" {
		lvl, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zerolog.SetGlobalLevel(lvl)
	}
	return cfg, nil
}

func openSink(cfg *config.Config) (preview.Sink, func(), error) {
	n := geometry.Default{}.Size()
	switch cfg.Preview.Mode {
	case config.PreviewScreen:
		if _, err := host.Init(); err != nil {
			return nil, nil, fmt.Errorf("host init: %w", err)
		}
		l := layout.New(n, cfg.Preview.Serpentine)
		s := preview.NewDrawerSink(screen.New(l.Count()), l, cfg.Preview.Hue)
		return s, func() {
			if err := s.Close(); err != nil {
				log.Warn().Err(err).Msg("halt preview")
			}
		}, nil
	case config.PreviewASCII:
		return preview.NewTextSink(os.Stdout, cfg.Preview.Hue), func() {}, nil
	}
	return nil, func() {}, nil
}

func runProgram(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sink, closeSink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	core, err := app.InitCore(cfg, clock.NewSystem(), sink, log.Logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Uint8("size", core.Cube.Size()).
		Int("clips", len(cfg.Program.Clips)).
		Bool("loop", cfg.Program.Loop).
		Str("preview", cfg.Preview.Mode).
		Msg("playing")
	return core.Conductor.Run(ctx, time.Duration(cfg.TickMs)*time.Millisecond)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// the alternate screen owns the terminal
	core, err := app.InitCore(cfg, clock.NewSystem(), nil, zerolog.Nop())
	if err != nil {
		return err
	}
	return app.RunTUI(core, time.Duration(cfg.TickMs)*time.Millisecond, cfg.Preview.Hue)
}

func listEffects(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME")
	for i, e := range effects.Registered() {
		fmt.Fprintf(w, "%d\t%s\n", i, e.Name())
	}
	return w.Flush()
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if writePath != "" {
		if err := config.Save(writePath, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		log.Info().Str("path", writePath).Msg("config saved")
		return nil
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
