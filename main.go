/*
gfxlabs runs the graphics labs headless: the vector walkthrough, the
animated sprite and the lit cube scene with its yaw/pitch camera.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spaghettifunk/gfxlabs/engine"
	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/headless"
	"github.com/spaghettifunk/gfxlabs/testbed"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	logLevel     string
	spriteFrames int
	sceneFrames  int
	spriteMode   string
	watch        bool
	smooth       bool
	limitFPS     bool
)

func main() {
	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := fang.Execute(ctx, newRootCommand(), fang.WithVersion("0.1.0")); err != nil {
		stop()
		if errors.Is(err, core.ErrCollaboratorInit) {
			os.Exit(-1)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gfxlabs",
		Short: "Headless graphics labs",
		Long: `gfxlabs - transformations and a yaw/pitch camera without a window.

Frames are drawn by a headless renderer that records every uniform upload,
so runs are reproducible and can be inspected from tests.`,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file (defaults are used when empty)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override application.log_level")

	vectorsCmd := &cobra.Command{
		Use:   "vectors",
		Short: "Print the vector and matrix walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return testbed.RunVectors(cmd.OutOrStdout())
		},
	}

	transformsCmd := &cobra.Command{
		Use:   "transforms",
		Short: "Animate the textured quad",
		Long:  fmt.Sprintf("Animate the textured quad in one of the modes %v. Tab switches to the next mode.", config.SpriteModes),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransforms(cmd)
		},
	}
	transformsCmd.Flags().StringVar(&spriteMode, "mode", "", "Sprite animation mode (overrides sprite.mode)")
	transformsCmd.Flags().IntVar(&spriteFrames, "frames", 300, "Frames to draw (0 runs until interrupted)")

	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "Fly the camera through the cube scene",
		Long: `Fly the camera through the lit cube scene.

Controls (scripted tour when headless):
  W/S/A/D     - Move forward/backward/left/right
  E/Q         - Move up/down
  Mouse       - Yaw and pitch
  R           - Reset camera
  Esc         - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd)
		},
	}
	sceneCmd.Flags().IntVar(&sceneFrames, "frames", 600, "Frames to draw (0 runs until interrupted)")
	sceneCmd.Flags().BoolVar(&watch, "watch", false, "Reload the config file when it changes")
	sceneCmd.Flags().BoolVar(&smooth, "smooth", false, "Ease mouse look with a spring")
	sceneCmd.Flags().BoolVar(&limitFPS, "limit", false, "Hold application.target_fps instead of running flat out")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}

	root.AddCommand(vectorsCmd, transformsCmd, sceneCmd, configCmd)
	return root
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	if logLevel != "" {
		cfg.Application.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTransforms(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if spriteMode != "" {
		cfg.Sprite.Mode = spriteMode
	}
	cfg.Application.Frames = spriteFrames

	game, err := testbed.NewSpriteGame(cfg)
	if err != nil {
		return err
	}
	if err := run(cmd.Context(), game.Game, core.NewScriptedInput()); err != nil {
		return err
	}
	model, err := game.Model()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s sprite, final model matrix:\n%s\n", game.Mode(), model)
	return nil
}

func runScene(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if smooth {
		cfg.Camera.Smoothing = true
	}
	cfg.Application.Frames = sceneFrames

	game, err := testbed.NewCubesGame(cfg)
	if err != nil {
		return err
	}

	var opts []engine.Option
	if limitFPS {
		opts = append(opts, engine.WithFrameLimit())
	}
	if watch {
		if configPath == "" {
			return fmt.Errorf("--watch needs --config")
		}
		w, err := config.NewWatcher(configPath)
		if err != nil {
			return err
		}
		defer w.Close()
		w.Start(cmd.Context())
		opts = append(opts, engine.WithConfigSource(w))
	}
	if err := run(cmd.Context(), game.Game, testbed.NewTourInput(), opts...); err != nil {
		return err
	}
	camera := game.Camera()
	fmt.Fprintf(cmd.OutOrStdout(), "camera eye %s yaw %.3f pitch %.3f\n", camera.GetPosition(), camera.GetYaw(), camera.GetPitch())
	return nil
}

func run(ctx context.Context, g *engine.Game, input core.InputSource, opts ...engine.Option) error {
	if fps := g.ApplicationConfig.TargetFPS; !limitFPS && fps > 0 {
		// without a frame limit every frame is one target frame long
		opts = append([]engine.Option{engine.WithTimeSource(core.NewFixedStepSource(time.Second / time.Duration(fps)))}, opts...)
	}
	backend := headless.New()
	backend.KeepFrames = 1
	e, err := engine.New(g, backend, input, opts...)
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return errors.Join(err, e.Shutdown())
	}
	runErr := e.Run(ctx)
	fps, frameTime := e.Metrics().Frame()
	core.LogInfo("%d frames drawn (%.1f fps, %.3f ms/frame)", e.FrameCount(), fps, frameTime)
	return errors.Join(runErr, e.Shutdown())
}
