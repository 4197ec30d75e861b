// Package cmd implements the scaffoldview command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/scaffoldview/internal/config"
	"github.com/philipparndt/scaffoldview/internal/logger"
	"github.com/philipparndt/scaffoldview/pkg/scene"
	"github.com/philipparndt/scaffoldview/version"
)

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Is(target error) bool { return target == ErrUsage }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// options holds every flag of the command tree
type options struct {
	input string

	tx, ty, tz float64
	rz         float64
	highlight  string
	ortho      bool
	viewX      bool
	viewY      bool
	viewZ      bool

	backend string
	output  string
	width   int
	height  int
	watch   bool

	configPath string
	logLevel   string
	logFile    string

	cfg *config.Config
}

// NewRootCommand builds the scaffoldview command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "scaffoldview [file]",
		Short: "3D wireframe viewer for scaffold JSON files",
		Long: `scaffoldview draws the parts of a scaffold JSON file as 3D wireframe boxes.
The whole scene can be translated and rotated about Z, one part name can be
highlighted, and the view can be orthographic or aligned to an axis.

Example:
  scaffoldview -f scaffold-1.json -h1 ScaffoldingBox -tx 15.5 -tz -1.2 -rz 90 -vo -vz`,
		Version: version.GetFullVersion(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageErrorf("accepts at most one input file, received %d", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "f", "", "Input JSON file")
	flags.StringVar(&opts.backend, "backend", "", "Renderer: raylib, fyne or png")
	flags.StringVarP(&opts.output, "output", "o", "", "Write a PNG image instead of opening a window")
	flags.IntVar(&opts.width, "width", 0, "Window or image width in pixels")
	flags.IntVar(&opts.height, "height", 0, "Window or image height in pixels")
	flags.BoolVar(&opts.watch, "watch", false, "Reload when the input file changes")

	// Scene flags apply to the subcommands as well
	persistent := rootCmd.PersistentFlags()
	persistent.Float64Var(&opts.tx, "tx", 0, "Translate the scene along X")
	persistent.Float64Var(&opts.ty, "ty", 0, "Translate the scene along Y")
	persistent.Float64Var(&opts.tz, "tz", 0, "Translate the scene along Z")
	persistent.Float64Var(&opts.rz, "rz", 0, "Rotate the scene about Z (degrees, after translation)")
	persistent.StringVar(&opts.highlight, "h1", "", "Highlight parts with this exact name")
	persistent.BoolVar(&opts.ortho, "vo", false, "Orthographic view")
	persistent.BoolVar(&opts.viewX, "vx", false, "View along the X axis")
	persistent.BoolVar(&opts.viewY, "vy", false, "View along the Y axis")
	persistent.BoolVar(&opts.viewZ, "vz", false, "View along the Z axis (top)")

	persistent.StringVar(&opts.configPath, "config", "", "Config file (default ./scaffoldview.yaml)")
	persistent.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	persistent.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")

	rootCmd.AddCommand(newInfoCommand(opts))
	rootCmd.AddCommand(newEdgesCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// setup loads the configuration, applies flag overrides and starts logging
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Display.Backend = o.backend
	}
	if flags.Changed("output") {
		cfg.Display.Output = o.output
		cfg.Display.Backend = config.BackendPNG
	}
	if flags.Changed("width") {
		cfg.Display.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Display.Height = o.height
	}
	if flags.Changed("watch") {
		cfg.Watch = o.watch
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = o.logFile
	}

	if err := cfg.Validate(); err != nil {
		return usageErrorf("invalid configuration: %v", err)
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.File != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.File)
	}
	if err := logger.InitWithWriter(cfg.Logging.Level, fileCfg, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	o.cfg = cfg
	return nil
}

// sceneOptions converts the scene flags
func (o *options) sceneOptions(cmd *cobra.Command) scene.Options {
	opts := scene.Options{
		TX:           o.tx,
		TY:           o.ty,
		TZ:           o.tz,
		RZ:           o.rz,
		Orthographic: o.ortho,
		AxisView:     scene.ResolveAxisView(o.viewX, o.viewY, o.viewZ),
	}

	if cmd.Flags().Changed("h1") {
		highlight := o.highlight
		opts.Highlight = &highlight
	}

	set := 0
	for _, v := range []bool{o.viewX, o.viewY, o.viewZ} {
		if v {
			set++
		}
	}
	if set > 1 {
		logger.Warn("several axis views requested, using the first of x, y, z",
			zap.Stringer("view", opts.AxisView))
	}

	return opts
}

// Execute runs the command line and exits with its status
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	logger.Sync()

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitUsage
	default:
		logger.Debug("command failed", zap.Error(err))
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitError
	}
}
