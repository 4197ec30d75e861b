package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/scaffoldview/internal/app"
	"github.com/philipparndt/scaffoldview/internal/config"
	"github.com/philipparndt/scaffoldview/internal/gui"
	"github.com/philipparndt/scaffoldview/internal/logger"
	"github.com/philipparndt/scaffoldview/pkg/scaffold"
	"github.com/philipparndt/scaffoldview/pkg/scene"
	"github.com/philipparndt/scaffoldview/pkg/viewer"
)

const inputPrompt = "Enter path to input JSON file: "

func runRender(cmd *cobra.Command, opts *options, args []string) error {
	path := opts.input
	if path == "" && len(args) == 1 {
		path = args[0]
	}

	if path == "" {
		var err error
		path, err = promptInput(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	cfg := opts.cfg
	styles, err := cfg.Style.Styles()
	if err != nil {
		return err
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	load := frameLoader(path, opts.sceneOptions(cmd), styles)

	logger.Info("rendering",
		zap.String("file", path),
		zap.String("backend", cfg.Display.Backend))

	if cfg.Display.Backend == config.BackendPNG {
		if cfg.Watch {
			logger.Warn("watch mode needs a window backend, ignoring")
		}
		return renderPNG(cmd, load, cfg, viewer.RasterRenderer{
			Width:      cfg.Display.Width,
			Height:     cfg.Display.Height,
			Background: background,
		})
	}

	window := viewer.WindowOptions{
		Title:      "scaffoldview - " + path,
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Background: background,
		Log:        logger.Log,
	}
	if cfg.Watch {
		window.Watch = []string{path}
	}

	if cfg.Display.Backend == config.BackendFyne {
		return gui.Run(load, window)
	}
	return app.Run(load, window)
}

// promptInput asks for the input path on stdin. An empty answer is a usage error.
func promptInput(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, inputPrompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input path: %w", err)
	}

	path := strings.TrimSpace(line)
	if path == "" {
		return "", usageErrorf("Input file is required.")
	}
	return path, nil
}

// loadScene parses the file and builds a fresh frame from it
func loadScene(path string, opts scene.Options, styles scene.Styles) (*scaffold.Model, *scene.Frame, error) {
	model, err := scaffold.Parse(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	frame := scene.Build(model.Parts, opts, styles)
	logger.Debug("frame built",
		zap.Int("parts", frame.Parts),
		zap.Int("segments", len(frame.Segments)),
		zap.Int("highlighted", frame.HighlightedParts()))
	return model, frame, nil
}

// frameLoader reloads the scene on every call
func frameLoader(path string, opts scene.Options, styles scene.Styles) scene.Loader {
	return func() (*scene.Frame, error) {
		_, frame, err := loadScene(path, opts, styles)
		return frame, err
	}
}

func renderPNG(cmd *cobra.Command, load scene.Loader, cfg *config.Config, raster viewer.RasterRenderer) error {
	frame, err := load()
	if err != nil {
		return err
	}

	if err := raster.Save(cfg.Display.Output, frame); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	logger.Sugar.Infow("image written",
		"path", cfg.Display.Output,
		"width", raster.Width,
		"height", raster.Height,
		"segments", len(frame.Segments))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d, %d parts)\n",
		cfg.Display.Output, raster.Width, raster.Height, frame.Parts)
	return nil
}
