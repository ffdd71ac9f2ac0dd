package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/carpenter/internal/config"
	"github.com/Faultbox/carpenter/internal/logger"
	"github.com/Faultbox/carpenter/internal/watch"
	"github.com/Faultbox/carpenter/internal/writer"
	"github.com/Faultbox/carpenter/pkg/blockmodel"
	"github.com/Faultbox/carpenter/pkg/formats"
	"github.com/Faultbox/carpenter/pkg/scene"
)

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	flags := config.BindFlags(fs)
	save := fs.Bool("save", false, "Remember export settings in the project file")
	cfg, path := setup(fs, flags, args, "export [options] <model.bbmodel>")
	defer logger.Sync()

	paths, err := exportProject(path, cfg, *save, logger.Named("export"))
	if err != nil {
		fatal(err)
	}
	reportExport(os.Stdout, path, paths)
}

// reportExport prints the written paths and logs a summary.
func reportExport(w io.Writer, project string, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	logger.Info("exported", zap.String("project", project), zap.Int("models", len(paths)))
}

func cmdWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	flags := config.BindFlags(fs)
	cfg, path := setup(fs, flags, args, "watch [options] <model.bbmodel>")
	defer logger.Sync()

	log := logger.Named("watch")
	rebuild := func(context.Context) error {
		paths, err := exportProject(path, cfg, false, log)
		if err != nil {
			return err
		}
		log.Info("exported", zap.Int("models", len(paths)))
		return nil
	}

	// Export once up front so the output matches the project before the first save.
	if err := rebuild(context.Background()); err != nil {
		logger.Error("export failed", zap.String("project", path), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watch.Run(ctx, path, time.Duration(cfg.Watch.Debounce), rebuild, log); err != nil {
		fatal(err)
	}
}

// exportProject compiles the project at path and writes its models. With
// save set the resolved furniture settings are written back to the project.
func exportProject(path string, cfg *config.Config, save bool, log *zap.Logger) ([]string, error) {
	p, data, err := loadProject(path)
	if err != nil {
		return nil, err
	}

	props := furnitureProps(p, cfg)
	dest := props.Destination
	if dest == "" {
		dest = filepath.Dir(path)
	}

	settings := blockmodel.SettingsFromProject(p, cfg.Export.Credit, cfg.Export.Minified)
	compiler := blockmodel.NewCompiler(settings, p.Textures, log)
	compiler.PostProcess = extraFields(cfg.Export.Extra)
	result := compiler.Compile(p.Root, exportOptions(props, cfg))
	log.Debug("compiled", zap.String("project", p.Name), zap.Int("models", result.Len()))

	paths, err := writer.Write(dest, result, writer.Options{
		Minified:      cfg.Export.Minified,
		ResourceNames: cfg.Export.ResourceNames,
		Log:           log,
	})
	if err != nil {
		return paths, err
	}

	if save && props != p.Furniture {
		updated, err := formats.UpdateFurniture(data, props)
		if err != nil {
			return paths, err
		}
		if err := os.WriteFile(path, updated, 0644); err != nil {
			return paths, fmt.Errorf("saving project: %w", err)
		}
		log.Info("saved export settings", zap.String("project", path))
	}
	return paths, nil
}

// furnitureProps returns the project's furniture settings overridden by
// any value set in cfg.
func furnitureProps(p *scene.Project, cfg *config.Config) scene.FurnitureProps {
	props := p.Furniture
	if cfg.Export.Destination != "" {
		props.Destination = cfg.Export.Destination
	}
	if cfg.Export.ItemModel != "" {
		props.ItemModel = cfg.Export.ItemModel
	}
	if cfg.Export.Textures != nil {
		props.Textures = *cfg.Export.Textures
	}
	return props
}

func exportOptions(props scene.FurnitureProps, cfg *config.Config) blockmodel.Options {
	opts := blockmodel.Options{
		Textures:  blockmodel.Bool(props.Textures),
		ItemModel: props.ItemModel,
	}
	if !cfg.Export.CubeNames {
		opts.CubeName = blockmodel.Bool(false)
	}
	return opts
}

// extraFields returns a post-process hook adding fields to every document
// in key order.
func extraFields(extra map[string]any) blockmodel.PostProcessFunc {
	if len(extra) == 0 {
		return nil
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return func(doc *blockmodel.Document, _ blockmodel.Options) {
		for _, k := range keys {
			doc.Set(k, extra[k])
		}
	}
}
