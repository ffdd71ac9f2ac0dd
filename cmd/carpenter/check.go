package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/Faultbox/carpenter/internal/config"
	"github.com/Faultbox/carpenter/internal/logger"
	"github.com/Faultbox/carpenter/pkg/blockmodel"
	"github.com/Faultbox/carpenter/pkg/formats"
	"github.com/Faultbox/carpenter/pkg/scene"
)

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	flags := config.BindFlags(fs)
	cfg, path := setup(fs, flags, args, "check [options] <model.bbmodel>")
	defer logger.Sync()

	p, _, err := loadProject(path)
	if err != nil {
		fatal(err)
	}

	issues := blockmodel.Lint(p, limiter(cfg))
	if printIssues(os.Stdout, issues) {
		logger.Sync()
		os.Exit(1)
	}
}

func cmdFix(args []string) {
	fs := flag.NewFlagSet("fix", flag.ExitOnError)
	flags := config.BindFlags(fs)
	mode := fs.String("mode", "", "How to bring cubes back in bounds: move or clamp")
	dryRun := fs.Bool("dry-run", false, "Report changes without writing the project")
	cfg, path := setup(fs, flags, args, "fix [-mode move|clamp] [-dry-run] <model.bbmodel>")
	defer logger.Sync()

	if *mode != "" {
		cfg.Bounds.Mode = *mode
	}
	if cfg.Bounds.Mode != "move" && cfg.Bounds.Mode != "clamp" {
		fatal(fmt.Errorf("unknown mode %q (expected move or clamp)", cfg.Bounds.Mode))
	}

	p, data, err := loadProject(path)
	if err != nil {
		fatal(err)
	}

	boxes := fixBounds(p, limiter(cfg), cfg.Bounds.Mode, logger.Named("fix"))
	if len(boxes) == 0 {
		fmt.Println("All cubes are within bounds")
		return
	}
	fmt.Printf("%d cube(s) fixed\n", len(boxes))
	if *dryRun {
		logger.Warn("dry run, project not written", zap.String("project", path))
		return
	}

	updated, err := formats.UpdateCubeBounds(data, boxes)
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(path, updated, 0644); err != nil {
		fatal(fmt.Errorf("saving project: %w", err))
	}
}

func limiter(cfg *config.Config) blockmodel.Limiter {
	return blockmodel.Limiter{Low: cfg.Bounds.Low, High: cfg.Bounds.High}
}

// fixBounds moves or clamps every exported cube outside l and returns the
// new corners by cube uuid.
func fixBounds(p *scene.Project, l blockmodel.Limiter, mode string, log *zap.Logger) map[string]formats.CubeBox {
	boxes := make(map[string]formats.CubeBox)
	scene.Walk(p.Root, func(_ *scene.Group, c *scene.Cube) {
		if !c.Export || !l.Test(c, nil) {
			return
		}
		if c.UUID == "" {
			log.Warn("cube has no uuid, cannot write it back", zap.String("cube", c.Name))
			return
		}

		from, to := c.From, c.To
		if mode == "clamp" {
			l.Clamp(c, nil)
		} else {
			l.Move(c, nil)
		}
		log.Info("fixed cube",
			zap.String("cube", c.Name),
			zap.String("mode", mode),
			zap.Float64s("from", from[:]), zap.Float64s("to", to[:]),
			zap.Float64s("new_from", c.From[:]), zap.Float64s("new_to", c.To[:]))
		boxes[c.UUID] = formats.CubeBox{From: c.From, To: c.To}
	})
	return boxes
}

// printIssues writes one line per issue and returns true if any cube is out
// of bounds.
func printIssues(w io.Writer, issues []blockmodel.Issue) bool {
	out := termenv.NewOutput(w)
	if len(issues) == 0 {
		fmt.Fprintln(w, out.String("ok").Foreground(out.Color("2")).String())
		return false
	}

	failed := false
	for _, is := range issues {
		color := "3"
		if is.Kind == blockmodel.IssueOutOfBounds {
			color = "1"
			failed = true
		}
		group := is.Group
		if group == "" {
			group = "(root)"
		}
		kind := out.String(is.Kind.String()).Foreground(out.Color(color)).Bold().String()
		fmt.Fprintf(w, "%s  %s/%s: %s\n", kind, group, is.Cube.Name, is.Message)
	}
	return failed
}
