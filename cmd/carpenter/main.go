// carpenter compiles Blockbench projects into one block model per top-level group.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/carpenter/internal/config"
	"github.com/Faultbox/carpenter/internal/logger"
	"github.com/Faultbox/carpenter/pkg/formats"
	"github.com/Faultbox/carpenter/pkg/scene"
)

// errAlreadyExported is returned when the input is a block model rather than a project.
var errAlreadyExported = errors.New("file is an exported block model, not a project")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "export", "x":
		cmdExport(args)
	case "check", "lint":
		cmdCheck(args)
	case "fix":
		cmdFix(args)
	case "watch", "w":
		cmdWatch(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`carpenter - block model exporter for Blockbench furniture projects

Usage:
  carpenter <command> [options] <model.bbmodel>

Commands:
  export  Write one model per top-level group
  check   Report cubes that will not export faithfully
  fix     Move or clamp cubes back inside the model bounds
  watch   Export every time the project is saved
  info    Show groups, cubes and textures

Common options:
  -config <file>   Config file (carpenter.yaml or carpenter.toml)
  -debug           Enable debug logging
  -log <file>      Write logs to file

Export options:
  -o <dir>             Output directory
  -item-model <group>  Group that receives display settings
  -textures <bool>     Include texture maps
  -minify              Compact output without element names
  -resource-names      Lowercase ASCII file names
  -credit <text>       Credit line
  -save                Remember destination, item model and textures in the project

Examples:
  carpenter export -o models/furniture chair.bbmodel
  carpenter check chair.bbmodel
  carpenter fix -mode clamp -dry-run chair.bbmodel
  carpenter watch -item-model chair chair.bbmodel`)
}

// setup parses fs, loads the config and initializes logging. It exits on
// error and returns the config with the single positional argument.
func setup(fs *flag.FlagSet, flags *config.Flags, args []string, usage string) (*config.Config, string) {
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: carpenter %s\n", usage)
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fatal(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}
	return cfg, fs.Arg(0)
}

// loadProject reads a project file, refusing files that are already block models.
func loadProject(path string) (*scene.Project, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading project: %w", err)
	}
	if formats.IsJavaBlockModel(data) {
		return nil, nil, fmt.Errorf("%s: %w", path, errAlreadyExported)
	}
	p, err := formats.ParseBBModelFile(path)
	if err != nil {
		return nil, nil, err
	}
	return p, data, nil
}

func fatal(err error) {
	logger.Debug("command failed", zap.Error(err))
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
