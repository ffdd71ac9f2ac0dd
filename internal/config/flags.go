package config

import (
	"flag"
	"fmt"
	"strconv"
)

// Flags holds the command-line overrides shared by the export commands.
type Flags struct {
	fs *flag.FlagSet

	Config        string
	Debug         bool
	Output        string
	ItemModel     string
	Textures      string
	Minify        bool
	ResourceNames bool
	Credit        string
	LogFile       string
}

// BindFlags registers the config flags on fs. Call before fs.Parse.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Output, "o", "", "Output directory")
	fs.StringVar(&f.ItemModel, "item-model", "", "Group exported with display settings (none to disable)")
	fs.StringVar(&f.Textures, "textures", "", "Export texture maps (true or false)")
	fs.BoolVar(&f.Minify, "minify", false, "Write compact JSON without element names")
	fs.BoolVar(&f.ResourceNames, "resource-names", false, "Name files after lowercase resource locations")
	fs.StringVar(&f.Credit, "credit", "", "Credit line written to every model")
	fs.StringVar(&f.LogFile, "log", "", "Write logs to file")
	return f
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.Config
}

// isSet reports whether the named flag was given on the command line.
func (f *Flags) isSet(name string) bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) error {
	if f == nil {
		return nil
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Output != "" {
		cfg.Export.Destination = f.Output
	}
	if f.ItemModel != "" {
		cfg.Export.ItemModel = f.ItemModel
	}
	if f.Textures != "" {
		v, err := strconv.ParseBool(f.Textures)
		if err != nil {
			return fmt.Errorf("invalid -textures value %q: %w", f.Textures, err)
		}
		cfg.Export.Textures = &v
	}
	if f.Minify {
		cfg.Export.Minified = true
	}
	if f.ResourceNames {
		cfg.Export.ResourceNames = true
	}
	// An explicit empty -credit removes the credit line.
	if f.isSet("credit") {
		cfg.Export.Credit = f.Credit
	}
	return nil
}
