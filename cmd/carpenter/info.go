package main

import (
	"flag"
	"fmt"

	"github.com/Faultbox/carpenter/internal/config"
	"github.com/Faultbox/carpenter/internal/logger"
	"github.com/Faultbox/carpenter/internal/writer"
	"github.com/Faultbox/carpenter/pkg/scene"
)

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	flags := config.BindFlags(fs)
	cfg, path := setup(fs, flags, args, "info <model.bbmodel>")
	defer logger.Sync()

	p, _, err := loadProject(path)
	if err != nil {
		fatal(err)
	}

	format := p.Format
	if format == "" {
		format = "(unspecified)"
	}
	fmt.Printf("Project:    %s\n", p.Name)
	fmt.Printf("Format:     %s\n", format)
	fmt.Printf("Resolution: %dx%d\n", p.Resolution.Width, p.Resolution.Height)
	fmt.Printf("Cubes:      %d\n", p.CubeCount())
	fmt.Println()

	naming := writer.Options{ResourceNames: cfg.Export.ResourceNames}
	fmt.Println("Models:")
	for _, g := range scene.TopGroups(p.Root) {
		n := 0
		scene.Walk([]scene.Node{g}, func(_ *scene.Group, c *scene.Cube) {
			if c.Export {
				n++
			}
		})
		fmt.Printf("  %-24s %3d cubes  -> %s\n", g.Name, n, naming.FileName(g.Name))
	}
	loose := 0
	for _, node := range p.Root {
		if _, ok := node.(*scene.Cube); ok {
			loose++
		}
	}
	if loose > 0 {
		fmt.Printf("  %d cube(s) outside any group are not exported\n", loose)
	}

	if p.Textures.Len() > 0 {
		fmt.Println()
		fmt.Println("Textures:")
		for _, t := range p.Textures.All() {
			fmt.Printf("  #%-4s %s\n", t.ID, t.Link())
		}
	}

	if len(p.Display) > 0 {
		fmt.Println()
		fmt.Print("Display:    ")
		first := true
		for _, slot := range scene.DisplaySlots {
			if p.Display[slot].Export() == nil {
				continue
			}
			if !first {
				fmt.Print(", ")
			}
			fmt.Print(slot)
			first = false
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Printf("Destination: %s\n", p.Furniture.Destination)
	fmt.Printf("Item model:  %s\n", p.Furniture.ItemModel)
	fmt.Printf("Textures:    %v\n", p.Furniture.Textures)
}
