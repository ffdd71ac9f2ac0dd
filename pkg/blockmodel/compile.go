// Package blockmodel compiles a scene of groups and cubes into block model
// documents, one per top-level group.
package blockmodel

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/carpenter/pkg/scene"
)

// GUILightFront is the gui_light value for front-lit items.
const GUILightFront = "front"

// PostProcessFunc is called with every assembled document before it is
// added to the result. It may add or replace fields.
type PostProcessFunc func(doc *Document, opts Options)

// Compiler turns scene trees into block model documents.
type Compiler struct {
	Settings    Settings
	Atlas       *scene.Atlas
	PostProcess PostProcessFunc
	Log         *zap.Logger
}

// NewCompiler returns a compiler for the given settings and texture atlas.
// A nil logger disables logging.
func NewCompiler(settings Settings, atlas *scene.Atlas, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{
		Settings: settings,
		Atlas:    atlas,
		Log:      log,
	}
}

// CompileProject compiles every top-level group of p.
func CompileProject(p *scene.Project, settings Settings, opts Options, log *zap.Logger) *OrderedMap[*Document] {
	return NewCompiler(settings, p.Textures, log).Compile(p.Root, opts)
}

// Compile returns one document per top-level group, keyed by group name in
// tree order. A later group with the same name replaces the earlier one.
func (c *Compiler) Compile(root []scene.Node, opts Options) *OrderedMap[*Document] {
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	w := &walker{
		faces:    &faceResolver{atlas: c.Atlas, settings: c.Settings, opts: opts},
		settings: c.Settings,
		opts:     opts,
		log:      log,
	}

	components := NewOrderedMap[*component]()
	for _, g := range scene.TopGroups(root) {
		if _, dup := components.Get(g.Name); dup {
			log.Warn("duplicate top-level group name, earlier group is replaced", zap.String("group", g.Name))
		}
		comp := &component{group: g}
		components.Add(g.Name, comp)
		w.walk(comp, g.Children)
	}

	result := NewOrderedMap[*Document]()
	for _, kv := range components.Order {
		doc := c.assemble(kv.Key, kv.Value, opts)
		if c.PostProcess != nil {
			c.PostProcess(doc, opts)
		}
		result.Add(kv.Key, doc)
		log.Debug("compiled group",
			zap.String("group", kv.Key),
			zap.Int("elements", len(kv.Value.elements)),
			zap.Int("textures", len(kv.Value.textures)))
	}
	return result
}

func (c *Compiler) assemble(key string, comp *component, opts Options) *Document {
	s := c.Settings
	doc := &Document{}

	if include(opts.Comment, s.Credit != "") {
		credit := s.Credit
		doc.Credit = &credit
	}
	if include(opts.AmbientOcclusion, s.AmbientOcclusionDisabled) {
		doc.AmbientOcclusion = Bool(false)
	}
	textures := c.textureMap(comp)
	if include(opts.Textures, textures.Len() >= 1) {
		doc.Textures = textures
	}
	if include(opts.Elements, len(comp.elements) >= 1) {
		doc.Elements = comp.elements
		if doc.Elements == nil {
			doc.Elements = []*Element{}
		}
	}
	if include(opts.FrontGUILight, s.FrontGUILight) {
		doc.GUILight = GUILightFront
	}
	if include(opts.Display, len(s.Display) >= 1 && key == opts.ItemModel) {
		display := NewOrderedMap[*scene.DisplayTransform]()
		for _, slot := range scene.DisplaySlots {
			if t := s.Display[slot].Export(); t != nil {
				display.Add(slot, t)
			}
		}
		if display.Len() > 0 {
			doc.Display = display
		}
	}
	return doc
}

// textureMap lists, in atlas order, the textures whose link differs from
// their id. A group without elements only defines textures for its children,
// so every atlas entry is considered; otherwise only the textures it uses.
func (c *Compiler) textureMap(comp *component) *OrderedMap[string] {
	texturesOnly := len(comp.elements) == 0
	textures := NewOrderedMap[string]()
	for _, t := range c.Atlas.All() {
		if !texturesOnly && !comp.uses(t) {
			continue
		}
		link := t.Link()
		if t.ID != strings.TrimPrefix(link, "#") {
			textures.Add(t.ID, link)
		}
	}
	return textures
}
