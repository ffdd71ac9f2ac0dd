package formats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/carpenter/pkg/scene"
)

// BBModel format errors.
var (
	ErrInvalidBBModel         = errors.New("invalid bbmodel data")
	ErrUnsupportedModelFormat = errors.New("unsupported model format")
)

// Model formats whose elements are cubes compatible with block models.
var supportedModelFormats = map[string]bool{
	"":                true,
	"furniture_model": true,
	"java_block":      true,
	"free":            true,
}

type bbMeta struct {
	FormatVersion string `json:"format_version"`
	ModelFormat   string `json:"model_format"`
	BoxUV         bool   `json:"box_uv"`
}

type bbResolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type bbFace struct {
	UV       [4]float64      `json:"uv"`
	Texture  json.RawMessage `json:"texture"`
	Rotation int             `json:"rotation"`
	CullFace string          `json:"cullface"`
	Tint     *int            `json:"tint"`
	Enabled  *bool           `json:"enabled"`
}

type bbElement struct {
	Type         string            `json:"type"`
	Name         string            `json:"name"`
	UUID         string            `json:"uuid"`
	From         [3]float64        `json:"from"`
	To           [3]float64        `json:"to"`
	Origin       [3]float64        `json:"origin"`
	Rotation     [3]float64        `json:"rotation"`
	RotationAxis string            `json:"rotation_axis"`
	Inflate      float64           `json:"inflate"`
	Shade        *bool             `json:"shade"`
	Rescale      bool              `json:"rescale"`
	Export       *bool             `json:"export"`
	Color        int               `json:"color"`
	Faces        map[string]bbFace `json:"faces"`
}

type bbGroup struct {
	Name     string            `json:"name"`
	UUID     string            `json:"uuid"`
	Origin   [3]float64        `json:"origin"`
	Children []json.RawMessage `json:"children"`
}

type bbTexture struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	UUID      string `json:"uuid"`
	Folder    string `json:"folder"`
	Namespace string `json:"namespace"`
	Link      string `json:"link"`
	UVWidth   int    `json:"uv_width"`
	UVHeight  int    `json:"uv_height"`
}

type bbDisplay struct {
	Rotation    *[3]float64 `json:"rotation"`
	Translation *[3]float64 `json:"translation"`
	Scale       *[3]float64 `json:"scale"`
	Mirror      [3]bool     `json:"mirror"`
}

type bbFurniture struct {
	Destination *string `json:"destination"`
	Textures    *bool   `json:"textures"`
	ItemModel   *string `json:"item_model"`
}

type bbFile struct {
	Meta             bbMeta               `json:"meta"`
	Name             string               `json:"name"`
	AmbientOcclusion *bool                `json:"ambientocclusion"`
	FrontGUILight    bool                 `json:"front_gui_light"`
	Resolution       bbResolution         `json:"resolution"`
	Elements         []bbElement          `json:"elements"`
	Outliner         []json.RawMessage    `json:"outliner"`
	Textures         []bbTexture          `json:"textures"`
	Display          map[string]bbDisplay `json:"display"`
	Furniture        *bbFurniture         `json:"furniture"`
}

// ParseBBModel parses a Blockbench project into a scene project.
func ParseBBModel(data []byte) (*scene.Project, error) {
	var f bbFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBBModel, err)
	}
	if !supportedModelFormats[f.Meta.ModelFormat] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModelFormat, f.Meta.ModelFormat)
	}

	p := scene.NewProject(f.Name)
	p.Format = f.Meta.ModelFormat
	if f.AmbientOcclusion != nil {
		p.AmbientOcclusion = *f.AmbientOcclusion
	}
	p.FrontGUILight = f.FrontGUILight
	if f.Resolution.Width > 0 && f.Resolution.Height > 0 {
		p.Resolution = scene.Resolution{Width: f.Resolution.Width, Height: f.Resolution.Height}
	}

	for i, t := range f.Textures {
		id := t.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		p.Textures.Add(&scene.Texture{
			ID:           id,
			UUID:         t.UUID,
			Name:         t.Name,
			Folder:       t.Folder,
			Namespace:    t.Namespace,
			LinkOverride: t.Link,
			UVWidth:      t.UVWidth,
			UVHeight:     t.UVHeight,
		})
	}

	cubes := make(map[string]*scene.Cube)
	var order []*scene.Cube
	for i := range f.Elements {
		e := &f.Elements[i]
		if e.Type != "" && e.Type != "cube" {
			continue
		}
		c := parseCube(e, p.Textures)
		if c.UUID != "" {
			cubes[c.UUID] = c
		}
		order = append(order, c)
	}

	if f.Outliner == nil {
		for _, c := range order {
			p.Root = append(p.Root, c)
		}
	} else {
		root, err := parseOutliner(f.Outliner, cubes)
		if err != nil {
			return nil, err
		}
		p.Root = root
	}

	for slot, d := range f.Display {
		if !scene.IsDisplaySlot(slot) {
			continue
		}
		ds := scene.NewDisplaySlot()
		if d.Rotation != nil {
			ds.Rotation = mgl64.Vec3(*d.Rotation)
		}
		if d.Translation != nil {
			ds.Translation = mgl64.Vec3(*d.Translation)
		}
		if d.Scale != nil {
			ds.Scale = mgl64.Vec3(*d.Scale)
		}
		ds.Mirror = d.Mirror
		p.Display[slot] = ds
	}

	if f.Furniture != nil {
		if f.Furniture.Destination != nil {
			p.Furniture.Destination = *f.Furniture.Destination
		}
		if f.Furniture.Textures != nil {
			p.Furniture.Textures = *f.Furniture.Textures
		}
		if f.Furniture.ItemModel != nil && *f.Furniture.ItemModel != "" {
			p.Furniture.ItemModel = *f.Furniture.ItemModel
		}
	}

	return p, nil
}

// ParseBBModelFile parses a Blockbench project from disk. Projects without a
// name are named after the file.
func ParseBBModelFile(path string) (*scene.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bbmodel file: %w", err)
	}
	p, err := ParseBBModel(data)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

func parseCube(e *bbElement, atlas *scene.Atlas) *scene.Cube {
	name := e.Name
	if name == "" {
		name = scene.DefaultCubeName
	}
	c := scene.NewCube(name)
	c.UUID = e.UUID
	c.From = mgl64.Vec3(e.From)
	c.To = mgl64.Vec3(e.To)
	c.Origin = mgl64.Vec3(e.Origin)
	c.Rotation = mgl64.Vec3(e.Rotation)
	if e.RotationAxis != "" {
		c.RotationAxis = e.RotationAxis
	}
	c.Inflate = e.Inflate
	if e.Shade != nil {
		c.Shade = *e.Shade
	}
	c.Rescale = e.Rescale
	if e.Export != nil {
		c.Export = *e.Export
	}
	c.Color = e.Color

	for d := scene.North; d < scene.NumDirections; d++ {
		bf, ok := e.Faces[d.String()]
		if !ok {
			c.Faces[d] = nil
			continue
		}
		f := c.Faces[d]
		f.UV = bf.UV
		f.Rotation = bf.Rotation
		f.CullFace = bf.CullFace
		if bf.Tint != nil {
			f.Tint = *bf.Tint
		}
		if bf.Enabled != nil {
			f.Enabled = *bf.Enabled
		}
		f.Texture = parseFaceTexture(bf.Texture, atlas)
	}
	return c
}

// parseFaceTexture reads a face's texture field: absent or false leaves the
// face untextured, null removes the face, a number indexes the project's
// textures and a string is a texture uuid or id.
func parseFaceTexture(raw json.RawMessage, atlas *scene.Atlas) scene.FaceTexture {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("false")) {
		return scene.FaceTexture{}
	}
	if bytes.Equal(raw, []byte("null")) {
		return scene.FaceTexture{State: scene.TextureNone}
	}

	var index int
	if err := json.Unmarshal(raw, &index); err == nil {
		all := atlas.All()
		if index >= 0 && index < len(all) {
			return scene.Assigned(textureRef(all[index]))
		}
		return scene.Assigned(strconv.Itoa(index))
	}

	var ref string
	if err := json.Unmarshal(raw, &ref); err == nil && ref != "" {
		return scene.Assigned(ref)
	}
	return scene.FaceTexture{}
}

func textureRef(t *scene.Texture) string {
	if t.UUID != "" {
		return t.UUID
	}
	return t.ID
}

func parseOutliner(entries []json.RawMessage, cubes map[string]*scene.Cube) ([]scene.Node, error) {
	var nodes []scene.Node
	for _, raw := range entries {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			continue
		}
		if raw[0] == '"' {
			var uuid string
			if err := json.Unmarshal(raw, &uuid); err != nil {
				return nil, fmt.Errorf("%w: outliner entry: %v", ErrInvalidBBModel, err)
			}
			// Entries for non-cube elements have no cube.
			if c, ok := cubes[uuid]; ok {
				nodes = append(nodes, c)
			}
			continue
		}

		var g bbGroup
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("%w: outliner group: %v", ErrInvalidBBModel, err)
		}
		children, err := parseOutliner(g.Children, cubes)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		nodes = append(nodes, &scene.Group{
			Name:     g.Name,
			UUID:     g.UUID,
			Origin:   mgl64.Vec3(g.Origin),
			Children: children,
		})
	}
	return nodes, nil
}

// IsJavaBlockModel returns true if data looks like an exported block model
// rather than a project: an object with parent, elements or textures and no
// project metadata.
func IsJavaBlockModel(data []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}
	if _, ok := fields["meta"]; ok {
		return false
	}
	for _, key := range []string{"parent", "elements", "textures"} {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}
