package blockmodel

import "github.com/Faultbox/carpenter/pkg/scene"

// faceResolver turns cube faces into exported faces for one compile.
type faceResolver struct {
	atlas    *scene.Atlas
	settings Settings
	opts     Options
}

// resolve returns the exported face and the texture it resolved to.
// It returns a nil face for missing faces and faces marked as removed.
func (r *faceResolver) resolve(f *scene.Face) (*Face, *scene.Texture) {
	if f == nil || f.Texture.State == scene.TextureNone {
		return nil, nil
	}

	var tex *scene.Texture
	if f.Texture.State == scene.TextureAssigned {
		tex, _ = r.atlas.Lookup(f.Texture.Ref)
	}

	out := &Face{}
	if f.Enabled {
		res := r.resolution(tex)
		var uv [4]float64
		for i, n := range f.UV {
			uv[i] = n * 16 / float64(res.Axis(i))
		}
		out.UV = &uv
	}
	if f.Rotation != 0 {
		out.Rotation = f.Rotation
	}
	if tex != nil {
		out.Texture = "#" + tex.ID
	}
	if out.Texture == "" {
		out.Texture = MissingTexture
	}
	if f.CullFace != "" {
		out.CullFace = f.CullFace
	}
	if f.Tint >= 0 {
		tint := f.Tint
		out.TintIndex = &tint
	}
	return out, tex
}

// resolution picks the UV space: the explicit option, then the texture's own
// UV size, then the project resolution.
func (r *faceResolver) resolution(tex *scene.Texture) scene.Resolution {
	if r.opts.Resolution != nil && r.opts.Resolution.Valid() {
		return *r.opts.Resolution
	}
	if tex != nil && tex.Resolution().Valid() {
		return tex.Resolution()
	}
	if r.settings.Resolution.Valid() {
		return r.settings.Resolution
	}
	return scene.DefaultResolution
}
