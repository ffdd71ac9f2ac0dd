package blockmodel

import "github.com/Faultbox/carpenter/pkg/scene"

// Options are per-export choices. A nil switch keeps the computed default;
// a set switch forces the field in or out of every document.
type Options struct {
	Comment          *bool
	AmbientOcclusion *bool
	Textures         *bool
	Elements         *bool
	FrontGUILight    *bool
	Display          *bool
	CubeName         *bool

	// ItemModel names the group whose document receives display data.
	ItemModel string

	// Resolution overrides the UV space used to scale face UVs.
	Resolution *scene.Resolution
}

// Bool returns a pointer to v, for Options switches.
func Bool(v bool) *bool {
	return &v
}

func include(opt *bool, computed bool) bool {
	if opt != nil {
		return *opt
	}
	return computed
}

// Settings is the read-only snapshot of global and project settings that
// provides the defaults of a compile.
type Settings struct {
	Credit                   string
	Minified                 bool
	AmbientOcclusionDisabled bool
	FrontGUILight            bool
	Resolution               scene.Resolution
	Display                  map[string]*scene.DisplaySlot
}

// SettingsFromProject takes the project-level settings from p and combines
// them with the application's credit string and minified-output flag.
func SettingsFromProject(p *scene.Project, credit string, minified bool) Settings {
	return Settings{
		Credit:                   credit,
		Minified:                 minified,
		AmbientOcclusionDisabled: !p.AmbientOcclusion,
		FrontGUILight:            p.FrontGUILight,
		Resolution:               p.Resolution,
		Display:                  p.Display,
	}
}
