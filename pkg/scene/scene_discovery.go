package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene preset
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string // Optional description

	// Build constructs the scene. Presets that place objects randomly use seed;
	// the others ignore it.
	Build func(seed int64) *Scene
}

var builtInScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default Scene",
		Description: "Diffuse sphere on a ground sphere under a sky gradient",
		Build:       func(int64) *Scene { return NewDefaultScene() },
	},
	{
		ID:          "materials",
		DisplayName: "Materials",
		Description: "Diffuse, hollow glass and fuzzy metal spheres with depth of field",
		Build:       func(int64) *Scene { return NewMaterialsScene() },
	},
	{
		ID:          "random-spheres",
		DisplayName: "Random Spheres",
		Description: "Field of small random spheres around three large feature spheres",
		Build:       func(seed int64) *Scene { return NewRandomSpheresScene(seed) },
	},
	{
		ID:          "sphere-grid",
		DisplayName: "Sphere Grid",
		Description: "10x10 grid of rainbow-colored metallic spheres",
		Build:       func(int64) *Scene { return NewSphereGridScene() },
	},
}

// ListScenes returns the built-in presets sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	copy(scenes, builtInScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the preset IDs in sorted order
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.ID
	}
	return names
}

// Lookup finds a preset by ID. Matching ignores case and surrounding whitespace.
func Lookup(name string) (SceneInfo, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	for _, info := range builtInScenes {
		if info.ID == id {
			return info, nil
		}
	}
	return SceneInfo{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
}
