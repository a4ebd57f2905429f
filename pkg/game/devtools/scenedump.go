// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gookit/color"

	"pixelportfolio/pkg/game/renderer"
	"pixelportfolio/pkg/game/state"
	"pixelportfolio/pkg/game/world"
)

// SceneDumpFilename is where DumpSceneToFile writes by default.
const SceneDumpFilename = "scene.txt"

// DumpScene writes a plain-text debug dump of the session: metadata, the
// buildings in registration order, scenery counts and the current interaction.
// The format is key: value lines grouped into sections.
func DumpScene(w io.Writer, g *state.Game) error {
	if g.Scene == nil {
		return fmt.Errorf("no scene")
	}
	sc := g.Scene
	pos := g.Character.Position

	fmt.Fprintln(w, "=== SCENE DUMP (layout, interaction state) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", g.ID)
	fmt.Fprintf(w, "seed: %d\n", sc.Seed)
	fmt.Fprintf(w, "ground_size: %g\n", sc.GroundSize)
	fmt.Fprintf(w, "coordinate_system: x right, z forward, y up (ground plane y=0)\n")
	fmt.Fprintf(w, "ticks: %d\n", g.Ticks)
	fmt.Fprintf(w, "loading: %v\n", g.Loading)
	fmt.Fprintf(w, "character: %.2f,%.2f heading: %.3f\n", pos.X(), pos.Z(), g.Character.Heading)
	fmt.Fprintf(w, "camera: %.2f,%.2f,%.2f\n", g.Camera.Position.X(), g.Camera.Position.Y(), g.Camera.Position.Z())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Buildings (registration order) ---")
	g.Structures().Each(func(name string, st *world.Structure) bool {
		fmt.Fprintf(w, "  name: %q x: %g z: %g size: %gx%gx%g radius: %g color: %s content: %q highlighted: %v\n",
			name, st.Position.X(), st.Position.Z(),
			st.Size.X(), st.Size.Y(), st.Size.Z(),
			st.Radius, st.Color.Hex(), st.ContentKey, st.Highlighted)
		return true
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Scenery ---")
	fmt.Fprintf(w, "trees: %d\n", sc.CountDecorations(world.DecorationTree))
	fmt.Fprintf(w, "rocks: %d\n", sc.CountDecorations(world.DecorationRock))
	fmt.Fprintf(w, "flowers: %d\n", sc.CountDecorations(world.DecorationFlower))
	fmt.Fprintf(w, "path_segments: %d\n", len(sc.Paths))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Interaction ---")
	if st := g.Interaction.Interactable; st != nil {
		fmt.Fprintf(w, "interactable: %q\n", st.Name)
	} else {
		fmt.Fprintln(w, "interactable: none")
	}
	fmt.Fprintf(w, "can_interact: %v\n", g.Interaction.CanInteract)
	fmt.Fprintf(w, "content_visible: %v\n", g.UI.ContentVisible)
	if g.UI.ContentVisible {
		fmt.Fprintf(w, "page_title: %q\n", g.UI.PageTitle)
		fmt.Fprintf(w, "page_found: %v\n", g.UI.PageFound)
	}
	return nil
}

// DumpSceneToFile writes DumpScene to path (SceneDumpFilename when empty)
// and returns the absolute path written.
func DumpSceneToFile(g *state.Game, path string) (string, error) {
	if path == "" {
		path = SceneDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpScene(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteSceneJSON writes the scene in the same shape the browser bridge sends.
func WriteSceneJSON(w io.Writer, g *state.Game) error {
	if g.Scene == nil {
		return fmt.Errorf("no scene")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(renderer.SceneOf(g.Scene))
}

// PrintBuildings lists the buildings in their own colors, for a quick look at
// a layout from the command line.
func PrintBuildings(w io.Writer, g *state.Game) {
	g.Structures().Each(func(name string, st *world.Structure) bool {
		swatch := color.HEX(st.Color.Hex()).Sprint("██")
		fmt.Fprintf(w, "%s %-22s (%6.1f, %6.1f)  %s\n", swatch, name, st.Position.X(), st.Position.Z(), st.Description)
		return true
	})
}
