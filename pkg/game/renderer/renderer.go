// Package renderer holds the backend-neutral view of a session: serializable
// scene and frame snapshots shared by the window, terminal and WebSocket
// front ends, plus the markup helpers used to show page content as text.
package renderer

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"pixelportfolio/pkg/game/gameplay"
	gamemenu "pixelportfolio/pkg/game/menu"
	"pixelportfolio/pkg/game/scene"
	"pixelportfolio/pkg/game/state"
	"pixelportfolio/pkg/game/world"
)

// StructureView is a building as sent to front ends.
type StructureView struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ContentKey  string      `json:"contentKey"`
	Position    mgl32.Vec3  `json:"position"`
	Size        mgl32.Vec3  `json:"size"`
	Radius      float32     `json:"radius"`
	Color       world.Color `json:"color"`
}

// SceneView is the static part of the world, sent once per session.
type SceneView struct {
	Seed        int64               `json:"seed"`
	GroundSize  float32             `json:"groundSize"`
	Structures  []StructureView     `json:"structures"`
	Decorations []world.Decoration  `json:"decorations"`
	Paths       []world.PathSegment `json:"paths"`
}

// SceneOf snapshots an assembled scene.
func SceneOf(sc *scene.Scene) SceneView {
	v := SceneView{
		Seed:        sc.Seed,
		GroundSize:  sc.GroundSize,
		Decorations: sc.Decorations,
		Paths:       sc.Paths,
	}
	sc.Structures.Each(func(_ string, st *world.Structure) bool {
		v.Structures = append(v.Structures, StructureView{
			Name:        st.Name,
			Description: st.Description,
			ContentKey:  st.ContentKey,
			Position:    st.Position,
			Size:        st.Size,
			Radius:      st.Radius,
			Color:       st.OriginalColor,
		})
		return true
	})
	return v
}

// BodyView is a position with a heading. Rotation is the same heading as a
// quaternion about +Y, for front ends that orient meshes directly.
type BodyView struct {
	Position mgl32.Vec3 `json:"position"`
	Heading  float32    `json:"heading"`
	Rotation mgl32.Quat `json:"rotation"`
}

// CameraView is the follow camera pose and its column-major view matrix.
type CameraView struct {
	Position mgl32.Vec3 `json:"position"`
	Target   mgl32.Vec3 `json:"target"`
	View     mgl32.Mat4 `json:"view"`
}

// MenuView is the open pause menu.
type MenuView struct {
	Title        string   `json:"title"`
	Instructions string   `json:"instructions"`
	Items        []string `json:"items"`
	Selected     int      `json:"selected"`
	Help         string   `json:"help,omitempty"`
}

// SlideView is the slide currently shown on a page.
type SlideView struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Index int    `json:"index"`
	Count int    `json:"count"`
}

// PageView is the open content panel.
type PageView struct {
	Title      string     `json:"title"`
	HTML       string     `json:"html"`
	Found      bool       `json:"found"`
	Slide      *SlideView `json:"slide,omitempty"`
	Fullscreen bool       `json:"fullscreen"`
}

// Frame is everything a front end needs to draw one tick.
type Frame struct {
	Tick      uint64     `json:"tick"`
	Loading   bool       `json:"loading"`
	Progress  float32    `json:"progress"`
	Character BodyView   `json:"character"`
	Camera    CameraView `json:"camera"`
	Spotlight mgl32.Vec3 `json:"spotlight"`

	// Highlighted names the current interactable, if any.
	Highlighted string    `json:"highlighted,omitempty"`
	Hint        []string  `json:"hint,omitempty"`
	Menu        *MenuView `json:"menu,omitempty"`
	Page        *PageView `json:"page,omitempty"`

	Theme string `json:"theme"`
	Music bool   `json:"music"`
	Sound bool   `json:"sound"`
}

// FrameOf snapshots a session at now.
func FrameOf(g *state.Game, now time.Time) Frame {
	f := Frame{
		Tick:      g.Ticks,
		Loading:   g.Loading,
		Progress:  gameplay.LoadingProgress(g, now),
		Character: BodyView{
			Position: g.Character.Position,
			Heading:  g.Character.Heading,
			Rotation: g.Character.Rotation(),
		},
		Camera: CameraView{
			Position: g.Camera.Position,
			Target:   g.Camera.Target,
			View:     g.Camera.View(),
		},
		Spotlight: g.Spotlight,
		Hint:      gameplay.HintText(g),
		Theme:     g.Prefs.Theme,
		Music:     g.Prefs.Music,
		Sound:     g.Prefs.Sound,
	}
	if st := g.Interaction.Interactable; st != nil {
		f.Highlighted = st.Name
	}

	if g.MenuVisible() {
		mv := gamemenu.Snapshot(g, gameplay.PauseMenu)
		items := make([]string, len(mv.Items))
		for i, item := range mv.Items {
			items[i] = item.GetLabel()
		}
		f.Menu = &MenuView{
			Title:        mv.Title,
			Instructions: mv.Instructions,
			Items:        items,
			Selected:     mv.Selected,
			Help:         mv.HelpText,
		}
	}

	if g.UI.ContentVisible {
		p := &PageView{
			Title:      g.UI.PageTitle,
			HTML:       g.UI.PageHTML,
			Found:      g.UI.PageFound,
			Fullscreen: g.Slideshow.Fullscreen(),
		}
		if s, ok := g.Slideshow.Current(); ok {
			p.Slide = &SlideView{Src: s.Src, Alt: s.Alt, Index: g.Slideshow.Index(), Count: g.Slideshow.Len()}
		}
		f.Page = p
	}
	return f
}
