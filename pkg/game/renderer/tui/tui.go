// Package tui renders the walk-around as a top-down map in a raw-mode terminal.
package tui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gookit/color"
	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"pixelportfolio/pkg/engine/clock"
	"pixelportfolio/pkg/engine/input"
	"pixelportfolio/pkg/engine/terminal"
	"pixelportfolio/pkg/game/gameplay"
	"pixelportfolio/pkg/game/i18n"
	"pixelportfolio/pkg/game/renderer"
	"pixelportfolio/pkg/game/state"
	"pixelportfolio/pkg/game/world"
)

// Map glyphs
const (
	PlayerIcon   = "@"
	CameraIcon   = "c"
	IconGround   = "·"
	IconPath     = "░"
	IconTree     = "♣"
	IconRock     = "●"
	IconFlower   = "*"
	IconBuilding = "█"
)

// headingIcons are indexed by heading in eighths of a turn, starting at +Z (up).
var headingIcons = [8]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// Terminals cannot report key releases. A key is considered held until no
// press (including OS key repeat) has arrived for holdTTL.
const (
	holdTTL   = 550 * time.Millisecond
	frameRate = 30
	hudLines  = 4
	mapScaleX = 2
	mapScaleY = 1
)

// printer is anything gookit can print with.
type printer interface {
	Sprint(a ...any) string
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	log *zap.Logger

	colorGround     color.Style
	colorGroundDark color.Style
	colorPath       color.Style
	colorText       color.Style
	colorSubtle     color.Style
	colorAction     color.Style
	colorPlayer     color.Style
	colorHighlight  color.Style
	colorPanel      color.Style

	held    map[string]time.Time
	restore func()
}

// New creates a new TUI renderer
func New(log *zap.Logger) *TUIRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &TUIRenderer{
		log:  log.Named("tui"),
		held: make(map[string]time.Time),
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorGround = color.Style{color.FgGreen}
	t.colorGroundDark = color.Style{color.FgGray}
	t.colorPath = color.Style{color.FgYellow}
	t.colorText = color.Style{color.FgWhite}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorPlayer = color.Style{color.FgRed, color.OpBold}
	t.colorHighlight = color.Style{color.FgWhite, color.OpBold}
	t.colorPanel = color.Style{color.FgCyan, color.OpBold}
	return nil
}

// Close restores the terminal.
func (t *TUIRenderer) Close() {
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
	terminal.ShowCursor()
}

// Run reads keys from stdin and redraws at a fixed rate until the visitor quits.
func (t *TUIRenderer) Run(g *state.Game) error {
	if !terminal.IsInteractive() {
		return fmt.Errorf("the terminal renderer needs an interactive terminal")
	}
	restore, err := terminal.EnterRaw()
	if err != nil {
		return err
	}
	t.restore = restore
	defer t.Close()
	terminal.HideCursor()

	keys := make(chan []byte, 16)
	go readKeys(keys)

	clk := clock.New()
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	out := bufio.NewWriter(os.Stdout)
	for !g.Quit {
		select {
		case buf, ok := <-keys:
			if !ok {
				return nil
			}
			t.handleBytes(g, buf, time.Now())
			continue
		case now := <-ticker.C:
			t.releaseExpired(g, now)
			gameplay.UpdateLoading(g, now)
			gameplay.Tick(g, clk.Delta())

			w, h := terminal.GetSize()
			terminal.Clear()
			// Raw mode needs explicit carriage returns.
			fmt.Fprint(out, strings.Join(t.Compose(g, w, h, now), "\r\n"))
			if err := out.Flush(); err != nil {
				return fmt.Errorf("failed to draw frame: %w", err)
			}
		}
	}
	terminal.Clear()
	fmt.Print(i18n.T("GOODBYE") + "\r\n")
	return nil
}

// readKeys forwards raw stdin reads until stdin closes. os.Stdin.Read cannot
// be interrupted, so after Run returns this goroutine stays parked on the next
// read (or on the send nobody receives) until the process exits.
func readKeys(out chan<- []byte) {
	defer close(out)
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		chunk := make([]byte, n)
		copy(chunk, buf[:n])
		out <- chunk
	}
}

// handleBytes turns one read from stdin into key presses.
func (t *TUIRenderer) handleBytes(g *state.Game, buf []byte, now time.Time) {
	for _, code := range input.DecodeTerminalKeys(buf) {
		if code == input.CodeInterrupt {
			g.Quit = true
			return
		}
		t.held[code] = now
		gameplay.HandleKey(g, input.DeviceTerminal, code, input.PhasePress)
	}
}

// releaseExpired synthesizes releases for keys that stopped repeating.
func (t *TUIRenderer) releaseExpired(g *state.Game, now time.Time) {
	for code, last := range t.held {
		if now.Sub(last) >= holdTTL {
			delete(t.held, code)
			gameplay.HandleKey(g, input.DeviceTerminal, code, input.PhaseRelease)
		}
	}
}

// Compose builds the styled lines for one frame of a width x height terminal.
func (t *TUIRenderer) Compose(g *state.Game, width, height int, now time.Time) []string {
	frame := renderer.FrameOf(g, now)
	switch {
	case frame.Loading:
		return t.composeLoading(frame.Progress, width, height)
	case frame.Page != nil && frame.Page.Fullscreen && frame.Page.Slide != nil:
		return t.composeSlide(frame.Page.Slide, width, height)
	case frame.Page != nil:
		return t.composePage(frame.Page, width, height)
	}

	c := newCanvas(width, max(height-hudLines, 1))
	t.drawMap(c, g)
	if frame.Menu != nil {
		t.drawMenu(c, frame.Menu)
	}
	lines := c.Lines()
	return append(lines, t.hud(frame, width)...)
}

func (t *TUIRenderer) composeLoading(progress float32, width, height int) []string {
	lines := make([]string, height/2-1)
	barW := min(40, width-4)
	filled := int(float32(barW) * progress)
	lines = append(lines,
		center(t.colorText.Sprint(i18n.T("LOADING")), width),
		center(t.colorAction.Sprint(strings.Repeat("█", filled))+t.colorSubtle.Sprint(strings.Repeat("░", barW-filled)), width),
	)
	return lines
}

// drawMap paints the ground, paths, scenery, buildings and the character,
// centred on the camera's aim point.
func (t *TUIRenderer) drawMap(c *canvas, g *state.Game) {
	proj := renderer.Projector{
		Center: g.Camera.Target,
		ScaleX: mapScaleX,
		ScaleY: mapScaleY,
		Width:  float32(c.w),
		Height: float32(c.h),
	}
	sc := g.Scene

	groundStyle := &t.colorGround
	if g.Prefs.Dark() {
		groundStyle = &t.colorGroundDark
	}
	half := sc.GroundSize / 2
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			p := proj.ToWorld(float32(x)+0.5, float32(y)+0.5)
			if math32.Abs(p.X()) <= half && math32.Abs(p.Z()) <= half {
				c.Set(x, y, IconGround, groundStyle)
			}
		}
	}

	for _, seg := range sc.Paths {
		c.Plot(proj, seg.Position, IconPath, &t.colorPath)
	}
	for _, d := range sc.Decorations {
		switch d.Kind {
		case world.DecorationTree:
			c.Plot(proj, d.Position, IconTree, color.HEX(d.Color.Hex()))
		case world.DecorationRock:
			c.Plot(proj, d.Position, IconRock, color.HEX(d.Color.Hex()))
		case world.DecorationFlower:
			c.Plot(proj, d.Position, IconFlower, color.HEX(d.Color.Hex()))
		}
	}

	g.Structures().Each(func(_ string, st *world.Structure) bool {
		var style printer = color.HEX(st.Color.Hex())
		if st.Highlighted {
			style = &t.colorHighlight
		}
		halfSize := st.Size.Mul(0.5)
		x0, y0 := proj.ToScreen(st.Position.Add(mgl32.Vec3{-halfSize.X(), 0, halfSize.Z()}))
		x1, y1 := proj.ToScreen(st.Position.Add(mgl32.Vec3{halfSize.X(), 0, -halfSize.Z()}))
		c.FillRect(int(x0), int(y0), int(math32.Ceil(x1)), int(math32.Ceil(y1)), IconBuilding, style)

		cx, _ := proj.ToScreen(st.Position)
		c.Text(int(cx)-uniseg.StringWidth(st.Name)/2, int(math32.Ceil(y1)), st.Name, &t.colorText)
		return true
	})

	c.Plot(proj, g.Camera.Position, CameraIcon, &t.colorSubtle)
	c.Plot(proj, g.Character.Position, headingIcon(g.Character.Heading), &t.colorPlayer)
}

// headingIcon picks the arrow nearest to a heading.
func headingIcon(heading float32) string {
	eighth := 2 * math32.Pi / 8
	i := int(math32.Round(heading/eighth)) % 8
	if i < 0 {
		i += 8
	}
	return headingIcons[i]
}

func (t *TUIRenderer) drawMenu(c *canvas, m *renderer.MenuView) {
	lines := []string{m.Title, ""}
	for i, item := range m.Items {
		prefix := "  "
		if i == m.Selected {
			prefix = "> "
		}
		lines = append(lines, prefix+item)
	}
	lines = append(lines, "", m.Instructions)
	if m.Help != "" {
		lines = append(lines, m.Help)
	}

	w := 0
	for _, l := range lines {
		w = max(w, uniseg.StringWidth(l))
	}
	w += 4
	h := len(lines) + 2
	x0 := (c.w - w) / 2
	y0 := (c.h - h) / 2
	c.Box(x0, y0, w, h, &t.colorPanel)
	for i, l := range lines {
		style := &t.colorText
		switch {
		case i == 0:
			style = &t.colorPanel
		case i-2 == m.Selected:
			style = &t.colorAction
		}
		c.Text(x0+2, y0+1+i, l, style)
	}
}

func (t *TUIRenderer) hud(f renderer.Frame, width int) []string {
	lines := make([]string, 0, hudLines)
	if len(f.Hint) > 0 {
		lines = append(lines, t.colorAction.Sprint(f.Hint[0])+"  "+t.colorText.Sprint(f.Hint[1]))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines,
		t.colorSubtle.Sprint(i18n.T("CONTROLS")),
		t.colorSubtle.Sprint(fmt.Sprintf("%s  %s  %s",
			i18n.Tf("MENU_MUSIC", i18n.OnOff(f.Music)),
			i18n.Tf("MENU_SOUND", i18n.OnOff(f.Sound)),
			i18n.Tf("MENU_THEME", strings.ToUpper(f.Theme)))),
	)
	for len(lines) < hudLines {
		lines = append(lines, "")
	}
	return lines
}

func (t *TUIRenderer) composePage(p *renderer.PageView, width, height int) []string {
	lines := []string{
		t.colorPanel.Sprint(p.Title) + "  " + t.colorSubtle.Sprint(i18n.T("PAGE_CLOSE")),
		"",
	}
	body := height - len(lines) - 1
	if p.Slide != nil {
		body -= 2
	}
	for _, l := range renderer.PlainText(p.HTML) {
		for _, wrapped := range renderer.Wrap(l.Text, width-4) {
			switch l.Kind {
			case renderer.LineHeading:
				lines = append(lines, t.colorAction.Sprint(wrapped))
			case renderer.LineItem:
				lines = append(lines, "  - "+t.colorText.Sprint(wrapped))
			default:
				lines = append(lines, t.colorText.Sprint(wrapped))
			}
		}
	}
	if len(lines) > body {
		lines = lines[:body]
	}
	if p.Slide != nil {
		lines = append(lines, "",
			t.colorPanel.Sprint(i18n.Tf("SLIDE_COUNTER", p.Slide.Index+1, p.Slide.Count))+"  "+
				t.colorText.Sprint(p.Slide.Alt)+"  "+t.colorSubtle.Sprint(i18n.T("SLIDE_CONTROLS")))
	}
	return lines
}

func (t *TUIRenderer) composeSlide(s *renderer.SlideView, width, height int) []string {
	lines := make([]string, max(height/2-2, 0))
	return append(lines,
		center(t.colorHighlight.Sprint(s.Alt), width),
		center(t.colorSubtle.Sprint(s.Src), width),
		"",
		center(t.colorPanel.Sprint(i18n.Tf("SLIDE_COUNTER", s.Index+1, s.Count)), width),
		center(t.colorSubtle.Sprint(i18n.T("FULLSCREEN_EXIT")), width),
	)
}

// center pads a styled string so its visible text is centred in width.
func center(s string, width int) string {
	pad := (width - uniseg.StringWidth(color.ClearCode(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
