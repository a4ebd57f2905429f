package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"pixelportfolio/pkg/bridge"
	"pixelportfolio/pkg/engine/logging"
	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/content"
	"pixelportfolio/pkg/game/devtools"
	"pixelportfolio/pkg/game/gameplay"
	"pixelportfolio/pkg/game/i18n"
	"pixelportfolio/pkg/game/renderer"
	ebitenrenderer "pixelportfolio/pkg/game/renderer/ebiten"
	"pixelportfolio/pkg/game/renderer/tui"
	"pixelportfolio/pkg/game/state"
)

// tuiLogFile keeps log lines off the terminal the map is drawn on.
const tuiLogFile = "portfolio.log"

type options struct {
	renderer    string
	configPath  string
	prefsPath   string
	contentPath string
	language    string
	logLevel    string
	addr        string
	seed        int64
	dumpScene   string
	dumpJSON    bool
	screenshot  string
	writeConfig string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.renderer, "renderer", "ebiten", "presentation backend: ebiten, tui or serve")
	flag.StringVar(&o.configPath, "config", "", "path to a YAML config file (defaults when empty)")
	flag.StringVar(&o.prefsPath, "prefs", config.DefaultPreferencesPath(), "path to the visitor preferences file")
	flag.StringVar(&o.contentPath, "content", "", "path to a YAML content catalogue (built-in when empty)")
	flag.StringVar(&o.language, "lang", i18n.DefaultLanguage, "UI language")
	flag.StringVar(&o.logLevel, "log-level", "", "override the configured log level")
	flag.StringVar(&o.addr, "addr", "", "override the bridge listen address (serve only)")
	flag.Int64Var(&o.seed, "seed", 0, "scenery seed (for developer testing; 0 picks one)")
	flag.StringVar(&o.dumpScene, "dump-scene", "", "write a debug dump of the assembled scene to this file and exit")
	flag.BoolVar(&o.dumpJSON, "dump-json", false, "print the assembled scene as JSON and exit")
	flag.StringVar(&o.screenshot, "screenshot", "", "save an HTML snapshot of the start position into this directory and exit")
	flag.StringVar(&o.writeConfig, "write-config", "", "write the effective config (after flag overrides) to this file and exit")
	flag.Parse()
	return o
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(o options) error {
	if err := i18n.Load(o.language); err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.addr != "" {
		cfg.Server.Addr = o.addr
	}
	if o.seed != 0 {
		cfg.World.Seed = o.seed
	}
	if o.writeConfig != "" {
		if err := cfg.Save(o.writeConfig); err != nil {
			return err
		}
		fmt.Println("config written to", o.writeConfig)
		return nil
	}

	var outputs []string
	switch {
	case cfg.Logging.File != "":
		outputs = append(outputs, cfg.Logging.File)
	case o.renderer == "tui":
		outputs = append(outputs, tuiLogFile)
	}
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, outputs...)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := loadContent(o.contentPath)
	if err != nil {
		return err
	}
	log.Info("content loaded", zap.Int("pages", store.Len()))

	if o.renderer == "serve" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return bridge.New(cfg, store, log).ListenAndServe(ctx)
	}

	prefs, err := config.LoadPreferences(o.prefsPath)
	if err != nil {
		log.Warn("could not load preferences, using defaults", zap.Error(err))
		prefs, _ = config.LoadPreferences("")
	}

	g, err := gameplay.BuildGame(cfg, store, prefs, log)
	if err != nil {
		return err
	}

	if done, err := runDevtools(o, g); done || err != nil {
		return err
	}

	var r renderer.Renderer
	switch o.renderer {
	case "ebiten":
		r = ebitenrenderer.New(log)
	case "tui":
		r = tui.New(log)
	default:
		return fmt.Errorf("unknown renderer %q (want ebiten, tui or serve)", o.renderer)
	}

	if err := r.Init(); err != nil {
		return fmt.Errorf("failed to initialise %s renderer: %w", o.renderer, err)
	}
	defer r.Close()
	return r.Run(g)
}

func loadContent(path string) (*content.Store, error) {
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}

// runDevtools handles the one-shot developer flags. It reports whether one ran.
func runDevtools(o options, g *state.Game) (bool, error) {
	switch {
	case o.dumpScene != "":
		path, err := devtools.DumpSceneToFile(g, o.dumpScene)
		if err != nil {
			return true, err
		}
		devtools.PrintBuildings(os.Stdout, g)
		fmt.Println("scene dump written to", path)
		return true, nil
	case o.dumpJSON:
		return true, devtools.WriteSceneJSON(os.Stdout, g)
	case o.screenshot != "":
		gameplay.FinishLoading(g)
		gameplay.Tick(g, 0)
		path, err := devtools.SaveScreenshotHTML(g, o.screenshot)
		if err != nil {
			return true, err
		}
		fmt.Println("screenshot written to", path)
		return true, nil
	}
	return false, nil
}
