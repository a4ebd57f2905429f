package gameplay

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/content"
	"pixelportfolio/pkg/game/scene"
	"pixelportfolio/pkg/game/state"
)

// BuildGame assembles the scene from cfg and starts a new session in the loading state.
func BuildGame(cfg *config.Config, store *content.Store, prefs *config.Preferences, log *zap.Logger) (*state.Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sc, err := scene.AssembleFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble scene: %w", err)
	}
	g := state.NewGame(cfg, sc, store, prefs, log)
	g.Log.Info("scene assembled",
		zap.Int64("seed", sc.Seed),
		zap.Int("buildings", sc.Structures.Len()),
		zap.Int("decorations", len(sc.Decorations)),
		zap.Int("path_segments", len(sc.Paths)),
	)
	return g, nil
}

// LoadingProgress returns how far through the start-up delay the session is, in [0, 1].
func LoadingProgress(g *state.Game, now time.Time) float32 {
	if !g.Loading {
		return 1
	}
	delay := g.Cfg.Loading.Delay
	if delay <= 0 {
		return 1
	}
	p := float32(now.Sub(g.LoadingStarted)) / float32(delay)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// UpdateLoading ends the loading state once the start-up delay has passed.
func UpdateLoading(g *state.Game, now time.Time) {
	if g.Loading && LoadingProgress(g, now) >= 1 {
		FinishLoading(g)
	}
}

// FinishLoading lifts the loading gate so the tick starts simulating.
func FinishLoading(g *state.Game) {
	if !g.Loading {
		return
	}
	g.Loading = false
	g.Log.Info("loading finished", zap.Duration("after", time.Since(g.LoadingStarted)))
}
