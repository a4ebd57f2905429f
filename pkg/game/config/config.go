// Package config holds the tuning constants and world layout for the portfolio,
// loaded from YAML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"pixelportfolio/pkg/game/world"
)

// Config is the full set of simulation and layout settings.
type Config struct {
	Movement    MovementConfig    `yaml:"movement"`
	Camera      CameraConfig      `yaml:"camera"`
	Interaction InteractionConfig `yaml:"interaction"`
	World       WorldConfig       `yaml:"world"`
	Loading     LoadingConfig     `yaml:"loading"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// MovementConfig controls walking.
type MovementConfig struct {
	Speed float32 `yaml:"speed"` // units per second
	// TurnFactor is the share of the remaining heading difference closed each tick.
	TurnFactor float32 `yaml:"turn_factor"`
}

// CameraConfig controls the follow camera.
type CameraConfig struct {
	Height       float32 `yaml:"height"`        // above the character
	Distance     float32 `yaml:"distance"`      // behind the character
	LookHeight   float32 `yaml:"look_height"`   // aim point above the character
	FollowFactor float32 `yaml:"follow_factor"` // lerp fraction per tick
	Start        Vec3    `yaml:"start"`
	StartTarget  Vec3    `yaml:"start_target"`
	// SpotlightHeight is how far above the character the tracking light hangs.
	SpotlightHeight float32 `yaml:"spotlight_height"`
}

// InteractionConfig controls proximity detection.
type InteractionConfig struct {
	Radius         float32     `yaml:"radius"`
	HighlightColor world.Color `yaml:"highlight_color"`
}

// WorldConfig describes the assembled scene.
type WorldConfig struct {
	// Seed drives scenery placement; 0 picks a time-based seed.
	Seed        int64              `yaml:"seed"`
	GroundSize  float32            `yaml:"ground_size"`
	Buildings   []BuildingConfig   `yaml:"buildings"`
	Decorations []DecorationConfig `yaml:"decorations"`
	Paths       PathConfig         `yaml:"paths"`
}

// BuildingConfig places one interactive structure.
type BuildingConfig struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	ContentKey  string      `yaml:"content_key"`
	X           float32     `yaml:"x"`
	Z           float32     `yaml:"z"`
	Width       float32     `yaml:"width"`
	Height      float32     `yaml:"height"`
	Depth       float32     `yaml:"depth"`
	Color       world.Color `yaml:"color"`
}

// DecorationConfig scatters one kind of prop.
type DecorationConfig struct {
	Kind string `yaml:"kind"`
	// Attempts is the number of candidate positions tried; candidates too
	// close to a building are dropped, not retried.
	Attempts  int     `yaml:"attempts"`
	Spread    float32 `yaml:"spread"`
	Clearance float32 `yaml:"clearance"`
}

// PathConfig lays dirt paths between buildings.
type PathConfig struct {
	SegmentLength float32     `yaml:"segment_length"`
	Width         float32     `yaml:"width"`
	Jitter        float32     `yaml:"jitter"`
	Color         world.Color `yaml:"color"`
	// Extra links beyond the hub-to-building spokes.
	Extra []PathLink `yaml:"extra"`
}

// PathLink is a straight path between two ground points.
type PathLink struct {
	From [2]float32 `yaml:"from"`
	To   [2]float32 `yaml:"to"`
}

// LoadingConfig controls the start-up gate.
type LoadingConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// ServerConfig controls the WebSocket bridge.
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	TickRate int    `yaml:"tick_rate"` // ticks per second
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float32

// Vec returns the mathgl vector.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

// DefaultConfig returns the stock portfolio layout and tuning.
func DefaultConfig() *Config {
	return &Config{
		Movement: MovementConfig{
			Speed:      5.0,
			TurnFactor: 0.1,
		},
		Camera: CameraConfig{
			Height:          5,
			Distance:        7,
			LookHeight:      1.5,
			FollowFactor:    0.05,
			Start:           Vec3{0, 5, -10},
			StartTarget:     Vec3{0, 0, 0},
			SpotlightHeight: 10,
		},
		Interaction: InteractionConfig{
			Radius:         5,
			HighlightColor: world.ColorWhite,
		},
		World: WorldConfig{
			Seed:       0,
			GroundSize: 100,
			Buildings: []BuildingConfig{
				{Name: "Home", Description: "Welcome to my interactive portfolio!", ContentKey: "index",
					X: 0, Z: 0, Width: 5, Height: 3, Depth: 5, Color: 0x6C63FF},
				{Name: "Projects", Description: "Explore my various projects", ContentKey: "projects",
					X: 12, Z: 10, Width: 4, Height: 4, Depth: 4, Color: 0xFF5733},
				{Name: "Skills", Description: "Check out my skills and competencies", ContentKey: "competences",
					X: -12, Z: 10, Width: 4, Height: 2, Depth: 4, Color: 0x33FF57},
				{Name: "Contact", Description: "Get in touch with me", ContentKey: "contact",
					X: 12, Z: -10, Width: 3, Height: 2, Depth: 3, Color: 0x3357FF},
				{Name: "CV", Description: "View my professional resume", ContentKey: "cv",
					X: -12, Z: -10, Width: 3, Height: 5, Depth: 3, Color: 0xFFC300},
				{Name: "Professional Project", Description: "Learn about my professional goals", ContentKey: "projet-pro",
					X: -20, Z: 0, Width: 3, Height: 4, Depth: 3, Color: 0x9933FF},
				{Name: "E4", Description: "Explore my E4 project", ContentKey: "e4",
					X: 20, Z: 0, Width: 3, Height: 2, Depth: 3, Color: 0xFF33CC},
			},
			Decorations: []DecorationConfig{
				{Kind: "tree", Attempts: 30, Spread: 80, Clearance: 8},
				{Kind: "rock", Attempts: 20, Spread: 80, Clearance: 8},
				{Kind: "flower", Attempts: 100, Spread: 90, Clearance: 5},
			},
			Paths: PathConfig{
				SegmentLength: 1.2,
				Width:         1.5,
				Jitter:        0.3,
				Color:         0xD2B48C,
				Extra: []PathLink{
					{From: [2]float32{-12, 10}, To: [2]float32{-20, 0}},
					{From: [2]float32{12, 10}, To: [2]float32{20, 0}},
					{From: [2]float32{-12, -10}, To: [2]float32{-12, 10}},
					{From: [2]float32{12, -10}, To: [2]float32{12, 10}},
				},
			},
		},
		Loading: LoadingConfig{
			Delay: 2500 * time.Millisecond,
		},
		Server: ServerConfig{
			Addr:     ":8080",
			TickRate: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML config file over the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the values the simulation divides by or lerps with.
func (c *Config) Validate() error {
	if c.Movement.Speed < 0 {
		return fmt.Errorf("movement.speed must not be negative, got %v", c.Movement.Speed)
	}
	if c.Movement.TurnFactor <= 0 || c.Movement.TurnFactor > 1 {
		return fmt.Errorf("movement.turn_factor must be in (0, 1], got %v", c.Movement.TurnFactor)
	}
	if c.Camera.FollowFactor <= 0 || c.Camera.FollowFactor > 1 {
		return fmt.Errorf("camera.follow_factor must be in (0, 1], got %v", c.Camera.FollowFactor)
	}
	if c.Interaction.Radius <= 0 {
		return fmt.Errorf("interaction.radius must be positive, got %v", c.Interaction.Radius)
	}
	if c.World.Paths.SegmentLength <= 0 {
		return fmt.Errorf("world.paths.segment_length must be positive, got %v", c.World.Paths.SegmentLength)
	}
	if len(c.World.Buildings) == 0 {
		return errors.New("world.buildings must list at least one building")
	}

	seen := make(map[string]bool, len(c.World.Buildings))
	for i, b := range c.World.Buildings {
		if b.Name == "" {
			return fmt.Errorf("world.buildings[%d]: name is required", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("world.buildings[%d]: duplicate name %q", i, b.Name)
		}
		seen[b.Name] = true
		if b.ContentKey == "" {
			return fmt.Errorf("world.buildings[%d] (%s): content_key is required", i, b.Name)
		}
	}

	for i, d := range c.World.Decorations {
		if _, ok := world.ParseDecorationKind(d.Kind); !ok {
			return fmt.Errorf("world.decorations[%d]: unknown kind %q", i, d.Kind)
		}
		if d.Attempts < 0 {
			return fmt.Errorf("world.decorations[%d]: attempts must not be negative", i)
		}
	}

	if c.Server.TickRate <= 0 {
		return fmt.Errorf("server.tick_rate must be positive, got %d", c.Server.TickRate)
	}
	return nil
}
