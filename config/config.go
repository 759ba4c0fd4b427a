package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Config is the full runtime configuration, seeded from parameter defaults
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Physics PhysicsConfig `yaml:"physics"`
	Ball    BodyConfig    `yaml:"ball"`
	Paddle  BodyConfig    `yaml:"paddle"`
	Systems SystemsConfig `yaml:"systems"`
	Input   InputConfig   `yaml:"input"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PhysicsConfig struct {
	PaddleSpeed        float64 `yaml:"paddle_speed"`
	MomentumMultiplier float64 `yaml:"momentum_multiplier"`
	WallBounce         string  `yaml:"wall_bounce"`
}

// BodyConfig describes a spawned entity; positions and velocities are {x, y} maps
type BodyConfig struct {
	Position vmath.Vec2 `yaml:"position"`
	Size     vmath.Vec2 `yaml:"size"`
	Velocity vmath.Vec2 `yaml:"velocity"`
}

type SystemsConfig struct {
	Order []string `yaml:"order"`
}

type InputConfig struct {
	HoldWindow time.Duration `yaml:"hold_window"`
	// Bindings maps a control name (up, left, down, right) to its keys
	Bindings map[string][]string `yaml:"bindings"`
}

type RenderConfig struct {
	FPS int `yaml:"fps"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Path is the log file; empty disables logging since the terminal owns stdout
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  parameter.ArenaWidth,
			Height: parameter.ArenaHeight,
		},
		Physics: PhysicsConfig{
			PaddleSpeed:        parameter.PaddleSpeed,
			MomentumMultiplier: parameter.MomentumMultiplier,
			WallBounce:         parameter.WallBounceLiteral,
		},
		Ball: BodyConfig{
			Position: vmath.V2(parameter.BallX, parameter.BallY),
			Size:     vmath.V2(parameter.BallWidth, parameter.BallHeight),
			Velocity: vmath.V2(parameter.BallVelocityX, parameter.BallVelocityY),
		},
		Paddle: BodyConfig{
			Position: vmath.V2(parameter.PaddleX, parameter.PaddleY),
			Size:     vmath.V2(parameter.PaddleWidth, parameter.PaddleHeight),
		},
		Systems: SystemsConfig{
			Order: append([]string(nil), parameter.DefaultSystemOrder...),
		},
		Input: InputConfig{
			HoldWindow: parameter.KeyHoldWindow,
			Bindings:   defaultBindings(),
		},
		Render: RenderConfig{
			FPS: parameter.FramesPerSecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultBindings() map[string][]string {
	return map[string][]string{
		"up":    {"w"},
		"left":  {"a"},
		"down":  {"s"},
		"right": {"d"},
	}
}

// Load reads a YAML file over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML over the defaults and validates the result
// Unknown keys are rejected; an empty document yields the defaults.
// A bindings section replaces the default layout as a whole, so controls it omits are unbound.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	// yaml.v3 merges into an existing map
	cfg.Input.Bindings = nil

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(cfg.Input.Bindings) == 0 {
		cfg.Input.Bindings = defaultBindings()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
