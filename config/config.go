package config

import (
	"errors"
	"fmt"

	"github.com/automoto/arrowfall/shared/gamemath"
)

// PhysicsConfig contains the tunables of the physics engine. Units are
// tiles and seconds, Y grows downward.
type PhysicsConfig struct {
	Gravity        gamemath.Vector2 `yaml:"gravity"`
	MaxResolutions int              `yaml:"maxResolutions"` // tile resolutions per character per step
	UpdateStep     float64          `yaml:"updateStep"`     // fixed step in seconds
}

// GameplayConfig contains the values the collision reactions use.
type GameplayConfig struct {
	CharacterSize     gamemath.Vector2 `yaml:"characterSize"`
	ArrowSize         gamemath.Vector2 `yaml:"arrowSize"`
	ArrowSpeed        float64          `yaml:"arrowSpeed"`
	ArrowGravityScale float64          `yaml:"arrowGravityScale"`
	StompBounce       float64          `yaml:"stompBounce"` // upward speed after landing on a character
	JumpSpeed         float64          `yaml:"jumpSpeed"`
	RunSpeed          float64          `yaml:"runSpeed"`
}

// ServerConfig contains the headless server settings.
type ServerConfig struct {
	Name     string `yaml:"name"`
	Port     uint   `yaml:"port"`
	TickRate int    `yaml:"tickRate"` // ticks per second
	Level    string `yaml:"level"`    // TMX path
	Version  string `yaml:"version"`  // required client version, empty accepts any
}

// Config groups every section so a single YAML file can override them.
type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Server   ServerConfig   `yaml:"server"`
}

const (
	DefaultMaxResolutions = 3
	DefaultUpdateStep     = 0.016
)

// DefaultGravity is 9.81 tiles/s² downward.
var DefaultGravity = gamemath.Vector2{X: 0, Y: 9.81}

// Global configuration instances
var Physics PhysicsConfig
var Gameplay GameplayConfig
var Server ServerConfig

func init() {
	Physics = PhysicsConfig{
		Gravity:        DefaultGravity,
		MaxResolutions: DefaultMaxResolutions,
		UpdateStep:     DefaultUpdateStep,
	}

	Gameplay = GameplayConfig{
		CharacterSize:     gamemath.Vector2{X: 0.8, Y: 1.4},
		ArrowSize:         gamemath.Vector2{X: 0.5, Y: 0.1},
		ArrowSpeed:        18.0,
		ArrowGravityScale: 0.5,
		StompBounce:       6.0,
		JumpSpeed:         8.0,
		RunSpeed:          5.0,
	}

	Server = ServerConfig{
		Name:     "Arrowfall Server",
		Port:     7373,
		TickRate: 60,
		Level:    "levels/arena.tmx",
	}
}

// Defaults returns the global configuration as a Config value.
func Defaults() Config {
	return Config{
		Physics:  Physics,
		Gameplay: Gameplay,
		Server:   Server,
	}
}

// Apply copies c into the global configuration instances.
func (c Config) Apply() {
	Physics = c.Physics
	Gameplay = c.Gameplay
	Server = c.Server
}

// Validate rejects values the engine would have to clamp. The engine still
// clamps on its own; this only catches mistakes in config files.
func (c *PhysicsConfig) Validate() error {
	var errs []error
	if c.MaxResolutions <= 0 || c.MaxResolutions > 255 {
		errs = append(errs, fmt.Errorf("maxResolutions must be in [1, 255], got %d", c.MaxResolutions))
	}
	if c.UpdateStep <= 0 {
		errs = append(errs, fmt.Errorf("updateStep must be positive, got %g", c.UpdateStep))
	}
	return errors.Join(errs...)
}

func (c *GameplayConfig) Validate() error {
	var errs []error
	if c.CharacterSize.X < 0 || c.CharacterSize.Y < 0 {
		errs = append(errs, fmt.Errorf("characterSize must not be negative, got %v", c.CharacterSize))
	}
	if c.ArrowSize.X < 0 || c.ArrowSize.Y < 0 {
		errs = append(errs, fmt.Errorf("arrowSize must not be negative, got %v", c.ArrowSize))
	}
	return errors.Join(errs...)
}

func (c *ServerConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.TickRate)
	}
	return nil
}

func (c *Config) Validate() error {
	return errors.Join(
		c.Physics.Validate(),
		c.Gameplay.Validate(),
		c.Server.Validate(),
	)
}
