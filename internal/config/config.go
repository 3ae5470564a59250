// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all configuration for the Logo Shooter game.
type ShooterConfig struct {
	Pool       ShooterPool      `yaml:"pool"`
	Motion     ShooterMotion    `yaml:"motion"`
	Projection ProjectionConfig `yaml:"projection"`
	Stars      StarfieldConfig  `yaml:"stars"`
	Effects    ShooterEffects   `yaml:"effects"`
	Gameplay   ShooterGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPool bounds the set of flying logos.
type ShooterPool struct {
	Min               int     `yaml:"min"`
	Max               int     `yaml:"max"`
	MinSpacing        float64 `yaml:"min_spacing"`        // percent of viewport
	PlacementAttempts int     `yaml:"placement_attempts"` // tries before accepting a close spot
	ExtraSpawnChance  float64 `yaml:"extra_spawn_chance"` // per reference frame, while below Max
	SpawnMargin       float64 `yaml:"spawn_margin"`       // percent kept clear at the edges
}

// ShooterMotion defines how fast logos travel toward the camera.
type ShooterMotion struct {
	ExitDepth float64 `yaml:"exit_depth"`
	MinSpeed  float64 `yaml:"min_speed"` // depth units per reference frame
	MaxSpeed  float64 `yaml:"max_speed"`
	MaxDrift  float64 `yaml:"max_drift"` // percent per reference frame
}

// ProjectionConfig shapes the perspective curve. Sizes are in cells.
type ProjectionConfig struct {
	SpreadMin   float64 `yaml:"spread_min"`
	SpreadMax   float64 `yaml:"spread_max"`
	SpreadCurve float64 `yaml:"spread_curve"`
	SizeMin     float64 `yaml:"size_min"`
	SizeMax     float64 `yaml:"size_max"`
	SizeCurve   float64 `yaml:"size_curve"`
	FadeIn      float64 `yaml:"fade_in"` // opacity reaches 1 at progress 1/FadeIn
}

// StarfieldConfig defines the background stars.
type StarfieldConfig struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// ShooterEffects sets how long transient feedback stays on screen.
type ShooterEffects struct {
	HitFlashMs int `yaml:"hit_flash_ms"`
	LaserMs    int `yaml:"laser_ms"`
	BurstMs    int `yaml:"burst_ms"`
}

// ShooterGameplay defines round rules.
type ShooterGameplay struct {
	RoundSeconds int `yaml:"round_seconds"` // 0 = endless
	PointsPerHit int `yaml:"points_per_hit"`
}

// Validate reports settings the shooter cannot run with.
func (c ShooterConfig) Validate() error {
	var errs []error
	if c.Pool.Min < 0 || c.Pool.Max < 1 || c.Pool.Min > c.Pool.Max {
		errs = append(errs, fmt.Errorf("pool: need 0 <= min <= max and max >= 1, got min=%d max=%d", c.Pool.Min, c.Pool.Max))
	}
	if c.Motion.ExitDepth <= 0 {
		errs = append(errs, fmt.Errorf("motion: exit_depth must be positive"))
	}
	if c.Motion.MinSpeed <= 0 || c.Motion.MaxSpeed < c.Motion.MinSpeed {
		errs = append(errs, fmt.Errorf("motion: need 0 < min_speed <= max_speed"))
	}
	if c.Projection.SizeMax < c.Projection.SizeMin {
		errs = append(errs, fmt.Errorf("projection: size_max below size_min"))
	}
	if c.Pool.SpawnMargin < 0 || c.Pool.SpawnMargin >= 50 {
		errs = append(errs, fmt.Errorf("pool: spawn_margin must be in [0, 50)"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: shooter: %w", err)
	}
	return nil
}

// TetrisConfig contains all configuration for Testimonial Tetris.
type TetrisConfig struct {
	Grid       TetrisGrid       `yaml:"grid"`
	Timing     TetrisTiming     `yaml:"timing"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisGrid defines the board size in cells.
type TetrisGrid struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TetrisTiming defines the fall timer and clear animation.
type TetrisTiming struct {
	FallIntervalMs    int  `yaml:"fall_interval_ms"`
	MinFallIntervalMs int  `yaml:"min_fall_interval_ms"`
	ClearFrames       int  `yaml:"clear_frames"` // reference frames the clear flash lasts
	AutoStart         bool `yaml:"auto_start"`   // start from idle when the view becomes visible
}

// TetrisScoring defines points per clear.
type TetrisScoring struct {
	RowPoints  int `yaml:"row_points"`
	CellPoints int `yaml:"cell_points"`
}

// Validate reports settings the grid game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Grid.Cols < 4 || c.Grid.Rows < 4 {
		errs = append(errs, fmt.Errorf("grid: need at least 4x4, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Timing.FallIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing: fall_interval_ms must be positive"))
	}
	if c.Timing.MinFallIntervalMs <= 0 || c.Timing.MinFallIntervalMs > c.Timing.FallIntervalMs {
		errs = append(errs, fmt.Errorf("timing: need 0 < min_fall_interval_ms <= fall_interval_ms, got %d", c.Timing.MinFallIntervalMs))
	}
	if r := c.Difficulty.Scaling.IntervalReduction; r < 0 || r >= 1 {
		errs = append(errs, fmt.Errorf("difficulty: interval_reduction must be in [0, 1), got %v", r))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: tetris: %w", err)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of an interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
