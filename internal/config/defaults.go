package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultShooterConfig returns the default Logo Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Pool: ShooterPool{
			Min:               3,
			Max:               5,
			MinSpacing:        18,
			PlacementAttempts: 12,
			ExtraSpawnChance:  0.01,
			SpawnMargin:       10,
		},
		Motion: ShooterMotion{
			ExitDepth: 100,
			MinSpeed:  0.35,
			MaxSpeed:  0.7,
			MaxDrift:  0.03,
		},
		Projection: ProjectionConfig{
			SpreadMin:   0.15,
			SpreadMax:   1.6,
			SpreadCurve: 2.2,
			SizeMin:     2,
			SizeMax:     16,
			SizeCurve:   1.6,
			FadeIn:      4,
		},
		Stars: StarfieldConfig{
			Count:    60,
			MinSpeed: 0.4,
			MaxSpeed: 1.4,
		},
		Effects: ShooterEffects{
			HitFlashMs: 450,
			LaserMs:    120,
			BurstMs:    350,
		},
		Gameplay: ShooterGameplay{
			RoundSeconds: 60,
			PointsPerHit: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultTetrisConfig returns the default Testimonial Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: TetrisGrid{
			Cols: 10,
			Rows: 14,
		},
		Timing: TetrisTiming{
			FallIntervalMs:    700,
			MinFallIntervalMs: 150,
			ClearFrames:       18,
			AutoStart:         true,
		},
		Scoring: TetrisScoring{
			RowPoints:  100,
			CellPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.7,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
