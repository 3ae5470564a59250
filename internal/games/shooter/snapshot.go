package shooter

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	ClockMs   int64
	Score     int
	Shots     int
	Hits      int
	Active    int
	Spawned   int
	Entities  []EntitySnapshot
	RoundLeft int64
	Paused    bool
	Hidden    bool
	GameOver  bool
}

// EntitySnapshot is the observable part of one entity.
type EntitySnapshot struct {
	ID       string
	Name     string
	X, Y     float64
	Progress float64
	Hit      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		ClockMs:   g.now(),
		Score:     g.score,
		Shots:     g.shots,
		Hits:      g.hits,
		Active:    g.pool.Len(),
		Spawned:   g.pool.Spawned(),
		RoundLeft: int64(g.roundLeftMs),
		Paused:    g.paused,
		Hidden:    g.hidden,
		GameOver:  g.gameOver,
	}
	for _, e := range g.pool.Entities() {
		s.Entities = append(s.Entities, EntitySnapshot{
			ID:       e.ID,
			Name:     e.Name,
			X:        e.X,
			Y:        e.Y,
			Progress: e.Progress(g.cfg.Motion.ExitDepth),
			Hit:      e.Hit,
		})
	}
	return s
}
