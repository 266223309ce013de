package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic piece order
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
