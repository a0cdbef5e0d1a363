package bench

const (
	// WarmupIterations untimed calls precede every measurement.
	WarmupIterations = 1000

	// DefaultIterations is the number of timed calls per operation.
	DefaultIterations = 10000
)

// Config fixes the size of a run. The entry point always uses DefaultConfig.
type Config struct {
	Warmup     int
	Iterations int
}

func DefaultConfig() Config {
	return Config{
		Warmup:     WarmupIterations,
		Iterations: DefaultIterations,
	}
}
