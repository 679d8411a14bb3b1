package ports

// SeedSource produces the seed for one reading. Injected so tests can pin
// a draw while production uses a fresh secure seed per reading.
type SeedSource interface {
	Seed() int64
}

// SeedFunc adapts a plain function to SeedSource.
type SeedFunc func() int64

func (f SeedFunc) Seed() int64 { return f() }
