package config

type Seed struct {
	Count int    `env:"SEED_COUNT" envDefault:"100"`
	Rand  uint64 `env:"SEED_RAND" envDefault:"1"`
}
