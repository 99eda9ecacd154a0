package config

import (
	"github.com/caarlos0/env/v11"

	"cursedwarden/internal/domain/loadout"
)

// Config is the server's environment-driven configuration. Tuning values
// default to the shipped game balance; only the database DSN is required.
type Config struct {
	DBDSN         string `env:"CURSEDWARDEN_DB_DSN"`
	Addr          string `env:"CURSEDWARDEN_ADDR" envDefault:":8080"`
	ContentDir    string `env:"CURSEDWARDEN_CONTENT_DIR"`
	MigrationsDir string `env:"CURSEDWARDEN_MIGRATIONS_DIR" envDefault:"./migrations"`

	GridWidth  int `env:"CURSEDWARDEN_GRID_WIDTH" envDefault:"10"`
	GridHeight int `env:"CURSEDWARDEN_GRID_HEIGHT" envDefault:"8"`
	MaxRounds  int `env:"CURSEDWARDEN_MAX_ROUNDS" envDefault:"30"`

	BaseAttack  int `env:"CURSEDWARDEN_BASE_ATTACK" envDefault:"5"`
	BaseDefense int `env:"CURSEDWARDEN_BASE_DEFENSE" envDefault:"5"`
	BaseSpeed   int `env:"CURSEDWARDEN_BASE_SPEED" envDefault:"10"`
	BaseHealth  int `env:"CURSEDWARDEN_BASE_HEALTH" envDefault:"100"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}

// BaseStats is the warden's unarmed stat line before any placed items.
func (c Config) BaseStats() loadout.StatBlock {
	return loadout.StatBlock{
		Attack:  c.BaseAttack,
		Defense: c.BaseDefense,
		Speed:   c.BaseSpeed,
		Health:  c.BaseHealth,
	}
}
