package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string `env:"JERSEY_SHOP_ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`

	Admin Admin `envPrefix:"ADMIN_"`
	ImgBB ImgBB `envPrefix:"IMGBB_"`

	// SecurityChargePerUnit is the advance (in taka) collected per ordered
	// unit before production starts.
	SecurityChargePerUnit int `env:"SECURITY_CHARGE_PER_UNIT" envDefault:"150"`
	DeliveryCharge        int `env:"DELIVERY_CHARGE" envDefault:"110"`
}

// Admin is the single hard-coded storefront admin account. There is no user
// table; the panel is gated by this one credential pair.
type Admin struct {
	Username string `env:"USERNAME" envDefault:"rfapLogin"`
	Password string `env:"PASSWORD" envDefault:"rfapPass"`
}

type ImgBB struct {
	Endpoint string `env:"ENDPOINT" envDefault:"https://api.imgbb.com/1/upload"`
	APIKey   string `env:"API_KEY"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
