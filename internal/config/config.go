package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Session Session `envPrefix:"SESSION_"`
	Auth    Auth    `envPrefix:"AUTH_"`
	Discord Discord `envPrefix:"DISCORD_"`
	Payment Payment `envPrefix:"PAYMENT_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Session controls the per-browser tenant session registry. Each session owns
// an independent in-memory store that is discarded after TTL of inactivity.
type Session struct {
	TTL           time.Duration `env:"TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

type Auth struct {
	JWTSecret  string        `env:"JWT_SECRET" envDefault:"nexshop-dev-secret"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
	AdminToken string        `env:"ADMIN_TOKEN" envDefault:"nexshop-admin"`
}

type Discord struct {
	ClientID    string `env:"CLIENT_ID" envDefault:"YOUR_DISCORD_CLIENT_ID"`
	RedirectURL string `env:"REDIRECT_URL"`
}

// Payment tunes the simulated payment flows. PacingDelay is the artificial
// wait inserted before a simulated confirmation resolves.
type Payment struct {
	PacingDelay time.Duration `env:"PACING_DELAY" envDefault:"800ms"`
}
