package main

import (
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// CLI is the command line, with environment fallbacks loaded from .env.
type CLI struct {
	Port          string        `help:"Port to listen on" env:"PORT" default:"8080"`
	DB            string        `help:"Path of the analytics database" env:"PORTFOLIO_DB" default:"data/portfolio.db"`
	Light         bool          `help:"Start every page in the light theme" env:"PORTFOLIO_LIGHT"`
	AdminUsername string        `help:"Admin login name" env:"ADMIN_USERNAME"`
	AdminPassword string        `help:"Admin login password" env:"ADMIN_PASSWORD"`
	PageIdleTTL   time.Duration `help:"Drop page sessions idle for this long" env:"PAGE_IDLE_TTL" default:"30m"`
	Retention     time.Duration `help:"Keep visitor records this long" env:"VISITOR_RETENTION" default:"8760h"`
	Debug         bool          `help:"Enable debug logging and gin debug mode" env:"DEBUG"`
}

// Config is the resolved server configuration.
type Config struct {
	Addr          string
	DBPath        string
	DarkDefault   bool
	AdminUsername string
	AdminPassword string
	PageIdleTTL   time.Duration
	Retention     time.Duration
	Debug         bool
}

func (c *CLI) Config() Config {
	return Config{
		Addr:          ":" + c.Port,
		DBPath:        c.DB,
		DarkDefault:   !c.Light,
		AdminUsername: c.AdminUsername,
		AdminPassword: c.AdminPassword,
		PageIdleTTL:   c.PageIdleTTL,
		Retention:     c.Retention,
		Debug:         c.Debug,
	}
}
