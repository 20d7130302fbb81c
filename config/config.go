package config

import (
	"flag"
	"net"
	"os"
	"strconv"
)

// Config holds all application configuration. It is parsed once at startup
// and never mutated afterwards; every connection goroutine shares the same
// read-only value.
type Config struct {
	Host           string
	Port           int
	Directory      string
	ReadBufferSize int
	ReadTimeout    int
	WriteTimeout   int
	MaxConns       int
	Env            string
}

// New loads configuration from the process arguments and environment.
func New() *Config {
	return FromArgs(os.Args[1:])
}

// FromArgs parses configuration from the given argument list. Directory is
// the filesystem root for /files routes; when empty those routes answer 500.
func FromArgs(args []string) *Config {
	cfg := &Config{}

	fs := flag.NewFlagSet("mini-server", flag.ExitOnError)
	fs.StringVar(&cfg.Host, "host", "127.0.0.1", "listening address")
	fs.IntVar(&cfg.Port, "port", 4221, "HTTP server port")
	fs.StringVar(&cfg.Directory, "directory", "", "serving directory for /files routes")
	fs.IntVar(&cfg.ReadBufferSize, "read-buffer", 1024, "per-connection read buffer size (bytes)")
	fs.IntVar(&cfg.ReadTimeout, "read-timeout", 10, "read deadline (seconds, 0 disables)")
	fs.IntVar(&cfg.WriteTimeout, "write-timeout", 10, "write deadline (seconds, 0 disables)")
	fs.IntVar(&cfg.MaxConns, "max-conns", 1024, "maximum concurrent connections")
	fs.StringVar(&cfg.Env, "env", "development", "Environment (development/production)")
	fs.Parse(args)

	// Override with ENV if present
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if dir := os.Getenv("DIRECTORY"); dir != "" {
		cfg.Directory = dir
	}

	return cfg
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
