package main

import (
	"os"
	"strconv"
	"strings"
)

// Config holds server settings read from the environment. AllowCredentials
// is off when AllowedOrigins is "*"; the cors middleware refuses that
// combination.
type Config struct {
	Addr             string
	AllowedOrigins   []string
	AllowCredentials bool
	WSBufferSize     int
}

func loadConfig() Config {
	cfg := Config{
		Addr:             ":3000",
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowCredentials: true,
		WSBufferSize:     1024,
	}
	if v := os.Getenv("CHESS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CHESS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
		for _, o := range cfg.AllowedOrigins {
			if o == "*" {
				cfg.AllowedOrigins = []string{"*"}
				cfg.AllowCredentials = false
				break
			}
		}
	}
	if v := os.Getenv("CHESS_WS_BUFFER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WSBufferSize = n
		}
	}
	return cfg
}
