package config

import (
	"os"

	"github.com/charan-kumar-kamasani/authentik/pkg/util"
)

// Config holds the process configuration shared by the server and CLI.
type Config struct {
	MongoURI       string
	Database       string
	Addr           string
	AllowedOrigins string
	EventsConfig   string
}

// FromEnv builds a Config from the environment with the defaults the
// deployment scripts assume.
func FromEnv() Config {
	uri := util.GetEnv("MONGO_URI", "mongodb://localhost:27017/authentik")
	return Config{
		MongoURI:       uri,
		Database:       util.GetEnv("MONGO_DB", util.DatabaseFromURI(uri, "authentik")),
		Addr:           util.GetEnv("ADDR", ":8080"),
		AllowedOrigins: util.GetEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		EventsConfig:   os.Getenv("FC_EVENTS_CONFIG"),
	}
}
