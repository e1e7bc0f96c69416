package config

import (
	"flag"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env   string      `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP  HTTPConfig  `yaml:"http"`
	Store StoreConfig `yaml:"store"`
	CORS  CORSConfig  `yaml:"cors"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"PORT" env-default:"4000"`
}

// StoreConfig holds the remote store connection string. An empty DSN is not
// an error: the app starts in degraded mode with resource routes unmounted.
type StoreConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_URL"`
}

// Available reports whether store credentials were supplied. Computed once
// at startup; routers are only mounted when it is true.
func (s StoreConfig) Available() bool {
	return s.DSN != ""
}

type CORSConfig struct {
	Origin string `yaml:"origin" env:"CORS_ORIGIN"`
}

// AllowedOrigins splits the comma-separated origin list, trimming
// whitespace and trailing slashes so configured values match the Origin
// header exactly.
func (c CORSConfig) AllowedOrigins() []string {
	if c.Origin == "" {
		return nil
	}

	var origins []string
	for _, o := range strings.Split(c.Origin, ",") {
		o = strings.TrimSpace(o)
		o = strings.TrimRight(o, "/")
		if o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}

func MustLoad() *Config {
	// .env is optional, same as the store credentials themselves
	_ = godotenv.Load()

	var cfg Config

	if path := fetchConfigPath(); path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			panic("config file does not exist: " + path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			panic("cannot read config: " + err.Error())
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("cannot read config from environment: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
