package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/guillenLawn/bodega-backend/models"
)

// Config is the process configuration, read from the environment
// (optionally seeded from a .env file).
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	Port      string
	RedisAddr string

	// EstadoInicial is the state a freshly placed order starts in.
	// Cash-and-carry deployments can set ORDER_INITIAL_STATE=completado.
	EstadoInicial models.Estado
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := Config{
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "bodega"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          getenv("PORT", "8080"),
		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		EstadoInicial: models.Estado(getenv("ORDER_INITIAL_STATE", string(models.EstadoPendiente))),
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if !cfg.EstadoInicial.Valido() {
		log.Printf("ORDER_INITIAL_STATE %q desconocido, usando %q", cfg.EstadoInicial, models.EstadoPendiente)
		cfg.EstadoInicial = models.EstadoPendiente
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
