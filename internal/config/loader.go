package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	minHeadBytes     = 4096
	maxHeadBytes     = 1048576
	defaultHeadBytes = 65536
)

type config struct {
	host string
	port string

	maxHeadBytes int

	logLevel       string
	logDevelopment bool

	healthEnabled bool
	healthPort    string

	bannerEnabled bool
}

func parse() (*config, error) {
	host := getenv("HOST", "localhost")

	port, err := parsePort("PORT", "8000")
	if err != nil {
		return nil, err
	}

	healthEnabled := getenvBool("HEALTH_ENABLED", false)
	healthPort, err := parsePort("HEALTH_PORT", "8001")
	if err != nil {
		return nil, err
	}
	if healthEnabled && healthPort == port {
		return nil, fmt.Errorf("HEALTH_PORT must differ from PORT")
	}

	return &config{
		host:           host,
		port:           port,
		maxHeadBytes:   parseMaxHeadBytes(),
		logLevel:       getenv("LOG_LEVEL", "info"),
		logDevelopment: getenvBool("LOG_DEVELOPMENT", false),
		healthEnabled:  healthEnabled,
		healthPort:     healthPort,
		bannerEnabled:  getenvBool("BANNER_ENABLED", true),
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parsePort(key, def string) (string, error) {
	raw := getenv(key, def)
	if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
		return "", fmt.Errorf("invalid %s value %q", key, raw)
	}
	return raw, nil
}

// parseMaxHeadBytes follows the buffer size rule: out of range values fall
// back to the default instead of failing startup.
func parseMaxHeadBytes() int {
	raw := getenv("MAX_HEAD_BYTES", strconv.Itoa(defaultHeadBytes))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minHeadBytes || size > maxHeadBytes {
		log.Printf("Invalid MAX_HEAD_BYTES, falling back to %d", defaultHeadBytes)
		return defaultHeadBytes
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
