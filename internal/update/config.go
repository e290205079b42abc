package update

import (
	"os"
	"strings"
)

const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

type RuntimeConfig struct {
	Backend              string
	DataDir              string
	DesktopNotifications bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:              BackendSQLite,
		DataDir:              "",
		DesktopNotifications: false,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("REPSD_BACKEND"))); v == BackendSQLite || v == BackendBadger {
		cfg.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("REPSD_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v, ok := getEnvBool("REPSD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	return cfg
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
