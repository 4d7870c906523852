package constants

import (
	"os"
	"strconv"
	"time"
)

func GetPort() string {
	port := os.Getenv("SEBASTIAN_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetOutDir() string {
	path := os.Getenv("SEBASTIAN_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPollInterval() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("SEBASTIAN_POLL_MS"))
	if err != nil || ms <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// 960 divides evenly into 64th notes (60 ticks each)
const TicksPerQuarter = 960

const DefaultVelocity = 64

const DefaultTempo = 120.0

// quiet period before watch re-runs a changed file
const WatchDebounce = 100 * time.Millisecond
