// Package logfile computes log file paths for common naming schemes:
// timestamped, daily, hourly, incremental, and per-session layouts. The
// helpers only build paths; opening and writing stay with the sink layer.
package logfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fileExt = ".log"

// Timestamped returns "<prefix>_<YYYYMMDD-HHMMSS>[_suffix].log" for the
// current time. Suitable for one file per run.
func Timestamped(prefix, suffix string) string {
	return stamped(prefix, suffix, time.Now().Format("20060102-150405"))
}

// Daily returns "<prefix>_<YYYY-MM-DD>[_suffix].log", one file per day.
func Daily(prefix, suffix string) string {
	return stamped(prefix, suffix, time.Now().Format("2006-01-02"))
}

// Hourly returns "<prefix>_<YYYY-MM-DD_HH>[_suffix].log", one file per hour.
func Hourly(prefix, suffix string) string {
	return stamped(prefix, suffix, time.Now().Format("2006-01-02_15"))
}

func stamped(prefix, suffix, stamp string) string {
	name := strings.TrimSpace(prefix)
	if name == "" {
		name = "log"
	}
	name += "_" + stamp
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		name += "_" + suffix
	}
	return name + fileExt
}

// Incremental scans dir for "<prefix>_NNN.log" and returns the path with the
// next free three-digit index, starting at "<prefix>_001.log". Only the
// directory listing is read; the file itself is not created.
func Incremental(dir, prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "log"
	}
	index := 1
	for ; index < 1000; index++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%03d%s", prefix, index, fileExt))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%03d%s", prefix, index, fileExt))
}

// Session returns "<dir>/<YYYY-MM-DD>/<session>.log". Repeated calls
// with the same day and session name target the same file, which is what lets
// an append-mode run resume where the previous one stopped.
func Session(dir, session string) string {
	session = strings.TrimSpace(session)
	if session == "" {
		session = "session"
	}
	day := time.Now().Format("2006-01-02")
	return filepath.Join(dir, day, session+fileExt)
}
