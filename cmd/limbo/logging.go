package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "limbo.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the application logger
// The terminal belongs to the game, so nothing is ever written to stdout or stderr:
// without debug all output is discarded, with debug it goes to dir/limbo.log, rotated past maxLogSize
// The standard library logger is redirected the same way
func setupLogging(dir string, debug bool, level zerolog.Level) (zerolog.Logger, *os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("limbo-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			log.SetOutput(io.Discard)
			return zerolog.Nop(), nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	log.SetFlags(0)
	log.SetOutput(logger)
	return logger, file, nil
}
