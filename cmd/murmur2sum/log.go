package main

import (
	"io"
	"strings"

	"github.com/op/go-logging"
)

const logFormat = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{message}"

var log = logging.MustGetLogger("murmur2sum")

// setupLogging sends log records at level and above to w.
func setupLogging(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return err
	}

	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(logFormat),
		),
	)
	backend.SetLevel(lvl, "")
	logging.SetBackend(backend)

	return nil
}
