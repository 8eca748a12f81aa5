package main

import (
	"os"
	"path/filepath"

	"github.com/powerman/structlog"

	"github.com/alexchoi94/tscheck/cmd"
)

func main() {
	structlog.DefaultLogger.
		SetPrefixKeys(
			structlog.KeyApp, structlog.KeyLevel, structlog.KeyTime,
		).
		SetDefaultKeyvals(
			structlog.KeyApp, filepath.Base(os.Args[0]),
		).
		SetKeysFormat(map[string]string{
			structlog.KeyTime: " %[2]s",
		})

	cmd.Execute()
}
