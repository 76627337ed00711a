package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON slog handler on stdout as the process default.
// main swaps it for the multi handler once the database is up.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
