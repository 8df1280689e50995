// Command mockai serves a canned text-generation endpoint so the API can
// run the generate flow without a real provider.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"portfolio-api/pkg/ai/aitest"
)

func main() {
	addr := flag.String("addr", ":8085", "listen address")
	echo := flag.Bool("echo", true, "prepend the prompt like a full-text model")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	h := &aitest.Handler{Echo: *echo}

	logger.Info("mock ai listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, h); err != nil {
		logger.Error("mock ai server failed", "error", err)
		os.Exit(1)
	}
}
