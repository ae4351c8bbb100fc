package main

import (
	"log/slog"
	"os"

	"contract-consult/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		slog.Error("contract-consult exited", "error", err)
		os.Exit(1)
	}
}
