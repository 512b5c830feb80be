// Command pdforacle indexes PDF documents into a local vector store and
// answers questions over them.
package main

import (
	"fmt"
	"os"

	"github.com/pdforacle/pdforacle/internal/adapters/driven/config/file"
	"github.com/pdforacle/pdforacle/internal/adapters/driving/cli"
	"github.com/pdforacle/pdforacle/internal/config"
)

func main() {
	config.LoadEnvFiles()

	var fileStore config.ValueSource
	if store, err := file.NewConfigStore(""); err == nil {
		fileStore = store
	}

	cfg := config.Load(fileStore)

	if err := cli.Execute(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
