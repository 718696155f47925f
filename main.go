package main

import (
	"os"

	"github.com/ksdhruvateja/grocera-sub002/adapters/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
