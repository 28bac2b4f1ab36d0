package main

import (
	"github.com/pustaka-labs/naskah/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
