package main

import (
	"github.com/piyushdaiya/wallet-classifier/internal/cli"
)

func main() {
	cli.Execute()
}
