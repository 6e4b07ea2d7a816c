package main

import (
	"github.com/dkaye/rpsgame-go/internal/cli"
)

func main() {
	cli.Execute()
}
