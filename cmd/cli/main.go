package main

import (
	"github.com/mverv/manyscore/internal/cli"
)

func main() {
	cli.Execute()
}
