// Command y2022 solves Advent of Code 2022.
package main

import (
	"embed"

	"github.com/elfpath/aoc"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
