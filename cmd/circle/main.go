package main

import (
	"os"

	"github.com/kakkky/codesearch/circle"
)

func main() {
	circle.RunDemo(os.Stdout)
}
