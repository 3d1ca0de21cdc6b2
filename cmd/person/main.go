package main

import (
	"os"

	"github.com/kakkky/codesearch/person"
)

func main() {
	person.RunDemo(os.Stdout)
}
