package main

import (
	"os"

	"github.com/leonardinius/golox/cmd"
)

func main() {
	os.Exit(cmd.NewLoxApp().Main(os.Args[1:]))
}
