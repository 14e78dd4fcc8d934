package main

import (
	"os"

	"github.com/priyakdey/countsquares/cmd/countsquares/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
