package main

import (
	"os"

	"github.com/harrison/gols/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
