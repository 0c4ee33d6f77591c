package main

import (
	"os"

	"github.com/dive-sc/sinan-godata-app/log"
)

func main() {
	app := GetApp()
	if err := app.Run(os.Args); err != nil {
		log.Import.Error(err)
		os.Exit(1)
	}
}
