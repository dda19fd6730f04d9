package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rowanheath/ceefax/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	pageDir := flag.String("pages", "", "override page directory (optional)")
	flag.Parse()

	opts := app.Options{ConfigPath: *configPath, PageDir: *pageDir}

	if err := app.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "ceefax: %v\n", err)
		return 1
	}
	return 0
}
