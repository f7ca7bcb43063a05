package main

import (
	"fmt"
	"os"

	"copy_icon/assets"
	"copy_icon/cfg"
	"copy_icon/cli"
	"copy_icon/util/logger"
	"copy_icon/util/tw"

	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

func main() {
	// Init logger
	log := logger.New(logrus.InfoLevel)

	// Parse command line arguments
	flags, err := cli.Parse()
	if flags.Version {
		fmt.Println("v1.0.0")
		os.Exit(0)
	}
	if cli.IsErrOfType(err, goFlags.ErrHelp) {
		// Help message will be printed by go-flags
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(flags.LogLevel)

	// Read program config
	cfg, err := cfg.Init(log)
	if err != nil {
		log.Fatal(err)
	}

	// Copy the source file to every target directory. Only a missing source file is fatal.
	assetsRepo := assets.NewRepo(log, cfg)
	results, err := assetsRepo.CopyAll()
	if err != nil {
		log.Fatal(err)
	}
	if flags.Summary {
		assetsRepo.PrintSummary(tw.New(), results)
	}
}
