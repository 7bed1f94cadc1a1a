package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mindala/internal/app"
	"mindala/internal/config"
	"mindala/internal/storage"
)

func main() {
	logFile, err := os.Create("mindala.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (shows key events in status)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snapshotPath := cfg.Snapshot
	if args := flag.Args(); len(args) > 0 {
		snapshotPath = args[0]
	}
	if snapshotPath == "" {
		snapshotPath = storage.DefaultSnapshotPath()
	}

	application, err := app.NewApp(cfg, snapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}
