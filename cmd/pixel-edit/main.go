package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/pixel-edit/internal/script"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const defaultCanvasSize = 256

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixel-edit %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("pixel-edit - scriptable raster image editor")
			fmt.Println()
			fmt.Println("Usage: pixel-edit [script.jsonl]")
			fmt.Println()
			fmt.Println("Reads one JSON request per line from the script file, or from")
			fmt.Println("stdin when no file is given, and writes one JSON response per")
			fmt.Println("request to stdout.")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PIXEL_EDIT_LOG_LEVEL=debug    Enable debug logging")
			return
		}
	}

	// Logging goes to stderr; stdout carries the response stream.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("PIXEL_EDIT_LOG_LEVEL") == "debug" {
		log.Printf("pixel-edit v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	in := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		defer f.Close()
		in = f
	}

	runner := script.New(defaultCanvasSize, defaultCanvasSize)
	if err := runner.Run(in, os.Stdout); err != nil {
		log.Fatalf("Script error: %v", err)
	}
}
