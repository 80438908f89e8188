package logger

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes, disabled automatically when stdout is not a terminal.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

func colorized() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func paint(color, s string) string {
	if !colorized() {
		return s
	}
	return color + s + reset
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Println(paint(cyan+bold, "┌──────────────────────────────────┐"))
	fmt.Println(paint(cyan+bold, "│  UEX Router — trade route engine │"))
	fmt.Println(paint(cyan+bold, "└──────────────────────────────────┘"))
	fmt.Printf("%s %s\n", paint(dim, "version"), version)
}

// Section prints a visual divider with a title.
func Section(title string) {
	fmt.Printf("\n%s %s\n", paint(cyan, "──"), paint(bold, title))
}

// Info logs a neutral message with a component tag.
func Info(tag, msg string) {
	fmt.Printf("%s %s\n", paint(dim, "["+tag+"]"), msg)
}

// Success logs a success message with a component tag.
func Success(tag, msg string) {
	fmt.Printf("%s %s\n", paint(green, "["+tag+"] ✓"), msg)
}

// Warn logs a warning message with a component tag.
func Warn(tag, msg string) {
	fmt.Printf("%s %s\n", paint(yellow, "["+tag+"] !"), msg)
}

// Error logs an error message with a component tag.
func Error(tag, msg string) {
	fmt.Printf("%s %s\n", paint(red, "["+tag+"] ✗"), msg)
}

// Stats logs a key/value pair, right-aligned for scanability.
func Stats(key string, value interface{}) {
	fmt.Printf("  %s %v\n", paint(dim, key+":"), value)
}

// Server logs the listen address once the HTTP server is up.
func Server(addr string) {
	fmt.Printf("%s listening on %s\n", paint(green, "[Server] ✓"), paint(bold, "http://"+addr))
}
