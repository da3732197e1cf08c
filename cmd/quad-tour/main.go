package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/quadhq/quad-tour/audio"
	"github.com/quadhq/quad-tour/constants"
	"github.com/quadhq/quad-tour/engine"
	"github.com/quadhq/quad-tour/tour"
)

var (
	speedFlag = flag.Int("speed", int(constants.TypeInterval/time.Millisecond), "typewriter interval in milliseconds")
	holdFlag  = flag.Int("hold", int(constants.HoldDuration/time.Millisecond), "full-word hold in milliseconds")
	muteFlag  = flag.Bool("mute", false, "start with sound muted")
	colorFlag = flag.String("color", "auto", "color mode: auto, truecolor, 256")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the tour crashes
	defer func() {
		if r := recover(); r != nil {
			emergencyReset()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mQUAD TOUR CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if *speedFlag <= 0 || *holdFlag < 0 {
		fmt.Fprintln(os.Stderr, "speed must be positive and hold non-negative")
		os.Exit(1)
	}

	// tcell picks truecolor up from COLORTERM
	switch *colorFlag {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Unsetenv("COLORTERM")
	}

	// Initialize audio before the screen goes raw so the warning stays readable
	sounds, err := audio.NewPlayer()
	if err != nil {
		fmt.Printf("Audio initialization failed: %v (continuing without sound)\n", err)
	}
	defer sounds.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	t, err := tour.New(screen, engine.NewSystemClock(), sounds, tour.Options{
		TypeInterval: time.Duration(*speedFlag) * time.Millisecond,
		HoldDuration: time.Duration(*holdFlag) * time.Millisecond,
		Muted:        *muteFlag,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start tour: %v\n", err)
		os.Exit(1)
	}

	if err := t.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Tour exited with error: %v\n", err)
		os.Exit(1)
	}
}

// emergencyReset writes raw escape sequences to leave the terminal usable
// when the screen cannot be finalized cleanly
func emergencyReset() {
	// Mouse off, cursor on, leave alt screen, reset attributes, autowrap on
	fmt.Fprint(os.Stdout, "\x1b[?1003l\x1b[?1006l\x1b[?25h\x1b[?1049l\x1b[0m\x1b[?7h")
	os.Stdout.Sync()
}
