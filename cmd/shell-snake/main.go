package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/tom-on-the-internet/shell-snake/audio"
	"github.com/tom-on-the-internet/shell-snake/config"
	"github.com/tom-on-the-internet/shell-snake/game"
	"github.com/tom-on-the-internet/shell-snake/input"
	"github.com/tom-on-the-internet/shell-snake/render"
	"github.com/tom-on-the-internet/shell-snake/terminal"
)

var (
	dangerFlag  = flag.Bool("danger", false, "danger mode: a permanent block appears for every food eaten")
	tickFlag    = flag.Duration("tick", 0, "turn period, e.g. 80ms (overrides SNAKE_TICK_MS)")
	noSoundFlag = flag.Bool("no-sound", false, "disable feedback tones")
	colorFlag   = flag.String("color", "", "color mode: truecolor, 256 (default: auto-detect)")
	debugFlag   = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
)

func main() {
	// Panic recovery: restore the terminal before the stack trace hits
	// the screen, or the shell is left in raw mode
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nshell-snake crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Load()
	if *dangerFlag {
		cfg.Danger = true
	}
	if *tickFlag > 0 {
		cfg.Tick = *tickFlag
	}
	if *noSoundFlag {
		cfg.Sound = false
	}
	if *colorFlag != "" {
		cfg.Color = *colorFlag
	}

	var colorMode terminal.ColorMode
	switch cfg.Color {
	case "256":
		colorMode = terminal.ColorMode256
	case "truecolor", "true", "24bit":
		colorMode = terminal.ColorModeTrueColor
	default:
		colorMode = terminal.DetectColorMode()
	}

	backend := terminal.NewBackend()

	// Precondition: the board must fit. Checked before anything touches
	// terminal modes so the error prints normally
	cols, rows := backend.Size()
	grid, err := game.NewGrid(rows, cols)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	spawner := game.NewSpawner(time.Now().UnixNano())
	state, err := game.NewState(grid, cfg.Danger, spawner)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	player, err := audio.NewPlayer(cfg.Sound)
	if err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	}
	defer player.Close()

	screen := terminal.NewScreen(backend, colorMode)
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	decoder := input.NewDecoder(backend, cfg.Tick)
	renderer := render.New(screen, grid)

	log.Printf("starting %dx%d board, tick %v, danger=%v", grid.Rows, grid.Cols, cfg.Tick, cfg.Danger)

	loop := game.NewLoop(state, spawner, decoder, renderer, player, interrupt)
	if err := loop.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "input failed: %v\n", err)
		os.Exit(1)
	}

	screen.Fini()
	render.PrintFarewell(os.Stdout, state.Score)
}
