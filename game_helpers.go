package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/canvas-gol/canvas"
	"github.com/sheikhrachel/canvas-gol/game"
	"github.com/sheikhrachel/canvas-gol/model"
	"github.com/sheikhrachel/canvas-gol/sched"
	"github.com/sheikhrachel/canvas-gol/utils"
)

// driverOptions converts the configuration into driver construction parameters
func driverOptions(config utils.Config) game.Options {
	return game.Options{
		Rows:     config.Rows,
		Cols:     config.Cols,
		CellSize: config.CellSize,
		FPS:      config.FPS,
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, d *game.Driver) {
	fmt.Printf("Mode: %s | Grid: %dx%d | Cell size: %dpx | %d FPS\n",
		config.Mode, config.Cols, config.Rows, config.CellSize, config.FPS)
	fmt.Printf("Initial living cells: %d\n", d.Grid().CountLivingCells())
	if config.Mode == utils.ModeTerminal {
		fmt.Println("Press Ctrl+C to exit gracefully")
	} else {
		fmt.Println("Click cells to toggle them, Space/Start to run, R/Reset to clear, Esc to quit")
	}
	fmt.Println()
}

// runWindow opens the ebiten window and blocks until it is closed
func runWindow(config utils.Config) error {
	loop := sched.NewLoop()
	c := canvas.New(config.Cols, config.Rows, config.CellSize, loop)

	d, err := game.New(driverOptions(config), c, loop, c)
	if err != nil {
		return errors.Wrap(err, "[runWindow] failed to create driver")
	}
	c.Bind(d)

	cells, err := game.SeedCells(config)
	if err != nil {
		return err
	}
	d.Seed(cells)
	displayGameInfo(config, d)

	w, h := c.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err = ebiten.RunGame(c); err != nil {
		return errors.Wrap(err, "[runWindow] game loop failed")
	}
	return nil
}

// runTerminal animates the seeded board in the terminal until the run ends
// or the process is interrupted
func runTerminal(config utils.Config) error {
	eg, ctx := errgroup.WithContext(context.Background())
	ctx, finish := context.WithCancel(ctx)
	defer finish()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var (
		d           *game.Driver
		generations int
		outcome     = model.Continuing
		start       = time.Now()
		loop        = sched.NewLoop()
		renderer    = model.NewTerminalRenderer(os.Stdout, config.Cols, config.Rows, config.CellSize)
	)
	renderer.ClearCmd = model.ClearCommand

	// the final frame is redrawn after an extinction, so the message is
	// printed once the loop has stopped
	notifier := game.NotifierFunc(func(o model.Outcome) {
		generations = d.Generation()
		outcome = o
		finish()
	})

	d, err := game.New(driverOptions(config), renderer, loop, notifier)
	if err != nil {
		return errors.Wrap(err, "[runTerminal] failed to create driver")
	}
	renderer.Status = d.Stats().String

	cells, err := game.SeedCells(config)
	if err != nil {
		return err
	}
	d.Seed(cells)
	displayGameInfo(config, d)

	eg.Go(func() error {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			loop.Post(func() {
				generations = d.Generation()
				finish()
			})
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	loop.Post(d.Start)

	if err = eg.Wait(); err != nil {
		return errors.Wrap(err, "[runTerminal] loop failed")
	}

	if outcome != model.Continuing {
		fmt.Printf("\n🏁 %s\n", outcome.Message())
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generations, time.Since(start).Seconds())
	return nil
}
