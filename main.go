package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	configPath  = flag.String("config", "config.json", "path to the JSON configuration file")
	seed        = flag.Int64("seed", 0, "random source seed (0 seeds from the clock)")
	seeded      = flag.Bool("seeded", false, "initialize from the config seed coordinates instead of coin flips")
	generations = flag.Int("generations", -1, "stop after this many generations (overrides max_generations, 0 runs forever)")
)

func main() {
	flag.Parse()

	runID := uuid.NewString()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := LoadDriverConfig(*configPath)
	if err != nil {
		utils.Logf("[main] run %s: %v", runID, err)
		os.Exit(1)
	}
	if *generations >= 0 {
		config.MaxGenerations = *generations
	}

	mode := model.InitRandom
	if *seeded {
		mode = model.InitSeeded
	}

	life, renderer, stats, err := initializeGame(config, mode, *seed)
	if err != nil {
		utils.Logf("[main] run %s: %v", runID, err)
		os.Exit(1)
	}
	utils.Logf("[main] run %s started", runID)
	displayGameInfo(config, life, mode)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = runGame(ctx, config, life, renderer, stats); err != nil {
		utils.Logf("[main] run %s: %v", runID, err)
		os.Exit(1)
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		life.Generation(), stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	utils.Logf("[main] run %s finished", runID)
}

// runGame drives the wall-clock loop until the context ends or the generation
// limit is reached
func runGame(
	ctx context.Context,
	config utils.LifeConfig,
	life *model.Life,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	frameRate := config.FrameRate
	if frameRate <= 0 {
		frameRate = utils.DefaultConfig().FrameRate
	}
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	var (
		lastFrame   = time.Now()
		lastAdvance = lastFrame
	)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			return nil
		case now := <-ticker.C:
			advanced, err := life.Tick(now.Sub(lastFrame).Seconds())
			lastFrame = now
			if err != nil {
				return err
			}
			if !advanced {
				continue
			}

			stats.Update(life.Generation(), life.Population(), now.Sub(lastAdvance))
			lastAdvance = now

			renderer.Clear()
			displayGameStatus(life, stats)
			width, height := life.Size()
			renderer.Display(life.View(), width, height)

			if reachedGenerationLimit(life.Generation(), config) {
				fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
				return nil
			}
		}
	}
}
