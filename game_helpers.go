package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// LoadDriverConfig loads the config file, falling back to defaults when the
// file does not exist. A file that exists but is invalid is an error.
func LoadDriverConfig(path string) (utils.LifeConfig, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		utils.Logf("[LoadDriverConfig] using default configuration (%s not found)", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// newRandomSource returns a deterministic source for a non-zero seed and a
// clock-seeded one otherwise
func newRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// initializeGame sets up the initial game state
func initializeGame(config utils.LifeConfig, mode model.InitMode, seed int64) (
	*model.Life,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	life, err := model.Initialize(config, mode, newRandomSource(seed))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to initialize board")
	}

	return life, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.LifeConfig, life *model.Life, mode model.InitMode) {
	width, height := life.Size()
	fmt.Printf("Grid: %dx%d | Init: %s | Initial living cells: %d\n",
		width, height, mode, life.Population())
	fmt.Printf("Tick interval: %.2fs | Memory pool: %v\n", config.TickInterval, config.UseMemoryPool)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(life *model.Life, stats *utils.Stats) {
	width, height := life.Size()
	population := life.Population()
	density := float64(population) / float64(width*height) * 100

	status := "Active"
	if population == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		life.Generation(), population, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f ± %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PopulationStdDev, stats.Runtime().Seconds())
	fmt.Println()
}

// reachedGenerationLimit reports whether the configured limit has been hit
func reachedGenerationLimit(generation int, config utils.LifeConfig) bool {
	return config.MaxGenerations > 0 && generation >= config.MaxGenerations
}
