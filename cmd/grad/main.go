// Package main provides the grad CLI: a small training demo for the scalar
// autodiff engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("grad %s\n", version)
	case "train":
		runTrain(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("grad - scalar reverse-mode autodiff")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train an MLP on the built-in toy dataset")
}

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	steps := fs.Int("steps", 100, "Number of optimization steps")
	lr := fs.Float64("lr", 0.05, "Learning rate")
	momentum := fs.Float64("momentum", 0, "SGD momentum (ignored for adam)")
	optimizer := fs.String("optimizer", "sgd", "Optimizer: sgd or adam")
	hidden := fs.String("layers", "4,4,1", "Comma-separated layer widths; the last must be 1")
	activations := fs.String("activations", "", "Comma-separated activation per layer (default: tanh everywhere)")
	seed := fs.Int64("seed", 42, "Seed for parameter initialization")
	every := fs.Int("log-every", 10, "Log the loss every N steps")
	_ = fs.Parse(args)

	cfg, err := newTrainConfig(*hidden, *activations)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	cfg.Steps = *steps
	cfg.LR = *lr
	cfg.Momentum = *momentum
	cfg.Optimizer = *optimizer
	cfg.Seed = *seed
	cfg.LogEvery = *every

	logger := log.New(os.Stdout, "", log.LstdFlags)
	result, err := train(cfg, logger)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	logger.Printf("loss %.6f -> %.6f", result.InitialLoss, result.FinalLoss)
	for i, p := range result.Predictions {
		logger.Printf("sample %d: target=%+.1f prediction=%+.4f", i, toyTargets[i], p)
	}
}
