// SPDX-License-Identifier: MIT

// Command train fits a small multilayer perceptron with the scalar engine and
// prints the loss of every epoch.
//
// Usage:
//
//	train [-config run.yaml] [-epochs N] [-lr RATE] [-seed S]
//
// Without -config the reference run is used: a 3-5-5-1 tanh network on four
// samples with targets ±1, L1 loss, plain SGD.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/scalargrad/train"
)

func main() {
	var (
		path   = flag.String("config", "", "YAML run configuration (defaults to the reference run)")
		epochs = flag.Int("epochs", -1, "override the number of epochs")
		lr     = flag.Float64("lr", 0, "override the learning rate")
		seed   = flag.Uint64("seed", 0, "override the initialisation seed")
	)
	flag.Parse()

	// 1) Configuration: file or defaults, then flag overrides
	cfg := train.DefaultConfig()
	if *path != "" {
		var err error
		if cfg, err = train.LoadConfig(*path); err != nil {
			log.Fatal(err)
		}
	}
	if *epochs >= 0 {
		cfg.Epochs = *epochs
	}
	if *lr > 0 {
		cfg.LearningRate = *lr
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// 2) Build the trainer with a per-epoch report
	tr, err := train.New(cfg, train.WithOnEpoch(func(epoch int, loss float64) {
		fmt.Printf("Epoch: %d | Loss: %.5f\n", epoch, loss)
	}))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("model: %d inputs, layers %v, %d parameters\n",
		cfg.Inputs, cfg.Layers, tr.Model().ParamCount())

	// 3) Train, then show the fit on the training samples
	if _, err = tr.Run(); err != nil {
		log.Fatal(err)
	}
	for i, s := range cfg.Samples {
		pred, err := tr.Predict(s.X)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("sample %d: target %+.2f  prediction %+.5f\n", i, s.Y, pred)
	}
}
