// Package main provides the Mikro CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/born-ml/mikro/internal/config"
	"github.com/born-ml/mikro/internal/dataset"
	"github.com/born-ml/mikro/internal/nn"
	"github.com/born-ml/mikro/internal/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Mikro %s\n", version)
			return
		case "moons":
			runMoons()
			return
		}
	}

	fmt.Println("Mikro - Scalar Autograd Engine for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  moons      Train an MLP classifier on the two-moons dataset")
}

// runMoons trains an MLP on the two-moons dataset, configured through the
// environment (MIKRO_STEPS, MIKRO_LR, MIKRO_LR_DECAY, MIKRO_SAMPLES,
// MIKRO_HIDDEN).
func runMoons() {
	cfg, err := config.Train()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	data := dataset.Moons(cfg.Samples)
	model := nn.NewMLP(2, append(cfg.Hidden, 1))

	fmt.Println(model)
	fmt.Printf("number of parameters: %d\n", len(model.Parameters()))

	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
		LR:    cfg.LR,
		Decay: cfg.LRDecay,
	})

	const alpha = 1e-4
	for k := 0; k < cfg.Steps; k++ {
		loss, accuracy := nn.MaxMarginLoss(model, data.X, data.Y, alpha)

		optimizer.ZeroGrad()
		loss.Backward()
		optimizer.Step()

		fmt.Printf("step %d loss %v, accuracy %.2f%%\n", k, loss.Data(), accuracy*100)
	}
}
