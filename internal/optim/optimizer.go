// Package optim implements optimizers over the engine's parameter nodes.
//
// Optimizers read each parameter's grad/data pair after a backward pass and
// mutate data in place. The engine accumulates gradients, so the usual loop
// is:
//
//	loss, _ := nn.MaxMarginLoss(model, xs, ys, 1e-4)
//	optimizer.ZeroGrad()
//	loss.Backward()
//	optimizer.Step()
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to all parameters.
	Step()

	// ZeroGrad clears all parameter gradients. Must run before each
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// GetLR returns the current base learning rate.
	GetLR() float64
}
