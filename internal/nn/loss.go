package nn

import (
	"fmt"

	"github.com/born-ml/mikro/internal/autodiff"
)

// MaxMarginLoss computes the SVM max-margin classification loss of model
// over a dataset with -1/+1 targets, plus L2 regularization:
//
//	loss = mean(relu(1 - y_i * score_i)) + alpha * sum(p²)
//
// The returned loss node roots the combined graph of every forward pass, so
// one Backward call accumulates gradients for all samples. Also returns the
// fraction of samples whose score sign matches the target.
func MaxMarginLoss(model *MLP, inputs [][]float64, targets []float64, alpha float64) (*autodiff.Value, float64) {
	if len(inputs) != len(targets) {
		panic(fmt.Sprintf("nn: MaxMarginLoss: %d inputs vs %d targets", len(inputs), len(targets)))
	}

	losses := make([]*autodiff.Value, len(inputs))
	correct := 0
	for i, features := range inputs {
		x := make([]*autodiff.Value, len(features))
		for j, f := range features {
			x[j] = autodiff.NewValue(f)
		}
		score := model.Call(x)[0]

		losses[i] = score.MulScalar(-targets[i]).AddScalar(1).ReLU()
		if (targets[i] > 0) == (score.Data() > 0) {
			correct++
		}
	}
	dataLoss := autodiff.Sum(losses).DivScalar(float64(len(inputs)))

	squares := make([]*autodiff.Value, 0, len(model.Parameters()))
	for _, p := range model.Parameters() {
		squares = append(squares, p.Mul(p))
	}
	regLoss := autodiff.Sum(squares).MulScalar(alpha)

	accuracy := float64(correct) / float64(len(inputs))
	return dataLoss.Add(regLoss), accuracy
}
