package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/nn"
	"github.com/born-ml/grad/internal/optim"
	"github.com/pkg/errors"
)

// Toy binary classification set: four 3-d inputs with ±1 targets.
var (
	toyInputs = [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	toyTargets = []float64{1.0, -1.0, -1.0, 1.0}
)

// trainConfig holds the settings of one training run.
type trainConfig struct {
	Layers      []int
	Activations []string
	Optimizer   string
	Steps       int
	LR          float64
	Momentum    float64
	Seed        int64
	LogEvery    int
}

// trainResult summarizes a training run.
type trainResult struct {
	InitialLoss float64
	FinalLoss   float64
	Predictions []float64
}

// newTrainConfig parses comma-separated layer widths and activation names.
func newTrainConfig(layers, activations string) (trainConfig, error) {
	var cfg trainConfig
	for _, field := range strings.Split(layers, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return cfg, errors.Wrapf(err, "layer width %q", field)
		}
		cfg.Layers = append(cfg.Layers, n)
	}
	if activations != "" {
		for _, name := range strings.Split(activations, ",") {
			cfg.Activations = append(cfg.Activations, strings.TrimSpace(name))
		}
	}
	return cfg, nil
}

func newOptimizer(cfg trainConfig, params []*autodiff.Value) (optim.Optimizer, error) {
	switch strings.ToLower(cfg.Optimizer) {
	case "", "sgd":
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum}), nil
	case "adam":
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR}), nil
	default:
		return nil, errors.Errorf("unknown optimizer %q", cfg.Optimizer)
	}
}

// train fits an MLP to the toy set with MSE loss.
func train(cfg trainConfig, logger *log.Logger) (trainResult, error) {
	var result trainResult

	mlp, err := nn.NewMLP(len(toyInputs[0]), cfg.Layers, nn.MLPConfig{
		Activations: cfg.Activations,
		Rand:        nn.NewRand(cfg.Seed),
	})
	if err != nil {
		return result, errors.Wrap(err, "build model")
	}
	if mlp.OutFeatures() != 1 {
		return result, errors.Errorf("last layer width must be 1, got %d", mlp.OutFeatures())
	}

	optimizer, err := newOptimizer(cfg, mlp.Parameters())
	if err != nil {
		return result, err
	}
	mse := nn.NewMSELoss()

	logger.Printf("model: %d parameters, layers %v, optimizer %s (lr=%g)",
		len(mlp.Parameters()), cfg.Layers, cfg.Optimizer, optimizer.GetLR())

	for step := 0; step <= cfg.Steps; step++ {
		preds, err := predict(mlp)
		if err != nil {
			return result, err
		}
		loss, err := mse.Forward(preds, toyTargets)
		if err != nil {
			return result, err
		}

		if step == 0 {
			result.InitialLoss = loss.Data()
		}
		if step == cfg.Steps {
			result.FinalLoss = loss.Data()
			result.Predictions = make([]float64, len(preds))
			for i, p := range preds {
				result.Predictions[i] = p.Data()
			}
			break
		}

		optimizer.ZeroGrad()
		loss.Backward()
		if err := optimizer.Step(); err != nil {
			return result, errors.Wrapf(err, "step %d", step)
		}

		if cfg.LogEvery > 0 && step%cfg.LogEvery == 0 {
			logger.Printf("step %4d  loss %.6f", step, loss.Data())
		}
	}

	return result, nil
}

// predict builds one fresh graph per sample.
func predict(mlp *nn.MLP) ([]*autodiff.Value, error) {
	preds := make([]*autodiff.Value, len(toyInputs))
	for i, x := range toyInputs {
		out, err := mlp.ForwardScalar(nn.Inputs(x...))
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		preds[i] = out
	}
	return preds, nil
}
