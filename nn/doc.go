// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a feed-forward network composition layer over the
// scalar autodiff engine.
//
// # Overview
//
// This package contains:
//   - Neuron: act(b + Σ wᵢ·xᵢ)
//   - Layer: parallel neurons over a shared input
//   - MLP: sequential layers
//   - Activations: tanh, exp, identity
//   - Loss functions: MSELoss
//   - Utilities: Module interface, Parameter, Inputs, ZeroGrad
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/grad/nn"
//	)
//
//	func main() {
//	    mlp, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{
//	        Rand: nn.NewRand(42),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := mlp.ForwardScalar(nn.Inputs(2.0, 3.0, -1.0))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    out.Backward()
//
//	    for _, p := range mlp.NamedParameters() {
//	        fmt.Println(p.Name(), p.Grad())
//	    }
//	}
//
// # Activations
//
// Activation names are resolved when the network is built. "tanh", "exp",
// "identity" and "linear" are accepted; anything else fails NewMLP with
// ErrUnknownActivation.
//
// # Determinism
//
// Parameter initialization draws only from the injected MLPConfig.Rand. Given
// the same seed and inputs, outputs and gradients are bit-for-bit identical.
package nn
