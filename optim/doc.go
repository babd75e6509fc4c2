// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for scalar parameters.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range numSteps {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    loss, err := criterion.Forward(predict(mlp, inputs), targets)
//
//	    // 3. Backward pass
//	    loss.Backward()
//
//	    // 4. Update parameters
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	}
package optim
