// Copyright 2024 CodeAlpha Disease Prediction Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package clf

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/base/log"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/floats"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/model"
	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

// Initial weights are drawn from a narrow normal distribution.
const (
	initMean   float32 = 0
	initStdDev float32 = 0.01
)

// LogisticRegression is a probabilistic linear classifier fitted by
// stochastic gradient descent on the logistic loss. The loss of each sample
// is reweighted inversely to its class frequency.
type LogisticRegression struct {
	model.BaseModel
	W []float32
	B float32
	// Hyper-parameters
	lr      float32
	reg     float32
	nEpochs int
}

// NewLogisticRegression creates a logistic regression classifier.
func NewLogisticRegression(params model.Params) *LogisticRegression {
	lr := new(LogisticRegression)
	lr.SetParams(params)
	return lr
}

// SetParams sets hyper-parameters.
func (lr *LogisticRegression) SetParams(params model.Params) {
	lr.BaseModel.SetParams(params)
	lr.lr = params.GetFloat32(model.Lr, 0.1)
	lr.reg = params.GetFloat32(model.Reg, 1e-4)
	lr.nEpochs = params.GetInt(model.NEpochs, 200)
}

// Clear model weights.
func (lr *LogisticRegression) Clear() {
	lr.W = nil
	lr.B = 0
}

// PredictProba returns the positive-class probability.
func (lr *LogisticRegression) PredictProba(x []float32) float32 {
	return sigmoid(floats.Dot(lr.W, x) + lr.B)
}

// Predict returns the class label.
func (lr *LogisticRegression) Predict(x []float32) int {
	if lr.PredictProba(x) >= 0.5 {
		return 1
	}
	return 0
}

// Fit the logistic regression on training samples. Keeps the weights of the
// best epoch observed on the test samples.
func (lr *LogisticRegression) Fit(ctx context.Context, trainSet, testSet *Samples, config *model.FitConfig) Score {
	config = config.LoadDefaultIfNil()
	log.Logger().Info("fit logistic regression",
		zap.Int("train_size", trainSet.Count()),
		zap.Int("train_positive_count", trainSet.CountPositive()),
		zap.Int("train_negative_count", trainSet.CountNegative()),
		zap.Int("test_size", testSet.Count()),
		zap.Any("params", lr.GetParams()))
	if config.Tracker != nil {
		config.Tracker.Start(lr.nEpochs)
	}
	rng := lr.GetRandomGenerator()
	lr.W = rng.NormalVector(trainSet.Dimension(), initMean, initStdDev)
	lr.B = 0
	weights := trainSet.BalancedWeights()
	perm := make([]int, trainSet.Count())
	for i := range perm {
		perm[i] = i
	}

	evalStart := time.Now()
	bestScore := EvaluateClassification(lr, testSet)
	bestW := slices.Clone(lr.W)
	bestB := lr.B
	evalTime := time.Since(evalStart)
	log.Logger().Debug(fmt.Sprintf("fit logistic regression %v/%v", 0, lr.nEpochs),
		append([]zap.Field{zap.String("eval_time", evalTime.String())}, bestScore.ZapFields()...)...)

	for epoch := 1; epoch <= lr.nEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			log.Logger().Warn("fit canceled", zap.Error(err))
			break
		}
		fitStart := time.Now()
		cost := float32(0)
		rng.Shuffle(len(perm), func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
		for _, i := range perm {
			x := trainSet.X[i]
			target := float32(trainSet.Y[i])
			weight := weights[trainSet.Y[i]]
			prediction := lr.PredictProba(x)
			cost -= weight * (target*math32.Log(prediction+1e-12) +
				(1-target)*math32.Log(1-prediction+1e-12))
			grad := weight * (prediction - target)
			floats.MulConst(lr.W, 1-lr.lr*lr.reg)
			floats.MulConstAddTo(x, -lr.lr*grad, lr.W)
			lr.B -= lr.lr * grad
		}
		fitTime := time.Since(fitStart)
		// evaluate
		if epoch%config.Verbose == 0 || epoch == lr.nEpochs {
			evalStart = time.Now()
			score := EvaluateClassification(lr, testSet)
			evalTime = time.Since(evalStart)
			log.Logger().Debug(fmt.Sprintf("fit logistic regression %v/%v", epoch, lr.nEpochs),
				append([]zap.Field{
					zap.String("fit_time", fitTime.String()),
					zap.String("eval_time", evalTime.String()),
					zap.Float32("loss", cost),
				}, score.ZapFields()...)...)
			// check NaN
			if math32.IsNaN(cost) || math32.IsNaN(score.Accuracy) {
				log.Logger().Warn("model diverged", zap.Float32("lr", lr.lr))
				break
			}
			if score.BetterThan(bestScore) {
				bestScore = score
				bestW = slices.Clone(lr.W)
				bestB = lr.B
			}
		}
		if config.Tracker != nil {
			config.Tracker.Update(epoch)
		}
	}
	// restore best weights
	lr.W = bestW
	lr.B = bestB
	log.Logger().Info("fit logistic regression complete", bestScore.ZapFields()...)
	if config.Tracker != nil {
		config.Tracker.Finish()
	}
	return bestScore
}

func sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}
