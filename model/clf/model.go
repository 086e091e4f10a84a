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

	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/model"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Samples is a preprocessed design matrix with binary targets. Rows of X are
// the output of a fitted column transformer.
type Samples struct {
	X [][]float32
	Y []int
}

// NewSamples creates samples from a design matrix and targets.
func NewSamples(x [][]float32, y []int) (*Samples, error) {
	if len(x) != len(y) {
		return nil, errors.Errorf("sample count %d does not match target count %d", len(x), len(y))
	}
	for i, target := range y {
		if target != 0 && target != 1 {
			return nil, errors.Errorf("sample %d: target must be 0 or 1, got %d", i, target)
		}
	}
	return &Samples{X: x, Y: y}, nil
}

// Count returns the number of samples.
func (s *Samples) Count() int {
	if s == nil {
		return 0
	}
	return len(s.Y)
}

// CountPositive returns the number of positive samples.
func (s *Samples) CountPositive() int {
	return lo.Count(s.Y, 1)
}

// CountNegative returns the number of negative samples.
func (s *Samples) CountNegative() int {
	return lo.Count(s.Y, 0)
}

// Dimension returns the width of the design matrix.
func (s *Samples) Dimension() int {
	if s.Count() == 0 {
		return 0
	}
	return len(s.X[0])
}

// BalancedWeights returns per-class sample weights inversely proportional to
// class frequency: n/(2*n_c). They prevent the majority class from dominating
// the loss.
func (s *Samples) BalancedWeights() [2]float32 {
	var weights [2]float32
	counts := [2]int{s.CountNegative(), s.CountPositive()}
	for c, count := range counts {
		if count > 0 {
			weights[c] = float32(s.Count()) / (2 * float32(count))
		}
	}
	return weights
}

// Score is the result of evaluating a classifier on a held-out set.
type Score struct {
	Accuracy  float32
	Precision float32
	Recall    float32
	F1        float32
	AUC       float32
}

func (score Score) ZapFields() []zap.Field {
	return []zap.Field{
		zap.Float32("Accuracy", score.Accuracy),
		zap.Float32("Precision", score.Precision),
		zap.Float32("Recall", score.Recall),
		zap.Float32("F1", score.F1),
		zap.Float32("AUC", score.AUC),
	}
}

func (score Score) BetterThan(s Score) bool {
	return score.Accuracy > s.Accuracy
}

// Predictor predicts binary classes for preprocessed samples.
type Predictor interface {
	// PredictProba returns the positive-class probability of one sample.
	PredictProba(x []float32) float32
	// Predict returns the class label of one sample.
	Predict(x []float32) int
}

// Classifier is a binary classifier over preprocessed samples.
type Classifier interface {
	model.Model
	Predictor
	// Fit the classifier on the training samples. The test samples are only
	// used for evaluation during fitting and never influence the weights.
	Fit(ctx context.Context, trainSet, testSet *Samples, config *model.FitConfig) Score
}
