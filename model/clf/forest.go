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
	"slices"
	"sync/atomic"
	"time"

	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/base"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/base/log"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/common/parallel"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/model"
	"github.com/chewxy/math32"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// RandomForest is an ensemble of decision trees, each fitted on a bootstrap
// sample of the training set with a random feature subset considered at every
// split. Impurity is weighted inversely to class frequency. Trees are fitted
// in parallel; each tree derives its own seed from the model seed, so the
// forest is deterministic regardless of the number of jobs.
type RandomForest struct {
	model.BaseModel
	Trees []*decisionTree
	// Hyper-parameters
	nTrees         int
	maxDepth       int
	minSamplesLeaf int
	maxFeatures    int
}

// NewRandomForest creates a random forest classifier.
func NewRandomForest(params model.Params) *RandomForest {
	forest := new(RandomForest)
	forest.SetParams(params)
	return forest
}

// SetParams sets hyper-parameters.
func (forest *RandomForest) SetParams(params model.Params) {
	forest.BaseModel.SetParams(params)
	forest.nTrees = params.GetInt(model.NTrees, 100)
	forest.maxDepth = params.GetInt(model.MaxDepth, 0)
	forest.minSamplesLeaf = params.GetInt(model.MinSamplesLeaf, 1)
	forest.maxFeatures = params.GetInt(model.MaxFeatures, 0)
}

// Clear model weights.
func (forest *RandomForest) Clear() {
	forest.Trees = nil
}

// PredictProba averages the leaf probabilities of all trees.
func (forest *RandomForest) PredictProba(x []float32) float32 {
	if len(forest.Trees) == 0 {
		return 0
	}
	var sum float32
	for _, tree := range forest.Trees {
		sum += tree.predictProba(x)
	}
	return sum / float32(len(forest.Trees))
}

// Predict returns the class label.
func (forest *RandomForest) Predict(x []float32) int {
	if forest.PredictProba(x) >= 0.5 {
		return 1
	}
	return 0
}

// Fit the random forest on training samples.
func (forest *RandomForest) Fit(ctx context.Context, trainSet, testSet *Samples, config *model.FitConfig) Score {
	config = config.LoadDefaultIfNil()
	log.Logger().Info("fit random forest",
		zap.Int("train_size", trainSet.Count()),
		zap.Int("train_positive_count", trainSet.CountPositive()),
		zap.Int("train_negative_count", trainSet.CountNegative()),
		zap.Int("test_size", testSet.Count()),
		zap.Any("params", forest.GetParams()))
	if config.Tracker != nil {
		config.Tracker.Start(forest.nTrees)
	}
	maxFeatures := forest.maxFeatures
	if maxFeatures <= 0 {
		maxFeatures = int(math32.Round(math32.Sqrt(float32(trainSet.Dimension()))))
	}
	maxFeatures = min(max(maxFeatures, 1), trainSet.Dimension())
	weights := trainSet.BalancedWeights()
	builder := &treeBuilder{
		samples:        trainSet,
		weights:        weights,
		maxDepth:       forest.maxDepth,
		minSamplesLeaf: forest.minSamplesLeaf,
		maxFeatures:    maxFeatures,
	}

	fitStart := time.Now()
	forest.Trees = make([]*decisionTree, forest.nTrees)
	var finished atomic.Int64
	if err := parallel.Parallel(ctx, forest.nTrees, config.Jobs, func(_, treeId int) error {
		rng := base.NewRandomGenerator(forest.RandomState() + int64(treeId))
		// bootstrap sample
		indices := make([]int, trainSet.Count())
		for i := range indices {
			indices[i] = rng.Intn(trainSet.Count())
		}
		forest.Trees[treeId] = &decisionTree{root: builder.build(indices, 0, rng)}
		if config.Tracker != nil {
			config.Tracker.Update(int(finished.Add(1)))
		}
		return nil
	}); err != nil {
		log.Logger().Warn("fit canceled", zap.Error(err))
		// keep only the trees that finished
		forest.Trees = lo.Filter(forest.Trees, func(tree *decisionTree, _ int) bool {
			return tree != nil
		})
	}
	fitTime := time.Since(fitStart)

	evalStart := time.Now()
	score := EvaluateClassification(forest, testSet)
	evalTime := time.Since(evalStart)
	log.Logger().Info("fit random forest complete",
		append([]zap.Field{
			zap.String("fit_time", fitTime.String()),
			zap.String("eval_time", evalTime.String()),
		}, score.ZapFields()...)...)
	if config.Tracker != nil {
		config.Tracker.Finish()
	}
	return score
}

type decisionTree struct {
	root *treeNode
}

func (tree *decisionTree) predictProba(x []float32) float32 {
	node := tree.root
	for node.left != nil {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.proba
}

// treeNode is either an internal split (left and right non-nil) or a leaf
// carrying the weighted positive-class probability.
type treeNode struct {
	feature   int
	threshold float32
	left      *treeNode
	right     *treeNode
	proba     float32
}

type treeBuilder struct {
	samples        *Samples
	weights        [2]float32
	maxDepth       int
	minSamplesLeaf int
	maxFeatures    int
}

func (b *treeBuilder) leaf(indices []int) *treeNode {
	var total, positive float32
	for _, i := range indices {
		w := b.weights[b.samples.Y[i]]
		total += w
		if b.samples.Y[i] == 1 {
			positive += w
		}
	}
	if total == 0 {
		return &treeNode{proba: 0}
	}
	return &treeNode{proba: positive / total}
}

func (b *treeBuilder) build(indices []int, depth int, rng base.RandomGenerator) *treeNode {
	if len(indices) < 2*b.minSamplesLeaf || (b.maxDepth > 0 && depth >= b.maxDepth) || b.pure(indices) {
		return b.leaf(indices)
	}
	feature, threshold, ok := b.bestSplit(indices, rng)
	if !ok {
		return b.leaf(indices)
	}
	var left, right []int
	for _, i := range indices {
		if b.samples.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      b.build(left, depth+1, rng),
		right:     b.build(right, depth+1, rng),
	}
}

func (b *treeBuilder) pure(indices []int) bool {
	for _, i := range indices[1:] {
		if b.samples.Y[i] != b.samples.Y[indices[0]] {
			return false
		}
	}
	return true
}

// bestSplit searches a random feature subset for the threshold with the
// lowest weighted Gini impurity.
func (b *treeBuilder) bestSplit(indices []int, rng base.RandomGenerator) (feature int, threshold float32, ok bool) {
	bestImpurity := float32(math32.MaxFloat32)
	features := rng.Sample(0, b.samples.Dimension(), b.maxFeatures)
	sorted := slices.Clone(indices)
	for _, f := range features {
		slices.SortFunc(sorted, func(i, j int) int {
			if b.samples.X[i][f] < b.samples.X[j][f] {
				return -1
			} else if b.samples.X[i][f] > b.samples.X[j][f] {
				return 1
			}
			return 0
		})
		// weighted class counts on both sides of the candidate split
		var leftCounts, rightCounts [2]float32
		for _, i := range sorted {
			rightCounts[b.samples.Y[i]] += b.weights[b.samples.Y[i]]
		}
		for pos := 0; pos < len(sorted)-1; pos++ {
			i := sorted[pos]
			leftCounts[b.samples.Y[i]] += b.weights[b.samples.Y[i]]
			rightCounts[b.samples.Y[i]] -= b.weights[b.samples.Y[i]]
			if pos+1 < b.minSamplesLeaf || len(sorted)-pos-1 < b.minSamplesLeaf {
				continue
			}
			value, next := b.samples.X[i][f], b.samples.X[sorted[pos+1]][f]
			if value == next {
				continue
			}
			impurity := weightedGini(leftCounts) + weightedGini(rightCounts)
			if impurity < bestImpurity {
				bestImpurity = impurity
				feature = f
				threshold = (value + next) / 2
				ok = true
			}
		}
	}
	return
}

// weightedGini returns the Gini impurity of one side, weighted by the side's
// total weight so that two sides can be summed directly.
func weightedGini(counts [2]float32) float32 {
	total := counts[0] + counts[1]
	if total == 0 {
		return 0
	}
	p0 := counts[0] / total
	p1 := counts[1] / total
	return total * (1 - p0*p0 - p1*p1)
}
