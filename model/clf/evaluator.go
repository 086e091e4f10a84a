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
	"fmt"
	"io"
	"sort"

	"github.com/juju/errors"
	"modernc.org/sortutil"
)

// EvaluateClassification evaluates a classifier on a held-out set. It never
// mutates the classifier.
func EvaluateClassification(estimator Predictor, testSet *Samples) Score {
	if testSet.Count() == 0 {
		return Score{}
	}
	var posPrediction, negPrediction []float32
	for i := 0; i < testSet.Count(); i++ {
		prediction := estimator.PredictProba(testSet.X[i])
		if testSet.Y[i] == 1 {
			posPrediction = append(posPrediction, prediction)
		} else {
			negPrediction = append(negPrediction, prediction)
		}
	}
	precision := Precision(posPrediction, negPrediction)
	recall := Recall(posPrediction, negPrediction)
	return Score{
		Accuracy:  Accuracy(posPrediction, negPrediction),
		Precision: precision,
		Recall:    recall,
		F1:        f1(precision, recall),
		AUC:       AUC(posPrediction, negPrediction),
	}
}

// Precision of the positive class at the 0.5 threshold.
func Precision(posPrediction, negPrediction []float32) float32 {
	var tp, fp float32
	for _, p := range posPrediction {
		if p >= 0.5 { // true positive
			tp++
		}
	}
	for _, p := range negPrediction {
		if p >= 0.5 { // false positive
			fp++
		}
	}
	if tp+fp == 0 {
		return 0
	}
	return tp / (tp + fp)
}

// Recall of the positive class at the 0.5 threshold.
func Recall(posPrediction, _ []float32) float32 {
	var tp, fn float32
	for _, p := range posPrediction {
		if p >= 0.5 { // true positive
			tp++
		} else { // false negative
			fn++
		}
	}
	if tp+fn == 0 {
		return 0
	}
	return tp / (tp + fn)
}

// Accuracy at the 0.5 threshold.
func Accuracy(posPrediction, negPrediction []float32) float32 {
	var correct float32
	for _, p := range posPrediction {
		if p >= 0.5 {
			correct++
		}
	}
	for _, p := range negPrediction {
		if p < 0.5 {
			correct++
		}
	}
	if len(posPrediction)+len(negPrediction) == 0 {
		return 0
	}
	return correct / float32(len(posPrediction)+len(negPrediction))
}

// AUC is the probability that a positive sample scores higher than a negative
// sample.
func AUC(posPrediction, negPrediction []float32) float32 {
	sort.Sort(sortutil.Float32Slice(posPrediction))
	sort.Sort(sortutil.Float32Slice(negPrediction))
	var sum float32
	var nPos int
	for pPos := range posPrediction {
		// find the negative sample with the greatest prediction less than current positive sample
		for nPos < len(negPrediction) && negPrediction[nPos] < posPrediction[pPos] {
			nPos++
		}
		// add the number of negative samples have less prediction than current positive sample
		sum += float32(nPos)
	}
	if len(posPrediction)*len(negPrediction) == 0 {
		return 0
	}
	return sum / float32(len(posPrediction)*len(negPrediction))
}

func f1(precision, recall float32) float32 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// ConfusionMatrix counts predictions at the 0.5 threshold. Rows are true
// classes, columns predicted classes.
func ConfusionMatrix(estimator Predictor, testSet *Samples) [2][2]int {
	var matrix [2][2]int
	for i := 0; i < testSet.Count(); i++ {
		matrix[testSet.Y[i]][estimator.Predict(testSet.X[i])]++
	}
	return matrix
}

// ClassMetrics are the one-versus-rest metrics of a single class.
type ClassMetrics struct {
	Precision float32
	Recall    float32
	F1        float32
	Support   int
}

// Report is a full evaluation of one classifier on a held-out set: overall
// accuracy, the confusion matrix and per-class metrics.
type Report struct {
	Accuracy  float32
	AUC       float32
	Confusion [2][2]int
	Classes   [2]ClassMetrics
}

// NewReport evaluates a classifier into a report. Pure: the model is never
// mutated.
func NewReport(estimator Predictor, testSet *Samples) (Report, error) {
	if testSet.Count() == 0 {
		return Report{}, errors.New("cannot evaluate on an empty set")
	}
	score := EvaluateClassification(estimator, testSet)
	report := Report{
		Accuracy:  score.Accuracy,
		AUC:       score.AUC,
		Confusion: ConfusionMatrix(estimator, testSet),
	}
	for c := 0; c < 2; c++ {
		tp := float32(report.Confusion[c][c])
		predicted := float32(report.Confusion[0][c] + report.Confusion[1][c])
		actual := float32(report.Confusion[c][0] + report.Confusion[c][1])
		metrics := ClassMetrics{Support: int(actual)}
		if predicted > 0 {
			metrics.Precision = tp / predicted
		}
		if actual > 0 {
			metrics.Recall = tp / actual
		}
		metrics.F1 = f1(metrics.Precision, metrics.Recall)
		report.Classes[c] = metrics
	}
	return report, nil
}

// Write renders the report as text tables.
func (report Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "accuracy: %.4f\tauc: %.4f\n", report.Accuracy, report.AUC); err != nil {
		return errors.Trace(err)
	}
	if err := writeConfusionMatrix(w, report.Confusion); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(writeClassMetrics(w, report.Classes))
}
