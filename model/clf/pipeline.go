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

	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/dataset"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/model"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/preprocess"
	"github.com/juju/errors"
)

// Variant selects one of the two fitted pipelines.
type Variant string

const (
	Logistic Variant = "logistic"
	Forest   Variant = "forest"
)

// Prediction is the output for one input row.
type Prediction struct {
	Label       int
	Probability float32
}

// Pipeline binds a column transformer and a classifier together so that
// every prediction applies the exact transformation the classifier was
// trained on.
type Pipeline struct {
	Transformer *preprocess.ColumnTransformer
	Classifier  Classifier
	fitted      bool
}

// NewPipeline creates an unfitted pipeline.
func NewPipeline(schema dataset.Schema, classifier Classifier) *Pipeline {
	return &Pipeline{
		Transformer: preprocess.NewColumnTransformer(schema),
		Classifier:  classifier,
	}
}

// Fit fits the transformer on the training table, then the classifier on the
// transformed training samples. The test table is transformed with the same
// fitted transformer and only used for evaluation.
func (p *Pipeline) Fit(ctx context.Context, train, test *dataset.Table, config *model.FitConfig) (Score, error) {
	if p.fitted {
		return Score{}, errors.New("pipeline is already fitted")
	}
	if err := p.Transformer.Fit(train); err != nil {
		return Score{}, errors.Trace(err)
	}
	trainSet, err := p.transform(train)
	if err != nil {
		return Score{}, errors.Trace(err)
	}
	testSet, err := p.transform(test)
	if err != nil {
		return Score{}, errors.Trace(err)
	}
	p.fitted = true
	return p.Classifier.Fit(ctx, trainSet, testSet, config), nil
}

// Evaluate builds a full report of the pipeline on a labeled table.
func (p *Pipeline) Evaluate(t *dataset.Table) (Report, error) {
	if !p.fitted {
		return Report{}, errors.New("pipeline is not fitted")
	}
	testSet, err := p.transform(t)
	if err != nil {
		return Report{}, errors.Trace(err)
	}
	return NewReport(p.Classifier, testSet)
}

// Predict scores new records. The table must carry exactly the columns the
// pipeline was trained on; a mismatch is an error rather than a silently
// misaligned prediction.
func (p *Pipeline) Predict(records *dataset.Table) ([]Prediction, error) {
	if !p.fitted {
		return nil, errors.New("pipeline is not fitted")
	}
	rows, err := p.Transformer.Transform(records)
	if err != nil {
		return nil, errors.Trace(err)
	}
	predictions := make([]Prediction, len(rows))
	for i, row := range rows {
		predictions[i] = Prediction{
			Label:       p.Classifier.Predict(row),
			Probability: p.Classifier.PredictProba(row),
		}
	}
	return predictions, nil
}

func (p *Pipeline) transform(t *dataset.Table) (*Samples, error) {
	rows, err := p.Transformer.Transform(t)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return NewSamples(rows, t.Labels())
}
