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

package preprocess

import (
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/base"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/dataset"
	"github.com/juju/errors"
)

// ColumnTransformer combines per-column transforms into one row transform:
// numeric columns are standardized, categorical columns are expanded into
// indicator columns. Fit happens exactly once, on the training partition;
// every subsequent call only transforms.
type ColumnTransformer struct {
	schema   dataset.Schema
	scalers  map[string]*StandardScaler
	encoders map[string]*OneHotEncoder
	fitted   bool
}

// NewColumnTransformer creates a column transformer for a schema.
func NewColumnTransformer(schema dataset.Schema) *ColumnTransformer {
	return &ColumnTransformer{
		schema:   schema,
		scalers:  make(map[string]*StandardScaler),
		encoders: make(map[string]*OneHotEncoder),
	}
}

// Schema returns the schema the transformer was created for.
func (ct *ColumnTransformer) Schema() dataset.Schema {
	return ct.schema
}

// Fit learns scaling statistics and category vocabularies from the training
// table. Refitting is rejected: it would leak information from evaluation
// data and invalidate the held-out metrics.
func (ct *ColumnTransformer) Fit(train *dataset.Table) error {
	if ct.fitted {
		return errors.New("column transformer is already fitted")
	}
	if !train.Schema.Equal(ct.schema) {
		return errors.New("training table schema does not match transformer schema")
	}
	for _, name := range ct.schema.Features {
		values, err := train.Column(name)
		if err != nil {
			return errors.Trace(err)
		}
		if ct.schema.IsNumerical(name) {
			scaler := &StandardScaler{}
			if err = scaler.Fit(values); err != nil {
				return errors.Annotatef(err, "column %q", name)
			}
			ct.scalers[name] = scaler
		} else {
			encoder := &OneHotEncoder{}
			if err = encoder.Fit(values); err != nil {
				return errors.Annotatef(err, "column %q", name)
			}
			ct.encoders[name] = encoder
		}
	}
	ct.fitted = true
	return nil
}

// Width returns the number of output features.
func (ct *ColumnTransformer) Width() (int, error) {
	if !ct.fitted {
		return 0, errors.New("column transformer is not fitted")
	}
	width := 0
	for _, name := range ct.schema.Features {
		if ct.schema.IsNumerical(name) {
			width++
		} else {
			width += ct.encoders[name].Width()
		}
	}
	return width, nil
}

// FeatureNames returns the names of the output features. Indicator columns
// are named column=category.
func (ct *ColumnTransformer) FeatureNames() ([]string, error) {
	if !ct.fitted {
		return nil, errors.New("column transformer is not fitted")
	}
	var names []string
	for _, name := range ct.schema.Features {
		if ct.schema.IsNumerical(name) {
			names = append(names, name)
		} else {
			for _, category := range ct.encoders[name].Categories {
				names = append(names, name+"="+base.FormatFloat(category))
			}
		}
	}
	return names, nil
}

// TransformRow transforms one feature row ordered by the schema.
func (ct *ColumnTransformer) TransformRow(row []float32) ([]float32, error) {
	if !ct.fitted {
		return nil, errors.New("column transformer is not fitted")
	}
	if len(row) != len(ct.schema.Features) {
		return nil, errors.Errorf("expected %d values, got %d", len(ct.schema.Features), len(row))
	}
	var err error
	out := make([]float32, 0, len(row))
	for i, name := range ct.schema.Features {
		if scaler, ok := ct.scalers[name]; ok {
			var v float32
			if v, err = scaler.Transform(row[i]); err != nil {
				return nil, errors.Trace(err)
			}
			out = append(out, v)
		} else if out, err = ct.encoders[name].Transform(out, row[i]); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return out, nil
}

// Transform transforms a whole table. The table's columns must match the
// fitted schema exactly; a silent misalignment would make every downstream
// prediction wrong.
func (ct *ColumnTransformer) Transform(t *dataset.Table) ([][]float32, error) {
	if !ct.fitted {
		return nil, errors.New("column transformer is not fitted")
	}
	if err := ct.schema.ValidateHeader(t.Schema.Features, false); err != nil {
		return nil, errors.Annotatef(err, "table does not match fitted columns")
	}
	out := make([][]float32, t.Count())
	for i := 0; i < t.Count(); i++ {
		row, err := ct.TransformRow(t.Row(i))
		if err != nil {
			return nil, errors.Trace(err)
		}
		out[i] = row
	}
	return out, nil
}
