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

package dataset

import (
	"encoding/csv"
	"os"
	"slices"
	"strconv"

	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/base"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Schema is the fixed column layout of a tabular medical dataset. Features
// lists the feature columns in file order. The partition into numerical and
// categorical columns is domain knowledge, not inferred from values.
type Schema struct {
	Features    []string
	Numerical   []string
	Categorical []string
	Label       string
}

// HeartDiseaseSchema returns the schema of the UCI heart disease dataset:
// 13 feature columns and a binary `target` label.
func HeartDiseaseSchema() Schema {
	return Schema{
		Features: []string{
			"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
			"thalach", "exang", "oldpeak", "slope", "ca", "thal",
		},
		Numerical:   []string{"age", "trestbps", "chol", "thalach", "oldpeak"},
		Categorical: []string{"sex", "cp", "fbs", "restecg", "exang", "slope", "ca", "thal"},
		Label:       "target",
	}
}

// FeatureIndex returns the position of a feature column, or -1 if absent.
func (schema Schema) FeatureIndex(name string) int {
	return slices.Index(schema.Features, name)
}

// IsNumerical reports whether a feature column is continuous-valued.
func (schema Schema) IsNumerical(name string) bool {
	return slices.Contains(schema.Numerical, name)
}

// ValidateHeader checks that a header carries exactly the feature columns in
// schema order, optionally followed by the label column.
func (schema Schema) ValidateHeader(header []string, withLabel bool) error {
	expected := schema.Features
	if withLabel {
		expected = append(slices.Clone(schema.Features), schema.Label)
	}
	if len(header) != len(expected) {
		return errors.Errorf("expected %d columns, got %d", len(expected), len(header))
	}
	for i, name := range header {
		if name != expected[i] {
			return errors.Errorf("column %d: expected %q, got %q", i, expected[i], name)
		}
	}
	return nil
}

// Equal reports whether two schemas have identical columns.
func (schema Schema) Equal(other Schema) bool {
	return slices.Equal(schema.Features, other.Features) &&
		slices.Equal(schema.Numerical, other.Numerical) &&
		slices.Equal(schema.Categorical, other.Categorical) &&
		schema.Label == other.Label
}

// Table is an immutable, ordered collection of rows sharing one schema. A row
// holds one float32 per feature column plus a binary label.
type Table struct {
	Schema Schema
	rows   [][]float32
	labels []int
}

// NewTable creates a table from rows and labels. Rows must match the width of
// the schema and labels must be binary.
func NewTable(schema Schema, rows [][]float32, labels []int) (*Table, error) {
	if len(rows) != len(labels) {
		return nil, errors.Errorf("row count %d does not match label count %d", len(rows), len(labels))
	}
	for i, row := range rows {
		if len(row) != len(schema.Features) {
			return nil, errors.Errorf("row %d: expected %d values, got %d", i, len(schema.Features), len(row))
		}
		if labels[i] != 0 && labels[i] != 1 {
			return nil, errors.Errorf("row %d: label must be 0 or 1, got %d", i, labels[i])
		}
	}
	return &Table{Schema: schema, rows: rows, labels: labels}, nil
}

// NewRecords creates an unlabeled table of new records. The header must match
// the fitted schema exactly, in names, order and count.
func NewRecords(schema Schema, header []string, rows [][]float32) (*Table, error) {
	if err := schema.ValidateHeader(header, false); err != nil {
		return nil, errors.Trace(err)
	}
	for i, row := range rows {
		if len(row) != len(schema.Features) {
			return nil, errors.Errorf("row %d: expected %d values, got %d", i, len(schema.Features), len(row))
		}
	}
	return &Table{Schema: schema, rows: rows, labels: make([]int, len(rows))}, nil
}

// Count returns the number of rows.
func (t *Table) Count() int {
	return len(t.rows)
}

// Row returns the i-th feature row.
func (t *Table) Row(i int) []float32 {
	return t.rows[i]
}

// Label returns the i-th label.
func (t *Table) Label(i int) int {
	return t.labels[i]
}

// Labels returns all labels.
func (t *Table) Labels() []int {
	return t.labels
}

// Column returns all values of a feature column.
func (t *Table) Column(name string) ([]float32, error) {
	index := t.Schema.FeatureIndex(name)
	if index < 0 {
		return nil, errors.NotFoundf("column %q", name)
	}
	values := make([]float32, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[index]
	}
	return values, nil
}

// LabelDistribution returns the number of rows per label.
func (t *Table) LabelDistribution() map[int]int {
	return lo.CountValues(t.labels)
}

// SubSet returns a new table containing the selected rows in order.
func (t *Table) SubSet(indices []int) *Table {
	rows := make([][]float32, 0, len(indices))
	labels := make([]int, 0, len(indices))
	for _, i := range indices {
		rows = append(rows, t.rows[i])
		labels = append(labels, t.labels[i])
	}
	return &Table{Schema: t.Schema, rows: rows, labels: labels}
}

// LoadCSV reads a dataset from a comma separated file. The header must carry
// exactly the schema's feature columns followed by the label column. A missing
// file is unrecoverable for the caller since nothing downstream is meaningful
// without data.
func LoadCSV(path string, schema Schema) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("dataset file %s", path)
		}
		return nil, errors.Trace(err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("dataset file %s is empty", path)
	}
	if err = schema.ValidateHeader(records[0], true); err != nil {
		return nil, errors.Annotatef(err, "invalid header in %s", path)
	}
	rows := make([][]float32, 0, len(records)-1)
	labels := make([]int, 0, len(records)-1)
	for lineno, record := range records[1:] {
		row := make([]float32, len(schema.Features))
		for i, cell := range record[:len(schema.Features)] {
			if row[i], err = base.ParseFloat[float32](cell); err != nil {
				return nil, errors.Errorf("line %d: invalid value %q in column %q",
					lineno+2, cell, schema.Features[i])
			}
		}
		label, err := strconv.Atoi(record[len(schema.Features)])
		if err != nil || (label != 0 && label != 1) {
			return nil, errors.Errorf("line %d: label must be 0 or 1, got %q",
				lineno+2, record[len(schema.Features)])
		}
		rows = append(rows, row)
		labels = append(labels, label)
	}
	return &Table{Schema: schema, rows: rows, labels: labels}, nil
}
