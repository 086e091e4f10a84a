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
	"testing"

	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() dataset.Schema {
	return dataset.Schema{
		Features:    []string{"age", "cp"},
		Numerical:   []string{"age"},
		Categorical: []string{"cp"},
		Label:       "target",
	}
}

func testTable(t *testing.T) *dataset.Table {
	table, err := dataset.NewTable(testSchema(), [][]float32{
		{40, 0},
		{50, 1},
		{60, 3},
		{70, 1},
	}, []int{0, 0, 1, 1})
	require.NoError(t, err)
	return table
}

func TestStandardScaler(t *testing.T) {
	scaler := &StandardScaler{}
	require.NoError(t, scaler.Fit([]float32{40, 50, 60, 70}))
	assert.Equal(t, float32(55), scaler.Mean)

	// the transformed training column has zero mean and unit variance
	var sum, sumSquares float32
	for _, v := range []float32{40, 50, 60, 70} {
		scaled, err := scaler.Transform(v)
		require.NoError(t, err)
		sum += scaled
		sumSquares += scaled * scaled
	}
	assert.InDelta(t, 0, sum/4, 1e-5)
	assert.InDelta(t, 1, sumSquares/4, 1e-5)

	// fit happens exactly once
	assert.Error(t, scaler.Fit([]float32{1, 2, 3}))
}

func TestStandardScalerConstantColumn(t *testing.T) {
	scaler := &StandardScaler{}
	require.NoError(t, scaler.Fit([]float32{5, 5, 5}))
	scaled, err := scaler.Transform(5)
	require.NoError(t, err)
	assert.Zero(t, scaled)
}

func TestOneHotEncoder(t *testing.T) {
	encoder := &OneHotEncoder{}
	require.NoError(t, encoder.Fit([]float32{0, 1, 3, 1}))
	assert.Equal(t, []float32{0, 1, 3}, encoder.Categories)
	assert.Equal(t, 3, encoder.Width())

	out, err := encoder.Transform(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 0}, out)

	// a category unseen during training maps to the all-zero indicator
	out, err = encoder.Transform(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, out)

	assert.Error(t, encoder.Fit([]float32{1}))
}

func TestColumnTransformer(t *testing.T) {
	transformer := NewColumnTransformer(testSchema())
	require.NoError(t, transformer.Fit(testTable(t)))

	width, err := transformer.Width()
	require.NoError(t, err)
	assert.Equal(t, 4, width)
	names, err := transformer.FeatureNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "cp=0", "cp=1", "cp=3"}, names)

	rows, err := transformer.Transform(testTable(t))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	var sum float32
	for _, row := range rows {
		require.Len(t, row, 4)
		sum += row[0]
	}
	assert.InDelta(t, 0, sum, 1e-5)
	assert.Equal(t, []float32{0, 1, 0}, rows[1][1:])

	// refitting would leak evaluation data into the transform
	assert.Error(t, transformer.Fit(testTable(t)))
}

func TestColumnTransformerUnseenCategory(t *testing.T) {
	transformer := NewColumnTransformer(testSchema())
	require.NoError(t, transformer.Fit(testTable(t)))
	out, err := transformer.TransformRow([]float32{55, 2})
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, out[1:])
}

func TestColumnTransformerColumnMismatch(t *testing.T) {
	transformer := NewColumnTransformer(testSchema())
	require.NoError(t, transformer.Fit(testTable(t)))

	// wrong column order must fail loudly instead of misaligning silently
	swapped := dataset.Schema{
		Features:    []string{"cp", "age"},
		Numerical:   []string{"age"},
		Categorical: []string{"cp"},
		Label:       "target",
	}
	table, err := dataset.NewTable(swapped, [][]float32{{0, 40}}, []int{0})
	require.NoError(t, err)
	_, err = transformer.Transform(table)
	assert.ErrorContains(t, err, "age")

	_, err = transformer.TransformRow([]float32{55})
	assert.Error(t, err)
}

func TestColumnTransformerNotFitted(t *testing.T) {
	transformer := NewColumnTransformer(testSchema())
	_, err := transformer.Transform(testTable(t))
	assert.Error(t, err)
	_, err = transformer.TransformRow([]float32{55, 1})
	assert.Error(t, err)
}
