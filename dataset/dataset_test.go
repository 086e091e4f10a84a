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
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvContent = `age,sex,cp,trestbps,chol,fbs,restecg,thalach,exang,oldpeak,slope,ca,thal,target
63,1,3,145,233,1,0,150,0,2.3,0,0,1,1
37,1,2,130,250,0,1,187,0,3.5,0,0,2,1
41,0,1,130,204,0,0,172,0,1.4,2,0,2,1
56,1,1,120,236,0,1,178,0,0.8,2,0,2,0
57,0,0,120,354,0,1,163,1,0.6,2,0,2,0
`

func writeTempCSV(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "heart.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	schema := HeartDiseaseSchema()
	table, err := LoadCSV(writeTempCSV(t, csvContent), schema)
	require.NoError(t, err)
	assert.Equal(t, 5, table.Count())
	assert.Equal(t, []float32{63, 1, 3, 145, 233, 1, 0, 150, 0, 2.3, 0, 0, 1}, table.Row(0))
	assert.Equal(t, 1, table.Label(0))
	assert.Equal(t, 0, table.Label(4))
	assert.Equal(t, map[int]int{0: 2, 1: 3}, table.LabelDistribution())
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), HeartDiseaseSchema())
	assert.True(t, errors.Is(err, errors.NotFound))
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestLoadCSVInvalidHeader(t *testing.T) {
	content := "age,sex,cp,trestbps,chol,fbs,restecg,thalach,exang,oldpeak,slope,ca,thalx,target\n"
	_, err := LoadCSV(writeTempCSV(t, content), HeartDiseaseSchema())
	assert.ErrorContains(t, err, "thal")
}

func TestLoadCSVInvalidLabel(t *testing.T) {
	content := "age,sex,cp,trestbps,chol,fbs,restecg,thalach,exang,oldpeak,slope,ca,thal,target\n" +
		"63,1,3,145,233,1,0,150,0,2.3,0,0,1,2\n"
	_, err := LoadCSV(writeTempCSV(t, content), HeartDiseaseSchema())
	assert.ErrorContains(t, err, "label")
}

func TestColumn(t *testing.T) {
	table, err := LoadCSV(writeTempCSV(t, csvContent), HeartDiseaseSchema())
	require.NoError(t, err)
	ages, err := table.Column("age")
	require.NoError(t, err)
	assert.Equal(t, []float32{63, 37, 41, 56, 57}, ages)
	_, err = table.Column("bmi")
	assert.Error(t, err)
}

func TestNewRecords(t *testing.T) {
	schema := HeartDiseaseSchema()
	rows := [][]float32{
		{52, 1, 0, 125, 212, 0, 1, 168, 0, 1.0, 2, 2, 3},
		{58, 0, 2, 140, 211, 1, 0, 165, 0, 0.0, 2, 0, 2},
	}
	records, err := NewRecords(schema, schema.Features, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, records.Count())

	// wrong column order must fail fast
	header := []string{
		"sex", "age", "cp", "trestbps", "chol", "fbs", "restecg",
		"thalach", "exang", "oldpeak", "slope", "ca", "thal",
	}
	_, err = NewRecords(schema, header, rows)
	assert.ErrorContains(t, err, "age")

	// wrong column count must fail fast
	_, err = NewRecords(schema, schema.Features[:12], rows)
	assert.Error(t, err)
}

func TestValidateHeader(t *testing.T) {
	schema := HeartDiseaseSchema()
	header := append([]string{}, schema.Features...)
	header = append(header, schema.Label)
	assert.NoError(t, schema.ValidateHeader(header, true))
	assert.Error(t, schema.ValidateHeader(header, false))
	assert.NoError(t, schema.ValidateHeader(schema.Features, false))
}
