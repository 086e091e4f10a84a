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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefault(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), conf)
	assert.Equal(t, "data/heart.csv", conf.Data.Path)
	assert.Equal(t, float32(0.2), conf.Data.TestRatio)
	assert.Equal(t, int64(42), conf.Data.RandomState)
	assert.Equal(t, 200, conf.Logistic.NEpochs)
	assert.Equal(t, 100, conf.Forest.NTrees)
	assert.Equal(t, "forest", conf.Predict.Model)
	assert.Len(t, conf.Predict.Patients, 2)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardio.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[data]
path = "testdata/heart.csv"
test_ratio = 0.3

[logistic]
lr = 0.05

[forest]
n_trees = 10

[predict]
model = "logistic"

[[predict.patients]]
age = 44
sex = 1
cp = 2
trestbps = 130
chol = 233
fbs = 0
restecg = 1
thalach = 179
exang = 0
oldpeak = 0.4
slope = 2
ca = 0
thal = 2
`), 0o644))
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "testdata/heart.csv", conf.Data.Path)
	assert.Equal(t, float32(0.3), conf.Data.TestRatio)
	// unset keys keep their defaults
	assert.Equal(t, int64(42), conf.Data.RandomState)
	assert.Equal(t, float32(0.05), conf.Logistic.Lr)
	assert.Equal(t, 200, conf.Logistic.NEpochs)
	assert.Equal(t, 10, conf.Forest.NTrees)
	assert.Equal(t, "logistic", conf.Predict.Model)
	require.Len(t, conf.Predict.Patients, 1)
	assert.Equal(t, float32(44), conf.Predict.Patients[0].Age)
	assert.Equal(t, []float32{44, 1, 2, 130, 233, 0, 1, 179, 0, 0.4, 2, 0, 2},
		conf.Predict.Patients[0].Row())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(conf *Config)
	}{
		{"empty_path", func(conf *Config) { conf.Data.Path = "" }},
		{"bad_test_ratio", func(conf *Config) { conf.Data.TestRatio = 1 }},
		{"bad_lr", func(conf *Config) { conf.Logistic.Lr = 0 }},
		{"bad_n_epochs", func(conf *Config) { conf.Logistic.NEpochs = 0 }},
		{"bad_n_trees", func(conf *Config) { conf.Forest.NTrees = -1 }},
		{"bad_min_samples_leaf", func(conf *Config) { conf.Forest.MinSamplesLeaf = 0 }},
		{"bad_model", func(conf *Config) { conf.Predict.Model = "svm" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			conf := GetDefaultConfig()
			assert.NoError(t, conf.Validate())
			c.mutate(conf)
			assert.Error(t, conf.Validate())
		})
	}
}
