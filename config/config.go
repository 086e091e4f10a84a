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
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for a prediction run.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Logistic LogisticConfig `mapstructure:"logistic"`
	Forest   ForestConfig   `mapstructure:"forest"`
	Predict  PredictConfig  `mapstructure:"predict"`
}

// DataConfig describes the input dataset and the train/test split.
type DataConfig struct {
	Path        string  `mapstructure:"path"`
	TestRatio   float32 `mapstructure:"test_ratio"`
	RandomState int64   `mapstructure:"random_state"`
}

// LogisticConfig holds hyper-parameters of the logistic regression model.
type LogisticConfig struct {
	Lr      float32 `mapstructure:"lr"`
	Reg     float32 `mapstructure:"reg"`
	NEpochs int     `mapstructure:"n_epochs"`
}

// ForestConfig holds hyper-parameters of the random forest model.
type ForestConfig struct {
	NTrees         int `mapstructure:"n_trees"`
	MaxDepth       int `mapstructure:"max_depth"`
	MinSamplesLeaf int `mapstructure:"min_samples_leaf"`
}

// PredictConfig selects the fitted pipeline used for new patients and lists
// the patients to score after evaluation.
type PredictConfig struct {
	Model    string    `mapstructure:"model"`
	Patients []Patient `mapstructure:"patients"`
}

// Patient is one hypothetical patient record. Field names follow the UCI
// heart disease dataset.
type Patient struct {
	Age      float32 `mapstructure:"age"`
	Sex      float32 `mapstructure:"sex"`
	Cp       float32 `mapstructure:"cp"`
	Trestbps float32 `mapstructure:"trestbps"`
	Chol     float32 `mapstructure:"chol"`
	Fbs      float32 `mapstructure:"fbs"`
	Restecg  float32 `mapstructure:"restecg"`
	Thalach  float32 `mapstructure:"thalach"`
	Exang    float32 `mapstructure:"exang"`
	Oldpeak  float32 `mapstructure:"oldpeak"`
	Slope    float32 `mapstructure:"slope"`
	Ca       float32 `mapstructure:"ca"`
	Thal     float32 `mapstructure:"thal"`
}

// Row returns the patient record in dataset column order.
func (p Patient) Row() []float32 {
	return []float32{p.Age, p.Sex, p.Cp, p.Trestbps, p.Chol, p.Fbs, p.Restecg,
		p.Thalach, p.Exang, p.Oldpeak, p.Slope, p.Ca, p.Thal}
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path:        "data/heart.csv",
			TestRatio:   0.2,
			RandomState: 42,
		},
		Logistic: LogisticConfig{
			Lr:      0.1,
			Reg:     1e-4,
			NEpochs: 200,
		},
		Forest: ForestConfig{
			NTrees:         100,
			MaxDepth:       0,
			MinSamplesLeaf: 1,
		},
		Predict: PredictConfig{
			Model: "forest",
			Patients: []Patient{
				{Age: 52, Sex: 1, Cp: 0, Trestbps: 125, Chol: 212, Fbs: 0, Restecg: 1,
					Thalach: 168, Exang: 0, Oldpeak: 1.0, Slope: 2, Ca: 2, Thal: 3},
				{Age: 58, Sex: 0, Cp: 2, Trestbps: 140, Chol: 211, Fbs: 1, Restecg: 0,
					Thalach: 165, Exang: 0, Oldpeak: 0.0, Slope: 2, Ca: 0, Thal: 2},
			},
		},
	}
}

func setDefault(v *viper.Viper) {
	defaults := GetDefaultConfig()
	v.SetDefault("data.path", defaults.Data.Path)
	v.SetDefault("data.test_ratio", defaults.Data.TestRatio)
	v.SetDefault("data.random_state", defaults.Data.RandomState)
	v.SetDefault("logistic.lr", defaults.Logistic.Lr)
	v.SetDefault("logistic.reg", defaults.Logistic.Reg)
	v.SetDefault("logistic.n_epochs", defaults.Logistic.NEpochs)
	v.SetDefault("forest.n_trees", defaults.Forest.NTrees)
	v.SetDefault("forest.max_depth", defaults.Forest.MaxDepth)
	v.SetDefault("forest.min_samples_leaf", defaults.Forest.MinSamplesLeaf)
	v.SetDefault("predict.model", defaults.Predict.Model)
}

// LoadConfig loads the configuration from a TOML file. An empty path returns
// the default configuration.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)
	if path != "" {
		v.SetConfigType("toml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if len(conf.Predict.Patients) == 0 {
		conf.Predict.Patients = GetDefaultConfig().Predict.Patients
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

// Validate checks the configuration.
func (config *Config) Validate() error {
	if config.Data.Path == "" {
		return errors.New("data.path is required")
	}
	if config.Data.TestRatio <= 0 || config.Data.TestRatio >= 1 {
		return errors.Errorf("data.test_ratio must be in (0,1), got %v", config.Data.TestRatio)
	}
	if config.Logistic.Lr <= 0 {
		return errors.Errorf("logistic.lr must be positive, got %v", config.Logistic.Lr)
	}
	if config.Logistic.NEpochs <= 0 {
		return errors.Errorf("logistic.n_epochs must be positive, got %v", config.Logistic.NEpochs)
	}
	if config.Forest.NTrees <= 0 {
		return errors.Errorf("forest.n_trees must be positive, got %v", config.Forest.NTrees)
	}
	if config.Forest.MinSamplesLeaf <= 0 {
		return errors.Errorf("forest.min_samples_leaf must be positive, got %v", config.Forest.MinSamplesLeaf)
	}
	switch config.Predict.Model {
	case "logistic", "forest":
	default:
		return errors.Errorf("predict.model must be `logistic` or `forest`, got %q", config.Predict.Model)
	}
	return nil
}
