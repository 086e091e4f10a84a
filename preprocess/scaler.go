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
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/floats"
	"github.com/juju/errors"
)

// StandardScaler standardizes one numeric column to zero mean and unit
// variance using statistics learned from training values.
type StandardScaler struct {
	Mean   float32
	Std    float32
	fitted bool
}

// Fit learns mean and standard deviation from training values.
func (scaler *StandardScaler) Fit(values []float32) error {
	if scaler.fitted {
		return errors.New("scaler is already fitted")
	}
	if len(values) == 0 {
		return errors.New("cannot fit scaler on empty column")
	}
	scaler.Mean = floats.Mean(values)
	scaler.Std = floats.StdDev(values)
	if scaler.Std == 0 {
		// constant column, mapped to zero
		scaler.Std = 1
	}
	scaler.fitted = true
	return nil
}

// Transform standardizes a single value.
func (scaler *StandardScaler) Transform(value float32) (float32, error) {
	if !scaler.fitted {
		return 0, errors.New("scaler is not fitted")
	}
	return (value - scaler.Mean) / scaler.Std, nil
}
