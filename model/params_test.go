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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams(t *testing.T) {
	p := Params{
		Lr:          0.05,
		NEpochs:     100,
		RandomState: 42,
	}
	assert.Equal(t, float32(0.05), p.GetFloat32(Lr, 0.1))
	assert.Equal(t, 100, p.GetInt(NEpochs, 200))
	assert.Equal(t, int64(42), p.GetInt64(RandomState, 0))
	// defaults for missing names
	assert.Equal(t, float32(1e-4), p.GetFloat32(Reg, 1e-4))
	assert.Equal(t, 100, p.GetInt(NTrees, 100))
	// defaults for type mismatch
	assert.Equal(t, 10, Params{NEpochs: "many"}.GetInt(NEpochs, 10))
	// numeric conversions
	assert.Equal(t, float32(1), Params{Lr: 1}.GetFloat32(Lr, 0))
	assert.Equal(t, int64(7), Params{RandomState: 7}.GetInt64(RandomState, 0))
}

func TestParamsCopyOverwrite(t *testing.T) {
	p := Params{Lr: float32(0.1), NEpochs: 100}
	q := p.Copy()
	q[Lr] = float32(0.2)
	assert.Equal(t, float32(0.1), p.GetFloat32(Lr, 0))
	merged := p.Overwrite(Params{NEpochs: 50, NTrees: 10})
	assert.Equal(t, float32(0.1), merged.GetFloat32(Lr, 0))
	assert.Equal(t, 50, merged.GetInt(NEpochs, 0))
	assert.Equal(t, 10, merged.GetInt(NTrees, 0))
	assert.Equal(t, 100, p.GetInt(NEpochs, 0))
}
