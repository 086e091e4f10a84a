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
	"sort"

	"github.com/juju/errors"
	"modernc.org/sortutil"
)

// OneHotEncoder expands one categorical column into indicator columns, one
// per category observed during training. A value unseen at fit time maps to
// the all-zero indicator instead of raising an error, which keeps prediction
// robust to unseen inputs.
type OneHotEncoder struct {
	Categories []float32
	index      map[float32]int
	fitted     bool
}

// Fit learns the category vocabulary from training values. Categories are
// kept in ascending order so that the indicator layout is deterministic.
func (encoder *OneHotEncoder) Fit(values []float32) error {
	if encoder.fitted {
		return errors.New("encoder is already fitted")
	}
	if len(values) == 0 {
		return errors.New("cannot fit encoder on empty column")
	}
	seen := make(map[float32]struct{})
	for _, v := range values {
		seen[v] = struct{}{}
	}
	encoder.Categories = make([]float32, 0, len(seen))
	for v := range seen {
		encoder.Categories = append(encoder.Categories, v)
	}
	sort.Sort(sortutil.Float32Slice(encoder.Categories))
	encoder.index = make(map[float32]int, len(encoder.Categories))
	for i, v := range encoder.Categories {
		encoder.index[v] = i
	}
	encoder.fitted = true
	return nil
}

// Width returns the number of indicator columns.
func (encoder *OneHotEncoder) Width() int {
	return len(encoder.Categories)
}

// Transform appends the indicator expansion of a value to dst.
func (encoder *OneHotEncoder) Transform(dst []float32, value float32) ([]float32, error) {
	if !encoder.fitted {
		return nil, errors.New("encoder is not fitted")
	}
	offset := len(dst)
	dst = append(dst, make([]float32, encoder.Width())...)
	if i, ok := encoder.index[value]; ok {
		dst[offset+i] = 1
	}
	return dst, nil
}
