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
	"sort"

	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/base"
	"github.com/chewxy/math32"
	"github.com/juju/errors"
)

// Split partitions the table into a training set and a test set. The split is
// stratified: the label proportions of both partitions match the source within
// sampling granularity. The two partitions are disjoint and their union is the
// table. Deterministic for a fixed seed.
func (t *Table) Split(testRatio float32, seed int64) (train, test *Table, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, errors.Errorf("test ratio must be in (0,1), got %v", testRatio)
	}
	if t.Count() == 0 {
		return nil, nil, errors.New("cannot split an empty table")
	}
	// group row indices per label
	byLabel := make(map[int][]int)
	for i, label := range t.labels {
		byLabel[label] = append(byLabel[label], i)
	}
	labels := make([]int, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	// apportion the test set across labels proportionally, assigning the
	// rounding remainder to the labels with the largest fractional share
	testSize := int(math32.Ceil(float32(t.Count()) * testRatio))
	type share struct {
		label    int
		fraction float32
	}
	quota := make(map[int]int, len(labels))
	shares := make([]share, 0, len(labels))
	remainder := testSize
	for _, label := range labels {
		exact := float32(testSize) * float32(len(byLabel[label])) / float32(t.Count())
		quota[label] = int(exact)
		remainder -= quota[label]
		shares = append(shares, share{label: label, fraction: exact - math32.Floor(exact)})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].fraction > shares[j].fraction
	})
	for i := 0; i < remainder; i++ {
		quota[shares[i%len(shares)].label]++
	}
	// sample test rows per label
	rng := base.NewRandomGenerator(seed)
	trainIndices := make([]int, 0, t.Count()-testSize)
	testIndices := make([]int, 0, testSize)
	for _, label := range labels {
		indices := byLabel[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		n := min(quota[label], len(indices))
		testIndices = append(testIndices, indices[:n]...)
		trainIndices = append(trainIndices, indices[n:]...)
	}
	// keep the original row order inside each partition
	sort.Ints(trainIndices)
	sort.Ints(testIndices)
	return t.SubSet(trainIndices), t.SubSet(testIndices), nil
}
