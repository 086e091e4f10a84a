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

package clf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
)

func writeConfusionMatrix(w io.Writer, confusion [2][2]int) error {
	table := tablewriter.NewWriter(w)
	table.Header("true \\ predicted", "0", "1")
	for c := 0; c < 2; c++ {
		if err := table.Append([]string{
			strconv.Itoa(c),
			strconv.Itoa(confusion[c][0]),
			strconv.Itoa(confusion[c][1]),
		}); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}

func writeClassMetrics(w io.Writer, classes [2]ClassMetrics) error {
	table := tablewriter.NewWriter(w)
	table.Header("class", "precision", "recall", "f1-score", "support")
	for c, metrics := range classes {
		if err := table.Append([]string{
			strconv.Itoa(c),
			fmt.Sprintf("%.4f", metrics.Precision),
			fmt.Sprintf("%.4f", metrics.Recall),
			fmt.Sprintf("%.4f", metrics.F1),
			strconv.Itoa(metrics.Support),
		}); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}
