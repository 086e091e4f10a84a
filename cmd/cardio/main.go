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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/base/log"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/cmd/version"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/config"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/dataset"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/model"
	"github.com/Aryan9369/CodeAlpha-Disease-prediction-from-medical-data/model/clf"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cardioCommand = &cobra.Command{
	Use:   "cardio",
	Short: "Disease prediction from medical data.",
	Long: "Train and evaluate heart disease classifiers on the UCI heart " +
		"disease dataset, then score hypothetical patients.",
	Run: func(cmd *cobra.Command, args []string) {
		// Show version
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}

		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)

		// load config
		configPath, _ := cmd.PersistentFlags().GetString("config")
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}
		if cmd.PersistentFlags().Changed("data") {
			conf.Data.Path, _ = cmd.PersistentFlags().GetString("data")
		}
		jobs, _ := cmd.PersistentFlags().GetInt("jobs")

		run(conf, jobs)
	},
}

func init() {
	log.AddFlags(cardioCommand.PersistentFlags())
	cardioCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	cardioCommand.PersistentFlags().BoolP("version", "v", false, "cardio version")
	cardioCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	cardioCommand.PersistentFlags().String("data", "", "path of the dataset file")
	cardioCommand.PersistentFlags().Int("jobs", 1, "number of working jobs for tree fitting")
}

func run(conf *config.Config, jobs int) {
	ctx := context.Background()
	schema := dataset.HeartDiseaseSchema()

	// load dataset
	table, err := dataset.LoadCSV(conf.Data.Path, schema)
	if err != nil {
		log.Logger().Fatal("failed to load dataset",
			zap.String("path", conf.Data.Path), zap.Error(err))
	}
	log.Logger().Info("load dataset",
		zap.String("path", conf.Data.Path),
		zap.Int("rows", table.Count()),
		zap.Int("columns", len(schema.Features)+1),
		zap.Any("label_distribution", table.LabelDistribution()))

	// split dataset
	train, test, err := table.Split(conf.Data.TestRatio, conf.Data.RandomState)
	if err != nil {
		log.Logger().Fatal("failed to split dataset", zap.Error(err))
	}
	log.Logger().Info("split dataset",
		zap.Int("train_size", train.Count()),
		zap.Int("test_size", test.Count()),
		zap.Any("train_label_distribution", train.LabelDistribution()),
		zap.Any("test_label_distribution", test.LabelDistribution()))

	// fit both pipelines
	pipelines := map[clf.Variant]*clf.Pipeline{
		clf.Logistic: clf.NewPipeline(schema, clf.NewLogisticRegression(model.Params{
			model.Lr:          conf.Logistic.Lr,
			model.Reg:         conf.Logistic.Reg,
			model.NEpochs:     conf.Logistic.NEpochs,
			model.RandomState: conf.Data.RandomState,
		})),
		clf.Forest: clf.NewPipeline(schema, clf.NewRandomForest(model.Params{
			model.NTrees:         conf.Forest.NTrees,
			model.MaxDepth:       conf.Forest.MaxDepth,
			model.MinSamplesLeaf: conf.Forest.MinSamplesLeaf,
			model.RandomState:    conf.Data.RandomState,
		})),
	}
	for _, variant := range []clf.Variant{clf.Logistic, clf.Forest} {
		pipeline := pipelines[variant]
		fitConfig := model.NewFitConfig().
			SetJobs(jobs).
			SetTracker(&progressTracker{description: "fit " + string(variant)})
		if _, err = pipeline.Fit(ctx, train, test, fitConfig); err != nil {
			log.Logger().Fatal("failed to fit pipeline",
				zap.String("model", string(variant)), zap.Error(err))
		}
		report, err := pipeline.Evaluate(test)
		if err != nil {
			log.Logger().Fatal("failed to evaluate pipeline",
				zap.String("model", string(variant)), zap.Error(err))
		}
		fmt.Printf("\n=== %s ===\n", variant)
		if err = report.Write(os.Stdout); err != nil {
			log.Logger().Fatal("failed to render report", zap.Error(err))
		}
	}

	// score hypothetical patients with the selected pipeline
	selected := pipelines[clf.Variant(conf.Predict.Model)]
	rows := make([][]float32, len(conf.Predict.Patients))
	for i, patient := range conf.Predict.Patients {
		rows[i] = patient.Row()
	}
	records, err := dataset.NewRecords(schema, schema.Features, rows)
	if err != nil {
		log.Logger().Fatal("invalid patient records", zap.Error(err))
	}
	predictions, err := selected.Predict(records)
	if err != nil {
		log.Logger().Fatal("failed to predict", zap.Error(err))
	}
	fmt.Printf("\n=== predictions (%s) ===\n", conf.Predict.Model)
	table2 := tablewriter.NewWriter(os.Stdout)
	table2.Header("patient", "predicted status", "probability")
	for i, prediction := range predictions {
		status := "no disease"
		if prediction.Label == 1 {
			status = "disease"
		}
		if err := table2.Append([]string{
			fmt.Sprintf("%d", i+1),
			status,
			fmt.Sprintf("%.4f", prediction.Probability),
		}); err != nil {
			log.Logger().Fatal("failed to render predictions", zap.Error(err))
		}
	}
	if err := table2.Render(); err != nil {
		log.Logger().Fatal("failed to render predictions", zap.Error(err))
	}
}

// progressTracker renders fit progress as a progress bar.
type progressTracker struct {
	description string
	bar         *progressbar.ProgressBar
}

func (tracker *progressTracker) Start(total int) {
	tracker.bar = progressbar.Default(int64(total), tracker.description)
}

func (tracker *progressTracker) Update(progress int) {
	_ = tracker.bar.Set(progress)
}

func (tracker *progressTracker) Finish() {
	_ = tracker.bar.Finish()
}

func main() {
	if err := cardioCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
