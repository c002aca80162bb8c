package cmd

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/goai/classification"
	"github.com/samuelfneumann/goai/classification/dataset"
	"github.com/samuelfneumann/goai/classification/mira"
	"github.com/samuelfneumann/goai/classification/perceptron"
	"github.com/samuelfneumann/goai/tracker"
	"github.com/samuelfneumann/goai/utils/intutils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// DataSettings configures the data generated for a classifier
type DataSettings struct {
	Data               dataset.Config `mapstructure:"data"`
	ValidationFraction float64        `mapstructure:"validation-fraction"`
	Top                int            `mapstructure:"top"`
}

type miraSettings struct {
	mira.Config  `mapstructure:",squash"`
	DataSettings `mapstructure:",squash"`
	Track        string `mapstructure:"track"`
}

type perceptronSettings struct {
	perceptron.Config `mapstructure:",squash"`
	DataSettings      `mapstructure:",squash"`
}

// addDataFlags adds the flags for generating data and binds them
// under section
func addDataFlags(a *app, flags *pflag.FlagSet, section string) {
	flags.Int("examples", 500, "number of examples to generate")
	flags.Int("features", 5, "number of features of each example")
	flags.Int("labels", 3, "number of labels")
	flags.Float64("margin", 0.1, "minimum score margin of the true label")
	flags.Uint64("seed", 1, "seed for generating data")
	flags.Float64("validation-fraction", 0.2, "fraction of examples "+
		"held out for validation")
	flags.Int("top", 5, "number of highest weighted features to print "+
		"per label")

	for _, name := range []string{"examples", "features", "labels",
		"margin", "seed"} {
		if err := a.v.BindPFlag(section+".data."+name,
			flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("addDataFlags: flag %q: %v", name, err))
		}
	}
	a.bind(flags, section, "validation-fraction", "top")
}

func newMiraCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mira",
		Short: "Train a MIRA classifier on generated data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s struct {
				Mira miraSettings `mapstructure:"mira"`
			}
			if err := a.unmarshal(&s); err != nil {
				return err
			}

			c, err := mira.New(dataset.Labels(s.Mira.Data), s.Mira.Config,
				a.logger)
			if err != nil {
				return err
			}
			if err := train(cmd, a.logger, c, s.Mira.DataSettings); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, trial := range c.Trials() {
				fmt.Fprintf(out, "C = %v: validation accuracy %.4f\n",
					trial.C, trial.Accuracy)
			}
			fmt.Fprintf(out, "Selected C = %v\n", c.C())

			if s.Mira.Track != "" {
				series := tracker.NewSeries(s.Mira.Track)
				for _, trial := range c.Trials() {
					series.Track(trial.Accuracy)
				}
				if err := series.Save(); err != nil {
					return err
				}
			}

			return printFeatures(cmd, c.Weights(), s.Mira.Top)
		},
	}

	flags := cmd.Flags()
	flags.Int("iterations", 3, "passes over the training data")
	flags.Float64("c", mira.DefaultC, "cap on the size of each update")
	flags.Bool("auto-tune", false, "choose the cap by validation accuracy")
	flags.Float64Slice("c-grid", mira.DefaultCGrid, "caps tried when "+
		"auto-tuning")
	flags.String("track", "", "file to save the validation accuracy of "+
		"each cap to")
	a.bind(flags, "mira", "iterations", "c", "auto-tune", "c-grid", "track")
	addDataFlags(a, flags, "mira")

	return cmd
}

func newPerceptronCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perceptron",
		Short: "Train a perceptron on generated data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s struct {
				Perceptron perceptronSettings `mapstructure:"perceptron"`
			}
			if err := a.unmarshal(&s); err != nil {
				return err
			}

			c, err := perceptron.New(dataset.Labels(s.Perceptron.Data),
				s.Perceptron.Config, a.logger)
			if err != nil {
				return err
			}
			if err := train(cmd, a.logger, c,
				s.Perceptron.DataSettings); err != nil {
				return err
			}
			return printFeatures(cmd, c.Weights(), s.Perceptron.Top)
		},
	}

	flags := cmd.Flags()
	flags.Int("iterations", 3, "passes over the training data")
	a.bind(flags, "perceptron", "iterations")
	addDataFlags(a, flags, "perceptron")

	return cmd
}

// train generates data, trains c on it and prints the accuracy on the
// training and validation data
func train(cmd *cobra.Command, logger *zap.Logger,
	c classification.Classifier[int], s DataSettings) error {
	data, labels, err := dataset.Separable(s.Data)
	if err != nil {
		return err
	}
	trainData, trainLabels, validData, validLabels, err := dataset.Split(data,
		labels, s.ValidationFraction)
	if err != nil {
		return err
	}
	logger.Info("generated data", zap.Int("training", len(trainData)),
		zap.Int("validation", len(validData)))

	if err := c.Train(trainData, trainLabels, validData,
		validLabels); err != nil {
		return err
	}

	trainAccuracy, err := classification.Accuracy(c.Classify(trainData),
		trainLabels)
	if err != nil {
		return err
	}
	validAccuracy, err := classification.Accuracy(c.Classify(validData),
		validLabels)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Training accuracy: %.4f\n", trainAccuracy)
	fmt.Fprintf(out, "Validation accuracy: %.4f\n", validAccuracy)
	return nil
}

// printFeatures prints the top highest weighted features of each label
func printFeatures(cmd *cobra.Command, w *classification.Weights[int],
	top int) error {
	top = intutils.Max(0, intutils.Min(top, mira.HighWeightFeatureCount))

	out := cmd.OutOrStdout()
	for _, label := range w.Labels() {
		features, err := w.HighWeightFeatures(label, top)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Label %d: %s\n", label, strings.Join(features, " "))
	}
	return nil
}
