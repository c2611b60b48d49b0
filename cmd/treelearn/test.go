package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/treelearn/metrics"
	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
	"github.com/YuminosukeSato/treelearn/tree"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput string
	dataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the accuracy of a stored tree",
		Long:  `Classify every labeled sample of a CSV data set against a stored tree and report the accuracy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			root, err := loadTree(config.treeInput)
			if err != nil {
				return err
			}
			names, ds, err := readTrainingData(config.dataInput)
			if err != nil {
				return err
			}
			if len(ds) == 0 {
				return fmt.Errorf("test data set %s holds no samples", config.dataInput)
			}

			accuracy, predicted, noPrediction, err := evaluate(root, names, ds)
			if err != nil {
				return err
			}
			fmt.Printf("%d samples, %d classified, %d without prediction\n",
				len(ds), predicted, noPrediction)
			if predicted > 0 {
				fmt.Printf("accuracy over classified samples: %.4f\n", accuracy)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file with the tree to test (required)")
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to a CSV file with the labeled test data (defaults to STDIN)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

// evaluate classifies every example and computes accuracy over the rows
// that produced a prediction. Distinct label atoms are mapped to class IDs
// in first-seen order so textual labels fit the numeric metric.
func evaluate(root tree.Node, names []string, ds tree.Dataset) (float64, int, int, error) {
	classIDs := make(map[tree.Value]float64)
	classID := func(v tree.Value) float64 {
		id, ok := classIDs[v]
		if !ok {
			id = float64(len(classIDs))
			classIDs[v] = id
		}
		return id
	}

	var yTrue, yPred []float64
	noPrediction := 0
	for i, ex := range ds {
		query := ex[:len(ex)-1]
		label, err := tree.Classify(root, names, query)
		if treelearnErrors.Is(err, treelearnErrors.ErrNoPrediction) {
			noPrediction++
			continue
		}
		if err != nil {
			return 0, 0, 0, treelearnErrors.Wrapf(err, "classifying sample %d", i)
		}
		yTrue = append(yTrue, classID(ex.Label()))
		yPred = append(yPred, classID(label))
	}

	if len(yTrue) == 0 {
		treelearnErrors.Warn(treelearnErrors.NewUndefinedMetricWarning(
			"accuracy", "no sample produced a prediction", 0))
		return 0, 0, noPrediction, nil
	}
	accuracy, err := metrics.Accuracy(
		mat.NewVecDense(len(yTrue), yTrue),
		mat.NewVecDense(len(yPred), yPred),
	)
	if err != nil {
		return 0, 0, 0, err
	}
	return accuracy, len(yTrue), noPrediction, nil
}
