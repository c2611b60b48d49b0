package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/treelearn/dataset"
	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
	"github.com/YuminosukeSato/treelearn/tree"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput string
	output    string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a decision tree from a CSV data set",
		Long:  `Grow an ID3 decision tree from a CSV table whose header names the attribute columns and whose last column holds the class label.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			names, ds, err := readTrainingData(config.dataInput)
			if err != nil {
				return err
			}

			m, err := tree.NewModel(ds, names)
			if err != nil {
				return treelearnErrors.Wrap(err, "growing the tree")
			}

			root := m.Tree()
			fmt.Fprintf(os.Stderr, "grown from %d samples over %d attributes: %d leaves, depth %d\n",
				len(ds), len(names), tree.NumLeaves(root), tree.Depth(root))
			fmt.Fprintln(os.Stderr, root)

			if config.output == "" {
				return tree.WriteTree(os.Stdout, root)
			}
			if err := m.StoreTree(config.output); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "tree stored in %s\n", config.output)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to a CSV file with the training data (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written in JSON format (defaults to STDOUT)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	return nil
}

func readTrainingData(path string) ([]string, tree.Dataset, error) {
	if path == "" {
		names, ds, err := dataset.ReadCSV(os.Stdin)
		if err != nil {
			return nil, nil, treelearnErrors.Wrap(err, "reading training data from STDIN")
		}
		return names, ds, nil
	}
	names, ds, err := dataset.ReadCSVFile(path)
	if err != nil {
		return nil, nil, treelearnErrors.Wrapf(err, "reading training data from %s", path)
	}
	return names, ds, nil
}
