package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/treelearn/dataset"
	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
	"github.com/YuminosukeSato/treelearn/tree"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	treeInput string
	names     string
	sample    string
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a sample against a stored tree",
		Long:  `Load a tree previously stored by grow and classify one comma-separated sample against it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			root, err := loadTree(config.treeInput)
			if err != nil {
				return err
			}

			names := splitList(config.names)
			query := make(tree.Example, 0)
			for _, cell := range splitList(config.sample) {
				query = append(query, dataset.ParseValue(cell))
			}

			label, err := tree.Classify(root, names, query)
			if treelearnErrors.Is(err, treelearnErrors.ErrNoPrediction) {
				// An expected outcome for values unseen during
				// training, reported distinctly from real errors.
				fmt.Println("no prediction:", err)
				return nil
			}
			if err != nil {
				return treelearnErrors.Wrap(err, "classifying the sample")
			}
			fmt.Println(label)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file with the tree to classify against (required)")
	cmd.PersistentFlags().StringVarP(&(config.names), "names", "n", "", "comma-separated attribute names matching the sample's positions (required)")
	cmd.PersistentFlags().StringVarP(&(config.sample), "sample", "s", "", "comma-separated attribute values of the sample to classify (required)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if ccc.names == "" {
		return fmt.Errorf("required names flag was not set")
	}
	if ccc.sample == "" {
		return fmt.Errorf("required sample flag was not set")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func loadTree(path string) (tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, treelearnErrors.Wrapf(err, "opening tree file %s", path)
	}
	defer f.Close()
	root, err := tree.ReadTree(f)
	if err != nil {
		return nil, treelearnErrors.Wrapf(err, "decoding tree file %s", path)
	}
	return root, nil
}
