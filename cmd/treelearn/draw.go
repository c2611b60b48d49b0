package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/treelearn/treeplot"
)

type drawCmdConfig struct {
	*rootCmdConfig
	treeInput string
	output    string
	width     float64
	height    float64
}

func drawCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &drawCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render a stored tree to an image",
		Long:  `Load a tree previously stored by grow and render it to an image file; the format follows the output extension (png, svg, pdf, ...).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			root, err := loadTree(config.treeInput)
			if err != nil {
				return err
			}
			if err := treeplot.Save(root,
				vg.Length(config.width)*vg.Inch,
				vg.Length(config.height)*vg.Inch,
				config.output); err != nil {
				return err
			}
			fmt.Printf("tree rendered to %s\n", config.output)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file with the tree to render (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to the image file to write (required)")
	cmd.PersistentFlags().Float64Var(&(config.width), "width", 6, "image width in inches")
	cmd.PersistentFlags().Float64Var(&(config.height), "height", 4, "image height in inches")
	return cmd
}

func (dcc *drawCmdConfig) Validate() error {
	if dcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if dcc.output == "" {
		return fmt.Errorf("required output flag was not set")
	}
	if dcc.width <= 0 || dcc.height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	return nil
}
