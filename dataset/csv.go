// Package dataset reads discrete-attribute training tables from CSV.
//
// The expected layout is a header row naming every column, with the class
// label in the final column, followed by one row per example. Cells that
// parse as finite numbers become numeric atoms; everything else, including
// the tokens NaN and Inf, stays textual.
package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
	"github.com/YuminosukeSato/treelearn/tree"
)

// ParseValue converts one CSV cell into an attribute atom. Finite numeric
// text becomes a numeric atom; any other text, including non-finite float
// spellings, is kept as an opaque textual atom so equality comparison stays
// well defined.
func ParseValue(cell string) tree.Value {
	if f, err := strconv.ParseFloat(cell, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return tree.Num(f)
	}
	return tree.Str(cell)
}

// ReadCSV parses a training table from r. It returns the attribute names
// from the header (the trailing class-column name is consumed but not
// returned, matching what the tree grower expects) and the dataset rows.
// The CSV reader enforces a uniform field count, so a ragged file fails
// here rather than inside the inducer.
func ReadCSV(r io.Reader) ([]string, tree.Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, treelearnErrors.Wrap(treelearnErrors.ErrEmptyData, "treelearn: dataset.ReadCSV: no header row")
	}
	if err != nil {
		return nil, nil, treelearnErrors.Wrap(err, "treelearn: dataset.ReadCSV: reading header")
	}
	if len(header) < 2 {
		return nil, nil, treelearnErrors.NewValueError("dataset.ReadCSV",
			"header must name at least one attribute column and the class column")
	}
	names := append([]string(nil), header[:len(header)-1]...)

	var ds tree.Dataset
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, treelearnErrors.Wrap(err, "treelearn: dataset.ReadCSV: reading record")
		}
		example := make(tree.Example, len(record))
		for i, cell := range record {
			example[i] = ParseValue(cell)
		}
		ds = append(ds, example)
	}
	return names, ds, nil
}

// ReadCSVFile reads a training table from the file at path.
func ReadCSVFile(path string) ([]string, tree.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, treelearnErrors.Wrap(err, "treelearn: dataset.ReadCSVFile")
	}
	defer f.Close()
	return ReadCSV(f)
}
