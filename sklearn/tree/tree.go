// Package tree provides a scikit-learn compatible facade over the ID3
// decision-tree inducer in the core tree package. It accepts gonum matrices,
// so code written against the other estimators in this library can swap in a
// decision tree without changing its data handling.
package tree

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/treelearn/core/model"
	"github.com/YuminosukeSato/treelearn/core/parallel"
	"github.com/YuminosukeSato/treelearn/metrics"
	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
	"github.com/YuminosukeSato/treelearn/pkg/log"
	coretree "github.com/YuminosukeSato/treelearn/tree"
)

// Rows below this count are classified sequentially; batch prediction over
// larger inputs fans out across CPU cores, which is safe because a grown
// tree is immutable.
const parallelPredictThreshold = 64

// DecisionTreeClassifier is an ID3 classifier with a scikit-learn
// compatible API. Features are treated as discrete atoms compared by
// equality: the classifier never orders, thresholds, or discretizes them.
// The splitting criterion is entropy-based information gain; there is no
// pruning and no handling of missing values.
type DecisionTreeClassifier struct {
	model.BaseEstimator

	// Hyperparameters
	criterion    string
	featureNames []string

	logger log.Logger

	// Fitted state
	root      coretree.Node
	classes   []float64
	nFeatures int
	nSamples  int
}

// DecisionTreeOption configures a DecisionTreeClassifier.
type DecisionTreeOption func(*DecisionTreeClassifier)

// WithFeatureNames sets the attribute names used for the tree's split nodes.
// Without it, columns are named x0, x1, and so on.
func WithFeatureNames(names []string) DecisionTreeOption {
	return func(dt *DecisionTreeClassifier) {
		dt.featureNames = append([]string(nil), names...)
	}
}

// WithLogger replaces the classifier's default named logger.
func WithLogger(logger log.Logger) DecisionTreeOption {
	return func(dt *DecisionTreeClassifier) {
		dt.logger = logger
	}
}

// NewDecisionTreeClassifier creates an untrained classifier. The only
// supported criterion is "entropy".
func NewDecisionTreeClassifier(opts ...DecisionTreeOption) *DecisionTreeClassifier {
	dt := &DecisionTreeClassifier{
		criterion: "entropy",
		logger:    log.GetLoggerWithName("sklearn.tree"),
	}
	for _, opt := range opts {
		opt(dt)
	}
	return dt
}

// Fit grows the decision tree from X and y. Every cell of X is taken as a
// discrete category; y must be an n×1 matrix of class labels. Fit fails
// before growing on empty input, mismatched dimensions, or NaN/Inf cells.
func (dt *DecisionTreeClassifier) Fit(X, y mat.Matrix) (err error) {
	defer treelearnErrors.Recover(&err, "DecisionTreeClassifier.Fit")

	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return treelearnErrors.Wrap(treelearnErrors.ErrEmptyData, "treelearn: DecisionTreeClassifier.Fit")
	}
	yRows, yCols := y.Dims()
	if yRows != rows {
		return treelearnErrors.NewDimensionError("DecisionTreeClassifier.Fit", rows, yRows, 0)
	}
	if yCols != 1 {
		return treelearnErrors.NewDimensionError("DecisionTreeClassifier.Fit", 1, yCols, 1)
	}
	if err := treelearnErrors.CheckMatrix("DecisionTreeClassifier.Fit", X, rows, cols); err != nil {
		return err
	}
	if err := treelearnErrors.CheckMatrix("DecisionTreeClassifier.Fit", y, yRows, yCols); err != nil {
		return err
	}

	names := dt.featureNames
	if names == nil {
		names = make([]string, cols)
		for j := range names {
			names[j] = fmt.Sprintf("x%d", j)
		}
	} else if len(names) != cols {
		return treelearnErrors.NewDimensionError("DecisionTreeClassifier.Fit", cols, len(names), 1)
	}

	ds, converted := matrixToDataset(X, y, rows, cols)
	if converted {
		treelearnErrors.Warn(treelearnErrors.NewDataConversionWarning(
			"float64", "categorical atom",
			"non-integral feature values are treated as opaque categories, not as a continuous range"))
	}

	root, err := coretree.Grow(ds, names)
	if err != nil {
		return err
	}

	dt.root = root
	dt.featureNames = names
	dt.classes = uniqueSorted(y, rows)
	dt.nFeatures = cols
	dt.nSamples = rows
	dt.SetFitted()

	dt.logger.Info("decision tree fitted",
		log.ModelNameKey, "DecisionTreeClassifier",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.ClassesKey, len(dt.classes),
		log.TreeLeavesKey, coretree.NumLeaves(root),
		log.TreeDepthKey, coretree.Depth(root),
	)
	return nil
}

// Predict classifies each row of X and returns an n×1 matrix of labels.
// A row carrying a feature value never observed during training yields an
// error satisfying errors.Is(err, treelearnErrors.ErrNoPrediction), wrapped
// with the offending row index.
func (dt *DecisionTreeClassifier) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer treelearnErrors.Recover(&err, "DecisionTreeClassifier.Predict")

	if !dt.IsFitted() {
		return nil, treelearnErrors.NewNotFittedError("DecisionTreeClassifier", "Predict")
	}
	rows, cols := X.Dims()
	if cols != dt.nFeatures {
		return nil, treelearnErrors.NewDimensionError("DecisionTreeClassifier.Predict", dt.nFeatures, cols, 1)
	}
	if err := treelearnErrors.CheckMatrix("DecisionTreeClassifier.Predict", X, rows, cols); err != nil {
		return nil, err
	}

	predictions := mat.NewDense(rows, 1, nil)
	rowErrs := make([]error, rows)

	parallel.ParallelizeWithThreshold(rows, parallelPredictThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			query := make(coretree.Example, cols)
			for j := 0; j < cols; j++ {
				query[j] = coretree.Num(X.At(i, j))
			}
			label, classifyErr := coretree.Classify(dt.root, dt.featureNames, query)
			if classifyErr != nil {
				rowErrs[i] = treelearnErrors.Wrapf(classifyErr, "treelearn: DecisionTreeClassifier.Predict: row %d", i)
				continue
			}
			f, ok := label.Float()
			if !ok {
				rowErrs[i] = treelearnErrors.NewValueError("DecisionTreeClassifier.Predict",
					fmt.Sprintf("row %d: tree predicted non-numeric label %q", i, label))
				continue
			}
			predictions.Set(i, 0, f)
		}
	})

	for _, rowErr := range rowErrs {
		if rowErr != nil {
			return nil, rowErr
		}
	}
	return predictions, nil
}

// Score returns the mean accuracy of Predict(X) against y.
func (dt *DecisionTreeClassifier) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := dt.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, predictions)
}

// Classes returns the distinct training labels in ascending order.
func (dt *DecisionTreeClassifier) Classes() []float64 {
	return append([]float64(nil), dt.classes...)
}

// GetFeatureNames returns the attribute names the tree was grown with.
func (dt *DecisionTreeClassifier) GetFeatureNames() []string {
	return append([]string(nil), dt.featureNames...)
}

// GetDepth reports the depth of the fitted tree, 0 when unfitted.
func (dt *DecisionTreeClassifier) GetDepth() int {
	if dt.root == nil {
		return 0
	}
	return coretree.Depth(dt.root)
}

// GetNLeaves reports the number of leaves of the fitted tree, 0 when unfitted.
func (dt *DecisionTreeClassifier) GetNLeaves() int {
	if dt.root == nil {
		return 0
	}
	return coretree.NumLeaves(dt.root)
}

// Tree returns the fitted tree, or nil before Fit. The returned structure
// is shared and must not be mutated.
func (dt *DecisionTreeClassifier) Tree() coretree.Node {
	return dt.root
}

// GetParams returns the classifier's hyperparameters.
func (dt *DecisionTreeClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"criterion":     dt.criterion,
		"feature_names": dt.GetFeatureNames(),
	}
}

// SetParams updates hyperparameters. Only the entropy criterion is
// supported; asking for any other splitting criterion is a value error.
func (dt *DecisionTreeClassifier) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "criterion":
			criterion, ok := value.(string)
			if !ok {
				return treelearnErrors.NewValueError("DecisionTreeClassifier.SetParams", "criterion must be a string")
			}
			if criterion != "entropy" {
				return treelearnErrors.NewValueError("DecisionTreeClassifier.SetParams",
					fmt.Sprintf("unsupported criterion %q: only \"entropy\" is available", criterion))
			}
			dt.criterion = criterion
		case "feature_names":
			names, ok := value.([]string)
			if !ok {
				return treelearnErrors.NewValueError("DecisionTreeClassifier.SetParams", "feature_names must be []string")
			}
			dt.featureNames = append([]string(nil), names...)
		default:
			return treelearnErrors.NewValueError("DecisionTreeClassifier.SetParams",
				fmt.Sprintf("unknown parameter %q", key))
		}
	}
	return nil
}

// classifierState is the gob snapshot of a fitted classifier. The node
// variants are gob-registered by the core tree package.
type classifierState struct {
	Root         coretree.Node
	Criterion    string
	FeatureNames []string
	Classes      []float64
	NFeatures    int
	NSamples     int
}

// Save writes the fitted classifier to path.
func (dt *DecisionTreeClassifier) Save(path string) error {
	if !dt.IsFitted() {
		return treelearnErrors.NewNotFittedError("DecisionTreeClassifier", "Save")
	}
	state := &classifierState{
		Root:         dt.root,
		Criterion:    dt.criterion,
		FeatureNames: dt.featureNames,
		Classes:      dt.classes,
		NFeatures:    dt.nFeatures,
		NSamples:     dt.nSamples,
	}
	if err := model.SaveModel(state, path); err != nil {
		return treelearnErrors.NewModelError("DecisionTreeClassifier.Save", "persist", err)
	}
	return nil
}

// Load restores a classifier previously written by Save. The restored
// model is fitted and ready to predict.
func (dt *DecisionTreeClassifier) Load(path string) error {
	state := &classifierState{}
	if err := model.LoadModel(state, path); err != nil {
		return treelearnErrors.NewModelError("DecisionTreeClassifier.Load", "persist", err)
	}
	if state.Root == nil {
		return treelearnErrors.NewValueError("DecisionTreeClassifier.Load", "snapshot holds no tree")
	}
	dt.root = state.Root
	dt.criterion = state.Criterion
	dt.featureNames = state.FeatureNames
	dt.classes = state.Classes
	dt.nFeatures = state.NFeatures
	dt.nSamples = state.NSamples
	dt.SetFitted()
	return nil
}

// matrixToDataset converts gonum matrices into the core dataset form and
// reports whether any feature cell was non-integral, which triggers a
// single data-conversion warning at the call site.
func matrixToDataset(X, y mat.Matrix, rows, cols int) (coretree.Dataset, bool) {
	converted := false
	ds := make(coretree.Dataset, rows)
	for i := 0; i < rows; i++ {
		ex := make(coretree.Example, cols+1)
		for j := 0; j < cols; j++ {
			v := X.At(i, j)
			if v != math.Trunc(v) {
				converted = true
			}
			ex[j] = coretree.Num(v)
		}
		ex[cols] = coretree.Num(y.At(i, 0))
		ds[i] = ex
	}
	return ds, converted
}

// uniqueSorted collects the distinct labels of y in ascending order.
func uniqueSorted(y mat.Matrix, rows int) []float64 {
	seen := make(map[float64]struct{}, rows)
	var classes []float64
	for i := 0; i < rows; i++ {
		v := y.At(i, 0)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}
	sort.Float64s(classes)
	return classes
}
