// Package model provides the shared estimator contracts and lifecycle helpers
// for TreeLearn models.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that learn from training data.
type Fitter interface {
	// Fit trains the model on X and y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that produce predictions.
type Predictor interface {
	// Predict returns predictions for the rows of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is the minimal contract of a trainable model.
type Estimator interface {
	Fitter

	// IsFitted reports whether Fit has completed successfully.
	IsFitted() bool
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the mean accuracy of the prediction on X against y.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Classifier combines interfaces for classification models.
//
// Probability estimates are deliberately absent: a grown ID3 tree stores a
// single label per leaf, so there is no PredictProba here.
type Classifier interface {
	Estimator
	Predictor
	Scorer

	// Classes returns the unique class labels seen during fitting.
	Classes() []float64
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}

// Persistable is the interface for models that can be saved and loaded.
type Persistable interface {
	// Save saves the model to a file.
	Save(path string) error

	// Load loads the model from a file.
	Load(path string) error
}
