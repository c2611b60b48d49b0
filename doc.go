// Package treelearn provides ID3 decision-tree induction for Go, designed
// for discrete-attribute classification with a small, explicit API.
//
// TreeLearn grows a classification tree from labeled examples with the
// entropy-based ID3 algorithm and classifies unseen samples against the
// grown tree. A scikit-learn-like facade accepts gonum matrices, so teams
// familiar with Python's ecosystem can keep their data handling unchanged.
//
// # Features
//
// - ID3 induction: entropy, information gain, majority-vote fallbacks
// - Immutable grown trees: classification is safe for concurrent use
// - scikit-learn-like API: Fit/Predict/Score over gonum matrices
// - Robust Error Handling: structured errors with stack traces
// - Tree persistence: JSON trees, gob model snapshots
// - Tree rendering: gonum/plot layouts of grown trees
//
// # Installation
//
// Install TreeLearn using go get:
//
//	go get github.com/YuminosukeSato/treelearn
//
// # Quick Start
//
// Growing and querying a tree with the core API:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/treelearn/tree"
//	)
//
//	func main() {
//	    // Does the animal surface without coming up for air, and does
//	    // it have flippers?
//	    ds := tree.Dataset{
//	        {tree.Num(1), tree.Num(1), tree.Str("yes")},
//	        {tree.Num(1), tree.Num(1), tree.Str("yes")},
//	        {tree.Num(1), tree.Num(0), tree.Str("no")},
//	        {tree.Num(0), tree.Num(1), tree.Str("no")},
//	        {tree.Num(0), tree.Num(1), tree.Str("no")},
//	    }
//	    names := []string{"no-surfacing", "flippers"}
//
//	    model, err := tree.NewModel(ds, names)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    label, err := model.Classify(names, tree.Example{tree.Num(1), tree.Num(1)})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(label) // yes
//	}
//
// The same tree through the scikit-learn compatible facade:
//
//	clf := sktree.NewDecisionTreeClassifier(
//	    sktree.WithFeatureNames([]string{"no-surfacing", "flippers"}),
//	)
//	if err := clf.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	predictions, err := clf.Predict(XTest)
//
// # Packages
//
// - tree: the ID3 core (growing, classification, JSON persistence)
// - sklearn/tree: scikit-learn compatible DecisionTreeClassifier
// - dataset: CSV ingestion of discrete-attribute training tables
// - treeplot: tree rendering via gonum/plot
// - metrics: classification evaluation metrics
// - cmd/treelearn: the grow/classify/test/draw command-line tool
//
// # Scope
//
// TreeLearn deliberately implements plain ID3: attributes are opaque
// discrete atoms compared by equality. There is no discretization of
// continuous ranges, no pruning, no missing-value handling, and no
// splitting criterion other than entropy-based information gain. A query
// carrying an attribute value unseen during training is an expected,
// recoverable outcome signaled through errors.ErrNoPrediction.
//
// # License
//
// TreeLearn is released under the MIT License.
package treelearn
