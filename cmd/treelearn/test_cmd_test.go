package main

import (
	"testing"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
	"github.com/YuminosukeSato/treelearn/tree"
)

func fruitTree() (tree.Node, []string) {
	root := &tree.Split{
		Attribute: "color",
		Branches: map[tree.Value]tree.Node{
			tree.Str("red"):   &tree.Leaf{Label: tree.Str("ripe")},
			tree.Str("green"): &tree.Leaf{Label: tree.Str("unripe")},
		},
	}
	return root, []string{"color"}
}

func TestEvaluate_AllSamplesClassified(t *testing.T) {
	root, names := fruitTree()
	ds := tree.Dataset{
		{tree.Str("red"), tree.Str("ripe")},
		{tree.Str("green"), tree.Str("unripe")},
		{tree.Str("red"), tree.Str("unripe")},
	}

	accuracy, predicted, noPrediction, err := evaluate(root, names, ds)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if predicted != 3 || noPrediction != 0 {
		t.Fatalf("predicted = %d, noPrediction = %d, want 3 and 0", predicted, noPrediction)
	}
	want := 2.0 / 3.0
	if diff := accuracy - want; diff < -1e-10 || diff > 1e-10 {
		t.Errorf("accuracy = %v, want %v", accuracy, want)
	}
}

func TestEvaluate_UndefinedAccuracyWarnsOnce(t *testing.T) {
	var warnings []error
	treelearnErrors.SetZerologWarnFunc(func(w error) {
		warnings = append(warnings, w)
	})
	defer treelearnErrors.SetZerologWarnFunc(nil)

	root, names := fruitTree()
	ds := tree.Dataset{
		{tree.Str("yellow"), tree.Str("ripe")},
		{tree.Str("purple"), tree.Str("unripe")},
	}

	accuracy, predicted, noPrediction, err := evaluate(root, names, ds)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if predicted != 0 || noPrediction != 2 {
		t.Fatalf("predicted = %d, noPrediction = %d, want 0 and 2", predicted, noPrediction)
	}
	if accuracy != 0 {
		t.Errorf("accuracy = %v, want 0 when no sample was classified", accuracy)
	}

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	var undefined *treelearnErrors.UndefinedMetricWarning
	if !treelearnErrors.As(warnings[0], &undefined) {
		t.Fatalf("expected UndefinedMetricWarning, got %T", warnings[0])
	}
	if undefined.Metric != "accuracy" {
		t.Errorf("warning metric = %q, want %q", undefined.Metric, "accuracy")
	}
}
