package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const tolerance = 1e-10

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{
			name:  "perfect predictions",
			yTrue: []float64{0, 1, 1, 0},
			yPred: []float64{0, 1, 1, 0},
			want:  1.0,
		},
		{
			name:  "all wrong",
			yTrue: []float64{0, 0, 0},
			yPred: []float64{1, 1, 1},
			want:  0.0,
		},
		{
			name:  "three of four correct",
			yTrue: []float64{0, 1, 2, 1},
			yPred: []float64{0, 1, 2, 2},
			want:  0.75,
		},
		{
			name:  "single sample",
			yTrue: []float64{1},
			yPred: []float64{1},
			want:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yTrue := mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			yPred := mat.NewVecDense(len(tt.yPred), tt.yPred)

			got, err := Accuracy(yTrue, yPred)
			if err != nil {
				t.Fatalf("Accuracy() error = %v", err)
			}
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracy_LengthMismatch(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{0, 1, 0})
	yPred := mat.NewVecDense(2, []float64{0, 1})

	if _, err := Accuracy(yTrue, yPred); err == nil {
		t.Error("Accuracy() with mismatched lengths must fail")
	}
}

func TestAccuracyMatrix(t *testing.T) {
	yTrue := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
	yPred := mat.NewDense(4, 1, []float64{0, 1, 0, 0})

	got, err := AccuracyMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("AccuracyMatrix() error = %v", err)
	}
	if math.Abs(got-0.75) > tolerance {
		t.Errorf("AccuracyMatrix() = %v, want 0.75", got)
	}
}

func TestAccuracyMatrix_RejectsWideMatrix(t *testing.T) {
	yTrue := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	yPred := mat.NewDense(2, 2, []float64{0, 1, 1, 0})

	if _, err := AccuracyMatrix(yTrue, yPred); err == nil {
		t.Error("AccuracyMatrix() must reject matrices wider than one column")
	}
}

func TestAccuracyMatrix_DimensionMismatch(t *testing.T) {
	yTrue := mat.NewDense(3, 1, []float64{0, 1, 0})
	yPred := mat.NewDense(2, 1, []float64{0, 1})

	if _, err := AccuracyMatrix(yTrue, yPred); err == nil {
		t.Error("AccuracyMatrix() with mismatched rows must fail")
	}
}

func TestErrorRate(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{0, 1, 2, 1})
	yPred := mat.NewVecDense(4, []float64{0, 1, 2, 2})

	got, err := ErrorRate(yTrue, yPred)
	if err != nil {
		t.Fatalf("ErrorRate() error = %v", err)
	}
	if math.Abs(got-0.25) > tolerance {
		t.Errorf("ErrorRate() = %v, want 0.25", got)
	}
}
