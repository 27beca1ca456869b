package strokestat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
		want   Summary
	}{
		{
			name: "empty",
			want: Summary{},
		},
		{
			name: "single dab",
			xs:   []float64{1},
			ys:   []float64{1},
			want: Summary{Dabs: 1},
		},
		{
			name: "single gap",
			xs:   []float64{0, 3},
			ys:   []float64{0, 4},
			want: Summary{Dabs: 2, Length: 5, MeanGap: 5, MinGap: 5, MaxGap: 5},
		},
		{
			name: "even spacing",
			xs:   []float64{0, 10, 20, 30},
			ys:   []float64{0, 0, 0, 0},
			want: Summary{Dabs: 4, Length: 30, MeanGap: 10, MinGap: 10, MaxGap: 10},
		},
		{
			name: "uneven spacing",
			xs:   []float64{0, 2, 8},
			ys:   []float64{0, 0, 0},
			// gaps 2 and 6: mean 4, sample std dev sqrt(8)
			want: Summary{Dabs: 3, Length: 8, MeanGap: 4, StdDevGap: 2.8284271247461903, MinGap: 2, MaxGap: 6, CV: 0.7071067811865476},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.xs, tt.ys)
			if d := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestGapsMismatchedLengthsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Gaps did not panic on mismatched slices")
		}
	}()
	Gaps([]float64{1, 2}, []float64{1})
}
