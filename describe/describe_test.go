package describe

import (
	"errors"
	"math"
	"testing"

	"github.com/carbocation/labstat"
)

const tolerance = 1e-9

func TestMeanStdDev(t *testing.T) {
	m, s, err := MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(m-5) > tolerance {
		t.Errorf("Mean: got %f, expected 5", m)
	}
	if expected := math.Sqrt(32.0 / 7.0); math.Abs(s-expected) > tolerance {
		t.Errorf("StdDev: got %f, expected %f", s, expected)
	}
}

func TestSingleValueStdDevIsNaN(t *testing.T) {
	s, err := StdDev([]float64{354})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(s) {
		t.Errorf("expected NaN for a single value, got %f", s)
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, labstat.ErrEmptySample) {
		t.Errorf("Mean: expected ErrEmptySample, got %v", err)
	}
	if _, err := Median([]float64{}); !errors.Is(err, labstat.ErrEmptySample) {
		t.Errorf("Median: expected ErrEmptySample, got %v", err)
	}
	if _, err := Summarize(nil); !errors.Is(err, labstat.ErrEmptySample) {
		t.Errorf("Summarize: expected ErrEmptySample, got %v", err)
	}
}

func TestQuartiles(t *testing.T) {
	for _, v := range []struct {
		Data   []float64
		Q1, Q3 float64
	}{
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8}, 2.5, 6.5},
		{[]float64{9, 1, 8, 2, 7, 3, 6, 4, 5}, 2.5, 7.5},
		{[]float64{42}, 42, 42},
	} {
		q1, err := FirstQuartile(v.Data)
		if err != nil {
			t.Fatal(err)
		}
		q3, err := ThirdQuartile(v.Data)
		if err != nil {
			t.Fatal(err)
		}
		if q1 != v.Q1 || q3 != v.Q3 {
			t.Errorf("%v: got Q1=%f Q3=%f, expected Q1=%f Q3=%f", v.Data, q1, q3, v.Q1, v.Q3)
		}

		iqr, _ := IQR(v.Data)
		if iqr != v.Q3-v.Q1 {
			t.Errorf("%v: got IQR=%f, expected %f", v.Data, iqr, v.Q3-v.Q1)
		}
	}
}

func TestOutliers(t *testing.T) {
	data := []float64{5, 1, 2, 100, 3, 4, 6, 7, 8}

	out, err := Outliers(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != 100 {
		t.Errorf("got outliers %v, expected [100]", out)
	}

	kept, err := RemoveOutliers(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != len(data)-1 {
		t.Fatalf("got %d values without outliers, expected %d", len(kept), len(data)-1)
	}
	if kept[0] != 5 || kept[3] != 3 {
		t.Errorf("RemoveOutliers should keep the original order, got %v", kept)
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100})
	if err != nil {
		t.Fatal(err)
	}

	if s.N != 9 || s.Median != 5 || s.FirstQuartile != 2.5 || s.ThirdQuartile != 7.5 || s.IQR != 5 {
		t.Errorf("unexpected summary %+v", s)
	}
	if len(s.Outliers) != 1 || len(s.WithoutOutliers) != 8 {
		t.Errorf("unexpected outlier split %v / %v", s.Outliers, s.WithoutOutliers)
	}
}

func TestDispersion(t *testing.T) {
	r, err := Dispersion([]float64{3, -1.5, 12, 4})
	if err != nil {
		t.Fatal(err)
	}
	if r.Min != -1.5 || r.Max != 12 || r.Width() != 13.5 {
		t.Errorf("got %+v", r)
	}
	if r.String() != "[-1.5 ; 12]" {
		t.Errorf("got %q", r.String())
	}
}

func TestWeightedVariance(t *testing.T) {
	x := []float64{1, 2, 3}
	w := []float64{1, 1, 1}

	unbiased, err := WeightedVariance(x, w, true)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(unbiased-1) > tolerance {
		t.Errorf("unbiased: got %f, expected 1", unbiased)
	}

	biased, _ := WeightedVariance(x, w, false)
	if math.Abs(biased-2.0/3.0) > tolerance {
		t.Errorf("biased: got %f, expected 0.667", biased)
	}

	if _, err := WeightedVariance(x, w[:2], true); err == nil {
		t.Error("expected an error for mismatched weights")
	}

	v, _ := UnbiasedVariance(x)
	if math.Abs(v-1) > tolerance {
		t.Errorf("UnbiasedVariance: got %f, expected 1", v)
	}
}

func TestFormatUncertainty(t *testing.T) {
	for _, v := range []struct {
		Mean, Std float64
		Want      string
	}{
		{35400000, 1200000, "(3.540 ± 0.120)e7"},
		{12, 150, "(0.120 ± 1.500)e2"},
		{35400000, 0, "(3.540 ± 0.000)e7"},
		{35400000, math.NaN(), "(3.540)e7"},
	} {
		if got := FormatUncertainty(v.Mean, v.Std); got != v.Want {
			t.Errorf("FormatUncertainty(%g, %g): got %q, expected %q", v.Mean, v.Std, got, v.Want)
		}
	}
}

func TestPrettify(t *testing.T) {
	for in, want := range map[float64]string{
		0:         "0",
		0.0693147: "0.069",
		2.5:       "2.5",
		100:       "100",
		12345.678: "1.235e+04",
		0.0000123: "1.230e-05",
	} {
		if got := Prettify(in, 3); got != want {
			t.Errorf("Prettify(%g): got %q, expected %q", in, got, want)
		}
	}
}
