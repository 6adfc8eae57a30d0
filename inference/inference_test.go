package inference

import (
	"errors"
	"math"
	"testing"

	"github.com/carbocation/labstat"
	"gonum.org/v1/gonum/stat"
)

func TestPositioning(t *testing.T) {
	x2, err := Positioning([]float64{12, 18, 30}, []float64{10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}

	if expected := 4.0/10 + 4.0/20; math.Abs(x2-expected) > 1e-12 {
		t.Errorf("got %f, expected %f", x2, expected)
	}
}

func TestPositioningLowExpected(t *testing.T) {
	_, err := Positioning([]float64{1, 2, 30}, []float64{3, 4.5, 30})

	var low *LowExpectedError
	if !errors.As(err, &low) {
		t.Fatalf("expected a LowExpectedError, got %v", err)
	}
	if len(low.Expected) != 2 {
		t.Errorf("got %v", low.Expected)
	}
	if !errors.Is(err, labstat.ErrLowExpected) {
		t.Error("LowExpectedError should match ErrLowExpected")
	}
	if low.Error() != "np_i < 5 for 3, 4.5" {
		t.Errorf("got %q", low.Error())
	}
}

func TestContingency(t *testing.T) {
	x2, ddof, theo, err := Contingency([][]float64{
		{10, 20},
		{30, 40},
	})
	if err != nil {
		t.Fatal(err)
	}

	if ddof != 1 {
		t.Errorf("got ddof %d", ddof)
	}

	expectedTheo := [][]float64{{12, 18}, {28, 42}}
	for i := range theo {
		for j := range theo[i] {
			if math.Abs(theo[i][j]-expectedTheo[i][j]) > 1e-12 {
				t.Errorf("theo[%d][%d] = %f, expected %f", i, j, theo[i][j], expectedTheo[i][j])
			}
		}
	}

	if expected := 4.0/12 + 4.0/18 + 4.0/28 + 4.0/42; math.Abs(x2-expected) > 1e-12 {
		t.Errorf("got x2 %f, expected %f", x2, expected)
	}
}

func TestContingencyErrors(t *testing.T) {
	if _, _, _, err := Contingency(nil); !errors.Is(err, labstat.ErrEmptySample) {
		t.Errorf("empty table: got %v", err)
	}

	var lm *labstat.LengthMismatchError
	if _, _, _, err := Contingency([][]float64{{1, 2}, {3}}); !errors.As(err, &lm) {
		t.Errorf("ragged table: got %v", err)
	}

	var de *labstat.DomainError
	if _, _, _, err := Contingency([][]float64{{1, 0}, {3, 0}}); !errors.As(err, &de) {
		t.Errorf("empty column: got %v", err)
	}
}

func TestCritical(t *testing.T) {
	for _, v := range []struct {
		alpha    float64
		ddof     int
		expected float64
	}{
		{0.05, 1, 3.841},
		{0.05, 2, 5.991},
		{0.01, 10, 23.209},
		{0.001, 30, 59.703},
		{0.9, 1, 0.0158},
	} {
		crit, err := Critical(v.alpha, v.ddof)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(crit-v.expected) > 1e-3 {
			t.Errorf("alpha=%v ddof=%d: got %.4f, expected %.4f", v.alpha, v.ddof, crit, v.expected)
		}
	}
}

func TestCheck(t *testing.T) {
	ok, err := Check(0.05, 1, 3.0)
	if err != nil || !ok {
		t.Errorf("3.0 < 3.841 should keep the null hypothesis, got %v %v", ok, err)
	}

	ok, err = Check(0.05, 1, 4.0)
	if err != nil || ok {
		t.Errorf("4.0 > 3.841 should reject the null hypothesis, got %v %v", ok, err)
	}

	if _, err := Check(0.04, 1, 1); err == nil {
		t.Error("alpha outside of the table should fail")
	}
	for _, ddof := range []int{0, 31} {
		if _, err := Check(0.05, ddof, 1); err == nil {
			t.Errorf("ddof %d should fail", ddof)
		}
	}
}

func TestPValue(t *testing.T) {
	if p := PValue(3.841458820694124, 1); math.Abs(p-0.05) > 1e-4 {
		t.Errorf("got %f, expected 0.05", p)
	}
	if p := PValue(7.814727903251178, 3); math.Abs(p-0.05) > 1e-4 {
		t.Errorf("got %f, expected 0.05", p)
	}
}

func TestFisherExact(t *testing.T) {
	if p := FisherExact(1, 9, 11, 3); math.Abs(p-0.002759) > 1e-5 {
		t.Errorf("got %f, expected 0.002759", p)
	}
}

func TestIndependence(t *testing.T) {
	p, exact, err := Independence(1, 9, 11, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !exact {
		t.Error("small expected counts should use the exact test")
	}
	if math.Abs(p-0.002759) > 1e-5 {
		t.Errorf("got %f", p)
	}

	p, exact, err = Independence(10, 20, 30, 40)
	if err != nil {
		t.Fatal(err)
	}
	if exact {
		t.Error("large expected counts should use the chi-square approximation")
	}
	if p < 0.3 || p > 0.45 {
		t.Errorf("got %f, expected about 0.373", p)
	}
}

func TestPoisson(t *testing.T) {
	vals, err := Poisson([]int{0, 1, 3}, 2)
	if err != nil {
		t.Fatal(err)
	}

	for k, expected := range map[int]float64{
		0: math.Exp(-2),
		1: 2 * math.Exp(-2),
		3: 8.0 / 6 * math.Exp(-2),
	} {
		if math.Abs(vals[k]-expected) > 1e-12 {
			t.Errorf("P(%d) = %f, expected %f", k, vals[k], expected)
		}
	}

	if _, err := Poisson([]int{-1}, 2); err == nil {
		t.Error("negative key should fail")
	}
}

func TestBinomial(t *testing.T) {
	for _, v := range []struct {
		x, n     int
		p        float64
		expected float64
	}{
		{2, 4, 0.5, 0.375},
		{0, 3, 0.1, 0.729},
		{3, 3, 0.1, 0.001},
		{1, 10, 0.2, 10 * 0.2 * math.Pow(0.8, 9)},
	} {
		got, err := Binomial(v.x, v.n, v.p)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-v.expected) > 1e-12 {
			t.Errorf("B(%d; %d, %v) = %f, expected %f", v.x, v.n, v.p, got, v.expected)
		}
	}

	if _, err := Binomial(5, 3, 0.5); err == nil {
		t.Error("x > n should fail")
	}
}

func TestConfidence(t *testing.T) {
	iv, err := QuantitativeConfidence(10, 4, 16, U95)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(iv.Lo-9.02) > 1e-12 || math.Abs(iv.Hi-10.98) > 1e-12 {
		t.Errorf("got %v", iv)
	}
	if !iv.Contains(10) || iv.Contains(11) {
		t.Errorf("%v: unexpected membership", iv)
	}

	pv, err := ProbabilisticConfidence(0.5, 100, U95)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pv.Lo-0.402) > 1e-12 || math.Abs(pv.Hi-0.598) > 1e-12 {
		t.Errorf("got %v", pv)
	}

	if _, err := ProbabilisticConfidence(1.5, 10, U95); err == nil {
		t.Error("proportion above 1 should fail")
	}
	if _, err := QuantitativeConfidence(1, 1, 0, U95); !errors.Is(err, labstat.ErrEmptySample) {
		t.Errorf("n=0: got %v", err)
	}
}

func TestRSquared(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3*v*v - 2*v + 1
	}

	r2, err := RSquared(x, y, 2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r2-1) > 1e-9 {
		t.Errorf("exact quadratic: got %f", r2)
	}
}

func TestRSquaredLinearMatchesGonum(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 12.3}

	r2, err := RSquared(x, y, 1)
	if err != nil {
		t.Fatal(err)
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	if expected := stat.RSquared(x, y, nil, alpha, beta); math.Abs(r2-expected) > 1e-9 {
		t.Errorf("got %f, expected %f", r2, expected)
	}
}

func TestRSquaredErrors(t *testing.T) {
	if _, err := RSquared([]float64{1, 2}, []float64{1}, 1); err == nil {
		t.Error("mismatched lengths should fail")
	}
	if _, err := RSquared([]float64{1, 2}, []float64{1, 2}, 2); err == nil {
		t.Error("underdetermined fit should fail")
	}
	if _, err := RSquared([]float64{1, 2, 3}, []float64{5, 5, 5}, 1); err == nil {
		t.Error("constant y should fail")
	}
}
