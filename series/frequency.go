package series

import (
	"fmt"
	"strings"

	"github.com/carbocation/labstat/describe"
)

// Frequencies counts the occurrences of each distinct value (modality).
func (s Series) Frequencies() map[float64]int {
	out := make(map[float64]int)
	for _, v := range s.data {
		out[v]++
	}

	return out
}

// Modalities lists the distinct values in the order they first appear.
func (s Series) Modalities() []float64 {
	seen := make(map[float64]struct{})
	out := make([]float64, 0)
	for _, v := range s.data {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// FrequencyReport renders the count and share of every modality.
func (s Series) FrequencyReport() string {
	freq := s.Frequencies()
	n := float64(len(s.data))

	b := strings.Builder{}
	fmt.Fprintf(&b, "\n| - Number of modalities: %d", len(freq))
	for _, v := range s.Modalities() {
		fmt.Fprintf(&b, "\n| - %s : %d -> %.2f%%", describe.Prettify(v, 3), freq[v], float64(freq[v])/n*100)
	}
	b.WriteString("\n")

	return b.String()
}
