package content

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// randomSampleCap bounds how many elements a random sort shuffles.
const randomSampleCap = 100

// Sort reorders items according to rule using the package-level random
// source. The input slice is never modified.
func Sort(items []string, rule SortRule) []string {
	return SortWith(nil, items, rule)
}

// SortWith is Sort with an explicit random source; nil uses the package-level
// source.
//
// SortRandom does not shuffle the whole input. It first takes an evenly
// strided subsample of at most 100 elements (stride = ceil(len/100)) and
// returns that subsample in uniformly random order, so inputs longer than 100
// shrink to ceil(len/stride) elements.
func SortWith(rng *rand.Rand, items []string, rule SortRule) []string {
	switch rule {
	case SortRandom:
		return shuffledSample(rng, items)
	case SortAscending:
		out := slices.Clone(items)
		slices.SortStableFunc(out, strings.Compare)
		return out
	case SortDescending:
		out := slices.Clone(items)
		slices.SortStableFunc(out, func(a, b string) int {
			return strings.Compare(b, a)
		})
		return out
	default:
		return slices.Clone(items)
	}
}

func shuffledSample(rng *rand.Rand, items []string) []string {
	if len(items) == 0 {
		return []string{}
	}

	stride := (len(items) + randomSampleCap - 1) / randomSampleCap
	sample := make([]string, 0, (len(items)+stride-1)/stride)
	for i := 0; i < len(items); i += stride {
		sample = append(sample, items[i])
	}

	out := make([]string, 0, len(sample))
	for len(sample) > 0 {
		j := intN(rng, len(sample))
		out = append(out, sample[j])
		sample = slices.Delete(sample, j, j+1)
	}
	return out
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

func float64From(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

func int64N(rng *rand.Rand, n int64) int64 {
	if rng == nil {
		return rand.Int64N(n)
	}
	return rng.Int64N(n)
}
