package model

import (
	"sort"
	"strconv"
)

// ValueCount is one bar of a frequency distribution.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// MarketAnalysis groups the four distributions shown by the analysis view.
type MarketAnalysis struct {
	UseCases    []ValueCount `json:"use_cases"`
	AgeInMarket []ValueCount `json:"age_in_market"`
	Make        []ValueCount `json:"make"`
	FormFactor  []ValueCount `json:"form_factor"`
}

// AnalyzeMarket computes exact-value frequency counts over the collection.
// No smoothing or binning; every distinct value is its own bucket.
func AnalyzeMarket(recs []PCBRecord) MarketAnalysis {
	useCases := make(map[string]int)
	ages := make(map[string]int)
	makes := make(map[string]int)
	formFactors := make(map[string]int)

	for i := range recs {
		for _, useCase := range recs[i].UseCases {
			useCases[useCase]++
		}
		ages[strconv.Itoa(recs[i].AgeInMarket)]++
		makes[recs[i].Make]++
		formFactors[recs[i].FormFactor]++
	}

	return MarketAnalysis{
		UseCases:    sortByCount(useCases),
		AgeInMarket: sortByAge(ages),
		Make:        sortByCount(makes),
		FormFactor:  sortByCount(formFactors),
	}
}

// sortByCount orders buckets by descending count, value ascending on ties.
func sortByCount(counts map[string]int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, ValueCount{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// sortByAge orders the age distribution by ascending numeric age, the way
// the analysis view has always rendered it.
func sortByAge(counts map[string]int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, ValueCount{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		ai, _ := strconv.Atoi(out[i].Value)
		aj, _ := strconv.Atoi(out[j].Value)
		return ai < aj
	})
	return out
}
