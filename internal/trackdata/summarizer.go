package trackdata

import "gonum.org/v1/gonum/stat"

// Summarize computes the five aggregate statistics over a file's tracks.
// An empty track set yields a zero-valued summary; the mean of an empty
// speed subset is the sentinel 0.0, applied uniformly to all three
// averages.
func Summarize(tracks []Track) FileSummary {
	summary := FileSummary{TotalTracks: len(tracks)}

	all := make([]float64, 0, len(tracks))
	var merging, nonMerging []float64

	for _, t := range tracks {
		summary.TotalMerges += t.NMerges
		all = append(all, t.MeanSpeed)
		if t.HasMerging() {
			merging = append(merging, t.MeanSpeed)
		} else {
			nonMerging = append(nonMerging, t.MeanSpeed)
		}
	}

	summary.AvgSpeedAll = meanOrZero(all)
	summary.AvgSpeedMerging = meanOrZero(merging)
	summary.AvgSpeedNonmerge = meanOrZero(nonMerging)

	return summary
}

// meanOrZero returns the arithmetic mean of values, or 0.0 for an
// empty set.
func meanOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return stat.Mean(values, nil)
}
