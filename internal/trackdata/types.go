package trackdata

// Source XML attribute names. Matching is exact and case-sensitive.
const (
	AttrTrackID      = "TRACK_ID"
	AttrNumberSpots  = "NUMBER_SPOTS"
	AttrNumberMerges = "NUMBER_MERGES"
	AttrMeanSpeed    = "TRACK_MEAN_SPEED"
	AttrMaxSpeed     = "TRACK_MAX_SPEED"
)

// DefaultTrackID is used when the source element carries no TRACK_ID.
// All other fields default to zero values.
const DefaultTrackID = -1

// Column names shared by the per-file analysis tables and the
// consolidated summary.
const (
	ColFilename         = "filename"
	ColTrackID          = "track_id"
	ColNSpots           = "n_spots"
	ColNMerges          = "n_merges"
	ColHasMerging       = "has_merging"
	ColMeanSpeed        = "mean_speed"
	ColMaxSpeed         = "max_speed"
	ColTotalTracks      = "total_tracks"
	ColTotalMerges      = "total_merges"
	ColAvgSpeedAll      = "avg_speed_all"
	ColAvgSpeedMerging  = "avg_speed_merging"
	ColAvgSpeedNonmerge = "avg_speed_nonmerge"
)

// Track is one tracked trajectory extracted from a tracking XML file.
// Tracks are created once by the Extractor and never mutated afterwards.
type Track struct {
	TrackID   int
	NSpots    int
	NMerges   int
	MeanSpeed float64
	MaxSpeed  float64
}

// HasMerging reports whether the track took part in at least one merge
// event. It is always derived from NMerges, never stored independently.
func (t Track) HasMerging() bool {
	return t.NMerges > 0
}

// FileSummary holds the five aggregate statistics describing all tracks
// within one source file.
type FileSummary struct {
	TotalTracks      int
	TotalMerges      int
	AvgSpeedAll      float64
	AvgSpeedMerging  float64
	AvgSpeedNonmerge float64
}

// TrackColumns returns the per-track column names in output order.
func TrackColumns() []string {
	return []string{
		ColTrackID,
		ColNSpots,
		ColNMerges,
		ColHasMerging,
		ColMeanSpeed,
		ColMaxSpeed,
	}
}

// SummaryColumns returns the aggregate column names in output order.
// The order matches the field order of FileSummary.
func SummaryColumns() []string {
	return []string{
		ColTotalTracks,
		ColTotalMerges,
		ColAvgSpeedAll,
		ColAvgSpeedMerging,
		ColAvgSpeedNonmerge,
	}
}
