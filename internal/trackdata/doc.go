// Package trackdata extracts particle-tracking results from TrackMate XML
// exports and derives per-file aggregate statistics from them.
//
// # Architecture
//
// The package is organized into two main components:
//
// 1. Extractor: reads a tracking XML file and produces one Track per Track element
// 2. Summarize: computes the five file-level aggregate statistics from a track set
//
// # Usage
//
// Basic extraction example:
//
//	extractor := trackdata.NewExtractor(logger)
//	tracks, err := extractor.ExtractFile(ctx, "Experiment1.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	summary := trackdata.Summarize(tracks)
//
// # Data Flow
//
// The typical data flow through this package:
//
//	XML File → Extractor → Tracks → Summarize → FileSummary
//
// # Error Handling
//
// A file that cannot be parsed at all returns a parsing error; the caller
// decides whether that aborts the run. A single track with malformed
// attribute text is logged and skipped, and the remaining tracks of the
// same file are still returned. Missing attributes are not errors: each
// field has a documented default applied silently.
package trackdata
