package trackdata

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/errors"
)

// trackQuery locates Track elements anywhere under the document root,
// not just direct children. TrackMate nests them under Model/AllTracks.
const trackQuery = "//Track"

// Extractor parses tracking XML files into Track values.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a new track extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractFile parses one tracking XML file and returns its tracks in
// document order. A file that cannot be read or parsed returns a parsing
// error; a track whose attribute text fails type coercion is logged and
// skipped while the remaining tracks are still returned.
func (e *Extractor) ExtractFile(ctx context.Context, path string) ([]Track, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.NewParsingError(
			fmt.Sprintf("failed to parse tracking XML %s", filepath.Base(path)), err)
	}

	return e.extractTracks(ctx, filepath.Base(path), doc), nil
}

// extractTracks walks every Track element in the document and converts
// it to a Track value
func (e *Extractor) extractTracks(ctx context.Context, name string, doc *etree.Document) []Track {
	elements := doc.FindElements(trackQuery)

	tracks := make([]Track, 0, len(elements))
	for i, el := range elements {
		track, err := trackFromElement(el)
		if err != nil {
			e.logger.WarnContext(ctx, "skipping track with malformed attributes",
				slog.String("file", name),
				slog.Int("track_index", i),
				slog.String("error", err.Error()))
			continue
		}
		tracks = append(tracks, track)
	}

	e.logger.DebugContext(ctx, "extracted tracks",
		slog.String("file", name),
		slog.Int("track_count", len(tracks)),
		slog.Int("element_count", len(elements)))

	return tracks
}

// trackFromElement reads one Track element. The first malformed
// attribute fails the whole track; missing attributes take defaults.
func trackFromElement(el *etree.Element) (Track, error) {
	id, err := intAttr(el, AttrTrackID, DefaultTrackID)
	if err != nil {
		return Track{}, err
	}

	spots, err := intAttr(el, AttrNumberSpots, 0)
	if err != nil {
		return Track{}, err
	}

	merges, err := intAttr(el, AttrNumberMerges, 0)
	if err != nil {
		return Track{}, err
	}

	meanSpeed, err := floatAttr(el, AttrMeanSpeed, 0.0)
	if err != nil {
		return Track{}, err
	}

	maxSpeed, err := floatAttr(el, AttrMaxSpeed, 0.0)
	if err != nil {
		return Track{}, err
	}

	return Track{
		TrackID:   id,
		NSpots:    spots,
		NMerges:   merges,
		MeanSpeed: meanSpeed,
		MaxSpeed:  maxSpeed,
	}, nil
}

// intAttr reads an integer attribute from el, returning def when the
// attribute is absent. Non-integer text is a coercion error.
func intAttr(el *etree.Element, name string, def int) (int, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return def, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %q is not an integer", name, attr.Value)
	}
	return v, nil
}

// floatAttr reads a float attribute from el, returning def when the
// attribute is absent. Non-numeric text is a coercion error.
func floatAttr(el *etree.Element, name string, def float64) (float64, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return def, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %q is not a number", name, attr.Value)
	}
	return v, nil
}
