package metrics

import (
	"sort"
	"strings"

	"github.com/camilacod/DataVizVastProject/extract"
)

type datedWork struct {
	work    extract.WorkRecord
	release float64
}

// TemporalOf coerces release and notoriety years. Works with a missing or
// non-numeric year drop out of the aggregates that need it; non-numeric
// values that were present are counted in DataQuality.
func TemporalOf(works []extract.WorkRecord, genreCounts *Counts, timelineGenres int) (Temporal, DataQuality) {
	var t Temporal
	var quality DataQuality

	var dated []datedWork
	var timeToNotoriety []float64

	for _, w := range works {
		release, releaseErr := w.ReleaseYear()
		if releaseErr != nil && strings.TrimSpace(w.ReleaseDate) != "" {
			quality.ExcludedReleaseYears++
		}
		notoriety, notorietyErr := w.NotorietyYear()
		if notorietyErr != nil && strings.TrimSpace(w.NotorietyDate) != "" {
			quality.ExcludedNotorietyYears++
		}

		if releaseErr != nil {
			continue
		}
		dated = append(dated, datedWork{work: w, release: release})
		if notorietyErr == nil {
			timeToNotoriety = append(timeToNotoriety, notoriety-release)
		}
	}

	t.ValidReleases = len(dated)
	if len(dated) > 0 {
		t.MinYear, t.MaxYear = dated[0].release, dated[0].release
		for _, d := range dated[1:] {
			if d.release < t.MinYear {
				t.MinYear = d.release
			}
			if d.release > t.MaxYear {
				t.MaxYear = d.release
			}
		}
	}

	t.ReleasesPerYear = releasesPerYear(dated)
	t.Decades = decades(dated)
	t.NotableByYear = notableByYear(dated)
	t.GenreTimeline = genreTimeline(dated, genreCounts, timelineGenres)

	s := summarize(timeToNotoriety)
	t.TimeToNotoriety = TimeToNotoriety{
		Works:  len(timeToNotoriety),
		Mean:   s.Mean,
		Median: s.Median,
	}

	return t, quality
}

func releasesPerYear(dated []datedWork) []YearCount {
	byYear := make(map[float64]int)
	for _, d := range dated {
		byYear[d.release]++
	}
	result := make([]YearCount, 0, len(byYear))
	for year, n := range byYear {
		result = append(result, YearCount{Year: year, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year < result[j].Year })
	return result
}

func decades(dated []datedWork) []DecadeCount {
	byDecade := make(map[int]int)
	for _, d := range dated {
		byDecade[extract.Decade(d.release)]++
	}
	result := make([]DecadeCount, 0, len(byDecade))
	for decade, n := range byDecade {
		result = append(result, DecadeCount{Decade: decade, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Decade < result[j].Decade })
	return result
}

func notableByYear(dated []datedWork) []YearNotability {
	byYear := make(map[float64]*YearNotability)
	for _, d := range dated {
		row, ok := byYear[d.release]
		if !ok {
			row = &YearNotability{Year: d.release}
			byYear[d.release] = row
		}
		if d.work.Notable {
			row.Notable++
		} else {
			row.NonNotable++
		}
	}
	result := make([]YearNotability, 0, len(byYear))
	for _, row := range byYear {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year < result[j].Year })
	return result
}

// genreTimeline counts releases per year for the most common genres overall.
// Only years with at least one tracked release appear.
func genreTimeline(dated []datedWork, genreCounts *Counts, n int) GenreTimeline {
	var timeline GenreTimeline
	if genreCounts == nil || n <= 0 {
		return timeline
	}

	column := make(map[string]int)
	for i, c := range genreCounts.Top(n) {
		timeline.Genres = append(timeline.Genres, c.Key)
		column[c.Key] = i
	}

	byYear := make(map[float64][]int)
	for _, d := range dated {
		col, tracked := column[d.work.Genre]
		if !tracked {
			continue
		}
		row, ok := byYear[d.release]
		if !ok {
			row = make([]int, len(timeline.Genres))
			byYear[d.release] = row
		}
		row[col]++
	}

	for year, row := range byYear {
		timeline.Years = append(timeline.Years, GenreYear{Year: year, Counts: row})
	}
	sort.Slice(timeline.Years, func(i, j int) bool { return timeline.Years[i].Year < timeline.Years[j].Year })
	return timeline
}
