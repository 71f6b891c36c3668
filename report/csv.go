package report

import (
	"bytes"
	"encoding/csv"

	"github.com/camilacod/DataVizVastProject/errors"
	"github.com/camilacod/DataVizVastProject/extract"
	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
)

// SongsAlbumsHeader is the column order of songs_albums_analysis.csv
var SongsAlbumsHeader = []string{
	"id", "type", "genre", "notable", "release_date", "notoriety_date", "written_date", "single",
}

// WriteSongsAlbumsCSV writes one row per work. Booleans are True/False and
// absent values are empty cells; single is empty for Albums.
func WriteSongsAlbumsCSV(path string, works []extract.WorkRecord) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(SongsAlbumsHeader); err != nil {
		return ioError(errors.Wrap(err, "failed to write header"), grapherr.SubcategoryIOWrite, path)
	}
	for _, work := range works {
		if err := w.Write(songsAlbumsRow(work)); err != nil {
			return ioError(errors.Wrapf(err, "failed to write row %s", work.ID), grapherr.SubcategoryIOWrite, path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ioError(err, grapherr.SubcategoryIOWrite, path)
	}

	return writeFile(path, buf.Bytes())
}

func songsAlbumsRow(w extract.WorkRecord) []string {
	single := ""
	if w.Single != nil {
		single = extract.FormatBool(*w.Single)
	}
	return []string{
		w.ID,
		w.Type,
		w.Genre,
		extract.FormatBool(w.Notable),
		w.ReleaseDate,
		w.NotorietyDate,
		w.WrittenDate,
		single,
	}
}
