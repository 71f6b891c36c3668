package report

import (
	"os"
	"path/filepath"

	"github.com/camilacod/DataVizVastProject/config"
	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
)

// writeFile overwrites path with data in one write, creating parent
// directories as needed. Failures are io errors in the emit stage.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
			return ioError(err, grapherr.SubcategoryIOCreate, path)
		}
	}
	if err := os.WriteFile(path, data, config.DefaultFilePermissions); err != nil {
		return ioError(err, grapherr.SubcategoryIOWrite, path)
	}
	return nil
}

func ioError(err error, sub, path string) error {
	return grapherr.New(grapherr.CategoryIO, err, "Cannot write an output file").
		WithSubcategory(sub).
		WithStage(grapherr.StageEmit).
		WithPath(path)
}
