package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/dbscript/internal/schema"
)

// FileName returns the script file name for db: "<name>.sql".
func FileName(db *schema.Database) string {
	return db.Name() + ".sql"
}

// WriteFile writes the script for db to dir/<name>.sql and returns the path.
// The file is closed before WriteFile returns; a failed write may leave a
// partial file behind.
func WriteFile(dir string, db *schema.Database) (path string, err error) {
	path = filepath.Join(dir, FileName(db))

	f, err := os.Create(path) //nolint:gosec // path is built from the user's own database name
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := Write(f, db); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
