package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpDatabase returns the path of a SQLite database file that does not
// exist yet. The file is removed together with the test's temporary
// directory.
func TmpDatabase(t *testing.T) string {
	return filepath.Join(t.TempDir(), "networth-"+uuid.NewString()+".db")
}
