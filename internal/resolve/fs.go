package resolve

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"syscall"
)

// EntryKind is the outcome of a file-system probe.
type EntryKind int

const (
	// EntryMissing covers both "does not exist" and any stat error.
	EntryMissing EntryKind = iota
	EntryFile
	EntryDirectory
)

// FileSystem answers existence probes. Implementations must not return
// errors; anything that is not a regular file or directory is EntryMissing.
type FileSystem interface {
	Stat(path string) EntryKind
}

// OSFileSystem probes the local disk, following symlinks.
type OSFileSystem struct {
	// Logger receives stat errors other than "not found". Nil uses slog.Default().
	Logger *slog.Logger
}

// Stat implements FileSystem.
func (o OSFileSystem) Stat(path string) EntryKind {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
			o.logger().Debug("stat failed, treating as missing",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}

		return EntryMissing
	}

	switch {
	case info.Mode().IsRegular():
		return EntryFile
	case info.IsDir():
		return EntryDirectory
	default:
		return EntryMissing
	}
}

func (o OSFileSystem) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}
