package file

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	otiaiCopy "github.com/otiai10/copy"
)

// NotRegularError represents error thrown if copy source is not a regular file
type NotRegularError struct {
	Path string
	Mode os.FileMode
}

// Error is used to satisfy golang error interface
func (e NotRegularError) Error() string {
	return fmt.Sprintf("Not a regular file: %v (%v)", e.Path, e.Mode.Type())
}

// Copy copies <src> file path to <dst> file path, overwriting <dst> if it exists.
//
// Permission bits and timestamps of <src> are applied to <dst>. Symbolic links are followed.
//
// <dst> is not touched if <src> is missing or is not a regular file (NotRegularError).
func Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrap(err, "Stat source file")
	}
	// Directories would be copied recursively
	if !info.Mode().IsRegular() {
		return errors.Wrap(NotRegularError{Path: src, Mode: info.Mode()}, "Check source file")
	}

	err = otiaiCopy.Copy(src, dst, otiaiCopy.Options{
		OnSymlink: func(string) otiaiCopy.SymlinkAction {
			return otiaiCopy.Deep
		},
		PreserveTimes:     true,
		PermissionControl: otiaiCopy.PerservePermission,
	})
	return errors.Wrap(err, "Copy file")
}

// Exists returns true if anything (file or directory) exists at <path>
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
