package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"copy_icon/deps"
	"copy_icon/util/file"
	"copy_icon/util/tw"
)

// SourceNotFoundError represents error thrown if the source file does not exist
type SourceNotFoundError struct {
	Path string
}

// Error is used to satisfy golang error interface
func (e SourceNotFoundError) Error() string {
	return fmt.Sprintf("Source file not found: %v", e.Path)
}

// Result represents outcome of copying the source file into one target directory
type Result struct {
	// Target represents target directory as listed in config
	Target string

	// Dest represents full path of the copy
	Dest string

	// Err is nil if copying succeeded
	Err error
}

// OK returns true if copying succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// CheckSource returns SourceNotFoundError if the source file does not exist
func (r repo) CheckSource() error {
	if !file.Exists(r.cfg.Source) {
		return SourceNotFoundError{Path: r.cfg.Source}
	}
	return nil
}

// CopyAll copies the source file into every target directory, in order, under the destination name.
//
// Creates missing target directories with their parents and overwrites existing copies. Failure on one target is
// logged and does not stop processing of the rest.
//
// Returns results in the order of targets, or SourceNotFoundError without touching any target.
func (r repo) CopyAll() ([]Result, error) {
	if err := r.CheckSource(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(r.cfg.Targets))
	for _, target := range r.cfg.Targets {
		results = append(results, CopyTo(r, target))
	}
	r.log.Info("Done!")

	return results, nil
}

// CopyTo creates <target> directory if needed and copies the source file from config of <r> into it.
//
// Logs the outcome. Errors are not returned but stored in the result.
func CopyTo(r deps.Global, target string) Result {
	cfg := r.Cfg()
	res := Result{Target: target, Dest: filepath.Join(target, cfg.DestName)}
	r.Log().Debugf("Copying %v to %v", cfg.Source, res.Dest)

	if err := os.MkdirAll(target, cfg.DirPerm); err != nil {
		res.Err = errors.Wrap(err, "Create target directory")
	} else {
		res.Err = errors.Wrap(file.Copy(cfg.Source, res.Dest), "Copy source file")
	}

	if res.OK() {
		r.Log().Infof("Successfully copied to %v", res.Dest)
	} else {
		r.Log().Errorf("Error copying to %v: %v (%v)", res.Dest, res.Err, ErrorKind(res.Err))
	}
	return res
}

// ErrorKind returns short description of the cause of <err>, or empty string if <err> is nil
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.HasType(err, file.NotRegularError{}):
		return "not a regular file"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, syscall.ENOSPC):
		return "no space left"
	case errors.Is(err, syscall.ENOTDIR):
		return "not a directory"
	case errors.Is(err, syscall.EISDIR):
		return "is a directory"
	}
	return "I/O error"
}

// PrintSummary renders table of <results> with <w>
func (r repo) PrintSummary(w tw.Writer, results []Result) {
	w.AppendHeader(table.Row{"Target", "Destination", "Result", "Reason"})
	for _, res := range results {
		result := lo.Ternary(res.OK(), color.GreenString("OK"), color.RedString("FAILED"))
		w.AppendRow(table.Row{res.Target, res.Dest, result, ErrorKind(res.Err)})
	}
	failed := lo.CountBy(results, func(res Result) bool {
		return !res.OK()
	})
	w.AppendFooter(table.Row{"", "", fmt.Sprintf("%v copied", len(results)-failed), fmt.Sprintf("%v failed", failed)})
	w.Render()
}
