// Package paths locates the data files used by the command line tools.
package paths

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-icn/datafiles"
)

// EnvDataDir names the environment variable which is searched first.
const EnvDataDir = "ICN_DATA"

// ReadSeekCloser is what Open returns.
type ReadSeekCloser interface {
	io.ReadCloser
	io.Seeker
}

// getPossiblePathDirs returns the directories searched for datafiles, most
// preferred first.
func getPossiblePathDirs() []string {
	var dirs []string
	if d := os.Getenv(EnvDataDir); d != "" {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, "datafiles")
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "src", "badc0de.net", "pkg", "go-icn", "datafiles"))
	}
	return append(dirs, os.Args[0]+".runfiles/go_icn/datafiles")
}

func getPossiblePaths(fileName string) []string {
	var paths []string
	for _, dir := range getPossiblePathDirs() {
		paths = append(paths, filepath.Join(dir, fileName))
	}
	return paths
}

// Find locates the passed datafile shortname and returns an absolute or
// relative path to find the datafile at. It returns an empty string if the
// file is not on disk.
//
// For example, for "demo.pal" it may return "datafiles/demo.pal".
func Find(fileName string) string {
	for _, path := range getPossiblePaths(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would look,
// and opens it. Files not found on disk are served from the copies embedded
// in package datafiles, if there is one.
func Open(fileName string) (ReadSeekCloser, error) {
	if path := Find(fileName); path != "" {
		return NoFindOpen(path)
	}
	b, err := datafiles.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(os.ErrNotExist, "go-icn/paths/Open(%q): not found on disk nor embedded", fileName)
	}
	glog.V(1).Infof("paths.Open(%q): using embedded copy", fileName)
	return &bytesReaderWithDummyClose{bytes.NewReader(b)}, nil
}

// NoFindOpen opens path as it is.
func NoFindOpen(path string) (ReadSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "go-icn/paths/NoFindOpen(%q)", path)
	}
	return f, nil
}

// ReadFile reads the whole of a file located with Open.
func ReadFile(fileName string) ([]byte, error) {
	f, err := Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "go-icn/paths/ReadFile(%q)", fileName)
	}
	return b, nil
}

type bytesReaderWithDummyClose struct {
	*bytes.Reader
}

func (bytesReaderWithDummyClose) Close() error {
	return nil
}
