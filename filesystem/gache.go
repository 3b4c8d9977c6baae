package filesystem

import (
	"io"
	"os"
)

// GacheFs satisfies gache's filesystem interface on top of the afero backend,
// so cached catalogs follow the same OS/in-memory switch as everything else.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
