package cas_test

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/afero"
)

const cacheDir = "/site/.cache"

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// failingFs wraps an afero.Fs and fails selected operations.
type failingFs struct {
	afero.Fs
	failRename    bool
	failOpenWrite bool
	failOpen      bool
}

func (f *failingFs) Open(name string) (afero.File, error) {
	if f.failOpen {
		return nil, errors.New("mock Open error")
	}
	return f.Fs.Open(name)
}

func (f *failingFs) Rename(oldname, newname string) error {
	if f.failRename {
		return errors.New("mock Rename error")
	}
	return f.Fs.Rename(oldname, newname)
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.failOpenWrite && flag&(os.O_CREATE|os.O_WRONLY|os.O_RDWR) != 0 {
		return nil, errors.New("mock OpenFile error")
	}
	return f.Fs.OpenFile(name, flag, perm)
}
