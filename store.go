package canonjson

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Store reads and writes whole value trees through a filesystem
// abstraction supplied by the host. I/O is whole-buffer, never
// streamed: one read or one write per document.
type Store struct {
	fs     afero.Fs
	logger log.Logger
}

// NewStore wraps fs. A nil logger disables logging.
func NewStore(fs afero.Fs, logger log.Logger) *Store {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Store{fs: fs, logger: logger}
}

// Read opens path, reads its entire contents, parses them and closes
// the file. Failures carry the path as context.
func (s *Store) Read(path string) (Value, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrapf(err, "closing %s", path)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	level.Debug(s.logger).Log("msg", "read json value", "path", path, "bytes", len(data))
	return v, nil
}

// Write serializes v, then opens path for writing, writes all bytes
// and closes the file. Nothing is opened when serialization fails.
func (s *Store) Write(path string, v Value) error {
	data, err := Serialize(v)
	if err != nil {
		return errors.Wrapf(err, "serializing %s", path)
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s for write", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	level.Debug(s.logger).Log("msg", "wrote json value", "path", path, "bytes", len(data))
	return nil
}

// ReadFile is a convenience for a one-off read without a Store.
func ReadFile(fs afero.Fs, path string) (Value, error) {
	return NewStore(fs, nil).Read(path)
}

// WriteFile is a convenience for a one-off write without a Store.
func WriteFile(fs afero.Fs, path string, v Value) error {
	return NewStore(fs, nil).Write(path, v)
}
