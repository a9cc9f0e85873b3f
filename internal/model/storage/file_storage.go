package storage

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/entity/expense"
	"max.ks1230/splitwise-slack/internal/logger"
	"max.ks1230/splitwise-slack/internal/model/customerr"
)

const stateFileMode = 0o644

// FileStorage keeps the snapshot as a JSON document on local disk.
// There is no locking: two runs against the same path may race.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load returns a nil snapshot when the file does not exist yet.
func (s *FileStorage) Load(_ context.Context) (*expense.Snapshot, error) {
	raw, err := s.read()
	if errors.Is(err, customerr.ErrNotFoundOnDisk) {
		logger.Info("state file does not exist, will create it on completion", zap.String("path", s.path))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snapshot, err := decodeSnapshot(raw)
	if err != nil {
		logger.Warn("unable to parse state file, perhaps corrupted", zap.String("path", s.path))
		return nil, &customerr.ParseError{Source: s.path, Err: err}
	}
	return snapshot, nil
}

func (s *FileStorage) read() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(customerr.ErrNotFoundOnDisk, s.path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read state file")
	}
	return raw, nil
}

// Save replaces the file contents. The new snapshot is written next to the
// old one and renamed over it, so a crash never leaves half a document.
func (s *FileStorage) Save(_ context.Context, snapshot *expense.Snapshot) error {
	raw, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create state dir")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp state file")
	}
	defer func() {
		// no-op once renamed
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write state file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "write state file")
	}
	if err = os.Chmod(tmp.Name(), stateFileMode); err != nil {
		return errors.Wrap(err, "write state file")
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "replace state file")
	}

	logger.Info("state saved", zap.String("path", s.path), zap.Int("expenses", len(snapshot.Expenses)))
	return nil
}

func decodeSnapshot(raw []byte) (*expense.Snapshot, error) {
	snapshot := &expense.Snapshot{}
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return nil, err
	}
	if err := snapshot.ValidateIDs(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// encodeSnapshot writes expenses decoded from the API back out exactly as
// they were received.
func encodeSnapshot(snapshot *expense.Snapshot) ([]byte, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "encode state")
	}
	return raw, nil
}
