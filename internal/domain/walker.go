package domain

import (
	"errors"
	"io/fs"
	"iter"

	"go.uber.org/zap"

	"github.com/mouse-blink/covobj/internal/adapter"
	m "github.com/mouse-blink/covobj/internal/model"
)

// TreeWalker lists the files below a root depth-first, never descending into
// directories its PrunePolicy names. Symbolic links are yielded as candidates
// but never followed.
type TreeWalker struct {
	fsAdapter adapter.ArtifactFSAdapter
	policy    m.PrunePolicy
	logger    *zap.Logger

	// OnSkip is called for each subdirectory that could not be listed.
	OnSkip func(dir m.Path, err error)
}

// NewTreeWalker constructs a TreeWalker.
func NewTreeWalker(fsAdapter adapter.ArtifactFSAdapter, policy m.PrunePolicy, logger *zap.Logger) *TreeWalker {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TreeWalker{
		fsAdapter: fsAdapter,
		policy:    policy,
		logger:    logger,
	}
}

// Walk returns a lazy sequence of file paths below root, in lexical
// depth-first order. A missing root yields nothing. A root that exists but
// cannot be listed yields a single FilesystemAccessError and nothing else.
// Each directory listing is fully read and released before anything is
// yielded, so a consumer may stop at any point.
func (w *TreeWalker) Walk(root m.Path) iter.Seq2[m.Path, error] {
	return func(yield func(m.Path, error) bool) {
		entries, err := w.fsAdapter.ReadDir(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return
			}

			yield(root, &m.FilesystemAccessError{Path: root, Err: err})

			return
		}

		w.walkEntries(root, entries, yield)
	}
}

func (w *TreeWalker) walkEntries(dir m.Path, entries []fs.DirEntry, yield func(m.Path, error) bool) bool {
	for _, entry := range entries {
		path := w.fsAdapter.JoinPath(string(dir), entry.Name())

		if !entry.IsDir() {
			if !yield(path, nil) {
				return false
			}

			continue
		}

		if w.policy.ShouldPrune(entry.Name()) {
			continue
		}

		children, err := w.fsAdapter.ReadDir(path)
		if err != nil {
			w.skip(path, err)
			continue
		}

		if !w.walkEntries(path, children, yield) {
			return false
		}
	}

	return true
}

func (w *TreeWalker) skip(dir m.Path, err error) {
	w.logger.Debug("skipping unreadable directory", zap.String("dir", string(dir)), zap.Error(err))

	if w.OnSkip != nil {
		w.OnSkip(dir, err)
	}
}
