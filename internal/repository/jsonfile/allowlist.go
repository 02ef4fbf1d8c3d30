package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"subquest/internal/domain"
)

// AllowListRepo implements repository.AllowListRepository on top of a JSON
// array of user ids. The whole file is rewritten on every change and
// replaced atomically, so readers never see a partial write.
type AllowListRepo struct {
	path string

	mu  sync.RWMutex
	ids map[int64]struct{}
}

// NewAllowListRepo loads the store from path. A missing file is an empty list.
func NewAllowListRepo(path string) (*AllowListRepo, error) {
	r := &AllowListRepo{path: path, ids: map[int64]struct{}{}}
	if err := r.Reload(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

// IsAllowed checks membership in the loaded snapshot
func (r *AllowListRepo) IsAllowed(ctx context.Context, userID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[userID]
	return ok, nil
}

// Add inserts userID and persists the list
func (r *AllowListRepo) Add(ctx context.Context, userID int64) error {
	return r.mutate(ctx, userID, true)
}

// Remove deletes userID and persists the list
func (r *AllowListRepo) Remove(ctx context.Context, userID int64) error {
	return r.mutate(ctx, userID, false)
}

// List returns the sorted ids
func (r *AllowListRepo) List() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedIDs(r.ids)
}

// Reload re-reads the file, keeping the current snapshot if it fails
func (r *AllowListRepo) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// held across read and swap so a concurrent Add cannot be lost
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, found, err := r.read()
	if err != nil {
		return err
	}
	if !found {
		ids = map[int64]struct{}{}
	}
	r.ids = ids
	return nil
}

// read decodes the file. found is false when the file does not exist.
func (r *AllowListRepo) read() (map[int64]struct{}, bool, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, r.path, err)
	}

	var list []int64
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, false, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageUnavailable, r.path, err)
		}
	}

	ids := make(map[int64]struct{}, len(list)+1)
	for _, id := range list {
		ids[id] = struct{}{}
	}
	return ids, true, nil
}

func (r *AllowListRepo) mutate(ctx context.Context, userID int64, add bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// start from the file so hand edits since the last reload survive
	next, found, err := r.read()
	if err != nil {
		return err
	}
	if !found {
		next = make(map[int64]struct{}, len(r.ids)+1)
		for id := range r.ids {
			next[id] = struct{}{}
		}
	}

	_, present := next[userID]
	if present == add {
		r.ids = next
		return nil
	}

	if add {
		next[userID] = struct{}{}
	} else {
		delete(next, userID)
	}

	if err := r.save(sortedIDs(next)); err != nil {
		return err
	}
	r.ids = next
	return nil
}

func (r *AllowListRepo) save(ids []int64) error {
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", domain.ErrStorageUnavailable, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", domain.ErrStorageUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", domain.ErrStorageUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageUnavailable, tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync %s: %v", domain.ErrStorageUnavailable, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrStorageUnavailable, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domain.ErrStorageUnavailable, r.path, err)
	}
	return nil
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
