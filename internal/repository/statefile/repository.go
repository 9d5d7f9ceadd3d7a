package statefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mamadbah2/cashpoint/internal/domain/models"
)

// ErrCorruptState indicates the state file exists but cannot be interpreted
// as a valid inventory: malformed JSON, non-integer keys or values, unknown
// denominations, or negative counts.
var ErrCorruptState = fmt.Errorf("%w: corrupt state file", models.ErrStorage)

// Repository defines the interface for durable inventory storage.
type Repository interface {
	Load() (models.Inventory, error)
	Save(inventory models.Inventory) error
}

// FileRepository persists the inventory as an indented JSON object keyed by
// denomination face value. Writes go through a sibling temp file followed by
// an atomic rename, so readers of the target path never observe a partial
// document.
type FileRepository struct {
	path   string
	denoms models.DenominationSet
}

// NewFileRepository creates a repository bound to the given path. Loaded
// state is validated against the provided denomination set.
func NewFileRepository(path string, denoms models.DenominationSet) *FileRepository {
	return &FileRepository{path: path, denoms: denoms}
}

// Path returns the target file location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads and validates the persisted inventory. A missing file is
// reported as os.ErrNotExist so callers can distinguish first-run from
// corruption. Denominations absent from the file default to zero notes.
func (r *FileRepository) Load() (models.Inventory, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read %s: %v", models.ErrStorage, r.path, err)
	}

	var counts map[string]int
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	inventory := make(models.Inventory, len(r.denoms))
	for _, d := range r.denoms {
		inventory[d] = 0
	}

	for key, count := range counts {
		value, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: non-integer denomination key %q", ErrCorruptState, key)
		}
		denom := models.Denomination(value)
		if !r.denoms.Contains(denom) {
			return nil, fmt.Errorf("%w: unknown denomination %d", ErrCorruptState, value)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative count %d for denomination %d", ErrCorruptState, count, value)
		}
		inventory[denom] = count
	}

	return inventory, nil
}

// Save writes the inventory to a temp file next to the target and renames it
// into place. The rename is atomic on POSIX filesystems.
func (r *FileRepository) Save(inventory models.Inventory) error {
	counts := make(map[string]int, len(inventory))
	for d, count := range inventory {
		counts[d.String()] = count
	}

	raw, err := json.MarshalIndent(counts, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: marshal state: %v", models.ErrStorage, err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", models.ErrStorage, tmp, err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		// Best effort cleanup; the stale temp file is harmless but untidy.
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %v", models.ErrStorage, r.path, err)
	}

	return nil
}
