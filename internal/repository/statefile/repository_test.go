package statefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cashpoint/internal/domain/models"
)

func testRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	set, err := models.NewDenominationSet([]int{500, 200, 100})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cash_state.json")
	return NewFileRepository(path, set), path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := testRepo(t)
	inventory := models.Inventory{500: 20, 200: 7, 100: 0}

	require.NoError(t, repo.Save(inventory))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, inventory, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	repo, _ := testRepo(t)

	_, err := repo.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCorruptState(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: "{not json at all"},
		{name: "non-integer key", body: `{"five hundred": 20}`},
		{name: "non-integer value", body: `{"500": "twenty"}`},
		{name: "unknown denomination", body: `{"999": 3}`},
		{name: "negative count", body: `{"500": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, path := testRepo(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := repo.Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptState)
			assert.ErrorIs(t, err, models.ErrStorage)
		})
	}
}

func TestLoadDefaultsMissingDenominationsToZero(t *testing.T) {
	repo, path := testRepo(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"500": 4}`), 0o644))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, models.Inventory{500: 4, 200: 0, 100: 0}, loaded)
}

func TestSaveReplacesAtomically(t *testing.T) {
	repo, path := testRepo(t)

	require.NoError(t, repo.Save(models.Inventory{500: 1, 200: 1, 100: 1}))
	require.NoError(t, repo.Save(models.Inventory{500: 9, 200: 9, 100: 9}))

	// The temp sibling must not survive a completed save.
	_, err := os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, models.Inventory{500: 9, 200: 9, 100: 9}, loaded)
}
