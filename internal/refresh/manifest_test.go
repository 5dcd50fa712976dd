package refresh

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/rosterwatch/internal/domain"
)

func TestManifestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "out/failed_colleges_inserting.json", ManifestPath("out", ModeFull))
	assert.Equal(t, "out/failed_colleges_updating.json", ManifestPath("out", ModeUpdate))
}

func TestWriteManifest(t *testing.T) {
	t.Parallel()

	t.Run("writes failed colleges as a json array", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		failed := []*domain.College{
			{CollegeID: "vermont", Name: "Vermont", Conference: "America East"},
			{CollegeID: "purdue", Name: "Purdue", Conference: "Big Ten"},
		}
		require.NoError(t, WriteManifest(dir, ModeUpdate, failed))

		data, err := os.ReadFile(ManifestPath(dir, ModeUpdate))
		require.NoError(t, err)

		var got []*domain.College
		require.NoError(t, json.Unmarshal(data, &got))
		require.Len(t, got, 2)
		assert.Equal(t, "vermont", got[0].CollegeID)
		assert.Equal(t, "purdue", got[1].CollegeID)
	})

	t.Run("clean run writes an empty array", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		require.NoError(t, WriteManifest(dir, ModeFull, nil))

		data, err := os.ReadFile(ManifestPath(dir, ModeFull))
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
	})

	t.Run("overwrites the previous run's manifest", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		failed := []*domain.College{{CollegeID: "vermont", Name: "Vermont", Conference: "America East"}}
		require.NoError(t, WriteManifest(dir, ModeUpdate, failed))
		require.NoError(t, WriteManifest(dir, ModeUpdate, nil))

		data, err := os.ReadFile(ManifestPath(dir, ModeUpdate))
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
	})
}
