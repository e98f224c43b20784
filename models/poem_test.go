package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTripKeepsUnknownFields(t *testing.T) {
	in := []byte(`{"theme":"hope","difficulty":"hard","views":7,"shares":2,"audioAvailable":true,"mood":"wistful","audioUrl:urdu":"https://cdn.example.com/a.mp3"}`)

	var m PoemMetadata
	require.NoError(t, json.Unmarshal(in, &m))

	assert.Equal(t, "hope", m.Theme)
	assert.Equal(t, DifficultyHard, m.Difficulty)
	assert.Equal(t, 7, m.Views)
	assert.Equal(t, 2, m.Shares)
	assert.True(t, m.AudioAvailable)
	assert.Equal(t, "wistful", m.Extra["mood"])

	out, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "wistful", decoded["mood"])
	assert.Equal(t, "https://cdn.example.com/a.mp3", decoded["audioUrl:urdu"])
	assert.Equal(t, float64(7), decoded["views"])
}

func TestMetadataDefaultsDifficulty(t *testing.T) {
	var m PoemMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"love"}`), &m))
	assert.Equal(t, DifficultyMedium, m.Difficulty)

	m = NewPoemMetadata(nil)
	assert.Equal(t, DifficultyMedium, m.Difficulty)
}

func TestMetadataMergedDoesNotMutateReceiver(t *testing.T) {
	m := PoemMetadata{Theme: "hope", Extra: map[string]any{"mood": "calm"}}

	merged := m.Merged(map[string]any{"theme": "loss", "mood": "dark"})

	assert.Equal(t, "loss", merged.Theme)
	assert.Equal(t, "dark", merged.Extra["mood"])
	assert.Equal(t, "hope", m.Theme)
	assert.Equal(t, "calm", m.Extra["mood"])
}

func TestPoemUpdateIgnoresIDInPayload(t *testing.T) {
	var upd PoemUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"id":"poem_other","english":"changed"}`), &upd))

	poem := Poem{ID: "poem_original", English: "old"}
	upd.Apply(&poem)

	assert.Equal(t, "poem_original", poem.ID)
	assert.Equal(t, "changed", poem.English)
}

func TestPoemUpdateApplyLeavesLifecycleAlone(t *testing.T) {
	added := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	poem := Poem{
		ID:        "poem_original",
		Urdu:      "پرانا",
		Hindi:     "पुराना",
		English:   "old text",
		Category:  "nature",
		DateAdded: added,
		IsActive:  true,
	}

	newEnglish := "new text"
	newCategory := "romance"
	upd := PoemUpdate{
		English:  &newEnglish,
		Category: &newCategory,
		Metadata: map[string]any{"views": 9},
	}
	upd.Apply(&poem)

	assert.Equal(t, "poem_original", poem.ID)
	assert.Equal(t, added, poem.DateAdded)
	assert.True(t, poem.IsActive)
	assert.Nil(t, poem.DateDeleted)

	assert.Equal(t, "new text", poem.English)
	assert.Equal(t, "پرانا", poem.Urdu)
	assert.Equal(t, "romance", poem.Category)
	assert.Equal(t, 9, poem.Metadata.Views)
}
