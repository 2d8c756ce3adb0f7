package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type likedRecord struct {
	ID      uuid.UUID   `json:"id"`
	LikedBy []uuid.UUID `json:"liked_by"`
}

func TestCreatedEnvelope(t *testing.T) {
	rec := likedRecord{ID: uuid.New()}

	change := Created(rec.ID, CollectionPosts, rec)

	assert.Equal(t, ActionCreated, change.Action)
	assert.Equal(t, CollectionPosts, change.Collection)
	assert.Nil(t, change.Before)

	var decoded likedRecord
	require.NoError(t, json.Unmarshal(change.After, &decoded))
	assert.Equal(t, rec.ID, decoded.ID)
}

func TestUpdatedEnvelopeCarriesBothSnapshots(t *testing.T) {
	liker := uuid.New()
	before := likedRecord{ID: uuid.New()}
	after := likedRecord{ID: before.ID, LikedBy: []uuid.UUID{liker}}

	change := Updated(before.ID, CollectionPosts, before, after)

	var gotBefore, gotAfter likedRecord
	require.NoError(t, json.Unmarshal(change.Before, &gotBefore))
	require.NoError(t, json.Unmarshal(change.After, &gotAfter))
	assert.Empty(t, gotBefore.LikedBy)
	assert.Equal(t, []uuid.UUID{liker}, gotAfter.LikedBy)
}

func TestEnvelopeSurvivesWireRoundTrip(t *testing.T) {
	change := Created(uuid.New(), CollectionMailQueue, map[string]string{"to_email": "ada@yrdly.local"})

	payload, err := json.Marshal(change)
	require.NoError(t, err)

	var decoded Change
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, change.ID, decoded.ID)
	assert.Equal(t, change.Collection, decoded.Collection)
	assert.JSONEq(t, string(change.After), string(decoded.After))
}
