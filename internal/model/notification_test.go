package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryNotificationTypeHasACategory(t *testing.T) {
	for _, typ := range NotificationTypes() {
		_, ok := typ.PreferenceCategory()
		assert.True(t, ok, "notification type %q has no preference category", typ)
	}
}

func TestPreferenceCategoryTable(t *testing.T) {
	cases := map[NotificationType]PreferenceCategory{
		NotificationFriendRequest:         PrefFriends,
		NotificationFriendRequestAccepted: PrefFriends,
		NotificationMessage:               PrefMessages,
		NotificationPostUpdate:            PrefPosts,
		NotificationComment:               PrefComments,
		NotificationPostLike:              PrefPosts,
		NotificationEventInvite:           PrefEvents,
	}
	for typ, want := range cases {
		got, ok := typ.PreferenceCategory()
		assert.True(t, ok)
		assert.Equal(t, want, got, "type %q", typ)
	}
}

func TestUnknownTypeHasNoCategory(t *testing.T) {
	_, ok := NotificationType("carrier_pigeon").PreferenceCategory()
	assert.False(t, ok)
}

func TestNotificationSettings_MissingKeyDefaultsToEnabled(t *testing.T) {
	var empty NotificationSettings
	assert.True(t, empty.Enabled(PrefPosts))

	partial := NotificationSettings{PrefMessages: false}
	assert.False(t, partial.Enabled(PrefMessages))
	assert.True(t, partial.Enabled(PrefEvents))
}
