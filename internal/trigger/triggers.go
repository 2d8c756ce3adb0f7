package trigger

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/events"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/service"
)

// Publisher re-publishes follow-up changes (a mail enqueue) onto the
// bus. Satisfied by events.Bus.
type Publisher interface {
	Publish(ctx context.Context, change events.Change)
}

// MailProcessor consumes one mail-queue entry. Satisfied by
// service.MailService.
type MailProcessor interface {
	Process(ctx context.Context, entry *model.MailQueueEntry)
}

// Triggers reacts to change envelopes: one handler per monitored
// event kind, each a thin adapter that extracts parameters from the
// snapshots and hands off to the notification dispatcher or the mail
// queue. Handlers have no caller to report to, so failures are logged
// and swallowed.
type Triggers struct {
	users    repository.UserStore
	posts    repository.PostStore
	convs    repository.ConversationStore
	mailbox  repository.MailQueueStore
	notifier service.Notifier
	mail     MailProcessor
	bus      Publisher
}

func New(
	users repository.UserStore,
	posts repository.PostStore,
	convs repository.ConversationStore,
	mailbox repository.MailQueueStore,
	notifier service.Notifier,
	mail MailProcessor,
	bus Publisher,
) *Triggers {
	return &Triggers{
		users:    users,
		posts:    posts,
		convs:    convs,
		mailbox:  mailbox,
		notifier: notifier,
		mail:     mail,
		bus:      bus,
	}
}

// HandleChange routes one change envelope to its handler.
func (t *Triggers) HandleChange(ctx context.Context, change events.Change) {
	switch {
	case change.Collection == events.CollectionFriendRequests && change.Action == events.ActionCreated:
		var req model.FriendRequest
		if decode(change.After, &req) {
			t.FriendRequestCreated(ctx, &req)
		}

	case change.Collection == events.CollectionMessages && change.Action == events.ActionCreated:
		var msg model.Message
		if decode(change.After, &msg) {
			t.MessageCreated(ctx, &msg)
		}

	case change.Collection == events.CollectionPosts && change.Action == events.ActionCreated:
		var post model.Post
		if decode(change.After, &post) {
			t.PostCreated(ctx, &post)
		}

	case change.Collection == events.CollectionPosts && change.Action == events.ActionUpdated:
		var before, after model.Post
		if decode(change.Before, &before) && decode(change.After, &after) {
			t.PostLiked(ctx, &before, &after)
		}

	case change.Collection == events.CollectionComments && change.Action == events.ActionCreated:
		var comment model.Comment
		if decode(change.After, &comment) {
			t.CommentCreated(ctx, &comment)
		}

	case change.Collection == events.CollectionEvents && change.Action == events.ActionUpdated:
		var before, after model.Event
		if decode(change.Before, &before) && decode(change.After, &after) {
			t.EventInvited(ctx, &before, &after)
			t.EventRSVPed(ctx, &before, &after)
		}

	case change.Collection == events.CollectionMailQueue && change.Action == events.ActionCreated:
		var entry model.MailQueueEntry
		if decode(change.After, &entry) {
			t.mail.Process(ctx, &entry)
		}
	}
}

// FriendRequestCreated notifies the addressee of a new pending
// request.
func (t *Triggers) FriendRequestCreated(ctx context.Context, req *model.FriendRequest) {
	sender, err := t.users.GetByID(ctx, req.FromUserID)
	if err != nil {
		log.Printf("Sender %s not found for friend request %s: %v", req.FromUserID, req.ID, err)
		return
	}
	t.notifier.Dispatch(ctx, service.NotificationInput{
		UserID:      req.ToUserID,
		Type:        model.NotificationFriendRequest,
		SenderID:    req.FromUserID,
		RelatedID:   req.ID,
		Message:     sender.Name + " sent you a friend request.",
		Title:       "New Friend Request",
		ClickAction: "/neighbors",
	})
}

// MessageCreated notifies the other conversation participant.
func (t *Triggers) MessageCreated(ctx context.Context, msg *model.Message) {
	conv, err := t.convs.GetByID(ctx, msg.ConversationID)
	if err != nil {
		log.Printf("Conversation %s not found for message %s: %v", msg.ConversationID, msg.ID, err)
		return
	}
	recipientID := conv.OtherParticipant(msg.SenderID)
	if recipientID == uuid.Nil {
		return
	}
	author, err := t.users.GetByID(ctx, msg.SenderID)
	if err != nil {
		log.Printf("Author %s not found for message %s: %v", msg.SenderID, msg.ID, err)
		return
	}
	t.notifier.Dispatch(ctx, service.NotificationInput{
		UserID:      recipientID,
		Type:        model.NotificationMessage,
		SenderID:    msg.SenderID,
		RelatedID:   msg.ConversationID,
		Message:     author.Name + ": " + truncate(msg.Text, 50) + "...",
		Title:       "New Message",
		ClickAction: "/messages?convId=" + msg.SenderID.String(),
	})
}

// PostCreated fans a post_update notification out to every neighbor
// in the author's local-government-area. Dispatches run concurrently
// and are individually failure-isolated; the handler waits for all of
// them but never aborts early on one failure.
func (t *Triggers) PostCreated(ctx context.Context, post *model.Post) {
	if post.LGA == "" {
		return
	}
	author, err := t.users.GetByID(ctx, post.UserID)
	if err != nil {
		log.Printf("Author %s not found for post %s: %v", post.UserID, post.ID, err)
		return
	}
	neighbors, err := t.users.ListByLGA(ctx, post.LGA, post.UserID)
	if err != nil {
		log.Printf("Error listing users in %s for post %s: %v", post.LGA, post.ID, err)
		return
	}

	message := author.Name + ` created a new post: "` + truncate(post.Text, 30) + `..."`

	var wg sync.WaitGroup
	for _, neighbor := range neighbors {
		wg.Add(1)
		go func(recipientID uuid.UUID) {
			defer wg.Done()
			t.notifier.Dispatch(ctx, service.NotificationInput{
				UserID:      recipientID,
				Type:        model.NotificationPostUpdate,
				SenderID:    post.UserID,
				RelatedID:   post.ID,
				Message:     message,
				Title:       "New Post in Your Neighborhood",
				ClickAction: "/home",
			})
		}(neighbor.ID)
	}
	wg.Wait()
}

// CommentCreated notifies the post author, unless they commented on
// their own post.
func (t *Triggers) CommentCreated(ctx context.Context, comment *model.Comment) {
	post, err := t.posts.GetByID(ctx, comment.PostID)
	if err != nil {
		log.Printf("Post %s not found for comment %s: %v", comment.PostID, comment.ID, err)
		return
	}
	if post.UserID == comment.UserID {
		return
	}
	author, err := t.users.GetByID(ctx, comment.UserID)
	if err != nil {
		log.Printf("Commenter %s not found for comment %s: %v", comment.UserID, comment.ID, err)
		return
	}
	t.notifier.Dispatch(ctx, service.NotificationInput{
		UserID:      post.UserID,
		Type:        model.NotificationComment,
		SenderID:    comment.UserID,
		RelatedID:   post.ID,
		Message:     author.Name + " commented on your post.",
		Title:       "New Comment",
		ClickAction: "/posts/" + post.ID.String(),
	})
}

// PostLiked notifies the post author about every newly added liker,
// skipping self-likes. New likers are re-derived from the before and
// after snapshots because update delivery is not strictly ordered.
func (t *Triggers) PostLiked(ctx context.Context, before, after *model.Post) {
	for _, likerID := range newMembers(before.LikedBy, after.LikedBy) {
		if likerID == after.UserID {
			continue
		}
		liker, err := t.users.GetByID(ctx, likerID)
		if err != nil {
			log.Printf("Liker %s not found for post %s: %v", likerID, after.ID, err)
			continue
		}
		t.notifier.Dispatch(ctx, service.NotificationInput{
			UserID:      after.UserID,
			Type:        model.NotificationPostLike,
			SenderID:    likerID,
			RelatedID:   after.ID,
			Message:     liker.Name + " liked your post.",
			Title:       "New Like",
			ClickAction: "/posts/" + after.ID.String(),
		})
	}
}

// EventInvited notifies every newly invited user.
func (t *Triggers) EventInvited(ctx context.Context, before, after *model.Event) {
	invitees := newMembers(before.Invited, after.Invited)
	if len(invitees) == 0 {
		return
	}
	creator, err := t.users.GetByID(ctx, after.AuthorID)
	if err != nil {
		log.Printf("Creator %s not found for event %s: %v", after.AuthorID, after.ID, err)
		return
	}
	for _, inviteeID := range invitees {
		t.notifier.Dispatch(ctx, service.NotificationInput{
			UserID:      inviteeID,
			Type:        model.NotificationEventInvite,
			SenderID:    after.AuthorID,
			RelatedID:   after.ID,
			Message:     creator.Name + ` invited you to the event: "` + after.Title + `"`,
			Title:       "New Event Invitation",
			ClickAction: "/events",
		})
	}
}

// EventRSVPed enqueues a confirmation email for every new attendee
// with a known email address. No push notification is sent for RSVPs.
func (t *Triggers) EventRSVPed(ctx context.Context, before, after *model.Event) {
	for _, attendeeID := range newMembers(before.Attendees, after.Attendees) {
		attendee, err := t.users.GetByID(ctx, attendeeID)
		if err != nil {
			log.Printf("Attendee %s not found for event %s: %v", attendeeID, after.ID, err)
			continue
		}
		if attendee.Email == "" {
			log.Printf("Attendee %s has no email, skipping confirmation for event %s", attendeeID, after.ID)
			continue
		}

		entry := &model.MailQueueEntry{
			ToEmail:  attendee.Email,
			Template: model.TemplateEventConfirmation,
			Data: map[string]string{
				"name":     after.Title,
				"date":     after.Date,
				"time":     after.Time,
				"location": after.Location,
				"url":      after.URL,
			},
		}
		if err := t.mailbox.Enqueue(ctx, entry); err != nil {
			log.Printf("Error enqueuing confirmation mail for event %s: %v", after.ID, err)
			continue
		}
		t.bus.Publish(ctx, events.Created(entry.ID, events.CollectionMailQueue, entry))
	}
}

// newMembers returns the entries of after that are absent from
// before, or nil when the set did not grow.
func newMembers(before, after []uuid.UUID) []uuid.UUID {
	if len(after) <= len(before) {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(before))
	for _, id := range before {
		seen[id] = struct{}{}
	}
	var added []uuid.UUID
	for _, id := range after {
		if _, ok := seen[id]; !ok {
			added = append(added, id)
		}
	}
	return added
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func decode(raw json.RawMessage, v any) bool {
	if len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("Error decoding change payload: %v", err)
		return false
	}
	return true
}
