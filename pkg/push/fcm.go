package push

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client sends web-push notifications through Firebase Cloud
// Messaging. A nil Client is valid and drops every send, so the rest
// of the app never has to care whether push is configured.
type Client struct {
	messaging *messaging.Client
}

// NewClient initializes FCM from a service-account credentials file.
// Missing or broken credentials disable push instead of blocking
// server startup.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	if credentialsFile == "" {
		log.Println("⚠️ Firebase credentials not provided, push notifications disabled")
		return nil, nil
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Printf("⚠️ Failed to initialize Firebase app: %v (push notifications disabled)", err)
		return nil, nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to get messaging client: %v", err)
		return nil, nil
	}

	log.Println("✅ Firebase FCM initialized")
	return &Client{messaging: client}, nil
}

// Send delivers one web-push message to a registration token. The
// link is carried as the webpush fcm_options link so the browser opens
// the right screen on click.
func (c *Client) Send(ctx context.Context, token, title, body, link string) error {
	if c == nil || c.messaging == nil {
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Webpush: &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: link,
			},
		},
	}

	if _, err := c.messaging.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}
	return nil
}
