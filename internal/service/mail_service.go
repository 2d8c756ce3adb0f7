package service

import (
	"context"
	"errors"
	"log"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/mailer"
)

// MailSender delivers one rendered email. Satisfied by mailer.Mailer.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// MailService drains the outbound mail queue. Each entry is rendered
// from its named template and sent; the entry is deleted on success.
// An unknown template is permanently undeliverable, so the entry is
// deleted without a send. A failed send leaves the entry in place for
// external redelivery.
type MailService struct {
	queue  repository.MailQueueStore
	sender MailSender
}

func NewMailService(queue repository.MailQueueStore, sender MailSender) *MailService {
	return &MailService{queue: queue, sender: sender}
}

// Process handles one queue entry end to end.
func (s *MailService) Process(ctx context.Context, entry *model.MailQueueEntry) {
	subject, body, err := s.render(entry)
	if err != nil {
		var unknown unknownTemplateError
		if errors.As(err, &unknown) {
			log.Printf("⚠️ Unknown mail template %q for entry %s, discarding", entry.Template, entry.ID)
			if err := s.queue.Delete(ctx, entry.ID); err != nil {
				log.Printf("Error deleting mail entry %s: %v", entry.ID, err)
			}
			return
		}
		log.Printf("Error rendering mail entry %s: %v", entry.ID, err)
		return
	}

	if err := s.sender.Send(entry.ToEmail, subject, body); err != nil {
		// Transient failure: keep the entry so a later sweep can
		// redeliver it.
		log.Printf("Error sending mail entry %s to %s: %v", entry.ID, entry.ToEmail, err)
		return
	}

	if err := s.queue.Delete(ctx, entry.ID); err != nil {
		log.Printf("Error deleting mail entry %s after send: %v", entry.ID, err)
	}
}

// Sweep processes every entry still in the queue. Run at startup to
// pick up mail left behind by earlier send failures.
func (s *MailService) Sweep(ctx context.Context) {
	entries, err := s.queue.ListPending(ctx, 100)
	if err != nil {
		log.Printf("Error listing pending mail: %v", err)
		return
	}
	for i := range entries {
		s.Process(ctx, &entries[i])
	}
}

type unknownTemplateError struct{ name string }

func (e unknownTemplateError) Error() string { return "unknown mail template: " + e.name }

func (s *MailService) render(entry *model.MailQueueEntry) (string, string, error) {
	switch entry.Template {
	case model.TemplateEventConfirmation:
		return mailer.RenderEventConfirmation(entry.Data)
	default:
		return "", "", unknownTemplateError{name: entry.Template}
	}
}
