package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/mocks"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
)

func confirmationEntry() *model.MailQueueEntry {
	return &model.MailQueueEntry{
		ID:       uuid.New(),
		ToEmail:  "ada@yrdly.local",
		Template: model.TemplateEventConfirmation,
		Data: map[string]string{
			"name":     "Ikeja Cleanup",
			"date":     "2026-09-12",
			"time":     "10:00",
			"location": "Ikeja City Mall",
			"url":      "https://yrdly.app/events/cleanup",
		},
	}
}

func TestProcess_SendsAndDeletes(t *testing.T) {
	entry := confirmationEntry()
	queue := new(mocks.MockMailQueueStore)
	queue.On("Delete", mock.Anything, entry.ID).Return(nil)
	sender := new(mocks.MockMailSender)
	sender.On("Send", "ada@yrdly.local", mock.Anything, mock.Anything).Return(nil)

	NewMailService(queue, sender).Process(context.Background(), entry)

	queue.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestProcess_UnknownTemplateDiscardsWithoutSending(t *testing.T) {
	entry := confirmationEntry()
	entry.Template = "weeklyDigest"
	queue := new(mocks.MockMailQueueStore)
	queue.On("Delete", mock.Anything, entry.ID).Return(nil)
	sender := new(mocks.MockMailSender)

	NewMailService(queue, sender).Process(context.Background(), entry)

	queue.AssertExpectations(t)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_SendFailureLeavesEntry(t *testing.T) {
	entry := confirmationEntry()
	queue := new(mocks.MockMailQueueStore)
	sender := new(mocks.MockMailSender)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp unreachable"))

	NewMailService(queue, sender).Process(context.Background(), entry)

	queue.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSweep_DrainsQueue(t *testing.T) {
	first := confirmationEntry()
	second := confirmationEntry()
	queue := new(mocks.MockMailQueueStore)
	queue.On("ListPending", mock.Anything, 100).Return([]model.MailQueueEntry{*first, *second}, nil)
	queue.On("Delete", mock.Anything, first.ID).Return(nil)
	queue.On("Delete", mock.Anything, second.ID).Return(nil)
	sender := new(mocks.MockMailSender)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	NewMailService(queue, sender).Sweep(context.Background())

	queue.AssertExpectations(t)
	sender.AssertExpectations(t)
}
