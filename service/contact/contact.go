package contact

import (
	"context"
	"fmt"
	"strings"

	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"
)

type ContactService interface {
	Submit(ctx context.Context, input model.ContactInput) (*model.ContactMessage, error)
	List(ctx context.Context, pagination model.Pagination) ([]model.ContactMessage, int64, error)
}

type Notifier interface {
	Notify(to, subject, body string)
}

type DefaultContactService struct {
	Messages database.ContactRepository
	Notifier Notifier
	// Operator receives a copy of every message. Empty disables the copy.
	Operator string
}

func NewContactService(messages database.ContactRepository, notifier Notifier, operator string) *DefaultContactService {
	return &DefaultContactService{Messages: messages, Notifier: notifier, Operator: operator}
}

func (s *DefaultContactService) Submit(ctx context.Context, input model.ContactInput) (*model.ContactMessage, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if strings.TrimSpace(input.Message) == "" {
		input.Message = ""
	}
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{Name: input.Name, Email: input.Email, Message: input.Message}
	if err := s.Messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.Notifier != nil && s.Operator != "" {
		s.Notifier.Notify(s.Operator,
			"New Contact Message from "+msg.Name,
			fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", msg.Name, msg.Email, msg.Message))
	}
	return msg, nil
}

func (s *DefaultContactService) List(ctx context.Context, pagination model.Pagination) ([]model.ContactMessage, int64, error) {
	total, err := s.Messages.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := 0, 0
	if pagination.Limit != nil && *pagination.Limit > 0 && pagination.Page != nil && *pagination.Page >= 1 {
		limit = *pagination.Limit
		offset = limit * (*pagination.Page - 1)
	}
	messages, err := s.Messages.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
