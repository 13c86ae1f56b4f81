package content

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/domain"
)

func (s *Service) ListMessages(ctx context.Context) ([]domain.Message, error) {
	msgs, err := s.messages.List(ctx)
	if err != nil {
		return nil, storageErr("list messages", err)
	}
	return msgs, nil
}

// AddMessage stores a contact-form submission and notifies live listeners.
func (s *Service) AddMessage(ctx context.Context, req MessageRequest, submitterIP string) (*domain.Message, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = domain.DefaultMessageSubject
	}
	m := &domain.Message{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   subject,
		Body:      req.Message,
		IPAddress: submitterIP,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, storageErr("add message", err)
	}
	s.notifier.MessageCreated(*m)
	return m, nil
}

func (s *Service) DeleteMessage(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.messages.Delete(ctx, id); err != nil {
		return storageErr("delete message", err)
	}
	s.record(ctx, ActionMessageDelete, fmt.Sprintf("Deleted message ID: %d", id))
	return nil
}
