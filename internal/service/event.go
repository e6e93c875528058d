package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/kiddovents/kiddovents/internal/service/ports"
)

type EventService struct {
	repo     ports.EventRepo
	validate *validator.Validate
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{
		repo:     repo,
		validate: newValidator(),
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)
	if input.ImageURL != nil && strings.TrimSpace(*input.ImageURL) == "" {
		input.ImageURL = nil
	}

	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date.UTC(),
		Location:    input.Location,
		ImageURL:    input.ImageURL,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
