package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
	apperrors "github.com/yanqian/culture-compass/pkg/errors"
)

// Service runs chat turns through the advisor and keeps a transcript.
type Service interface {
	Send(ctx context.Context, req Request) (Response, error)
	History(ctx context.Context, userID int64) ([]Message, error)
}

type service struct {
	advisor advisor.Service
	repo    Repository
	logger  *slog.Logger
}

// NewService wires up the chat domain.
func NewService(adv advisor.Service, repo Repository, logger *slog.Logger) Service {
	return &service{
		advisor: adv,
		repo:    repo,
		logger:  logger.With("component", "chat.service"),
	}
}

func (s *service) Send(ctx context.Context, req Request) (Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "message is required", nil)
	}
	userID := req.UserID
	if userID <= 0 {
		userID = DefaultUserID
	}

	advice := s.advisor.TravelAdvice(ctx, advisor.AdviceRequest{
		Message:     message,
		Preferences: req.Preferences,
		Destination: req.Destination,
		Itinerary:   req.Itinerary,
	})

	resp := Response{AdviceResponse: advice}
	stored, err := s.repo.Record(ctx, userID, message, advice.Response)
	if err != nil {
		s.logger.Warn("chat message record failed", "user_id", userID, "error", err)
		return resp, nil
	}
	resp.MessageID = stored.ID
	return resp, nil
}

func (s *service) History(ctx context.Context, userID int64) ([]Message, error) {
	if userID <= 0 {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "user id must be positive", nil)
	}
	messages, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to load chat history", err)
	}
	if messages == nil {
		messages = []Message{}
	}
	return messages, nil
}
