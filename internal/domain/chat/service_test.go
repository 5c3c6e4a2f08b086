package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
	apperrors "github.com/yanqian/culture-compass/pkg/errors"
)

type stubAdvisor struct {
	advisor.Service
	adviceFn func(context.Context, advisor.AdviceRequest) advisor.AdviceResponse
}

func (s *stubAdvisor) TravelAdvice(ctx context.Context, req advisor.AdviceRequest) advisor.AdviceResponse {
	return s.adviceFn(ctx, req)
}

type stubRepo struct {
	recordFn func(ctx context.Context, userID int64, message, response string) (Message, error)
	listFn   func(ctx context.Context, userID int64) ([]Message, error)
}

func (s *stubRepo) Record(ctx context.Context, userID int64, message, response string) (Message, error) {
	return s.recordFn(ctx, userID, message, response)
}

func (s *stubRepo) ListByUser(ctx context.Context, userID int64) ([]Message, error) {
	return s.listFn(ctx, userID)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendRecordsExchange(t *testing.T) {
	var got advisor.AdviceRequest
	adv := &stubAdvisor{adviceFn: func(_ context.Context, req advisor.AdviceRequest) advisor.AdviceResponse {
		got = req
		return advisor.AdviceResponse{Response: "Visit at dawn", Suggestions: []string{"Go early"}, CulturalTips: []string{}}
	}}
	var recordedUser int64
	repo := &stubRepo{recordFn: func(_ context.Context, userID int64, message, response string) (Message, error) {
		recordedUser = userID
		require.Equal(t, "When should I visit Fushimi Inari?", message)
		require.Equal(t, "Visit at dawn", response)
		return Message{ID: 42, UserID: userID, Message: message, Response: response, Timestamp: time.Now()}, nil
	}}
	svc := NewService(adv, repo, newLogger())

	resp, err := svc.Send(context.Background(), Request{
		Message:     "  When should I visit Fushimi Inari?  ",
		Preferences: []string{"temples"},
		Destination: "Kyoto",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), resp.MessageID)
	require.Equal(t, "Visit at dawn", resp.Response)
	require.Equal(t, DefaultUserID, recordedUser)
	require.Equal(t, "Kyoto", got.Destination)
	require.Equal(t, []string{"temples"}, got.Preferences)
}

func TestSendRejectsBlankMessage(t *testing.T) {
	svc := NewService(&stubAdvisor{}, &stubRepo{}, newLogger())

	_, err := svc.Send(context.Background(), Request{Message: "   "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestSendSurvivesRecordFailure(t *testing.T) {
	adv := &stubAdvisor{adviceFn: func(context.Context, advisor.AdviceRequest) advisor.AdviceResponse {
		return advisor.DegradedAdvice()
	}}
	repo := &stubRepo{recordFn: func(context.Context, int64, string, string) (Message, error) {
		return Message{}, errors.New("db down")
	}}
	svc := NewService(adv, repo, newLogger())

	resp, err := svc.Send(context.Background(), Request{UserID: 7, Message: "hello"})
	require.NoError(t, err)
	require.Zero(t, resp.MessageID)
	require.Equal(t, advisor.DegradedAdvice().Response, resp.Response)
}

func TestHistory(t *testing.T) {
	repo := &stubRepo{listFn: func(_ context.Context, userID int64) ([]Message, error) {
		if userID == 2 {
			return nil, errors.New("db down")
		}
		return nil, nil
	}}
	svc := NewService(&stubAdvisor{}, repo, newLogger())

	messages, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, messages)
	require.Empty(t, messages)

	_, err = svc.History(context.Background(), 2)
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))

	_, err = svc.History(context.Background(), 0)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
