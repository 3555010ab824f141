// internal/service/library.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vchartered/backend/internal/activitylog"
	"github.com/vchartered/backend/internal/ai"
	"github.com/vchartered/backend/internal/domain/exam"
)

// LibraryService produces structured revision notes for a syllabus topic.
type LibraryService struct {
	gateway  ai.Gateway
	activity *activitylog.Service
}

func NewLibraryService(g ai.Gateway, al *activitylog.Service) *LibraryService {
	return &LibraryService{gateway: g, activity: al}
}

func (s *LibraryService) Notes(ctx context.Context, email, level, subject, topic string) (string, error) {
	if topic == "" {
		return "", errors.New("topic is required")
	}
	if !exam.ValidLevel(level) {
		return "", fmt.Errorf("unknown level %q", level)
	}
	if !exam.ValidSubject(exam.Level(level), subject) {
		return "", fmt.Errorf("unknown subject %q for %s", subject, level)
	}

	prompt := fmt.Sprintf(
		"Create revision notes for %s %s - %s. Use clear headings, bullet points, and highlight exam-relevant definitions and formulas.",
		level, subject, topic,
	)

	notes, err := s.gateway.Generate(ctx, prompt, nil)
	if err != nil {
		return "", err
	}

	s.activity.Log(email, "Generated Notes", topic)
	return notes, nil
}
