// internal/service/checker.go
package service

import (
	"context"
	"errors"

	"github.com/vchartered/backend/internal/activitylog"
	"github.com/vchartered/backend/internal/ai"
)

const checkerPrompt = "You are a strict CA examiner. Read the question from the first image and " +
	"check the answer in the following image(s) strictly. Point out every mistake, " +
	"suggest the ideal answer, and state how many marks out of the question's total you would award."

// CheckerService grades a photographed answer against a photographed
// question in a single model call. It holds no state.
type CheckerService struct {
	gateway  ai.Gateway
	activity *activitylog.Service
}

func NewCheckerService(g ai.Gateway, al *activitylog.Service) *CheckerService {
	return &CheckerService{gateway: g, activity: al}
}

// Check sends the question image and answer image (or an answer alone)
// for strict grading and returns the examiner feedback.
func (s *CheckerService) Check(ctx context.Context, email string, images []ai.Image) (string, error) {
	if len(images) == 0 || len(images) > 2 {
		return "", errors.New("upload a question and an answer image")
	}

	feedback, err := s.gateway.Generate(ctx, checkerPrompt, images)
	if err != nil {
		return "", err
	}

	s.activity.Log(email, "Checked Answer", "")
	return feedback, nil
}
