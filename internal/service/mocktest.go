// internal/service/mocktest.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"sync"

	"github.com/vchartered/backend/internal/activitylog"
	"github.com/vchartered/backend/internal/ai"
	"github.com/vchartered/backend/internal/domain/exam"
	"github.com/vchartered/backend/internal/scoreboard"
)

// ErrNoPaper is returned when answers arrive without a generated paper to
// grade them against.
var ErrNoPaper = errors.New("no generated paper")

// MockTestService generates exam papers and grades uploaded answer sheets.
// The generated paper is the only state it holds: one transient artifact
// per user, kept until submission or reset.
type MockTestService struct {
	gateway  ai.Gateway
	scores   *scoreboard.Service
	activity *activitylog.Service
	logger   *slog.Logger

	mu     sync.Mutex
	papers map[string]generatedPaper // email → current paper
}

type generatedPaper struct {
	Text    string
	Subject string
}

func NewMockTestService(g ai.Gateway, sc *scoreboard.Service, al *activitylog.Service, logger *slog.Logger) *MockTestService {
	return &MockTestService{
		gateway:  g,
		scores:   sc,
		activity: al,
		logger:   logger,
		papers:   make(map[string]generatedPaper),
	}
}

// GeneratePaper asks the model for a fresh 10-question paper and stores it
// as the user's current artifact.
func (s *MockTestService) GeneratePaper(ctx context.Context, email, level, subject, difficulty string) (string, error) {
	if !exam.ValidLevel(level) {
		return "", fmt.Errorf("unknown level %q", level)
	}
	if !exam.ValidSubject(exam.Level(level), subject) {
		return "", fmt.Errorf("unknown subject %q for %s", subject, level)
	}
	if !exam.ValidDifficulty(difficulty) {
		return "", fmt.Errorf("unknown difficulty %q", difficulty)
	}

	prompt := fmt.Sprintf(
		"Create a 10 question mock test for %s %s (%s difficulty). Number the questions. Do not include answers.",
		level, subject, difficulty,
	)

	text, err := s.gateway.Generate(ctx, prompt, nil)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.papers[email] = generatedPaper{Text: text, Subject: subject}
	s.mu.Unlock()

	s.activity.Log(email, "Generated Test", subject)
	return text, nil
}

// CurrentPaper returns the user's stored paper, if any.
func (s *MockTestService) CurrentPaper(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.papers[email]
	return p.Text, ok
}

// SubmitAnswers grades uploaded answer-sheet images against the stored
// paper in a single model call and records the score the model awards.
// Scoring policy: the grading prompt asks for a final "MARKS: <n>/100"
// line; when the model omits it the feedback is still returned but no
// score is recorded.
func (s *MockTestService) SubmitAnswers(ctx context.Context, email string, images []ai.Image) (string, int, bool, error) {
	s.mu.Lock()
	paper, ok := s.papers[email]
	s.mu.Unlock()
	if !ok {
		return "", 0, false, ErrNoPaper
	}
	if len(images) == 0 {
		return "", 0, false, errors.New("at least one answer image is required")
	}

	prompt := fmt.Sprintf(
		"You are a strict %s examiner. Below is the question paper; the attached images are the student's handwritten answers. "+
			"Check the paper strictly, point out mistakes per question, and end your reply with a single line: MARKS: <n>/100\n\nQUESTION PAPER:\n%s",
		paper.Subject, paper.Text,
	)

	feedback, err := s.gateway.Generate(ctx, prompt, images)
	if err != nil {
		return "", 0, false, err
	}

	score, scored := parseMarks(feedback)
	if scored {
		if err := s.scores.RecordScore(email, paper.Subject, score); err != nil {
			s.logger.Error("failed to record test score", "error", err)
		}
	} else {
		s.logger.Debug("grading reply had no marks line", "subject", paper.Subject)
	}

	s.activity.Log(email, "Submitted Test", paper.Subject)
	return feedback, score, scored, nil
}

// Reset discards the user's current paper.
func (s *MockTestService) Reset(email string) {
	s.mu.Lock()
	delete(s.papers, email)
	s.mu.Unlock()
}

var marksRe = regexp.MustCompile(`MARKS:\s*(\d{1,3})\s*/\s*100`)

// parseMarks pulls the awarded score out of a grading reply. The last
// marks line wins in case the model quoted the instruction back.
func parseMarks(feedback string) (int, bool) {
	matches := marksRe.FindAllStringSubmatch(feedback, -1)
	if len(matches) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil || n > 100 {
		return 0, false
	}
	return n, true
}
