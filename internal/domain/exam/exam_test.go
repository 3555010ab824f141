package exam_test

import (
	"testing"

	"github.com/vchartered/backend/internal/domain/exam"
)

func TestSubjects(t *testing.T) {
	if len(exam.Subjects(exam.LevelFinal)) != 6 {
		t.Errorf("expected 6 final subjects, got %d", len(exam.Subjects(exam.LevelFinal)))
	}
	if len(exam.Subjects(exam.LevelInter)) != 6 {
		t.Errorf("expected 6 inter subjects, got %d", len(exam.Subjects(exam.LevelInter)))
	}
}

func TestValidSubject(t *testing.T) {
	if !exam.ValidSubject(exam.LevelFinal, "Direct Tax") {
		t.Error("expected Direct Tax to be a CA Final subject")
	}
	if exam.ValidSubject(exam.LevelFinal, "Costing") {
		t.Error("Costing is a CA Inter subject, not Final")
	}
	if exam.ValidSubject(exam.LevelInter, "made up") {
		t.Error("expected unknown subject to be invalid")
	}
}

func TestValidLevelAndDifficulty(t *testing.T) {
	if !exam.ValidLevel("CA Final") || !exam.ValidLevel("CA Inter") {
		t.Error("expected both course levels to be valid")
	}
	if exam.ValidLevel("CA Foundation") {
		t.Error("expected unknown level to be invalid")
	}
	if !exam.ValidDifficulty("Medium") || !exam.ValidDifficulty("Hard") {
		t.Error("expected Medium and Hard to be valid")
	}
	if exam.ValidDifficulty("Easy") {
		t.Error("expected Easy to be invalid")
	}
}
