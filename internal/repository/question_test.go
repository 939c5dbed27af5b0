package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

func TestEmbeddedQuestionRepository(t *testing.T) {
	repo, err := NewEmbeddedQuestionRepository()
	if err != nil {
		t.Fatalf("NewEmbeddedQuestionRepository: %v", err)
	}

	bank, err := repo.GetBank(context.Background())
	if err != nil {
		t.Fatalf("GetBank: %v", err)
	}

	if bank.Title != "ReactJS Quiz" {
		t.Errorf("Title = %q", bank.Title)
	}
	if bank.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", bank.Len())
	}

	first := bank.At(0)
	if first.ID != "q1" || first.Prompt != "What does JSX stand for?" || first.CorrectAnswer != "JavaScript XML" {
		t.Errorf("first question = %+v", first)
	}
	if len(first.Options) != 4 {
		t.Errorf("first question has %d options, want 4", len(first.Options))
	}

	last := bank.At(9)
	if last.ID != "q10" || last.CorrectAnswer != "It uniquely identifies elements in a list" {
		t.Errorf("last question = %+v", last)
	}
}

func TestFileQuestionRepository(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
		wantLen int
	}{
		{
			name:    "valid",
			content: `{"title":"T","questions":[{"q":"q1","question":"?","options":["a","b"],"correctAnswer":"b"}]}`,
			wantLen: 1,
		},
		{
			name:    "empty bank",
			content: `{"title":"T","questions":[]}`,
			wantErr: entities.ErrEmptyBank,
		},
		{
			name:    "correct answer not an option",
			content: `{"questions":[{"q":"q1","question":"?","options":["a"],"correctAnswer":"b"}]}`,
			wantErr: entities.ErrInvalidQuestion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("write file: %v", err)
			}

			repo, err := NewFileQuestionRepository(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFileQuestionRepository: %v", err)
			}

			bank, _ := repo.GetBank(context.Background())
			if bank.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", bank.Len(), tt.wantLen)
			}
		})
	}
}

func TestFileQuestionRepositoryErrors(t *testing.T) {
	if _, err := NewFileQuestionRepository(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := NewFileQuestionRepository(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
