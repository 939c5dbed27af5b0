package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/config"
	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

func TestLoadQuestions(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "go.json")
	err := os.WriteFile(valid, []byte(`{"title":"Go Quiz","questions":[
		{"q":"q1","question":"Zero value of a map?","options":["nil","empty map"],"correctAnswer":"nil"}
	]}`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	broken := filepath.Join(dir, "broken.json")
	err = os.WriteFile(broken, []byte(`{"title":"Broken","questions":[
		{"q":"q1","question":"?","options":["a","b"],"correctAnswer":"c"}
	]}`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		questions config.Questions
		wantTitle string
		wantLen   int
		wantErr   error
	}{
		{name: "embedded", questions: config.Questions{Source: config.SourceEmbedded}, wantTitle: "ReactJS Quiz", wantLen: 10},
		{name: "file", questions: config.Questions{Source: config.SourceFile, Path: valid}, wantTitle: "Go Quiz", wantLen: 1},
		{name: "invalid file", questions: config.Questions{Source: config.SourceFile, Path: broken}, wantErr: entities.ErrInvalidQuestion},
		{name: "missing file", questions: config.Questions{Source: config.SourceFile, Path: filepath.Join(dir, "nope.json")}, wantErr: os.ErrNotExist},
		{name: "postgres without url", questions: config.Questions{Source: config.SourcePostgres, Bank: "react"}, wantErr: config.ErrMissingEnvironmentVariables},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Questions: tt.questions}

			repo, err := LoadQuestions(context.Background(), cfg, zap.NewNop())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadQuestions error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadQuestions: %v", err)
			}

			bank, _ := repo.GetBank(context.Background())
			if bank.Title != tt.wantTitle || bank.Len() != tt.wantLen {
				t.Errorf("bank = %q with %d questions, want %q with %d", bank.Title, bank.Len(), tt.wantTitle, tt.wantLen)
			}
		})
	}
}
