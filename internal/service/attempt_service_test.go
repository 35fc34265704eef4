package service

import (
	"testing"

	"github.com/lshigami/Lorikeets/internal/apperr"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/model"
)

func TestValidateBulkAnswerSet(t *testing.T) {
	questions := []model.Question{{ID: 1}, {ID: 2}, {ID: 3}}

	tests := []struct {
		name    string
		answers []dto.BulkAnswerItemDTO
		wantOK  bool
	}{
		{
			name: "one answer per question",
			answers: []dto.BulkAnswerItemDTO{
				{QuestionID: 1}, {QuestionID: 2}, {QuestionID: 3},
			},
			wantOK: true,
		},
		{
			name: "order does not matter",
			answers: []dto.BulkAnswerItemDTO{
				{QuestionID: 3}, {QuestionID: 1}, {QuestionID: 2},
			},
			wantOK: true,
		},
		{
			name:    "missing answers",
			answers: []dto.BulkAnswerItemDTO{{QuestionID: 1}, {QuestionID: 2}},
			wantOK:  false,
		},
		{
			name: "foreign question",
			answers: []dto.BulkAnswerItemDTO{
				{QuestionID: 1}, {QuestionID: 2}, {QuestionID: 99},
			},
			wantOK: false,
		},
		{
			name: "duplicate question",
			answers: []dto.BulkAnswerItemDTO{
				{QuestionID: 1}, {QuestionID: 2}, {QuestionID: 2},
			},
			wantOK: false,
		},
		{
			name:    "empty submission",
			answers: nil,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBulkAnswerSet(questions, tt.answers)
			if tt.wantOK && err != nil {
				t.Errorf("validateBulkAnswerSet() error = %v, want nil", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("validateBulkAnswerSet() error = nil, want invalid state error")
				}
				if !apperr.IsInvalidState(err) {
					t.Errorf("validateBulkAnswerSet() error = %v, want invalid state kind", err)
				}
			}
		})
	}
}
