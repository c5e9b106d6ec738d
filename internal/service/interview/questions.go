package interview

import (
	"context"
	"log/slog"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// AddQuestion appends a question to a stage.
func (s *Service) AddQuestion(ctx context.Context, in QuestionInput) (*domain.InterviewStage, error) {
	if err := in.validate(false, true); err != nil {
		return nil, err
	}

	qid := s.newID()
	stage, err := s.mutate(ctx, in.StageID, func(stage *domain.InterviewStage) error {
		answer := ""
		if in.Answer != nil {
			answer = *in.Answer
		}
		_, err := stage.AddQuestion(qid, *in.Title, answer, s.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question added",
		slog.String("stage_id", in.StageID.String()),
		slog.String("question_id", qid.String()),
	)
	return stage, nil
}

// UpdateQuestion edits a question's title or answer.
func (s *Service) UpdateQuestion(ctx context.Context, in QuestionInput) (*domain.InterviewStage, error) {
	if err := in.validate(true, false); err != nil {
		return nil, err
	}

	return s.mutate(ctx, in.StageID, func(stage *domain.InterviewStage) error {
		_, err := stage.UpdateQuestion(in.QuestionID, in.Title, in.Answer, s.clock.Now())
		return err
	})
}

// RemoveQuestion deletes a question from a stage.
func (s *Service) RemoveQuestion(ctx context.Context, in QuestionInput) (*domain.InterviewStage, error) {
	if err := in.validate(true, false); err != nil {
		return nil, err
	}

	stage, err := s.mutate(ctx, in.StageID, func(stage *domain.InterviewStage) error {
		return stage.RemoveQuestion(in.QuestionID, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question removed",
		slog.String("stage_id", in.StageID.String()),
		slog.String("question_id", in.QuestionID.String()),
	)
	return stage, nil
}
