package database

import (
	"context"
	"database/sql"

	"github.com/bloomafter40/platform/internal/entity"
)

type AssessmentRepository struct {
	DB *sql.DB
}

func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(ctx context.Context, assessment *entity.HealthAssessment) error {
	query := `
		INSERT INTO health_assessments (id, user_id, assessment_type, score, answers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var answers any
	if len(assessment.Answers) > 0 {
		answers = []byte(assessment.Answers)
	}

	_, err := r.DB.ExecContext(ctx, query,
		assessment.ID, assessment.UserID, assessment.AssessmentType, assessment.Score, answers, assessment.CreatedAt,
	)
	return err
}

func (r *AssessmentRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.HealthAssessment, error) {
	query := `
		SELECT id, user_id, assessment_type, score, answers, created_at
		FROM health_assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []*entity.HealthAssessment
	for rows.Next() {
		assessment := &entity.HealthAssessment{}
		var answers []byte
		if err := rows.Scan(&assessment.ID, &assessment.UserID, &assessment.AssessmentType, &assessment.Score, &answers, &assessment.CreatedAt); err != nil {
			return nil, err
		}
		assessment.Answers = answers
		assessments = append(assessments, assessment)
	}

	return assessments, rows.Err()
}
