package store

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/trivia-api/backend/internal/domain/category"
	"github.com/trivia-api/backend/internal/domain/question"
)

type categoryRecord struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false"`
	Type string `gorm:"type:text;not null"`
}

func (categoryRecord) TableName() string { return "categories" }

type questionRecord struct {
	ID         int    `gorm:"primaryKey"`
	Question   string `gorm:"type:text;not null"`
	Answer     string `gorm:"type:text;not null"`
	Difficulty int    `gorm:"not null"`
	Category   int    `gorm:"not null;index"`
}

func (questionRecord) TableName() string { return "questions" }

func (r *questionRecord) toDomain() *question.Question {
	return &question.Question{
		ID:         r.ID,
		Question:   r.Question,
		Answer:     r.Answer,
		Difficulty: r.Difficulty,
		Category:   r.Category,
	}
}

// PostgresStore implements Store on PostgreSQL through gorm.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&categoryRecord{}, &questionRecord{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) SaveCategory(ctx context.Context, cat *category.Category) error {
	rec := categoryRecord{ID: cat.ID, Type: cat.Type}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type"}),
		}).
		Create(&rec).Error
}

func (s *PostgresStore) GetCategory(ctx context.Context, id int) (*category.Category, error) {
	var rec categoryRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category.Category{ID: rec.ID, Type: rec.Type}, nil
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]*category.Category, error) {
	var recs []categoryRecord
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	categories := make([]*category.Category, len(recs))
	for i, rec := range recs {
		categories[i] = &category.Category{ID: rec.ID, Type: rec.Type}
	}
	return categories, nil
}

func (s *PostgresStore) AddQuestion(ctx context.Context, q *question.Question) error {
	rec := questionRecord{
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		return err
	}
	q.ID = rec.ID
	return nil
}

func (s *PostgresStore) GetQuestion(ctx context.Context, id int) (*question.Question, error) {
	var rec questionRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.toDomain(), nil
}

func (s *PostgresStore) ListQuestions(ctx context.Context) ([]*question.Question, error) {
	return s.findQuestions(s.db.WithContext(ctx))
}

func (s *PostgresStore) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]*question.Question, error) {
	return s.findQuestions(s.db.WithContext(ctx).Where("category = ?", categoryID))
}

func (s *PostgresStore) findQuestions(q *gorm.DB) ([]*question.Question, error) {
	var recs []questionRecord
	if err := q.Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	questions := make([]*question.Question, len(recs))
	for i := range recs {
		questions[i] = recs[i].toDomain()
	}
	return questions, nil
}

func (s *PostgresStore) DeleteQuestion(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&questionRecord{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
