package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

type postgresSessionRepository struct {
	db *gorm.DB
}

func NewPostgresSessionRepository(db *gorm.DB) SessionRepository {
	return &postgresSessionRepository{db: db}
}

// Get implements SessionRepository.
func (p *postgresSessionRepository) Get(id string) (*models.Session, error) {
	var record models.SessionRecord
	if err := p.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}

		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return record.ToSession(), nil
}

// Save implements SessionRepository.
func (p *postgresSessionRepository) Save(session *models.Session) error {
	record := models.NewSessionRecord(session)
	if err := p.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Delete implements SessionRepository.
func (p *postgresSessionRepository) Delete(id string) error {
	if err := p.db.Where("id = ?", id).Delete(&models.SessionRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
