package repositories

import (
	"errors"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores sessions by their opaque id. Get returns a copy;
// changes are only visible to other callers after Save.
type SessionRepository interface {
	Get(id string) (*models.Session, error)
	Save(session *models.Session) error
	Delete(id string) error
}

// GetOrCreate loads the session or returns a fresh one with the same id.
func GetOrCreate(repo SessionRepository, id string) (*models.Session, error) {
	session, err := repo.Get(id)
	if errors.Is(err, ErrSessionNotFound) {
		return models.NewSession(id), nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}
