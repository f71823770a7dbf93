package models

import "time"

// SessionRecord is the persisted form of a Session.
type SessionRecord struct {
	ID              string        `gorm:"type:text;primary_key" json:"id"`
	Mode            Mode          `gorm:"type:text;not null;default:'job_seeker'" json:"mode"`
	CandidateName   string        `gorm:"type:text" json:"candidate_name"`
	ResumeText      string        `gorm:"type:text" json:"resume_text"`
	CoverLetterText string        `gorm:"type:text" json:"cover_letter_text"`
	JobDescription  string        `gorm:"type:text" json:"job_description"`
	ChatHistory     []ChatMessage `gorm:"type:jsonb;serializer:json" json:"chat_history"`
	LastATSResult   *ATSResult    `gorm:"type:jsonb;serializer:json" json:"last_ats_result,omitempty"`
	CreatedAt       time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (SessionRecord) TableName() string {
	return "sessions"
}

func NewSessionRecord(s *Session) *SessionRecord {
	return &SessionRecord{
		ID:              s.ID,
		Mode:            s.Mode,
		CandidateName:   s.CandidateName,
		ResumeText:      s.ResumeText,
		CoverLetterText: s.CoverLetterText,
		JobDescription:  s.JobDescription,
		ChatHistory:     s.History(),
		LastATSResult:   s.LastATSResult,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *SessionRecord) ToSession() *Session {
	history := r.ChatHistory
	if history == nil {
		history = []ChatMessage{}
	}
	return &Session{
		ID:              r.ID,
		Mode:            r.Mode,
		CandidateName:   r.CandidateName,
		ResumeText:      r.ResumeText,
		CoverLetterText: r.CoverLetterText,
		JobDescription:  r.JobDescription,
		ChatHistory:     history,
		LastATSResult:   r.LastATSResult,
		UpdatedAt:       r.UpdatedAt,
	}
}
