package models

import (
	"fmt"
	"time"
)

// Mode selects who the model plays in the conversation.
type Mode string

const (
	// ModeJobSeeker: the user is the candidate and the model interviews them.
	ModeJobSeeker Mode = "job_seeker"
	// ModeRecruiter: the user interviews and the model answers as the candidate.
	ModeRecruiter Mode = "hr_recruiter"
)

// Persona is the role the model adopts for a given Mode.
type Persona string

const (
	PersonaInterviewer Persona = "interviewer"
	PersonaCandidate   Persona = "candidate"
)

const DefaultCandidateName = "Candidate"

func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeJobSeeker, ModeRecruiter:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("unknown mode %q: expected %q or %q", value, ModeJobSeeker, ModeRecruiter)
	}
}

func (m Mode) Persona() Persona {
	if m == ModeRecruiter {
		return PersonaCandidate
	}
	return PersonaInterviewer
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is the mutable state of one conversation. The rendered system
// prompt is never stored in ChatHistory; it is prepended at call time.
type Session struct {
	ID              string        `json:"id"`
	Mode            Mode          `json:"mode"`
	CandidateName   string        `json:"candidate_name"`
	ResumeText      string        `json:"resume_text"`
	CoverLetterText string        `json:"cover_letter_text"`
	JobDescription  string        `json:"job_description"`
	ChatHistory     []ChatMessage `json:"chat_history"`
	LastATSResult   *ATSResult    `json:"last_ats_result,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func NewSession(id string) *Session {
	s := &Session{ID: id}
	s.Reset()
	return s
}

// Reset restores every field except the ID to its initial value.
func (s *Session) Reset() {
	s.Mode = ModeJobSeeker
	s.CandidateName = DefaultCandidateName
	s.ResumeText = ""
	s.CoverLetterText = ""
	s.JobDescription = ""
	s.ChatHistory = []ChatMessage{}
	s.LastATSResult = nil
	s.touch()
}

// SetMode switches persona and drops the conversation. Documents and the
// detected name are kept.
func (s *Session) SetMode(mode Mode) {
	s.Mode = mode
	s.ChatHistory = []ChatMessage{}
	s.touch()
}

func (s *Session) SetResume(text, candidateName string) {
	s.ResumeText = text
	s.CandidateName = candidateName
	s.touch()
}

func (s *Session) SetCoverLetter(text string) {
	s.CoverLetterText = text
	s.touch()
}

func (s *Session) SetJobDescription(text string) {
	s.JobDescription = text
	s.touch()
}

func (s *Session) SetATSResult(result *ATSResult) {
	s.LastATSResult = result
	s.touch()
}

func (s *Session) AppendTurn(role Role, content string) {
	s.ChatHistory = append(s.ChatHistory, ChatMessage{Role: role, Content: content})
	s.touch()
}

func (s *Session) ClearChat() {
	s.ChatHistory = []ChatMessage{}
	s.touch()
}

// History returns a copy of the conversation so callers cannot mutate it.
func (s *Session) History() []ChatMessage {
	out := make([]ChatMessage, len(s.ChatHistory))
	copy(out, s.ChatHistory)
	return out
}

func (s *Session) Clone() *Session {
	clone := *s
	clone.ChatHistory = s.History()
	if s.LastATSResult != nil {
		result := s.LastATSResult.Clone()
		clone.LastATSResult = &result
	}
	return &clone
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
