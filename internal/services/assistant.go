package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

const resumePreviewLen = 300

// AssistantService implements the user-facing operations on a session.
// Callers own the session and must not share it between goroutines.
type AssistantService interface {
	UploadResume(sess *models.Session, filePath string) (*models.UploadResumeResponse, error)
	UploadCoverLetter(sess *models.Session, filePath string) (string, error)
	SetJobDescription(sess *models.Session, text string) string
	SetMode(sess *models.Session, value string) (string, error)
	Chat(ctx context.Context, sess *models.Session, message string) (string, error)
	AnalyzeATS(ctx context.Context, sess *models.Session) (*models.ATSAnalysisResponse, error)
	ClearChat(sess *models.Session)
	Readiness(sess *models.Session) models.ReadinessResponse
	Export(sess *models.Session) ([]byte, error)
}

type assistantService struct {
	extractor DocumentExtractor
	evaluator EvaluatorService
	scorer    ATSScorer
}

func NewAssistantService(extractor DocumentExtractor, evaluator EvaluatorService, scorer ATSScorer) AssistantService {
	return &assistantService{
		extractor: extractor,
		evaluator: evaluator,
		scorer:    scorer,
	}
}

func (a *assistantService) UploadResume(sess *models.Session, filePath string) (*models.UploadResumeResponse, error) {
	if filePath == "" {
		return nil, ErrNoFile
	}

	text, err := a.extractor.ExtractText(filePath)
	if err != nil {
		log.Printf("❌ Resume extraction failed: %v", err)
		return nil, fmt.Errorf("error processing resume: %w", err)
	}

	name := GuessName(text)
	sess.SetResume(text, name)
	log.Printf("✅ Resume loaded for %s (%d characters)", name, utf8.RuneCountInString(text))

	return &models.UploadResumeResponse{
		Success:       true,
		CandidateName: name,
		Preview:       truncateRunes(text, resumePreviewLen),
		Message:       fmt.Sprintf("✅ Resume uploaded! Name detected: %s", name),
	}, nil
}

// UploadCoverLetter replaces the cover letter. An empty path clears it.
func (a *assistantService) UploadCoverLetter(sess *models.Session, filePath string) (string, error) {
	if filePath == "" {
		sess.SetCoverLetter("")
		return "No cover letter uploaded.", nil
	}

	text, err := a.extractor.ExtractText(filePath)
	if err != nil {
		log.Printf("❌ Cover letter extraction failed: %v", err)
		return "", fmt.Errorf("error processing cover letter: %w", err)
	}

	sess.SetCoverLetter(text)

	return fmt.Sprintf("✅ Cover letter uploaded! (%d characters)", utf8.RuneCountInString(text)), nil
}

func (a *assistantService) SetJobDescription(sess *models.Session, text string) string {
	sess.SetJobDescription(text)
	if strings.TrimSpace(text) == "" {
		return "⚠️ Job description cleared"
	}
	return "✅ Job description updated!"
}

func (a *assistantService) SetMode(sess *models.Session, value string) (string, error) {
	mode, err := models.ParseMode(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}

	sess.SetMode(mode)

	if mode == models.ModeRecruiter {
		return "🔄 Switched to HR Recruiter Mode: I'll act as the candidate you're interviewing", nil
	}
	return "🔄 Switched to Job Seeker Mode: I'll interview you based on the job description", nil
}

// Chat answers one turn. Missing documents are reported before an empty
// message. Both turns are appended to the history only when the model call
// succeeds.
func (a *assistantService) Chat(ctx context.Context, sess *models.Session, message string) (string, error) {
	if err := checkDocuments(sess); err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	reply, err := a.evaluator.Reply(ctx, sess, message)
	if err != nil {
		return "", err
	}

	sess.AppendTurn(models.RoleUser, message)
	sess.AppendTurn(models.RoleAssistant, reply)

	return reply, nil
}

func (a *assistantService) AnalyzeATS(ctx context.Context, sess *models.Session) (*models.ATSAnalysisResponse, error) {
	if err := checkDocuments(sess); err != nil {
		return nil, err
	}

	result := a.scorer.Score(ctx, sess.ResumeText, sess.JobDescription)
	stored := result.Clone()
	sess.SetATSResult(&stored)

	return &models.ATSAnalysisResponse{
		ATSResult: result,
		Report:    FormatATSReport(sess.CandidateName, result),
	}, nil
}

func (a *assistantService) ClearChat(sess *models.Session) {
	sess.ClearChat()
}

func (a *assistantService) Readiness(sess *models.Session) models.ReadinessResponse {
	hasResume := strings.TrimSpace(sess.ResumeText) != ""
	hasJob := strings.TrimSpace(sess.JobDescription) != ""

	switch {
	case hasResume && hasJob:
		return models.ReadinessResponse{Ready: true, Message: "✅ **Ready to chat:** All documents uploaded successfully!"}
	case hasResume:
		return models.ReadinessResponse{Message: "⚠️ **Almost ready:** Upload job description to start"}
	case hasJob:
		return models.ReadinessResponse{Message: "⚠️ **Almost ready:** Upload resume to start"}
	default:
		return models.ReadinessResponse{Message: "📋 **Getting started:** Upload resume first"}
	}
}

func (a *assistantService) Export(sess *models.Session) ([]byte, error) {
	return ExportWorkbook(sess)
}

// ChatWarning renders a Chat error as the text shown in a transcript.
func ChatWarning(mode models.Mode, err error) string {
	switch {
	case errors.Is(err, ErrResumeMissing):
		return "⚠️ Please upload a resume first before starting the conversation."
	case errors.Is(err, ErrJobDescriptionMissing) && mode == models.ModeRecruiter:
		return "⚠️ Please provide a job description first so I know what role I'm interviewing for."
	case errors.Is(err, ErrJobDescriptionMissing):
		return "⚠️ Please provide a job description first so I can conduct a proper interview."
	case errors.Is(err, ErrEmptyMessage):
		return "⚠️ Please type a message first."
	default:
		return DisplayError(err)
	}
}

func checkDocuments(sess *models.Session) error {
	if strings.TrimSpace(sess.ResumeText) == "" {
		return ErrResumeMissing
	}
	if strings.TrimSpace(sess.JobDescription) == "" {
		return ErrJobDescriptionMissing
	}
	return nil
}
