package gui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"alfredoptarigan/recruitment-assistant/internal/models"
	"alfredoptarigan/recruitment-assistant/internal/services"
)

const (
	jobSeekerOption = "🧑‍💼 Job Seeker (I'm being interviewed)"
	recruiterOption = "👔 HR Recruiter (I'm interviewing)"
)

// App is the desktop front end. It owns one process-wide session; every
// session access goes through worker.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	assistant  services.AssistantService

	worker *sessionWorker

	// UI Components
	modeRadio         *widget.RadioGroup
	modeStatus        *widget.Label
	candidateName     *widget.Label
	resumePreview     *widget.Entry
	coverLetterStatus *widget.Label
	jobDescText       *widget.Entry
	jobStatus         *widget.Label
	overallStatus     *widget.RichText
	transcript        *widget.RichText
	transcriptScroll  *container.Scroll
	messageEntry      *widget.Entry
	sendBtn           *widget.Button
	atsBtn            *widget.Button
	atsReport         *widget.RichText
}

// NewApp creates the desktop application around an assistant
func NewApp(assistant services.AssistantService) *App {
	a := app.New()
	w := a.NewWindow("🎯 AI Recruitment Assistant")
	w.Resize(fyne.NewSize(1200, 800))

	guiApp := &App{
		fyneApp:    a,
		mainWindow: w,
		assistant:  assistant,
		worker:     newSessionWorker(models.NewSession(uuid.New().String())),
	}

	guiApp.setupUI()

	return guiApp
}

// Run starts the GUI application
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
	a.worker.Stop()
}

func (a *App) setupUI() {
	split := container.NewHSplit(a.createControlPanel(), a.createChatPanel())
	split.Offset = 0.4

	tabs := container.NewAppTabs(
		container.NewTabItem("Interview", split),
		container.NewTabItem("ATS Analysis", a.createATSTab()),
	)

	a.mainWindow.SetContent(tabs)
}

func (a *App) createControlPanel() fyne.CanvasObject {
	a.modeStatus = widget.NewLabel("🧑‍💼 Job Seeker Mode Active: upload your resume and JD, then I'll interview you")
	a.modeStatus.Wrapping = fyne.TextWrapWord

	a.modeRadio = widget.NewRadioGroup([]string{jobSeekerOption, recruiterOption}, nil)
	a.modeRadio.SetSelected(jobSeekerOption)
	a.modeRadio.Required = true
	a.modeRadio.OnChanged = a.handleModeChange

	a.candidateName = widget.NewLabel("👤 (Upload resume to detect name)")
	a.resumePreview = widget.NewMultiLineEntry()
	a.resumePreview.SetPlaceHolder("Resume preview")
	a.resumePreview.SetMinRowsVisible(4)
	a.resumePreview.Disable()

	resumeBtn := widget.NewButton("📋 Upload Resume", a.handleUploadResume)

	a.coverLetterStatus = widget.NewLabel("No cover letter uploaded.")
	coverBtn := widget.NewButton("📝 Upload Cover Letter", a.handleUploadCoverLetter)
	clearCoverBtn := widget.NewButton("Remove", a.handleClearCoverLetter)

	a.jobDescText = widget.NewMultiLineEntry()
	a.jobDescText.SetPlaceHolder("Paste the complete job description here...")
	a.jobDescText.SetMinRowsVisible(8)
	a.jobDescText.Wrapping = fyne.TextWrapWord
	a.jobStatus = widget.NewLabel("⚠️ No job description provided")
	jobBtn := widget.NewButton("💼 Save Job Description", a.handleJobDescription)

	a.overallStatus = widget.NewRichTextFromMarkdown("📋 **Ready to start:** Upload resume and job description")

	exportBtn := widget.NewButton("📥 Export Session", a.handleExport)

	return container.NewVScroll(container.NewVBox(
		widget.NewLabel("🔄 Select Mode"),
		a.modeRadio,
		a.modeStatus,
		widget.NewSeparator(),
		widget.NewLabel("📄 Upload Documents"),
		resumeBtn,
		a.candidateName,
		a.resumePreview,
		container.NewHBox(coverBtn, clearCoverBtn),
		a.coverLetterStatus,
		widget.NewSeparator(),
		widget.NewLabel("Job Description"),
		a.jobDescText,
		jobBtn,
		a.jobStatus,
		widget.NewSeparator(),
		widget.NewLabel("ℹ️ Status"),
		a.overallStatus,
		exportBtn,
	))
}

func (a *App) createChatPanel() fyne.CanvasObject {
	a.transcript = widget.NewRichTextFromMarkdown("")
	a.transcript.Wrapping = fyne.TextWrapWord
	a.transcriptScroll = container.NewVScroll(a.transcript)

	a.messageEntry = widget.NewMultiLineEntry()
	a.messageEntry.SetPlaceHolder("Type your message here...")
	a.messageEntry.SetMinRowsVisible(2)

	a.sendBtn = widget.NewButton("Send", a.handleSend)
	clearBtn := widget.NewButton("🗑️ Clear Chat", a.handleClearChat)

	controls := container.NewBorder(nil, nil, nil, container.NewVBox(a.sendBtn, clearBtn), a.messageEntry)

	return container.NewBorder(widget.NewLabel("💬 Conversation"), controls, nil, nil, a.transcriptScroll)
}

func (a *App) createATSTab() fyne.CanvasObject {
	a.atsReport = widget.NewRichTextFromMarkdown("Upload a resume and job description, then run the analysis.")
	a.atsReport.Wrapping = fyne.TextWrapWord

	a.atsBtn = widget.NewButton("🔍 Analyze Resume vs Job Description", a.handleATS)
	a.atsBtn.Importance = widget.HighImportance

	return container.NewBorder(a.atsBtn, nil, nil, nil, container.NewVScroll(a.atsReport))
}

// withSession runs fn against the session off the UI goroutine. Calls run
// one at a time in the order they were made.
func (a *App) withSession(fn func(sess *models.Session)) {
	a.worker.Submit(fn)
}

func (a *App) handleModeChange(selected string) {
	value := string(models.ModeJobSeeker)
	if selected == recruiterOption {
		value = string(models.ModeRecruiter)
	}

	a.withSession(func(sess *models.Session) {
		message, err := a.assistant.SetMode(sess, value)
		history := sess.History()
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(err, a.mainWindow)
				return
			}
			a.modeStatus.SetText(message)
			a.renderTranscript(history)
		})
	})
}

func (a *App) handleUploadResume() {
	a.openDocument(func(path string) {
		a.withSession(func(sess *models.Session) {
			resp, err := a.assistant.UploadResume(sess, path)
			readiness := a.assistant.Readiness(sess)
			fyne.Do(func() {
				if err != nil {
					dialog.ShowError(err, a.mainWindow)
					return
				}
				a.candidateName.SetText("👤 " + resp.CandidateName)
				a.resumePreview.SetText(resp.Preview)
				a.overallStatus.ParseMarkdown(readiness.Message)
				dialog.ShowInformation("Resume", resp.Message, a.mainWindow)
			})
		})
	})
}

func (a *App) handleUploadCoverLetter() {
	a.openDocument(func(path string) {
		a.withSession(func(sess *models.Session) {
			message, err := a.assistant.UploadCoverLetter(sess, path)
			fyne.Do(func() {
				if err != nil {
					a.coverLetterStatus.SetText("❌ " + err.Error())
					return
				}
				a.coverLetterStatus.SetText(message)
			})
		})
	})
}

func (a *App) handleClearCoverLetter() {
	a.withSession(func(sess *models.Session) {
		message, _ := a.assistant.UploadCoverLetter(sess, "")
		fyne.Do(func() {
			a.coverLetterStatus.SetText(message)
		})
	})
}

func (a *App) handleJobDescription() {
	text := a.jobDescText.Text
	a.withSession(func(sess *models.Session) {
		message := a.assistant.SetJobDescription(sess, text)
		readiness := a.assistant.Readiness(sess)
		fyne.Do(func() {
			a.jobStatus.SetText(message)
			a.overallStatus.ParseMarkdown(readiness.Message)
		})
	})
}

func (a *App) handleSend() {
	message := strings.TrimSpace(a.messageEntry.Text)

	a.messageEntry.SetText("")
	a.sendBtn.Disable()

	a.withSession(func(sess *models.Session) {
		_, err := a.assistant.Chat(context.Background(), sess, message)
		history := sess.History()
		if err != nil {
			log.Printf("⚠️ Chat turn failed: %v", err)
			// The warning is shown but never stored in the session history.
			history = append(history,
				models.ChatMessage{Role: models.RoleUser, Content: message},
				models.ChatMessage{Role: models.RoleAssistant, Content: services.ChatWarning(sess.Mode, err)},
			)
		}

		fyne.Do(func() {
			a.sendBtn.Enable()
			a.renderTranscript(history)
		})
	})
}

func (a *App) handleClearChat() {
	a.withSession(func(sess *models.Session) {
		a.assistant.ClearChat(sess)
		fyne.Do(func() {
			a.renderTranscript(nil)
		})
	})
}

func (a *App) handleATS() {
	a.atsBtn.Disable()
	a.atsReport.ParseMarkdown("⏳ Analyzing...")

	a.withSession(func(sess *models.Session) {
		resp, err := a.assistant.AnalyzeATS(context.Background(), sess)
		fyne.Do(func() {
			a.atsBtn.Enable()
			switch {
			case errors.Is(err, services.ErrResumeMissing):
				a.atsReport.ParseMarkdown("❌ Please upload a resume PDF first.")
			case errors.Is(err, services.ErrJobDescriptionMissing):
				a.atsReport.ParseMarkdown("❌ Please enter a job description first.")
			case err != nil:
				a.atsReport.ParseMarkdown(fmt.Sprintf("❌ Error performing ATS analysis: %v", err))
			default:
				a.atsReport.ParseMarkdown(resp.Report)
			}
		})
	})
}

func (a *App) handleExport() {
	defaultName := fmt.Sprintf("Recruitment_Session_%s.xlsx", time.Now().Format("2006-01-02_150405"))

	saveDialog := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if uc == nil {
			return
		}

		a.withSession(func(sess *models.Session) {
			defer uc.Close()

			data, err := a.assistant.Export(sess)
			if err == nil {
				_, err = uc.Write(data)
			}
			fyne.Do(func() {
				if err != nil {
					dialog.ShowError(fmt.Errorf("failed to export: %w", err), a.mainWindow)
					return
				}
				dialog.ShowInformation("Success", "Session exported to "+uc.URI().Name(), a.mainWindow)
			})
		})
	}, a.mainWindow)
	saveDialog.SetFileName(defaultName)
	saveDialog.Show()
}

func (a *App) openDocument(onPath func(path string)) {
	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onPath(path)
	}, a.mainWindow)
	openDialog.SetFilter(storage.NewExtensionFileFilter([]string{".pdf", ".docx"}))
	openDialog.Show()
}

func (a *App) renderTranscript(history []models.ChatMessage) {
	a.transcript.ParseMarkdown(TranscriptMarkdown(history))
	a.transcriptScroll.ScrollToBottom()
}

// TranscriptMarkdown renders chat turns for the transcript view.
func TranscriptMarkdown(history []models.ChatMessage) string {
	if len(history) == 0 {
		return "_No messages yet._"
	}

	var b strings.Builder
	for _, turn := range history {
		speaker := "🤖 **Assistant**"
		if turn.Role == models.RoleUser {
			speaker = "🧑 **You**"
		}
		fmt.Fprintf(&b, "%s\n\n%s\n\n---\n\n", speaker, turn.Content)
	}
	return b.String()
}
