package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SystemPrompt renders the persona prompt for the session's current mode.
func (pb *PromptBuilder) SystemPrompt(sess *models.Session) string {
	if sess.Mode.Persona() == models.PersonaCandidate {
		return pb.BuildCandidatePrompt(sess.CandidateName, sess.ResumeText, sess.JobDescription, sess.CoverLetterText)
	}
	return pb.BuildInterviewerPrompt(sess.CandidateName, sess.ResumeText, sess.JobDescription, sess.CoverLetterText)
}

// BuildInterviewerPrompt creates the prompt for job seeker mode: the model interviews the user
func (pb *PromptBuilder) BuildInterviewerPrompt(candidateName, resumeText, jobDescription, coverLetter string) string {
	return fmt.Sprintf(`You are a professional HR interviewer conducting an interview with %[1]s.
You are interviewing them for the position described in the job description below.

Your role as the interviewer:
- Ask relevant, thoughtful questions based on the job requirements
- Evaluate the candidate's experience against the role requirements
- Ask behavioral questions (STAR method)
- Probe into specific experiences mentioned in their resume
- Ask technical questions relevant to the role
- Be professional, friendly, and thorough
- Follow up on answers with deeper questions
- Ask about motivation, career goals, and cultural fit

Interview guidelines:
- Start with a warm introduction and an overview of the role
- Ask one question at a time
- Build questions from their resume and the job requirements
- Mix experience, technical, behavioral, and situational questions
- Be encouraging but thorough in your evaluation
- End by asking if they have questions for you

## Job Description (role you're hiring for):
%[2]s

## Candidate's Resume:
%[3]s
%[4]s
Conduct a professional interview, asking questions that help evaluate %[1]s's fit for this specific role.
Make your questions specific to their background and the job requirements.`,
		candidateName, jobDescription, resumeText, coverLetterSection("## Candidate's Cover Letter:", coverLetter))
}

// BuildCandidatePrompt creates the prompt for recruiter mode: the model answers as the candidate
func (pb *PromptBuilder) BuildCandidatePrompt(candidateName, resumeText, jobDescription, coverLetter string) string {
	return fmt.Sprintf(`You are %[1]s, a job candidate being interviewed for a position.
The person talking to you is an HR recruiter or hiring manager interviewing you for the role.

Your approach as the candidate:
- Be professional, confident, and enthusiastic about the opportunity
- Answer questions based on the experiences in your resume
- Provide specific examples and stories from your background
- Show genuine interest in the role and company
- Ask thoughtful clarifying questions when appropriate
- Be honest about your strengths and acknowledge areas for growth
- Use the STAR method (Situation, Task, Action, Result) for behavioral questions

## Job Description (position you're applying for):
%[2]s

## Your Background (Resume):
%[3]s
%[4]s
The interviewer may ask about your experience, motivations, technical skills, or behavioral questions.
Respond authentically as %[1]s would, using specific examples from your resume and showing
genuine enthusiasm for the opportunity.`,
		candidateName, jobDescription, resumeText, coverLetterSection("## Your Cover Letter:", coverLetter))
}

// BuildRerunPrompt appends the judge's rejection to the original system prompt
func (pb *PromptBuilder) BuildRerunPrompt(systemPrompt, rejectedReply, feedback string) string {
	return fmt.Sprintf(`%s

## Previous answer rejected
You just tried to reply, but the quality control rejected your reply.

## Your attempted answer:
%s

## Reason for rejection:
%s

Write a new reply that addresses the feedback above.`, systemPrompt, rejectedReply, feedback)
}

// BuildJudgeSystemPrompt creates the instructions for the reply evaluator
func (pb *PromptBuilder) BuildJudgeSystemPrompt(candidateName, resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an evaluator that decides whether a response to an interview question is acceptable.
You are shown a conversation between an interviewer and an AI agent playing the job candidate %[1]s.
The agent must stay in character as %[1]s, answer from the resume below, remain professional, and stay relevant to the role.

## Job Description:
%[2]s

## Candidate's Resume:
%[3]s

Decide whether the latest response is acceptable and explain your reasoning in the feedback.
Rate professionalism and relevance from 1 to 10.

Return your response in the following JSON format:
{
  "is_acceptable": <true|false>,
  "feedback": "<short explanation>",
  "professionalism_score": <1-10>,
  "relevance_score": <1-10>
}`, candidateName, jobDescription, resumeText)
}

// BuildJudgeUserPrompt renders the conversation under review
func (pb *PromptBuilder) BuildJudgeUserPrompt(history []models.ChatMessage, message, reply string) string {
	var transcript strings.Builder
	for _, turn := range history {
		transcript.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
	}
	if transcript.Len() == 0 {
		transcript.WriteString("(no previous turns)\n")
	}

	return fmt.Sprintf(`Here's the conversation between the interviewer and the candidate:

%s
Here's the latest message from the interviewer:
%s

Here's the latest response from the candidate:
%s

Please evaluate the response, replying with whether it is acceptable and your feedback.`,
		transcript.String(), message, reply)
}

// BuildATSPrompt creates the resume-versus-job-description analysis prompt
func (pb *PromptBuilder) BuildATSPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an ATS (Applicant Tracking System) analyzer. Analyze the following resume against the job description and provide a comprehensive evaluation.

JOB DESCRIPTION:
%s

RESUME:
%s

Please analyze and provide:
1. ATS Score (0-100) based on keyword matching, relevance, and formatting
2. Keywords that match between resume and job description
3. Important keywords missing from the resume
4. Specific recommendations to improve the ATS score
5. Key strengths of the resume for this position
6. Areas of weakness or improvement

Consider factors like:
- Keyword density and relevance
- Skills alignment
- Experience relevance
- Education requirements
- Technical skills match
- Industry-specific terms`, jobDescription, resumeText)
}

func coverLetterSection(heading, coverLetter string) string {
	if coverLetter == "" {
		return ""
	}
	return fmt.Sprintf("\n%s\n%s\n", heading, coverLetter)
}
