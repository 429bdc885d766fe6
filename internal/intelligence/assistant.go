// Package intelligence provides the AI assistant features: student report
// comments, daily lesson plans (RPH) and a school-management chat. Every
// operation degrades to a localized fallback string when the generative
// API fails; no error from the API ever propagates to a caller.
package intelligence

import (
	"context"

	"github.com/smaamdev/esekolah/internal/domain"
	"github.com/smaamdev/esekolah/internal/llm"
)

// Fallback strings shown when the generative API cannot answer.
const (
	FallbackReport     = "Tiada ulasan dapat dijana."
	FallbackLessonPlan = "Tiada rancangan dapat dijana."
	FallbackChat       = "Maaf, saya tidak faham."
)

// AssistantService generates Malay-language school content. Results are
// always usable text: a failed generation yields the task's fallback.
type AssistantService interface {
	// StudentReport writes a principal's comment for a student report card.
	StudentReport(ctx context.Context, s domain.Student) string

	// LessonPlan drafts a daily lesson plan for the given subject and topic.
	LessonPlan(ctx context.Context, subject, topic, duration string) string

	// Chat answers a free-form question as 'Cikgu AI'.
	Chat(ctx context.Context, message string) string
}

type assistantService struct {
	client llm.Client
}

// NewAssistantService creates an AssistantService backed by the given
// client. A nil client yields fallbacks for every request.
func NewAssistantService(client llm.Client) AssistantService {
	return &assistantService{client: client}
}

func (s *assistantService) StudentReport(ctx context.Context, student domain.Student) string {
	return s.generate(ctx, llm.TaskReport, reportPrompt(student), FallbackReport)
}

func (s *assistantService) LessonPlan(ctx context.Context, subject, topic, duration string) string {
	return s.generate(ctx, llm.TaskLessonPlan, lessonPlanPrompt(subject, topic, duration), FallbackLessonPlan)
}

func (s *assistantService) Chat(ctx context.Context, message string) string {
	return s.generate(ctx, llm.TaskChat, chatPrompt(message), FallbackChat)
}

func (s *assistantService) generate(ctx context.Context, task llm.TaskType, prompt, fallback string) string {
	if s.client == nil {
		return fallback
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{Task: task, Prompt: prompt})
	if err != nil || resp.Text == "" {
		return fallback
	}
	return resp.Text
}
