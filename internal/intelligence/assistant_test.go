package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smaamdev/esekolah/internal/domain"
	"github.com/smaamdev/esekolah/internal/llm"
)

type stubClient struct {
	text string
	err  error

	gotTask   llm.TaskType
	gotPrompt string
}

func (s *stubClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.gotTask = req.Task
	s.gotPrompt = req.Prompt
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.text}, nil
}

func sampleStudent() domain.Student {
	return domain.Student{
		ID: "s1", Name: "Aiman", Grade: "5 Amanah",
		Attendance: 95, AverageScore: 82, BehaviorScore: 90,
	}
}

func TestAssistant_StudentReport(t *testing.T) {
	stub := &stubClient{text: "Aiman menunjukkan komitmen yang tinggi."}
	svc := NewAssistantService(stub)

	got := svc.StudentReport(context.Background(), sampleStudent())
	assert.Equal(t, "Aiman menunjukkan komitmen yang tinggi.", got)
	assert.Equal(t, llm.TaskReport, stub.gotTask)
	assert.Contains(t, stub.gotPrompt, "Aiman")
	assert.Contains(t, stub.gotPrompt, "95")
}

func TestAssistant_LessonPlan(t *testing.T) {
	stub := &stubClient{text: "Objektif: ..."}
	svc := NewAssistantService(stub)

	got := svc.LessonPlan(context.Background(), "Sains", "Fotosintesis", "60 minit")
	assert.Equal(t, "Objektif: ...", got)
	assert.Equal(t, llm.TaskLessonPlan, stub.gotTask)
	assert.Contains(t, stub.gotPrompt, "Fotosintesis")
}

func TestAssistant_Chat(t *testing.T) {
	stub := &stubClient{text: "Waalaikumussalam!"}
	svc := NewAssistantService(stub)

	got := svc.Chat(context.Background(), "Assalamualaikum")
	assert.Equal(t, "Waalaikumussalam!", got)
	assert.Equal(t, llm.TaskChat, stub.gotTask)
}

func TestAssistant_FallbackOnError(t *testing.T) {
	stub := &stubClient{err: errors.New("api down")}
	svc := NewAssistantService(stub)

	assert.Equal(t, FallbackReport, svc.StudentReport(context.Background(), sampleStudent()))
	assert.Equal(t, FallbackLessonPlan, svc.LessonPlan(context.Background(), "Sains", "Sel", "30 minit"))
	assert.Equal(t, FallbackChat, svc.Chat(context.Background(), "hai"))
}

func TestAssistant_FallbackOnEmptyText(t *testing.T) {
	stub := &stubClient{text: ""}
	svc := NewAssistantService(stub)
	assert.Equal(t, FallbackChat, svc.Chat(context.Background(), "hai"))
}

func TestAssistant_NilClientFallsBack(t *testing.T) {
	svc := NewAssistantService(nil)
	assert.Equal(t, FallbackReport, svc.StudentReport(context.Background(), sampleStudent()))
}
