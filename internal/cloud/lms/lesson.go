package lms

import (
	"context"
	"fmt"
	"time"
)

const (
	lessonsPath       = "/lessons/"
	lessonPathPattern = lessonsPath + "%d/"

	completionsPath = "/completions/"
)

// DefaultLessonContent is the content of a lesson created without any
const DefaultLessonContent = "No content provided"

// Lesson is a lesson of a SmartLMS course module
type Lesson struct {
	ID       int    `json:"id"`
	Module   int    `json:"module"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
	Order    int    `json:"order"`
}

// LessonRequest is the payload of a new lesson
type LessonRequest struct {
	Module   int    `json:"module" validate:"required,gt=0"`
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	VideoURL string `json:"video_url,omitempty" validate:"omitempty,url"`
	Order    int    `json:"order" validate:"gte=0"`
}

// Completion records a lesson completed by the logged in student
type Completion struct {
	ID          int       `json:"id"`
	Lesson      int       `json:"lesson"`
	CompletedAt time.Time `json:"completed_at"`
}

type completionRequest struct {
	Lesson int `json:"lesson"`
}

func (c *lmsClient) CreateLesson(ctx context.Context, req LessonRequest) (Lesson, error) {
	var lesson Lesson
	if err := c.post(ctx, lessonsPath, req, &lesson); err != nil {
		return Lesson{}, err
	}
	return lesson, nil
}

func (c *lmsClient) DeleteLesson(ctx context.Context, lessonID int) error {
	return c.delete(ctx, fmt.Sprintf(lessonPathPattern, lessonID))
}

func (c *lmsClient) CompleteLesson(ctx context.Context, lessonID int) (Completion, error) {
	var completion Completion
	if err := c.post(ctx, completionsPath, completionRequest{lessonID}, &completion); err != nil {
		return Completion{}, err
	}
	return completion, nil
}
