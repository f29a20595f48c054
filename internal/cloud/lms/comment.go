package lms

import (
	"context"
	"time"
)

const (
	commentsPath = "/comments/"
)

// Comment is a discussion message left on a lesson
type Comment struct {
	ID        int       `json:"id"`
	Lesson    int       `json:"lesson"`
	User      int       `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentRequest is the payload of a new comment
type CommentRequest struct {
	Lesson int    `json:"lesson" validate:"required,gt=0"`
	Text   string `json:"text" validate:"required"`
}

func (c *lmsClient) CreateComment(ctx context.Context, req CommentRequest) (Comment, error) {
	var comment Comment
	if err := c.post(ctx, commentsPath, req, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}
