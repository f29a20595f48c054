package lms

import (
	"context"
	"time"
)

const (
	announcementsPath = "/announcements/"
)

// Announcement is a message posted to the students of a course
type Announcement struct {
	ID        int       `json:"id"`
	Course    int       `json:"course"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// AnnouncementRequest is the payload of a new announcement
type AnnouncementRequest struct {
	Course  int    `json:"course" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

func (c *lmsClient) CreateAnnouncement(ctx context.Context, req AnnouncementRequest) (Announcement, error) {
	var announcement Announcement
	if err := c.post(ctx, announcementsPath, req, &announcement); err != nil {
		return Announcement{}, err
	}
	return announcement, nil
}
