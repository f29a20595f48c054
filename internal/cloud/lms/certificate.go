package lms

import (
	"context"
	"time"
)

const (
	certificatesPath = "/certificates/"
)

// Certificate is issued to a student once every lesson of a course is completed
type Certificate struct {
	ID            int       `json:"id"`
	Student       int       `json:"student"`
	Course        CourseRef `json:"course"`
	CourseTitle   string    `json:"course_title"`
	IssuedAt      time.Time `json:"issued_at"`
	CertificateID string    `json:"certificate_id"`
}

// Title returns the title of the certified course
func (c Certificate) Title() string {
	if c.CourseTitle != "" {
		return c.CourseTitle
	}
	return c.Course.String()
}

func (c *lmsClient) Certificates(ctx context.Context) ([]Certificate, error) {
	var certificates []Certificate
	if err := c.get(ctx, certificatesPath, &certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}
