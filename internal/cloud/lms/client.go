package lms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/smartlms/smartlms-cli/internal/api"
)

// Client is a SmartLMS client
type Client interface {
	Authenticate(ctx context.Context, username, password string) (api.Session, error)
	UserProfile(ctx context.Context) (User, error)
	Register(ctx context.Context, registration Registration) (User, error)

	Courses(ctx context.Context) ([]Course, error)
	Course(ctx context.Context, courseID int) (Course, error)
	CreateCourse(ctx context.Context, course CourseRequest) (Course, error)
	DeleteCourse(ctx context.Context, courseID int) error

	CreateModule(ctx context.Context, module ModuleRequest) (Module, error)
	DeleteModule(ctx context.Context, moduleID int) error

	CreateLesson(ctx context.Context, lesson LessonRequest) (Lesson, error)
	DeleteLesson(ctx context.Context, lessonID int) error

	Enrollments(ctx context.Context) ([]Enrollment, error)
	Enroll(ctx context.Context, courseID int) (Enrollment, error)

	CompleteLesson(ctx context.Context, lessonID int) (Completion, error)

	Certificates(ctx context.Context) ([]Certificate, error)

	CreateAnnouncement(ctx context.Context, announcement AnnouncementRequest) (Announcement, error)

	CreateComment(ctx context.Context, comment CommentRequest) (Comment, error)

	Users(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, userID int) error
}

// NewClient creates a new SmartLMS client sending requests through the provided api.Client
func NewClient(client api.Client) Client {
	return &lmsClient{client}
}

type lmsClient struct {
	client api.Client
}

func (c *lmsClient) do(ctx context.Context, method, path string, options api.RequestOptions) (*http.Response, error) {
	res, err := c.client.Do(ctx, method, path, options)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(res.StatusCode) {
		defer res.Body.Close()
		return nil, api.ParseResponseError(res)
	}
	return res, nil
}

func (c *lmsClient) get(ctx context.Context, path string, out interface{}) error {
	res, err := c.do(ctx, http.MethodGet, path, api.RequestOptions{})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return decode(path, res, out)
}

func (c *lmsClient) post(ctx context.Context, path string, payload, out interface{}) error {
	return c.postWithAuth(ctx, path, payload, out, true)
}

func (c *lmsClient) postWithAuth(ctx context.Context, path string, payload, out interface{}, auth bool) error {
	options, err := api.JSONRequestOptions(payload)
	if err != nil {
		return err
	}
	options.NoAuth = !auth

	res, err := c.do(ctx, http.MethodPost, path, options)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if out == nil {
		return nil
	}
	return decode(path, res, out)
}

func (c *lmsClient) delete(ctx context.Context, path string) error {
	res, err := c.do(ctx, http.MethodDelete, path, api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}

func decode(path string, res *http.Response, out interface{}) error {
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}
	return nil
}
