package mock

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
)

// LMSClient is a mocked SmartLMS client
type LMSClient struct {
	lms.Client
	AuthenticateFn       func(ctx context.Context, username, password string) (api.Session, error)
	UserProfileFn        func(ctx context.Context) (lms.User, error)
	RegisterFn           func(ctx context.Context, registration lms.Registration) (lms.User, error)
	CoursesFn            func(ctx context.Context) ([]lms.Course, error)
	CourseFn             func(ctx context.Context, courseID int) (lms.Course, error)
	CreateCourseFn       func(ctx context.Context, course lms.CourseRequest) (lms.Course, error)
	DeleteCourseFn       func(ctx context.Context, courseID int) error
	CreateModuleFn       func(ctx context.Context, module lms.ModuleRequest) (lms.Module, error)
	DeleteModuleFn       func(ctx context.Context, moduleID int) error
	CreateLessonFn       func(ctx context.Context, lesson lms.LessonRequest) (lms.Lesson, error)
	DeleteLessonFn       func(ctx context.Context, lessonID int) error
	EnrollmentsFn        func(ctx context.Context) ([]lms.Enrollment, error)
	EnrollFn             func(ctx context.Context, courseID int) (lms.Enrollment, error)
	CompleteLessonFn     func(ctx context.Context, lessonID int) (lms.Completion, error)
	CertificatesFn       func(ctx context.Context) ([]lms.Certificate, error)
	CreateAnnouncementFn func(ctx context.Context, announcement lms.AnnouncementRequest) (lms.Announcement, error)
	CreateCommentFn      func(ctx context.Context, comment lms.CommentRequest) (lms.Comment, error)
	UsersFn              func(ctx context.Context) ([]lms.User, error)
	DeleteUserFn         func(ctx context.Context, userID int) error
}

// Authenticate calls the mocked Authenticate implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) Authenticate(ctx context.Context, username, password string) (api.Session, error) {
	if c.AuthenticateFn != nil {
		return c.AuthenticateFn(ctx, username, password)
	}
	return c.Client.Authenticate(ctx, username, password)
}

// UserProfile calls the mocked UserProfile implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) UserProfile(ctx context.Context) (lms.User, error) {
	if c.UserProfileFn != nil {
		return c.UserProfileFn(ctx)
	}
	return c.Client.UserProfile(ctx)
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) Register(ctx context.Context, registration lms.Registration) (lms.User, error) {
	if c.RegisterFn != nil {
		return c.RegisterFn(ctx, registration)
	}
	return c.Client.Register(ctx, registration)
}

// Courses calls the mocked Courses implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) Courses(ctx context.Context) ([]lms.Course, error) {
	if c.CoursesFn != nil {
		return c.CoursesFn(ctx)
	}
	return c.Client.Courses(ctx)
}

// Course calls the mocked Course implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) Course(ctx context.Context, courseID int) (lms.Course, error) {
	if c.CourseFn != nil {
		return c.CourseFn(ctx, courseID)
	}
	return c.Client.Course(ctx, courseID)
}

// CreateCourse calls the mocked CreateCourse implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) CreateCourse(ctx context.Context, course lms.CourseRequest) (lms.Course, error) {
	if c.CreateCourseFn != nil {
		return c.CreateCourseFn(ctx, course)
	}
	return c.Client.CreateCourse(ctx, course)
}

// DeleteCourse calls the mocked DeleteCourse implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) DeleteCourse(ctx context.Context, courseID int) error {
	if c.DeleteCourseFn != nil {
		return c.DeleteCourseFn(ctx, courseID)
	}
	return c.Client.DeleteCourse(ctx, courseID)
}

// CreateModule calls the mocked CreateModule implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) CreateModule(ctx context.Context, module lms.ModuleRequest) (lms.Module, error) {
	if c.CreateModuleFn != nil {
		return c.CreateModuleFn(ctx, module)
	}
	return c.Client.CreateModule(ctx, module)
}

// DeleteModule calls the mocked DeleteModule implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) DeleteModule(ctx context.Context, moduleID int) error {
	if c.DeleteModuleFn != nil {
		return c.DeleteModuleFn(ctx, moduleID)
	}
	return c.Client.DeleteModule(ctx, moduleID)
}

// CreateLesson calls the mocked CreateLesson implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) CreateLesson(ctx context.Context, lesson lms.LessonRequest) (lms.Lesson, error) {
	if c.CreateLessonFn != nil {
		return c.CreateLessonFn(ctx, lesson)
	}
	return c.Client.CreateLesson(ctx, lesson)
}

// DeleteLesson calls the mocked DeleteLesson implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) DeleteLesson(ctx context.Context, lessonID int) error {
	if c.DeleteLessonFn != nil {
		return c.DeleteLessonFn(ctx, lessonID)
	}
	return c.Client.DeleteLesson(ctx, lessonID)
}

// Enrollments calls the mocked Enrollments implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) Enrollments(ctx context.Context) ([]lms.Enrollment, error) {
	if c.EnrollmentsFn != nil {
		return c.EnrollmentsFn(ctx)
	}
	return c.Client.Enrollments(ctx)
}

// Enroll calls the mocked Enroll implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) Enroll(ctx context.Context, courseID int) (lms.Enrollment, error) {
	if c.EnrollFn != nil {
		return c.EnrollFn(ctx, courseID)
	}
	return c.Client.Enroll(ctx, courseID)
}

// CompleteLesson calls the mocked CompleteLesson implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) CompleteLesson(ctx context.Context, lessonID int) (lms.Completion, error) {
	if c.CompleteLessonFn != nil {
		return c.CompleteLessonFn(ctx, lessonID)
	}
	return c.Client.CompleteLesson(ctx, lessonID)
}

// Certificates calls the mocked Certificates implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) Certificates(ctx context.Context) ([]lms.Certificate, error) {
	if c.CertificatesFn != nil {
		return c.CertificatesFn(ctx)
	}
	return c.Client.Certificates(ctx)
}

// CreateAnnouncement calls the mocked CreateAnnouncement implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) CreateAnnouncement(ctx context.Context, announcement lms.AnnouncementRequest) (lms.Announcement, error) {
	if c.CreateAnnouncementFn != nil {
		return c.CreateAnnouncementFn(ctx, announcement)
	}
	return c.Client.CreateAnnouncement(ctx, announcement)
}

// CreateComment calls the mocked CreateComment implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) CreateComment(ctx context.Context, comment lms.CommentRequest) (lms.Comment, error) {
	if c.CreateCommentFn != nil {
		return c.CreateCommentFn(ctx, comment)
	}
	return c.Client.CreateComment(ctx, comment)
}

// Users calls the mocked Users implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) Users(ctx context.Context) ([]lms.User, error) {
	if c.UsersFn != nil {
		return c.UsersFn(ctx)
	}
	return c.Client.Users(ctx)
}

// DeleteUser calls the mocked DeleteUser implementation if provided,
// otherwise the call falls back to the underlying lms.Client implementation.
// NOTE: this may panic if the underlying lms.Client is left undefined
func (c LMSClient) DeleteUser(ctx context.Context, userID int) error {
	if c.DeleteUserFn != nil {
		return c.DeleteUserFn(ctx, userID)
	}
	return c.Client.DeleteUser(ctx, userID)
}
