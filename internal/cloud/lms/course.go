package lms

import (
	"context"
	"fmt"
	"sort"
	"time"
)

const (
	coursesPath       = "/courses/"
	coursePathPattern = coursesPath + "%d/"
)

// set of supported course categories
const (
	CategoryProgramming = "Programming"
	CategoryDesign      = "Design"
	CategoryBusiness    = "Business"
	CategoryDevOps      = "DevOps"
	CategoryOther       = "Other"
)

// Categories are the supported course categories
var Categories = []string{
	CategoryProgramming,
	CategoryDesign,
	CategoryBusiness,
	CategoryDevOps,
	CategoryOther,
}

// Course is a SmartLMS course
type Course struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Instructor     int       `json:"instructor"`
	InstructorName string    `json:"instructor_name"`
	Thumbnail      string    `json:"thumbnail,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Modules        []Module  `json:"modules"`
}

// Lessons returns the number of lessons across the course modules
func (c Course) Lessons() int {
	var n int
	for _, module := range c.Modules {
		n += len(module.Lessons)
	}
	return n
}

// SortContents orders the course modules and their lessons
func (c *Course) SortContents() {
	sort.SliceStable(c.Modules, func(i, j int) bool { return c.Modules[i].Order < c.Modules[j].Order })
	for i := range c.Modules {
		lessons := c.Modules[i].Lessons
		sort.SliceStable(lessons, func(a, b int) bool { return lessons[a].Order < lessons[b].Order })
	}
}

// CourseRequest is the payload of a new course
type CourseRequest struct {
	Title       string `json:"title" yaml:"title" validate:"required,max=200"`
	Description string `json:"description" yaml:"description" validate:"required"`
	Category    string `json:"category" yaml:"category" validate:"required,oneof=Programming Design Business DevOps Other"`
}

func (c *lmsClient) Courses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := c.get(ctx, coursesPath, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *lmsClient) Course(ctx context.Context, courseID int) (Course, error) {
	var course Course
	if err := c.get(ctx, fmt.Sprintf(coursePathPattern, courseID), &course); err != nil {
		return Course{}, err
	}
	course.SortContents()
	return course, nil
}

func (c *lmsClient) CreateCourse(ctx context.Context, req CourseRequest) (Course, error) {
	var course Course
	if err := c.post(ctx, coursesPath, req, &course); err != nil {
		return Course{}, err
	}
	return course, nil
}

func (c *lmsClient) DeleteCourse(ctx context.Context, courseID int) error {
	return c.delete(ctx, fmt.Sprintf(coursePathPattern, courseID))
}
