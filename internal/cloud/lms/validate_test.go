package lms

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		description string
		payload     interface{}
		expectedErr error
	}{
		{
			description: "should accept a valid course",
			payload:     CourseRequest{Title: "Intro to Go", Description: "Learn Go", Category: CategoryProgramming},
		},
		{
			description: "should report every invalid course field",
			payload:     CourseRequest{Category: "Cooking"},
			expectedErr: errors.New("invalid course: title is required, description is required, category must be one of [Programming, Design, Business, DevOps, Other]"),
		},
		{
			description: "should report a lesson without a module",
			payload:     LessonRequest{Title: "Variables", Content: DefaultLessonContent},
			expectedErr: errors.New("invalid lesson: module is required"),
		},
		{
			description: "should report an invalid lesson video URL",
			payload:     LessonRequest{Module: 1, Title: "Variables", Content: DefaultLessonContent, VideoURL: "not a url"},
			expectedErr: errors.New("invalid lesson: video_url must be a valid URL"),
		},
		{
			description: "should report a negative module order",
			payload:     &ModuleRequest{Course: 1, Title: "Basics", Order: -1},
			expectedErr: errors.New("invalid module: order must not be negative"),
		},
		{
			description: "should report a short password and an unknown role",
			payload:     Registration{Username: "student1", Password: "short", Role: "Admin"},
			expectedErr: errors.New("invalid registration: password must be at least 8 characters, role must be one of [Student, Teacher]"),
		},
		{
			description: "should report an invalid email",
			payload:     Registration{Username: "student1", Password: "password123", Email: "student1"},
			expectedErr: errors.New("invalid registration: email must be a valid email address"),
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			err := Validate(tc.payload)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.expectedErr.Error())
		})
	}
}

func TestCourseRefUnmarshal(t *testing.T) {
	for _, tc := range []struct {
		description string
		data        string
		expected    CourseRef
		expectedStr string
	}{
		{
			description: "should read a course id",
			data:        `3`,
			expected:    CourseRef{ID: 3},
			expectedStr: "course 3",
		},
		{
			description: "should read a nested course",
			data:        `{"id":3,"title":"Intro to Go","category":"Programming"}`,
			expected:    CourseRef{ID: 3, Title: "Intro to Go"},
			expectedStr: "Intro to Go",
		},
		{
			description: "should leave a null course unset",
			data:        `null`,
			expectedStr: "course 0",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			var ref CourseRef
			require.NoError(t, json.Unmarshal([]byte(tc.data), &ref))
			assert.Equal(t, tc.expected, ref)
			assert.Equal(t, tc.expectedStr, ref.String())
		})
	}

	t.Run("should fail on an unexpected value", func(t *testing.T) {
		var ref CourseRef
		assert.Error(t, json.Unmarshal([]byte(`"three"`), &ref))
	})
}
