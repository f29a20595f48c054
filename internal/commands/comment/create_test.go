package comment

import (
	"context"
	"errors"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"
	"github.com/smartlms/smartlms-cli/internal/utils/test/mock"
)

func TestCommentCreateHandler(t *testing.T) {
	profile := func(t *testing.T) *user.Profile {
		return mock.NewProfileWithSession(t,
			api.Session{AccessToken: "accessToken", RefreshToken: "refreshToken"},
			user.User{Username: "student1", Role: user.RoleStudent},
		)
	}

	t.Run("should post the comment on the lesson", func(t *testing.T) {
		var requests []lms.CommentRequest

		lmsClient := mock.LMSClient{}
		lmsClient.CreateCommentFn = func(ctx context.Context, req lms.CommentRequest) (lms.Comment, error) {
			requests = append(requests, req)
			return lms.Comment{ID: 9, Lesson: req.Lesson, Text: req.Text}, nil
		}

		out, ui := mock.NewUI()

		cmd := &CommandCreate{createInputs{Lesson: 4, Text: "Great lesson!"}}
		assert.Nil(t, cmd.Handler(context.Background(), profile(t), ui, cli.Clients{LMS: lmsClient}))

		assert.Equal(t, []lms.CommentRequest{{Lesson: 4, Text: "Great lesson!"}}, requests)
		assert.Equal(t, "01:23:45 UTC INFO  Successfully posted comment #9 on lesson #4\n", out.String())
	})

	t.Run("should validate the comment", func(t *testing.T) {
		_, ui := mock.NewUI()

		cmd := &CommandCreate{createInputs{Lesson: 4}}
		err := cmd.Handler(context.Background(), profile(t), ui, cli.Clients{LMS: mock.LMSClient{}})
		assert.Equal(t, errors.New("invalid comment: text is required"), err)
	})

	t.Run("should surface the server error", func(t *testing.T) {
		lmsClient := mock.LMSClient{}
		lmsClient.CreateCommentFn = func(ctx context.Context, req lms.CommentRequest) (lms.Comment, error) {
			return lms.Comment{}, api.ServerError{StatusCode: 404, Status: "404 Not Found", Detail: "Not found."}
		}

		_, ui := mock.NewUI()

		cmd := &CommandCreate{createInputs{Lesson: 4, Text: "Great lesson!"}}
		err := cmd.Handler(context.Background(), profile(t), ui, cli.Clients{LMS: lmsClient})
		assert.Equal(t, errors.New("failed to post comment: 404 Not Found: Not found."), err)
	})

	t.Run("should require a login", func(t *testing.T) {
		_, ui := mock.NewUI()

		cmd := &CommandCreate{createInputs{Lesson: 4, Text: "Great lesson!"}}
		assert.Equal(t, cli.ErrNotLoggedIn, cmd.Handler(context.Background(), mock.NewProfile(t), ui, cli.Clients{LMS: mock.LMSClient{}}))
	})
}
