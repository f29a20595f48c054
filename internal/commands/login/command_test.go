package login

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"
	"github.com/smartlms/smartlms-cli/internal/utils/test/mock"
)

func TestLoginHandler(t *testing.T) {
	newSession := api.Session{AccessToken: "newAccessToken", RefreshToken: "newRefreshToken"}

	newClient := func(t *testing.T, profile *user.Profile) mock.LMSClient {
		lmsClient := mock.LMSClient{}
		lmsClient.AuthenticateFn = func(ctx context.Context, username, password string) (api.Session, error) {
			assert.Equal(t, "teacher1", username)
			assert.Equal(t, "password1", password)
			return newSession, nil
		}
		lmsClient.UserProfileFn = func(ctx context.Context) (lms.User, error) {
			assert.Equal(t, newSession, profile.Session())
			return lms.User{ID: 2, Username: "teacher1", FirstName: "Ada", LastName: "Lovelace", RoleName: "Teacher"}, nil
		}
		return lmsClient
	}

	t.Run("with no existing session should save the session and the user with the server role", func(t *testing.T) {
		profile := mock.NewProfile(t)

		out, ui := mock.NewUI()

		cmd := &Command{inputs{Username: "teacher1", Password: "password1"}}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, cli.Clients{LMS: newClient(t, profile)}))

		assert.Equal(t, "01:23:45 UTC INFO  Successfully logged in as Ada Lovelace (Teacher)\n", out.String())

		expectedUser := user.User{Username: "teacher1", FirstName: "Ada", LastName: "Lovelace", Role: user.RoleTeacher}
		assert.Equal(t, newSession, profile.Session())
		assert.Equal(t, expectedUser, profile.User())

		saved := user.NewProfileWithFs(profile.Name, mock.ProfileDir, profile.Fs())
		assert.Nil(t, saved.Load())
		assert.Equal(t, newSession, saved.Session())
		assert.Equal(t, expectedUser, saved.User())
	})

	t.Run("with the same user logged in should replace the session without prompting", func(t *testing.T) {
		profile := mock.NewProfileWithSession(t,
			api.Session{AccessToken: "existingAccessToken", RefreshToken: "existingRefreshToken"},
			user.User{Username: "teacher1", Role: user.RoleTeacher},
		)

		_, ui := mock.NewUI()

		cmd := &Command{inputs{Username: "teacher1", Password: "password1"}}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, cli.Clients{LMS: newClient(t, profile)}))

		assert.Equal(t, newSession, profile.Session())
	})

	t.Run("with another user logged in should prompt the user to continue", func(t *testing.T) {
		existingSession := api.Session{AccessToken: "existingAccessToken", RefreshToken: "existingRefreshToken"}
		existingUser := user.User{Username: "student1", FirstName: "Sam", Role: user.RoleStudent}

		for _, tc := range []struct {
			description     string
			confirmAnswer   string
			expectedUser    user.User
			expectedSession api.Session
		}{
			{
				description:     "and do nothing if the user does not want to proceed",
				confirmAnswer:   "n",
				expectedUser:    existingUser,
				expectedSession: existingSession,
			},
			{
				description:     "and save a new session if the user does want to proceed",
				confirmAnswer:   "y",
				expectedUser:    user.User{Username: "teacher1", FirstName: "Ada", LastName: "Lovelace", Role: user.RoleTeacher},
				expectedSession: newSession,
			},
		} {
			t.Run(tc.description, func(t *testing.T) {
				profile := mock.NewProfileWithSession(t, existingSession, existingUser)

				_, console, _, ui, consoleErr := mock.NewVT10XConsole()
				assert.Nil(t, consoleErr)
				defer console.Close()

				doneCh := make(chan (struct{}))
				go func() {
					defer close(doneCh)
					console.ExpectString("This action will terminate the existing session for user: student1 (Student), would you like to proceed?")
					console.SendLine(tc.confirmAnswer)
					console.ExpectEOF()
				}()

				cmd := &Command{inputs{Username: "teacher1", Password: "password1"}}
				err := cmd.Handler(context.Background(), profile, ui, cli.Clients{LMS: newClient(t, profile)})
				assert.Nil(t, err)

				assert.Nil(t, console.Tty().Close())
				<-doneCh

				assert.Equal(t, tc.expectedUser, profile.User())
				assert.Equal(t, tc.expectedSession, profile.Session())
			})
		}
	})

	t.Run("should return the authentication failure and store no session", func(t *testing.T) {
		profile := mock.NewProfile(t)

		lmsClient := mock.LMSClient{}
		lmsClient.AuthenticateFn = func(ctx context.Context, username, password string) (api.Session, error) {
			return api.Session{}, api.ServerError{
				StatusCode: http.StatusUnauthorized,
				Status:     "401 Unauthorized",
				Detail:     "No active account found with the given credentials",
			}
		}

		_, ui := mock.NewUI()

		cmd := &Command{inputs{Username: "teacher1", Password: "wrong"}}
		err := cmd.Handler(context.Background(), profile, ui, cli.Clients{LMS: lmsClient})

		assert.Equal(t, errors.New("failed to authenticate: 401 Unauthorized: No active account found with the given credentials"), err)
		assert.Equal(t, api.Session{}, profile.Session())
	})

	t.Run("should clear the new session when the user profile cannot be fetched", func(t *testing.T) {
		profile := mock.NewProfile(t)

		lmsClient := mock.LMSClient{}
		lmsClient.AuthenticateFn = func(ctx context.Context, username, password string) (api.Session, error) {
			return newSession, nil
		}
		lmsClient.UserProfileFn = func(ctx context.Context) (lms.User, error) {
			return lms.User{}, errors.New("connection refused")
		}

		_, ui := mock.NewUI()

		cmd := &Command{inputs{Username: "teacher1", Password: "password1"}}
		err := cmd.Handler(context.Background(), profile, ui, cli.Clients{LMS: lmsClient})

		assert.Equal(t, errors.New("failed to fetch the user profile: connection refused"), err)
		assert.Equal(t, api.Session{}, profile.Session())
		assert.Equal(t, user.User{}, profile.User())
	})

	t.Run("with a wrong password should keep the stored session", func(t *testing.T) {
		var paths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
		}))
		defer server.Close()

		existingSession := api.Session{AccessToken: "A1", RefreshToken: "R1"}
		existingUser := user.User{Username: "teacher1", Role: user.RoleTeacher}
		profile := mock.NewProfileWithSession(t, existingSession, existingUser)

		var invalidated int
		lmsClient := lms.NewClient(api.NewAuthClient(
			api.NewClient(server.URL+"/api", server.Client()),
			profile,
			api.WithSessionInvalidatedHandler(func(error) { invalidated++ }),
		))

		_, ui := mock.NewUI()

		cmd := &Command{inputs{Username: "teacher1", Password: "wrong"}}
		err := cmd.Handler(context.Background(), profile, ui, cli.Clients{LMS: lmsClient})

		assert.Equal(t, errors.New("failed to authenticate: 401 Unauthorized: No active account found with the given credentials"), err)
		assert.Equal(t, []string{"/api/token/"}, paths)
		assert.Equal(t, 0, invalidated)
		assert.Equal(t, existingSession, profile.Session())
		assert.Equal(t, existingUser, profile.User())
	})
}
