package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusai/src/models"
	"campusai/src/testutil/fakebackend"
)

func newTestClient(t *testing.T, backend *fakebackend.Backend) *Client {
	t.Helper()
	srv := backend.Start(t)
	client, err := NewClient(srv.URL+"/", 5*time.Second, nil)
	require.NoError(t, err)
	return client
}

func TestAskSendsMessageVerbatim(t *testing.T) {
	backend := fakebackend.New()
	backend.Respond(PathAsk, http.StatusOK, map[string]string{
		"answer":     "Exam form deadline is 15th March.",
		"intent":     "exam",
		"confidence": "High",
	})
	client := newTestClient(t, backend)

	resp, err := client.Ask(context.Background(), "[exam] hello")
	require.NoError(t, err)
	assert.Equal(t, "Exam form deadline is 15th March.", resp.Answer)
	assert.Equal(t, "exam", resp.Intent)

	reqs := backend.Requests(PathAsk)
	require.Len(t, reqs, 1)
	var body models.AskRequest
	require.NoError(t, reqs[0].Decode(&body))
	assert.Equal(t, "[exam] hello", body.Message)
}

func TestAskMissingAnswer(t *testing.T) {
	backend := fakebackend.New()
	client := newTestClient(t, backend)

	resp, err := client.Ask(context.Background(), "[general] hi")
	require.NoError(t, err)
	assert.Empty(t, resp.Answer)
}

func TestAskMalformedBody(t *testing.T) {
	backend := fakebackend.New()
	backend.RespondRaw(PathAsk, http.StatusOK, "<html>oops</html>")
	client := newTestClient(t, backend)

	_, err := client.Ask(context.Background(), "[general] hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestAskServerError(t *testing.T) {
	backend := fakebackend.New()
	backend.Respond(PathAsk, http.StatusInternalServerError, map[string]string{"error": "boom"})
	client := newTestClient(t, backend)

	_, err := client.Ask(context.Background(), "[general] hi")
	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestAskNetworkFailure(t *testing.T) {
	backend := fakebackend.New()
	srv := backend.Start(t)
	client, err := NewClient(srv.URL, time.Second, nil)
	require.NoError(t, err)
	srv.Close()

	_, err = client.Ask(context.Background(), "[general] hi")
	assert.Error(t, err)
}

func TestAskCancelledContext(t *testing.T) {
	client := newTestClient(t, fakebackend.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Ask(ctx, "[general] hi")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommendScholarshipPostsProfileAsIs(t *testing.T) {
	backend := fakebackend.New()
	backend.Respond(PathScholarship, http.StatusOK, map[string]any{
		"data": []map[string]any{{
			"name":        "Merit Grant",
			"eligible":    false,
			"benefit":     25000,
			"probability": "Low",
			"reasons":     []string{"Income above limit"},
		}},
	})
	client := newTestClient(t, backend)

	profile := models.ScholarshipProfile{Course: "BTech", Year: "", Category: "OBC", Income: "not a number"}
	resp, err := client.RecommendScholarship(context.Background(), profile)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "25000", resp.Data[0].Benefit.String())
	assert.False(t, resp.Data[0].Eligible)

	reqs := backend.Requests(PathScholarship)
	require.Len(t, reqs, 1)
	var sent models.ScholarshipProfile
	require.NoError(t, reqs[0].Decode(&sent))
	assert.Equal(t, profile, sent)
}

func TestAnalyticsDefaultsMissingFields(t *testing.T) {
	backend := fakebackend.New()
	backend.Respond(PathAnalytics, http.StatusOK, map[string]int{"total_queries": 7, "exam": 2})
	client := newTestClient(t, backend)

	snap, err := client.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AnalyticsSnapshot{TotalQueries: 7, Exam: 2}, *snap)
}

func TestAnalyticsRequiresAdminSession(t *testing.T) {
	backend := fakebackend.New()
	backend.RequireAdmin()
	backend.AddUser("admin@campus.edu", "secret", models.RoleAdmin)
	backend.Respond(PathAnalytics, http.StatusOK, map[string]int{"total_queries": 1})
	client := newTestClient(t, backend)
	ctx := context.Background()

	_, err := client.Analytics(ctx)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	auth, err := client.Login(ctx, "admin@campus.edu", "secret", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, auth.Role)
	assert.NotEmpty(t, client.Cookies())

	snap, err := client.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalQueries)

	require.NoError(t, client.Logout(ctx))
	assert.Empty(t, client.Cookies())

	_, err = client.Analytics(ctx)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestLoginFailures(t *testing.T) {
	backend := fakebackend.New()
	backend.AddUser("student@campus.edu", "pw", models.RoleStudent)
	client := newTestClient(t, backend)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		role     string
		status   int
		message  string
	}{
		{"unknown user", "nobody@campus.edu", "pw", models.RoleStudent, http.StatusUnauthorized, "User not found"},
		{"wrong password", "student@campus.edu", "nope", models.RoleStudent, http.StatusUnauthorized, "Invalid password"},
		{"wrong role", "student@campus.edu", "pw", models.RoleAdmin, http.StatusForbidden, "Unauthorized role access"},
		{"missing fields", "", "", "", http.StatusBadRequest, "Missing fields"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.Login(ctx, tc.username, tc.password, tc.role)
			var apiErr *models.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.message, apiErr.Message)
		})
	}
}

func TestSignup(t *testing.T) {
	backend := fakebackend.New()
	client := newTestClient(t, backend)
	ctx := context.Background()

	require.NoError(t, client.Signup(ctx, "new@campus.edu", "pw"))

	err := client.Signup(ctx, "new@campus.edu", "pw")
	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	_, err = client.Login(ctx, "new@campus.edu", "pw", models.RoleStudent)
	assert.NoError(t, err)
}

func TestSetCookiesRestoresSession(t *testing.T) {
	backend := fakebackend.New()
	backend.RequireAdmin()
	backend.AddUser("admin", "pw", models.RoleAdmin)
	srv := backend.Start(t)

	first, err := NewClient(srv.URL, time.Second, nil)
	require.NoError(t, err)
	_, err = first.Login(context.Background(), "admin", "pw", models.RoleAdmin)
	require.NoError(t, err)

	second, err := NewClient(srv.URL, time.Second, nil)
	require.NoError(t, err)
	second.SetCookies(first.Cookies())

	_, err = second.Analytics(context.Background())
	assert.NoError(t, err)
}
