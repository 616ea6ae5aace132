package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Saanwar2002/Ideahero/internal/database"
	"github.com/Saanwar2002/Ideahero/internal/models"
	"github.com/Saanwar2002/Ideahero/internal/server"
)

var (
	testDB     database.Service
	testRouter *gin.Engine
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("ideahero_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	testDB, err = database.Open(dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	gin.SetMode(gin.TestMode)
	testRouter = server.New(testDB, []byte("handlers-test-secret")).RegisterRoutes()

	code := m.Run()

	_ = testDB.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// doRequest runs one request through the full router.
func doRequest(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        struct {
		ID              string   `json:"id"`
		Email           string   `json:"email"`
		FullName        string   `json:"full_name"`
		Skills          []string `json:"skills"`
		Interests       []string `json:"interests"`
		ExperienceLevel string   `json:"experience_level"`
		ReputationScore int      `json:"reputation_score"`
	} `json:"user"`
}

// registerUser creates a fresh user and returns its bearer token and id.
func registerUser(t *testing.T, fullName string) (string, string) {
	t.Helper()

	w := doRequest(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     uuid.NewString() + "@ideahero.test",
		"password":  "Password123!",
		"full_name": fullName,
		"skills":    []string{"Go"},
		"interests": []string{"SaaS"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp authResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.User.ID)
	return resp.AccessToken, resp.User.ID
}

// createIdea inserts a curated idea directly, the way the seeder would.
func createIdea(t *testing.T, category string) string {
	t.Helper()

	idea := models.Idea{
		ID:          uuid.NewString(),
		Title:       "Test idea " + uuid.NewString(),
		Description: "A sufficiently descriptive test idea.",
		Category:    category,
		Source:      "HackerNews",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, testDB.GetDB().Create(&idea).Error)
	return idea.ID
}

func reputationOf(t *testing.T, userID string) int {
	t.Helper()

	var user models.User
	require.NoError(t, testDB.GetDB().First(&user, "id = ?", userID).Error)
	return user.ReputationScore
}
