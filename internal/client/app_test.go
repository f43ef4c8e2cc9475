// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "header.payload.signature"
	testTaskID = "0190a5f4-9b10-7d2a-8c55-1a2b3c4d5e6f"
)

var testConfig = config.ClientConfig{ServerURL: "http://localhost:8080", RequestTimeout: 5 * time.Second}

type testApp struct {
	app     *App
	adapter *mock.MockServerAdapter
	in      *bytes.Buffer
	out     *bytes.Buffer
	errOut  *bytes.Buffer

	// gotConfig is the configuration the adapter was built with.
	gotConfig config.ClientConfig
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv(TokenEnv, "")

	ctrl := gomock.NewController(t)
	ta := &testApp{
		adapter: mock.NewMockServerAdapter(ctrl),
		in:      &bytes.Buffer{},
		out:     &bytes.Buffer{},
		errOut:  &bytes.Buffer{},
	}

	factory := func(cfg config.ClientConfig, _ *logger.Logger) (adapter.ServerAdapter, error) {
		ta.gotConfig = cfg
		return ta.adapter, nil
	}

	ta.app = NewApp(testConfig, logger.Nop(),
		WithIO(ta.in, ta.out, ta.errOut),
		WithAdapterFactory(factory),
		WithVersion("1.2.3"),
	)

	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(context.Background(), args)
}

func testTask() models.Task {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Task{
		TaskID:    testTaskID,
		Title:     "Buy milk",
		UserID:    "user-1",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	t.Run("flags override config", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken("flag-token")
		ta.adapter.EXPECT().Me(gomock.Any()).Return(models.PublicUser{}, nil)

		err := ta.run("--server", "https://api.example.com", "--timeout", "2s", "--token", "flag-token", "me")
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", ta.gotConfig.ServerURL)
		assert.Equal(t, 2*time.Second, ta.gotConfig.RequestTimeout)
	})

	t.Run("token from env", func(t *testing.T) {
		ta := newTestApp(t)
		t.Setenv(TokenEnv, "env-token")
		ta.adapter.EXPECT().SetToken("env-token")
		ta.adapter.EXPECT().Me(gomock.Any()).Return(models.PublicUser{}, nil)

		require.NoError(t, ta.run("me"))
		assert.Equal(t, testConfig, ta.gotConfig)
	})

	t.Run("flag wins over env", func(t *testing.T) {
		ta := newTestApp(t)
		t.Setenv(TokenEnv, "env-token")
		ta.adapter.EXPECT().SetToken("flag-token")
		ta.adapter.EXPECT().Me(gomock.Any()).Return(models.PublicUser{}, nil)

		require.NoError(t, ta.run("--token", "flag-token", "me"))
	})

	t.Run("invalid server url", func(t *testing.T) {
		ta := newTestApp(t)

		err := ta.run("--server", "localhost", "me")
		assert.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)
	})

	t.Run("version flag", func(t *testing.T) {
		ta := newTestApp(t)

		require.NoError(t, ta.run("--version"))
		assert.Contains(t, ta.out.String(), "1.2.3")
	})
}

func TestApp_SignUp(t *testing.T) {
	t.Run("password flag", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken("")
		ta.adapter.EXPECT().
			SignUp(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "Str0ng!Pass"}).
			Return(models.PublicUser{UserID: "user-1", Email: "alice@example.com"}, nil)

		require.NoError(t, ta.run("signup", "--email", " alice@example.com ", "--password", "Str0ng!Pass"))
		assert.Equal(t, "Registered alice@example.com (id user-1)\n", ta.out.String())
	})

	t.Run("password prompted", func(t *testing.T) {
		ta := newTestApp(t)
		ta.in.WriteString("Str0ng!Pass\n")
		ta.adapter.EXPECT().SetToken("")
		ta.adapter.EXPECT().
			SignUp(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "Str0ng!Pass"}).
			Return(models.PublicUser{UserID: "user-1", Email: "alice@example.com"}, nil)

		require.NoError(t, ta.run("signup", "--email", "alice@example.com"))
		assert.Equal(t, "Password: ", ta.errOut.String())
	})

	t.Run("missing email", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken("")

		assert.ErrorIs(t, ta.run("signup", "--password", "x"), ErrEmptyEmail)
	})

	t.Run("empty prompted password", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken("")

		assert.ErrorIs(t, ta.run("signup", "--email", "alice@example.com"), ErrEmptyPassword)
	})

	t.Run("server error", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken("")
		ta.adapter.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, adapter.ErrConflict)

		assert.ErrorIs(t, ta.run("signup", "--email", "alice@example.com", "--password", "p"), adapter.ErrConflict)
	})
}

func TestApp_SignIn(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().SetToken("")
	ta.adapter.EXPECT().
		SignIn(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "Str0ng!Pass"}).
		Return(models.AuthToken{AccessToken: testToken, TokenType: models.TokenTypeBearer}, nil)

	require.NoError(t, ta.run("signin", "--email", "alice@example.com", "--password", "Str0ng!Pass"))
	assert.Equal(t, testToken+"\n", ta.out.String())
}

func TestApp_Me(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().SetToken(testToken)
	ta.adapter.EXPECT().Me(gomock.Any()).Return(models.PublicUser{
		UserID:    "user-1",
		Email:     "alice@example.com",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}, nil)

	require.NoError(t, ta.run("--token", testToken, "me"))
	assert.Contains(t, ta.out.String(), "alice@example.com")
	assert.Contains(t, ta.out.String(), "Last sign-in: never")
}

func TestApp_Version(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().SetToken("")
	ta.adapter.EXPECT().ServerVersion(gomock.Any()).Return("0.9.0", nil)

	require.NoError(t, ta.run("version"))
	assert.Equal(t, "Client version: 1.2.3\nServer version: 0.9.0\n", ta.out.String())
}

func TestApp_Tasks(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		ta := newTestApp(t)
		done := testTask()
		done.TaskID = "0190a5f4-9b10-7d2a-8c55-000000000002"
		done.Title = "Walk the dog"
		done.Completed = true

		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().ListTasks(gomock.Any()).Return([]models.Task{testTask(), done}, nil)

		require.NoError(t, ta.run("--token", testToken, "tasks", "list"))
		lines := strings.Split(strings.TrimSpace(ta.out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "TITLE")
		assert.Contains(t, lines[1], "open")
		assert.Contains(t, lines[1], "Buy milk")
		assert.Contains(t, lines[2], "done")
	})

	t.Run("list empty", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().ListTasks(gomock.Any()).Return([]models.Task{}, nil)

		require.NoError(t, ta.run("--token", testToken, "tasks", "ls"))
		assert.Equal(t, "No tasks.\n", ta.out.String())
	})

	t.Run("add joins args", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().
			CreateTask(gomock.Any(), models.TaskRequest{Title: "Buy milk"}).
			Return(testTask(), nil)

		require.NoError(t, ta.run("--token", testToken, "tasks", "add", "Buy", "milk"))
		assert.Contains(t, ta.out.String(), "Status:      open")
	})

	t.Run("add with description", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().
			CreateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r models.TaskRequest) (models.Task, error) {
				require.NotNil(t, r.Description)
				assert.Equal(t, "2 liters", *r.Description)
				task := testTask()
				task.Description = r.Description
				return task, nil
			})

		require.NoError(t, ta.run("--token", testToken, "tasks", "add", "Buy milk", "-d", "2 liters"))
		assert.Contains(t, ta.out.String(), "Description: 2 liters")
	})

	t.Run("add without title", func(t *testing.T) {
		ta := newTestApp(t)

		assert.Error(t, ta.run("tasks", "add"))
	})

	t.Run("show", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().GetTask(gomock.Any(), testTaskID).Return(testTask(), nil)

		require.NoError(t, ta.run("--token", testToken, "tasks", "show", testTaskID))
		assert.Contains(t, ta.out.String(), testTaskID)
	})

	t.Run("show not found", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().GetTask(gomock.Any(), testTaskID).Return(models.Task{}, adapter.ErrNotFound)

		assert.ErrorIs(t, ta.run("--token", testToken, "tasks", "show", testTaskID), adapter.ErrNotFound)
	})

	t.Run("rm", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().DeleteTask(gomock.Any(), testTaskID).Return(nil)

		require.NoError(t, ta.run("--token", testToken, "tasks", "rm", testTaskID))
		assert.Equal(t, "Deleted "+testTaskID+"\n", ta.out.String())
	})

	t.Run("toggle", func(t *testing.T) {
		ta := newTestApp(t)
		toggled := testTask()
		toggled.Completed = true

		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().ToggleTask(gomock.Any(), testTaskID).Return(toggled, nil)

		require.NoError(t, ta.run("--token", testToken, "tasks", "toggle", testTaskID))
		assert.Contains(t, ta.out.String(), "Status:      done")
	})
}

func TestApp_TasksEdit(t *testing.T) {
	description := "2 liters"
	current := testTask()
	current.Description = &description

	t.Run("title only keeps description", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().GetTask(gomock.Any(), testTaskID).Return(current, nil)
		ta.adapter.EXPECT().
			UpdateTask(gomock.Any(), testTaskID, models.TaskRequest{Title: "Buy oat milk", Description: &description}).
			Return(current, nil)

		require.NoError(t, ta.run("--token", testToken, "tasks", "edit", testTaskID, "--title", "Buy oat milk"))
	})

	t.Run("empty description clears it", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)
		ta.adapter.EXPECT().GetTask(gomock.Any(), testTaskID).Return(current, nil)
		ta.adapter.EXPECT().
			UpdateTask(gomock.Any(), testTaskID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r models.TaskRequest) (models.Task, error) {
				assert.Equal(t, "Buy milk", r.Title)
				require.NotNil(t, r.Description)
				assert.Empty(t, *r.Description)
				return testTask(), nil
			})

		require.NoError(t, ta.run("--token", testToken, "tasks", "edit", testTaskID, "--description", ""))
	})

	t.Run("nothing to edit", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)

		assert.ErrorIs(t, ta.run("--token", testToken, "tasks", "edit", testTaskID), ErrNothingToEdit)
	})

	t.Run("blank title", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().SetToken(testToken)

		assert.ErrorIs(t, ta.run("--token", testToken, "tasks", "edit", testTaskID, "-t", "  "), ErrEmptyTitle)
	})
}

// TestApp_AgainstHTTPServer runs the commands through the real HTTP adapter.
func TestApp_AgainstHTTPServer(t *testing.T) {
	t.Setenv(TokenEnv, "")

	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var credentials models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		assert.Equal(t, "alice@example.com", credentials.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthToken{AccessToken: testToken, TokenType: models.TokenTypeBearer, ExpiresIn: 604800})
	})
	mux.HandleFunc("GET /api/tasks/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Task{testTask()})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("WWW-Authenticate", "Bearer")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "Token has expired", ErrorCode: models.ErrorCodeExpiredToken})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	newApp := func(out *bytes.Buffer) *App {
		cfg := config.ClientConfig{ServerURL: srv.URL, RequestTimeout: 5 * time.Second}
		return NewApp(cfg, logger.Nop(), WithIO(strings.NewReader("Str0ng!Pass\n"), out, &bytes.Buffer{}))
	}

	out := &bytes.Buffer{}
	require.NoError(t, newApp(out).Run(context.Background(), []string{"signin", "--email", "alice@example.com"}))
	token := strings.TrimSpace(out.String())
	assert.Equal(t, testToken, token)

	out.Reset()
	require.NoError(t, newApp(out).Run(context.Background(), []string{"--token", token, "tasks", "list"}))
	assert.Equal(t, "Bearer "+testToken, gotAuth)
	assert.Contains(t, out.String(), "Buy milk")

	err := newApp(out).Run(context.Background(), []string{"--token", token, "me"})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	var respErr *adapter.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, models.ErrorCodeExpiredToken, respErr.Code)

	err = newApp(out).Run(context.Background(), []string{"me"})
	assert.ErrorIs(t, err, adapter.ErrNotSignedIn)
}
