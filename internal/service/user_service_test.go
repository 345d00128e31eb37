package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/repository/mocks"
	"github.com/limbo/engagement/internal/repository"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pool := repository.Connect(setupUsersTestDB(t))
	t.Cleanup(pool.Close)
	repo := repository.NewUsersRepoWithConn(pool)
	us := service.NewUserService(repo)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.Error(t, err)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa", "bbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("found by name", func(t *testing.T) {
		res, err := us.GetByName(ctx, username)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by name", func(t *testing.T) {
		_, err := us.GetByName(ctx, "unexisted")
		assert.Error(t, err)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.Error(t, err)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.Error(t, err)
	})
}

func TestUserServiceLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash("correct_password")
	if err != nil {
		t.Fatal(err)
	}
	user := &entity.User{ID: uuid.New(), Name: "reader", PasswordHash: hash}
	storageErr := errorvalues.Storage("finding user", errors.New("connection reset"))

	testCases := []struct {
		Desc         string
		Password     string
		MockPrepFunc func()
		Error        error
	}{
		{
			Desc:     "logged in",
			Password: "correct_password",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "reader").Return(user, nil)
			},
		},
		{
			Desc:     "wrong password",
			Password: "wrong_password",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "reader").Return(user, nil)
			},
			Error: errorvalues.ErrWrongCredentials,
		},
		{
			Desc:     "unknown user",
			Password: "correct_password",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "reader").Return(nil, errorvalues.ErrUserNotFound)
			},
			Error: errorvalues.ErrWrongCredentials,
		},
		{
			Desc:     "storage failure",
			Password: "correct_password",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "reader").Return(nil, storageErr)
			},
			Error: errorvalues.ErrStorage,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := us.Login(ctx, "reader", tc.Password)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, user, res)
		})
	}
}

func TestUserServiceRegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	us := service.NewUserService(mocks.NewMockUsersRepositoryI(ctrl))
	testCases := []struct {
		Desc string
		Req  service.RegisterRequest
	}{
		{Desc: "short name", Req: service.RegisterRequest{Name: "ab", Password: "long_enough"}},
		{Desc: "bad symbols", Req: service.RegisterRequest{Name: "a b-c", Password: "long_enough"}},
		{Desc: "short password", Req: service.RegisterRequest{Name: "reader", Password: "short"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := us.Register(context.Background(), &tc.Req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		})
	}
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("barn"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
