package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/student-marketplace/application/user"
	"github.com/muhammadheryan/student-marketplace/cmd/config"
	"github.com/muhammadheryan/student-marketplace/constant"
	redismocks "github.com/muhammadheryan/student-marketplace/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/student-marketplace/mocks/repository/user"
	"github.com/muhammadheryan/student-marketplace/model"
	cerr "github.com/muhammadheryan/student-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func checkErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		req      *model.RegisterRequest
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new student",
			req: &model.RegisterRequest{
				Name:     " Dana ",
				Email:    "Dana@Campus.edu",
				Campus:   "North Campus",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "dana@campus.edu"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Name == "Dana" &&
							ent.Email == "dana@campus.edu" &&
							ent.Campus == "North Campus" &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
					})).
					Return(func(_ context.Context, ent *model.UserEntity) (*model.UserEntity, error) {
						ent.ID = 12
						return ent, nil
					}).
					Once()
			},
			want: &model.RegisterResponse{
				ID:     12,
				Name:   "Dana",
				Email:  "dana@campus.edu",
				Campus: "North Campus",
			},
		},
		{
			name: "error: email already registered",
			req: &model.RegisterRequest{
				Name:     "Dana",
				Email:    "dana@campus.edu",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "dana@campus.edu"}).
					Return(&model.UserEntity{ID: 1, Email: "dana@campus.edu"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Get returns error",
			req: &model.RegisterRequest{
				Name:     "Dana",
				Email:    "dana@campus.edu",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "dana@campus.edu"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			req: &model.RegisterRequest{
				Name:     "Dana",
				Email:    "dana@campus.edu",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "dana@campus.edu"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(authConfig(), f.userRepo, f.redisRepo)

			got, err := app.Register(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(t *testing.T, f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login is case-insensitive on email",
			req:  &model.LoginRequest{Email: "DANA@campus.edu", Password: "password123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "dana@campus.edu"}).
					Return(&model.UserEntity{
						ID:           1,
						Name:         "Dana",
						Email:        "dana@campus.edu",
						PasswordHash: hashed(t, "password123"),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{Name: "Dana", Email: "dana@campus.edu"},
		},
		{
			name: "error: user not found",
			req:  &model.LoginRequest{Email: "nobody@campus.edu", Password: "password123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "nobody@campus.edu"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: invalid password",
			req:  &model.LoginRequest{Email: "dana@campus.edu", Password: "wrongpassword"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "dana@campus.edu"}).
					Return(&model.UserEntity{ID: 1, PasswordHash: hashed(t, "password123")}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: SetSession returns error",
			req:  &model.LoginRequest{Email: "dana@campus.edu", Password: "password123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "dana@campus.edu"}).
					Return(&model.UserEntity{ID: 1, PasswordHash: hashed(t, "password123")}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(errors.New("redis error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			}
			tt.mockCall(t, f)
			app := appuser.NewUserApp(authConfig(), f.userRepo, f.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				return
			}

			if got.Name != tt.want.Name || got.Email != tt.want.Email {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

// issueToken logs user 1 in and returns the token with its session id.
func issueToken(t *testing.T, app appuser.UserApp, userRepo *usermocks.UserRepository, redisRepo *redismocks.RedisRepository) (string, string) {
	t.Helper()
	var jti string
	userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
		ID:           1,
		PasswordHash: hashed(t, "password123"),
	}, nil).Once()
	redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).
		Once()

	resp, err := app.Login(context.Background(), &model.LoginRequest{Email: "dana@campus.edu", Password: "password123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return resp.Token, jti
}

func TestUserApp_ValidateToken(t *testing.T) {
	tests := []struct {
		name     string
		badToken string
		session  func(redisRepo *redismocks.RedisRepository, jti string)
		want     uint64
		wantErr  bool
	}{
		{
			name: "success: valid token",
			session: func(redisRepo *redismocks.RedisRepository, jti string) {
				redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(1), nil).Once()
			},
			want: 1,
		},
		{
			name:     "error: invalid token format",
			badToken: "invalid.token.string",
			wantErr:  true,
		},
		{
			name: "error: session not found in redis",
			session: func(redisRepo *redismocks.RedisRepository, jti string) {
				redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), errors.New("redis: nil")).Once()
			},
			wantErr: true,
		},
		{
			name: "error: session belongs to another user",
			session: func(redisRepo *redismocks.RedisRepository, jti string) {
				redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(2), nil).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := usermocks.NewUserRepository(t)
			redisRepo := redismocks.NewRedisRepository(t)
			app := appuser.NewUserApp(authConfig(), userRepo, redisRepo)

			token := tt.badToken
			if token == "" {
				var jti string
				token, jti = issueToken(t, app, userRepo, redisRepo)
				tt.session(redisRepo, jti)
			}

			got, err := app.ValidateToken(context.Background(), token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ValidateToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	t.Run("success: deletes the session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(authConfig(), userRepo, redisRepo)

		token, jti := issueToken(t, app, userRepo, redisRepo)
		redisRepo.On("DeleteSession", mock.Anything, jti).Return(nil).Once()

		if err := app.Logout(context.Background(), token); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
	})

	t.Run("error: garbage token", func(t *testing.T) {
		app := appuser.NewUserApp(authConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))

		err := app.Logout(context.Background(), "garbage")
		checkErrCode(t, err, constant.ErrUnauthorize)
	})
}
