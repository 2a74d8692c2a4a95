package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sumit1004/neurolink_backend/config"
	"github.com/sumit1004/neurolink_backend/internal/repo"
	entuser "github.com/sumit1004/neurolink_backend/internal/repo/user"
	"github.com/sumit1004/neurolink_backend/pkg/email"
	pasetotoken "github.com/sumit1004/neurolink_backend/pkg/paseto"
	"github.com/sumit1004/neurolink_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyConfirm returns the Redis key holding the user id behind a
// confirmation token.
func redisKeyConfirm(token string) string { return "confirm:" + token }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SignUpRequest struct {
	Email       string
	Password    string
	DisplayName string
}

type SignInRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*repo.User, error)
	ConfirmEmail(ctx context.Context, token string) error
	ResendConfirmation(ctx context.Context, emailAddr string) error
	SignIn(ctx context.Context, req SignInRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	SignOut(ctx context.Context, sessionID uuid.UUID) error
	GetUser(ctx context.Context, userID uuid.UUID) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	mail   *email.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		mail:   mail,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// SignUp
// ---------------------------------------------------------------------------

func (s *authService) SignUp(ctx context.Context, req SignUpRequest) (*repo.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().Where(entuser.Email(req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	q := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetEmailConfirmed(!s.cfg.Authentication.ConfirmationRequired).
		SetStatus("active")

	if req.DisplayName != "" {
		q = q.SetDisplayName(req.DisplayName)
	}

	u, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.cfg.Authentication.ConfirmationRequired {
		if err := s.sendConfirmation(ctx, u); err != nil {
			// Email failure shouldn't block sign-up; resend is available.
			slog.Warn("failed to send confirmation email", "email", u.Email, "error", err)
		}
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// ConfirmEmail
// ---------------------------------------------------------------------------

func (s *authService) ConfirmEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrConfirmTokenBad
	}

	uidStr, err := s.rdb.Get(ctx, redisKeyConfirm(token)).Result()
	if err == redis.Nil {
		return ErrConfirmTokenBad
	}
	if err != nil {
		return fmt.Errorf("redis get confirm token: %w", err)
	}

	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return ErrConfirmTokenBad
	}

	if err := s.db.User.UpdateOneID(uid).SetEmailConfirmed(true).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrConfirmTokenBad
		}
		return fmt.Errorf("confirm email: %w", err)
	}

	s.rdb.Del(ctx, redisKeyConfirm(token))
	return nil
}

// ---------------------------------------------------------------------------
// ResendConfirmation
// ---------------------------------------------------------------------------

func (s *authService) ResendConfirmation(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	u, err := s.db.User.Query().Where(entuser.Email(emailAddr)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if u.EmailConfirmed {
		return ErrAlreadyConfirmed
	}

	return s.sendConfirmation(ctx, u)
}

// ---------------------------------------------------------------------------
// SignIn
// ---------------------------------------------------------------------------

func (s *authService) SignIn(ctx context.Context, req SignInRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.db.User.Query().Where(entuser.Email(req.Email)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Status == "suspended" {
		return nil, ErrAccountSuspended
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if s.cfg.Authentication.ConfirmationRequired && !u.EmailConfirmed {
		return nil, ErrEmailNotConfirmed
	}

	now := time.Now()
	s.db.User.UpdateOne(u).SetLastLoginAt(now).Save(ctx)

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	s.rdb.Expire(ctx, sessionKey, s.paseto.RefreshTTL())

	// Issue new access token only (refresh token stays the same until sign-out)
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// SignOut
// ---------------------------------------------------------------------------

func (s *authService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		slog.Debug("sign-out: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// GetUser
// ---------------------------------------------------------------------------

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendConfirmation(ctx context.Context, u *repo.User) error {
	token := randToken(32)

	ttl := time.Duration(s.cfg.Authentication.ConfirmTokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	if err := s.rdb.Set(ctx, redisKeyConfirm(token), u.ID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("store confirm token: %w", err)
	}

	confirmURL := fmt.Sprintf("%s/api/v1/auth/confirm?token=%s",
		strings.TrimRight(s.cfg.Authentication.ConfirmationBaseURL, "/"), token)

	name := ""
	if u.DisplayName != nil {
		name = *u.DisplayName
	}

	msg := email.BuildConfirmationEmail(email.ConfirmationEmailData{
		DisplayName:     name,
		Email:           u.Email,
		ConfirmationURL: confirmURL,
	})

	return s.mail.Send(ctx, msg)
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	// Store in Redis
	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), s.paseto.RefreshTTL()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
	}, nil
}

func randToken(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
