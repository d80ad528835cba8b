package services

import (
	"context"
	"errors"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

// Claims carries the registered claims plus the public profile fields the
// token was issued for. The subject holds the user id.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authServiceImpl struct {
	logger        zerolog.Logger
	users         storage.UserRepository
	jwtIssuer     string
	jwtSigningKey []byte
	jwtTokenTTL   time.Duration
}

func NewAuthService(
	logger zerolog.Logger,
	users storage.UserRepository,
	jwtIssuer string,
	jwtSigningKey []byte,
	jwtTokenTTL time.Duration,
) AuthService {
	return &authServiceImpl{
		logger:        logger,
		users:         users,
		jwtIssuer:     jwtIssuer,
		jwtSigningKey: jwtSigningKey,
		jwtTokenTTL:   jwtTokenTTL,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	_, err := s.users.FindByUsername(ctx, params.Username)
	if err == nil {
		s.logger.Warn().
			Str("username", params.Username).
			Msg("username already taken")
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().
			Err(err).
			Msg("failed to look up username")
		return nil, err
	}

	_, err = s.users.FindByEmail(ctx, params.Email)
	if err == nil {
		s.logger.Warn().
			Str("email", params.Email).
			Msg("email already registered")
		return nil, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().
			Err(err).
			Msg("failed to look up email")
		return nil, err
	}

	passwordHash, err := argon2id.CreateHash(params.Password, argon2id.DefaultParams)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := models.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.users.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			// Lost a race with a concurrent registration; report
			// it the same way as the pre-checks.
			s.logger.Warn().
				Str("username", user.Username).
				Msg("duplicate user on insert")
			return nil, ErrUsernameTaken
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", user.ID.Hex()).
		Msg("inserted user")

	token, err := s.issueToken(&user)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID.Hex()).
		Msg("registered user")
	return &AuthResult{Token: token, User: &user}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("username", params.Username).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to select user by username")
		return nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(params.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Warn().
			Str("user_id", user.ID.Hex()).
			Msg("passwords do not match")
		return nil, ErrUserPasswordMismatch
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID.Hex()).
		Msg("logged in user")
	return &AuthResult{Token: token, User: user}, nil
}

func (s *authServiceImpl) VerifyToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.jwtSigningKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("failed to parse token")
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("token subject is not an object id")
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("user_id", claims.Subject).
				Msg("token user no longer exists")
			return nil, ErrInvalidToken
		}

		s.logger.Error().
			Err(err).
			Msg("failed to select token user")
		return nil, err
	}
	return user, nil
}

func (s *authServiceImpl) issueToken(user *models.User) (string, error) {
	tokenUUID, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenUUID.String(),
			Issuer:    s.jwtIssuer,
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtTokenTTL)),
		},
		Username: user.Username,
		Email:    user.Email,
	})

	return token.SignedString(s.jwtSigningKey)
}
