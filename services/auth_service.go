package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/database"
	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/structs"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: NewCacheService(logger, cfg),
	}
}

func (as *AuthService) Login(ctx context.Context, authRequest *structs.AuthRequest) (*tables.User, error) {
	startTime := time.Now()
	user, err := database.Query[tables.User](as.db).Where("email", authRequest.Email).First(ctx)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		// Could be a legitimate "user not found"
		as.logger.Debug("Database query during login",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("error_detail", lib.GetDetailForLogging(mappedErr)),
		)

		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
				gecho.Field("original_error", err),
			)
		}

		// Always return invalid credentials (don't leak user existence)
		return nil, lib.ErrInvalidCredentials
	}

	// First() can return nil, nil for no results
	if user == nil {
		as.logger.Debug("User not found during login attempt", gecho.Field("identifier", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := as.VerifyPassword(authRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("user_id", user.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User logged in successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	// Remove password hash before returning user
	user.PasswordHash = ""

	if cacheErr := as.cacheService.SetUserInCache(user); cacheErr != nil {
		as.logger.Warn("Failed to set user in cache after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.Id))
	}

	return user, nil
}

func (as *AuthService) Register(ctx context.Context, registerRequest *structs.RegisterRequest) (*tables.User, error) {
	startTime := time.Now()
	passwordHash, err := as.HashPassword(registerRequest.Password, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}
	user := &tables.User{
		Email:        registerRequest.Email,
		FullName:     registerRequest.FullName,
		PasswordHash: passwordHash,
	}
	user, err = database.Query[tables.User](as.db).Insert(ctx, user)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		// Unique violations are user error, not server error
		if lib.IsUniqueViolation(mappedErr) {
			as.logger.Warn("Registration failed - duplicate user",
				gecho.Field("email", registerRequest.Email),
			)
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("email", registerRequest.Email),
			)
		}

		return nil, mappedErr
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User registered successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	// Remove password hash before returning user
	user.PasswordHash = ""

	return user, nil
}

// IsAdmin reports whether the user has an admin row in user_roles.
// Any lookup failure counts as not-admin so that infrastructure errors can
// never widen access.
func (as *AuthService) IsAdmin(ctx context.Context, userID uuid.UUID) bool {
	role, err := database.Query[tables.UserRole](as.db).
		Where("user_id", userID).
		Where("role", tables.RoleAdmin).
		First(ctx)
	if err != nil {
		as.logger.Error("Role lookup failed, denying admin access",
			gecho.Field("error", err),
			gecho.Field("user_id", userID),
		)
		return false
	}

	return role != nil
}

// EnsureAdmin provisions the fixed admin account if it does not exist yet.
// The operation is idempotent: an existing account only gets its admin role
// re-checked, never a second one.
func (as *AuthService) EnsureAdmin(ctx context.Context) (*tables.User, bool, error) {
	cfg := as.cfg.Provision

	existing, err := database.Query[tables.User](as.db).Where("email", cfg.AdminEmail).First(ctx)
	if err != nil {
		return nil, false, lib.MapPgError(err)
	}

	user := existing
	created := false

	if user == nil {
		passwordHash, err := as.HashPassword(cfg.AdminPassword, DefaultParams)
		if err != nil {
			return nil, false, err
		}

		// Account and role land together or not at all; a user row without
		// its admin role would be unusable.
		user = &tables.User{
			Id:            uuid.New(),
			Email:         cfg.AdminEmail,
			FullName:      cfg.AdminFullName,
			PasswordHash:  passwordHash,
			EmailVerified: true,
		}
		err = database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
				return err
			}
			role := &tables.UserRole{UserId: user.Id, Role: tables.RoleAdmin}
			_, err := tx.NewInsert().Model(role).Exec(ctx)
			return err
		})
		if err != nil {
			mappedErr := lib.MapPgError(err)
			// A concurrent provisioning call may have won the insert race
			if lib.IsUniqueViolation(mappedErr) {
				user, err = database.Query[tables.User](as.db).Where("email", cfg.AdminEmail).First(ctx)
				if err != nil || user == nil {
					return nil, false, lib.MapPgError(err)
				}
			} else {
				return nil, false, mappedErr
			}
		} else {
			created = true
		}
	}

	if !created {
		hasRole, err := database.Query[tables.UserRole](as.db).
			Where("user_id", user.Id).
			Where("role", tables.RoleAdmin).
			Exists(ctx)
		if err != nil {
			return nil, false, lib.MapPgError(err)
		}

		if !hasRole {
			_, err = database.Query[tables.UserRole](as.db).Insert(ctx, &tables.UserRole{
				UserId: user.Id,
				Role:   tables.RoleAdmin,
			})
			if err != nil {
				mappedErr := lib.MapPgError(err)
				if !lib.IsUniqueViolation(mappedErr) {
					return nil, false, mappedErr
				}
			}
		}
	}

	user.PasswordHash = ""

	as.logger.Info("Admin account ensured",
		gecho.Field("email", cfg.AdminEmail),
		gecho.Field("created", created),
	)

	return user, created, nil
}

// HashPassword hashes a plain-text password and returns a string and possible error
func (as *AuthService) HashPassword(password string, p *structs.ArgonParams) (string, error) {
	salt, err := generateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	// format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	params := fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads)
	encoded := fmt.Sprintf("$argon2id$v=19$%s$%s$%s", params, b64Salt, b64Hash)
	return encoded, nil
}

func generateSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// VerifyPassword verifies a plain-text password against a hashed password
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	parts, err := lib.DecodeArgon2Hash(hashedPassword)
	if err != nil {
		return false, err
	}

	// Hash the input password with the same parameters
	hash := argon2.IDKey([]byte(password), parts.Salt, parts.Time, parts.Memory, parts.Threads, parts.KeyLen)

	return lib.SecureCompare(hash, parts.Hash), nil
}

// GenerateAccessToken generates a JWT access token for the given user
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	return as.generateToken(user, as.cfg.Auth.AccessTokenSecret, as.GetAccessTokenExpiration())
}

// GenerateRefreshToken generates a JWT refresh token for the given user
func (as *AuthService) GenerateRefreshToken(user *tables.User) (string, error) {
	return as.generateToken(user, as.cfg.Auth.RefreshTokenSecret, as.GetRefreshTokenExpiration())
}

func (as *AuthService) generateToken(user *tables.User, secret string, exp time.Time) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.Id.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
		"jti":   uuid.New().String(),
	})
	return token.SignedString([]byte(secret))
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

// GetRefreshTokenExpiration returns the expiration time for refresh tokens
func (as *AuthService) GetRefreshTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
}

func (as *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*tables.AuthResponse, error) {
	claims, err := lib.ParseToken(refreshToken, as.cfg.Auth.RefreshTokenSecret)
	if err != nil {
		as.logger.Error("Failed to parse refresh token", gecho.Field("error", err))
		return nil, lib.ErrInvalidToken
	}

	if time.Now().After(claims.Exp) {
		as.logger.Warn("Refresh token has expired", gecho.Field("exp", claims.Exp))
		return nil, lib.ErrExpiredToken
	}

	isBlacklisted, err := as.cacheService.IsTokenBlacklisted(claims.Jti)
	if err != nil {
		as.logger.Error("Failed to check if token is blacklisted", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		return nil, err
	}

	if isBlacklisted {
		as.logger.Warn("Refresh token is blacklisted", gecho.Field("jti", claims.Jti))
		return nil, lib.ErrInvalidToken
	}

	user, err := as.GetUserByID(ctx, claims.Sub)
	if err != nil {
		as.logger.Error("Failed to get user by ID during token refresh", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		return nil, err
	}

	newAccessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new access token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	newRefreshToken, err := as.GenerateRefreshToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new refresh token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	return &tables.AuthResponse{
		User:         user,
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (as *AuthService) GetUserByID(ctx context.Context, userId uuid.UUID) (*tables.User, error) {
	// Try to get user from cache first
	cachedUser, err := as.cacheService.GetUserFromCache(userId)
	if err != nil {
		as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userId))
	} else if cachedUser != nil {
		as.logger.Debug("User retrieved from cache", gecho.Field("user_id", userId))
		return cachedUser, nil
	}

	// Cache miss - fetch user from database
	user, err := database.Query[tables.User](as.db).Where("id", userId).First(ctx)
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	// Cache the user asynchronously
	go func() {
		if err := as.cacheService.SetUserInCache(user); err != nil {
			as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userId))
		}
	}()

	return user, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

// BlacklistToken revokes a token pair on sign-out
func (as *AuthService) BlacklistToken(jti uuid.UUID, exp time.Time) error {
	return as.cacheService.BlacklistToken(jti, exp)
}

func (as *AuthService) UpdateLastLogin(ctx context.Context, userId uuid.UUID) error {
	_, err := database.RawExec(as.db, ctx, "UPDATE users SET last_login = ? WHERE id = ?", time.Now(), userId)
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}
