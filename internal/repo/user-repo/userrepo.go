package userrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, name, email, phone, password_hash, otp_code, otp_expires_at, provider, google_id, bio, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.OTPCode, &u.OTPExpiresAt,
		&u.Provider, &u.GoogleID, &u.Bio, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *Repository) findOne(ctx context.Context, op, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't "+op, zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "find user by id", "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (repo *Repository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return repo.findOne(ctx, "find user by phone", "SELECT "+userColumns+" FROM users WHERE phone = $1", phone)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, "find user by email", "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (repo *Repository) FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return repo.findOne(ctx, "find user by google id", "SELECT "+userColumns+" FROM users WHERE google_id = $1", googleID)
}

// Create inserts the user. A duplicate email, phone or google id yields domain.ErrConflict.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, phone, password_hash, provider, google_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.Email, user.Phone, user.PasswordHash, user.Provider, user.GoogleID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email or phone already registered", domain.ErrConflict)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// LinkGoogleID attaches googleID to a user that has none yet. It returns nil when
// the user is gone or already linked to another account.
func (repo *Repository) LinkGoogleID(ctx context.Context, userID int, googleID string) (*domain.User, error) {
	query := `
		UPDATE users SET google_id = $1, updated_at = NOW()
		WHERE id = $2 AND google_id IS NULL
		RETURNING ` + userColumns
	user, err := scanUser(repo.db.QueryRow(ctx, query, googleID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: google account already linked", domain.ErrConflict)
		}
		zap.L().Error("can't link google id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// SetOTP stores a fresh code unless the current one was issued too recently.
// The check and the write are one statement, so concurrent requests cannot both pass.
// It reports false when the user exists but the resend window is still open.
func (repo *Repository) SetOTP(ctx context.Context, phone, code string, expiresAt, reissueAfter time.Time) (bool, error) {
	query := `
		UPDATE users SET otp_code = $1, otp_expires_at = $2, updated_at = NOW()
		WHERE phone = $3 AND (otp_expires_at IS NULL OR otp_expires_at <= $4)
		RETURNING id
	`
	var id int
	err := repo.db.QueryRow(ctx, query, code, expiresAt, phone, reissueAfter).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't store otp", zap.Error(err))
		return false, err
	}
	return true, nil
}

// ConsumeOTP clears a matching, unexpired code and returns its owner, or nil if nothing matched.
func (repo *Repository) ConsumeOTP(ctx context.Context, phone, code string, now time.Time) (*domain.User, error) {
	query := `
		UPDATE users SET otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE phone = $1 AND otp_code = $2 AND otp_expires_at > $3
		RETURNING ` + userColumns
	user, err := scanUser(repo.db.QueryRow(ctx, query, phone, code, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't consume otp", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdateProfile(ctx context.Context, userID int, patch domain.UserPatch) (*domain.User, error) {
	query := `
		UPDATE users SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			phone = COALESCE($3, phone),
			bio = COALESCE($4, bio),
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + userColumns
	user, err := scanUser(repo.db.QueryRow(ctx, query, patch.Name, patch.Email, patch.Phone, patch.Bio, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email or phone already registered", domain.ErrConflict)
		}
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}
	return user, nil
}
