package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var (
	createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	columns   = []string{"id", "name", "email", "phone", "password_hash", "otp_code", "otp_expires_at", "provider", "google_id", "bio", "created_at", "updated_at"}
)

func ptr[T any](v T) *T { return &v }

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow(u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.OTPCode, u.OTPExpiresAt,
		u.Provider, u.GoogleID, u.Bio, u.CreatedAt, u.UpdatedAt)
}

func localUser() *domain.User {
	return &domain.User{
		ID:           1,
		Name:         "Asha Rao",
		Email:        ptr("asha@example.com"),
		Phone:        ptr("9876543210"),
		PasswordHash: "hashed",
		OTPCode:      (*string)(nil),
		OTPExpiresAt: (*time.Time)(nil),
		Provider:     domain.ProviderLocal,
		GoogleID:     (*string)(nil),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestRepository_FindByPhone(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE phone = $1")

	tests := []struct {
		name      string
		phone     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			phone: "9876543210",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("9876543210").WillReturnRows(userRow(localUser()))
			},
			result: localUser(),
		},
		{
			name:  "User not found",
			phone: "1111111111",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("1111111111").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			phone: "9876543210",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("9876543210").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByPhone(context.Background(), tt.phone)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByOtherKeys(t *testing.T) {
	repo, mock := NewMock(t)
	linked := localUser()
	linked.GoogleID = ptr("g-1")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE id = $1")).
		WithArgs(1).WillReturnRows(userRow(localUser()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE email = $1")).
		WithArgs("asha@example.com").WillReturnRows(userRow(localUser()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE google_id = $1")).
		WithArgs("g-1").WillReturnRows(userRow(linked))

	byID, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, localUser(), byID)

	byEmail, err := repo.FindByEmail(context.Background(), "asha@example.com")
	assert.NoError(t, err)
	assert.Equal(t, localUser(), byEmail)

	byGoogle, err := repo.FindByGoogleID(context.Background(), "g-1")
	assert.NoError(t, err)
	assert.Equal(t, linked, byGoogle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		INSERT INTO users (name, email, phone, password_hash, provider, google_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`)

	newUser := func() *domain.User {
		return &domain.User{
			Name:         "Asha Rao",
			Email:        ptr("asha@example.com"),
			Phone:        ptr("9876543210"),
			PasswordHash: "hashed",
			Provider:     domain.ProviderLocal,
		}
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Asha Rao", ptr("asha@example.com"), ptr("9876543210"), "hashed", domain.ProviderLocal, (*string)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, createdAt, createdAt))
			},
		},
		{
			name: "Duplicate phone",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_phone_key"})
			},
			expectErr:   true,
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), newUser())
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetOTP(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		UPDATE users SET otp_code = $1, otp_expires_at = $2, updated_at = NOW()
		WHERE phone = $3 AND (otp_expires_at IS NULL OR otp_expires_at <= $4)
		RETURNING id
	`)
	expiresAt := createdAt.Add(5 * time.Minute)
	reissueAfter := createdAt.Add(4 * time.Minute)

	tests := []struct {
		name      string
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name: "Stored",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("123456", expiresAt, "9876543210", reissueAfter).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expected: true,
		},
		{
			name: "Resend window still open",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("123456", expiresAt, "9876543210", reissueAfter).
					WillReturnError(pgx.ErrNoRows)
			},
			expected: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("123456", expiresAt, "9876543210", reissueAfter).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.SetOTP(context.Background(), "9876543210", "123456", expiresAt, reissueAfter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ConsumeOTP(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		UPDATE users SET otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE phone = $1 AND otp_code = $2 AND otp_expires_at > $3
		RETURNING ` + userColumns)

	mock.ExpectQuery(query).WithArgs("9876543210", "123456", createdAt).WillReturnRows(userRow(localUser()))
	mock.ExpectQuery(query).WithArgs("9876543210", "123456", createdAt).WillReturnError(pgx.ErrNoRows)

	user, err := repo.ConsumeOTP(context.Background(), "9876543210", "123456", createdAt)
	assert.NoError(t, err)
	assert.Equal(t, localUser(), user)

	user, err = repo.ConsumeOTP(context.Background(), "9876543210", "123456", createdAt)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LinkGoogleID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		UPDATE users SET google_id = $1, updated_at = NOW()
		WHERE id = $2 AND google_id IS NULL
		RETURNING ` + userColumns)
	linked := localUser()
	linked.GoogleID = ptr("g-1")

	mock.ExpectQuery(query).WithArgs("g-1", 1).WillReturnRows(userRow(linked))
	mock.ExpectQuery(query).WithArgs("g-2", 1).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(query).WithArgs("g-3", 2).WillReturnError(&pgconn.PgError{Code: "23505"})

	user, err := repo.LinkGoogleID(context.Background(), 1, "g-1")
	assert.NoError(t, err)
	assert.Equal(t, linked, user)

	user, err = repo.LinkGoogleID(context.Background(), 1, "g-2")
	assert.NoError(t, err)
	assert.Nil(t, user)

	_, err = repo.LinkGoogleID(context.Background(), 2, "g-3")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		UPDATE users SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			phone = COALESCE($3, phone),
			bio = COALESCE($4, bio),
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + userColumns)

	updated := localUser()
	updated.Bio = "Volunteer"
	patch := domain.UserPatch{Bio: ptr("Volunteer")}

	mock.ExpectQuery(query).
		WithArgs((*string)(nil), (*string)(nil), (*string)(nil), ptr("Volunteer"), 1).
		WillReturnRows(userRow(updated))
	mock.ExpectQuery(query).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), 1).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	user, err := repo.UpdateProfile(context.Background(), 1, patch)
	assert.NoError(t, err)
	assert.Equal(t, updated, user)

	_, err = repo.UpdateProfile(context.Background(), 1, domain.UserPatch{Email: ptr("taken@example.com")})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
