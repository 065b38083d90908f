package services

import (
	"database/sql"
	"testing"

	"github.com/avasse/roomly-be/internal/credentials"
	"github.com/avasse/roomly-be/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A fresh pool connection would see an empty in-memory database, so
	// pin the pool to the single migrated connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func TestSignupStoresVerifiableCredentials(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	resp, err := s.Signup("a@x.com", "p", "Bob1", "Bob", "d", "")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.Equal(t, "Bob1", resp.Username)
	assert.Equal(t, "d", resp.Description)

	var hash, salt string
	require.NoError(t, db.QueryRow("SELECT hash, salt FROM users WHERE id = ?", resp.ID).Scan(&hash, &salt))
	assert.True(t, credentials.Verify("p", salt, hash))
	assert.False(t, credentials.Verify("not-p", salt, hash))
}

func TestSignupValidation(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	cases := []struct {
		name                                      string
		email, password, username, userName, desc string
		want                                      error
	}{
		{"missing email", "", "p", "Bob1", "Bob", "d", ErrMissingParameters},
		{"missing password", "a@x.com", "", "Bob1", "Bob", "d", ErrMissingParameters},
		{"missing username", "a@x.com", "p", "", "Bob", "d", ErrMissingParameters},
		{"missing name", "a@x.com", "p", "Bob1", "", "d", ErrMissingParameters},
		{"missing description", "a@x.com", "p", "Bob1", "Bob", "", ErrMissingParameters},
		{"username without letter", "a@x.com", "p", "1234", "Bob", "d", ErrInvalidProfile},
		{"name without letter", "a@x.com", "p", "Bob1", "99!", "d", ErrInvalidProfile},
		{"malformed email", "not-an-email", "p", "Bob1", "Bob", "d", ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Signup(tc.email, tc.password, tc.username, tc.userName, tc.desc, "")
			assert.ErrorIs(t, err, tc.want)
		})
	}

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(1) FROM users").Scan(&count))
	assert.Zero(t, count, "rejected signups must not create rows")
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	_, err := s.Signup("a@x.com", "p", "Bob1", "Bob", "d", "")
	require.NoError(t, err)

	_, err = s.Signup("a@x.com", "other", "Eve1", "Eve", "d2", "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(1) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoginReturnsSignupToken(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	signup, err := s.Signup("a@x.com", "p", "Bob1", "Bob", "d", "")
	require.NoError(t, err)

	login, err := s.Login("a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, signup.Token, login.Token, "tokens are never rotated")
	assert.Equal(t, signup.ID, login.ID)
	assert.Equal(t, "Bob1", login.Username)
	assert.Equal(t, "d", login.Description, "login returns the real description")
}

func TestLoginFailures(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	_, err := s.Signup("a@x.com", "p", "Bob1", "Bob", "d", "")
	require.NoError(t, err)

	_, err = s.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.Login("nobody@x.com", "p")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.Login("", "p")
	assert.ErrorIs(t, err, ErrMissingParameters)

	_, err = s.Login("not-an-email", "p")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestGetByToken(t *testing.T) {
	db := setupDB(t)
	s := NewUserService(db)

	signup, err := s.Signup("a@x.com", "p", "Bob1", "Bob", "d", "")
	require.NoError(t, err)

	user, err := s.GetByToken(signup.Token)
	require.NoError(t, err)
	assert.Equal(t, signup.ID, user.ID)
	assert.Equal(t, "Bob1", user.Account.Username)
	assert.Empty(t, user.Rooms)

	_, err = s.GetByToken("no-such-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
