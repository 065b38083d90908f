package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/avasse/roomly-be/internal/credentials"
	"github.com/avasse/roomly-be/internal/models"
	"github.com/google/uuid"
)

var (
	// A username or name must contain at least one letter.
	letterPattern = regexp.MustCompile(`[A-Za-z]`)
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Signup(email, password, username, name, description, phone string) (models.AuthResponse, error)
	Login(email, password string) (models.AuthResponse, error)
	GetByToken(token string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides signup, login and bearer-token resolution.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Signup creates a new account. The salt, password digest and bearer token
// are all generated here; the token is issued exactly once and login hands
// back the same value forever after.
func (s *UserService) Signup(email, password, username, name, description, phone string) (models.AuthResponse, error) {
	if email == "" || password == "" || username == "" || name == "" || description == "" {
		return models.AuthResponse{}, ErrMissingParameters
	}
	if !letterPattern.MatchString(username) || !letterPattern.MatchString(name) {
		return models.AuthResponse{}, ErrInvalidProfile
	}
	if !emailPattern.MatchString(email) {
		return models.AuthResponse{}, ErrInvalidEmail
	}

	var exists int
	err := s.db.QueryRow("SELECT COUNT(1) FROM users WHERE email = ?", email).Scan(&exists)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if exists > 0 {
		return models.AuthResponse{}, ErrDuplicateEmail
	}

	salt, err := credentials.GenerateSalt()
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("failed to generate salt: %w", err)
	}
	token, err := credentials.NewToken()
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	user := models.User{
		ID:    uuid.New().String(),
		Email: email,
		Account: models.Account{
			Username:    username,
			Name:        name,
			Phone:       phone,
			Description: description,
		},
		Token: token,
		Hash:  credentials.Hash(password, salt),
		Salt:  salt,
	}

	_, err = s.db.Exec(
		"INSERT INTO users(id, email, username, name, phone, description, token, hash, salt) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.Account.Username, user.Account.Name,
		user.Account.Phone, user.Account.Description, user.Token, user.Hash, user.Salt,
	)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		ID:          user.ID,
		Token:       user.Token,
		Email:       user.Email,
		Username:    user.Account.Username,
		Description: user.Account.Description,
	}, nil
}

// Login verifies a user's credentials by recomputing the stored digest.
// The response carries the token issued at signup.
func (s *UserService) Login(email, password string) (models.AuthResponse, error) {
	if email == "" || password == "" {
		return models.AuthResponse{}, ErrMissingParameters
	}
	if !emailPattern.MatchString(email) {
		return models.AuthResponse{}, ErrInvalidEmail
	}

	var resp models.AuthResponse
	var hash, salt string
	row := s.db.QueryRow("SELECT id, token, email, username, description, hash, salt FROM users WHERE email = ?", email)
	err := row.Scan(&resp.ID, &resp.Token, &resp.Email, &resp.Username, &resp.Description, &hash, &salt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.AuthResponse{}, ErrUnauthenticated
		}
		return models.AuthResponse{}, err
	}

	if !credentials.Verify(password, salt, hash) {
		return models.AuthResponse{}, ErrUnauthenticated
	}
	return resp, nil
}

// GetByToken resolves an opaque bearer token to the user it identifies.
// An unknown token is an authentication failure, not a store failure.
func (s *UserService) GetByToken(token string) (models.User, error) {
	user, err := s.getUser("SELECT id, email, username, name, phone, description, token, hash, salt, rooms_json, created_at FROM users WHERE token = ?", token)
	if err == sql.ErrNoRows {
		return models.User{}, ErrUnauthenticated
	}
	return user, err
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	user, err := s.getUser("SELECT id, email, username, name, phone, description, token, hash, salt, rooms_json, created_at FROM users WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return models.User{}, fmt.Errorf("user with ID %s not found", id)
	}
	return user, err
}

func (s *UserService) getUser(query, arg string) (models.User, error) {
	var user models.User
	var phone, description sql.NullString
	var roomsJSON string
	row := s.db.QueryRow(query, arg)
	err := row.Scan(
		&user.ID, &user.Email, &user.Account.Username, &user.Account.Name,
		&phone, &description, &user.Token, &user.Hash, &user.Salt,
		&roomsJSON, &user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	user.Account.Phone = phone.String
	user.Account.Description = description.String

	if err := json.Unmarshal([]byte(roomsJSON), &user.Rooms); err != nil {
		return models.User{}, fmt.Errorf("corrupt rooms list for user %s: %w", user.ID, err)
	}
	return user, nil
}
