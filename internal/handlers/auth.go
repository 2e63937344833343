package handlers

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	applog "saponify/internal/log"
	"saponify/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

type sessionResponse struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

func createUser(r *http.Request, email, name, password string) (*models.User, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        strings.ToLower(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hashed),
	}

	if err := database.WithContext(r.Context()).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func findUserByEmail(r *http.Request, email string) (*models.User, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	user := &models.User{}
	err := database.WithContext(r.Context()).Where("lower(email) = ?", strings.ToLower(email)).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func establishSession(r *http.Request, user *models.User) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}
	if err := sessionManager.RenewToken(r.Context()); err != nil {
		return err
	}
	sessionManager.Put(r.Context(), sessionAuthenticatedKey, true)
	sessionManager.Put(r.Context(), sessionUserIDKey, int(user.ID))
	sessionManager.Put(r.Context(), sessionUserEmailKey, user.Email)
	sessionManager.Put(r.Context(), sessionUserNameKey, user.Name)
	return nil
}

// Signup creates a new account and signs the user in.
func Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sessionManager == nil || database == nil {
		applog.Debug(r.Context(), "registration dependencies unavailable", "hasSession", sessionManager != nil, "hasDatabase", database != nil)
		writeJSONError(w, http.StatusServiceUnavailable, "registration not available")
		return
	}

	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	email := strings.TrimSpace(req.Email)

	if email == "" || !strings.Contains(email, "@") {
		writeJSONError(w, http.StatusBadRequest, "please provide a valid email address")
		return
	}
	if len(req.Password) < 8 {
		writeJSONError(w, http.StatusBadRequest, "password must be at least 8 characters long")
		return
	}

	if _, err := findUserByEmail(r, email); err == nil {
		applog.Debug(r.Context(), "signup attempted with existing email", "email", strings.ToLower(email))
		writeJSONError(w, http.StatusConflict, "an account with that email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		applog.Error(r.Context(), "failed to check existing user", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to create account")
		return
	}

	user, err := createUser(r, email, req.Name, req.Password)
	if err != nil {
		applog.Error(r.Context(), "failed to create user", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to create account")
		return
	}

	if err := establishSession(r, user); err != nil {
		applog.Error(r.Context(), "failed to establish session after signup", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "account created but sign-in failed")
		return
	}

	applog.Debug(r.Context(), "signup completed", "userID", user.ID)
	writeJSON(w, http.StatusCreated, sessionResponse{UserID: user.ID, Email: user.Email, Name: user.Name})
}

// Login verifies credentials and opens a session.
func Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sessionManager == nil || database == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "authentication not available")
		return
	}

	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := findUserByEmail(r, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Error(r.Context(), "failed to load user during login", "error", err)
		}
		writeJSONError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeJSONError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := establishSession(r, user); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to sign you in")
		return
	}

	applog.Debug(r.Context(), "login succeeded", "userID", user.ID)
	writeJSON(w, http.StatusOK, sessionResponse{UserID: user.ID, Email: user.Email, Name: user.Name})
}

// Logout destroys the current session.
func Logout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sessionManager != nil {
		if err := sessionManager.Destroy(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to destroy session", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}
