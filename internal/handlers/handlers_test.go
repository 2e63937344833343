package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/alexedwards/scs/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"saponify/internal/catalog"
	"saponify/models"
)

// withConfiguredHandlers wires all handler dependencies against an in-memory
// database and restores the previous globals afterwards. Tests that use it
// must not run in parallel.
func withConfiguredHandlers(t *testing.T) (*gorm.DB, *scs.SessionManager) {
	t.Helper()

	origSession, origDB, origCatalog := sessionManager, database, oilCatalog
	origCalc, origSolver, origMeals, origStore := calculator, solver, meals, recipeStore

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	sm := scs.New()
	Configure(sm, db, catalog.Builtin())

	t.Cleanup(func() {
		sessionManager, database, oilCatalog = origSession, origDB, origCatalog
		calculator, solver, meals, recipeStore = origCalc, origSolver, origMeals, origStore
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db, sm
}

// sessionRequest loads a session context onto the request.
func sessionRequest(t *testing.T, sm *scs.SessionManager, req *http.Request) *http.Request {
	t.Helper()
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	return req.WithContext(ctx)
}

// authenticateRequest loads a session context and marks it signed in.
func authenticateRequest(t *testing.T, sm *scs.SessionManager, req *http.Request, userID uint) *http.Request {
	t.Helper()
	req = sessionRequest(t, sm, req)
	sm.Put(req.Context(), sessionUserIDKey, int(userID))
	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	return req
}

func jsonBody(t *testing.T, payload any) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	return bytes.NewBuffer(raw)
}

func decodeBody(t *testing.T, body []byte, dst any) {
	t.Helper()
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("failed to decode response: %v (%s)", err, body)
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}
