package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(source UserSource, extra ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	handlers := append([]gin.HandlerFunc{AuthRequired(source)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": user.ID})
	})
	engine.GET("/protected", handlers...)
	return engine
}

func activeUser() *model.User {
	return &model.User{ID: 7, Role: model.RoleCustomer, IsActive: true}
}

func TestAuthRequiredMissingToken(t *testing.T) {
	engine := protectedRouter(test.UserSourceStub{User: activeUser()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	source := test.UserSourceStub{
		ParseFn: func(string) (int64, error) { return 0, errors.New("bad signature") },
	}
	engine := protectedRouter(source)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != false {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuthRequiredDeactivatedAccount(t *testing.T) {
	user := activeUser()
	user.IsActive = false
	engine := protectedRouter(test.UserSourceStub{User: user})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAuthRequiredAcceptsCookie(t *testing.T) {
	engine := protectedRouter(test.UserSourceStub{User: activeUser()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "bakehouse_token", Value: "token"})
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminRequiredRejectsCustomer(t *testing.T) {
	engine := protectedRouter(test.UserSourceStub{User: activeUser()}, AdminRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	admin := activeUser()
	admin.Role = model.RoleAdmin
	engine := protectedRouter(test.UserSourceStub{User: admin}, AdminRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOptionalAuthGuestPassesThrough(t *testing.T) {
	engine := gin.New()
	engine.GET("/open", OptionalAuth(test.UserSourceStub{User: activeUser()}), func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.JSON(http.StatusOK, gin.H{"user": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": false})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["user"] {
		t.Fatal("guest request must carry no user")
	}
}

func TestOptionalAuthLoadsValidUser(t *testing.T) {
	engine := gin.New()
	engine.GET("/open", OptionalAuth(test.UserSourceStub{User: activeUser()}), func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusOK, gin.H{"userId": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": user.ID})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer token")
	engine.ServeHTTP(w, req)

	var body map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["userId"] != 7 {
		t.Fatalf("expected user 7, got %v", body)
	}
}

func TestOptionalAuthIgnoresBadToken(t *testing.T) {
	source := test.UserSourceStub{
		ParseFn: func(string) (int64, error) { return 0, errors.New("expired") },
	}
	called := false
	engine := gin.New()
	engine.GET("/open", OptionalAuth(source), func(c *gin.Context) {
		called = true
		if CurrentUser(c) != nil {
			t.Error("bad token must not load a user")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer expired")
	engine.ServeHTTP(w, req)

	if !called || w.Code != http.StatusOK {
		t.Fatalf("expected handler to run, got %d", w.Code)
	}
}
