package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	authCookie = "admin_token"
	sessionTTL = 24 * time.Hour

	maxLoginAttempts = 5
	lockoutPeriod    = 15 * time.Minute
)

// sessionStore tracks opaque admin tokens issued at login. Tokens are random,
// expire after sessionTTL and are revoked on logout. Any request holding a
// live token is equally privileged; there is no per-user identity.
type sessionStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry
}

func newSessionStore() *sessionStore {
	return &sessionStore{tokens: make(map[string]time.Time)}
}

func (s *sessionStore) issue() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatal("failed to generate session token:", err)
	}
	token := hex.EncodeToString(buf)
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(sessionTTL)
	s.mu.Unlock()
	return token
}

func (s *sessionStore) valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, found := s.tokens[token]
	if !found {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

func (s *sessionStore) revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// loginLimiter locks a client IP out after repeated failed password attempts,
// so the shared secret cannot be brute-forced.
type loginLimiter struct {
	mu       sync.Mutex
	failures map[string]*loginFailures
}

type loginFailures struct {
	count       int
	lockedUntil time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{failures: make(map[string]*loginFailures)}
}

func (l *loginLimiter) blocked(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, found := l.failures[ip]
	if !found {
		return false
	}
	if f.lockedUntil.IsZero() {
		return false
	}
	if time.Now().After(f.lockedUntil) {
		delete(l.failures, ip)
		return false
	}
	return true
}

func (l *loginLimiter) fail(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, found := l.failures[ip]
	if !found {
		f = &loginFailures{}
		l.failures[ip] = f
	}
	f.count++
	if f.count >= maxLoginAttempts {
		f.lockedUntil = time.Now().Add(lockoutPeriod)
	}
}

func (l *loginLimiter) reset(ip string) {
	l.mu.Lock()
	delete(l.failures, ip)
	l.mu.Unlock()
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	ip := c.ClientIP()
	if h.logins.blocked(ip) {
		fail(c, http.StatusTooManyRequests, "Too many failed attempts, try again later")
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.opts.AdminPassword)) != 1 {
		h.logins.fail(ip)
		log.Printf("Failed admin login attempt from %s", ip)
		fail(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	h.logins.reset(ip)
	token := h.sessions.issue()
	c.SetCookie(authCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	log.Printf("Admin login successful from %s", ip)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Authentication successful"})
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(authCookie); err == nil {
		h.sessions.revoke(token)
	}
	c.SetCookie(authCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// requireAdmin short-circuits with 401 before any store access when the
// session cookie is absent, unknown or expired.
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(authCookie)
		if err != nil || !h.sessions.valid(token) {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
