// admin.go - privacy-conscious visitor analytics and the admin dashboard
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Srivisnu25/portfolio/internal/metrics"
	"github.com/Srivisnu25/portfolio/internal/store"
)

const adminCookie = "admin_token"

// Admin owns the admin session token, the IP hashing salt and the analytics
// store.
type Admin struct {
	token     string
	salt      string
	username  string
	password  string
	retention time.Duration
	store     *store.Store
	metrics   *metrics.Recorder
	now       func() time.Time
}

func NewAdmin(cfg Config, st *store.Store, rec *metrics.Recorder) *Admin {
	a := &Admin{
		token:     generateToken(),
		salt:      generateToken(),
		username:  cfg.AdminUsername,
		password:  cfg.AdminPassword,
		retention: cfg.Retention,
		store:     st,
		metrics:   rec,
		now:       time.Now,
	}

	// Default credentials for development only.
	if gin.Mode() == gin.DebugMode {
		if a.username == "" {
			a.username = "admin"
			slog.Warn("using default admin username; set ADMIN_USERNAME")
		}
		if a.password == "" {
			a.password = "admin123"
			slog.Warn("using default admin password; set ADMIN_PASSWORD")
		}
		slog.Debug("admin token (dev only)", "token", a.token)
	}
	if a.password == "" {
		slog.Warn("ADMIN_PASSWORD not set; admin login disabled")
	}
	return a
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generating admin token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP is consistent per address for the lifetime of the process.
func (a *Admin) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + a.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (a *Admin) checkCredentials(username, password string) bool {
	if a.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *Admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untrackedPrefixes are paths that never count as a visit.
var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin/", "/page/", "/favicon", "/privacy", "/metrics", "/healthz",
}

// trackingMiddleware records page visits with hashed addresses. Requests
// carrying Do Not Track are skipped.
func (a *Admin) trackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go a.trackVisit(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (a *Admin) trackVisit(ip, userAgent, path string) {
	err := a.store.RecordVisit(a.hashIP(ip), userAgent, path, a.now())
	a.metrics.VisitTracked(err)
	if err != nil {
		slog.Error("recording visitor", "error", err)
	}
}

func (a *Admin) recordSectionView(section string) {
	if err := a.store.RecordSectionView(section); err != nil {
		slog.Error("recording section view", "section", section, "error", err)
	}
}

// PurgeExpired removes visitor records older than the retention window.
func (a *Admin) PurgeExpired() {
	n, err := a.store.PurgeVisitsBefore(a.now().Add(-a.retention))
	if err != nil {
		slog.Error("cleaning up old visitor data", "error", err)
		return
	}
	a.metrics.VisitorsPurged(n)
	if n > 0 {
		slog.Info("privacy cleanup removed old visitor records", "count", n, "retention", a.retention)
	}
}

func (a *Admin) setupRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			slog.Warn("failed admin login", "client", a.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
		slog.Info("admin login", "client", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(a.authMiddleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(a.now())
		if err != nil {
			slog.Error("loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := a.store.RecentVisits(200)
		if err != nil {
			slog.Error("loading visitors", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(a.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(a.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		slog.Info("admin stats exported", "client", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/purge", func(c *gin.Context) {
		go a.PurgeExpired()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})
}
