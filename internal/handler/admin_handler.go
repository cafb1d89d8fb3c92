package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const sessionAdminKey = "admin_logged_in"

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title":   "Admin Login",
		"flashes": takeFlashes(c),
	})
}

// Login verifies the admin password and marks the session authenticated.
func (a *API) Login(c *gin.Context) {
	password := c.PostForm("password")

	if err := bcrypt.CompareHashAndPassword([]byte(a.adminHash), []byte(password)); err != nil {
		addFlash(c, "error", "Invalid password.")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, true)
	if err := session.Save(); err != nil {
		addFlash(c, "error", "Failed to save session.")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	addFlash(c, "success", "Logged in successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// Logout 处理登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionAdminKey)
	session.Save()
	addFlash(c, "success", "Logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	var projectCount, publicationCount, experienceCount int64
	a.db.Model(&db.Project{}).Count(&projectCount)
	a.db.Model(&db.Publication{}).Count(&publicationCount)
	a.db.Model(&db.Experience{}).Count(&experienceCount)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":            "Dashboard",
		"projectCount":     projectCount,
		"publicationCount": publicationCount,
		"experienceCount":  experienceCount,
		"flashes":          takeFlashes(c),
	})
}

// AuthRequired gates admin routes on the session flag set by Login.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loggedIn, ok := session.Get(sessionAdminKey).(bool)
		if !ok || !loggedIn {
			addFlash(c, "error", "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
