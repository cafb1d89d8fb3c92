package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

// ShowAboutForm renders the about editor, pre-filled with the stored bio
// or the default content when nothing has been written yet.
func (a *API) ShowAboutForm(c *gin.Context) {
	page, err := a.about.Find()
	if err != nil {
		a.serverError(c, err)
		return
	}

	content := service.DefaultAboutContent
	if page != nil {
		content = page.Content
	}

	c.HTML(http.StatusOK, "about_form.html", gin.H{
		"title":   "Edit About Page",
		"content": content,
		"flashes": takeFlashes(c),
	})
}

// UpdateAbout upserts the single about-page row.
func (a *API) UpdateAbout(c *gin.Context) {
	if _, err := a.about.Save(c.PostForm("content")); err != nil {
		a.serverError(c, err)
		return
	}
	addFlash(c, "success", "About page updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}
