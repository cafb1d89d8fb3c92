package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ShowCVForm renders the CV editor.
func (a *API) ShowCVForm(c *gin.Context) {
	cv, err := a.cvs.Get()
	if err != nil {
		a.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "cv_form.html", gin.H{
		"title":   "Edit CV",
		"cv":      cv,
		"flashes": takeFlashes(c),
	})
}

// UpdateCV upserts the CV row and optionally replaces the stored file.
// Rejections (missing download name, non-PDF upload) redisplay the form
// without committing anything.
func (a *API) UpdateCV(c *gin.Context) {
	downloadName := strings.TrimSpace(c.PostForm("download_name"))
	if downloadName == "" {
		a.redisplayCVForm(c, "Download name is required.")
		return
	}

	var uploadedPath string
	if file, err := c.FormFile("cv_file"); err == nil && file.Filename != "" {
		if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
			a.redisplayCVForm(c, "Only PDF files are allowed.")
			return
		}
		path, err := a.uploader.SaveCV(file)
		if err != nil {
			a.serverError(c, err)
			return
		}
		uploadedPath = path
	}

	_, replaced, err := a.cvs.Save(downloadName, uploadedPath)
	if err != nil {
		// the row was not written, drop the stored file again
		if uploadedPath != "" {
			a.removeStoredFile(uploadedPath)
		}
		a.serverError(c, err)
		return
	}

	if replaced != "" {
		a.removeStoredFile(replaced)
	}

	addFlash(c, "success", "CV updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

func (a *API) redisplayCVForm(c *gin.Context, message string) {
	cv, err := a.cvs.Get()
	if err != nil {
		a.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "cv_form.html", gin.H{
		"title":   "Edit CV",
		"cv":      cv,
		"flashes": []Flash{{Category: "error", Message: message}},
	})
}
