package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

func projectInputFromForm(c *gin.Context) service.ProjectInput {
	return service.ProjectInput{
		Title:          c.PostForm("title"),
		Category:       strings.ToLower(strings.TrimSpace(c.PostForm("category"))),
		PreviewSummary: c.PostForm("preview_summary"),
		PageIntroText:  c.PostForm("page_intro_text"),
	}
}

// ShowProjectList 渲染项目管理列表
func (a *API) ShowProjectList(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		a.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "project_list.html", gin.H{
		"title":    "Projects",
		"projects": projects,
		"flashes":  takeFlashes(c),
	})
}

// ShowProjectNew renders an empty project form.
func (a *API) ShowProjectNew(c *gin.Context) {
	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"title":   "New Project",
		"flashes": takeFlashes(c),
	})
}

// CreateProject validates the form, stores the project and then attaches
// any uploaded preview and gallery files. Files rejected by the uploader
// are skipped without failing the request.
func (a *API) CreateProject(c *gin.Context) {
	input := projectInputFromForm(c)

	project, err := a.projects.Create(input, "")
	if err != nil {
		a.flashProjectError(c, err)
		c.Redirect(http.StatusFound, "/admin/projects/new")
		return
	}

	if file, err := c.FormFile("preview_image"); err == nil {
		a.storePreview(project.ID, project.Slug, file)
	}

	a.storeGallery(c, project.ID, project.Slug, 0)

	addFlash(c, "success", "Project created successfully!")
	c.Redirect(http.StatusFound, "/admin/projects")
}

// ShowProjectEdit renders the form pre-filled with an existing project.
func (a *API) ShowProjectEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	project, err := a.projects.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}

	images, err := a.projects.Images(project.ID)
	if err != nil {
		a.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"title":   "Edit Project",
		"project": project,
		"images":  images,
		"flashes": takeFlashes(c),
	})
}

// UpdateProject applies field edits, re-deriving the slug when the title
// changed, then handles preview replacement and appended gallery uploads.
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	input := projectInputFromForm(c)

	project, err := a.projects.Update(id, input, "")
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			a.notFound(c)
			return
		}
		a.flashProjectError(c, err)
		c.Redirect(http.StatusFound, "/admin/projects/"+c.Param("id")+"/edit")
		return
	}

	if file, err := c.FormFile("preview_image"); err == nil {
		a.storePreview(project.ID, project.Slug, file)
	}

	existing, err := a.projects.GalleryCount(project.ID)
	if err != nil {
		a.serverError(c, err)
		return
	}
	a.storeGallery(c, project.ID, project.Slug, existing)

	addFlash(c, "success", "Project updated successfully!")
	c.Redirect(http.StatusFound, "/admin/projects")
}

// DeleteProject removes the project, its gallery rows and any uploaded
// files; bundled graphics referenced as defaults stay untouched.
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	project, err := a.projects.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}

	a.removeStoredFile(project.PreviewImagePath)
	for _, image := range project.Images {
		a.removeStoredFile(image.ImagePath)
	}

	addFlash(c, "success", "Project deleted successfully!")
	c.Redirect(http.StatusFound, "/admin/projects")
}

// DeleteProjectImage removes one gallery image, rejecting ids that do not
// belong to the project in the route.
func (a *API) DeleteProjectImage(c *gin.Context) {
	projectID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}
	imageID, err := parseUintParam(c, "imageID")
	if err != nil {
		a.notFound(c)
		return
	}

	image, err := a.projects.DeleteImage(projectID, imageID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageNotFound):
			a.notFound(c)
		case errors.Is(err, service.ErrImageMismatch):
			addFlash(c, "error", "Invalid image.")
			c.Redirect(http.StatusFound, "/admin/projects/"+c.Param("id")+"/edit")
		default:
			a.serverError(c, err)
		}
		return
	}

	a.removeStoredFile(image.ImagePath)

	addFlash(c, "success", "Image deleted successfully!")
	c.Redirect(http.StatusFound, "/admin/projects/"+c.Param("id")+"/edit")
}

// storePreview saves an uploaded preview image and points the project at it.
// The file is removed again when the database update fails.
func (a *API) storePreview(projectID uint, slug string, file *multipart.FileHeader) {
	path, err := a.uploader.SavePreview(file, slug)
	if err != nil {
		a.logUploadSkip(file.Filename, err)
		return
	}
	if err := a.projects.SetPreviewImage(projectID, path); err != nil {
		a.uploader.Remove(path)
		a.log.WithError(err).Error("failed to persist preview image")
	}
}

// storeGallery saves every accepted gallery upload, numbering display order
// from firstIndex onward. Each stored file whose row cannot be written is
// deleted again.
func (a *API) storeGallery(c *gin.Context, projectID uint, slug string, firstIndex int) {
	form, err := c.MultipartForm()
	if err != nil {
		return
	}

	for i, file := range form.File["gallery_images"] {
		order := firstIndex + i
		path, err := a.uploader.SaveGallery(file, slug, order)
		if err != nil {
			a.logUploadSkip(file.Filename, err)
			continue
		}
		if _, err := a.projects.AttachImage(projectID, path, order); err != nil {
			a.uploader.Remove(path)
			a.log.WithError(err).Error("failed to persist gallery image")
		}
	}
}

func (a *API) removeStoredFile(path string) {
	if err := a.uploader.Remove(path); err != nil {
		a.log.WithField("file", path).WithError(err).Warn("failed to remove stored file")
	}
}

func (a *API) logUploadSkip(filename string, err error) {
	if errors.Is(err, service.ErrFilenameMissing) || errors.Is(err, service.ErrFileNotAllowed) {
		a.log.WithField("file", filename).Debug("skipping rejected upload")
		return
	}
	a.log.WithField("file", filename).WithError(err).Error("failed to store upload")
}

func (a *API) flashProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectTitleMissing):
		addFlash(c, "error", "Title is required.")
	case errors.Is(err, service.ErrProjectSummaryMissing):
		addFlash(c, "error", "Preview summary is required.")
	case errors.Is(err, service.ErrProjectCategoryInvalid):
		addFlash(c, "error", "Please choose a valid category.")
	default:
		addFlash(c, "error", "Error updating project: "+err.Error())
	}
}
