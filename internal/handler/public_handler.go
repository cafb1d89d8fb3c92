package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts trusted-author markdown to sanitized HTML.
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.Sanitize(buf.String()))
}

// renderParagraphs turns free text into paragraph chunks with single
// newlines rendered as line breaks.
func renderParagraphs(content string) []template.HTML {
	paragraphs := service.SplitParagraphs(content)
	rendered := make([]template.HTML, 0, len(paragraphs))
	for _, para := range paragraphs {
		withBreaks := strings.ReplaceAll(template.HTMLEscapeString(para), "\n", "<br>")
		rendered = append(rendered, template.HTML(sanitizer.Sanitize(withBreaks)))
	}
	return rendered
}

// ShowHome 渲染首页
func (a *API) ShowHome(c *gin.Context) {
	medicine, err := a.projects.ListByCategory(db.CategoryMedicine)
	if err != nil {
		a.serverError(c, err)
		return
	}
	creative, err := a.projects.ListByCategory(db.CategoryCreative)
	if err != nil {
		a.serverError(c, err)
		return
	}
	publications, err := a.publications.List()
	if err != nil {
		a.serverError(c, err)
		return
	}
	experiences, err := a.experiences.List()
	if err != nil {
		a.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"projectsMedicine": medicine,
		"projectsCreative": creative,
		"publications":     publications,
		"experiences":      experiences,
		"flashes":          takeFlashes(c),
	})
}

// ShowProjectsArchive renders the grid of all projects, newest first.
func (a *API) ShowProjectsArchive(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		a.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "projects_archive.html", gin.H{
		"projects": projects,
	})
}

// ShowProjectDetail renders one project with its gallery and the
// wrapping next-project link.
func (a *API) ShowProjectDetail(c *gin.Context) {
	project, err := a.projects.GetBySlug(c.Param("slug"))
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

	next, err := a.projects.NextProject(project)
	if err != nil {
		a.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "project_detail.html", gin.H{
		"project":     project,
		"intro":       renderMarkdown(project.PageIntroText),
		"images":      images,
		"nextProject": next,
	})
}

// ShowAbout renders the bio, lazily seeding the default content.
func (a *API) ShowAbout(c *gin.Context) {
	page, err := a.about.Ensure()
	if err != nil {
		a.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "about.html", gin.H{
		"paragraphs": renderParagraphs(page.Content),
	})
}

// DownloadCV streams the configured CV file as an attachment.
func (a *API) DownloadCV(c *gin.Context) {
	path, downloadName, err := a.cvs.Resolve(a.graphicsDir, a.uploader.Dir())
	if err != nil {
		if errors.Is(err, service.ErrCVFileMissing) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}
	c.FileAttachment(path, downloadName)
}

func (a *API) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

func (a *API) serverError(c *gin.Context, err error) {
	a.log.WithField("path", c.Request.URL.Path).WithError(err).Error("request failed")
	c.String(http.StatusInternalServerError, "Internal Server Error")
}
