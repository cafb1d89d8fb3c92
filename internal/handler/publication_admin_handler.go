package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

func publicationInputFromForm(c *gin.Context) service.PublicationInput {
	return service.PublicationInput{
		Title:           c.PostForm("title"),
		Journal:         c.PostForm("journal"),
		PublicationDate: c.PostForm("publication_date"),
		Authors:         c.PostForm("authors"),
		URL:             c.PostForm("url"),
	}
}

// ShowPublicationList 渲染论文管理列表
func (a *API) ShowPublicationList(c *gin.Context) {
	publications, err := a.publications.List()
	if err != nil {
		a.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "publication_list.html", gin.H{
		"title":        "Publications",
		"publications": publications,
		"flashes":      takeFlashes(c),
	})
}

// ShowPublicationNew renders an empty publication form.
func (a *API) ShowPublicationNew(c *gin.Context) {
	c.HTML(http.StatusOK, "publication_form.html", gin.H{
		"title":   "New Publication",
		"flashes": takeFlashes(c),
	})
}

// CreatePublication stores a new publication from the form.
func (a *API) CreatePublication(c *gin.Context) {
	if _, err := a.publications.Create(publicationInputFromForm(c)); err != nil {
		a.serverError(c, err)
		return
	}
	addFlash(c, "success", "Publication created successfully!")
	c.Redirect(http.StatusFound, "/admin/publications")
}

// ShowPublicationEdit renders the form pre-filled with an existing publication.
func (a *API) ShowPublicationEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	publication, err := a.publications.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "publication_form.html", gin.H{
		"title":       "Edit Publication",
		"publication": publication,
		"flashes":     takeFlashes(c),
	})
}

// UpdatePublication applies form edits to an existing publication.
func (a *API) UpdatePublication(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	if _, err := a.publications.Update(id, publicationInputFromForm(c)); err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}

	addFlash(c, "success", "Publication updated successfully!")
	c.Redirect(http.StatusFound, "/admin/publications")
}

// DeletePublication removes a publication.
func (a *API) DeletePublication(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	if err := a.publications.Delete(id); err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}

	addFlash(c, "success", "Publication deleted successfully!")
	c.Redirect(http.StatusFound, "/admin/publications")
}
