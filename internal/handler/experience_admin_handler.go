package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

func experienceInputFromForm(c *gin.Context) service.ExperienceInput {
	return service.ExperienceInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
}

// ShowExperienceList 渲染经历管理列表
func (a *API) ShowExperienceList(c *gin.Context) {
	experiences, err := a.experiences.ListNewestFirst()
	if err != nil {
		a.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "experience_list.html", gin.H{
		"title":       "Experiences",
		"experiences": experiences,
		"flashes":     takeFlashes(c),
	})
}

// ShowExperienceNew renders an empty experience form.
func (a *API) ShowExperienceNew(c *gin.Context) {
	c.HTML(http.StatusOK, "experience_form.html", gin.H{
		"title":   "New Experience",
		"flashes": takeFlashes(c),
	})
}

// CreateExperience stores a new experience from the form.
func (a *API) CreateExperience(c *gin.Context) {
	if _, err := a.experiences.Create(experienceInputFromForm(c)); err != nil {
		a.serverError(c, err)
		return
	}
	addFlash(c, "success", "Experience created successfully!")
	c.Redirect(http.StatusFound, "/admin/experiences")
}

// ShowExperienceEdit renders the form pre-filled with an existing experience.
func (a *API) ShowExperienceEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	experience, err := a.experiences.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "experience_form.html", gin.H{
		"title":      "Edit Experience",
		"experience": experience,
		"flashes":    takeFlashes(c),
	})
}

// UpdateExperience applies form edits to an existing experience.
func (a *API) UpdateExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	if _, err := a.experiences.Update(id, experienceInputFromForm(c)); err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}

	addFlash(c, "success", "Experience updated successfully!")
	c.Redirect(http.StatusFound, "/admin/experiences")
}

// DeleteExperience removes an experience.
func (a *API) DeleteExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFound(c)
		return
	}

	if err := a.experiences.Delete(id); err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			a.notFound(c)
			return
		}
		a.serverError(c, err)
		return
	}

	addFlash(c, "success", "Experience deleted successfully!")
	c.Redirect(http.StatusFound, "/admin/experiences")
}
