package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/models"
	"learnhub/services"
)

type CertificationHandler struct {
	certifications *services.CertificationService
}

func NewCertificationHandler(certifications *services.CertificationService) *CertificationHandler {
	return &CertificationHandler{certifications: certifications}
}

func (h *CertificationHandler) Add(c *gin.Context) {
	var cert models.Certification
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.certifications.Add(c.Request.Context(), &cert)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CertificationHandler) GetByUser(c *gin.Context) {
	certs, err := h.certifications.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

func (h *CertificationHandler) Search(c *gin.Context) {
	certs, err := h.certifications.Search(c.Request.Context(), c.Param("userId"), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

func (h *CertificationHandler) Update(c *gin.Context) {
	var cert models.Certification
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.certifications.Update(c.Request.Context(), c.Param("id"), &cert)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	if err := h.certifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certification deleted successfully"})
}

func (h *CertificationHandler) GetAll(c *gin.Context) {
	certs, err := h.certifications.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}
