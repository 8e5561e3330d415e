package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	providerdomain "github.com/smallbiznis/sica/internal/provider/domain"
)

func (s *Server) ListProviders(c *gin.Context) {
	providers, err := s.provs.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (s *Server) CreateProvider(c *gin.Context) {
	var req providerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	provider, err := s.provs.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, provider)
}

func (s *Server) GetProvider(c *gin.Context) {
	provider, err := s.provs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (s *Server) UpdateProvider(c *gin.Context) {
	var req providerdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	req.ID = c.Param("id")

	provider, err := s.provs.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (s *Server) DeactivateProvider(c *gin.Context) {
	if err := s.provs.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
