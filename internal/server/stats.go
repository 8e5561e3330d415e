package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) TopProducts(c *gin.Context) {
	top, err := s.stats.TopProducts(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, top)
}

func (s *Server) SalesPerDay(c *gin.Context) {
	totals, err := s.stats.SalesPerDay(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (s *Server) SalesPerWeek(c *gin.Context) {
	totals, err := s.stats.SalesPerWeek(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (s *Server) SalesPerMonth(c *gin.Context) {
	totals, err := s.stats.SalesPerMonth(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (s *Server) SalesPerSeller(c *gin.Context) {
	totals, err := s.stats.SalesPerSeller(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
