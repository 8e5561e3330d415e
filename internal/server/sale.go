package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	saledomain "github.com/smallbiznis/sica/internal/sale/domain"
)

func (s *Server) ListSales(c *gin.Context) {
	sales, err := s.sales.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (s *Server) CreateSale(c *gin.Context) {
	var req saledomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	receipt, err := s.sales.CreateSale(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// ListSalesByDate expects dateLo and dateHi query parameters. Both
// bounds are required and inclusive.
func (s *Server) ListSalesByDate(c *gin.Context) {
	lo := c.Query("dateLo")
	hi := c.Query("dateHi")

	sales, err := s.sales.ListByDateRange(c.Request.Context(), lo, hi)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (s *Server) ListSalesByProduct(c *gin.Context) {
	sales, err := s.sales.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (s *Server) ListSalesByUser(c *gin.Context) {
	sales, err := s.sales.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
