// Package api exposes the compute pipeline over HTTP for the surrounding
// application. The server is stateless: every request carries a full
// parameter set and gets a full derived result back.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piwi3910/ShelfCut/internal/export"
	"github.com/piwi3910/ShelfCut/internal/model"
	"github.com/piwi3910/ShelfCut/internal/state"
)

// ComputeResponse is the full result for one parameter set.
type ComputeResponse struct {
	Params  model.DesignParams `json:"params"`
	Derived state.Derived      `json:"derived"`
}

// NewRouter builds the HTTP routes.
func NewRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/defaults", handleDefaults)
	r.POST("/api/compute", handleCompute)
	r.POST("/api/chart", handleChart)

	return r
}

func handleDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, model.DefaultParams())
}

// handleCompute validates the posted params and runs the pure pipeline.
func handleCompute(c *gin.Context) {
	var params model.DesignParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ComputeResponse{
		Params:  params,
		Derived: state.Compute(params),
	})
}

// handleChart renders the sheet utilization chart for the posted params
// as a standalone HTML page.
func handleChart(c *gin.Context) {
	var params model.DesignParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	derived := state.Compute(params)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := export.RenderUtilizationChart(c.Writer, derived.Packing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
