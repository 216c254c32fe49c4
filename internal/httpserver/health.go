package httpserver

import (
	"github.com/gin-gonic/gin"

	"tugasku/pkg/response"
)

const (
	HealthMessage = "Tugasku siap membantu"
	HealthVersion = "1.0.0"
	ServiceName   = "tugasku"
)

type healthResp struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
}

type readyResp struct {
	healthResp
	Tasks     int `json:"tasks"`
	Schedules int `json:"schedules"`
	Notes     int `json:"notes"`
}

func (srv HTTPServer) health(status string) healthResp {
	return healthResp{
		Status:      status,
		Message:     HealthMessage,
		Version:     HealthVersion,
		Service:     ServiceName,
		Environment: srv.environment,
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.health("healthy"))
}

// readyCheck reports the loaded collection sizes.
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} readyResp
// @Router  /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	st := srv.trackerUC.Stats(c.Request.Context())
	response.OK(c, readyResp{
		healthResp: srv.health("ready"),
		Tasks:      st.Total,
		Schedules:  st.Schedules,
		Notes:      st.Notes,
	})
}

// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.health("alive"))
}
