package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/corona-loader/loader"
)

// status reports the latest finished run
func (s *Server) status(c *gin.Context) {
	report := s.loader.LastReport()
	if report == nil {
		abortWithEncoding(c, http.StatusNotFound, errorNoReport)
		return
	}

	responseWithEncoding(c, http.StatusOK, report)
}

// refresh runs the loader now, or waits for the run in progress
func (s *Server) refresh(c *gin.Context) {
	// the run outlives a client that goes away
	report, err := s.loader.Trigger(context.WithoutCancel(c.Request.Context()))
	if report == nil {
		log.WithField("error", err).Error("refresh without report")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if report.Outcome != loader.OutcomeSuccess {
		if err != nil {
			c.Error(err)
		}
		responseWithEncoding(c, http.StatusServiceUnavailable, gin.H{
			"error":  errorRunIncomplete,
			"report": report,
		})
		return
	}

	responseWithEncoding(c, http.StatusOK, report)
}
