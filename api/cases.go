package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/corona-loader/store"
)

func (s *Server) getTotals(c *gin.Context) {
	totals, err := s.mongoStore.GetTotals()
	if errors.Is(err, store.ErrNoTotals) {
		abortWithEncoding(c, http.StatusNotFound, errorNoTotals)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	responseWithEncoding(c, http.StatusOK, totals)
}

// getLocations lists every location, or the locations of one country with
// the `country` query
func (s *Server) getLocations(c *gin.Context) {
	var params struct {
		Country string `form:"country"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	locations, err := s.mongoStore.GetLocations(strings.TrimSpace(params.Country))
	if shouldInterupt(err, c) {
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{
		"locations": locations,
	})
}

func (s *Server) getLocation(c *gin.Context) {
	idKey := strings.ToLower(c.Param("idKey"))

	location, err := s.mongoStore.GetLocation(idKey)
	if errors.Is(err, store.ErrLocationNotFound) {
		abortWithEncoding(c, http.StatusNotFound, errorLocationNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	responseWithEncoding(c, http.StatusOK, location)
}
