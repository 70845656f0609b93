package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// processListReq binds the list matches query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSetStatusReq binds the status request body + URI param.
func (h *handler) processSetStatusReq(c *gin.Context) (setStatusReq, error) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errors.New("id is required")
	}
	return req, nil
}
