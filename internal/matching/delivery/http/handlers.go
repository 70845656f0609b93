package http

import (
	"github.com/gin-gonic/gin"

	"campus-lostfound/pkg/response"
)

// List godoc
// @Summary     List matches
// @Description Returns all matches with both item summaries, best score first.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Param       category query string false "Keep matches where either item has this category"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/matches [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// GetForItem godoc
// @Summary     List matches for an item
// @Description Returns the matches referencing the item on either side.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/matches/item/{id} [GET]
func (h *handler) GetForItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.GetForItem(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetForItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get match detail
// @Description Returns a single match with both item summaries.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Param       id path string true "Match ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/matches/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// SetStatus godoc
// @Summary     Update match status
// @Description Moves a match to pending, confirmed or rejected.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Match ID"
// @Param       body body setStatusReq true "New status"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/matches/{id}/status [PUT]
func (h *handler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetStatus(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SetStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a match
// @Description Permanently removes a match record.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Param       id path string true "Match ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/matches/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Stats godoc
// @Summary     Match statistics
// @Description Returns match counts by status and the average match score.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/matches/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}
