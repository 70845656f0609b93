package http

import (
	"github.com/gin-gonic/gin"

	"campus-lostfound/pkg/response"
)

// Overall godoc
// @Summary     Overall statistics
// @Description Returns report counts by type, status and category plus monthly and daily activity.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Success     200 {object} overallResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats [GET]
func (h *handler) Overall(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Overall(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overall: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOverallResp(output))
}

// Daily godoc
// @Summary     Daily activity
// @Description Returns the last 30 days of report activity, newest first.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Success     200 {object} dailyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats/daily [GET]
func (h *handler) Daily(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Daily(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Daily: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDailyResp(output))
}

// Category godoc
// @Summary     Category statistics
// @Description Returns report counts for one category with its most active locations.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Param       category path string true "Category name"
// @Success     200 {object} categoryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats/category/{category} [GET]
func (h *handler) Category(c *gin.Context) {
	ctx := c.Request.Context()

	category := c.Param("category")
	output, err := h.uc.Category(ctx, category)
	if err != nil {
		h.l.Errorf(ctx, "uc.Category: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoryResp(output))
}

// Location godoc
// @Summary     Location statistics
// @Description Returns report counts for locations containing the given name.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Param       location path string true "Location name"
// @Success     200 {object} locationResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats/location/{location} [GET]
func (h *handler) Location(c *gin.Context) {
	ctx := c.Request.Context()

	location := c.Param("location")
	output, err := h.uc.Location(ctx, location)
	if err != nil {
		h.l.Errorf(ctx, "uc.Location: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLocationResp(output))
}
