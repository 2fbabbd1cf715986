package api

import (
	"net/http"
	"strconv"

	reqdto "store-offers-api/internal/handler/dto/request"
	resdto "store-offers-api/internal/handler/dto/response"
	"store-offers-api/internal/handler/httperr"
	"store-offers-api/internal/handler/middleware"
	"store-offers-api/internal/pkg/errs"
	"store-offers-api/internal/usecase/commands"
	"store-offers-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Add store offer
// @Description Create an offer with no prices, no time window and empty properties (admin only)
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddOfferRequest true "Add offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/store/offers [post]
func (h *OfferHandler) Add(c *gin.Context) {
	var req reqdto.AddOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.Add(c.Request.Context(), middleware.GetActor(c), cmd)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "add offer")
		return
	}
	c.Header("Location", "/api/store/offers/"+o.ID())
	c.JSON(http.StatusCreated, resdto.FromOffer(o))
}

// @Summary Delete store offer
// @Description Delete an offer; deleting an unknown id succeeds (admin only)
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/store/offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), c.Param("id")); err != nil {
		httperr.AbortWithDomainError(c, err, "delete offer")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set offer name
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetNameRequest true "New name"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/name [put]
func (h *OfferHandler) SetName(c *gin.Context) {
	var req reqdto.SetNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.SetName(c.Request.Context(), middleware.GetActor(c), c.Param("id"), req.Name)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "set offer name")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o))
}

// @Summary Set offer description
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetDescriptionRequest true "New description"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/description [put]
func (h *OfferHandler) SetDescription(c *gin.Context) {
	var req reqdto.SetDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.SetDescription(c.Request.Context(), middleware.GetActor(c), c.Param("id"), req.Description)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "set offer description")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o))
}

// @Summary Set offer image URL
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetImageURLRequest true "New image URL"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/image-url [put]
func (h *OfferHandler) SetImageURL(c *gin.Context) {
	var req reqdto.SetImageURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.SetImageURL(c.Request.Context(), middleware.GetActor(c), c.Param("id"), req.ImageURL)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "set offer image url")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o))
}

// @Summary Set offer tags
// @Description Replace the tags; with appId every tag is stored as "{tag}_{appId}"
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetTagsRequest true "New tags"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/tags [put]
func (h *OfferHandler) SetTags(c *gin.Context) {
	var req reqdto.SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.SetTags(c.Request.Context(), middleware.GetActor(c), c.Param("id"), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "set offer tags")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o))
}

// @Summary Set offer prices
// @Description Replace the price list; several entries per item are alternatives
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetPricesRequest true "New prices"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/prices [put]
func (h *OfferHandler) SetPrices(c *gin.Context) {
	var req reqdto.SetPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	prices, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.SetPrices(c.Request.Context(), middleware.GetActor(c), c.Param("id"), prices)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "set offer prices")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o))
}

// @Summary Set offer availability window
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetTimeRequest true "Window in Unix milliseconds"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/time [put]
func (h *OfferHandler) SetTime(c *gin.Context) {
	var req reqdto.SetTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.SetTime(c.Request.Context(), middleware.GetActor(c), c.Param("id"), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "set offer time")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o))
}

// @Summary Set offer properties
// @Description Store an arbitrary JSON document verbatim and echo it back
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body object true "Properties document"
// @Success 200 {object} object
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/properties [put]
func (h *OfferHandler) SetProperties(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	stored, err := h.cmds.SetProperties(c.Request.Context(), middleware.GetActor(c), c.Param("id"), string(raw))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "set offer properties")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(stored))
}

// @Summary Get offer properties
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} object
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/properties [get]
func (h *OfferHandler) GetProperties(c *gin.Context) {
	props, err := h.q.GetProperties(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "get offer properties")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(props))
}

// @Summary Get offer tags
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.TagsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/store/offers/{id}/tags [get]
func (h *OfferHandler) GetTags(c *gin.Context) {
	id := c.Param("id")
	tags, err := h.q.GetTags(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "get offer tags")
		return
	}
	if tags == nil {
		tags = []string{}
	}
	c.JSON(http.StatusOK, resdto.TagsResponse{ID: id, Tags: tags})
}

// @Summary Get offers by ids
// @Description Unknown ids are skipped
// @Tags offers
// @Produce json
// @Param ids query []string true "Offer ids" collectionFormat(multi)
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /api/store/offers/by-ids [get]
func (h *OfferHandler) GetByIDs(c *gin.Context) {
	views, err := h.q.GetByIDs(c.Request.Context(), c.QueryArray("ids"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "get offers by ids")
		return
	}
	writeOfferViews(c, views, "get offers by ids")
}

// @Summary Get offers by tags
// @Description Offers carrying at least one of the tags
// @Tags offers
// @Produce json
// @Param tags query []string true "Tags" collectionFormat(multi)
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /api/store/offers/by-tags [get]
func (h *OfferHandler) GetByTags(c *gin.Context) {
	views, err := h.q.GetByTags(c.Request.Context(), c.QueryArray("tags"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "get offers by tags")
		return
	}
	writeOfferViews(c, views, "get offers by tags")
}

// @Summary Get offers by app ids
// @Description Offers visible to at least one of the apps, newest first
// @Tags offers
// @Produce json
// @Param appIds query []string true "App ids" collectionFormat(multi)
// @Param limit query int false "Max items (default 20, max 200)"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /api/store/offers/by-app-ids [get]
func (h *OfferHandler) GetByAppIDs(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = iv
	}
	views, err := h.q.GetByAppIDs(c.Request.Context(), c.QueryArray("appIds"), limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "get offers by app ids")
		return
	}
	writeOfferViews(c, views, "get offers by app ids")
}

// @Summary Get offers changed since a timestamp
// @Description Offers of the app updated at or after since (Unix milliseconds)
// @Tags offers
// @Produce json
// @Param appId query string true "App id"
// @Param since query int true "Unix milliseconds"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /api/store/offers/by-timestamp [get]
func (h *OfferHandler) GetByTimestamp(c *gin.Context) {
	since, err := strconv.ParseInt(c.Query("since"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid since", nil)
		return
	}
	views, err := h.q.GetByTimestamp(c.Request.Context(), c.Query("appId"), since)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "get offers by timestamp")
		return
	}
	writeOfferViews(c, views, "get offers by timestamp")
}

func writeOfferViews(c *gin.Context, views []*queries.OfferView, op string) {
	res, err := resdto.FromOfferViews(views)
	if err != nil {
		httperr.AbortWithDomainError(c, errs.Wrap(err, "map offer views"), op)
		return
	}
	c.JSON(http.StatusOK, res)
}
