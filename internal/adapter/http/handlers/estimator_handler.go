package handlers

import (
	"net/http"

	request "clearview_estimator/internal/adapter/http/dto/request"
	response "clearview_estimator/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OpenSession godoc
// @Summary      Open or reopen the estimator session
// @Description  Starts a session from the selections stored on the quote. Use it when the previous session expired.
// @Tags         estimator
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      201  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotes/{id}/session [post]
func (h *QuoteHandler) OpenSession(c *gin.Context) {
	id := c.Param("id")

	s, err := h.estimator.Open(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "open-session", id, err)
		return
	}
	h.logger.Info("[estimator][handler] session opened", zap.String("quote_id", id))
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// GetSession godoc
// @Summary      Current estimator state
// @Tags         estimator
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/session [get]
func (h *QuoteHandler) GetSession(c *gin.Context) {
	id := c.Param("id")

	s, err := h.estimator.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "session", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SelectMainService godoc
// @Summary      Toggle the main window-cleaning package
// @Description  Selecting the package that is already selected clears it.
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Quote ID"
// @Param        service  body      request.MainServiceRequest  true  "Tier and service key"
// @Success      200      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /quotes/{id}/main-service [post]
func (h *QuoteHandler) SelectMainService(c *gin.Context) {
	id := c.Param("id")
	var payload request.MainServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	s, err := h.estimator.SelectMainService(c.Request.Context(), id, payload.ResolveTier(), payload.ResolveServiceKey())
	if err != nil {
		h.fail(c, "main-service", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// ToggleAddOn godoc
// @Summary      Toggle an add-on service
// @Description  Screen repair and screen building need a quantity when added.
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        id      path      string                true  "Quote ID"
// @Param        add_on  body      request.AddOnRequest  true  "Service key and optional quantity"
// @Success      200     {object}  response.SessionResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /quotes/{id}/add-ons [post]
func (h *QuoteHandler) ToggleAddOn(c *gin.Context) {
	id := c.Param("id")
	var payload request.AddOnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	s, err := h.estimator.ToggleAddOn(c.Request.Context(), id, payload.ResolveServiceKey(), payload.RawQuantity())
	if err != nil {
		h.fail(c, "add-on", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SetFrequency godoc
// @Summary      Choose the service frequency
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        id         path      string                    true  "Quote ID"
// @Param        frequency  body      request.FrequencyRequest  true  "one_time, three_months, six_months or yearly"
// @Success      200        {object}  response.SessionResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /quotes/{id}/frequency [put]
func (h *QuoteHandler) SetFrequency(c *gin.Context) {
	id := c.Param("id")
	var payload request.FrequencyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	s, err := h.estimator.SetFrequency(c.Request.Context(), id, payload.ResolveFrequency())
	if err != nil {
		h.fail(c, "frequency", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SubmitQuote godoc
// @Summary      Submit the estimator selections
// @Tags         estimator
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /quotes/{id}/submit [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	id := c.Param("id")

	q, err := h.estimator.Submit(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "submit", id, err)
		return
	}
	h.logger.Info("[quote][handler] quote submitted",
		zap.String("quote_id", q.ID),
		zap.Int64("total_price", q.TotalPrice))
	c.JSON(http.StatusOK, response.FromQuote(q))
}
