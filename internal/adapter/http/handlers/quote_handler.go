package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "clearview_estimator/internal/adapter/http/dto/request"
	response "clearview_estimator/internal/adapter/http/dto/response"
	"clearview_estimator/internal/domain/pricing"
	"clearview_estimator/internal/domain/quote"
	"clearview_estimator/internal/usecase"
	"clearview_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler serves the intake form, the estimator session and the
// post-submit steps (email, booking).
type QuoteHandler struct {
	quotes    usecase.IQuoteUseCase
	estimator usecase.IEstimatorUseCase
	logger    *zap.Logger
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, estimator usecase.IEstimatorUseCase, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{quotes: quotes, estimator: estimator, logger: logger}
}

// CalculatePrices godoc
// @Summary      Preview candidate prices
// @Description  Computes the price table for a house profile without storing anything.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        house  body      request.HouseProfileRequest  true  "House profile"
// @Success      200    {object}  response.PriceTableResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /prices [post]
func (h *QuoteHandler) CalculatePrices(c *gin.Context) {
	var payload request.HouseProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	prices := h.quotes.CalculatePrices(payload.ToEntity())
	c.JSON(http.StatusOK, response.FromPriceTable(prices))
}

// StartQuote godoc
// @Summary      Submit the intake form
// @Description  Computes prices, stores the quote as started and opens an empty estimator session.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.StartQuoteRequest  true  "Customer and house profile"
// @Success      201    {object}  response.StartQuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) StartQuote(c *gin.Context) {
	var payload request.StartQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.quotes.StartQuote(c.Request.Context(), payload.Customer.ToEntity(), payload.House.ToEntity())
	if err != nil {
		h.fail(c, "start", "", err)
		return
	}

	s, err := h.estimator.Open(c.Request.Context(), q.ID)
	if err != nil {
		h.fail(c, "open-session", q.ID, err)
		return
	}
	h.logger.Info("[quote][handler] quote started", zap.String("quote_id", q.ID))

	c.JSON(http.StatusCreated, response.StartQuoteResponse{
		Quote:   response.FromQuote(q),
		Session: response.FromSession(s),
	})
}

// ListQuotes godoc
// @Summary      List quotes by customer email
// @Tags         quotes
// @Produce      json
// @Param        email  query     string  true  "Customer email"
// @Success      200    {array}   response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))

	quotes, err := h.quotes.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id := c.Param("id")

	q, err := h.quotes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// SendEstimateEmail godoc
// @Summary      Email the estimate to the customer
// @Description  A 502 means the email could not be sent; the client may continue to booking.
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /quotes/{id}/email [post]
func (h *QuoteHandler) SendEstimateEmail(c *gin.Context) {
	id := c.Param("id")

	q, err := h.quotes.SendEstimateEmail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "email", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetBookingLink godoc
// @Summary      Booking link for a submitted quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.BookingLinkResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/booking [get]
func (h *QuoteHandler) GetBookingLink(c *gin.Context) {
	id := c.Param("id")

	link, err := h.quotes.BookingLink(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "booking", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookingLink(id, link))
}

func (h *QuoteHandler) fail(c *gin.Context, op, quoteID string, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[quote][handler] "+op+" failed", zap.String("quote_id", quoteID), zap.Error(err))
	} else {
		h.logger.Debug("[quote][handler] "+op+" rejected", zap.String("quote_id", quoteID), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Please enter a valid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteCustomer):
		return pkg.NewDomainErrorSimple("INCOMPLETE_CUSTOMER", "A name and a valid email are needed to send the estimate", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Please enter how many screens as a whole number", http.StatusBadRequest)
	case errors.Is(err, quote.ErrUnknownService), errors.Is(err, quote.ErrTierMismatch):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE", "Unknown service for this package", http.StatusBadRequest)
	case errors.Is(err, quote.ErrInvalidFrequency):
		return pkg.NewDomainErrorSimple("INVALID_FREQUENCY", "Unknown frequency", http.StatusBadRequest)
	case errors.Is(err, quote.ErrEmptyQuote):
		return pkg.NewDomainErrorSimple("EMPTY_QUOTE", quote.ErrEmptyQuote.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Estimator session expired or not found. Reopen it to continue.", http.StatusNotFound)
	case errors.Is(err, quote.ErrSessionConflict):
		return pkg.NewDomainErrorSimple("SESSION_CONFLICT", "Your estimate changed in another request, please try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotSubmitted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SUBMITTED", "Quote has not been submitted yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainError("NOTIFICATION_FAILED", "We could not email your estimate. You can continue to booking.", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
