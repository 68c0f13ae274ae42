package controller

import (
	"ceam-backend/models"
	"ceam-backend/services"
	"ceam-backend/utils/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const contactAPIVersion = "1.0.0"

type ContactController struct {
	ctx     context.Context
	service services.ContactServiceInterface
	logger  logger.Logger
}

func NewContactController(ctx context.Context, service services.ContactServiceInterface, logger logger.Logger) *ContactController {
	return &ContactController{
		ctx:     ctx,
		service: service,
		logger:  logger,
	}
}

// Status handles GET /contact
// @Summary Contact API status
// @Description Reports that the contact endpoint is reachable. No side effects.
// @Tags Contact
// @Produce json
// @Success 200 {object} models.ContactStatusResponse
// @Router /contact [get]
func (h *ContactController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, models.ContactStatusResponse{
		Message: models.MsgContactRunning,
		Version: contactAPIVersion,
	})
}

// Submit handles POST /contact
// @Summary Submit the contact form
// @Description Validates an inquiry, emails it to the association and sends the submitter an acknowledgement.
// @Description Mail delivery problems are not reported to the caller.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.Inquiry true "Contact form fields"
// @Success 200 {object} models.ContactResponse "Accepted"
// @Failure 400 {object} models.ContactResponse "Missing fields or invalid email"
// @Failure 500 {object} models.ContactResponse "Unreadable request"
// @Router /contact [post]
func (h *ContactController) Submit(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.internalError(c, err)
		return
	}

	inq, err := h.service.ParseInquiry(body)
	if err != nil {
		h.internalError(c, err)
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), inq, c.GetHeader("X-Forwarded-For")); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, models.ContactResponse{Message: vErr.Message})
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ContactResponse{
		Message: models.MsgContactAccepted,
		Success: models.Bool(true),
	})
}

func (h *ContactController) internalError(c *gin.Context, err error) {
	h.logger.Errorf("Contact form error: %v", err)
	c.JSON(http.StatusInternalServerError, models.ContactResponse{
		Message: models.MsgContactFailed,
		Success: models.Bool(false),
	})
}
