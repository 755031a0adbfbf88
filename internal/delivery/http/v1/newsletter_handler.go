package v1

import (
	"net/http"

	"ritter-digital-backend/internal/delivery/http/response"
	"ritter-digital-backend/internal/domain"
	"ritter-digital-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUC domain.NewsletterUsecase
}

// NewNewsletterHandler registers the newsletter routes (public, no auth required)
func NewNewsletterHandler(public *gin.RouterGroup, limiter gin.HandlerFunc, newsletterUC domain.NewsletterUsecase) {
	handler := &NewsletterHandler{
		newsletterUC: newsletterUC,
	}

	public.POST("/newsletter", limiter, handler.Subscribe)
}

// Subscribe godoc
// @Summary      Subscribe to Newsletter
// @Description  Adds the address to the newsletter mailing list. Re-submitting a known address is reported as alreadySubscribed, not as an error.
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        subscription  body      domain.NewsletterRequest  true  "Newsletter Signup Data"
// @Success      200           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Router       /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req domain.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errs := validation.FormatBindingError(err); len(errs) > 0 {
			response.ValidationFailed(c, errs)
			return
		}
		response.Error(c, http.StatusBadRequest, "Ungültige Formulardaten")
		return
	}

	result, err := h.newsletterUC.Subscribe(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	if result.AlreadySubscribed {
		response.Subscribed(c, "Diese E-Mail-Adresse ist bereits für den Newsletter angemeldet", true)
		return
	}

	response.Subscribed(c, "Newsletter-Anmeldung erfolgreich", false)
}
