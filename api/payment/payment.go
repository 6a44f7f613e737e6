package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	dto "github.com/neobank/payflow/api/payment/dto"
	res "github.com/neobank/payflow/pkg/http_response"
	"github.com/neobank/payflow/pkg/middlewares/auth"
	"github.com/neobank/payflow/pkg/session"
	sv "github.com/neobank/payflow/server"
	"github.com/neobank/payflow/validations"
	"github.com/neobank/payflow/workflow"
)

type PaymentHandler struct {
	*sv.Server
}

func NewPaymentHandler(server *sv.Server) *PaymentHandler {
	return &PaymentHandler{Server: server}
}

func (h *PaymentHandler) MapRoutes() {
	router := h.Router

	authRoutes := router.Group("/").Use(auth.AuthMiddleWare(h.TokenMaker))

	authRoutes.POST("/payment/load", h.loadContext)
	authRoutes.GET("/payment/state", h.getState)
	authRoutes.PUT("/payment/form", h.updateForm)
	authRoutes.POST("/payment/validate", h.validate)
	authRoutes.POST("/payment/confirm", h.confirm)
	authRoutes.POST("/payment/cancel", h.cancel)
	authRoutes.POST("/payment/dismiss", h.dismiss)
	authRoutes.POST("/payment/retry", h.retry)
	authRoutes.POST("/logout", h.logout)
}

func (h *PaymentHandler) sessionWorkflow(ctx *gin.Context) *workflow.Workflow {
	s := ctx.MustGet(auth.SessionKey).(*session.Session)
	return h.Workflows.GetOrCreate(s)
}

func (h *PaymentHandler) loadContext(ctx *gin.Context) {
	wf := h.sessionWorkflow(ctx)

	if err := wf.Load(ctx); err != nil {
		ctx.JSON(http.StatusBadGateway, res.ErrorResponse(http.StatusBadGateway, err.Error()))
		return
	}

	form := wf.Form()
	data := dto.LoadResponse{
		Accounts:     wf.Accounts(),
		Cards:        wf.Cards(),
		Destinations: wf.Destinations(),
		Form:         form,
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(data, "Payment context loaded successfully"))
}

func (h *PaymentHandler) getState(ctx *gin.Context) {
	wf := h.sessionWorkflow(ctx)

	data := dto.StateResponse{
		State:        wf.State(),
		Form:         wf.Form(),
		Destinations: wf.Destinations(),
		LastResult:   wf.LastResult(),
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(data, "Payment state retrieved successfully"))
}

func (h *PaymentHandler) updateForm(ctx *gin.Context) {
	var req dto.UpdateFormRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, validations.FormatValidationError(err)))
		return
	}

	wf := h.sessionWorkflow(ctx)

	if err := applyFormUpdate(wf, req); err != nil {
		statusCode := statusForWorkflowError(err)
		ctx.JSON(statusCode, res.ErrorResponse(statusCode, err.Error()))
		return
	}

	data := dto.StateResponse{
		State:        wf.State(),
		Form:         wf.Form(),
		Destinations: wf.Destinations(),
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(data, "Payment form updated successfully"))
}

func (h *PaymentHandler) validate(ctx *gin.Context) {
	wf := h.sessionWorkflow(ctx)

	pending, err := wf.Validate()
	if err != nil {
		statusCode := statusForWorkflowError(err)
		ctx.JSON(statusCode, res.ErrorResponse(statusCode, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(pending, "Transaction ready for confirmation"))
}

func (h *PaymentHandler) confirm(ctx *gin.Context) {
	wf := h.sessionWorkflow(ctx)

	result, err := wf.Confirm(ctx)
	if err != nil {
		statusCode := statusForWorkflowError(err)
		ctx.JSON(statusCode, res.ErrorResponse(statusCode, err.Error()))
		return
	}

	if result.Status == workflow.StatusFailed {
		ctx.JSON(http.StatusBadGateway, res.FailureResponse(http.StatusBadGateway, result.Message, result))
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(result, "Transaction completed successfully"))
}

func (h *PaymentHandler) cancel(ctx *gin.Context) {
	h.fireEvent(ctx, func(wf *workflow.Workflow) error { return wf.Cancel() }, "Transaction cancelled")
}

func (h *PaymentHandler) dismiss(ctx *gin.Context) {
	h.fireEvent(ctx, func(wf *workflow.Workflow) error { return wf.Dismiss() }, "Overlay dismissed")
}

func (h *PaymentHandler) retry(ctx *gin.Context) {
	h.fireEvent(ctx, func(wf *workflow.Workflow) error { return wf.Retry() }, "Returned to payment form")
}

// logout ends the session lifecycle: the session object is invalidated and
// its workflow is dropped from the registry.
func (h *PaymentHandler) logout(ctx *gin.Context) {
	s := ctx.MustGet(auth.SessionKey).(*session.Session)

	s.Invalidate()
	h.Workflows.Remove(s.ID)

	ctx.JSON(http.StatusOK, res.SuccessResponse(nil, "Logged out successfully"))
}

func (h *PaymentHandler) fireEvent(ctx *gin.Context, fire func(*workflow.Workflow) error, message string) {
	wf := h.sessionWorkflow(ctx)

	if err := fire(wf); err != nil {
		statusCode := statusForWorkflowError(err)
		ctx.JSON(statusCode, res.ErrorResponse(statusCode, err.Error()))
		return
	}

	data := dto.StateResponse{
		State:        wf.State(),
		Form:         wf.Form(),
		Destinations: wf.Destinations(),
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(data, message))
}

func applyFormUpdate(wf *workflow.Workflow, req dto.UpdateFormRequest) error {
	if req.Mode != "" {
		if err := wf.SetMode(workflow.TransferMode(req.Mode)); err != nil {
			return err
		}
	}
	if req.SourceAccountID != nil {
		if err := wf.SetSourceAccount(*req.SourceAccountID); err != nil {
			return err
		}
	}
	if req.DestAccountID != nil {
		if err := wf.SetDestinationAccount(*req.DestAccountID); err != nil {
			return err
		}
	}
	if req.ExternalAccountNumber != nil {
		if err := wf.SetExternalAccountNumber(*req.ExternalAccountNumber); err != nil {
			return err
		}
	}
	if req.SourceCardID != nil {
		if err := wf.SetSourceCard(*req.SourceCardID); err != nil {
			return err
		}
	}
	if req.MerchantName != nil {
		if err := wf.SetMerchantName(*req.MerchantName); err != nil {
			return err
		}
	}
	if req.Amount != nil {
		if err := wf.SetAmount(*req.Amount); err != nil {
			return err
		}
	}
	return nil
}

func statusForWorkflowError(err error) int {
	var validationErr *workflow.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, workflow.ErrIllegalTransition),
		errors.Is(err, workflow.ErrFormNotEditable),
		errors.Is(err, workflow.ErrSubmissionInFlight),
		errors.Is(err, workflow.ErrNotLoaded):
		return http.StatusConflict
	case errors.Is(err, workflow.ErrUnknownAccount),
		errors.Is(err, workflow.ErrUnknownCard),
		errors.Is(err, workflow.ErrUnknownMode):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
