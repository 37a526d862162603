// Package transferdelivery manages delivery layer of money transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/moneyport/moneyport/internal/domain"
	"github.com/moneyport/moneyport/internal/transferservice"
	"github.com/moneyport/moneyport/pkg/errorspkg"
	"github.com/moneyport/moneyport/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	SendMoney(ctx context.Context, sourceID, targetID domain.AccountID, amount domain.Money) (bool, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type request struct {
	SourceAccountID int64 `json:"source_account_id" binding:"required,min=1"`
	TargetAccountID int64 `json:"target_account_id" binding:"required,min=1"`
	Amount          int64 `json:"amount" binding:"required,min=1"`
}

type data struct {
	Done bool `json:"done"`
}

type response struct {
	Data data `json:"data"`
}

// Create handles http request to transfer money between two accounts.
//
// A declined transfer (insufficient funds) is a 200 with done=false; errors
// map to 4xx/5xx statuses.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	sourceID, err := domain.NewAccountID(req.SourceAccountID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	targetID, err := domain.NewAccountID(req.TargetAccountID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	done, err := h.service.SendMoney(ctx, sourceID, targetID, domain.NewMoney(req.Amount))
	if err != nil {
		l.Info().Err(err).Send()

		var thresholdErr *transferservice.ThresholdExceededError
		if errors.As(err, &thresholdErr) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{Done: done}})
}
