// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/moneyport/moneyport/internal/domain"
	"github.com/moneyport/moneyport/pkg/errorspkg"
	"github.com/moneyport/moneyport/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	GetBalance(ctx context.Context, id domain.AccountID) (domain.Money, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type getBalanceRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type data struct {
	AccountID int64  `json:"account_id"`
	Balance   string `json:"balance"`
}

type response struct {
	Data data `json:"data"`
}

// GetBalance handles http request to get the current balance of an account.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getBalanceRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	id, err := domain.NewAccountID(req.ID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	balance, err := h.service.GetBalance(ctx, id)
	if err != nil {
		l.Info().Err(err).Send()

		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{
		AccountID: id.Int64(),
		Balance:   balance.String(),
	}})
}
