package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"plantverse/internal/app/account"
	"plantverse/internal/app/care"
	"plantverse/internal/app/history"
	"plantverse/internal/app/plants"
	"plantverse/internal/app/ports"
	"plantverse/internal/app/tick"
	"plantverse/internal/domain/garden"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	AccountUC account.UseCase
	PlantsUC  plants.UseCase
	CareUC    care.UseCase
	TickUC    tick.UseCase
	HistoryUC history.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/owners/register", h.register)
	api.POST("/plants", h.createPlant)
	api.GET("/plants", h.listPlants)
	api.GET("/plants/:plant_id", h.getPlant)
	api.POST("/plants/:plant_id/action", h.careAction)
	api.POST("/plants/:plant_id/tick", h.tick)
	api.GET("/plants/:plant_id/history", h.history)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/healthz", h.healthz)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type createPlantRequest struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
}

type careActionRequest struct {
	Action         string `json:"action_type"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	var body registerRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.AccountUC.Register(c, account.RegisterRequest{
		Username: body.Username,
		Email:    body.Email,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	if resp.Existing {
		ctx.JSON(consts.StatusOK, resp)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) createPlant(c context.Context, ctx *app.RequestContext) {
	var body createPlantRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.PlantsUC.Create(c, plants.CreateRequest{
		OwnerID: body.OwnerID,
		Name:    body.Name,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) listPlants(c context.Context, ctx *app.RequestContext) {
	ownerID := string(ctx.Query("owner_id"))
	resp, err := h.PlantsUC.List(c, plants.ListRequest{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getPlant(c context.Context, ctx *app.RequestContext) {
	plantID := string(ctx.Param("plant_id"))
	resp, err := h.PlantsUC.Get(c, plants.GetRequest{PlantID: plantID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) careAction(c context.Context, ctx *app.RequestContext) {
	plantID := string(ctx.Param("plant_id"))
	var body careActionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CareUC.Execute(c, care.Request{
		PlantID:        plantID,
		Action:         garden.ActionType(body.Action),
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	plantID := string(ctx.Param("plant_id"))
	resp, err := h.TickUC.Execute(c, tick.Request{PlantID: plantID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	plantID := string(ctx.Param("plant_id"))
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	from, _ := strconv.ParseInt(string(ctx.Query("from")), 10, 64)
	to, _ := strconv.ParseInt(string(ctx.Query("to")), 10, 64)

	resp, err := h.HistoryUC.Execute(c, history.Request{
		PlantID: plantID,
		Limit:   limit,
		From:    from,
		To:      to,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, garden.ErrInvalidAction):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action", err.Error())
	case errors.Is(err, garden.ErrInvalidState):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "invalid_state", err.Error())
	case errors.Is(err, care.ErrInvalidRequest),
		errors.Is(err, plants.ErrInvalidRequest),
		errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest),
		errors.Is(err, account.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
