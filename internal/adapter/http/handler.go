package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"cursedwarden/internal/app/battle"
	"cursedwarden/internal/app/placement"
	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/app/replay"
	"cursedwarden/internal/app/status"
	"cursedwarden/internal/domain/content"
	"cursedwarden/internal/domain/inventory"
	"cursedwarden/internal/domain/shape"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const profileIDHeader = "X-Profile-ID"

type Handler struct {
	PlacementUC placement.UseCase
	BattleUC    battle.UseCase
	StatusUC    status.UseCase
	ReplayUC    replay.UseCase
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	inv := s.Group("/api/inventory")
	inv.POST("/place", h.place)
	inv.POST("/auto-place", h.autoPlace)
	inv.POST("/remove", h.remove)
	inv.POST("/grow", h.grow)
	inv.GET("/status", h.status)

	bt := s.Group("/api/battle")
	bt.POST("/run", h.runBattle)
	bt.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type placeRequest struct {
	IdempotencyKey string     `json:"idempotency_key"`
	ItemID         string     `json:"item_id"`
	Anchor         shape.Cell `json:"anchor"`
	Orientation    int        `json:"orientation"`
}

type targetRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	Target         int64  `json:"target"`
}

type battleRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	Seed           int64  `json:"seed,omitempty"`
}

func (h Handler) place(c context.Context, ctx *app.RequestContext) {
	h.placement(c, ctx, placement.KindPlace)
}

func (h Handler) autoPlace(c context.Context, ctx *app.RequestContext) {
	h.placement(c, ctx, placement.KindAutoPlace)
}

func (h Handler) placement(c context.Context, ctx *app.RequestContext, kind placement.Kind) {
	profileID, err := requireProfileID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body placeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.PlacementUC.Execute(c, placement.Request{
		ProfileID:      profileID,
		IdempotencyKey: body.IdempotencyKey,
		Kind:           kind,
		ItemID:         body.ItemID,
		Anchor:         body.Anchor,
		Orientation:    body.Orientation,
	})
	if err != nil {
		if writePlacementRejectedFromErr(ctx, err) {
			return
		}
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) remove(c context.Context, ctx *app.RequestContext) {
	h.targeted(c, ctx, placement.KindRemove)
}

func (h Handler) grow(c context.Context, ctx *app.RequestContext) {
	h.targeted(c, ctx, placement.KindGrow)
}

func (h Handler) targeted(c context.Context, ctx *app.RequestContext, kind placement.Kind) {
	profileID, err := requireProfileID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body targetRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.PlacementUC.Execute(c, placement.Request{
		ProfileID:      profileID,
		IdempotencyKey: body.IdempotencyKey,
		Kind:           kind,
		TargetID:       inventory.PlacedID(body.Target),
	})
	if err != nil {
		if writePlacementRejectedFromErr(ctx, err) {
			return
		}
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	profileID, err := requireProfileID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.StatusUC.Execute(c, status.Request{ProfileID: profileID})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) runBattle(c context.Context, ctx *app.RequestContext) {
	profileID, err := requireProfileID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body battleRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.BattleUC.Execute(c, battle.Request{
		ProfileID:      profileID,
		IdempotencyKey: body.IdempotencyKey,
		Seed:           body.Seed,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	profileID, err := requireProfileID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		ProfileID:    profileID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
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

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingProfileHeader = errors.New("missing x-profile-id header")

func requireProfileID(ctx *app.RequestContext) (string, error) {
	profileID := strings.TrimSpace(string(ctx.GetHeader(profileIDHeader)))
	if profileID == "" {
		return "", ErrMissingProfileHeader
	}
	return profileID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingProfileHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_profile_id", err.Error())
	case errors.Is(err, inventory.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusBadRequest, "placement_out_of_bounds", err.Error())
	case errors.Is(err, inventory.ErrLockedCell):
		writeErrorBody(ctx, consts.StatusBadRequest, "placement_locked_cell", err.Error())
	case errors.Is(err, inventory.ErrOverlap):
		writeErrorBody(ctx, consts.StatusBadRequest, "placement_overlap", err.Error())
	case errors.Is(err, inventory.ErrUnknownOrientation):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_orientation", err.Error())
	case errors.Is(err, inventory.ErrItemNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "placed_item_not_found", err.Error())
	case errors.Is(err, inventory.ErrCorruptSave):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "corrupt_save", err.Error())
	case errors.Is(err, content.ErrUnknownItem):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_item", err.Error())
	case errors.Is(err, placement.ErrWrongPhase),
		errors.Is(err, battle.ErrWrongPhase):
		writeErrorBody(ctx, consts.StatusConflict, "wrong_phase", err.Error())
	case errors.Is(err, placement.ErrNoSpace):
		writeErrorBody(ctx, consts.StatusConflict, "no_space", err.Error())
	case errors.Is(err, placement.ErrRunOver),
		errors.Is(err, battle.ErrRunOver):
		writeErrorBody(ctx, consts.StatusConflict, "run_over", err.Error())
	case errors.Is(err, placement.ErrInvalidRequest),
		errors.Is(err, battle.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
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

// writePlacementRejectedFromErr handles placement validation failures
// that carry an offending cell, so the client can highlight it. Returns
// false when the error is not a placement rejection.
func writePlacementRejectedFromErr(ctx *app.RequestContext, err error) bool {
	switch {
	case errors.Is(err, inventory.ErrOutOfBounds):
		details := map[string]any{}
		var oob *inventory.OutOfBoundsError
		if errors.As(err, &oob) && oob != nil {
			details["cell"] = oob.Cell
		}
		writePlacementRejected(ctx, "placement_out_of_bounds", err.Error(), details)
		return true
	case errors.Is(err, inventory.ErrLockedCell):
		details := map[string]any{}
		var locked *inventory.LockedCellError
		if errors.As(err, &locked) && locked != nil {
			details["cell"] = locked.Cell
		}
		writePlacementRejected(ctx, "placement_locked_cell", err.Error(), details)
		return true
	case errors.Is(err, inventory.ErrOverlap):
		details := map[string]any{}
		var overlap *inventory.OverlapError
		if errors.As(err, &overlap) && overlap != nil {
			details["cell"] = overlap.Cell
			details["occupant"] = overlap.Occupant
		}
		writePlacementRejected(ctx, "placement_overlap", err.Error(), details)
		return true
	default:
		return false
	}
}

func writePlacementRejected(ctx *app.RequestContext, code, message string, details map[string]any) {
	if len(details) == 0 {
		details = nil
	}
	ctx.JSON(consts.StatusBadRequest, map[string]any{
		"result_code": "REJECTED",
		"error": map[string]any{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
