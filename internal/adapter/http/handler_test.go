package httpadapter

import (
	"encoding/json"
	"errors"
	"testing"

	"cursedwarden/internal/app/battle"
	"cursedwarden/internal/app/placement"
	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/app/replay"
	"cursedwarden/internal/domain/inventory"
	"cursedwarden/internal/domain/shape"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestRequireProfileID_FromHeader(t *testing.T) {
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(profileIDHeader, "profile-1")

	profileID, err := requireProfileID(ctx)
	if err != nil {
		t.Fatalf("requireProfileID error: %v", err)
	}
	if profileID != "profile-1" {
		t.Fatalf("unexpected profile id: %q", profileID)
	}
}

func TestRequireProfileID_MissingHeader(t *testing.T) {
	ctx := &app.RequestContext{}

	_, err := requireProfileID(ctx)
	if err != ErrMissingProfileHeader {
		t.Fatalf("expected ErrMissingProfileHeader, got %v", err)
	}
}

func TestWriteError_InvalidRequest(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, placement.ErrInvalidRequest)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}

	var body map[string]map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "bad_request"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_WrongPhase(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, battle.ErrWrongPhase)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "wrong_phase"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_RunOver(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, battle.ErrRunOver)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "run_over"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_CorruptSave(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, inventory.ErrCorruptSave)

	if got, want := ctx.Response.StatusCode(), consts.StatusUnprocessableEntity; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "corrupt_save"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_NotFound(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrNotFound)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "not_found"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_UnhandledIsInternal(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.New("boom"))

	if got, want := ctx.Response.StatusCode(), consts.StatusInternalServerError; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["message"], "internal error"; got != want {
		t.Fatalf("internal errors must not echo details: got=%q want=%q", got, want)
	}
}

func TestWritePlacementRejectedFromErr_Overlap(t *testing.T) {
	ctx := &app.RequestContext{}
	err := &inventory.OverlapError{Cell: shape.Cell{Row: 2, Col: 3}, Occupant: 7}
	if ok := writePlacementRejectedFromErr(ctx, err); !ok {
		t.Fatalf("expected handled error")
	}
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}

	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["result_code"], "REJECTED"; got != want {
		t.Fatalf("result_code mismatch: got=%v want=%v", got, want)
	}
	errObj, _ := body["error"].(map[string]any)
	if got, want := errObj["code"], "placement_overlap"; got != want {
		t.Fatalf("error code mismatch: got=%v want=%v", got, want)
	}
	details, _ := errObj["details"].(map[string]any)
	cell, _ := details["cell"].(map[string]any)
	if got, want := cell["row"], float64(2); got != want {
		t.Fatalf("details.cell.row mismatch: got=%v want=%v", got, want)
	}
	if got, want := cell["col"], float64(3); got != want {
		t.Fatalf("details.cell.col mismatch: got=%v want=%v", got, want)
	}
	if got, want := details["occupant"], float64(7); got != want {
		t.Fatalf("details.occupant mismatch: got=%v want=%v", got, want)
	}
}

func TestWritePlacementRejectedFromErr_OutOfBounds(t *testing.T) {
	ctx := &app.RequestContext{}
	err := &inventory.OutOfBoundsError{Cell: shape.Cell{Row: -1, Col: 0}}
	if ok := writePlacementRejectedFromErr(ctx, err); !ok {
		t.Fatalf("expected handled error")
	}
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	errObj, _ := body["error"].(map[string]any)
	if got, want := errObj["code"], "placement_out_of_bounds"; got != want {
		t.Fatalf("error code mismatch: got=%v want=%v", got, want)
	}
}

func TestWritePlacementRejectedFromErr_Unhandled(t *testing.T) {
	ctx := &app.RequestContext{}
	if ok := writePlacementRejectedFromErr(ctx, replay.ErrInvalidRequest); ok {
		t.Fatalf("expected unhandled error")
	}
}

func TestDecodeJSON_EmptyBodyIsNoop(t *testing.T) {
	ctx := &app.RequestContext{}
	var body placeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		t.Fatalf("decodeJSON error: %v", err)
	}
	if body.ItemID != "" {
		t.Fatalf("expected zero value, got %+v", body)
	}
}
