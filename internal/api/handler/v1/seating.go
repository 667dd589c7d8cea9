package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Emmabm/web-lasrocas-sub000/internal/api/handler/v1/request"
	"github.com/Emmabm/web-lasrocas-sub000/internal/api/handler/v1/response"
	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
	"github.com/Emmabm/web-lasrocas-sub000/internal/service"
)

type SeatingService interface {
	Snapshot(ctx context.Context, eventID string) (service.Snapshot, error)
	Reload(ctx context.Context, eventID string) (service.Snapshot, error)
	SelectTable(ctx context.Context, eventID, tableID string) (service.Snapshot, error)
	AddGroup(ctx context.Context, eventID, tableID string, group domain.GuestGroup) (service.Snapshot, error)
	RemoveGroup(ctx context.Context, eventID, tableID string, groupID uint) (service.Snapshot, error)
	CancelEdit(ctx context.Context, eventID, tableID string) (service.Snapshot, error)
	CommitTable(ctx context.Context, eventID, tableID, explicitName string) (service.Snapshot, error)
	UpdateTable(ctx context.Context, eventID, tableID string, groups []domain.GuestGroup,
		adults, children, babies int, explicitName string) (service.Snapshot, error)
	MoveTable(ctx context.Context, eventID, tableID string, pos domain.Position) (service.Snapshot, error)
	UpdateDecoration(ctx context.Context, eventID string, d domain.Decoration) (service.Snapshot, error)
	SaveDecoration(ctx context.Context, eventID string) (service.Snapshot, error)
	SaveDistribution(ctx context.Context, eventID string) (service.Snapshot, error)
}

type SeatingHandler struct {
	svc SeatingService
}

func NewSeatingHandler(svc SeatingService) *SeatingHandler {
	return &SeatingHandler{
		svc: svc,
	}
}

func pathParams(ctx *gin.Context) (eventID, tableID string, ok bool) {
	eventID = strings.TrimSpace(ctx.Param("eventID"))
	tableID = strings.TrimSpace(ctx.Param("tableID"))
	if eventID == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid event ID")))
		return "", "", false
	}
	return eventID, tableID, true
}

func (h *SeatingHandler) render(ctx *gin.Context, snap service.Snapshot, err error) {
	if err != nil {
		response.RenderErr(ctx, response.FromDomainErr(err))
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// HandleGetLayout godoc
// @Summary      Get the floor plan of an event
// @Description  Opens the planning session on first use and returns every table with its warnings.
// @Tags         seating
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  service.Snapshot
// @Failure      404      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /events/{eventID}/layout [get]
func (h *SeatingHandler) HandleGetLayout(ctx *gin.Context) {
	eventID, _, ok := pathParams(ctx)
	if !ok {
		return
	}

	snap, err := h.svc.Snapshot(ctx.Request.Context(), eventID)
	h.render(ctx, snap, err)
}

// HandleReloadLayout godoc
// @Summary      Reload the floor plan from storage
// @Tags         seating
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  service.Snapshot
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /events/{eventID}/layout/reload [post]
func (h *SeatingHandler) HandleReloadLayout(ctx *gin.Context) {
	eventID, _, ok := pathParams(ctx)
	if !ok {
		return
	}

	snap, err := h.svc.Reload(ctx.Request.Context(), eventID)
	h.render(ctx, snap, err)
}

// HandleSaveLayout godoc
// @Summary      Save the whole distribution
// @Description  Rejected with 400 while any used table is outside its capacity range.
// @Tags         seating
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  service.Snapshot
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /events/{eventID}/layout/save [post]
func (h *SeatingHandler) HandleSaveLayout(ctx *gin.Context) {
	eventID, _, ok := pathParams(ctx)
	if !ok {
		return
	}

	snap, err := h.svc.SaveDistribution(ctx.Request.Context(), eventID)
	h.render(ctx, snap, err)
}

// HandleSelectTable godoc
// @Summary      Open the group editor of a table
// @Tags         seating
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Param        tableID  path      string  true  "Table ID"
// @Success      200      {object}  service.Snapshot
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/tables/{tableID}/select [post]
func (h *SeatingHandler) HandleSelectTable(ctx *gin.Context) {
	eventID, tableID, ok := pathParams(ctx)
	if !ok {
		return
	}

	snap, err := h.svc.SelectTable(ctx.Request.Context(), eventID, tableID)
	h.render(ctx, snap, err)
}

// HandleAddGroup godoc
// @Summary      Add a guest group to the table being edited
// @Tags         seating
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                    true  "Event ID"
// @Param        tableID  path      string                    true  "Table ID"
// @Param        request  body      request.AddGroupRequest   true  "request body"
// @Success      200      {object}  service.Snapshot
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/tables/{tableID}/groups [post]
func (h *SeatingHandler) HandleAddGroup(ctx *gin.Context) {
	eventID, tableID, ok := pathParams(ctx)
	if !ok {
		return
	}

	var req request.AddGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	snap, err := h.svc.AddGroup(ctx.Request.Context(), eventID, tableID, req.ToDomain())
	h.render(ctx, snap, err)
}

// HandleRemoveGroup godoc
// @Summary      Remove a guest group from the table being edited
// @Tags         seating
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Param        tableID  path      string  true  "Table ID"
// @Param        groupID  path      int     true  "Group ID"
// @Success      200      {object}  service.Snapshot
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/tables/{tableID}/groups/{groupID} [delete]
func (h *SeatingHandler) HandleRemoveGroup(ctx *gin.Context) {
	eventID, tableID, ok := pathParams(ctx)
	if !ok {
		return
	}

	groupID, err := strconv.ParseUint(ctx.Param("groupID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid group ID")))
		return
	}

	snap, err := h.svc.RemoveGroup(ctx.Request.Context(), eventID, tableID, uint(groupID))
	h.render(ctx, snap, err)
}

// HandleCommitTable godoc
// @Summary      Persist the groups of the table being edited
// @Description  The table keeps its name, takes table_name when given and free, or gets the lowest free M<n>.
// @Tags         seating
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                      true   "Event ID"
// @Param        tableID  path      string                      true   "Table ID"
// @Param        request  body      request.CommitTableRequest  false  "request body"
// @Success      200      {object}  service.Snapshot
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /events/{eventID}/tables/{tableID}/commit [post]
func (h *SeatingHandler) HandleCommitTable(ctx *gin.Context) {
	eventID, tableID, ok := pathParams(ctx)
	if !ok {
		return
	}

	var req request.CommitTableRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	snap, err := h.svc.CommitTable(ctx.Request.Context(), eventID, tableID, strings.TrimSpace(req.TableName))
	h.render(ctx, snap, err)
}

// HandleCancelEdit godoc
// @Summary      Discard the group editor of a table
// @Tags         seating
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Param        tableID  path      string  true  "Table ID"
// @Success      200      {object}  service.Snapshot
// @Router       /events/{eventID}/tables/{tableID}/cancel [post]
func (h *SeatingHandler) HandleCancelEdit(ctx *gin.Context) {
	eventID, tableID, ok := pathParams(ctx)
	if !ok {
		return
	}

	snap, err := h.svc.CancelEdit(ctx.Request.Context(), eventID, tableID)
	h.render(ctx, snap, err)
}

// HandleUpdateTable godoc
// @Summary      Replace the whole assignment of a table
// @Description  Counts must equal the sums over guest_groups. An empty list vacates the table.
// @Tags         seating
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                      true  "Event ID"
// @Param        tableID  path      string                      true  "Table ID"
// @Param        request  body      request.UpdateTableRequest  true  "request body"
// @Success      200      {object}  service.Snapshot
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /events/{eventID}/tables/{tableID} [put]
func (h *SeatingHandler) HandleUpdateTable(ctx *gin.Context) {
	eventID, tableID, ok := pathParams(ctx)
	if !ok {
		return
	}

	var req request.UpdateTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	snap, err := h.svc.UpdateTable(ctx.Request.Context(), eventID, tableID, req.Groups(),
		req.NumAdults, req.NumChildren, req.NumBabies, strings.TrimSpace(req.TableName))
	h.render(ctx, snap, err)
}

// HandleMoveTable godoc
// @Summary      Move a table on the floor plan
// @Tags         seating
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                    true  "Event ID"
// @Param        tableID  path      string                    true  "Table ID"
// @Param        request  body      request.MoveTableRequest  true  "request body"
// @Success      200      {object}  service.Snapshot
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/tables/{tableID}/position [patch]
func (h *SeatingHandler) HandleMoveTable(ctx *gin.Context) {
	eventID, tableID, ok := pathParams(ctx)
	if !ok {
		return
	}

	var req request.MoveTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	snap, err := h.svc.MoveTable(ctx.Request.Context(), eventID, tableID, domain.Position{X: *req.X, Y: *req.Y})
	h.render(ctx, snap, err)
}

// HandleUpdateDecoration godoc
// @Summary      Set the decoration of every assignable table
// @Tags         decoration
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                     true  "Event ID"
// @Param        request  body      request.DecorationRequest  true  "request body"
// @Success      200      {object}  service.Snapshot
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/decoration [put]
func (h *SeatingHandler) HandleUpdateDecoration(ctx *gin.Context) {
	eventID, _, ok := pathParams(ctx)
	if !ok {
		return
	}

	var req request.DecorationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	snap, err := h.svc.UpdateDecoration(ctx.Request.Context(), eventID, req.ToDomain())
	h.render(ctx, snap, err)
}

// HandleSaveDecoration godoc
// @Summary      Persist the current decoration
// @Tags         decoration
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  service.Snapshot
// @Failure      409      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /events/{eventID}/decoration/save [post]
func (h *SeatingHandler) HandleSaveDecoration(ctx *gin.Context) {
	eventID, _, ok := pathParams(ctx)
	if !ok {
		return
	}

	snap, err := h.svc.SaveDecoration(ctx.Request.Context(), eventID)
	h.render(ctx, snap, err)
}
