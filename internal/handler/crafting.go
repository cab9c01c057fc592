package handler

import (
	"net/http"

	"github.com/rsnyderaustin/poe-craftsim/internal/crafting"
	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/logger"
	"github.com/rsnyderaustin/poe-craftsim/internal/metrics"
	"github.com/rsnyderaustin/poe-craftsim/internal/simulation"
	"github.com/rsnyderaustin/poe-craftsim/internal/utils"
)

// EnumerateRequest asks for every outcome of one action on one item
type EnumerateRequest struct {
	Item   *domain.ItemState `json:"item" validate:"required"`
	Action domain.ActionID   `json:"action" validate:"required,action"`
	Seed   *uint64           `json:"seed,omitempty"`
}

// EnumerateResponse carries the outcome set and the seed used to roll
// modifier values inside it
type EnumerateResponse struct {
	Action   domain.ActionID   `json:"action"`
	Seed     uint64            `json:"seed"`
	Outcomes domain.OutcomeSet `json:"outcomes"`
}

// SimulateRequest applies one sampled outcome of an action to an item
type SimulateRequest struct {
	Item   *domain.ItemState `json:"item" validate:"required"`
	Action domain.ActionID   `json:"action" validate:"required,action"`
	Seed   *uint64           `json:"seed,omitempty"`
}

// SimulateResponse is the sampled result plus the seed that reproduces it
type SimulateResponse struct {
	Seed uint64 `json:"seed"`
	*crafting.Result
}

// BatchRequest runs an action sequence over many episodes
type BatchRequest struct {
	Item      *domain.ItemState `json:"item" validate:"required"`
	Actions   []domain.ActionID `json:"actions" validate:"required,min=1,max=256,dive,action"`
	Episodes  int               `json:"episodes" validate:"required,min=1"`
	Seed      *uint64           `json:"seed,omitempty"`
	KeepItems bool              `json:"keep_items,omitempty"`
}

// HandleListActions returns the action registry in its stable order
// @Summary List crafting actions
// @Tags crafting
// @Produce json
// @Success 200 {array} crafting.ActionInfo
// @Router /api/v1/actions [get]
func HandleListActions(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Actions())
	}
}

// HandleEnumerate returns the full outcome distribution of an action
// @Summary Enumerate action outcomes
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body EnumerateRequest true "Item and action"
// @Success 200 {object} EnumerateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/craft/enumerate [post]
func HandleEnumerate(svc crafting.Service, seeds *SeedSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EnumerateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Enumerate"); err != nil {
			return
		}
		if !validItem(w, req.Item) {
			return
		}

		seed := seeds.Resolve(req.Seed)
		log := logger.ForCraft(r.Context(), string(req.Action), seed)
		log.Info(LogMsgEnumerateRequest)

		set, err := svc.Enumerate(req.Item, req.Action, utils.NewRNG(seed))
		if err != nil {
			log.Error(ErrMsgEnumerateFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, EnumerateResponse{Action: req.Action, Seed: seed, Outcomes: set})
	}
}

// HandleSimulate samples and applies one outcome of an action
// @Summary Simulate one action
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body SimulateRequest true "Item, action and optional seed"
// @Success 200 {object} SimulateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/craft/simulate [post]
func HandleSimulate(svc crafting.Service, seeds *SeedSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SimulateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Simulate"); err != nil {
			return
		}
		if !validItem(w, req.Item) {
			return
		}

		seed := seeds.Resolve(req.Seed)
		log := logger.ForCraft(r.Context(), string(req.Action), seed)
		log.Info(LogMsgSimulateRequest)

		res, err := svc.Simulate(req.Item, req.Action, utils.NewRNG(seed))
		if err != nil {
			log.Error(ErrMsgSimulateFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		metrics.RecordAction(string(req.Action), res.NoOp, len(res.Outcomes))
		log.Info(LogMsgActionApplied, "noop", res.NoOp, "outcomes", len(res.Outcomes))
		respondJSON(w, http.StatusOK, SimulateResponse{Seed: seed, Result: res})
	}
}

// HandleBatch runs a batch simulation and returns its aggregate report
// @Summary Batch simulation
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Item, action sequence and episode count"
// @Success 200 {object} simulation.Report
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/craft/batch [post]
func HandleBatch(runner *simulation.Runner, seeds *SeedSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BatchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Batch"); err != nil {
			return
		}
		if !validItem(w, req.Item) {
			return
		}

		plan := simulation.Plan{
			Item:      req.Item,
			Actions:   req.Actions,
			Episodes:  req.Episodes,
			Seed:      seeds.Resolve(req.Seed),
			KeepItems: req.KeepItems,
		}
		log.Info(LogMsgBatchRequest, "episodes", plan.Episodes, "actions", len(plan.Actions), "seed", plan.Seed)

		report, err := runner.Run(r.Context(), plan)
		if err != nil {
			log.Error(ErrMsgBatchFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// validItem rejects request items that break an item invariant before they
// reach the engine, where the same failure would mean an engine bug.
func validItem(w http.ResponseWriter, item *domain.ItemState) bool {
	if err := item.Validate(); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidItemError,
			Fields: map[string]string{"item": err.Error()},
		})
		return false
	}
	return true
}
