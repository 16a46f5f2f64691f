package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alexbanham/fantasyapp-sub005/internal/lineup"
)

// LineupHandler serves the lineup engine to trusted internal callers. It
// holds no state beyond a logger: every request carries its own roster and
// slot model, and the engine underneath is pure.
type LineupHandler struct {
	logger *logrus.Logger
}

// NewLineupHandler creates a new lineup handler.
func NewLineupHandler(log *logrus.Logger) *LineupHandler {
	return &LineupHandler{logger: log}
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// SlotModelRequest names a standard league format or spells the slots out
// inline. Format wins when both are present.
type SlotModelRequest struct {
	Format        string                  `json:"format,omitempty"`
	Slots         []SlotDefinitionRequest `json:"slots,omitempty"`
	BenchCapacity int                     `json:"bench_capacity"`
}

// SlotDefinitionRequest is one starting slot of an inline slot model.
type SlotDefinitionRequest struct {
	Label    string   `json:"label"`
	Eligible []string `json:"eligible_positions"`
}

// RosterPlayerRequest is one roster record in a lineup request.
type RosterPlayerRequest struct {
	PlayerID   string  `json:"player_id"`
	Position   string  `json:"position"`
	Points     float64 `json:"points"`
	RosterSlot string  `json:"roster_slot"`
}

// LineupRequest is the payload shared by the optimal, efficiency and
// bench-impact endpoints.
type LineupRequest struct {
	SlotModel SlotModelRequest      `json:"slot_model"`
	Roster    []RosterPlayerRequest `json:"roster"`
}

// LeagueRequest is the payload for a whole-league efficiency report.
type LeagueRequest struct {
	SlotModel SlotModelRequest `json:"slot_model"`
	Teams     []struct {
		TeamID string                `json:"team_id"`
		Roster []RosterPlayerRequest `json:"roster"`
	} `json:"teams"`
}

// OptimalLineup handles POST /api/v1/lineup/optimal.
func (h *LineupHandler) OptimalLineup(c *gin.Context) {
	req, model, log, ok := h.bindLineupRequest(c)
	if !ok {
		return
	}

	result, err := lineup.ComputeOptimalLineup(toRoster(req.Roster), model)
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	log.WithFields(logrus.Fields{
		"roster_size":     len(req.Roster),
		"total_points":    result.TotalPoints,
		"skipped_players": result.SkippedPlayers,
	}).Info("Computed optimal lineup")
	c.JSON(http.StatusOK, result)
}

// Efficiency handles POST /api/v1/lineup/efficiency.
func (h *LineupHandler) Efficiency(c *gin.Context) {
	req, model, log, ok := h.bindLineupRequest(c)
	if !ok {
		return
	}

	report, err := lineup.ComputeEfficiency(toRoster(req.Roster), model)
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	log.WithFields(logrus.Fields{
		"actual_points":  report.ActualPoints,
		"optimal_points": report.OptimalPoints,
		"efficiency":     report.Efficiency,
	}).Info("Computed lineup efficiency")
	c.JSON(http.StatusOK, report)
}

// BenchImpact handles POST /api/v1/lineup/bench-impact.
func (h *LineupHandler) BenchImpact(c *gin.Context) {
	req, model, log, ok := h.bindLineupRequest(c)
	if !ok {
		return
	}

	impacts, err := lineup.ComputeBenchImpact(toRoster(req.Roster), model)
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	log.WithField("impacts", len(impacts)).Info("Computed bench impact")
	c.JSON(http.StatusOK, gin.H{"impacts": impacts})
}

// LeagueEfficiency handles POST /api/v1/league/efficiency.
func (h *LineupHandler) LeagueEfficiency(c *gin.Context) {
	log := h.logger.WithField("request_id", uuid.New().String())

	var req LeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format",
			Code:    "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	model, err := resolveSlotModel(req.SlotModel)
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	teams := make([]lineup.TeamRoster, len(req.Teams))
	for i, t := range req.Teams {
		teams[i] = lineup.TeamRoster{TeamID: t.TeamID, Roster: toRoster(t.Roster)}
	}

	report, err := lineup.ComputeLeagueReport(c.Request.Context(), teams, model)
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	log.WithField("teams", len(teams)).Info("Computed league efficiency report")
	c.JSON(http.StatusOK, report)
}

func (h *LineupHandler) bindLineupRequest(c *gin.Context) (*LineupRequest, *lineup.SlotModel, *logrus.Entry, bool) {
	log := h.logger.WithField("request_id", uuid.New().String())

	var req LineupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format",
			Code:    "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return nil, nil, nil, false
	}

	model, err := resolveSlotModel(req.SlotModel)
	if err != nil {
		h.renderError(c, log, err)
		return nil, nil, nil, false
	}

	return &req, model, log, true
}

func (h *LineupHandler) renderError(c *gin.Context, log *logrus.Entry, err error) {
	if errors.Is(err, lineup.ErrInvalidSlotModel) {
		log.WithError(err).Warn("Rejected invalid slot model")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_SLOT_MODEL",
		})
		return
	}
	log.WithError(err).Error("Lineup computation failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Lineup computation failed",
		Code:  "COMPUTATION_ERROR",
	})
}

// resolveSlotModel builds the slot model from a named format or inline
// slots. Position strings in inline slots must parse against the closed
// position set.
func resolveSlotModel(req SlotModelRequest) (*lineup.SlotModel, error) {
	if req.Format != "" {
		return lineup.StandardSlotModel(req.Format)
	}

	slots := make([]lineup.SlotDefinition, len(req.Slots))
	for i, s := range req.Slots {
		eligible := make([]lineup.Position, 0, len(s.Eligible))
		for _, raw := range s.Eligible {
			pos, ok := lineup.ParsePosition(raw)
			if !ok {
				return nil, &lineup.SlotModelError{Reason: "slot " + s.Label + " lists unknown position " + raw}
			}
			eligible = append(eligible, pos)
		}
		slots[i] = lineup.SlotDefinition{Label: s.Label, Eligible: eligible}
	}
	return lineup.NewSlotModel(slots, req.BenchCapacity)
}

// toRoster converts request records to engine roster players. Positions are
// normalized but not rejected here: the engine benches unknown positions
// rather than failing a whole report over one bad record.
func toRoster(req []RosterPlayerRequest) []lineup.RosterPlayer {
	roster := make([]lineup.RosterPlayer, len(req))
	for i, r := range req {
		pos, ok := lineup.ParsePosition(r.Position)
		if !ok {
			pos = lineup.Position(r.Position)
		}
		roster[i] = lineup.RosterPlayer{
			PlayerID:   r.PlayerID,
			Position:   pos,
			Points:     r.Points,
			RosterSlot: r.RosterSlot,
		}
	}
	return roster
}
