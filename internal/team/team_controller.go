package team

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pickup/pkg/responses"
	"github.com/DhavalSuthar-24/pickup/pkg/validator"
)

const msgGroupNotFound = "group not found"

// GroupLookup lists the registered groups. Selections are only kept for those.
type GroupLookup interface {
	GetAllGroups(ctx context.Context) ([]string, error)
}

// TeamController exposes the team selection of a group.
type TeamController struct {
	selector *Selector
	groups   GroupLookup
}

// NewTeamController creates a new team controller
func NewTeamController(selector *Selector, groups GroupLookup) *TeamController {
	return &TeamController{
		selector: selector,
		groups:   groups,
	}
}

// SetActiveTeamRequest selects a team by its position in the list.
type SetActiveTeamRequest struct {
	Index *int `json:"index" binding:"required"`
}

// SelectionView is a group's team snapshot.
type SelectionView struct {
	Group  string `json:"group"`
	Teams  []Team `json:"teams"`
	Active string `json:"active"`
}

func newSelectionView(group string, teams []Team) SelectionView {
	view := SelectionView{Group: group, Teams: teams}
	if active, err := ActiveTeam(teams); err == nil {
		view.Active = active.Name
	}
	return view
}

func groupParam(c *gin.Context) (string, bool) {
	group := strings.TrimSpace(c.Param("group"))
	if group == "" {
		responses.BadRequest(c, "group name required")
		return "", false
	}
	return group, true
}

// GetTeams godoc
// @Summary Get the team selection of a group
// @Description Returns the teams of a group with exactly one marked active. Groups without a selection start on the first team.
// @Tags Teams
// @Produce json
// @Param group path string true "Group name"
// @Success 200 {object} responses.SuccessResponse{data=SelectionView} "Team selection"
// @Failure 400 {object} responses.ErrorResponse "Invalid group"
// @Router /groups/{group}/teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
	group, ok := groupParam(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", newSelectionView(group, tc.selector.Teams(group)))
}

// SetActiveTeam godoc
// @Summary Select the active team
// @Description Activates the team at index and deactivates the others. Selecting the active team again is a no-op.
// @Tags Teams
// @Accept json
// @Produce json
// @Param group path string true "Group name"
// @Param request body SetActiveTeamRequest true "Team index"
// @Success 200 {object} responses.SuccessResponse{data=SelectionView} "Team selected"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or index out of range"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Group not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /groups/{group}/teams/active [put]
func (tc *TeamController) SetActiveTeam(c *gin.Context) {
	group, ok := groupParam(c)
	if !ok {
		return
	}

	var req SetActiveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	registered, err := tc.groups.GetAllGroups(c.Request.Context())
	if err != nil {
		responses.SendFromError(c, err, "Could not select team")
		return
	}
	if !contains(registered, group) {
		responses.SendError(c, http.StatusNotFound, msgGroupNotFound)
		return
	}

	teams, err := tc.selector.SetActive(group, *req.Index)
	if err != nil {
		responses.SendFromError(c, err, "Could not select team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team selected", newSelectionView(group, teams))
}

func contains(groups []string, name string) bool {
	for _, g := range groups {
		if g == name {
			return true
		}
	}
	return false
}
