package player

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pickup/internal/group"
	"github.com/DhavalSuthar-24/pickup/internal/team"
	"github.com/DhavalSuthar-24/pickup/pkg/responses"
	"github.com/DhavalSuthar-24/pickup/pkg/validator"
)

// PlayerController backs the players screen of a group.
type PlayerController struct {
	svc      *Service
	repo     group.GroupRepository
	selector *team.Selector
}

func NewPlayerController(svc *Service, repo group.GroupRepository, selector *team.Selector) *PlayerController {
	return &PlayerController{
		svc:      svc,
		repo:     repo,
		selector: selector,
	}
}

// AddPlayer godoc
// @Summary Add a player to the active team
// @Description Stores the participant on the group's currently active team and returns the notification to show.
// @Tags Players
// @Accept json
// @Produce json
// @Param group path string true "Group name"
// @Param request body AddPlayerRequest true "Participant"
// @Success 201 {object} responses.SuccessResponse{data=AddPlayerResponse} "Player added"
// @Failure 400 {object} responses.ErrorResponse{data=AddPlayerResponse} "Participant name required"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 409 {object} responses.ErrorResponse{data=AddPlayerResponse} "Player already in group"
// @Failure 500 {object} responses.ErrorResponse{data=AddPlayerResponse} "Could not add player"
// @Security ApiKeyAuth
// @Router /groups/{group}/players [post]
func (pc *PlayerController) AddPlayer(c *gin.Context) {
	groupName := strings.TrimSpace(c.Param("group"))

	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	p, err := pc.svc.AddPlayer(c.Request.Context(), req.Name, pc.selector.Teams(groupName), groupName)
	notification := NotificationFor(err)
	if err != nil {
		_ = c.Error(err)
		responses.SendErrorWithData(c, responses.StatusFromError(err), notification.Message, AddPlayerResponse{Notification: notification})
		return
	}

	responses.SendSuccess(c, http.StatusCreated, notification.Message, AddPlayerResponse{
		Notification: notification,
		Player:       &PlayerView{Name: p.Name, Team: p.Team, Group: groupName},
	})
}

// GetPlayers godoc
// @Summary List players of a group
// @Description Lists players in the order they were added, optionally only those of one team.
// @Tags Players
// @Produce json
// @Param group path string true "Group name"
// @Param team query string false "Filter by team name"
// @Success 200 {object} responses.SuccessResponse{data=[]PlayerView} "List of players"
// @Failure 400 {object} responses.ErrorResponse "Invalid group"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /groups/{group}/players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	groupName := strings.TrimSpace(c.Param("group"))

	var (
		players []group.Player
		err     error
	)
	if teamName := c.Query("team"); teamName != "" {
		players, err = pc.repo.GetPlayersByGroupAndTeam(c.Request.Context(), groupName, teamName)
	} else {
		players, err = pc.repo.GetPlayersByGroup(c.Request.Context(), groupName)
	}
	if err != nil {
		responses.SendFromError(c, err, "Failed to retrieve players")
		return
	}

	views := make([]PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, PlayerView{Name: p.Name, Team: p.Team, Group: groupName})
	}
	responses.SendSuccess(c, http.StatusOK, "Players retrieved successfully", views)
}

// RemovePlayer godoc
// @Summary Remove a player from a group
// @Tags Players
// @Produce json
// @Param group path string true "Group name"
// @Param player_name path string true "Player name"
// @Success 200 {object} responses.SuccessResponse "Player removed successfully"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /groups/{group}/players/{player_name} [delete]
func (pc *PlayerController) RemovePlayer(c *gin.Context) {
	groupName := strings.TrimSpace(c.Param("group"))

	if err := pc.repo.RemovePlayerByGroup(c.Request.Context(), c.Param("player_name"), groupName); err != nil {
		responses.SendFromError(c, err, "Could not remove player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player removed successfully", nil)
}
