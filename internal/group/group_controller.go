package group

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pickup/internal/team"
	"github.com/DhavalSuthar-24/pickup/pkg/responses"
	"github.com/DhavalSuthar-24/pickup/pkg/validator"
)

// PlayersRoute is where clients go after creating a group.
const PlayersRoute = "players"

// GroupController handles group-related HTTP requests
type GroupController struct {
	repo     GroupRepository
	selector *team.Selector
}

// NewGroupController creates a new group controller
func NewGroupController(repo GroupRepository, selector *team.Selector) *GroupController {
	return &GroupController{
		repo:     repo,
		selector: selector,
	}
}

type CreateGroupRequest struct {
	Group string `json:"group" binding:"required,max=100"`
}

// CreateGroupResponse names the created group and the screen to open next.
type CreateGroupResponse struct {
	Group  string            `json:"group"`
	Route  string            `json:"route"`
	Params map[string]string `json:"params"`
}

// CreateGroup godoc
// @Summary Create a new group
// @Description Registers a group and returns the players screen as the next route.
// @Tags Groups
// @Accept json
// @Produce json
// @Param request body CreateGroupRequest true "Group name"
// @Success 201 {object} responses.SuccessResponse{data=CreateGroupResponse} "Group created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 409 {object} responses.ErrorResponse "Group already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /groups [post]
func (gc *GroupController) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	name := strings.TrimSpace(req.Group)
	if err := gc.repo.CreateGroup(c.Request.Context(), name); err != nil {
		responses.SendFromError(c, err, "Could not create group")
		return
	}
	// New groups start on the first team.
	gc.selector.Forget(name)

	responses.SendSuccess(c, http.StatusCreated, "Group created successfully", CreateGroupResponse{
		Group:  name,
		Route:  PlayersRoute,
		Params: map[string]string{"group": name},
	})
}

// GetAllGroups godoc
// @Summary Get all groups
// @Description Lists group names in creation order.
// @Tags Groups
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]string} "List of groups"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /groups [get]
func (gc *GroupController) GetAllGroups(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	groups, err := gc.repo.GetAllGroups(c.Request.Context())
	if err != nil {
		responses.SendFromError(c, err, "Failed to retrieve groups")
		return
	}

	start := min((page-1)*limit, len(groups))
	end := min(start+limit, len(groups))
	responses.SendPaginated(c, http.StatusOK, "Groups retrieved successfully", groups[start:end], int64(len(groups)), page, limit)
}

// GetGroup godoc
// @Summary Get a group
// @Description Returns a group with its players.
// @Tags Groups
// @Produce json
// @Param group path string true "Group name"
// @Success 200 {object} responses.SuccessResponse{data=Group} "Group details"
// @Failure 404 {object} responses.ErrorResponse "Group not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /groups/{group} [get]
func (gc *GroupController) GetGroup(c *gin.Context) {
	name := strings.TrimSpace(c.Param("group"))

	groups, err := gc.repo.GetAllGroups(c.Request.Context())
	if err != nil {
		responses.SendFromError(c, err, "Failed to retrieve group")
		return
	}
	if !containsGroup(groups, name) {
		responses.SendError(c, http.StatusNotFound, msgGroupNotFound)
		return
	}

	players, err := gc.repo.GetPlayersByGroup(c.Request.Context(), name)
	if err != nil {
		responses.SendFromError(c, err, "Failed to retrieve group")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Group retrieved successfully", Group{Name: name, Players: players})
}

// RemoveGroup godoc
// @Summary Remove a group
// @Description Removes a group together with its players and team selection.
// @Tags Groups
// @Produce json
// @Param group path string true "Group name"
// @Success 200 {object} responses.SuccessResponse "Group removed successfully"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Group not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /groups/{group} [delete]
func (gc *GroupController) RemoveGroup(c *gin.Context) {
	name := strings.TrimSpace(c.Param("group"))

	if err := gc.repo.RemoveGroupByName(c.Request.Context(), name); err != nil {
		responses.SendFromError(c, err, "Could not remove group")
		return
	}
	gc.selector.Forget(name)
	responses.SendSuccess(c, http.StatusOK, "Group removed successfully", nil)
}
