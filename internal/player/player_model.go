// player/model.go
package player

import (
	"github.com/DhavalSuthar-24/pickup/pkg/apperror"
)

const (
	TitleSuccess = "Success"
	TitleError   = "Error"

	MsgPlayerAdded   = "Player added successfully."
	MsgAddFailed     = "An error occurred while adding the participant."
	MsgNameRequired  = "participant name required"
	MsgGroupRequired = "group name required"
)

// Notification is what the players screen shows after an add attempt.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// NotificationFor converts the outcome of AddPlayer into a user-facing notification.
// Validation and application errors keep their own message; anything else
// gets the generic failure text.
func NotificationFor(err error) Notification {
	if err == nil {
		return Notification{Title: TitleSuccess, Message: MsgPlayerAdded, Success: true}
	}
	if vErr, ok := apperror.AsValidation(err); ok {
		return Notification{Title: TitleError, Message: vErr.Message}
	}
	if appErr, ok := apperror.AsAppError(err); ok {
		return Notification{Title: TitleError, Message: appErr.Message}
	}
	return Notification{Title: TitleError, Message: MsgAddFailed}
}

// AddPlayerRequest is the body of POST /groups/:group/players.
type AddPlayerRequest struct {
	Name string `json:"name" binding:"max=100"`
}

// AddPlayerResponse carries the notification and, on success, the stored player.
type AddPlayerResponse struct {
	Notification Notification `json:"notification"`
	Player       *PlayerView  `json:"player,omitempty"`
}

// PlayerView is a stored player as returned by the API.
type PlayerView struct {
	Name  string `json:"name"`
	Team  string `json:"team"`
	Group string `json:"group"`
}
