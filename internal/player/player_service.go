package player

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pickup/internal/group"
	"github.com/DhavalSuthar-24/pickup/internal/team"
	"github.com/DhavalSuthar-24/pickup/pkg/apperror"
)

// GroupStore is the slice of the group repository the entry flow writes to.
type GroupStore interface {
	AddPlayerByGroup(ctx context.Context, newPlayer group.Player, groupName string) error
}

// Service is the player entry flow: validate, resolve the active team, persist.
type Service struct {
	store GroupStore
	log   *zap.Logger
}

func NewService(store GroupStore, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// AddPlayer stores name under groupName on the active team of teams and
// returns the stored player.
//
// Errors are one of *apperror.ValidationError, *apperror.InvariantViolation,
// *apperror.AppError (message is user-displayable) or *apperror.UnknownError.
func (s *Service) AddPlayer(ctx context.Context, name string, teams []team.Team, groupName string) (group.Player, error) {
	log := s.log.With(zap.String("op", "player.AddPlayer"), zap.String("group", groupName))

	name = strings.TrimSpace(name)
	if name == "" {
		log.Debug("rejected empty participant name")
		return group.Player{}, apperror.Validation("name", MsgNameRequired)
	}
	if strings.TrimSpace(groupName) == "" {
		return group.Player{}, apperror.Validation("group", MsgGroupRequired)
	}

	active, err := team.ActiveTeam(teams)
	if err != nil {
		log.Error("team selection has no active team", zap.Strings("teams", team.Names(teams)), zap.Error(err))
		return group.Player{}, err
	}

	newPlayer := group.Player{Name: name, Team: active.Name}
	if err := s.store.AddPlayerByGroup(ctx, newPlayer, groupName); err != nil {
		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Code == apperror.CodeStorage {
				log.Error("failed to store player", zap.Error(err))
			} else {
				log.Info("player rejected", zap.String("reason", appErr.Message))
			}
			return group.Player{}, appErr
		}
		if vErr, ok := apperror.AsValidation(err); ok {
			return group.Player{}, vErr
		}

		log.Error("unexpected error adding player", zap.Error(err))
		return group.Player{}, &apperror.UnknownError{Err: err}
	}

	log.Info("player added", zap.String("player", newPlayer.Name), zap.String("team", newPlayer.Team))
	return newPlayer, nil
}
