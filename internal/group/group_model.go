// group/model.go
package group

// Player is a participant stored under a group, assigned to one team.
type Player struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// Group is a named collection of players for one pickup session.
type Group struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Storage keys, mirroring the collections the mobile app kept on device.
const (
	GroupCollection  = "@pickup:groups"
	PlayerCollection = "@pickup:players"
)

// PlayersKey is the storage key holding the players of group.
func PlayersKey(group string) string {
	return PlayerCollection + "-" + group
}
