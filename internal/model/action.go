package model

// ActionType identifies the kind of action submitted by the human player
type ActionType string

const (
	ActionTurn    ActionType = "turn"
	ActionGiveUp  ActionType = "give_up"
	ActionRestart ActionType = "restart"
)

// Action is one of TurnAction, GiveUpAction or RestartAction
type Action interface {
	Type() ActionType
}

// TurnAction removes Pebbles from the pile on behalf of the human
type TurnAction struct {
	Pebbles uint32
}

// GiveUpAction forfeits the current game
type GiveUpAction struct{}

// RestartAction discards the current game and starts a new one
type RestartAction struct {
	Config GameConfig
}

func (TurnAction) Type() ActionType    { return ActionTurn }
func (GiveUpAction) Type() ActionType  { return ActionGiveUp }
func (RestartAction) Type() ActionType { return ActionRestart }
