package battle

// startBattleMsg asks the screen to start its battle from the update loop.
type startBattleMsg struct{}
