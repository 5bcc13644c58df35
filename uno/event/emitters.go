package event

// Emitters groups the emitters of a single game. Listeners added to one game never
// hear another game's events.
type Emitters struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	CardsDrawn        *cardsDrawnEmitter
	PlayerPassed      *playerPassedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	DeckReshuffled    *deckReshuffledEmitter
	GameWon           *gameWonEmitter
}

func NewEmitters() *Emitters {
	return &Emitters{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		DeckReshuffled:    &deckReshuffledEmitter{},
		GameWon:           &gameWonEmitter{},
	}
}

// Listener hears every event of a game.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	CardsDrawnListener
	PlayerPassedListener
	TurnOrderReversedListener
	DeckReshuffledListener
	GameWonListener
}

func (e *Emitters) AddListener(listener Listener) {
	e.FirstCardPlayed.AddListener(listener)
	e.CardPlayed.AddListener(listener)
	e.CardsDrawn.AddListener(listener)
	e.PlayerPassed.AddListener(listener)
	e.TurnOrderReversed.AddListener(listener)
	e.DeckReshuffled.AddListener(listener)
	e.GameWon.AddListener(listener)
}
