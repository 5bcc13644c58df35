package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/event"
)

// NoWinner is reported by WinnerIndex while the game is running.
const NoWinner = -1

type Game struct {
	hands    []*Sequence
	deck     *Deck
	players  *Cycler
	policy   Policy
	events   *event.Emitters
	gameOver bool
	winner   int
}

type Option func(*options)

type options struct {
	seed   int64
	policy Policy
}

func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func WithPolicy(policy Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// New builds a game for numPlayers seats. Call Initialize before playing.
func New(numPlayers int, opts ...Option) (*Game, error) {
	if numPlayers < consts.MinPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	o := options{seed: consts.DefaultSeed, policy: PriorityPolicy{}}
	for _, opt := range opts {
		opt(&o)
	}

	hands := make([]*Sequence, numPlayers)
	for i := range hands {
		hands[i] = NewSequence()
	}
	events := event.NewEmitters()
	return &Game{
		hands:   hands,
		deck:    NewDeck(NewShuffler(o.seed), events),
		players: NewCycler(numPlayers),
		policy:  o.policy,
		events:  events,
		winner:  NoWinner,
	}, nil
}

// Initialize resets every pile and deals a new game. The shuffler is not reseeded.
func (g *Game) Initialize() {
	g.players.Reset()
	g.gameOver = false
	g.winner = NoWinner
	g.deck.Deal(g.hands)
}

// PlayTurn lets the current player play or draw, then moves the turn on.
// It does nothing once the game is over.
func (g *Game) PlayTurn() {
	if g.gameOver {
		return
	}
	if g.deck.DiscardSize() == 0 {
		g.players.Next()
		return
	}

	player := g.players.Current()
	hand := g.hands[player]
	top := g.deck.Top()

	if selected, ok := g.policy.Select(hand, top); ok {
		hand.RemoveFirst(selected)
		g.deck.Discard(selected)
		g.events.CardPlayed.Emit(event.CardPlayedPayload{PlayerIndex: player, Card: selected})
		if hand.Empty() {
			g.gameOver = true
			g.winner = player
			g.events.GameWon.Emit(event.GameWonPayload{PlayerIndex: player})
			return
		}
		g.performCardActions(selected)
		return
	}

	drawn := g.deck.Draw()
	if drawn.IsInvalid() {
		g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerIndex: player})
		g.players.Next()
		return
	}
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerIndex: player, Amount: 1})

	if Playable(drawn, top) {
		g.deck.Discard(drawn)
		g.events.CardPlayed.Emit(event.CardPlayedPayload{PlayerIndex: player, Card: drawn, Drawn: true})
		g.performCardActions(drawn)
		return
	}

	hand.PushBack(drawn)
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerIndex: player, DrewCard: true})
	g.players.Next()
}

// performCardActions applies the effects of the card the current player just put
// down and hands the turn to whoever plays next.
func (g *Game) performCardActions(playedCard card.Card) {
	steps := 1
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			g.drawCards(g.players.Peek(1), cardAction.Amount())
		case action.ReverseTurnsAction:
			// with two players a Reverse only skips the opponent
			if len(g.hands) == 2 {
				steps++
			} else {
				g.players.Reverse()
				g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
					PlayerIndex: g.players.Current(),
					Clockwise:   g.players.Direction() == Clockwise,
				})
			}
		case action.SkipTurnAction:
			steps++
		}
	}
	g.players.Advance(steps)
}

// drawCards deals up to amount cards to victim, one at a time, stopping early when
// the piles run dry.
func (g *Game) drawCards(victim int, amount int) {
	drawnCount := 0
	for ; drawnCount < amount; drawnCount++ {
		drawn := g.deck.Draw()
		if drawn.IsInvalid() {
			break
		}
		g.hands[victim].PushBack(drawn)
	}
	if drawnCount > 0 {
		g.events.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerIndex: victim, Amount: drawnCount})
	}
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) Winner() (int, bool) {
	return g.winner, g.gameOver
}

// WinnerIndex is NoWinner until the game is over.
func (g *Game) WinnerIndex() int {
	return g.winner
}

func (g *Game) State() State {
	handCounts := make([]int, len(g.hands))
	for player, hand := range g.hands {
		handCounts[player] = hand.Size()
	}
	return State{
		CurrentPlayer:  g.players.Current(),
		Direction:      g.players.Direction(),
		LastPlayedCard: g.deck.Top(),
		HandCounts:     handCounts,
		DeckSize:       g.deck.Size(),
		DiscardSize:    g.deck.DiscardSize(),
		GameOver:       g.gameOver,
		Winner:         g.winner,
	}
}

func (g *Game) Events() *event.Emitters {
	return g.events
}

func (g *Game) NumPlayers() int {
	return len(g.hands)
}

func (g *Game) Current() int {
	return g.players.Current()
}

func (g *Game) Direction() Direction {
	return g.players.Direction()
}

func (g *Game) Top() card.Card {
	return g.deck.Top()
}

// Hand returns a copy of the player's cards.
func (g *Game) Hand(player int) []card.Card {
	return g.hands[player].Cards()
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) DiscardSize() int {
	return g.deck.DiscardSize()
}

// TotalCards counts every card in the deck, the discard pile and all hands.
func (g *Game) TotalCards() int {
	total := g.deck.Size() + g.deck.DiscardSize()
	for _, hand := range g.hands {
		total += hand.Size()
	}
	return total
}
