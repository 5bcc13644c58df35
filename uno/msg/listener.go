package msg

import (
	"io"

	"github.com/ratel-online/uno/uno/event"
)

// Printer writes a message line for every game event it hears.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) write(line string) {
	_, _ = io.WriteString(p.out, line)
}

func (p *Printer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	p.write(Message.FirstCardPlayed(payload.Card))
}

func (p *Printer) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Drawn {
		p.write(Message.PlayerDrewAndPlayedCard(payload.PlayerIndex, payload.Card))
		return
	}
	p.write(Message.PlayerPlayedCard(payload.PlayerIndex, payload.Card))
}

func (p *Printer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	p.write(Message.PlayerDrewCards(payload.PlayerIndex, payload.Amount))
}

func (p *Printer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	p.write(Message.PlayerPassed(payload.PlayerIndex, payload.DrewCard))
}

func (p *Printer) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	p.write(Message.TurnOrderReversed())
}

func (p *Printer) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	p.write(Message.DeckReshuffled(payload.Amount))
}

func (p *Printer) OnGameWon(payload event.GameWonPayload) {
	p.write(Message.WinnerFound(payload.PlayerIndex))
}
