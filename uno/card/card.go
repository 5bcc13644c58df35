package card

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Skip:
		return "Skip"
	case Reverse:
		return "Reverse"
	case DrawTwo:
		return "Draw Two"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// noNumber is carried by action cards and the sentinel.
const noNumber = -1

// Card is an immutable color/kind/number triple. Cards compare with ==.
type Card struct {
	color  color.Color
	kind   Kind
	number int
}

// Invalid is returned when no real card is available. It is never dealt or played.
var Invalid = Card{color: color.None, kind: Number, number: noNumber}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{color: cardColor, kind: Number, number: number}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{color: cardColor, kind: Skip, number: noNumber}
}

func NewReverseCard(cardColor color.Color) Card {
	return Card{color: cardColor, kind: Reverse, number: noNumber}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{color: cardColor, kind: DrawTwo, number: noNumber}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Kind() Kind {
	return c.kind
}

// Number is -1 for anything but a Number card.
func (c Card) Number() int {
	return c.number
}

func (c Card) IsInvalid() bool {
	return c.color == color.None
}

func (c Card) IsAction() bool {
	return c.kind != Number
}

func (c Card) Equal(other Card) bool {
	return c == other
}

// Matches reports whether c may be played on other, or other on c.
func (c Card) Matches(other Card) bool {
	if c.IsInvalid() || other.IsInvalid() {
		return false
	}
	return c.color == other.color ||
		(c.kind == other.kind && c.kind != Number) ||
		(c.kind == Number && other.kind == Number && c.number == other.number)
}

func (c Card) Actions() []action.Action {
	switch c.kind {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(consts.DrawTwoAmount),
			action.NewSkipTurnAction(),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) value() string {
	if c.kind == Number {
		return strconv.Itoa(c.number)
	}
	return c.kind.String()
}

func (c Card) String() string {
	return c.color.Name() + " " + c.value()
}

// Paint renders the card for a terminal.
func (c Card) Paint() string {
	return c.color.Paintf("[%s]", c.String())
}
