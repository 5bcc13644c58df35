package consts

const (
	HandSize      = 7
	DeckSize      = 100
	DrawTwoAmount = 2

	// DefaultSeed seeds games created without WithSeed.
	DefaultSeed int64 = 1234

	MinPlayers = 1
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsGamePlayersInvalid = NewErr(1, true, "Game players invalid. ")
	ErrorsGameNotFound       = NewErr(1, false, "Game not found. ")
	ErrorsConfigInvalid      = NewErr(1, true, "Config invalid. ")
)
