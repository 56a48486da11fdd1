package session

// Command is one selectable menu action.
type Command int

const (
	CmdUnknown Command = iota
	CmdRefreshMarket // update prices, then show the market
	CmdViewMarket    // show the market without updating
	CmdBuy
	CmdSell
	CmdViewPortfolio
	CmdViewTransactions
	CmdSave
	CmdLoad
	CmdTick // small random movement, no market display
	CmdExit
)

// ParseCommand maps a trimmed menu token to its command. Anything
// unrecognized maps to CmdUnknown, which the loop treats as a no-op.
func ParseCommand(token string) Command {
	switch token {
	case "1":
		return CmdRefreshMarket
	case "2":
		return CmdViewMarket
	case "3":
		return CmdBuy
	case "4":
		return CmdSell
	case "5":
		return CmdViewPortfolio
	case "6":
		return CmdViewTransactions
	case "7":
		return CmdSave
	case "8":
		return CmdLoad
	case "9":
		return CmdTick
	case "0":
		return CmdExit
	default:
		return CmdUnknown
	}
}
