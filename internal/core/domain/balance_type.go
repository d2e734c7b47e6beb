package domain

// BalanceType is the closed vocabulary of balance type codes the converter understands.
// Other codes may appear in a parsed document; they never take part in balance resolution.
type BalanceType string

const (
	OpeningBooked    BalanceType = "OPBD"
	OpeningAvailable BalanceType = "OPAV"
	ClosingBooked    BalanceType = "CLBD"
	ClosingAvailable BalanceType = "CLAV"
)

// BalanceRole groups balance types by the statement position they can fill.
type BalanceRole int

const (
	RoleOpening BalanceRole = iota + 1
	RoleClosing
)

// Resolution returns the role t can fill and its preference within that role (0 wins).
// ok is false for codes outside the vocabulary.
func (t BalanceType) Resolution() (role BalanceRole, preference int, ok bool) {
	switch t {
	case OpeningBooked:
		return RoleOpening, 0, true
	case OpeningAvailable:
		return RoleOpening, 1, true
	case ClosingBooked:
		return RoleClosing, 0, true
	case ClosingAvailable:
		return RoleClosing, 1, true
	default:
		return 0, 0, false
	}
}

// String returns the role name.
func (r BalanceRole) String() string {
	switch r {
	case RoleOpening:
		return "opening"
	case RoleClosing:
		return "closing"
	default:
		return "unknown"
	}
}
