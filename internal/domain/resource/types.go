package resource

import "errors"

var (
	ErrUnknownStatus        = errors.New("unknown resource status")
	ErrUnknownServiceCode   = errors.New("unknown service code")
	ErrBackwardTransition   = errors.New("resource status cannot move backward")
	ErrTerminalResource     = errors.New("resource is in a terminal status")
	ErrEmptyResourceCode    = errors.New("resource code cannot be empty")
	ErrEmptyProvider        = errors.New("provider cannot be empty")
	ErrProviderCodeMismatch = errors.New("service code does not belong to provider")
)

// Status of one allocable resource unit. Transitions only move forward:
// AVAILABLE -> RESERVED -> {SENT, REDEEMED, EXPIRED, DISABLED}.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusReserved  Status = "RESERVED"
	StatusSent      Status = "SENT"
	StatusRedeemed  Status = "REDEEMED"
	StatusExpired   Status = "EXPIRED"
	StatusDisabled  Status = "DISABLED"
)

// statusRank orders statuses along the lifecycle. Equal-rank terminal
// statuses cannot transition among themselves.
var statusRank = map[Status]int{
	StatusAvailable: 1,
	StatusReserved:  2,
	StatusSent:      3,
	StatusRedeemed:  4,
	StatusExpired:   4,
	StatusDisabled:  4,
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := statusRank[st]; !ok {
		return "", ErrUnknownStatus
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s == StatusRedeemed || s == StatusExpired || s == StatusDisabled
}

// ExpirySweepExcluded lists statuses the daily sweep must never touch.
func ExpirySweepExcluded() []Status {
	return []Status{StatusExpired, StatusRedeemed, StatusDisabled}
}

// ServiceCode is the closed enumeration of offerings across providers.
type ServiceCode string

const (
	CodeDuolingoTestProctored    ServiceCode = "DUOLINGO_TEST_PROCTORED"
	CodeDuolingoTestNonProctored ServiceCode = "DUOLINGO_TEST_NON_PROCTORED"
)

var serviceCodeProviders = map[ServiceCode]string{
	CodeDuolingoTestProctored:    "DUOLINGO",
	CodeDuolingoTestNonProctored: "DUOLINGO",
}

func ParseServiceCode(s string) (ServiceCode, error) {
	code := ServiceCode(s)
	if _, ok := serviceCodeProviders[code]; !ok {
		return "", ErrUnknownServiceCode
	}
	return code, nil
}

func (c ServiceCode) String() string { return string(c) }

// Provider returns the provider key that owns this offering.
func (c ServiceCode) Provider() string { return serviceCodeProviders[c] }
