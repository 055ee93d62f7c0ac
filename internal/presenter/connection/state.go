package connection

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Banner временное сообщение о последнем действии пользователя.
type Banner struct {
	Phase   Phase
	Message string
}

type Combination string

const (
	CombinationNone        Combination = "none"
	CombinationBackendOnly Combination = "backend_only"
	CombinationWalletOnly  Combination = "wallet_only"
	CombinationBoth        Combination = "both"
)

func combine(backend, wallet bool) Combination {
	switch {
	case backend && wallet:
		return CombinationBoth
	case backend:
		return CombinationBackendOnly
	case wallet:
		return CombinationWalletOnly
	default:
		return CombinationNone
	}
}

func (c Combination) Description() string {
	switch c {
	case CombinationBoth:
		return "Both Internet Identity and wallet are connected"
	case CombinationBackendOnly:
		return "Connected to Internet Identity, wallet not connected"
	case CombinationWalletOnly:
		return "Wallet connected, Internet Identity not connected"
	default:
		return "Not connected"
	}
}

// State снимок, который читает отображение.
type State struct {
	BackendConnected bool
	Principal        string
	WalletConnected  bool
	Account          string
	Network          string
	Balance          string
	Combination      Combination
	Banner           Banner
}
