package profit

type Outcome string

const (
	OutcomeProfit    Outcome = "profit"
	OutcomeLoss      Outcome = "loss"
	OutcomeBreakEven Outcome = "break-even"
)

type Inputs struct {
	Guests        float64 `yaml:"guests" json:"guests"`
	TicketPrice   float64 `yaml:"ticketPrice" json:"ticketPrice"`
	ExtraSpend    float64 `yaml:"extraSpend" json:"extraSpend"`
	LostSalesCost float64 `yaml:"lostSalesCost" json:"lostSalesCost"`
	StaffWages    float64 `yaml:"staffWages" json:"staffWages"`
	MaterialsCost float64 `yaml:"materialsCost" json:"materialsCost"`
	RentalCost    float64 `yaml:"rentalCost" json:"rentalCost"`
}

// BreakEven is the minimum whole attendance that covers fixed costs.
// Guests is only meaningful when Reachable is true.
type BreakEven struct {
	Guests    int64 `json:"guests"`
	Reachable bool  `json:"reachable"`
}

type Result struct {
	TotalRevenue     float64   `json:"totalRevenue"`
	TotalFixedCosts  float64   `json:"totalFixedCosts"`
	NetProfit        float64   `json:"netProfit"`
	NetMarginPercent float64   `json:"netMarginPercent"`
	RevenuePerGuest  float64   `json:"revenuePerGuest"`
	BreakEven        BreakEven `json:"breakEven"`
	Outcome          Outcome   `json:"outcome"`
}

func Unreachable() BreakEven {
	return BreakEven{}
}

func (b BreakEven) Value() (int64, bool) {
	return b.Guests, b.Reachable
}
