package services

import (
	"testing"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAmounts(t *testing.T) {
	tests := []struct {
		name     string
		contract entities.Contract
		want     entities.ContractAmounts
		branch   DepositBranch
	}{
		{
			name: "merchandise only",
			contract: entities.Contract{
				StoreItems: []entities.StoreItem{{Price: money.FromUnits(100), Quantity: 2}},
				TravelFee:  money.FromUnits(50),
			},
			want: entities.ContractAmounts{
				StoreTotal:      money.FromUnits(200),
				Travel:          money.FromUnits(50),
				TotalAmount:     money.FromUnits(250),
				DepositAmount:   money.FromUnits(125),
				RemainingAmount: money.FromUnits(125),
			},
			branch: DepositBranchMerchandise,
		},
		{
			name: "service and merchandise",
			contract: entities.Contract{
				Services:   []entities.ServiceItem{{Price: "R$ 1.000", Quantity: 1}},
				StoreItems: []entities.StoreItem{{Price: money.FromUnits(100), Quantity: 1}},
				TravelFee:  money.FromUnits(50),
			},
			want: entities.ContractAmounts{
				ServicesTotal:   money.FromUnits(1000),
				StoreTotal:      money.FromUnits(100),
				Travel:          money.FromUnits(50),
				TotalAmount:     money.FromUnits(1150),
				DepositAmount:   money.FromUnits(250),
				RemainingAmount: money.FromUnits(900),
			},
			branch: DepositBranchService,
		},
		{
			name:     "persisted total recovers opaque package",
			contract: entities.Contract{TotalAmount: money.FromUnits(500)},
			want: entities.ContractAmounts{
				ServicesTotal:   money.FromUnits(500),
				TotalAmount:     money.FromUnits(500),
				DepositAmount:   money.FromUnits(100),
				RemainingAmount: money.FromUnits(400),
			},
			branch: DepositBranchService,
		},
		{
			name: "itemized services ignore stale persisted total",
			contract: entities.Contract{
				Services:    []entities.ServiceItem{{Price: "R$ 300", Quantity: 2}},
				TotalAmount: money.FromUnits(9999),
			},
			want: entities.ContractAmounts{
				ServicesTotal:   money.FromUnits(600),
				TotalAmount:     money.FromUnits(600),
				DepositAmount:   money.FromUnits(120),
				RemainingAmount: money.FromUnits(480),
			},
			branch: DepositBranchService,
		},
		{
			name: "fallback never goes negative",
			contract: entities.Contract{
				StoreItems:  []entities.StoreItem{{Price: money.FromUnits(80), Quantity: 1}},
				TotalAmount: money.FromUnits(50),
			},
			want: entities.ContractAmounts{
				StoreTotal:      money.FromUnits(80),
				TotalAmount:     money.FromUnits(80),
				DepositAmount:   money.FromUnits(40),
				RemainingAmount: money.FromUnits(40),
			},
			branch: DepositBranchMerchandise,
		},
		{
			name: "missing quantity counts as one and malformed price as zero",
			contract: entities.Contract{
				Services: []entities.ServiceItem{
					{Price: "R$ 150"},
					{Price: "a combinar", Quantity: 3},
				},
			},
			want: entities.ContractAmounts{
				ServicesTotal:   money.FromUnits(150),
				TotalAmount:     money.FromUnits(150),
				DepositAmount:   money.FromUnits(30),
				RemainingAmount: money.FromUnits(120),
			},
			branch: DepositBranchService,
		},
		{
			name: "deposit ceils to whole reais",
			contract: entities.Contract{
				Services: []entities.ServiceItem{{Price: "R$ 333", Quantity: 1}},
			},
			want: entities.ContractAmounts{
				ServicesTotal:   money.FromUnits(333),
				TotalAmount:     money.FromUnits(333),
				DepositAmount:   money.FromUnits(67),
				RemainingAmount: money.FromUnits(266),
			},
			branch: DepositBranchService,
		},
		{
			name: "travel is outside the service deposit base",
			contract: entities.Contract{
				Services:  []entities.ServiceItem{{Price: "100", Quantity: 1}},
				TravelFee: money.FromUnits(1000),
			},
			want: entities.ContractAmounts{
				ServicesTotal:   money.FromUnits(100),
				Travel:          money.FromUnits(1000),
				TotalAmount:     money.FromUnits(1100),
				DepositAmount:   money.FromUnits(20),
				RemainingAmount: money.FromUnits(1080),
			},
			branch: DepositBranchService,
		},
		{
			name:     "empty contract",
			contract: entities.Contract{},
			want:     entities.ContractAmounts{},
			branch:   DepositBranchService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, branch := ComputeAmountsWithBranch(tt.contract)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.branch, branch)
			assert.Equal(t, got, ComputeAmounts(tt.contract))
		})
	}
}

func TestComputeAmountsRoundsTotalHalfUp(t *testing.T) {
	c := entities.Contract{
		StoreItems: []entities.StoreItem{{Price: 1050, Quantity: 1}},
	}
	got := ComputeAmounts(c)
	assert.Equal(t, money.FromUnits(11), got.TotalAmount)
	assert.Equal(t, money.FromUnits(6), got.DepositAmount)
	assert.Equal(t, money.FromUnits(5), got.RemainingAmount)
}

func TestComputeAmountsCapsDepositAtTotal(t *testing.T) {
	// 0.40 of merchandise rounds to a zero total but ceils to a 1.00 deposit.
	c := entities.Contract{
		StoreItems: []entities.StoreItem{{Price: 40, Quantity: 1}},
	}
	got := ComputeAmounts(c)
	assert.Equal(t, money.Cents(0), got.TotalAmount)
	assert.Equal(t, money.Cents(0), got.DepositAmount)
	assert.Equal(t, money.Cents(0), got.RemainingAmount)
}

func TestComputeAmountsConservesTotal(t *testing.T) {
	prices := []string{"", "R$ 1", "R$ 99", "R$ 1.250", "3.333", "R$ 7"}
	storePrices := []money.Cents{0, 1, 49, 50, 199, 12345, 99999}
	travels := []money.Cents{0, 1, 2550, 10000}
	persisted := []money.Cents{0, 333, 100000}

	for _, p := range prices {
		for _, sp := range storePrices {
			for _, tr := range travels {
				for _, pt := range persisted {
					c := entities.Contract{
						Services:    []entities.ServiceItem{{Price: p, Quantity: 2}},
						StoreItems:  []entities.StoreItem{{Price: sp, Quantity: 3}},
						TravelFee:   tr,
						TotalAmount: pt,
					}
					got := ComputeAmounts(c)
					require.Equal(t, got.TotalAmount, got.DepositAmount+got.RemainingAmount,
						"price=%q store=%d travel=%d persisted=%d", p, sp, tr, pt)
					require.GreaterOrEqual(t, int64(got.RemainingAmount), int64(0))
					require.Zero(t, int64(got.TotalAmount)%100, "total must be whole reais")
				}
			}
		}
	}
}

func TestLineTotals(t *testing.T) {
	assert.Equal(t, money.FromUnits(2400), ServicesTotal([]entities.ServiceItem{
		{Price: "R$ 1.200", Quantity: 2},
	}))
	assert.Equal(t, money.FromUnits(-100), ServicesTotal([]entities.ServiceItem{
		{Price: "R$ 100", Quantity: -1},
	}))
	assert.Equal(t, money.Cents(3*1999+500), StoreTotal([]entities.StoreItem{
		{Price: 1999, Quantity: 3},
		{Price: 500},
	}))
}

func TestComputeAmountsSaturatesHugePrices(t *testing.T) {
	got := ComputeAmounts(entities.Contract{
		Services:   []entities.ServiceItem{{Price: "R$ 99999999999999999999", Quantity: 2}},
		StoreItems: []entities.StoreItem{{Price: money.MaxCents, Quantity: 5}},
		TravelFee:  money.MaxCents,
	})

	assert.Equal(t, money.MaxCents, got.ServicesTotal)
	assert.Equal(t, money.MaxCents, got.StoreTotal)
	assert.Equal(t, money.MaxCents, got.TotalAmount)
	assert.Positive(t, int64(got.DepositAmount))
	assert.Equal(t, got.TotalAmount, got.DepositAmount+got.RemainingAmount)
}
