package services

import (
	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	serviceDepositRate = decimal.New(2, -1)
	storeDepositRate   = decimal.New(5, -1)
)

// DepositBranch tells which deposit policy ComputeAmounts applied.
type DepositBranch string

const (
	DepositBranchMerchandise DepositBranch = "merchandise"
	DepositBranchService     DepositBranch = "service"
)

// ComputeAmounts derives the contract totals from its line items.
//
// Rules:
//   - services are priced by the digits of their price string, in whole reais
//   - a contract with no priced services but a persisted total recovers its
//     services value as total - store - travel
//   - merchandise-only contracts pay half of store + travel upfront; any
//     contract with a service component pays 20% of services + 50% of store
//   - the deposit never exceeds the total, so deposit + remaining == total
func ComputeAmounts(c entities.Contract) entities.ContractAmounts {
	amounts, _ := computeAmounts(c)
	return amounts
}

// ComputeAmountsWithBranch is ComputeAmounts plus the deposit policy used.
func ComputeAmountsWithBranch(c entities.Contract) (entities.ContractAmounts, DepositBranch) {
	return computeAmounts(c)
}

func computeAmounts(c entities.Contract) (entities.ContractAmounts, DepositBranch) {
	servicesRaw := ServicesTotal(c.Services)
	store := StoreTotal(c.StoreItems)
	travel := c.TravelFee

	servicesEffective := servicesRaw
	if servicesRaw == 0 && c.TotalAmount > 0 {
		servicesEffective = money.Max(0, money.Add(c.TotalAmount, -store, -travel))
	}

	total := money.Add(servicesEffective, store, travel).RoundUnits()

	branch := DepositBranchService
	var depositBase decimal.Decimal
	if servicesEffective <= 0 && store > 0 {
		branch = DepositBranchMerchandise
		depositBase = money.Add(store, travel).Decimal().Mul(storeDepositRate)
	} else {
		depositBase = servicesEffective.Decimal().Mul(serviceDepositRate).
			Add(store.Decimal().Mul(storeDepositRate))
	}
	deposit := money.FromDecimal(depositBase.Ceil())
	if deposit > total {
		deposit = total
	}

	return entities.ContractAmounts{
		ServicesTotal:   servicesEffective,
		StoreTotal:      store,
		Travel:          travel,
		TotalAmount:     total,
		DepositAmount:   deposit,
		RemainingAmount: money.Max(0, money.Add(total, -deposit)),
	}, branch
}

// ServicesTotal sums digit-parsed service prices times quantity.
// Malformed prices count as zero; negative quantities are not sanitized.
// Sums saturate at money.MaxCents.
func ServicesTotal(items []entities.ServiceItem) money.Cents {
	var total money.Cents
	for _, it := range items {
		units := money.ParseDigits(it.Price)
		total = money.Add(total, money.FromUnits(units).Mul(int64(quantityOrOne(it.Quantity))))
	}
	return total
}

func StoreTotal(items []entities.StoreItem) money.Cents {
	var total money.Cents
	for _, it := range items {
		total = money.Add(total, it.Price.Mul(int64(quantityOrOne(it.Quantity))))
	}
	return total
}

// quantityOrOne treats a missing (zero) quantity as a single unit.
func quantityOrOne(q int) int {
	if q == 0 {
		return 1
	}
	return q
}
