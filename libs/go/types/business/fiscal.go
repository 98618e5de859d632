package business

import "github.com/fiscalia/fiscalia-api/libs/go/constants"

// EntityType is the legal form of the business, which decides whether IRPF
// or corporate tax applies to operating profit.
type EntityType string

const (
	EntitySoleTrader     EntityType = "sole_trader"
	EntityLimitedCompany EntityType = "limited_company"
	EntityCorporation    EntityType = "corporation"
)

// FiscalConfig carries the tax profile of the business. It is immutable per
// calculation; the engine never mutates or persists it.
type FiscalConfig struct {
	EntityType       EntityType `json:"entity_type"`
	VATRate          float64    `json:"vat_rate"`
	IRPFRate         float64    `json:"irpf_rate"`
	CorporateTaxRate float64    `json:"corporate_tax_rate"`
}

// DefaultFiscalConfig returns the fallback profile used when no
// configuration is stored: sole trader at the Spanish standard rates.
// Calculations must never fail solely because configuration is unset.
func DefaultFiscalConfig() FiscalConfig {
	return FiscalConfig{
		EntityType:       EntitySoleTrader,
		VATRate:          constants.DefaultVATRate,
		IRPFRate:         constants.DefaultIRPFRate,
		CorporateTaxRate: constants.DefaultCorporateTaxRate,
	}
}

// PaysIRPF reports whether the entity settles income tax through IRPF.
func (c FiscalConfig) PaysIRPF() bool {
	return c.EntityType == EntitySoleTrader
}

// PaysCorporateTax reports whether the entity settles through corporate tax.
func (c FiscalConfig) PaysCorporateTax() bool {
	return c.EntityType == EntityLimitedCompany || c.EntityType == EntityCorporation
}
