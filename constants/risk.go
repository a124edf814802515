package constants

// RiskTiers holds the allowed values for the risk_tier field on leases.
// The extraction engine never computes a tier; rows start at the default
// and downstream valuation tooling overrides it.
var RiskTiers = []string{"low", "medium", "high"}

// DefaultRiskTier is assigned to every newly extracted lease.
const DefaultRiskTier = "medium"
