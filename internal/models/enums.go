// internal/models/enums.go
package models

// Declared survey value sets. The boundary validator enforces membership;
// the calculator's lookup tables consume these values and fall back to
// neutral buckets for anything it has never seen (old exports, renamed
// options) rather than failing.

// Payment term buckets (q3).
const (
	TermCashOnDelivery   = "cash-payment-on-delivery"
	TermNet15OrShorter   = "net-15-or-shorter"
	TermNet30            = "net-30"
	TermNet60            = "net-60"
	TermNet90            = "net-90"
	TermMoreThanNet90    = "more-than-net-90"
	TermVariesByCustomer = "varies-by-customer"
)

var PaymentTermValues = []string{
	TermCashOnDelivery,
	TermNet15OrShorter,
	TermNet30,
	TermNet60,
	TermNet90,
	TermMoreThanNet90,
	TermVariesByCustomer,
}

// Bad debt experience (q4). Two values count as "yes".
const (
	BadDebtYesMultiple    = "yes-multiple"
	BadDebtYesOnceOrTwice = "yes-once-or-twice"
	BadDebtNoNever        = "no-never"
	BadDebtNotSure        = "not-sure"
)

var BadDebtExperienceValues = []string{
	BadDebtYesMultiple,
	BadDebtYesOnceOrTwice,
	BadDebtNoNever,
	BadDebtNotSure,
}

// Bad debt amount buckets (q5), ordered smallest to largest.
const (
	AmountLessThan50k = "less-than-50k"
	Amount50kTo250k   = "50k-250k"
	Amount250kTo1m    = "250k-1m"
	Amount1mTo5m      = "1m-5m"
	AmountOver5m      = "over-5m"
)

var BadDebtAmountValues = []string{
	AmountLessThan50k,
	Amount50kTo250k,
	Amount250kTo1m,
	Amount1mTo5m,
	AmountOver5m,
}

// Changed approach after a loss (q7).
const (
	ChangedSignificant = "yes-significant"
	ChangedMinor       = "yes-minor"
	ChangedNo          = "no"
)

var ChangedApproachValues = []string{
	ChangedSignificant,
	ChangedMinor,
	ChangedNo,
}

// Changes made (q7a, multi-select). ChangeStricterApproval is the broad
// "tightened things up" answer; ChangeFormalApprovalProcess is the distinct
// option for introducing a formal approval workflow.
const (
	ChangeStricterApproval      = "stricter-credit-approval"
	ChangeFormalApprovalProcess = "formal-credit-approval-process"
	ChangeTradeCreditInsurance  = "trade-credit-insurance"
	ChangeARSoftware            = "ar-automation-software"
	ChangeShortenedTerms        = "shortened-payment-terms"
	ChangeRequireDeposits       = "require-deposits"
	ChangeInvoiceFactoring      = "invoice-factoring"
	ChangeStoppedCreditSales    = "stopped-credit-sales"
	ChangeOther                 = "other"
)

var ChangesMadeValues = []string{
	ChangeStricterApproval,
	ChangeFormalApprovalProcess,
	ChangeTradeCreditInsurance,
	ChangeARSoftware,
	ChangeShortenedTerms,
	ChangeRequireDeposits,
	ChangeInvoiceFactoring,
	ChangeStoppedCreditSales,
	ChangeOther,
}

// Risk mechanisms (q8 current shape, multi-select).
const (
	MechanismTradeCreditInsurance = "trade-credit-insurance"
	MechanismLettersOfCredit      = "letters-of-credit"
	MechanismFactoring            = "factoring"
	MechanismCreditChecks         = "credit-checks"
	MechanismPersonalGuarantees   = "personal-guarantees"
	MechanismSelfInsurance        = "self-insurance"
	MechanismNone                 = "none"
)

var RiskMechanismValues = []string{
	MechanismTradeCreditInsurance,
	MechanismLettersOfCredit,
	MechanismFactoring,
	MechanismCreditChecks,
	MechanismPersonalGuarantees,
	MechanismSelfInsurance,
	MechanismNone,
}

// Legacy credit insurance usage (q8 legacy shape, single-select).
const (
	UsageCurrentlyUse   = "currently-use"
	UsageUsedPreviously = "used-previously"
	UsageConsideredOnly = "considered-never-used"
	UsageNeverHeard     = "never-heard"
)

var CreditInsuranceUsageValues = []string{
	UsageCurrentlyUse,
	UsageUsedPreviously,
	UsageConsideredOnly,
	UsageNeverHeard,
}

// Annual revenue bands (q17).
var AnnualRevenueValues = []string{
	"under-1m",
	"1m-5m",
	"5m-25m",
	"25m-100m",
	"100m-500m",
	"over-500m",
	"prefer-not-to-say",
}

// B2B share (q1).
var B2BPercentageValues = []string{
	"all-b2b",
	"mostly-b2b",
	"half-b2b",
	"some-b2b",
	"no-b2b",
}

// Respondent role (q2).
var RoleValues = []string{
	"owner-ceo",
	"cfo-finance-director",
	"controller",
	"credit-manager",
	"treasurer",
	"other",
}

// Primary industry (q18). The survey exposes a long flat list; the
// calculator folds these into the dataset's industry buckets.
var PrimaryIndustryValues = []string{
	"manufacturing",
	"industrial-manufacturing",
	"food-beverage-production",
	"textiles-apparel",
	"chemicals",
	"plastics-rubber",
	"machinery-equipment",
	"electronics-manufacturing",
	"automotive",
	"aerospace-defense",
	"metals-mining",
	"construction",
	"commercial-construction",
	"residential-construction",
	"civil-engineering",
	"building-materials",
	"wholesale-trade",
	"wholesale-distribution",
	"import-export",
	"retail",
	"e-commerce",
	"consumer-goods",
	"transportation",
	"logistics",
	"freight-shipping",
	"warehousing",
	"professional-services",
	"consulting",
	"legal-services",
	"accounting-services",
	"marketing-advertising",
	"staffing-recruitment",
	"architecture-engineering",
	"technology",
	"software-saas",
	"it-services",
	"telecommunications",
	"media-publishing",
	"healthcare",
	"pharmaceuticals",
	"medical-devices",
	"biotechnology",
	"energy",
	"oil-gas",
	"renewable-energy",
	"utilities",
	"financial-services",
	"insurance",
	"real-estate",
	"agriculture",
	"forestry-fishing",
	"hospitality",
	"education",
	"government",
	"nonprofit",
	"other",
}
