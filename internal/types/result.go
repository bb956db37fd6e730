package types

// Statement is a rendered statement whose parameters form a flat mapping
// and can therefore be bound directly by a driver.
type Statement interface {
	SQL() string
	Params() Parameters
}
