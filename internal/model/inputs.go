package model

// SimulationInputs is the canonical request for a path-based simulation:
// contract terms, the rate on the trade date and the monthly rate path.
type SimulationInputs struct {
	Terms       ContractTerms
	InitialRate float64
	Path        ScenarioPath
}

func (in SimulationInputs) Validate() error {
	if err := in.Terms.Validate(); err != nil {
		return err
	}
	if err := RequirePositive("initial_rate", in.InitialRate); err != nil {
		return err
	}
	if err := in.Path.Validate(); err != nil {
		return err
	}
	if len(in.Path) != in.Terms.DurationMonths {
		return PreconditionViolationf("scenario path has %d months, contract has %d", len(in.Path), in.Terms.DurationMonths)
	}
	return nil
}
