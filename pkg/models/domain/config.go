package domain

import "fmt"

// ExperimentProfile is a named set of experiment inputs read from a profiles file.
type ExperimentProfile struct {
	Name   string
	Inputs ExperimentInputs
}

func (p ExperimentProfile) String() string {
	return fmt.Sprintf("%s:%dd", p.Name, p.Inputs.DurationDays)
}
