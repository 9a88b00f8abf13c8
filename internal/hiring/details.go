package hiring

import "fmt"

const defaultCurrency = "USD"

// Details returns the labelled detail fragments shown under a record's title.
// Empty strings and zero numbers are omitted.
func Details(e Entity) []string {
	var out []string
	add := func(label, value string) {
		if value != "" {
			out = append(out, label+": "+value)
		}
	}

	switch e := e.(type) {
	case Company:
		add("Domain", e.Domain)
		add("Industry", e.Industry)
		add("Location", e.Location)
	case JobPosting:
		add("Location", e.Location)
		add("Type", e.EmploymentType)
		if s, ok := e.SalaryMin.Scalar(); ok && s.Truthy() {
			currency := e.SalaryCurrency
			if currency == "" {
				currency = defaultCurrency
			}
			out = append(out, fmt.Sprintf("Salary: %s %s+", currency, s.Grouped()))
		}
		add("Posted", e.PostedDate)
	case Promise:
		add("Type", e.Type)
		if s, ok := e.TimelineDays.Scalar(); ok && s.Truthy() {
			out = append(out, fmt.Sprintf("Timeline: %s days", s))
		}
		if s, ok := e.ValueMin.Scalar(); ok && s.Truthy() {
			out = append(out, "Value: "+s.Grouped())
		}
	case Vouch:
		out = vouchDetails(e, out)
	case PersonalVouch:
		out = vouchDetails(e.Vouch, out)
		add("Relationship", e.Relationship)
	}
	return out
}

func vouchDetails(v Vouch, out []string) []string {
	if v.ClaimType != "" {
		out = append(out, "Claim: "+v.ClaimType)
	}
	if v.SourceSeniority != "" {
		out = append(out, "Seniority: "+v.SourceSeniority)
	}
	if s, ok := v.Weight.Scalar(); ok && s.Truthy() {
		out = append(out, "Weight: "+s.String())
	}
	if v.ValidFrom != "" {
		out = append(out, "Valid from: "+v.ValidFrom)
	}
	return out
}

// Description returns the long-form text for a card: the entity's description,
// or the vouch statement for vouches without one.
func Description(e Entity) string {
	switch e := e.(type) {
	case Company:
		return e.Description
	case JobPosting:
		return e.Description
	case Promise:
		return e.Description
	case Vouch:
		return firstNonEmpty(e.Description, e.Statement)
	case PersonalVouch:
		return firstNonEmpty(e.Description, e.Statement)
	default:
		return ""
	}
}
