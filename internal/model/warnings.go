package model

import "fmt"

// warningRule is one declarative structural-risk check. Rules are advisory
// and never block computation.
type warningRule func(p DesignParams) []Warning

var warningRules = []warningRule{
	wideMergeRule,
	tallMergeRule,
	largeGridRule,
}

// GenerateWarnings runs every rule against the design. Pure.
func GenerateWarnings(p DesignParams) []Warning {
	var out []Warning
	for _, rule := range warningRules {
		out = append(out, rule(p)...)
	}
	return out
}

// wideMergeRule flags merged openings spanning three or more modules
// horizontally: long unsupported shelf spans tend to sag under load.
func wideMergeRule(p DesignParams) []Warning {
	var out []Warning
	for i, m := range p.Merges {
		if m.ColSpan() >= 3 {
			out = append(out, Warning{
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("opening %d spans %d modules horizontally; shelves above it may sag under load", i+1, m.ColSpan()),
				MergeIndex: i,
			})
		}
	}
	return out
}

// tallMergeRule flags merged openings spanning three or more modules
// vertically: tall unbraced sides lose racking stiffness.
func tallMergeRule(p DesignParams) []Warning {
	var out []Warning
	for i, m := range p.Merges {
		if m.RowSpan() >= 3 {
			out = append(out, Warning{
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("opening %d spans %d modules vertically; consider a fixed shelf for racking stiffness", i+1, m.RowSpan()),
				MergeIndex: i,
			})
		}
	}
	return out
}

// largeGridRule emits one informational note for big units.
func largeGridRule(p DesignParams) []Warning {
	if p.Rows > 4 || p.Cols > 4 {
		return []Warning{{
			Severity:   SeverityInfo,
			Message:    "large unit: plan for assembly in sections and anti-tip anchoring",
			MergeIndex: -1,
		}}
	}
	return nil
}
