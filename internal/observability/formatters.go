// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/staffsync/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted candidate.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Category:   %s\n", profile.Category))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))
	if profile.Availability != "" {
		sb.WriteString(fmt.Sprintf("Available:  %s\n", profile.Availability))
	}
	sb.WriteString(fmt.Sprintf("Verified:   %t\n", profile.Verified))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	if profile.Bio != "" {
		bio := profile.Bio
		if len(bio) > 50 {
			bio = bio[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nBio: %s\n", bio))
	}

	p.printBox("EXTRACTED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLeads outputs the lead pipeline with stage labels and payment state.
func (p *Printer) PrintLeads(leads []types.EmployerLead) {
	if len(leads) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total leads: %d\n\n", len(leads)))

	count := min(len(leads), maxItemsToShow)
	for i := 0; i < count; i++ {
		lead := leads[i]
		sb.WriteString(fmt.Sprintf("#%s  %s\n", lead.ID, lead.EmployerName))
		sb.WriteString(fmt.Sprintf("    Stage:   %s\n", lead.Stage()))
		sb.WriteString(fmt.Sprintf("    Payment: %s (%s%.0f of %s%.0f)",
			lead.PaymentDetails.DerivedStatus(),
			lead.PaymentDetails.Currency, lead.PaymentDetails.AmountPaid,
			lead.PaymentDetails.Currency, lead.PaymentDetails.PackageFee))
		if !lead.PaymentDetails.Consistent() {
			sb.WriteString(" ⚠ declared status disagrees")
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(leads) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more leads", len(leads)-maxItemsToShow))
	}

	p.printBox("EMPLOYER LEADS", sb.String())
}
