package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/reglet-dev/recipebook/internal/application/dto"
	"github.com/reglet-dev/recipebook/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

const ruleWidth = 60

// TableFormatter formats recipe reports for the terminal.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true,
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (f *TableFormatter) rule() string {
	return f.colorize(strings.Repeat("─", ruleWidth), colorGray)
}

// Format writes the report as a table.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) Format(report *dto.RecipeReport) error {
	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintf(f.writer, "Recipe: %s\n", f.colorize(report.Name, colorBold))
	if report.Path != "" {
		fmt.Fprintf(f.writer, "File: %s\n", report.Path)
	}
	fmt.Fprintln(f.writer)

	if len(report.Ingredients) == 0 {
		fmt.Fprintln(f.writer, "No ingredients added yet.")
		fmt.Fprintln(f.writer, f.rule())
		return nil
	}

	fmt.Fprintln(f.writer, f.colorize("Ingredients:", colorBold))
	if err := f.formatIngredients(report.Ingredients); err != nil {
		return err
	}
	fmt.Fprintln(f.writer)

	f.formatTotals(report.Totals, report.TotalQuantity)

	if len(report.Goals) > 0 {
		fmt.Fprintln(f.writer)
		f.formatGoals(report)
	}

	fmt.Fprintln(f.writer, f.rule())
	return nil
}

// formatIngredients writes one aligned row per ingredient.
func (f *TableFormatter) formatIngredients(ingredients []values.NutritionalInfo) error {
	tw := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tName\tQuantity (g)\tCalories\tProtein\tFats\tCarbs")
	for i, ing := range ingredients {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			ing.Name,
			formatNumber(ing.Quantity),
			formatNumber(ing.Calories),
			formatNumber(ing.Protein),
			formatNumber(ing.Fats),
			formatNumber(ing.Carbs),
		)
	}
	return tw.Flush()
}

// formatTotals writes the aggregated nutrition block.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatTotals(totals values.Totals, quantity float64) {
	fmt.Fprintln(f.writer, f.colorize("Nutrition:", colorBold))
	fmt.Fprintf(f.writer, "  Calories: %s\n", f.colorize(formatNumber(totals.Calories), colorCyan))
	fmt.Fprintf(f.writer, "  Protein:  %s g\n", formatNumber(totals.Protein))
	fmt.Fprintf(f.writer, "  Fats:     %s g\n", formatNumber(totals.Fats))
	fmt.Fprintf(f.writer, "  Carbs:    %s g\n", formatNumber(totals.Carbs))
	fmt.Fprintf(f.writer, "  Quantity: %s g\n", formatNumber(quantity))
}

// formatGoals writes one line per evaluated goal.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatGoals(report *dto.RecipeReport) {
	fmt.Fprintln(f.writer, f.colorize("Goals:", colorBold))
	for _, res := range report.Goals {
		symbol := f.colorize(res.Status.Symbol(), statusColor(res.Status))
		fmt.Fprintf(f.writer, "  %s %s: %s\n", symbol, res.Goal.Name, res.Goal.Expression)
		if res.Message != "" {
			fmt.Fprintf(f.writer, "      %s\n", f.colorize(res.Message, colorYellow))
		}
	}
}

func statusColor(status values.GoalStatus) string {
	switch status {
	case values.GoalMet:
		return colorGreen
	case values.GoalMissed:
		return colorRed
	case values.GoalError:
		return colorYellow
	default:
		return colorReset
	}
}

// formatNumber prints a float without exponent or trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
