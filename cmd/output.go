// Styled terminal output helpers for the dashboard commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"salesdash/internal/dashboard"
	"salesdash/internal/sales"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	amountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

// formatMoney renders a decimal with two places and thousands separators,
// matching the dashboard's number formatting.
func formatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + fracPart
}

func formatAmount(f float64) string {
	return formatMoney(decimal.NewFromFloat(f))
}

// printSalesTable renders the current page plus pagination context.
func printSalesTable(state dashboard.State) {
	if state.Error != "" {
		fmt.Println(errorStyle.Render("error: " + state.Error))
		return
	}
	if len(state.Records) == 0 {
		fmt.Println(subtleStyle.Render("no sales on this page"))
	}
	for _, s := range state.Records {
		fmt.Printf("%s  %-20s %12s  %s\n",
			subtleStyle.Render(shortID(s.ID)),
			s.Product,
			amountStyle.Render("$"+formatAmount(s.Amount)),
			s.Date)
	}
	fmt.Println(subtleStyle.Render(fmt.Sprintf("page %d/%d · %d records · sorted by %s %s",
		state.CurrentPage, state.TotalPages(), state.Total, state.SortField, state.SortDirection)))
}

// printSummary renders the analytics panels.
func printSummary(sum sales.Summary) {
	fmt.Println(titleStyle.Render("Total Sales      ") + "$" + formatMoney(sum.TotalAmount))
	fmt.Println(titleStyle.Render("Average Sale     ") + "$" + formatMoney(sum.AveragePerProduct))
	fmt.Println(titleStyle.Render("Average / Record ") + "$" + formatMoney(sum.AveragePerSale))
	fmt.Println(titleStyle.Render("Total Products   ") + fmt.Sprintf("%d", sum.DistinctProducts))

	if len(sum.Categories) == 0 {
		fmt.Println(subtleStyle.Render("no sales data available"))
		return
	}
	fmt.Println()
	fmt.Println(titleStyle.Render("Product Breakdown"))
	for _, c := range sum.Categories {
		fmt.Printf("  %-20s %12s  %s\n",
			c.Product,
			amountStyle.Render("$"+formatMoney(c.Total)),
			subtleStyle.Render(c.Percentage.String()+"%"))
	}
}

// printLatestSales renders the latest-sales panel, newest first.
func printLatestSales(records []sales.Sale) {
	fmt.Println()
	fmt.Println(titleStyle.Render("Latest Sales by Product"))
	if len(records) == 0 {
		fmt.Println(subtleStyle.Render("no sales data available"))
		return
	}
	for _, s := range records {
		fmt.Printf("  %-20s %12s  %s\n",
			s.Product,
			amountStyle.Render("$"+formatAmount(s.Amount)),
			subtleStyle.Render(s.Date))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printSuccess(msg string) {
	fmt.Println(successStyle.Render(msg))
}
