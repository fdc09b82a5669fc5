// Package viz renders the recorded time series as terminal charts: the
// price walk against the agent's average-price reference, and the stock
// level against the per-step purchase bars.
package viz

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AgentView is what the renderer needs from the agent.
type AgentView interface {
	PurchaseLog() []int
	AveragePrice() float64
}

// MarketView is what the renderer needs from the environment.
type MarketView interface {
	PriceHistory() []float64
	StockHistory() []float64
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	stockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	purchaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED"))

	footnoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

type Renderer struct {
	out   io.Writer
	width int
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, width: 40}
}

// Render draws both charts followed by a summary panel.
func (r *Renderer) Render(agt AgentView, mkt MarketView) {
	prices := mkt.PriceHistory()
	stocks := mkt.StockHistory()
	purchases := agt.PurchaseLog()

	r.renderPriceChart(prices, agt.AveragePrice())
	r.renderStockChart(stocks, purchases)
	r.renderSummary(prices, stocks, purchases)
}

func (r *Renderer) renderPriceChart(prices []float64, average float64) {
	fmt.Fprintln(r.out, titleStyle.Render("price (│ = final average)"))

	lo, hi := floats.Min(prices), floats.Max(prices)
	markerCol := r.column(average, lo, hi)
	for i, price := range prices {
		row := overlay(r.column(price, lo, hi), markerCol, r.width)
		fmt.Fprintf(r.out, "%3d %10.2f %s\n", i, price, priceStyle.Render(row))
	}
	fmt.Fprintln(r.out, footnoteStyle.Render(fmt.Sprintf("final average price %.2f", average)))
	fmt.Fprintln(r.out)
}

func (r *Renderer) renderStockChart(stocks []float64, purchases []int) {
	fmt.Fprintln(r.out, titleStyle.Render("stock (▒ = purchase)"))

	hi := floats.Max(stocks)
	maxPurchase := 0
	for _, qty := range purchases {
		if qty > maxPurchase {
			maxPurchase = qty
		}
	}

	for i, stock := range stocks {
		row := overlay(r.column(stock, 0, hi), -1, r.width)
		fmt.Fprintf(r.out, "%3d %10.2f %s", i, stock, stockStyle.Render(row))
		if i < len(purchases) && purchases[i] > 0 {
			bar := overlay(scale(purchases[i], maxPurchase, 10), -1, 10)
			fmt.Fprintf(r.out, " %s %d", purchaseStyle.Render(bar), purchases[i])
		}
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) renderSummary(prices, stocks []float64, purchases []int) {
	totalPurchased := 0
	for _, qty := range purchases {
		totalPurchased += qty
	}

	fmt.Fprintln(r.out, titleStyle.Render("summary"))
	fmt.Fprintln(r.out, footnoteStyle.Render(fmt.Sprintf(
		"price mean %.2f stddev %.2f range [%.2f, %.2f]",
		stat.Mean(prices, nil), stdDev(prices), floats.Min(prices), floats.Max(prices))))
	fmt.Fprintln(r.out, footnoteStyle.Render(fmt.Sprintf(
		"stock final %.2f min %.2f; purchased %d units over %d steps",
		stocks[len(stocks)-1], floats.Min(stocks), totalPurchased, len(purchases))))
}

// column maps value into [0, width] given the series bounds.
func (r *Renderer) column(value, lo, hi float64) int {
	if hi <= lo {
		return 0
	}
	col := int(float64(r.width) * (value - lo) / (hi - lo))
	if col < 0 {
		col = 0
	}
	if col > r.width {
		col = r.width
	}
	return col
}

func scale(value, max, width int) int {
	if max <= 0 {
		return 0
	}
	return width * value / max
}

// overlay builds a fixed-width bar row with an optional marker column.
// markerCol < 0 means no marker.
func overlay(barLen, markerCol, width int) string {
	cells := make([]rune, width+1)
	for i := range cells {
		switch {
		case i == markerCol:
			cells[i] = '│'
		case i < barLen:
			cells[i] = '█'
		default:
			cells[i] = ' '
		}
	}
	return string(cells)
}

func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}
