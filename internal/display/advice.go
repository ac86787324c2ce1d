package display

import (
	"math"
	"strings"

	"agroledger/internal/pricing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func printer(l Locale) *message.Printer {
	if l == Spanish {
		return message.NewPrinter(language.Spanish)
	}
	return message.NewPrinter(language.English)
}

// Money renders an amount as whole currency units with grouping separators.
func Money(l Locale, amount float64) string {
	return printer(l).Sprintf("$%d", int64(math.Round(amount)))
}

// ForecastAdvice suggests when to buy given the price trend.
func ForecastAdvice(l Locale, f pricing.ForecastResult) string {
	if !f.Available {
		return ""
	}
	p := printer(l)

	switch f.Trend {
	case pricing.TrendRising:
		if l == Spanish {
			return p.Sprintf("Precio en tendencia alcista (+%.1f%%). Considera comprar pronto antes de que suba más.", f.PercentChange)
		}
		return p.Sprintf("Price is trending up (+%.1f%%). Consider buying soon before it rises further.", f.PercentChange)
	case pricing.TrendFalling:
		if l == Spanish {
			return p.Sprintf("Precio en tendencia bajista (%.1f%%). Puedes esperar un poco para un mejor precio.", f.PercentChange)
		}
		return p.Sprintf("Price is trending down (%.1f%%). Waiting a little may get a better price.", f.PercentChange)
	default:
		if l == Spanish {
			return "Precio estable. Buen momento para comprar según tus necesidades."
		}
		return "Price is stable. A good time to buy as needed."
	}
}

// WeekdayAdvice names the cheapest weekday and how much it saves per kg.
func WeekdayAdvice(l Locale, w pricing.WeekdayAdvisory) string {
	if !w.Available {
		return ""
	}
	p := printer(l)
	best := WeekdayName(l, w.BestDay)
	worst := WeekdayName(l, w.WorstDay)
	bestMean := Money(l, w.MeanPriceByDay[w.BestDay])
	savings := Money(l, w.EstimatedSavings)

	if l == Spanish {
		return p.Sprintf("Históricamente, %s tiene mejores precios (%s/kg promedio). Ahorras hasta %s/kg (%.1f%%) frente a %s.",
			best, bestMean, savings, w.SavingsPercent, worst)
	}
	return p.Sprintf("Historically, %s has the best prices (%s/kg on average). You save up to %s/kg (%.1f%%) compared with %s.",
		best, bestMean, savings, w.SavingsPercent, worst)
}

// SeasonalAdvice describes the expensive and cheap months.
func SeasonalAdvice(l Locale, s pricing.SeasonalPattern) string {
	if !s.Detected {
		return ""
	}

	var parts []string
	if len(s.ExpensiveMonths) > 0 {
		months := strings.Join(MonthNames(l, s.ExpensiveMonths), ", ")
		if l == Spanish {
			parts = append(parts, "Precios altos en "+months+".")
		} else {
			parts = append(parts, "High prices in "+months+".")
		}
	}
	if len(s.CheapMonths) > 0 {
		months := strings.Join(MonthNames(l, s.CheapMonths), ", ")
		if l == Spanish {
			parts = append(parts, "Precios bajos en "+months+".")
		} else {
			parts = append(parts, "Low prices in "+months+".")
		}
	}
	return strings.Join(parts, " ")
}

// SignalAdvice explains a period-over-period summary.
func SignalAdvice(l Locale, s pricing.PeriodSummary) string {
	p := printer(l)
	switch s.Signal {
	case pricing.SignalHigher:
		if l == Spanish {
			return p.Sprintf("Precio %.1f%% MÁS ALTO que el periodo anterior.", s.PercentChange)
		}
		return p.Sprintf("Price is %.1f%% HIGHER than the previous period.", s.PercentChange)
	case pricing.SignalLower:
		if l == Spanish {
			return p.Sprintf("Precio %.1f%% MÁS BAJO. Buen momento para comprar.", math.Abs(s.PercentChange))
		}
		return p.Sprintf("Price is %.1f%% LOWER. A good time to buy.", math.Abs(s.PercentChange))
	case pricing.SignalStable:
		if l == Spanish {
			return p.Sprintf("Precio estable frente al periodo anterior (%+.1f%%).", s.PercentChange)
		}
		return p.Sprintf("Price is stable against the previous period (%+.1f%%).", s.PercentChange)
	default:
		return ""
	}
}
