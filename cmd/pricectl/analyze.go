package main

import (
	"fmt"
	"io"
	"time"

	"agroledger/internal/display"
	"agroledger/internal/pricing"
	"agroledger/internal/service"

	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var (
		product      string
		from, to     string
		yearA, yearB int
		lang         string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run every price analysis for one product",
		Long: `Forecast the next purchase price, find the cheapest weekday, detect
seasonal months and compare two years for one product.

Examples:
  pricectl analyze --product Plátano
  pricectl analyze --product Plátano --from 2025-01-01 --to 2026-12-31 --lang es
  pricectl analyze --product Papaya --year-a 2024 --year-b 2025`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			now := time.Now()
			if yearB == 0 {
				yearB = now.Year()
			}
			if yearA == 0 {
				yearA = yearB - 1
			}

			svc, err := openServices()
			if err != nil {
				return err
			}

			var overview service.PriceOverview
			if from == "" && to == "" {
				overview, err = svc.prices.Overview(ctx, product)
			} else {
				start, end, rangeErr := parseRange(from, to, now)
				if rangeErr != nil {
					return rangeErr
				}
				overview, err = svc.prices.OverviewRange(ctx, product, start, end)
			}
			if err != nil {
				return err
			}

			comparison, err := svc.prices.ComparePeriods(ctx, product, yearA, yearB)
			if err != nil {
				return err
			}

			renderAnalysis(cmd.OutOrStdout(), display.MatchLocale(lang), overview, comparison)
			return nil
		},
	}

	cmd.Flags().StringVarP(&product, "product", "p", "", "Product name (exact match)")
	cmd.Flags().StringVar(&from, "from", "", "First day of history to analyze (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of history to analyze (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&yearA, "year-a", 0, "Reference year for the comparison (default last year)")
	cmd.Flags().IntVar(&yearB, "year-b", 0, "Compared year (default this year)")
	cmd.Flags().StringVar(&lang, "lang", "en", "Output language (en, es)")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

// parseRange reads --from/--to; a missing end means today and a missing
// start means one year before the end.
func parseRange(from, to string, now time.Time) (time.Time, time.Time, error) {
	end := pricing.Day(now)
	if to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to %q: expected YYYY-MM-DD", to)
		}
		end = t
	}
	start := end.AddDate(-1, 0, 0)
	if from != "" {
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from %q: expected YYYY-MM-DD", from)
		}
		start = t
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %s is before --from %s", end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return start, end, nil
}

func renderAnalysis(w io.Writer, l display.Locale, o service.PriceOverview, cmp service.PeriodComparison) {
	t := labelsFor(l)

	header := titleStyle.Render(o.Product)
	if o.FirstDate != nil && o.LastDate != nil {
		header += mutedStyle.Render(fmt.Sprintf("  %d %s, %s → %s", o.ObservationCount, t.observations,
			o.FirstDate.Format(time.DateOnly), o.LastDate.Format(time.DateOnly)))
	}
	fmt.Fprintln(w, boxStyle.Render(header))

	// Forecast
	fmt.Fprintln(w, sectionStyle.Render(t.forecast))
	if f := o.Forecast; f.Available {
		fmt.Fprintln(w, row(t.estimate, display.Money(l, f.EstimatedPrice)+"/kg"))
		fmt.Fprintln(w, row(t.rangeLabel, display.Money(l, f.RangeLow)+" - "+display.Money(l, f.RangeHigh)))
		fmt.Fprintln(w, row(t.confidence, fmt.Sprintf("%.0f%%", f.ConfidencePercent)))
		fmt.Fprintln(w, row(t.trend, trendLabel(f)))
		fmt.Fprintln(w, adviceStyle.Render(display.ForecastAdvice(l, f)))
	} else {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(t.notEnough, pricing.MinForecastObservations)))
	}

	// Best weekday
	fmt.Fprintln(w, sectionStyle.Render(t.bestDay))
	if b := o.BestDay; b.Available {
		fmt.Fprintln(w, row(t.cheapest, display.WeekdayName(l, b.BestDay)+"  "+display.Money(l, b.MeanPriceByDay[b.BestDay])))
		fmt.Fprintln(w, row(t.priciest, display.WeekdayName(l, b.WorstDay)+"  "+display.Money(l, b.MeanPriceByDay[b.WorstDay])))
		fmt.Fprintln(w, adviceStyle.Render(display.WeekdayAdvice(l, b)))
	} else {
		fmt.Fprintln(w, mutedStyle.Render(t.noWeekday))
	}

	// Seasonality
	fmt.Fprintln(w, sectionStyle.Render(t.seasonality))
	if s := o.Seasonality; s.Detected {
		fmt.Fprintln(w, adviceStyle.Render(display.SeasonalAdvice(l, s)))
	} else {
		fmt.Fprintln(w, mutedStyle.Render(t.noSeason))
	}

	// Year comparison
	fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("%s %d → %d", t.comparison, cmp.YearA, cmp.YearB)))
	if len(cmp.Buckets) == 0 {
		fmt.Fprintln(w, mutedStyle.Render(t.noComparison))
		return
	}
	for _, b := range cmp.Buckets {
		label := fmt.Sprintf("%s, %s %d", display.MonthName(l, b.Month), t.week, b.WeekOfMonth)
		fmt.Fprintln(w, row(label, fmt.Sprintf("%-10s %-10s %s",
			moneyOrDash(l, b.PriceA), moneyOrDash(l, b.PriceB), changeLabel(b))))
	}
	if advice := display.SignalAdvice(l, cmp.Summary); advice != "" {
		fmt.Fprintln(w, adviceStyle.Render(advice))
	}
}

func moneyOrDash(l display.Locale, amount float64) string {
	if amount == 0 {
		return "-"
	}
	return display.Money(l, amount)
}

func trendLabel(f pricing.ForecastResult) string {
	label := fmt.Sprintf("%s (%+.1f%%)", f.Trend, f.PercentChange)
	switch f.Trend {
	case pricing.TrendRising:
		return upStyle.Render(label)
	case pricing.TrendFalling:
		return downStyle.Render(label)
	default:
		return label
	}
}

func changeLabel(b pricing.BucketComparison) string {
	if b.PriceA == 0 || b.PriceB == 0 {
		return ""
	}
	label := fmt.Sprintf("%+.1f%%", b.PercentChange)
	if b.PercentChange > 0 {
		return upStyle.Render(label)
	}
	if b.PercentChange < 0 {
		return downStyle.Render(label)
	}
	return label
}

type sectionLabels struct {
	observations string
	forecast     string
	estimate     string
	rangeLabel   string
	confidence   string
	trend        string
	notEnough    string
	bestDay      string
	cheapest     string
	priciest     string
	noWeekday    string
	seasonality  string
	noSeason     string
	comparison   string
	week         string
	noComparison string
}

var labels = map[display.Locale]sectionLabels{
	display.English: {
		observations: "observations",
		forecast:     "Forecast",
		estimate:     "Estimated price",
		rangeLabel:   "Range",
		confidence:   "Confidence",
		trend:        "Trend",
		notEnough:    "At least %d purchases are needed for a forecast.",
		bestDay:      "Best day to buy",
		cheapest:     "Cheapest",
		priciest:     "Most expensive",
		noWeekday:    "Not enough purchases per weekday yet.",
		seasonality:  "Seasonality",
		noSeason:     "No seasonal pattern detected.",
		comparison:   "Comparison",
		week:         "week",
		noComparison: "No purchases in either year.",
	},
	display.Spanish: {
		observations: "observaciones",
		forecast:     "Pronóstico",
		estimate:     "Precio estimado",
		rangeLabel:   "Rango",
		confidence:   "Confianza",
		trend:        "Tendencia",
		notEnough:    "Se necesitan al menos %d compras para pronosticar.",
		bestDay:      "Mejor día para comprar",
		cheapest:     "Más barato",
		priciest:     "Más caro",
		noWeekday:    "Aún no hay suficientes compras por día de la semana.",
		seasonality:  "Estacionalidad",
		noSeason:     "No se detecta un patrón estacional.",
		comparison:   "Comparación",
		week:         "semana",
		noComparison: "Sin compras en ninguno de los dos años.",
	},
}

func labelsFor(l display.Locale) sectionLabels {
	if t, ok := labels[l]; ok {
		return t
	}
	return labels[display.English]
}
