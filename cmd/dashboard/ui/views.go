package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/dashboard_summary"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/list_brands"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/program_board"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/program_detail"
	"github.com/light-bringer/incentive-tracker/internal/pkg/format"
	"github.com/light-bringer/incentive-tracker/internal/services"
)

// Empty-state messages.
const (
	NoBrands        = "No brands found."
	NoPrograms      = "No programs found."
	NoStagePrograms = "No programs in this stage."
	NoEvents        = "No changes recorded."
)

// Renderer turns query results into terminal text.
type Renderer struct {
	Styles Styles
	Format *format.Formatter
}

// NewRenderer creates a Renderer with the default styles.
func NewRenderer(f *format.Formatter) *Renderer {
	return &Renderer{Styles: DefaultStyles(), Format: f}
}

func (r *Renderer) kpi(label, value string) string {
	return r.Styles.Box.Width(22).Render(
		r.Styles.Muted.Render(label) + "\n" + r.Styles.Bold.Render(value),
	)
}

// Summary renders the KPI cards and the per-brand reward chart.
func (r *Renderer) Summary(s *dashboard_summary.Summary) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		r.kpi("Total Rewards", r.Format.Currency(s.TotalRewards)),
		r.kpi("Total Programs", fmt.Sprint(s.TotalPrograms)),
		r.kpi("Active Programs", fmt.Sprint(s.ActivePrograms)),
	)

	if len(s.PerBrandTotals) == 0 {
		return cards + "\n" + r.Styles.Muted.Render(NoBrands) + "\n"
	}

	chart := &BarChart{Title: "Rewards by Brand", FormatValue: r.Format.CompactThousands}
	for _, bt := range s.PerBrandTotals {
		chart.Bars = append(chart.Bars, Bar{Label: bt.BrandName, Value: bt.TotalReward})
	}
	return cards + "\n\n" + chart.View(r.Styles)
}

// Brands renders the brand table with program counts.
func (r *Renderer) Brands(resp *list_brands.Response) string {
	t := NewTable("Brands", "ID", "Name", "Programs", "Created")
	t.Empty = NoBrands
	for _, b := range resp.Brands {
		t.AddRow(b.ID, b.Name, fmt.Sprint(resp.ProgramCounts[b.ID]), format.Date(b.CreatedAt))
	}
	return t.View(r.Styles)
}

// Programs renders the program table.
func (r *Renderer) Programs(programs []domain.ProgramWithBrand) string {
	t := NewTable("Programs", "ID", "Brand", "Type", "Period", "Target", "Achievement", "Est. Reward", "Status", "Payment")
	t.Empty = NoPrograms
	for _, p := range programs {
		t.AddRow(
			p.ID,
			p.BrandName,
			string(p.Type),
			format.Period(p.PeriodStart, p.PeriodEnd),
			fmt.Sprintf("%.0f", p.Target),
			fmt.Sprintf("%.0f (%s)", p.Achievement, r.Format.Percent(p.AchievementRatio())),
			r.Format.Currency(p.EstimatedReward()),
			r.Styles.StatusBadge(string(p.Status)),
			r.Styles.StatusBadge(string(p.PaymentStatus)),
		)
	}
	return t.View(r.Styles)
}

func (r *Renderer) card(c program_board.Card) string {
	lines := []string{
		r.Styles.Bold.Render(c.BrandName) + " " + r.Styles.Muted.Render(c.ID),
		string(c.Type) + " · " + r.Styles.StatusBadge(string(c.PaymentStatus)),
		format.Period(c.PeriodStart, c.PeriodEnd),
		"Achievement " + r.Format.Percent(c.Metrics.AchievementPct),
		ProgressBar(r.Styles, c.Metrics.AchievementPct, 20),
		"Elapsed " + r.Format.Percent(c.Metrics.ElapsedPct),
		ProgressBar(r.Styles, c.Metrics.ElapsedPct, 20),
		"Est. " + r.Format.CurrencyWhole(c.Metrics.EstimatedReward),
	}
	return r.Styles.Box.Width(26).Render(strings.Join(lines, "\n"))
}

// Board renders one column per status.
func (r *Renderer) Board(columns []program_board.Column) string {
	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		parts := []string{r.Styles.Title.Render(fmt.Sprintf("%s (%d)", col.Status, len(col.Cards)))}
		if len(col.Cards) == 0 {
			parts = append(parts, r.Styles.Muted.Width(28).Render(NoStagePrograms))
		}
		for _, c := range col.Cards {
			parts = append(parts, r.card(c))
		}
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left, parts...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

// ProgramDetail renders a single program.
func (r *Renderer) ProgramDetail(d *program_detail.Detail) string {
	rows := [][2]string{
		{"Brand", d.BrandName},
		{"Type", string(d.Type)},
		{"Description", d.Description},
		{"Period", format.LongDate(d.PeriodStart) + " - " + format.LongDate(d.PeriodEnd)},
		{"Target", fmt.Sprintf("%.0f", d.Target)},
		{"Achievement", fmt.Sprintf("%.0f (%s)", d.Achievement, r.Format.Percent(d.Metrics.AchievementPct))},
		{"Elapsed", r.Format.Percent(d.Metrics.ElapsedPct)},
		{"Reward per unit", r.Format.Currency(d.Reward)},
		{"Estimated reward", r.Format.Currency(d.Metrics.EstimatedReward)},
		{"Status", r.Styles.StatusBadge(string(d.Status))},
		{"Payment", r.Styles.StatusBadge(string(d.PaymentStatus))},
	}

	key := r.Styles.Muted.Width(18)
	var sb strings.Builder
	sb.WriteString(r.Styles.Title.Render("Program " + d.ID))
	for _, row := range rows {
		sb.WriteString("\n" + key.Render(row[0]) + row[1])
	}
	return r.Styles.Box.Render(sb.String()) + "\n"
}

// Events renders the change log.
func (r *Renderer) Events(events []memdb.ChangeEvent) string {
	t := NewTable("Changes", "When", "Event", "Record", "Message")
	t.Empty = NoEvents
	for _, e := range events {
		t.AddRow(e.CreatedAt.Format("2006-01-02 15:04:05"), e.Title, e.AggregateID, e.Message)
	}
	return t.View(r.Styles)
}

// ApplyResults renders one line per change, with field errors under rejected
// records.
func (r *Renderer) ApplyResults(results []services.ChangeResult) string {
	var sb strings.Builder
	for _, res := range results {
		label := fmt.Sprintf("#%d %s %s", res.Index+1, res.Op, res.ID)
		if res.Err == nil {
			line := r.Styles.Success.Render("✓ ") + label
			if res.Detail != "" {
				line += r.Styles.Muted.Render(" (" + res.Detail + ")")
			}
			sb.WriteString(line + "\n")
			continue
		}

		sb.WriteString(r.Styles.Danger.Render("✗ ") + label + "\n")
		var ve domain.ValidationErrors
		if errors.As(res.Err, &ve) {
			for _, fe := range ve {
				sb.WriteString(r.Styles.Muted.Render("    "+fe.Field+": ") + fe.Message + "\n")
			}
			continue
		}
		sb.WriteString(r.Styles.Muted.Render("    "+res.Err.Error()) + "\n")
	}
	return sb.String()
}
