package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/naka-gawa/github-activities/internal/domain"
	"github.com/naka-gawa/github-activities/internal/usecase"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var htmlTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// rankingSize is the number of users shown per ranking section in the
// comparison report.
const rankingSize = 2

// chartColors are cycled through the users of a comparison chart.
var chartColors = []string{
	"#007bff", "#28a745", "#ffc107", "#dc3545",
	"#6610f2", "#fd7e14", "#20c997", "#e83e8c",
}

// HTMLReporter renders single-user and comparison reports as standalone
// HTML pages with embedded Chart.js data.
type HTMLReporter struct {
	JPWeekFormat bool
	Lang         usecase.Language

	// now is swappable for deterministic output in tests.
	now func() time.Time
}

// NewHTMLReporter creates an HTML reporter for the given display options.
func NewHTMLReporter(jpWeekFormat bool, lang usecase.Language) *HTMLReporter {
	return &HTMLReporter{
		JPWeekFormat: jpWeekFormat,
		Lang:         lang,
		now:          time.Now,
	}
}

func (h *HTMLReporter) displayPeriods(keys []domain.PeriodKey) []string {
	labels := make([]string, len(keys))
	for i, key := range keys {
		if h.JPWeekFormat {
			labels[i] = domain.WeekStartDisplay(key)
		} else {
			labels[i] = string(key)
		}
	}
	return labels
}

func seriesKeys(s domain.Series) []domain.PeriodKey {
	keys := make([]domain.PeriodKey, len(s))
	for i, p := range s {
		keys[i] = p.Period
	}
	return keys
}

func seriesValues(s domain.Series) []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

type chartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func (h *HTMLReporter) chart(s domain.Series) chartData {
	return chartData{
		Labels: h.displayPeriods(seriesKeys(s)),
		Values: seriesValues(s),
	}
}

type reportView struct {
	Report      domain.UserActivityReport
	L           labels
	Charts      template.JS
	Narratives  []string
	GeneratedAt string
}

// WriteReport renders the single-user HTML report.
func (h *HTMLReporter) WriteReport(w io.Writer, report domain.UserActivityReport) error {
	charts := make(map[string]chartData)
	var narratives []string
	if agg := report.Aggregated; agg != nil {
		l := reportLabels(h.Lang)
		charts["commits"] = h.chart(agg.Commits)
		charts["pull_requests"] = h.chart(agg.PullRequests)
		charts["issues"] = h.chart(agg.Issues)
		charts["reviews"] = h.chart(agg.Reviews)
		charts["total_contributions"] = h.chart(agg.TotalContributions)
		charts["code_changes"] = h.chart(agg.CodeChanges)

		narratives = []string{
			usecase.AnalyzeTrend(agg.Commits, l.Commits, h.Lang).Narrative,
			usecase.AnalyzeTrend(agg.PullRequests, l.PullRequests, h.Lang).Narrative,
			usecase.AnalyzeTrend(agg.TotalContributions, l.TotalContributions, h.Lang).Narrative,
		}
	}
	chartJSON, err := json.Marshal(charts)
	if err != nil {
		return fmt.Errorf("failed to marshal chart data: %w", err)
	}

	view := reportView{
		Report:      report,
		L:           reportLabels(h.Lang),
		Charts:      template.JS(chartJSON),
		Narratives:  narratives,
		GeneratedAt: h.now().Format("2006-01-02 15:04:05"),
	}
	if err := htmlTemplates.ExecuteTemplate(w, "report.html.tmpl", view); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

type comparisonUserView struct {
	domain.UserComparison
	Color     string
	Narrative string
}

type comparisonDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Color string    `json:"color"`
}

type comparisonView struct {
	Comparison  domain.Comparison
	Users       []comparisonUserView
	L           labels
	LangAttr    string
	Labels      []string
	Datasets    template.JS
	Rankings    []rankingView
	GeneratedAt string
}

type rankingView struct {
	Title string
	Users []domain.UserComparison
}

// WriteComparison renders the multi-user comparison HTML report.
func (h *HTMLReporter) WriteComparison(w io.Writer, cmp domain.Comparison) error {
	l := reportLabels(h.Lang)

	users := make([]comparisonUserView, len(cmp.Users))
	datasets := make([]comparisonDataset, len(cmp.Users))
	for i, u := range cmp.Users {
		color := chartColors[i%len(chartColors)]
		users[i] = comparisonUserView{
			UserComparison: u,
			Color:          color,
			Narrative:      usecase.AnalyzeTrend(u.AlignedContributions, u.User.DisplayName(), h.Lang).Narrative,
		}
		datasets[i] = comparisonDataset{
			Label: u.User.DisplayName(),
			Data:  seriesValues(u.AlignedContributions),
			Color: color,
		}
	}

	datasetJSON, err := json.Marshal(datasets)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison chart data: %w", err)
	}

	langAttr := "en"
	if h.Lang == usecase.LangJapanese {
		langAttr = "ja"
	}

	view := comparisonView{
		Comparison: cmp,
		Users:      users,
		L:          l,
		LangAttr:   langAttr,
		Labels:     h.displayPeriods(cmp.Periods),
		Datasets:   template.JS(datasetJSON),
		Rankings: []rankingView{
			{Title: l.TopByContributions, Users: usecase.TopUsersBy(cmp.Users, rankingSize, usecase.ByTotalContributions)},
			{Title: l.TopByDailyAvg, Users: usecase.TopUsersBy(cmp.Users, rankingSize, usecase.ByDailyAvgActivity)},
			{Title: l.TopByPullRequests, Users: usecase.TopUsersBy(cmp.Users, rankingSize, usecase.ByPullRequests)},
			{Title: l.TopByDailyAvgPR, Users: usecase.TopUsersBy(cmp.Users, rankingSize, usecase.ByDailyAvgPullRequests)},
		},
		GeneratedAt: h.now().Format("2006-01-02 15:04:05"),
	}
	if err := htmlTemplates.ExecuteTemplate(w, "comparison.html.tmpl", view); err != nil {
		return fmt.Errorf("failed to render comparison report: %w", err)
	}
	return nil
}

// labels holds the localized strings used by the HTML templates.
type labels struct {
	ReportTitle         string
	ComparisonTitle     string
	ComparisonSubtitle  string
	ActivityPeriod      string
	Commits             string
	PullRequests        string
	Issues              string
	Reviews             string
	TotalContributions  string
	CodeChanges         string
	ActivityTrends      string
	DailyAverage        string
	Share               string
	Performance         string
	Rankings            string
	TopByContributions  string
	TopByDailyAvg       string
	TopByPullRequests   string
	TopByDailyAvgPR     string
	GeneratedBy         string
}

func reportLabels(lang usecase.Language) labels {
	if lang == usecase.LangJapanese {
		return labels{
			ReportTitle:         "GitHub アクティビティレポート",
			ComparisonTitle:     "GitHub 貢献比較",
			ComparisonSubtitle:  "複数ユーザーの貢献活動を比較",
			ActivityPeriod:      "活動期間",
			Commits:             "コミット",
			PullRequests:        "プルリクエスト",
			Issues:              "イシュー",
			Reviews:             "レビュー",
			TotalContributions:  "総貢献数",
			CodeChanges:         "コード変更",
			ActivityTrends:      "活動の傾向",
			DailyAverage:        "1日平均",
			Share:               "割合",
			Performance:         "パフォーマンス",
			Rankings:            "ランキング",
			TopByContributions:  "総貢献数トップ",
			TopByDailyAvg:       "1日平均活動トップ",
			TopByPullRequests:   "プルリクエスト数トップ",
			TopByDailyAvgPR:     "1日平均プルリクエストトップ",
			GeneratedBy:         "GitHub Activities Tracker により生成",
		}
	}
	return labels{
		ReportTitle:         "GitHub Activity Report",
		ComparisonTitle:     "GitHub Contributions Comparison",
		ComparisonSubtitle:  "Comparing contributions across multiple users",
		ActivityPeriod:      "Activity Period",
		Commits:             "Commits",
		PullRequests:        "Pull Requests",
		Issues:              "Issues",
		Reviews:             "Reviews",
		TotalContributions:  "Total Contributions",
		CodeChanges:         "Code Changes",
		ActivityTrends:      "Activity Trends",
		DailyAverage:        "Daily Average",
		Share:               "Share",
		Performance:         "Performance",
		Rankings:            "Rankings",
		TopByContributions:  "Top by Total Contributions",
		TopByDailyAvg:       "Top by Daily Average Activity",
		TopByPullRequests:   "Top by Pull Requests",
		TopByDailyAvgPR:     "Top by Daily Average PRs",
		GeneratedBy:         "Generated by GitHub Activities Tracker",
	}
}
