// internal/report/html.go
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"time"
)

// The render stage consumes the composed document tree and produces the
// HTML handed to the headless browser. Styling lives entirely here; the
// tree stays markup-free.

var templateFuncs = template.FuncMap{
	"pct": func(rate float64) string {
		return fmt.Sprintf("%.0f%%", rate*100)
	},
	"dollars": func(amount float64) string {
		s := strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
		var out []byte
		for i, ch := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				out = append(out, ',')
			}
			out = append(out, ch)
		}
		return "$" + string(out)
	},
	"longDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"statusClass": func(status string) string {
		return "status-" + status
	},
}

var reportTemplate = template.Must(template.New("report").Funcs(templateFuncs).Parse(reportTemplateHTML))

// RenderHTML turns the document tree into a single self-contained HTML
// page.
func RenderHTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render report template: %w", err)
	}
	return buf.String(), nil
}

const reportTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1a2433; margin: 0; font-size: 13px; }
  .section { padding: 36px 48px; page-break-after: always; }
  .section:last-child { page-break-after: auto; }
  h1 { font-size: 30px; margin: 0 0 8px; }
  h2 { font-size: 21px; border-bottom: 2px solid #16518c; padding-bottom: 6px; }
  h3 { font-size: 15px; margin-bottom: 4px; }
  .cover { background: #16518c; color: #fff; min-height: 90vh; display: flex; flex-direction: column; justify-content: center; }
  .cover .peer { font-size: 15px; opacity: 0.85; margin-top: 12px; }
  .finding { border-left: 5px solid #9aa5b1; padding: 10px 16px; margin: 12px 0; background: #f5f7fa; }
  .finding.status-good { border-color: #2f8a4c; }
  .finding.status-warning { border-color: #d9912b; }
  .finding.status-alert { border-color: #c0392b; }
  .finding .label { font-weight: bold; }
  .finding .value { color: #52606d; }
  .stat-grid { display: flex; gap: 24px; margin: 16px 0; }
  .stat { flex: 1; background: #f5f7fa; padding: 14px; text-align: center; }
  .stat .num { font-size: 24px; font-weight: bold; color: #16518c; }
  table.dist { border-collapse: collapse; width: 60%; margin: 12px 0; }
  table.dist td, table.dist th { border: 1px solid #cbd2d9; padding: 6px 10px; text-align: left; }
  .rec { margin: 18px 0; padding: 14px 18px; border: 1px solid #cbd2d9; border-radius: 4px; }
  .rec .priority { display: inline-block; background: #16518c; color: #fff; padding: 2px 10px; border-radius: 10px; font-size: 11px; }
  .source { color: #7b8794; font-size: 11px; margin-top: 10px; }
  ul { margin: 6px 0; padding-left: 20px; }
</style>
</head>
<body>
{{range .Sections}}{{if eq .Kind "cover"}}
<div class="section cover">
  <h1>Credit Risk Benchmark Report</h1>
  <h2 style="border:none">{{.CompanyName}}</h2>
  {{if .ContactName}}<div>Prepared for {{.ContactName}}</div>{{end}}
  <div class="peer">Peer group: {{.PeerLabel}}</div>
  <div class="peer">{{longDate .Date}}</div>
</div>
{{else if eq .Kind "executive-summary"}}
<div class="section">
  <h2>Executive Summary</h2>
  <p>How {{.CompanyName}} compares with its peer group across four credit risk dimensions.</p>
  {{range .Findings}}
  <div class="finding {{statusClass .Status}}">
    <span class="label">{{.Label}}</span> <span class="value">{{.Value}}</span>
    <p>{{.Insight}}</p>
  </div>
  {{end}}
</div>
{{else if eq .Kind "industry-snapshot"}}
<div class="section">
  <h2>Industry Snapshot</h2>
  <p>Benchmark figures for {{.PeerLabel}}.</p>
  <div class="stat-grid">
    <div class="stat"><div class="num">{{pct .TCIAdoptionRate}}</div><div>use trade credit insurance</div></div>
    <div class="stat"><div class="num">{{.MedianDSO}} days</div><div>median DSO</div></div>
    <div class="stat"><div class="num">{{.AvgPaymentTerms}}</div><div>average payment terms</div></div>
    <div class="stat"><div class="num">{{pct .ExperienceRate}}</div><div>report bad debt losses</div></div>
  </div>
  <div class="source">Source: {{.Source}}</div>
</div>
{{else if eq .Kind "payment-terms"}}
<div class="section">
  <h2>Payment Terms Analysis</h2>
  <p>{{.Terms.Insight}}</p>
  <div class="stat-grid">
    <div class="stat"><div class="num">Net {{.Terms.UserTermDays}}</div><div>your standard terms</div></div>
    <div class="stat"><div class="num">Net {{.Terms.AvgTermDays}}</div><div>peer average</div></div>
    <div class="stat"><div class="num">{{.Terms.Difference}} days</div><div>difference</div></div>
  </div>
  <h3>How peers set their terms</h3>
  <table class="dist">
    <tr><th>Terms</th><th>Share of companies</th></tr>
    <tr><td>Net 15 or less</td><td>{{pct .Terms.Distribution.Net15OrLess}}</td></tr>
    <tr><td>Net 30</td><td>{{pct .Terms.Distribution.Net30}}</td></tr>
    <tr><td>Net 60</td><td>{{pct .Terms.Distribution.Net60}}</td></tr>
    <tr><td>Net 90</td><td>{{pct .Terms.Distribution.Net90}}</td></tr>
    <tr><td>Over Net 90</td><td>{{pct .Terms.Distribution.Over90}}</td></tr>
  </table>
  <div class="source">Source: {{.Terms.Source}}</div>
</div>
{{else if eq .Kind "bad-debt"}}
<div class="section">
  <h2>Bad Debt Analysis</h2>
  <p>{{.BadDebt.Insight}}</p>
  <div class="stat-grid">
    <div class="stat"><div class="num">{{pct .BadDebt.PeerExperienceRate}}</div><div>of peers report losses</div></div>
    <div class="stat"><div class="num">{{.BadDebt.PeerAvgLossRange}}</div><div>typical peer loss range</div></div>
    <div class="stat"><div class="num">{{pct .BadDebt.PeerAvgLossToSales}}</div><div>average loss to sales</div></div>
  </div>
  {{if gt .Savings.FiveYearSavings 0.0}}
  <h3>Potential savings with trade credit insurance</h3>
  <p>{{.Savings.Insight}}</p>
  <div class="stat-grid">
    <div class="stat"><div class="num">{{dollars .Savings.FiveYearSavings}}</div><div>estimated over five years</div></div>
    <div class="stat"><div class="num">{{dollars .Savings.AnnualSavings}}</div><div>annualized</div></div>
  </div>
  <div class="source">Source: {{.Savings.Source}}</div>
  {{end}}
  <div class="source">Source: {{.BadDebt.Source}}</div>
</div>
{{else if eq .Kind "tci-landscape"}}
<div class="section">
  <h2>Trade Credit Insurance Landscape</h2>
  <p>{{.TCI.Insight}}</p>
  <div class="stat-grid">
    <div class="stat"><div class="num">{{pct .TCI.PeerAdoptionRate}}</div><div>peer adoption rate</div></div>
    <div class="stat"><div class="num">{{pct .ReductionRate}}</div><div>average bad debt reduction when insured</div></div>
    <div class="stat"><div class="num">{{pct .AdoptedTCIRate}}</div><div>of peers adopted cover after a loss</div></div>
  </div>
  {{if .Note}}<p>{{.Note}}</p>{{end}}
  <div class="source">Source: {{.TCI.Source}}</div>
</div>
{{else if eq .Kind "recommendations"}}
<div class="section">
  <h2>Recommendations</h2>
  <p>{{.Risk.Insight}}</p>
  {{if not .Recommendations}}<p>Your current practices align with your peer group; no priority actions identified.</p>{{end}}
  {{range .Recommendations}}
  <div class="rec">
    <span class="priority">Priority {{.Priority}}</span>
    <h3>{{.Title}}</h3>
    <ul>{{range .Why}}<li>{{.}}</li>{{end}}</ul>
    {{if .PotentialImpact}}<p><strong>Potential impact:</strong> {{.PotentialImpact}}</p>{{end}}
    {{if .NextSteps}}<h3>Next steps</h3><ul>{{range .NextSteps}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{if .Considerations}}<h3>Considerations</h3><ul>{{range .Considerations}}<li>{{.}}</li>{{end}}</ul>{{end}}
    <div class="source">Source: {{.Source}}</div>
  </div>
  {{end}}
</div>
{{else if eq .Kind "appendix"}}
<div class="section">
  <h2>Appendix: Sources &amp; Methodology</h2>
  <p>Benchmark dataset version {{.DatasetVersion}}, last updated {{.DatasetUpdated}}.</p>
  <ul>
    {{range .Citations}}
    <li><strong>{{.Title}}</strong>, {{.Organization}}, {{.Date}}. {{.URL}}</li>
    {{end}}
  </ul>
</div>
{{end}}{{end}}
</body>
</html>`
