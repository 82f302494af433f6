package render

import (
	"bytes"
	"html/template"
	"strings"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #000000;
      background: #f7f9fc;
      -webkit-font-smoothing: antialiased;
    }
    .invoice-card {
      background: #ffffff;
      max-width: 760px;
      margin: 0 auto;
      padding: 48px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    .header {
      display: flex;
      justify-content: space-between;
      margin-bottom: 40px;
    }
    .header-left h1 {
      margin: 0 0 8px;
      font-size: 26px;
      font-weight: 700;
    }
    .header-left p {
      margin: 2px 0;
      font-size: 13px;
      color: #4b5563;
    }
    .services {
      list-style: none;
      margin: 0;
      padding: 0;
      text-align: right;
      font-size: 13px;
      font-weight: 600;
    }
    .services li { margin-bottom: 4px; }
    .parties {
      display: flex;
      justify-content: space-between;
      margin-bottom: 40px;
    }
    .parties h3 {
      margin: 0 0 8px;
      font-size: 16px;
    }
    .bill-to {
      border-bottom: 1px solid #000000;
      padding-bottom: 8px;
      min-width: 260px;
      white-space: pre-line;
    }
    .bill-to .addr { font-size: 13px; margin-top: 8px; }
    .proprietor { text-align: right; }
    .proprietor .name, .proprietor .phone { font-weight: 700; }
    .proprietor .addr {
      font-size: 13px;
      margin-top: 8px;
      white-space: pre-line;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: 30px;
    }
    th {
      text-align: left;
      font-size: 13px;
      border-bottom: 2px solid #000000;
      padding: 8px 0;
    }
    th.num, td.num { text-align: center; }
    th.last, td.last { text-align: right; }
    td {
      padding: 10px 0;
      border-bottom: 1px solid #d1d5db;
      font-size: 14px;
      vertical-align: top;
    }
    .pieces { font-size: 12px; color: #4b5563; }
    .totals {
      display: flex;
      justify-content: space-between;
      align-items: flex-end;
    }
    .totals h3 { margin: 0; font-size: 16px; }
    .total-amount {
      font-size: 30px;
      font-weight: 700;
      margin-top: 8px;
      text-align: right;
    }
    .annotation {
      margin-top: 32px;
      padding: 16px;
      background: #f9fafb;
      border-radius: 4px;
    }
    .annotation h4 {
      margin: 0 0 8px;
      font-size: 13px;
      color: #dc2626;
    }
    .annotation p {
      margin: 0;
      font-size: 11px;
      color: #4b5563;
    }
  </style>
</head>
<body>
  <div class="invoice-card">
    <div class="header">
      <div class="header-left">
        <h1>{{.BusinessName}}</h1>
        <p>{{.Date}}</p>
        <p>Invoice No. {{.InvoiceNumber}}</p>
      </div>
      <ul class="services">
        {{range .Services}}<li>&bull; {{.}}</li>
        {{end}}
      </ul>
    </div>

    <div class="parties">
      <div>
        <h3>BILL TO:</h3>
        <div class="bill-to">
          <p>{{.BillToName}}</p>
          <p class="addr">{{.BillToAddress}}</p>
        </div>
      </div>
      <div class="proprietor">
        <h3>PROPRIETAR:</h3>
        <p class="name">{{.ProprietorName}}</p>
        <p class="phone">{{.OwnerPhone}}</p>
        <p class="addr">{{.OwnerAddress}}</p>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th style="width: 50%;">DESCRIPTION</th>
          <th class="num">PRICE</th>
          <th class="num">QTY</th>
          <th class="last">SUBTOTAL</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>
            <div>{{.Description}}</div>
            <div class="pieces">{{.Pieces}}</div>
          </td>
          <td class="num">{{.UnitPrice}}</td>
          <td class="num">{{.Quantity}}</td>
          <td class="last">{{.Subtotal}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <h3>SUBTOTAL</h3>
      <div>
        <h3>TOTALS</h3>
        <div class="total-amount">{{.Total}}</div>
      </div>
    </div>

    {{if .AnnotationTitle}}
    <div class="annotation">
      <h4>{{.AnnotationTitle}}</h4>
      <p>{{.AnnotationBody}}</p>
    </div>
    {{end}}
  </div>
</body>
</html>
`

// Renderer turns a Layout into a standalone HTML page for the preview surface.
type Renderer interface {
	RenderHTML(layout Layout) (string, error)
}

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(layout Layout) (string, error) {
	if strings.TrimSpace(layout.BusinessName) == "" {
		layout.BusinessName = "Invoice"
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, layout); err != nil {
		return "", err
	}

	return buf.String(), nil
}
