package report

import (
	"Loudspeaker/internal/calc/crossover"
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/calc/registry"
	"Loudspeaker/internal/i18n"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/message"
)

type Input struct {
	Calculator string          `json:"calculator"`
	Project    string          `json:"project"`
	Author     string          `json:"author"`
	Title      string          `json:"title"`
	Notes      string          `json:"notes"`
	Inputs     reactive.Fields `json:"inputs"`
}

// Options control page text. FontFile names a UTF-8 TrueType font; without
// one only Latin text renders, so callers pass an English printer.
type Options struct {
	Printer  *message.Printer
	FontFile string
	Now      time.Time
}

// Build evaluates the calculator named in in and lays out a one-document
// report of its inputs, results and errors.
func Build(in Input, opt Options) (*gofpdf.Fpdf, error) {
	calc, err := registry.Lookup(in.Calculator)
	if err != nil {
		return nil, err
	}
	res, issues := calc.Evaluate(in.Inputs)
	p := opt.Printer
	if p == nil {
		p = i18n.Printer("en")
	}
	if in.Title == "" {
		in.Title = p.Sprintf(calc.Title)
	}
	if opt.Now.IsZero() {
		opt.Now = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if opt.FontFile != "" {
		family = "report"
		pdf.AddUTF8Font(family, "", opt.FontFile)
		pdf.AddUTF8Font(family, "B", opt.FontFile)
		tr = func(s string) string { return s }
	}
	doc := &writer{pdf: pdf, family: family, tr: tr}

	pdf.AddPage()
	pdf.SetFont(family, "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont(family, "", 11)
	doc.line(p.Sprintf("Project: %s", in.Project))
	doc.line(p.Sprintf("Author: %s", in.Author))
	doc.line(p.Sprintf("Date: %s", opt.Now.Format("2006-01-02")))
	pdf.Ln(4)
	if in.Notes != "" {
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
		pdf.Ln(4)
	}

	doc.heading(p.Sprintf("Inputs"))
	for _, k := range sortedKeys(in.Inputs) {
		if in.Inputs[k] != "" {
			doc.pair(k, in.Inputs[k])
		}
	}

	doc.heading(p.Sprintf("Results"))
	if cr, ok := res.(*crossover.Result); ok && cr != nil {
		doc.crossover(cr, p)
	} else if err := doc.results(res, p); err != nil {
		return nil, err
	}

	if msgs := issues.Messages(p); len(msgs) > 0 {
		doc.heading(p.Sprintf("Errors"))
		for _, k := range sortedKeys(msgs) {
			doc.pair(k, msgs[k])
		}
	}
	return pdf, pdf.Error()
}

type writer struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

func (w *writer) line(s string) {
	w.pdf.Cell(0, 6, w.tr(s))
	w.pdf.Ln(6)
}

func (w *writer) heading(s string) {
	w.pdf.Ln(2)
	w.pdf.SetFont(w.family, "B", 12)
	w.line(s)
	w.pdf.SetFont(w.family, "", 10)
}

func (w *writer) pair(k, v string) {
	w.pdf.CellFormat(60, 6, w.tr(k), "", 0, "L", false, 0, "")
	w.pdf.CellFormat(0, 6, w.tr(v), "", 1, "L", false, 0, "")
}

func (w *writer) crossover(r *crossover.Result, p *message.Printer) {
	w.pair("levelDifferenceDB", format(r.LevelDifferenceDB))
	for _, n := range r.Networks {
		w.pdf.SetFont(w.family, "B", 10)
		w.line(fmt.Sprintf("%s %s", n.Type, n.Order))
		w.pdf.SetFont(w.family, "", 10)
		for _, d := range []struct {
			label string
			c     crossover.Components
		}{{p.Sprintf("Woofer"), n.Woofer}, {p.Sprintf("Tweeter"), n.Tweeter}} {
			w.pair(d.label+" "+p.Sprintf("Capacitors")+" (µF)", formatAll(d.c.Capacitors))
			w.pair(d.label+" "+p.Sprintf("Inductors")+" (mH)", formatAll(d.c.Inductors))
		}
	}
}

// results renders any calculator result through its JSON form: scalars as
// key/value pairs, lists of points as tables.
func (w *writer) results(res any, p *message.Printer) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return err
	}
	m, ok := tree.(map[string]any)
	if !ok {
		w.line(p.Sprintf("not available"))
		return nil
	}
	var tables []string
	for _, k := range sortedKeys(m) {
		if rows, ok := m[k].([]any); ok && len(rows) > 0 {
			tables = append(tables, k)
			continue
		}
		w.flatten(k, m[k], p)
	}
	for _, k := range tables {
		w.table(k, m[k].([]any))
	}
	return nil
}

func (w *writer) flatten(prefix string, v any, p *message.Printer) {
	switch v := v.(type) {
	case nil:
		w.pair(prefix, p.Sprintf("not available"))
	case float64:
		w.pair(prefix, format(v))
	case map[string]any:
		for _, k := range sortedKeys(v) {
			w.flatten(prefix+"."+k, v[k], p)
		}
	case []any:
		for i, e := range v {
			w.flatten(prefix+"["+strconv.Itoa(i)+"]", e, p)
		}
	default:
		w.pair(prefix, fmt.Sprint(v))
	}
}

func (w *writer) table(title string, rows []any) {
	first, ok := rows[0].(map[string]any)
	if !ok {
		return
	}
	cols := sortedKeys(first)
	w.heading(title)
	width := 180 / float64(len(cols))
	w.pdf.SetFont(w.family, "B", 9)
	for _, c := range cols {
		w.pdf.CellFormat(width, 6, w.tr(c), "1", 0, "C", false, 0, "")
	}
	w.pdf.Ln(-1)
	w.pdf.SetFont(w.family, "", 9)
	for _, r := range rows {
		row, _ := r.(map[string]any)
		for _, c := range cols {
			s := ""
			if f, ok := row[c].(float64); ok {
				s = format(f)
			}
			w.pdf.CellFormat(width, 5, s, "1", 0, "R", false, 0, "")
		}
		w.pdf.Ln(-1)
	}
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatAll(vs []float64) string {
	if len(vs) == 0 {
		return "-"
	}
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += ", "
		}
		s += format(v)
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
