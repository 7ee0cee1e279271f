// Package templatemethod demonstrates the Template Method pattern: the
// report generator fixes the step order (gather, compute, format,
// print) while each report type supplies its own steps.
package templatemethod

import (
	"fmt"
	"io"
)

// ReportSteps are the variable steps a concrete report implements.
type ReportSteps interface {
	GatherData()
	ComputeMetrics()
	FormatReport()
}

// Generator owns the fixed skeleton.
type Generator struct {
	out io.Writer
}

// NewGenerator returns a generator printing the shared steps to out.
func NewGenerator(out io.Writer) *Generator {
	return &Generator{out: out}
}

// Generate runs the report steps in the fixed order and finishes with
// the shared print step.
func (g *Generator) Generate(steps ReportSteps) {
	steps.GatherData()
	steps.ComputeMetrics()
	steps.FormatReport()
	fmt.Fprintln(g.out, "printing the report")
}

// ProfitAndLoss is the P&L variant of the report steps.
type ProfitAndLoss struct {
	out io.Writer
}

// NewProfitAndLoss returns P&L steps printing to out.
func NewProfitAndLoss(out io.Writer) *ProfitAndLoss {
	return &ProfitAndLoss{out: out}
}

func (r *ProfitAndLoss) GatherData() {
	fmt.Fprintln(r.out, "gathering data for profit and loss report")
}

func (r *ProfitAndLoss) ComputeMetrics() {
	fmt.Fprintln(r.out, "computing metrics for profit and loss report")
}

func (r *ProfitAndLoss) FormatReport() {
	fmt.Fprintln(r.out, "formatting profit and loss report")
}

// BalanceSheet is the balance-sheet variant of the report steps.
type BalanceSheet struct {
	out io.Writer
}

// NewBalanceSheet returns balance-sheet steps printing to out.
func NewBalanceSheet(out io.Writer) *BalanceSheet {
	return &BalanceSheet{out: out}
}

func (r *BalanceSheet) GatherData() {
	fmt.Fprintln(r.out, "gathering data for balance sheet report")
}

func (r *BalanceSheet) ComputeMetrics() {
	fmt.Fprintln(r.out, "computing metrics for balance sheet report")
}

func (r *BalanceSheet) FormatReport() {
	fmt.Fprintln(r.out, "formatting balance sheet report")
}

// Demo generates both report types through the one skeleton.
func Demo(w io.Writer) error {
	generator := NewGenerator(w)
	generator.Generate(NewProfitAndLoss(w))
	generator.Generate(NewBalanceSheet(w))
	return nil
}
