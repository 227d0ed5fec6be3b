package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/aoc2019/program"
)

const (
	LevelTrace slog.Level = slog.LevelDebug - 4

	wordsPerRow = 8
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// RenderMemory draws the memory of p as a table, eight words per row. The
// row holding the instruction pointer is marked.
func RenderMemory(p *program.Program) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Memory (%d words, ip=%d)", p.Len(), p.IP()))

	header := table.Row{"Addr"}
	for col := 0; col < wordsPerRow; col++ {
		header = append(header, fmt.Sprintf("+%d", col))
	}
	t.AppendHeader(header)

	memory := p.Memory()
	for base := 0; base < len(memory); base += wordsPerRow {
		addr := fmt.Sprintf("%d", base)
		if p.IP() >= base && p.IP() < base+wordsPerRow {
			addr += " <"
		}

		row := table.Row{addr}
		for col := 0; col < wordsPerRow && base+col < len(memory); col++ {
			row = append(row, memory[base+col])
		}
		t.AppendRow(row)
	}

	return t.Render()
}

func LogState(name string, r Result) {
	slog.Debug("StateCheckpoint",
		"Core", name,
		"Status", r.Status.String(),
		"Steps", r.Steps,
		"Error", r.Err,
	)
}
