package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// formatFloat formats an optional float field.
func formatFloat(value interface{}, unit string) string {
	v, ok := value.(float64)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%.2f%s", v, unit)
}

// formatCount formats an integer field with thousands separators.
func formatCount(value interface{}) string {
	v, _ := value.(int)
	return humanize.Comma(int64(v))
}

func logChannelRow(w io.Writer, f log.Fields) error {
	colWidth := 12

	channel, _ := f.Get("channel").(int)
	index, _ := f.Get("index").(int)
	totalCount, _ := f.Get("total_count").(int)
	if index == 0 {
		fmt.Fprint(w, "┏"+strings.Repeat("━", colWidth*3+4)+"┓\n")
		fmt.Fprintf(w, "┃ %s %s %s ┃\n",
			RightPad("channel", colWidth),
			RightPad("mean", colWidth),
			RightPad("sigma", colWidth))
		fmt.Fprint(w, "┡"+strings.Repeat("━", colWidth*3+4)+"┩\n")
	}
	fmt.Fprintf(w, "│ %s %s %s │\n",
		RightPad(fmt.Sprintf("%d", channel), colWidth),
		RightPad(formatFloat(f.Get("mean"), ""), colWidth),
		RightPad(formatFloat(f.Get("sigma"), ""), colWidth))
	if index == totalCount-1 {
		fmt.Fprint(w, "└"+strings.Repeat("─", colWidth*3+4)+"┘\n")
	}
	return nil
}

func logRunSummary(w io.Writer, f log.Fields) error {
	colWidth := 24

	channels, _ := f.Get("channels").(int)
	if channels == 0 {
		fmt.Fprintf(w, "No channels processed\n")
		return nil
	}
	fmt.Fprintf(w, " │ %s │ %s │ %s │\n",
		RightPad(fmt.Sprintf("%s packets", formatCount(f.Get("packets"))), colWidth),
		RightPad(fmt.Sprintf("%d channels", channels), colWidth),
		RightPad(fmt.Sprintf("%s  %s",
			formatFloat(f.Get("temp"), "K"),
			formatFloat(f.Get("humidity"), "%")), colWidth))
	fmt.Fprintf(w, " │ %s │ %s │ %s │\n",
		RightPad(fmt.Sprintf("mean %s", formatFloat(f.Get("mean"), "")), colWidth),
		RightPad(fmt.Sprintf("stdev %s", formatFloat(f.Get("total_stdev"), "")), colWidth),
		RightPad("", colWidth))
	fmt.Fprint(w, " └"+strings.Repeat("─", colWidth+2)+"┴"+
		strings.Repeat("─", colWidth+2)+"┴"+strings.Repeat("─", colWidth+2)+"┘\n")
	return nil
}
