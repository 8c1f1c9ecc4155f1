package ui

import (
	"fmt"
	"strings"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/config"
)

// RenderConfig returns a styled listing of every section and entry in cfg,
// with keys aligned per section.
func RenderConfig(cfg *config.Config) string {
	if cfg.Len() == 0 {
		return MutedStyle.Render("(no sections)")
	}

	var b strings.Builder
	for i, name := range cfg.Sections() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderSection(cfg, name))
	}
	return b.String()
}

// RenderSection returns the styled listing of one section.
func RenderSection(cfg *config.Config, name string) string {
	keys := cfg.Keys(name)

	var b strings.Builder
	b.WriteString(SectionNameStyle.Render("[" + name + "]"))
	b.WriteString(" ")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("(%d)", len(keys))))
	b.WriteString("\n")

	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}

	for _, k := range keys {
		v, _ := cfg.Lookup(name, k)
		b.WriteString("  ")
		b.WriteString(EntryKeyStyle.Render(fmt.Sprintf("%-*s", width, k)))
		b.WriteString(MutedStyle.Render(" = "))
		if v == "" {
			b.WriteString(EmptyValueStyle.Render("(empty)"))
		} else {
			b.WriteString(EntryValueStyle.Render(v))
		}
		b.WriteString("\n")
	}
	return b.String()
}
