package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"confluence-journal/internal/config"
)

func newOutputCmd(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("json", false, "")
	cmd.SetOut(buf)
	return cmd
}

func TestNewOutputHonorsDateFormat(t *testing.T) {
	app := newTestApp()
	app.Config = &config.Config{}
	app.Config.UI.DateFormat = "2006-01-02"

	var buf bytes.Buffer
	output := app.NewOutput(newOutputCmd(&buf))

	date := time.Date(2024, time.March, 10, 14, 30, 0, 0, time.Local)
	if got := output.FormatDate(date); got != "2024-03-10" {
		t.Errorf("FormatDate = %q, want %q", got, "2024-03-10")
	}
	if got := output.FormatDateTime(date); got != "2024-03-10 14:30" {
		t.Errorf("FormatDateTime = %q, want %q", got, "2024-03-10 14:30")
	}
}

func TestNewOutputDefaultDateFormat(t *testing.T) {
	app := newTestApp()

	var buf bytes.Buffer
	output := app.NewOutput(newOutputCmd(&buf))

	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	if got := output.FormatDate(date); got != "10 Mar 2024" {
		t.Errorf("FormatDate = %q, want %q", got, "10 Mar 2024")
	}
}

func TestNewOutputColorDisabledByConfig(t *testing.T) {
	app := newTestApp()
	app.Config = &config.Config{}
	app.Config.UI.ColorEnabled = false

	var buf bytes.Buffer
	output := app.NewOutput(newOutputCmd(&buf))

	if output.colorEnabled {
		t.Error("color enabled despite ui.color_enabled = false")
	}
	if got := output.Green("up"); got != "up" {
		t.Errorf("Green = %q, want plain text", got)
	}
}
