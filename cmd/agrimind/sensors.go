package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lox/agrimind/internal/mockdata"
	"github.com/lox/agrimind/internal/widgets"
)

type SensorsCmd struct{}

func (c *SensorsCmd) Run() error {
	return writeSensorTable(os.Stdout)
}

func writeSensorTable(w io.Writer) error {
	cards := widgets.SensorCards(mockdata.Sensors())

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Battery", "Tier", "Signal", "Last Sync", "Status"})
	for _, c := range cards {
		t.AppendRow(table.Row{
			c.ID,
			c.Name,
			fmt.Sprintf("%d%%", c.BatteryPct),
			c.Battery,
			c.Sensor.Signal,
			c.LastSync,
			c.Badge.Label,
		})
	}
	t.Render()
	_, err := fmt.Fprintf(w, "(%d sensors)\n", len(cards))
	return err
}
