package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lox/agrimind/internal/api"
	"github.com/lox/agrimind/internal/selection"
)

type RenderCmd struct {
	Path   string `arg:"" default:"/dashboard" help:"Dashboard path to render."`
	Output string `short:"o" type:"path" help:"Write to this file instead of stdout."`

	Field      string `help:"Precision or crop page field."`
	Fertilizer string `help:"Precision page fertilizer field."`
	Range      string `help:"Precision page moisture trend range."`
	Overlay    string `help:"Crop page map overlay."`
	Period     string `help:"Crop page health trend period."`
}

func (c *RenderCmd) Run(logger *zap.Logger) error {
	p, cr, err := c.selections()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)

	srv := api.NewServer(api.Config{Logger: logger})
	if err := srv.Snapshot(bw, c.Path, p, cr); err != nil {
		return fmt.Errorf("render %s: %w", c.Path, err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if c.Output != "" {
		logger.Info("wrote snapshot", zap.String("path", c.Path), zap.String("output", c.Output))
	}
	return nil
}

// selections applies the flags to each page's initial selection. The field
// flag is applied to whichever page is being rendered.
func (c *RenderCmd) selections() (selection.Precision, selection.Crop, error) {
	p := selection.DefaultPrecision()
	cr := selection.DefaultCrop()

	type change struct {
		apply   func(string, string) error
		control string
		value   string
	}
	changes := []change{
		{p.Apply, selection.ControlFertilizer, c.Fertilizer},
		{p.Apply, selection.ControlRange, c.Range},
		{cr.Apply, selection.ControlOverlay, c.Overlay},
		{cr.Apply, selection.ControlPeriod, c.Period},
	}
	switch c.Path {
	case "/dashboard/precision":
		changes = append(changes, change{p.Apply, selection.ControlField, c.Field})
	case "/dashboard/crops":
		changes = append(changes, change{cr.Apply, selection.ControlField, c.Field})
	}
	for _, ch := range changes {
		if ch.value == "" {
			continue
		}
		if err := ch.apply(ch.control, ch.value); err != nil {
			return p, cr, err
		}
	}
	return p, cr, nil
}
