package main

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// document is the YAML output format.
type document struct {
	Rank       int     `yaml:"rank"`
	Resolution []int   `yaml:"resolution,flow"`
	Bounds     *bounds `yaml:"bounds,omitempty"`
	Points     []point `yaml:"points"`
}

type bounds struct {
	Min point `yaml:"min"`
	Max point `yaml:"max"`
}

// point is written as a flow sequence, [x, y, z].
type point [3]float64

func (p point) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range p {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatYAMLFloat(v)})
	}
	return n, nil
}

func formatYAMLFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeYAML(w io.Writer, doc *document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV(w io.Writer, points []point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p[0], 'g', -1, 64),
			strconv.FormatFloat(p[1], 'g', -1, 64),
			strconv.FormatFloat(p[2], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
