package main

import (
	"fmt"
	"os"

	"github.com/beamz/beamplot/beam"
	"gopkg.in/yaml.v3"
)

// ref is a YAML scalar locating a node: a number matches by position,
// anything else by label text.
type ref struct {
	r beam.NodeRef
}

func (r *ref) UnmarshalYAML(value *yaml.Node) error {
	var x float64
	if err := value.Decode(&x); err == nil {
		r.r = beam.AtX(x)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("location must be a number or a node label")
	}
	r.r = beam.ByLabel(s)
	return nil
}

type fixity struct {
	f beam.Fixity
}

func (f *fixity) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := beam.ParseFixity(s)
	if err != nil {
		return err
	}
	f.f = parsed
	return nil
}

type nodeDef struct {
	X     float64 `yaml:"x"`
	Label string  `yaml:"label"`
}

type supportDef struct {
	At     ref    `yaml:"at"`
	Fixity fixity `yaml:"fixity"`
}

type loadDef struct {
	Magnitude    float64  `yaml:"magnitude"`
	Start        ref      `yaml:"start"`
	End          *ref     `yaml:"end"`
	EndMagnitude *float64 `yaml:"end_magnitude"`
	Moment       bool     `yaml:"moment"`
	Alpha        float64  `yaml:"alpha"`
	Label        string   `yaml:"label"`
}

type styleDef struct {
	SymbolScale     float64 `yaml:"symbol_scale"`
	DimensionOffset float64 `yaml:"dimension_offset"`
	Margin          float64 `yaml:"margin"`
}

type beamFile struct {
	Depth      float64      `yaml:"depth"`
	Nodes      []nodeDef    `yaml:"nodes"`
	Supports   []supportDef `yaml:"supports"`
	Joints     []supportDef `yaml:"joints"`
	Loads      []loadDef    `yaml:"loads"`
	Dimensions []ref        `yaml:"dimensions"`
	Style      styleDef     `yaml:"style"`
}

func loadBeamFile(name string) (*beamFile, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var bf beamFile
	if err := yaml.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &bf, nil
}

func (bf *beamFile) spec() beam.Spec {
	spec := beam.Spec{Depth: bf.Depth}
	for _, n := range bf.Nodes {
		spec.Nodes = append(spec.Nodes, beam.NewNode(n.X, n.Label))
	}
	for _, s := range bf.Supports {
		spec.Supports = append(spec.Supports, beam.SupportSpec{At: s.At.r, Fixity: s.Fixity.f})
	}
	for _, j := range bf.Joints {
		spec.Joints = append(spec.Joints, beam.JointSpec{At: j.At.r, Fixity: j.Fixity.f})
	}
	for _, l := range bf.Loads {
		ls := beam.LoadSpec{
			Magnitude:    l.Magnitude,
			Start:        l.Start.r,
			EndMagnitude: l.EndMagnitude,
			Moment:       l.Moment,
			Alpha:        l.Alpha,
			Label:        l.Label,
		}
		if l.End != nil {
			end := l.End.r
			ls.End = &end
		}
		spec.Loads = append(spec.Loads, ls)
	}
	for _, d := range bf.Dimensions {
		spec.Dimensions = append(spec.Dimensions, d.r)
	}
	return spec
}
