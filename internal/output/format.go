package output

import (
	"fmt"

	"circleprogress/internal/collector"
	"circleprogress/internal/engine"
	"circleprogress/internal/ring"
)

// Section constants to avoid hardcoded strings
const (
	SectionRing   = "ring"
	SectionStyle  = "style"
	SectionSource = "source"
)

// UI/view-model types (no printing here)
type Item struct {
	Key    string
	Label  string
	Value  float64
	Unit   string
	Status string
	Note   string
}

type Section struct {
	ID    string // ring/style/source
	Title string
	Items []Item
}

// Report describes one rendered ring frame.
type Report struct {
	Sections []Section
	Label    string
}

// Reading is an optional sensor sample with its evaluation.
type Reading struct {
	Sample collector.Sample
	Result engine.CheckResult
}

// BuildReport converts a command list and the style that produced it into
// printable sections. reading may be nil.
func BuildReport(progress float64, cmds []ring.Command, style ring.StyleConfig, reading *Reading) Report {
	r := Report{}

	sec := Section{ID: SectionRing, Title: "Ring"}
	sec.Items = append(sec.Items, Item{Key: "progress", Label: "Progress", Value: progress, Unit: "%"})
	for _, c := range cmds {
		switch c.Kind {
		case ring.KindCircle:
			sec.Items = append(sec.Items,
				Item{Key: "radius", Label: "Radius", Value: c.Radius, Unit: "u"},
				Item{Key: "center", Label: "Center", Note: fmt.Sprintf("%.1f, %.1f", c.CenterX, c.CenterY)},
			)
		case ring.KindArc:
			sec.Items = append(sec.Items, Item{Key: "sweep", Label: "Sweep", Value: c.SweepAngle, Unit: "°"})
		case ring.KindText:
			r.Label = c.Text
			sec.Items = append(sec.Items, Item{Key: "label", Label: "Label", Note: c.Text})
		}
	}
	r.Sections = append(r.Sections, sec)

	r.Sections = append(r.Sections, Section{ID: SectionStyle, Title: "Style", Items: []Item{
		{Key: "ring_color", Label: "Ring Color", Note: string(style.RingColor)},
		{Key: "progress_color", Label: "Progress Color", Note: string(style.ProgressColor)},
		{Key: "ring_width", Label: "Ring Width", Value: style.RingWidth, Unit: "u"},
		{Key: "label_size", Label: "Label Size", Value: style.LabelFontSize, Unit: "u"},
	}})

	if reading != nil {
		r.Sections = append(r.Sections, Section{ID: SectionSource, Title: "Source", Items: []Item{
			{Key: "usage", Label: reading.Result.Name, Value: reading.Result.Value, Unit: "%", Status: reading.Result.Status},
			{Key: "detail", Label: "Detail", Note: reading.Sample.Detail},
		}})
	}
	return r
}

func (r Report) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByKey(key string) *Item {
	for i := range s.Items {
		if s.Items[i].Key == key {
			return &s.Items[i]
		}
	}
	return nil
}
