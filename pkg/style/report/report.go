// ABOUTME: Status report of every catalog option against the live overlay state
// ABOUTME: Encoded with easyjson jwriter for the CLI's --json output

package report

import (
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/uistyle-go/pkg/style"
	"github.com/mauromedda/uistyle-go/pkg/style/catalog"
)

// Mismatch is the JSON form of style.Mismatch.
type Mismatch struct {
	Category string
	Target   string
	Want     string
	Got      string
	Reason   string
}

// OptionStatus describes one option.
type OptionStatus struct {
	Title      string
	Default    bool
	Active     bool
	Valid      bool
	Complete   bool
	Color      string
	Categories []string
	Mismatches []Mismatch
}

// Report is the status of a whole catalog.
type Report struct {
	Active  string // empty when no option is active
	Dark    bool
	Options []OptionStatus
}

var _ easyjson.Marshaler = Report{}

// Build evaluates every option in cat.
func Build(cat *catalog.Catalog, reg *style.Registry, p style.OverlayStateProvider, dark bool) Report {
	r := Report{Dark: dark}
	active := cat.Active(reg, p)
	if active != nil {
		r.Active = active.Title()
	}

	for _, o := range cat.Options() {
		st := OptionStatus{
			Title:      o.Title(),
			Default:    o.IsDefault(),
			Active:     o == active,
			Valid:      o.IsValid(reg),
			Complete:   o.IsComplete(reg),
			Color:      string(o.ResolveColor(dark)),
			Categories: o.Categories(),
		}
		for _, m := range o.Mismatches(reg, p) {
			st.Mismatches = append(st.Mismatches, Mismatch{
				Category: m.Category,
				Target:   m.Target,
				Want:     m.Want,
				Got:      m.Got,
				Reason:   m.Reason.String(),
			})
		}
		r.Options = append(r.Options, st)
	}
	return r
}

// JSON encodes the report.
func (r Report) JSON() ([]byte, error) {
	return easyjson.Marshal(r)
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (r Report) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"active":`)
	if r.Active == "" {
		out.RawString("null")
	} else {
		out.String(r.Active)
	}
	out.RawString(`,"dark":`)
	out.Bool(r.Dark)
	out.RawString(`,"options":[`)
	for i, o := range r.Options {
		if i > 0 {
			out.RawByte(',')
		}
		o.marshal(out)
	}
	out.RawString(`]}`)
}

func (o OptionStatus) marshal(out *jwriter.Writer) {
	out.RawString(`{"title":`)
	out.String(o.Title)
	out.RawString(`,"default":`)
	out.Bool(o.Default)
	out.RawString(`,"active":`)
	out.Bool(o.Active)
	out.RawString(`,"valid":`)
	out.Bool(o.Valid)
	out.RawString(`,"complete":`)
	out.Bool(o.Complete)
	out.RawString(`,"color":`)
	out.String(o.Color)
	out.RawString(`,"categories":`)
	writeStrings(out, o.Categories)
	if len(o.Mismatches) > 0 {
		out.RawString(`,"mismatches":[`)
		for i, m := range o.Mismatches {
			if i > 0 {
				out.RawByte(',')
			}
			out.RawString(`{"category":`)
			out.String(m.Category)
			out.RawString(`,"target":`)
			out.String(m.Target)
			out.RawString(`,"want":`)
			out.String(m.Want)
			out.RawString(`,"got":`)
			out.String(m.Got)
			out.RawString(`,"reason":`)
			out.String(m.Reason)
			out.RawByte('}')
		}
		out.RawByte(']')
	}
	out.RawByte('}')
}

func writeStrings(out *jwriter.Writer, ss []string) {
	out.RawByte('[')
	for i, s := range ss {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(s)
	}
	out.RawByte(']')
}
