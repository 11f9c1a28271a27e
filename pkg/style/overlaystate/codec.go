// ABOUTME: easyjson codec for Snapshot and Entry (jlexer/jwriter, no reflection)
// ABOUTME: Unknown fields are skipped; null values leave fields at their zero value

package overlaystate

import (
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ easyjson.Marshaler   = (*Snapshot)(nil)
	_ easyjson.Unmarshaler = (*Snapshot)(nil)
	_ easyjson.Marshaler   = (*Entry)(nil)
	_ easyjson.Unmarshaler = (*Entry)(nil)
)

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (s *Snapshot) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "version":
			s.Version = in.Int()
		case "overlays":
			s.Overlays = s.Overlays[:0]
			in.Delim('[')
			for !in.IsDelim(']') {
				var e Entry
				e.UnmarshalEasyJSON(in)
				s.Overlays = append(s.Overlays, e)
				in.WantComma()
			}
			in.Delim(']')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (s *Snapshot) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"version":`)
	out.Int(s.Version)
	out.RawString(`,"overlays":[`)
	for i := range s.Overlays {
		if i > 0 {
			out.RawByte(',')
		}
		s.Overlays[i].MarshalEasyJSON(out)
	}
	out.RawString(`]}`)
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (e *Entry) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "target":
			e.Target = in.String()
		case "category":
			e.Category = in.String()
		case "package":
			e.Package = in.String()
		case "enabled":
			e.Enabled = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (e *Entry) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"target":`)
	out.String(e.Target)
	out.RawString(`,"category":`)
	out.String(e.Category)
	out.RawString(`,"package":`)
	out.String(e.Package)
	out.RawString(`,"enabled":`)
	out.Bool(e.Enabled)
	out.RawByte('}')
}
