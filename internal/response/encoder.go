package response

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html/template"
	"io"
	"mime"
	"sort"
	"strings"
)

// Envelope is the body of every response.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Encoder serializes an envelope in one content type.
type Encoder interface {
	ContentType() string
	Encode(w io.Writer, env Envelope) error
}

const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
	ContentTypeHTML = "text/html"
	ContentTypeText = "text/plain"
)

var encoders = map[string]Encoder{
	ContentTypeJSON: jsonEncoder{},
	ContentTypeXML:  xmlEncoder{},
	ContentTypeHTML: htmlEncoder{},
	ContentTypeText: textEncoder{},
}

// Negotiate picks the encoder for an Accept header. The first listed media
// type that is supported wins; JSON is the fallback.
func Negotiate(accept string) Encoder {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if enc, ok := encoders[mediaType]; ok {
			return enc
		}
	}
	return encoders[ContentTypeJSON]
}

type jsonEncoder struct{}

func (jsonEncoder) ContentType() string { return ContentTypeJSON + "; charset=utf-8" }

func (jsonEncoder) Encode(w io.Writer, env Envelope) error {
	return json.NewEncoder(w).Encode(env)
}

// tree turns the envelope into plain maps, slices and scalars following its
// JSON shape, so the non-JSON encoders see the same field names.
func tree(env Envelope) (map[string]any, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// keys returns the envelope keys first in their fixed order, then the rest sorted.
func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := keyRank(out[i]), keyRank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}

func keyRank(k string) int {
	switch k {
	case "message":
		return 0
	case "data":
		return 1
	default:
		return 2
	}
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

type xmlEncoder struct{}

func (xmlEncoder) ContentType() string { return ContentTypeXML + "; charset=utf-8" }

func (xmlEncoder) Encode(w io.Writer, env Envelope) error {
	t, err := tree(env)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := writeXML(enc, "response", t); err != nil {
		return err
	}
	return enc.Flush()
}

func writeXML(enc *xml.Encoder, name string, v any) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}

	switch val := v.(type) {
	case map[string]any:
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		for _, k := range keys(val) {
			if err := writeXML(enc, k, val[k]); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	case []any:
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		for _, item := range val {
			if err := writeXML(enc, "item", item); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	default:
		return enc.EncodeElement(scalar(val), start)
	}
}

type htmlEncoder struct{}

func (htmlEncoder) ContentType() string { return ContentTypeHTML + "; charset=utf-8" }

var htmlPage = template.Must(template.New("page").Parse(
	`<!DOCTYPE html><html><head><meta charset="utf-8"><title>{{.Title}}</title></head><body>{{.Body}}</body></html>` + "\n"))

func (htmlEncoder) Encode(w io.Writer, env Envelope) error {
	t, err := tree(env)
	if err != nil {
		return err
	}

	var body strings.Builder
	writeHTML(&body, t)

	return htmlPage.Execute(w, struct {
		Title string
		Body  template.HTML
	}{
		Title: env.Message,
		Body:  template.HTML(body.String()),
	})
}

// writeHTML renders objects as two-column tables and arrays as lists.
// Every scalar goes through HTMLEscapeString.
func writeHTML(b *strings.Builder, v any) {
	switch val := v.(type) {
	case map[string]any:
		b.WriteString("<table>")
		for _, k := range keys(val) {
			b.WriteString("<tr><th>")
			b.WriteString(template.HTMLEscapeString(k))
			b.WriteString("</th><td>")
			writeHTML(b, val[k])
			b.WriteString("</td></tr>")
		}
		b.WriteString("</table>")
	case []any:
		b.WriteString("<ul>")
		for _, item := range val {
			b.WriteString("<li>")
			writeHTML(b, item)
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	default:
		b.WriteString(template.HTMLEscapeString(scalar(val)))
	}
}

type textEncoder struct{}

func (textEncoder) ContentType() string { return ContentTypeText + "; charset=utf-8" }

func (textEncoder) Encode(w io.Writer, env Envelope) error {
	t, err := tree(env)
	if err != nil {
		return err
	}

	var b strings.Builder
	writeText(&b, t, 0)
	_, err = io.WriteString(w, b.String())
	return err
}

// writeText renders "key : value" lines, nesting with two spaces per level
// and wrapping arrays in square brackets.
func writeText(b *strings.Builder, v any, depth int) {
	indent := strings.Repeat("  ", depth)

	switch val := v.(type) {
	case map[string]any:
		for _, k := range keys(val) {
			child := val[k]
			switch child.(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s%s :\n", indent, k)
				writeText(b, child, depth+1)
			default:
				fmt.Fprintf(b, "%s%s : %s\n", indent, k, scalar(child))
			}
		}
	case []any:
		fmt.Fprintf(b, "%s[\n", indent)
		for _, item := range val {
			switch item.(type) {
			case map[string]any, []any:
				writeText(b, item, depth+1)
			default:
				fmt.Fprintf(b, "%s  %s\n", indent, scalar(item))
			}
		}
		fmt.Fprintf(b, "%s]\n", indent)
	default:
		fmt.Fprintf(b, "%s%s\n", indent, scalar(val))
	}
}
