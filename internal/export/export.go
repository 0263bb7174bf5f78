// Package export serializes evaluated poses as JSON, YAML or plain text.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/skeleton"
)

// Format names an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	Text Format = "text"
)

// ParseFormat accepts json, yaml/yml or text/txt.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "text", "txt", "":
		return Text, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// JointRecord is the world transform of one node.
type JointRecord struct {
	Name     string     `yaml:"name" json:"name"`
	Parent   string     `yaml:"parent,omitempty" json:"parent,omitempty"`
	Depth    int        `yaml:"depth" json:"depth"`
	Position [3]float64 `yaml:"position,flow" json:"position"`
	Rotation [4]float64 `yaml:"rotation,flow" json:"rotation"` // w, x, y, z
}

// Document is one exported pose.
type Document struct {
	Source    string        `yaml:"source,omitempty" json:"source,omitempty"`
	Frame     int           `yaml:"frame" json:"frame"` // -1 for the rest pose
	FrameTime float64       `yaml:"frameTime,omitempty" json:"frameTime,omitempty"`
	Joints    []JointRecord `yaml:"joints" json:"joints"`
}

// Records lists every node of s, end sites included, in declaration order.
func Records(s *bvh.Skeleton, pose skeleton.Pose) []JointRecord {
	parents := make([]*bvh.Joint, len(s.Nodes))
	depth := make([]int, len(s.Nodes))
	for _, n := range s.Nodes {
		for _, c := range n.Children {
			parents[c.ID] = n
			depth[c.ID] = depth[n.ID] + 1
		}
	}

	out := make([]JointRecord, len(s.Nodes))
	for i, n := range s.Nodes {
		p := pose.Position(n)
		q := pose.Rotation(n)
		r := JointRecord{
			Name:     n.Name,
			Depth:    depth[n.ID],
			Position: [3]float64{round(p[0]), round(p[1]), round(p[2])},
			Rotation: [4]float64{round(q.W), round(q.V[0]), round(q.V[1]), round(q.V[2])},
		}
		if par := parents[n.ID]; par != nil {
			r.Parent = par.Name
		}
		out[i] = r
	}
	return out
}

// round drops float noise below 1e-9 so exports are stable.
func round(v float64) float64 {
	r := math.Round(v*1e9) / 1e9
	if r == 0 {
		return 0
	}
	return r
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: yaml: %w", err)
		}
		return enc.Close()
	case Text:
		return writeText(w, doc)
	}
	return fmt.Errorf("export: unknown format %q", string(format))
}

func writeText(w io.Writer, doc Document) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if doc.Frame < 0 {
		fmt.Fprintln(tw, "# rest pose")
	} else {
		fmt.Fprintf(tw, "# frame %d\n", doc.Frame)
	}
	fmt.Fprintln(tw, "joint\tx\ty\tz\tqw\tqx\tqy\tqz")
	for _, r := range doc.Joints {
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			strings.Repeat("  ", r.Depth), r.Name,
			bvh.FormatValue(r.Position[0]), bvh.FormatValue(r.Position[1]), bvh.FormatValue(r.Position[2]),
			bvh.FormatValue(r.Rotation[0]), bvh.FormatValue(r.Rotation[1]), bvh.FormatValue(r.Rotation[2]), bvh.FormatValue(r.Rotation[3]))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("export: text: %w", err)
	}
	return nil
}
