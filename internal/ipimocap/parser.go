package ipimocap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// xmlPoseData matches the *.pose.xml schema. The first child of PoseData is
// the root translation block; every following child is one bone.
type xmlPoseData struct {
	XMLName  xml.Name     `xml:"PoseData"`
	Elements []xmlElement `xml:",any"`
}

type xmlElement struct {
	XMLName  xml.Name
	Name     string       `xml:"Name,attr"`
	Value    string       `xml:"value,attr"`
	Angle    *string      `xml:"angle,attr"`
	Children []xmlElement `xml:",any"`
}

// DecodeFile reads a pose XML file.
func DecodeFile(path string) (*PoseData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ipimocap: read %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode parses pose XML from r.
func Decode(r io.Reader) (*PoseData, error) {
	var doc xmlPoseData
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ipimocap: parse: %w", err)
	}

	p := &PoseData{Bones: make(map[string][]float64)}
	if len(doc.Elements) == 0 {
		return p, nil
	}

	p.RootTranslation = rootTranslation(doc.Elements[0])

	for _, bone := range doc.Elements[1:] {
		angles := make([]float64, 0, len(bone.Children))
		for _, rot := range bone.Children {
			if rot.Angle == nil {
				return nil, fmt.Errorf("ipimocap: bone %q: <%s> has no angle", bone.Name, rot.XMLName.Local)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(*rot.Angle), 64)
			if err != nil {
				return nil, fmt.Errorf("ipimocap: bone %q: bad angle %q", bone.Name, *rot.Angle)
			}
			angles = append(angles, v)
		}
		p.Bones[bone.Name] = angles
	}
	return p, nil
}

// rootTranslation reads `<Translation value="x y z"/>` under the root block.
func rootTranslation(el xmlElement) *[3]float64 {
	for _, c := range el.Children {
		if c.XMLName.Local != "Translation" {
			continue
		}
		fields := strings.Fields(c.Value)
		if len(fields) != 3 {
			return nil
		}
		var t [3]float64
		for i, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil
			}
			t[i] = v
		}
		return &t
	}
	return nil
}
