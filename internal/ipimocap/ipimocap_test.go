package ipimocap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/template"
)

const samplePose = `<?xml version="1.0" encoding="utf-8"?>
<PoseData>
  <RootTranslation>
    <Translation value="1.5 90 -2" />
  </RootTranslation>
  <Bone Name="Hip">
    <Rotation axis="X" angle="10" />
    <Rotation axis="Y" angle="20" />
    <Rotation axis="Z" angle="30" />
  </Bone>
  <Bone Name="LowerSpine">
    <Rotation axis="X" angle="-1.25" />
    <Rotation axis="Y" angle="0" />
    <Rotation axis="Z" angle="4" />
  </Bone>
  <Bone Name="LToe">
    <Rotation axis="X" angle="7" />
  </Bone>
  <Bone Name="NotInSkeleton">
    <Rotation axis="X" angle="99" />
  </Bone>
</PoseData>
`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(samplePose))
	require.NoError(t, err)

	require.NotNil(t, p.RootTranslation)
	assert.Equal(t, [3]float64{1.5, 90, -2}, *p.RootTranslation)
	assert.Len(t, p.Bones, 4)
	assert.Equal(t, []float64{10, 20, 30}, p.Bones["Hip"])
	assert.Equal(t, []float64{-1.25, 0, 4}, p.Bones["LowerSpine"])
	assert.Equal(t, []float64{7}, p.Bones["LToe"])
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not xml", "pose"},
		{"wrong root element", "<Pose></Pose>"},
		{"bad angle", `<PoseData><Root/><Bone Name="Hip"><R angle="ten"/></Bone></PoseData>`},
		{"missing angle", `<PoseData><Root/><Bone Name="Hip"><R axis="X"/></Bone></PoseData>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestDecodeWithoutTranslation(t *testing.T) {
	p, err := Decode(strings.NewReader(`<PoseData><RootTranslation/><Bone Name="Hip"><R angle="5"/></Bone></PoseData>`))
	require.NoError(t, err)
	assert.Nil(t, p.RootTranslation)
	assert.Equal(t, []float64{5}, p.Bones["Hip"])

	p, err = Decode(strings.NewReader(`<PoseData></PoseData>`))
	require.NoError(t, err)
	assert.Empty(t, p.Bones)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.pose.xml")
	require.NoError(t, os.WriteFile(path, []byte(samplePose), 0644))

	p, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Len(t, p.Bones, 4)

	_, err = DecodeFile(filepath.Join(dir, "missing.pose.xml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRemapperFrame(t *testing.T) {
	tmpl, err := template.New(template.Plain)
	require.NoError(t, err)
	skel := tmpl.Skeleton()

	p, err := Decode(strings.NewReader(samplePose))
	require.NoError(t, err)

	t.Run("template root translation", func(t *testing.T) {
		f, err := NewRemapper(tmpl, false).Frame(p)
		require.NoError(t, err)
		require.Len(t, f, tmpl.ChannelCount())

		assert.Equal(t, bvh.Frame{0, 83, 0}, f[:3])
		// Hip is index 0: its rotations occupy 3..5, reversed.
		assert.Equal(t, bvh.Frame{30, 20, 10}, f[3:6])

		spine, ok := skel.Index("LowerSpine")
		require.True(t, ok)
		assert.Equal(t, bvh.Frame{4, 0, -1.25}, f[3+3*spine:6+3*spine])

		// A single captured angle is the last element of the reversed triple.
		toe, ok := skel.Index("LToe")
		require.True(t, ok)
		assert.Equal(t, bvh.Frame{0, 0, 7}, f[3+3*toe:6+3*toe])

		head, ok := skel.Index("Head")
		require.True(t, ok)
		assert.Equal(t, bvh.Frame{0, 0, 0}, f[3+3*head:6+3*head])
	})

	t.Run("captured root translation", func(t *testing.T) {
		f, err := Remap(tmpl, p, true)
		require.NoError(t, err)
		assert.Equal(t, bvh.Frame{1.5, 90, -2}, f[:3])
	})

	t.Run("captured root requested but absent", func(t *testing.T) {
		f, err := NewRemapper(tmpl, true).Frame(&PoseData{Bones: map[string][]float64{}})
		require.NoError(t, err)
		assert.Equal(t, bvh.Frame{0, 83, 0}, f[:3])
	})

	t.Run("frame parses back into the template", func(t *testing.T) {
		f, err := NewRemapper(tmpl, false).Frame(p)
		require.NoError(t, err)

		var sb strings.Builder
		sb.WriteString(tmpl.ModelWithoutAngles(0.5, 1))
		require.NoError(t, bvh.WriteFrame(&sb, f))
		_, motion, err := bvh.ParseString(sb.String())
		require.NoError(t, err)
		assert.Equal(t, f, motion.Frames[0])
	})
}

func TestRemapperLayoutMismatch(t *testing.T) {
	skel, _, err := bvh.ParseString(`HIERARCHY
ROOT Hip
{
	CHANNELS 3 Xposition Yposition Zposition
	JOINT Arm
	{
		CHANNELS 1 Zrotation
		End Site
		{
			OFFSET 1 0 0
		}
	}
}
`)
	require.NoError(t, err)
	r := &Remapper{Skeleton: skel}
	_, err = r.Frame(&PoseData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hip")
}
