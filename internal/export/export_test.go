package export

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/skeleton"
)

const armDoc = `HIERARCHY
ROOT Hip
{
	OFFSET 0 0 0
	CHANNELS 6 Xposition Yposition Zposition Zrotation Xrotation Yrotation
	JOINT Arm
	{
		OFFSET 0 1 0
		CHANNELS 3 Zrotation Xrotation Yrotation
		End Site
		{
			OFFSET 0 1 0
		}
	}
}
MOTION
Frames: 1
Frame Time: 0.1
1 2 3 90 0 0 0 0 0
`

func evaluate(t *testing.T) (*bvh.Skeleton, skeleton.Pose) {
	t.Helper()
	skel, motion, err := bvh.ParseString(armDoc)
	require.NoError(t, err)
	return skel, skeleton.Evaluate(skel, motion.Frames[0])
}

func TestRecords(t *testing.T) {
	skel, pose := evaluate(t)
	recs := Records(skel, pose)
	require.Len(t, recs, 3)

	assert.Equal(t, "Hip", recs[0].Name)
	assert.Empty(t, recs[0].Parent)
	assert.Equal(t, 0, recs[0].Depth)
	assert.Equal(t, [3]float64{1, 2, 3}, recs[0].Position)

	assert.Equal(t, "Arm", recs[1].Name)
	assert.Equal(t, "Hip", recs[1].Parent)
	assert.Equal(t, 1, recs[1].Depth)
	assert.Equal(t, [3]float64{0, 2, 3}, recs[1].Position)

	assert.Equal(t, bvh.EndSiteName, recs[2].Name)
	assert.Equal(t, "Arm", recs[2].Parent)
	assert.Equal(t, 2, recs[2].Depth)
	assert.Equal(t, [3]float64{-1, 2, 3}, recs[2].Position)

	// the root's own rotation only reaches its children
	assert.Equal(t, [4]float64{1, 0, 0, 0}, recs[0].Rotation)
	h := math.Sqrt(0.5)
	for _, r := range recs[1:] {
		assert.InDelta(t, h, r.Rotation[0], 1e-8, r.Name)
		assert.InDelta(t, h, r.Rotation[3], 1e-8, r.Name)
		assert.Zero(t, r.Rotation[1], r.Name)
		assert.Zero(t, r.Rotation[2], r.Name)
	}
}

func TestRecordsRest(t *testing.T) {
	skel, _, err := bvh.ParseString(armDoc)
	require.NoError(t, err)
	recs := Records(skel, skeleton.Rest(skel))
	assert.Equal(t, [3]float64{0, 2, 0}, recs[2].Position)
	assert.Equal(t, [4]float64{1, 0, 0, 0}, recs[2].Rotation)
}

func TestWriteRoundTrip(t *testing.T) {
	skel, pose := evaluate(t)
	doc := Document{Source: "arm.bvh", Frame: 0, FrameTime: 0.1, Joints: Records(skel, pose)}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, JSON, doc))
		var got Document
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, doc, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, YAML, doc))
		assert.Contains(t, buf.String(), "name: Hip")
		var got Document
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, doc, got)
	})
}

func TestWriteText(t *testing.T) {
	skel, pose := evaluate(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, Document{Frame: 0, Joints: Records(skel, pose)}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "# frame 0", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "joint"))
	assert.Equal(t, []string{"Hip", "1", "2", "3"}, strings.Fields(lines[2])[:4])
	assert.True(t, strings.HasPrefix(lines[3], "  Arm"))
	assert.True(t, strings.HasPrefix(lines[4], "    End Site"))

	buf.Reset()
	require.NoError(t, Write(&buf, Text, Document{Frame: -1}))
	assert.True(t, strings.HasPrefix(buf.String(), "# rest pose"))
}

func TestFormats(t *testing.T) {
	for in, want := range map[string]Format{"json": JSON, "YAML": YAML, "yml": YAML, "": Text, "txt": Text} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Error(t, Write(&bytes.Buffer{}, "xml", Document{}))
}
