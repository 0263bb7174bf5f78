package ipimocap

// PoseData holds one captured pose from an iPi Mocap *.pose.xml file.
type PoseData struct {
	// RootTranslation is the captured root position; nil when the file
	// carries none or it could not be read.
	RootTranslation *[3]float64

	// Bones maps a bone name to its rotation angles (degrees) in file order.
	Bones map[string][]float64
}
