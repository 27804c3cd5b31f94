package render

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// ViewConfig positions the snapshot camera.
type ViewConfig struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView looks down at the origin from the (1,1,1) octant.
func DefaultView() ViewConfig {
	return ViewConfig{
		Up:     r3.Vec{Z: 1},
		Eyepos: r3.Vec{X: 3, Y: 3, Z: 3},
		Near:   1,
		Far:    10,
	}
}

// Snapshot rasterizes the triangles with a Phong shader and returns the
// image. The mesh is fit to a bi-unit cube before rendering, so only the
// shape matters, not its absolute scale. Rendering happens at double
// resolution and is downsampled for antialiasing.
func Snapshot(model []Triangle3, view ViewConfig) (image.Image, error) {
	if len(model) == 0 {
		return nil, errors.New("snapshot: empty triangle slice")
	}
	const (
		width, height = 800, 600 // output width and height in pixels
		scale         = 2        // supersampling
		fovy          = 30       // vertical field of view in degrees
	)

	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)

	triangles := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		triangles[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(t.V[0].X, t.V[0].Y, t.V[0].Z),
			fauxgl.V(t.V[1].X, t.V[1].Y, t.V[1].Z),
			fauxgl.V(t.V[2].X, t.V[2].Y, t.V[2].Z),
		)
	}
	mesh := fauxgl.NewTriangleMesh(triangles)
	mesh.BiUnitCube()

	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)

	img := context.Image()
	img = resize.Resize(width, height, img, resize.Bilinear)
	return img, nil
}

// SaveSnapshot renders the triangles and writes the image as PNG.
func SaveSnapshot(path string, model []Triangle3, view ViewConfig) error {
	img, err := Snapshot(model, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}
