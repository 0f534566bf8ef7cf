// Package raylib provides a raylib backend for the listview package.
// It replays DrawLists through raylib's shape and texture drawing,
// which keeps the backend free of GL plumbing at the cost of one draw
// call per primitive.
package raylib

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dpadware/listview"
)

// Renderer draws listview DrawLists using raylib.
type Renderer struct {
	fontTex rl.Texture2D
	width   int
	height  int
}

// NewRenderer creates a raylib renderer. The raylib window must be
// initialized first.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		width:  width,
		height: height,
	}
	r.fontTex = loadFontTexture()
	return r
}

// FontTextureID returns the raylib texture ID for the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex.ID
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Delete releases the font texture.
func (r *Renderer) Delete() {
	if r.fontTex.ID != 0 {
		rl.UnloadTexture(r.fontTex)
		r.fontTex = rl.Texture2D{}
	}
}

// Render draws the DrawList. Must be called between rl.BeginDrawing
// and rl.EndDrawing.
func (r *Renderer) Render(dl *listview.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}

	dl.Finalize()

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		scissored := r.beginScissor(cmd.ClipRect)

		verts := dl.VtxBuffer[cmd.VertexOffset:]
		indices := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]

		if cmd.TextureID != 0 {
			r.drawTexturedQuads(verts, indices)
		} else {
			drawTriangles(verts, indices)
		}

		if scissored {
			rl.EndScissorMode()
		}
	}

	return nil
}

// beginScissor activates scissoring for the command's clip rect,
// clamped to the viewport. Returns false when the clip rect covers
// everything and no scissor is needed.
func (r *Renderer) beginScissor(clip [4]float32) bool {
	x := int32(clip[0])
	y := int32(clip[1])
	w := int32(clip[2] - clip[0])
	h := int32(clip[3] - clip[1])

	if x <= 0 && y <= 0 && w >= int32(r.width)-x && h >= int32(r.height)-y {
		return false
	}

	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if w <= 0 || h <= 0 {
		// Degenerate clip: scissor to a zero area so nothing draws.
		rl.BeginScissorMode(0, 0, 0, 0)
		return true
	}

	rl.BeginScissorMode(x, y, w, h)
	return true
}

// drawTriangles replays untextured geometry one triangle at a time.
// The DrawList winds triangles clockwise in y-down screen space;
// raylib wants counter-clockwise, so the index order is flipped.
func drawTriangles(verts []listview.Vertex, indices []uint16) {
	for k := 0; k+2 < len(indices); k += 3 {
		v0 := verts[indices[k]]
		v1 := verts[indices[k+2]]
		v2 := verts[indices[k+1]]

		rl.DrawTriangle(
			rl.NewVector2(v0.Pos[0], v0.Pos[1]),
			rl.NewVector2(v1.Pos[0], v1.Pos[1]),
			rl.NewVector2(v2.Pos[0], v2.Pos[1]),
			packedColor(v0.Color),
		)
	}
}

// drawTexturedQuads reconstructs the axis-aligned glyph quads the
// DrawList emits for text (four vertices, six indices per glyph) and
// draws each through DrawTexturePro.
func (r *Renderer) drawTexturedQuads(verts []listview.Vertex, indices []uint16) {
	texW := float32(r.fontTex.Width)
	texH := float32(r.fontTex.Height)

	for k := 0; k+5 < len(indices); k += 6 {
		topLeft := verts[indices[k]]
		bottomRight := verts[indices[k+4]]

		src := rl.NewRectangle(
			topLeft.TexCoord[0]*texW,
			topLeft.TexCoord[1]*texH,
			(bottomRight.TexCoord[0]-topLeft.TexCoord[0])*texW,
			(bottomRight.TexCoord[1]-topLeft.TexCoord[1])*texH,
		)
		dst := rl.NewRectangle(
			topLeft.Pos[0],
			topLeft.Pos[1],
			bottomRight.Pos[0]-topLeft.Pos[0],
			bottomRight.Pos[1]-topLeft.Pos[1],
		)

		rl.DrawTexturePro(r.fontTex, src, dst, rl.NewVector2(0, 0), 0, packedColor(topLeft.Color))
	}
}

// packedColor converts a packed RGBA color to a raylib color.
func packedColor(c uint32) rl.Color {
	cr, cg, cb, ca := listview.UnpackRGBA(c)
	return rl.NewColor(cr, cg, cb, ca)
}

// loadFontTexture uploads the shared bitmap font atlas. The atlas is
// single-channel; it becomes white RGBA with the glyph as alpha so
// vertex color tinting works the same as the GL backend.
func loadFontTexture() rl.Texture2D {
	pixels, width, height := listview.FontAtlas()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, p := range pixels {
		img.SetRGBA(i%width, i/width, color.RGBA{R: 255, G: 255, B: 255, A: p})
	}

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(tex, rl.FilterPoint)
	return tex
}
