package engine

// Opaque GPU resource handles. Concrete types come from the rendering
// backend; the engine never inspects them.
type (
	Buffer   interface{ isBuffer() }
	Texture  interface{ isTexture() }
	Pipeline interface{ isPipeline() }
)

// RenderBackend is implemented by the graphics layer
type RenderBackend interface {
	CreateBuffer(name string, size int) (Buffer, error)
	WriteBuffer(buffer Buffer, data []byte) error
	DestroyBuffer(buffer Buffer)

	CreateTexture(name string, data []byte, width, height int) (Texture, error)
	DestroyTexture(texture Texture)

	CreatePipeline(name string) (Pipeline, error)
}
