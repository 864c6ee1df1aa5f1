package recording

import "github.com/gogpu/imagebox"

// ResourcePool stores the images referenced by recording commands.
// Adding the same image twice returns the same reference.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images []*imagebox.Image
	index  map[*imagebox.Image]ImageRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images: make([]*imagebox.Image, 0, 8),
		index:  make(map[*imagebox.Image]ImageRef),
	}
}

// AddImage adds img to the pool and returns its reference. Images are
// immutable, so they are shared rather than copied.
func (p *ResourcePool) AddImage(img *imagebox.Image) ImageRef {
	if ref, ok := p.index[img]; ok {
		return ref
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := ImageRef(uint32(len(p.images) - 1))
	p.index[img] = ref
	return ref
}

// GetImage returns the image for ref, or nil if ref is out of range.
func (p *ResourcePool) GetImage(ref ImageRef) *imagebox.Image {
	if !ref.IsValid() || int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}
