package render

// SetAmbient replaces the ambient light term used by the planet shader. Callers derive it
// from the environment map off the frame loop; see assets.MeanAmbient.
func (r *Renderer) SetAmbient(ambient [4]float32) {
	r.ambient = ambient
}
